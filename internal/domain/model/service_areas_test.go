package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func validCircle() CircleInput {
	return CircleInput{Lat: f64(35.0), Lng: f64(135.7), RadiusMiles: f64(10)}
}

func TestValidateCircleInputs_AllValid(t *testing.T) {
	err := ValidateCircleInputs([]CircleInput{validCircle(), validCircle()})
	assert.NoError(t, err)
}

func TestValidateCircleInputs_EmptySetIsValid(t *testing.T) {
	assert.NoError(t, ValidateCircleInputs([]CircleInput{}))
}

// 1件でも不正なら全体が失敗し、違反したインデックスが特定される
func TestValidateCircleInputs_ReportsOffendingIndex(t *testing.T) {
	tests := []struct {
		name  string
		bad   CircleInput
		index int
	}{
		{"lat欠落", CircleInput{Lng: f64(135.7), RadiusMiles: f64(10)}, 1},
		{"lng欠落", CircleInput{Lat: f64(35.0), RadiusMiles: f64(10)}, 1},
		{"radiusMiles欠落", CircleInput{Lat: f64(35.0), Lng: f64(135.7)}, 1},
		{"lat範囲外", CircleInput{Lat: f64(91), Lng: f64(135.7), RadiusMiles: f64(10)}, 1},
		{"lng範囲外", CircleInput{Lat: f64(35.0), Lng: f64(-181), RadiusMiles: f64(10)}, 1},
		{"半径0", CircleInput{Lat: f64(35.0), Lng: f64(135.7), RadiusMiles: f64(0)}, 1},
		{"半径マイナス", CircleInput{Lat: f64(35.0), Lng: f64(135.7), RadiusMiles: f64(-5)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCircleInputs([]CircleInput{validCircle(), tt.bad, validCircle()})
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.index, vErr.Index)
			assert.Equal(t, "areas", vErr.Field)
		})
	}
}

// 数値フィールドへの文字列はデコードエラーにせず欠落として扱い、
// 検証側がインデックス付きで報告できること
func TestCircleInputUnmarshal_WrongTypeBecomesMissing(t *testing.T) {
	var inputs []CircleInput
	body := `[{"lat":35.0,"lng":135.7,"radiusMiles":10},{"lat":"abc","lng":135.7,"radiusMiles":10}]`
	require.NoError(t, json.Unmarshal([]byte(body), &inputs))

	require.Len(t, inputs, 2)
	assert.NotNil(t, inputs[0].Lat)
	assert.Nil(t, inputs[1].Lat)

	err := ValidateCircleInputs(inputs)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 1, vErr.Index)
	assert.Equal(t, "areas[1]: lat is required and must be numeric", vErr.Error())
}

func TestCoversPoint(t *testing.T) {
	// 半径10マイルの円（京都駅付近）
	area := ServiceArea{Lat: 34.9858, Lng: 135.7588, RadiusMiles: 10}

	// 中心そのもの
	assert.True(t, area.CoversPoint(34.9858, 135.7588))

	// 約5km北（10マイル≒16km圏内）
	assert.True(t, area.CoversPoint(35.0308, 135.7588))

	// 大阪駅（直線距離で約40km）は圏外
	assert.False(t, area.CoversPoint(34.7025, 135.4959))
}

func TestUpdateAreaInputValidate(t *testing.T) {
	assert.Error(t, (&UpdateAreaInput{}).Validate())
	assert.NoError(t, (&UpdateAreaInput{ID: "a1"}).Validate())
	assert.NoError(t, (&UpdateAreaInput{ID: "a1", RadiusMiles: f64(5)}).Validate())
	assert.Error(t, (&UpdateAreaInput{ID: "a1", RadiusMiles: f64(-1)}).Validate())
	assert.Error(t, (&UpdateAreaInput{ID: "a1", Lat: f64(100)}).Validate())
}
