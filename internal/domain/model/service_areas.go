package model

import (
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// MetersPerMile マイル→メートル換算係数
const MetersPerMile = 1609.344

// ServiceArea service_areasテーブルの行。施設が対応する地理的な円を表す。
// 1施設のエリア集合は順不同で、円の重複・重なりも許容される
type ServiceArea struct {
	ID          string  `json:"id" db:"id"`
	FacilityID  string  `json:"facility_id" db:"facility_id"`
	Lat         float64 `json:"lat" db:"lat"`
	Lng         float64 `json:"lng" db:"lng"`
	RadiusMiles float64 `json:"radius_miles" db:"radius_miles"`
	City        *string `json:"city,omitempty" db:"city"`
	State       *string `json:"state,omitempty" db:"state"`
}

// Center 円の中心をorb.Point（経度, 緯度の順）として返す
func (s *ServiceArea) Center() orb.Point {
	return orb.Point{s.Lng, s.Lat}
}

// CoversPoint 指定した地点が円の内側（境界含む）にあるかを測地線距離で判定
func (s *ServiceArea) CoversPoint(lat, lng float64) bool {
	dist := geo.Distance(s.Center(), orb.Point{lng, lat})
	return dist <= s.RadiusMiles*MetersPerMile
}

// CircleInput POST /api/service-areas で受け取る1つの円。
// 欠落と0を区別するため必須の数値フィールドはポインタで受ける
type CircleInput struct {
	ID          *string  `json:"id"` // クライアント指定のIDを保持する（省略時はストア採番）
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	RadiusMiles *float64 `json:"radiusMiles"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
}

// UnmarshalJSON 型が合わない値（数値フィールドへの文字列など）は欠落として
// 扱う。バインダーでエラーにせず、ValidateCircleInputsが何番目の要素が
// 不正かを特定して報告できるようにするため
func (in *CircleInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          json.RawMessage `json:"id"`
		Lat         json.RawMessage `json:"lat"`
		Lng         json.RawMessage `json:"lng"`
		RadiusMiles json.RawMessage `json:"radiusMiles"`
		City        json.RawMessage `json:"city"`
		State       json.RawMessage `json:"state"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	in.ID = stringFieldOrNil(raw.ID)
	in.Lat = floatFieldOrNil(raw.Lat)
	in.Lng = floatFieldOrNil(raw.Lng)
	in.RadiusMiles = floatFieldOrNil(raw.RadiusMiles)
	in.City = stringFieldOrNil(raw.City)
	in.State = stringFieldOrNil(raw.State)
	return nil
}

func floatFieldOrNil(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

func stringFieldOrNil(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// ValidateCircleInputs 全要素を検証する。1つでも違反があれば
// 違反したインデックスを特定したValidationErrorを返し、書き込みは一切行わない
func ValidateCircleInputs(inputs []CircleInput) error {
	for i, in := range inputs {
		switch {
		case in.Lat == nil:
			return NewIndexedValidationError("areas", i, "lat is required and must be numeric")
		case in.Lng == nil:
			return NewIndexedValidationError("areas", i, "lng is required and must be numeric")
		case in.RadiusMiles == nil:
			return NewIndexedValidationError("areas", i, "radiusMiles is required and must be numeric")
		case *in.Lat < -90 || *in.Lat > 90:
			return NewIndexedValidationError("areas", i, "lat must be between -90 and 90")
		case *in.Lng < -180 || *in.Lng > 180:
			return NewIndexedValidationError("areas", i, "lng must be between -180 and 180")
		case *in.RadiusMiles <= 0:
			return NewIndexedValidationError("areas", i, "radiusMiles must be positive")
		}
	}
	return nil
}

// UpdateAreaInput PUT /api/service-areas のリクエストボディ。
// id以外の各フィールドは独立して省略可能
type UpdateAreaInput struct {
	ID          string   `json:"id"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	RadiusMiles *float64 `json:"radiusMiles"`
	City        *string  `json:"city"`
	State       *string  `json:"state"`
}

// Validate 指定されたフィールドのみ検証する
func (in *UpdateAreaInput) Validate() error {
	if in.ID == "" {
		return NewValidationError("id", "id is required")
	}
	if in.Lat != nil && (*in.Lat < -90 || *in.Lat > 90) {
		return NewValidationError("lat", "lat must be between -90 and 90")
	}
	if in.Lng != nil && (*in.Lng < -180 || *in.Lng > 180) {
		return NewValidationError("lng", "lng must be between -180 and 180")
	}
	if in.RadiusMiles != nil && *in.RadiusMiles <= 0 {
		return NewValidationError("radiusMiles", "radiusMiles must be positive")
	}
	return nil
}
