package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"CareMatch-App/internal/database"
	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
)

type SupabaseServiceAreasRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseServiceAreasRepository(client *database.SupabaseClient) repository.ServiceAreasRepository {
	return &SupabaseServiceAreasRepository{
		client: client,
	}
}

// serviceAreaDB service_areas行の保存用形式。
// IDが省略された場合はストア側で採番される
type serviceAreaDB struct {
	ID          *string `json:"id,omitempty"`
	FacilityID  string  `json:"facility_id"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	RadiusMiles float64 `json:"radius_miles"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
}

func circleInputToDB(facilityID string, in model.CircleInput) serviceAreaDB {
	return serviceAreaDB{
		ID:          in.ID,
		FacilityID:  facilityID,
		Lat:         *in.Lat,
		Lng:         *in.Lng,
		RadiusMiles: *in.RadiusMiles,
		City:        in.City,
		State:       in.State,
	}
}

func (r *SupabaseServiceAreasRepository) ListByFacilityID(ctx context.Context, facilityID string) ([]model.ServiceArea, error) {
	var areas []model.ServiceArea
	data, count, err := r.client.GetClient().From("service_areas").Select("*", "exact", false).Eq("facility_id", facilityID).Execute()
	if err != nil {
		return nil, fmt.Errorf("サービスエリアの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &areas); err != nil {
		return nil, fmt.Errorf("サービスエリアのJSONアンマーシャル失敗: %w", err)
	}

	if areas == nil {
		areas = []model.ServiceArea{}
	}
	return areas, nil
}

func (r *SupabaseServiceAreasRepository) GetByID(ctx context.Context, id string) (*model.ServiceArea, error) {
	var areas []model.ServiceArea
	data, count, err := r.client.GetClient().From("service_areas").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("サービスエリアの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &areas); err != nil {
		return nil, fmt.Errorf("サービスエリアのJSONアンマーシャル失敗: %w", err)
	}

	if len(areas) == 0 {
		return nil, model.ErrNotFound
	}

	return &areas[0], nil
}

// ReplaceAll 全削除→全挿入の置き換え。PostgRESTはトランザクションを
// 提供しないため、削除成功後の挿入失敗でエリアが0件になる窓がある
// （トランザクション保証が必要ならPostgresServiceAreasRepositoryを使う）
func (r *SupabaseServiceAreasRepository) ReplaceAll(ctx context.Context, facilityID string, inputs []model.CircleInput) ([]model.ServiceArea, error) {
	_, _, err := r.client.GetClient().From("service_areas").Delete("", "").Eq("facility_id", facilityID).Execute()
	if err != nil {
		return nil, fmt.Errorf("既存サービスエリアの削除失敗: %w", err)
	}

	if len(inputs) == 0 {
		return []model.ServiceArea{}, nil
	}

	rows := make([]serviceAreaDB, 0, len(inputs))
	for _, in := range inputs {
		rows = append(rows, circleInputToDB(facilityID, in))
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("サービスエリアのJSONマーシャル失敗: %w", err)
	}

	inserted, _, err := r.client.GetClient().From("service_areas").Insert(string(data), false, "", "representation", "").Execute()
	if err != nil {
		return nil, fmt.Errorf("サービスエリアの挿入失敗: %w", err)
	}

	var areas []model.ServiceArea
	if err := json.Unmarshal([]byte(inserted), &areas); err != nil {
		return nil, fmt.Errorf("挿入結果のJSONアンマーシャル失敗: %w", err)
	}

	return areas, nil
}

// serviceAreaUpdateDB 部分更新用のペイロード。nilのフィールドは更新されない
type serviceAreaUpdateDB struct {
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	RadiusMiles *float64 `json:"radius_miles,omitempty"`
	City        *string  `json:"city,omitempty"`
	State       *string  `json:"state,omitempty"`
}

func (r *SupabaseServiceAreasRepository) UpdateOne(ctx context.Context, input *model.UpdateAreaInput) (*model.ServiceArea, error) {
	// 対象の存在確認（存在しなければErrNotFound）
	if _, err := r.GetByID(ctx, input.ID); err != nil {
		return nil, err
	}

	payload := serviceAreaUpdateDB{
		Lat:         input.Lat,
		Lng:         input.Lng,
		RadiusMiles: input.RadiusMiles,
		City:        input.City,
		State:       input.State,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("更新データのJSONマーシャル失敗: %w", err)
	}

	_, _, err = r.client.GetClient().From("service_areas").Update(string(data), "", "").Eq("id", input.ID).Execute()
	if err != nil {
		return nil, fmt.Errorf("サービスエリアの更新失敗: %w", err)
	}

	return r.GetByID(ctx, input.ID)
}

func (r *SupabaseServiceAreasRepository) DeleteOne(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return err
	}

	_, _, err := r.client.GetClient().From("service_areas").Delete("", "").Eq("id", id).Execute()
	if err != nil {
		return fmt.Errorf("サービスエリアの削除失敗: %w", err)
	}
	return nil
}
