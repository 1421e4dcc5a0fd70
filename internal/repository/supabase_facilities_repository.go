package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"CareMatch-App/internal/database"
	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
)

type SupabaseFacilitiesRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseFacilitiesRepository(client *database.SupabaseClient) repository.FacilitiesRepository {
	return &SupabaseFacilitiesRepository{
		client: client,
	}
}

func (r *SupabaseFacilitiesRepository) GetByID(ctx context.Context, id string) (*model.Facility, error) {
	var facilities []model.Facility
	data, count, err := r.client.GetClient().From("facilities").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("施設データの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &facilities); err != nil {
		return nil, fmt.Errorf("施設データのJSONアンマーシャル失敗: %w", err)
	}

	if len(facilities) == 0 {
		return nil, model.ErrNotFound
	}

	return &facilities[0], nil
}

func (r *SupabaseFacilitiesRepository) GetByOrgID(ctx context.Context, orgID string) (*model.Facility, error) {
	var facilities []model.Facility
	data, count, err := r.client.GetClient().From("facilities").Select("*", "exact", false).Eq("org_id", orgID).Execute()
	if err != nil {
		return nil, fmt.Errorf("組織の施設データの取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &facilities); err != nil {
		return nil, fmt.Errorf("施設データのJSONアンマーシャル失敗: %w", err)
	}

	if len(facilities) == 0 {
		return nil, model.ErrNotFound
	}

	return &facilities[0], nil
}

// facilityUpdateDB プロフィール部分更新用のペイロード。
// nilのフィールドはJSONに含まれず、更新対象にならない
type facilityUpdateDB struct {
	Images     *[]string `json:"images,omitempty"`
	Insurances *[]string `json:"insurances,omitempty"`
	Services   *[]string `json:"services,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	UpdatedAt  string    `json:"updated_at"`
}

func (r *SupabaseFacilitiesRepository) UpdateProfile(ctx context.Context, orgID string, input *model.UpdateProfileInput) (*model.Facility, error) {
	payload := facilityUpdateDB{
		Images:     input.Images,
		Insurances: input.Insurances,
		Services:   input.Services,
		Bio:        input.Bio,
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("プロフィール更新データのJSONマーシャル失敗: %w", err)
	}

	_, _, err = r.client.GetClient().From("facilities").Update(string(data), "", "").Eq("org_id", orgID).Execute()
	if err != nil {
		return nil, fmt.Errorf("プロフィールの更新失敗: %w", err)
	}

	// 更新後の行を読み直して返す
	return r.GetByOrgID(ctx, orgID)
}
