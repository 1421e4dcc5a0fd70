package repository

import (
	"context"

	"CareMatch-App/internal/domain/model"
)

// FacilitiesRepository facilitiesテーブルへのアクセス
type FacilitiesRepository interface {
	GetByID(ctx context.Context, id string) (*model.Facility, error)
	// GetByOrgID 組織に紐づく施設プロフィールを取得（1組織1施設）
	GetByOrgID(ctx context.Context, orgID string) (*model.Facility, error)
	// UpdateProfile 指定フィールドのみ更新し、更新後の行を返す
	UpdateProfile(ctx context.Context, orgID string, input *model.UpdateProfileInput) (*model.Facility, error)
}
