package repository

import (
	"context"

	"CareMatch-App/internal/domain/model"
)

// ServiceAreasRepository service_areasテーブルへのアクセス。
// Supabase実装と直接PostgreSQL実装の2つがある（ReplaceAllの
// トランザクション保証が必要な場合はPostgreSQL実装を使う）
type ServiceAreasRepository interface {
	ListByFacilityID(ctx context.Context, facilityID string) ([]model.ServiceArea, error)
	GetByID(ctx context.Context, id string) (*model.ServiceArea, error)
	// ReplaceAll 施設のエリア集合を丸ごと置き換える（全削除→全挿入）。
	// 差分マージではないため、呼び出し側は常に完全な集合を渡すこと
	ReplaceAll(ctx context.Context, facilityID string, inputs []model.CircleInput) ([]model.ServiceArea, error)
	// UpdateOne 単一エリアの部分更新。対象が存在しない場合はmodel.ErrNotFound
	UpdateOne(ctx context.Context, input *model.UpdateAreaInput) (*model.ServiceArea, error)
	// DeleteOne 単一エリアの削除。対象が存在しない場合はmodel.ErrNotFound
	DeleteOne(ctx context.Context, id string) error
}
