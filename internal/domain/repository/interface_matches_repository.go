package repository

import (
	"context"

	"CareMatch-App/internal/domain/model"
)

// MatchesQuery マッチ一覧取得の条件。ページングはクランプ済みの値を渡す
type MatchesQuery struct {
	Page       int
	PerPage    int
	OrgID      string // 空なら絞り込みなし
	FacilityID string // 空なら絞り込みなし（facility_a/facility_bどちらかに一致）
}

// MatchesRepository matchesテーブルへの読み取り専用アクセス
type MatchesRepository interface {
	// List スコア降順・範囲ページングで取得し、施設要約を埋め込んで返す
	List(ctx context.Context, q MatchesQuery) ([]model.Match, error)
}
