package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"CareMatch-App/internal/database"
	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
)

type SupabaseMatchesRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseMatchesRepository(client *database.SupabaseClient) repository.MatchesRepository {
	return &SupabaseMatchesRepository{
		client: client,
	}
}

// matchSelect 埋め込みの施設要約を含むselect句。
// facilities への外部キーが2本あるため、リレーション名を明示する
const matchSelect = "*," +
	"facility_a:facilities!matches_facility_a_id_fkey(id,name,logo_url,industry)," +
	"facility_b:facilities!matches_facility_b_id_fkey(id,name,logo_url,industry)"

func (r *SupabaseMatchesRepository) List(ctx context.Context, q repository.MatchesQuery) ([]model.Match, error) {
	from := (q.Page - 1) * q.PerPage
	to := q.Page*q.PerPage - 1

	builder := r.client.GetClient().From("matches").
		Select(matchSelect, "exact", false).
		Order("score", &postgrest.OrderOpts{Ascending: false}).
		Range(from, to, "")

	if q.OrgID != "" {
		builder = builder.Eq("org_id", q.OrgID)
	}
	if q.FacilityID != "" {
		builder = builder.Or(fmt.Sprintf("facility_a_id.eq.%s,facility_b_id.eq.%s", q.FacilityID, q.FacilityID), "")
	}

	data, count, err := builder.Execute()
	if err != nil {
		return nil, fmt.Errorf("マッチデータの取得失敗: %w", err)
	}
	_ = count

	var matches []model.Match
	if err := json.Unmarshal([]byte(data), &matches); err != nil {
		return nil, fmt.Errorf("マッチデータのJSONアンマーシャル失敗: %w", err)
	}

	if matches == nil {
		matches = []model.Match{}
	}
	return matches, nil
}
