package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
	"CareMatch-App/internal/infrastructure/database"
)

// PostgresServiceAreasRepository 直接PostgreSQL接続によるservice_areasアクセス。
// ReplaceAllを単一トランザクションで行うためのSupabase実装の代替
type PostgresServiceAreasRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresServiceAreasRepository(client *database.PostgreSQLClient) repository.ServiceAreasRepository {
	return &PostgresServiceAreasRepository{
		client: client,
	}
}

// serviceAreaRow スキャン結果を受け取るための構造体
type serviceAreaRow struct {
	ID          string
	FacilityID  string
	Lat         float64
	Lng         float64
	RadiusMiles float64
	City        sql.NullString
	State       sql.NullString
}

func (sr *serviceAreaRow) toModel() model.ServiceArea {
	area := model.ServiceArea{
		ID:          sr.ID,
		FacilityID:  sr.FacilityID,
		Lat:         sr.Lat,
		Lng:         sr.Lng,
		RadiusMiles: sr.RadiusMiles,
	}
	if sr.City.Valid {
		area.City = &sr.City.String
	}
	if sr.State.Valid {
		area.State = &sr.State.String
	}
	return area
}

const serviceAreaColumns = "id, facility_id, lat, lng, radius_miles, city, state"

func scanServiceArea(scanner interface{ Scan(...interface{}) error }) (model.ServiceArea, error) {
	var row serviceAreaRow
	if err := scanner.Scan(&row.ID, &row.FacilityID, &row.Lat, &row.Lng, &row.RadiusMiles, &row.City, &row.State); err != nil {
		return model.ServiceArea{}, err
	}
	return row.toModel(), nil
}

func (r *PostgresServiceAreasRepository) ListByFacilityID(ctx context.Context, facilityID string) ([]model.ServiceArea, error) {
	query := fmt.Sprintf("SELECT %s FROM service_areas WHERE facility_id = $1", serviceAreaColumns)
	rows, err := r.client.DB.QueryContext(ctx, query, facilityID)
	if err != nil {
		return nil, fmt.Errorf("サービスエリアの取得失敗: %w", err)
	}
	defer rows.Close()

	areas := []model.ServiceArea{}
	for rows.Next() {
		area, err := scanServiceArea(rows)
		if err != nil {
			return nil, fmt.Errorf("サービスエリアのスキャン失敗: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("サービスエリアの読み取りエラー: %w", err)
	}

	return areas, nil
}

func (r *PostgresServiceAreasRepository) GetByID(ctx context.Context, id string) (*model.ServiceArea, error) {
	query := fmt.Sprintf("SELECT %s FROM service_areas WHERE id = $1", serviceAreaColumns)
	area, err := scanServiceArea(r.client.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("サービスエリアの取得失敗: %w", err)
	}
	return &area, nil
}

// ReplaceAll 全削除→全挿入を単一トランザクションで行う。
// 挿入が失敗した場合はロールバックされ、既存のエリア集合は保持される
func (r *PostgresServiceAreasRepository) ReplaceAll(ctx context.Context, facilityID string, inputs []model.CircleInput) ([]model.ServiceArea, error) {
	tx, err := r.client.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("トランザクションの開始失敗: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM service_areas WHERE facility_id = $1", facilityID); err != nil {
		return nil, fmt.Errorf("既存サービスエリアの削除失敗: %w", err)
	}

	insertQuery := fmt.Sprintf(
		"INSERT INTO service_areas (%s) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING %s",
		serviceAreaColumns, serviceAreaColumns,
	)

	areas := []model.ServiceArea{}
	for _, in := range inputs {
		// クライアント指定のIDを保持する（省略時はこちらで採番）
		id := uuid.New().String()
		if in.ID != nil && *in.ID != "" {
			id = *in.ID
		}

		area, err := scanServiceArea(tx.QueryRowContext(ctx, insertQuery,
			id, facilityID, *in.Lat, *in.Lng, *in.RadiusMiles, in.City, in.State))
		if err != nil {
			return nil, fmt.Errorf("サービスエリアの挿入失敗: %w", err)
		}
		areas = append(areas, area)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("トランザクションのコミット失敗: %w", err)
	}

	return areas, nil
}

func (r *PostgresServiceAreasRepository) UpdateOne(ctx context.Context, input *model.UpdateAreaInput) (*model.ServiceArea, error) {
	query := fmt.Sprintf(`
		UPDATE service_areas SET
			lat          = COALESCE($2, lat),
			lng          = COALESCE($3, lng),
			radius_miles = COALESCE($4, radius_miles),
			city         = COALESCE($5, city),
			state        = COALESCE($6, state)
		WHERE id = $1
		RETURNING %s`, serviceAreaColumns)

	area, err := scanServiceArea(r.client.DB.QueryRowContext(ctx, query,
		input.ID, input.Lat, input.Lng, input.RadiusMiles, input.City, input.State))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("サービスエリアの更新失敗: %w", err)
	}
	return &area, nil
}

func (r *PostgresServiceAreasRepository) DeleteOne(ctx context.Context, id string) error {
	result, err := r.client.DB.ExecContext(ctx, "DELETE FROM service_areas WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("サービスエリアの削除失敗: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("削除結果の確認失敗: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}
