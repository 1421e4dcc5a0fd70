package usecase

import (
	"context"
	"log"

	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
	"CareMatch-App/internal/domain/service"
)

type ServiceAreaUseCase interface {
	// ListForFacility 施設のサービスエリア一覧を取得する（閲覧権限チェック付き）
	ListForFacility(ctx context.Context, p model.Principal, facilityID string) ([]model.ServiceArea, error)

	// ReplaceAll 施設のエリア集合を提出された集合で丸ごと置き換える。
	// 検証はすべての書き込みに先行し、違反時は部分書き込みなしで失敗する
	ReplaceAll(ctx context.Context, p model.Principal, facilityID string, inputs []model.CircleInput) ([]model.ServiceArea, error)

	// UpdateOne 単一エリアの部分更新（所有施設を解決して管理権限を確認してから更新）
	UpdateOne(ctx context.Context, p model.Principal, input *model.UpdateAreaInput) (*model.ServiceArea, error)

	// DeleteOne 単一エリアの削除
	DeleteOne(ctx context.Context, p model.Principal, areaID string) error

	// Covering 指定地点を円がカバーしているエリアだけを返す
	Covering(ctx context.Context, p model.Principal, facilityID string, lat, lng float64) ([]model.ServiceArea, error)
}

// serviceAreaUseCaseImpl ServiceAreaUseCaseの実装
type serviceAreaUseCaseImpl struct {
	guard *service.AccessGuard
	areas repository.ServiceAreasRepository
}

// NewServiceAreaUseCase 新しいServiceAreaUseCaseインスタンスを作成
func NewServiceAreaUseCase(guard *service.AccessGuard, areas repository.ServiceAreasRepository) ServiceAreaUseCase {
	return &serviceAreaUseCaseImpl{
		guard: guard,
		areas: areas,
	}
}

func (u *serviceAreaUseCaseImpl) ListForFacility(ctx context.Context, p model.Principal, facilityID string) ([]model.ServiceArea, error) {
	if err := u.guard.CanView(ctx, p, facilityID); err != nil {
		return nil, err
	}
	return u.areas.ListByFacilityID(ctx, facilityID)
}

func (u *serviceAreaUseCaseImpl) ReplaceAll(ctx context.Context, p model.Principal, facilityID string, inputs []model.CircleInput) ([]model.ServiceArea, error) {
	if err := u.guard.CanManage(ctx, p, facilityID); err != nil {
		return nil, err
	}

	// 検証はすべての変更に先行する。1件でも不正なら何も書き込まない
	if err := model.ValidateCircleInputs(inputs); err != nil {
		return nil, err
	}

	areas, err := u.areas.ReplaceAll(ctx, facilityID, inputs)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ 施設 %s のサービスエリアを置き換え (%d件)", facilityID, len(areas))
	return areas, nil
}

func (u *serviceAreaUseCaseImpl) UpdateOne(ctx context.Context, p model.Principal, input *model.UpdateAreaInput) (*model.ServiceArea, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// 変更の前に所有施設を解決し、その施設への管理権限を確認する
	existing, err := u.areas.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := u.guard.CanManage(ctx, p, existing.FacilityID); err != nil {
		return nil, err
	}

	return u.areas.UpdateOne(ctx, input)
}

func (u *serviceAreaUseCaseImpl) DeleteOne(ctx context.Context, p model.Principal, areaID string) error {
	existing, err := u.areas.GetByID(ctx, areaID)
	if err != nil {
		return err
	}
	if err := u.guard.CanManage(ctx, p, existing.FacilityID); err != nil {
		return err
	}

	return u.areas.DeleteOne(ctx, areaID)
}

func (u *serviceAreaUseCaseImpl) Covering(ctx context.Context, p model.Principal, facilityID string, lat, lng float64) ([]model.ServiceArea, error) {
	areas, err := u.ListForFacility(ctx, p, facilityID)
	if err != nil {
		return nil, err
	}

	covering := []model.ServiceArea{}
	for _, area := range areas {
		if area.CoversPoint(lat, lng) {
			covering = append(covering, area)
		}
	}
	return covering, nil
}
