package service

import (
	"context"
	"errors"

	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
)

// AccessGuard ロールと組織所属に基づく認可チェック。
// すべてのハンドラーはストアに触れる前にここを通る。
// 判定はリクエストごとに再実行し、リクエストを跨いでキャッシュしない
// （ユーザーのロールや施設の所属は次のリクエストまでに変わり得るため）
type AccessGuard struct {
	facilities repository.FacilitiesRepository
}

func NewAccessGuard(facilities repository.FacilitiesRepository) *AccessGuard {
	return &AccessGuard{
		facilities: facilities,
	}
}

// RequireRole Principalのロールが許可リストに含まれるかチェック
func (g *AccessGuard) RequireRole(p model.Principal, allowed ...model.Role) error {
	for _, role := range allowed {
		if p.Role == role {
			return nil
		}
	}
	return model.ErrForbidden
}

// RequireFacilityInOrg 施設が呼び出し元の組織に属しているかチェック。
// 施設が存在しない場合も同じエラーを返し、存在有無を漏らさない。
// グローバル管理者はこのチェックをバイパスする
func (g *AccessGuard) RequireFacilityInOrg(ctx context.Context, p model.Principal, facilityID string) (*model.Facility, error) {
	facility, err := g.facilities.GetByID(ctx, facilityID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.ErrFacilityAccessDenied
		}
		return nil, err
	}

	if p.IsGlobalAdmin() {
		return facility, nil
	}

	if !p.InOrg(facility.OrgID) {
		return nil, model.ErrFacilityAccessDenied
	}

	return facility, nil
}

// CanView 閲覧可否。認証済みで施設と同じ組織に属していればよい
// （グローバル管理者は常に可）。管理より緩い読み取り側のチェック
func (g *AccessGuard) CanView(ctx context.Context, p model.Principal, facilityID string) error {
	_, err := g.RequireFacilityInOrg(ctx, p, facilityID)
	return err
}

// CanManage 管理可否。組織管理者またはグローバル管理者であることに加え、
// 組織管理者の場合は施設が自組織に属していることを施設単位で再確認する。
// ロールだけの判定では別組織の同ロールによる書き込みを防げない
func (g *AccessGuard) CanManage(ctx context.Context, p model.Principal, facilityID string) error {
	if err := g.RequireRole(p, model.RoleOrgAdmin, model.RoleAdmin); err != nil {
		return err
	}
	_, err := g.RequireFacilityInOrg(ctx, p, facilityID)
	return err
}
