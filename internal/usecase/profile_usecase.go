package usecase

import (
	"context"
	"fmt"
	"log"

	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
)

type ProfileUseCase interface {
	// Get 呼び出し元の組織に紐づく施設プロフィールを取得
	Get(ctx context.Context, p model.Principal) (*model.Facility, error)

	// Update プロフィールを部分更新する。検証違反時は何も書き込まない
	Update(ctx context.Context, p model.Principal, input *model.UpdateProfileInput) (*model.Facility, error)
}

// profileUseCaseImpl ProfileUseCaseの実装
type profileUseCaseImpl struct {
	facilities repository.FacilitiesRepository
}

// NewProfileUseCase 新しいProfileUseCaseインスタンスを作成
func NewProfileUseCase(facilities repository.FacilitiesRepository) ProfileUseCase {
	return &profileUseCaseImpl{
		facilities: facilities,
	}
}

func (u *profileUseCaseImpl) Get(ctx context.Context, p model.Principal) (*model.Facility, error) {
	if p.OrgID == nil {
		return nil, fmt.Errorf("組織に所属していないユーザーにはプロフィールがありません")
	}
	return u.facilities.GetByOrgID(ctx, *p.OrgID)
}

func (u *profileUseCaseImpl) Update(ctx context.Context, p model.Principal, input *model.UpdateProfileInput) (*model.Facility, error) {
	if p.OrgID == nil {
		return nil, fmt.Errorf("組織に所属していないユーザーにはプロフィールがありません")
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	facility, err := u.facilities.UpdateProfile(ctx, *p.OrgID, input)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ 組織 %s のプロフィールを更新", *p.OrgID)
	return facility, nil
}
