package usecase

import (
	"context"

	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
)

type MatchesUseCase interface {
	// List スコア降順のマッチ一覧をページングして取得。
	// pageは1以上、perPageは1〜100にクランプされる
	List(ctx context.Context, p model.Principal, page, perPage int, orgID, facilityID string) ([]model.Match, error)
}

// matchesUseCaseImpl MatchesUseCaseの実装
type matchesUseCaseImpl struct {
	matches repository.MatchesRepository
}

// NewMatchesUseCase 新しいMatchesUseCaseインスタンスを作成
func NewMatchesUseCase(matches repository.MatchesRepository) MatchesUseCase {
	return &matchesUseCaseImpl{
		matches: matches,
	}
}

func (u *matchesUseCaseImpl) List(ctx context.Context, p model.Principal, page, perPage int, orgID, facilityID string) ([]model.Match, error) {
	query := repository.MatchesQuery{
		Page:       model.ClampMatchesPage(page),
		PerPage:    model.ClampMatchesPerPage(perPage),
		OrgID:      orgID,
		FacilityID: facilityID,
	}

	matches, err := u.matches.List(ctx, query)
	if err != nil {
		return nil, err
	}

	// ロゴ未設定の施設にプレースホルダーを補完してから返す
	for i := range matches {
		matches[i].FillPlaceholderLogos()
	}
	return matches, nil
}
