package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
)

// fakeMatchesRepository 受け取ったクエリを記録するインメモリ実装
type fakeMatchesRepository struct {
	lastQuery repository.MatchesQuery
	matches   []model.Match
}

func (f *fakeMatchesRepository) List(ctx context.Context, q repository.MatchesQuery) ([]model.Match, error) {
	f.lastQuery = q
	return f.matches, nil
}

func TestMatchesList_ClampsPagination(t *testing.T) {
	repo := &fakeMatchesRepository{}
	uc := NewMatchesUseCase(repo)
	ctx := context.Background()
	p := model.Principal{UserID: "u1", Role: model.RoleUser, OrgID: strPtr("org1")}

	_, err := uc.List(ctx, p, 0, 250, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lastQuery.Page)
	assert.Equal(t, 100, repo.lastQuery.PerPage)

	_, err = uc.List(ctx, p, 3, 0, "org1", "f1")
	require.NoError(t, err)
	assert.Equal(t, 3, repo.lastQuery.Page)
	assert.Equal(t, model.DefaultMatchesPerPage, repo.lastQuery.PerPage)
	assert.Equal(t, "org1", repo.lastQuery.OrgID)
	assert.Equal(t, "f1", repo.lastQuery.FacilityID)
}

func TestMatchesList_FillsPlaceholderLogos(t *testing.T) {
	repo := &fakeMatchesRepository{
		matches: []model.Match{
			{ID: "m1", Score: 0.9, FacilityA: &model.FacilitySummary{ID: "f1", Name: "Sunrise Care"}},
		},
	}
	uc := NewMatchesUseCase(repo)

	matches, err := uc.List(context.Background(), model.Principal{Role: model.RoleUser}, 1, 10, "", "")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.NotNil(t, matches[0].FacilityA.LogoURL)
	assert.Contains(t, *matches[0].FacilityA.LogoURL, "ui-avatars.com")
}
