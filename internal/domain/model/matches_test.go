package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampMatchesPage(t *testing.T) {
	assert.Equal(t, 1, ClampMatchesPage(0))
	assert.Equal(t, 1, ClampMatchesPage(-3))
	assert.Equal(t, 7, ClampMatchesPage(7))
}

func TestClampMatchesPerPage(t *testing.T) {
	assert.Equal(t, DefaultMatchesPerPage, ClampMatchesPerPage(0))
	assert.Equal(t, 100, ClampMatchesPerPage(250))
	assert.Equal(t, 25, ClampMatchesPerPage(25))
}

func TestFillPlaceholderLogos(t *testing.T) {
	logo := "https://example.com/logo.png"
	m := Match{
		FacilityA: &FacilitySummary{ID: "f1", Name: "Sunrise Care"},
		FacilityB: &FacilitySummary{ID: "f2", Name: "Valley Rehab", LogoURL: &logo},
	}

	m.FillPlaceholderLogos()

	// 未設定の施設だけプレースホルダーが補完される
	assert.Contains(t, *m.FacilityA.LogoURL, "ui-avatars.com")
	assert.Contains(t, *m.FacilityA.LogoURL, "Sunrise+Care")
	assert.Equal(t, logo, *m.FacilityB.LogoURL)
}

func TestFillPlaceholderLogos_NilSummaries(t *testing.T) {
	m := Match{}
	// 埋め込みがない行でもパニックしない
	m.FillPlaceholderLogos()
	assert.Nil(t, m.FacilityA)
}
