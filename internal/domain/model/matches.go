package model

import (
	"fmt"
	"net/url"
	"time"
)

const (
	// DefaultMatchesPerPage per_page省略時の件数
	DefaultMatchesPerPage = 10
	// MaxMatchesPerPage per_pageの上限（超過分はクランプ）
	MaxMatchesPerPage = 100
)

// FacilitySummary マッチ一覧に埋め込む施設の要約
type FacilitySummary struct {
	ID       string  `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	LogoURL  *string `json:"logo_url" db:"logo_url"`
	Industry *string `json:"industry,omitempty" db:"industry"`
}

// Match matchesテーブルの行。外部のスコアリング処理が生成し、
// 本サービスからは読み取り専用。scoreは降順ソートにのみ使う
type Match struct {
	ID          string           `json:"id" db:"id"`
	FacilityAID string           `json:"facility_a_id" db:"facility_a_id"`
	FacilityBID string           `json:"facility_b_id" db:"facility_b_id"`
	OrgID       string           `json:"org_id" db:"org_id"`
	Score       float64          `json:"score" db:"score"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	FacilityA   *FacilitySummary `json:"facility_a,omitempty"`
	FacilityB   *FacilitySummary `json:"facility_b,omitempty"`
}

// FillPlaceholderLogos ロゴ未設定の施設にプレースホルダー画像URLを補完する
func (m *Match) FillPlaceholderLogos() {
	fillLogo(m.FacilityA)
	fillLogo(m.FacilityB)
}

func fillLogo(f *FacilitySummary) {
	if f == nil {
		return
	}
	if f.LogoURL != nil && *f.LogoURL != "" {
		return
	}
	name := f.Name
	if name == "" {
		name = "Business"
	}
	placeholder := fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
	f.LogoURL = &placeholder
}

// ClampMatchesPage pageを1以上にクランプ
func ClampMatchesPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampMatchesPerPage per_pageを1〜100にクランプ（0以下はデフォルト値）
func ClampMatchesPerPage(perPage int) int {
	if perPage < 1 {
		return DefaultMatchesPerPage
	}
	if perPage > MaxMatchesPerPage {
		return MaxMatchesPerPage
	}
	return perPage
}
