package model

import (
	"time"
	"unicode/utf8"
)

const (
	// MaxProfileImages プロフィール画像の上限枚数
	MaxProfileImages = 3
	// MaxBioLength 紹介文の最大文字数
	MaxBioLength = 300
)

// Facility facilitiesテーブルの行。施設は必ず1つの組織に属し、
// 組織の所属が認可の単位になる
type Facility struct {
	ID         string    `json:"id" db:"id"`
	OrgID      string    `json:"org_id" db:"org_id"`
	Name       string    `json:"name" db:"name"`
	Bio        string    `json:"bio" db:"bio"`
	Images     []string  `json:"images" db:"images"`
	Insurances []string  `json:"insurances" db:"insurances"`
	Services   []string  `json:"services" db:"services"`
	LogoURL    *string   `json:"logo_url,omitempty" db:"logo_url"`
	Industry   *string   `json:"industry,omitempty" db:"industry"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// UpdateProfileInput PUT /api/profile のリクエストボディ。
// 各フィールドは独立して省略可能（nilなら未更新）
type UpdateProfileInput struct {
	Images     *[]string `json:"images"`
	Insurances *[]string `json:"insurances"`
	Services   *[]string `json:"services"`
	Bio        *string   `json:"bio"`
}

// Validate 入力検証。違反があれば何も書き込まずValidationErrorを返す
func (in *UpdateProfileInput) Validate() error {
	if in.Images != nil && len(*in.Images) > MaxProfileImages {
		return NewValidationError("images", "must be an array with max 3 items")
	}
	// バイト数ではなく文字数で数える（日本語の紹介文を誤って弾かないため）
	if in.Bio != nil && utf8.RuneCountInString(*in.Bio) > MaxBioLength {
		return NewValidationError("bio", "must be 300 characters or less")
	}
	return nil
}

// IsEmpty 更新対象フィールドが1つもないかチェック
func (in *UpdateProfileInput) IsEmpty() bool {
	return in.Images == nil && in.Insurances == nil && in.Services == nil && in.Bio == nil
}
