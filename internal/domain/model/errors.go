package model

import (
	"errors"
	"fmt"
)

// ハンドラー層でHTTPステータスに変換されるドメインエラー。
// メッセージはそのままAPIレスポンスの error フィールドになる
var (
	// ErrUnauthenticated セッションが無効、またはユーザーが存在しない（401相当）
	ErrUnauthenticated = errors.New("Unauthorized")

	// ErrForbidden ロールが不足している（403相当）
	ErrForbidden = errors.New("Insufficient permissions")

	// ErrFacilityAccessDenied 施設が存在しないか、呼び出し元の組織に属していない（403相当）。
	// 存在有無を漏らさないため、NotFoundとは区別せず同じメッセージで返す
	ErrFacilityAccessDenied = errors.New("Facility not found or access denied")

	// ErrNotFound 単一リソース操作で対象IDが存在しない（404相当）
	ErrNotFound = errors.New("Resource not found")
)

// ValidationError 入力検証エラー（400相当）。
// Indexは配列入力で何番目の要素が不正かを示す（配列でない場合は -1）
type ValidationError struct {
	Field   string
	Index   int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s[%d]: %s", e.Field, e.Index, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError 単一フィールドの検証エラーを作成
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Index: -1, Message: message}
}

// NewIndexedValidationError 配列入力の検証エラーを作成
func NewIndexedValidationError(field string, index int, message string) *ValidationError {
	return &ValidationError{Field: field, Index: index, Message: message}
}
