package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims Supabaseが発行するアクセストークン（HS256 JWT）のクレーム
type AccessTokenClaims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ParseAccessToken アクセストークンを検証してセッションの主体（ユーザーID）を返す。
// 署名はプロジェクトのJWTシークレットで検証し、HS256以外のアルゴリズムは拒否する
func ParseAccessToken(tokenString, secret string) (string, error) {
	claims := &AccessTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", fmt.Errorf("アクセストークンの検証失敗: %w", err)
	}
	if !token.Valid {
		return "", fmt.Errorf("アクセストークンが無効です")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("アクセストークンにsubクレームがありません")
	}
	return claims.Subject, nil
}
