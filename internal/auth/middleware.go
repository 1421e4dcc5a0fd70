package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/domain/repository"
)

const principalKey = "principal"

// accessTokenCookie ブラウザセッションで使われるSupabaseのアクセストークンcookie
const accessTokenCookie = "sb-access-token"

// RequireSession セッションを検証してPrincipalをコンテキストに載せるミドルウェア。
// AuthorizationヘッダーのBearerトークンを優先し、なければcookieにフォールバックする。
// x-user-id / x-user-role ヘッダーはクライアントが設定できるため一切信用しない
func RequireSession(users repository.UsersRepository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")

		if tokenStr == "" {
			if cookie, err := c.Cookie(accessTokenCookie); err == nil {
				tokenStr = "Bearer " + cookie
			}
		}

		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		tokenStr = strings.TrimSpace(strings.TrimPrefix(tokenStr, "Bearer "))

		subject, err := ParseAccessToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		// セッションの主体に対応するusers行が存在しなければ認証失敗扱い
		user, err := users.GetByID(c.Request.Context(), subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(principalKey, model.PrincipalFromUser(user))
		c.Next()
	}
}

// PrincipalFrom コンテキストからPrincipalを取得する
func PrincipalFrom(c *gin.Context) (model.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return model.Principal{}, false
	}
	principal, ok := value.(model.Principal)
	return principal, ok
}
