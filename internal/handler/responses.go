package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"CareMatch-App/internal/auth"
	"CareMatch-App/internal/domain/model"
)

// respondError ドメインエラーをHTTPステータスとJSONに変換する。
// 認証失敗(401)と認可失敗(403)は必ず区別して返す
func respondError(c *gin.Context, err error) {
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, model.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": model.ErrUnauthenticated.Error()})
	case errors.Is(err, model.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": model.ErrForbidden.Error()})
	case errors.Is(err, model.ErrFacilityAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": model.ErrFacilityAccessDenied.Error()})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": model.ErrNotFound.Error()})
	default:
		// ストア側のエラーはメッセージをそのまま通す
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// principalOrAbort コンテキストからPrincipalを取得する。
// ミドルウェアを通っていないルートで呼ばれた場合は401を返す
func principalOrAbort(c *gin.Context) (model.Principal, bool) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return model.Principal{}, false
	}
	return principal, true
}
