package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"CareMatch-App/internal/usecase"
)

// MatchesHandler マッチ一覧に関するHTTPハンドラー
type MatchesHandler struct {
	matchesUseCase usecase.MatchesUseCase
}

// NewMatchesHandler MatchesHandlerの新しいインスタンスを作成
func NewMatchesHandler(matchesUseCase usecase.MatchesUseCase) *MatchesHandler {
	return &MatchesHandler{
		matchesUseCase: matchesUseCase,
	}
}

// List GET /api/matches - スコア降順のマッチ一覧を取得。
// page/per_pageは数値でなければデフォルト値として扱い、範囲外はクランプする
func (h *MatchesHandler) List(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil {
		perPage = 10
	}

	orgID := c.Query("orgId")
	facilityID := c.Query("facilityId")

	matches, err := h.matchesUseCase.List(c.Request.Context(), principal, page, perPage, orgID, facilityID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}
