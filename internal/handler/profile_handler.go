package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/usecase"
)

// ProfileHandler 施設プロフィールに関するHTTPハンドラー
type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
}

// NewProfileHandler ProfileHandlerの新しいインスタンスを作成
func NewProfileHandler(profileUseCase usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// Get GET /api/profile - 呼び出し元の施設プロフィールを取得
func (h *ProfileHandler) Get(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	facility, err := h.profileUseCase.Get(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, facility)
}

// Update PUT /api/profile - プロフィールの部分更新
func (h *ProfileHandler) Update(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req model.UpdateProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	facility, err := h.profileUseCase.Update(c.Request.Context(), principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, facility)
}
