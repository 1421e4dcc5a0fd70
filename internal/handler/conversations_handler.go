package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/usecase"
)

// ConversationsHandler チャットプレビューに関するHTTPハンドラー
type ConversationsHandler struct {
	conversationUseCase usecase.ConversationUseCase
}

// NewConversationsHandler ConversationsHandlerの新しいインスタンスを作成
func NewConversationsHandler(conversationUseCase usecase.ConversationUseCase) *ConversationsHandler {
	return &ConversationsHandler{
		conversationUseCase: conversationUseCase,
	}
}

// List GET /api/conversations?facilityId= - 施設が参加する会話一覧
func (h *ConversationsHandler) List(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	facilityID := c.Query("facilityId")
	if facilityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "facilityId query param required"})
		return
	}

	conversations, err := h.conversationUseCase.ListForFacility(c.Request.Context(), principal, facilityID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// Messages GET /api/conversations/:id/messages?facilityId=&limit= - メッセージ一覧
func (h *ConversationsHandler) Messages(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	conversationID := c.Param("id")
	facilityID := c.Query("facilityId")
	if facilityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "facilityId query param required"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		limit = model.DefaultMessagesLimit
	}

	messages, err := h.conversationUseCase.Messages(c.Request.Context(), principal, conversationID, facilityID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// Post POST /api/conversations/:id/messages - メッセージ投稿
func (h *ConversationsHandler) Post(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	conversationID := c.Param("id")

	var req model.PostMessageInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	msg, err := h.conversationUseCase.Post(c.Request.Context(), principal, conversationID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}
