package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"CareMatch-App/internal/domain/model"
	"CareMatch-App/internal/usecase"
)

// ServiceAreasHandler サービスエリアに関するHTTPハンドラー
type ServiceAreasHandler struct {
	serviceAreaUseCase usecase.ServiceAreaUseCase
}

// NewServiceAreasHandler ServiceAreasHandlerの新しいインスタンスを作成
func NewServiceAreasHandler(serviceAreaUseCase usecase.ServiceAreaUseCase) *ServiceAreasHandler {
	return &ServiceAreasHandler{
		serviceAreaUseCase: serviceAreaUseCase,
	}
}

// List GET /api/service-areas?facilityId= - 施設のサービスエリア一覧を取得
func (h *ServiceAreasHandler) List(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	facilityID := c.Query("facilityId")
	if facilityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "facilityId query param required"})
		return
	}

	areas, err := h.serviceAreaUseCase.ListForFacility(c.Request.Context(), principal, facilityID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// replaceAllRequest POST /api/service-areas のリクエストボディ
type replaceAllRequest struct {
	FacilityID string              `json:"facilityId"`
	Areas      []model.CircleInput `json:"areas"`
}

// ReplaceAll POST /api/service-areas - 施設のエリア集合を丸ごと置き換え
func (h *ServiceAreasHandler) ReplaceAll(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req replaceAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if req.FacilityID == "" || req.Areas == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "facilityId and areas are required"})
		return
	}

	areas, err := h.serviceAreaUseCase.ReplaceAll(c.Request.Context(), principal, req.FacilityID, req.Areas)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// UpdateOne PUT /api/service-areas - 単一エリアの部分更新
func (h *ServiceAreasHandler) UpdateOne(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req model.UpdateAreaInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	area, err := h.serviceAreaUseCase.UpdateOne(c.Request.Context(), principal, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"area": area})
}

// DeleteOne DELETE /api/service-areas?id= - 単一エリアの削除
func (h *ServiceAreasHandler) DeleteOne(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	areaID := c.Query("id")
	if areaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id query param required"})
		return
	}

	if err := h.serviceAreaUseCase.DeleteOne(c.Request.Context(), principal, areaID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Covering GET /api/service-areas/covering?facilityId=&lat=&lng= -
// 指定地点をカバーしているエリアだけを返す
func (h *ServiceAreasHandler) Covering(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	facilityID := c.Query("facilityId")
	if facilityID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "facilityId query param required"})
		return
	}

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be numeric"})
		return
	}

	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lng must be numeric"})
		return
	}

	areas, err := h.serviceAreaUseCase.Covering(c.Request.Context(), principal, facilityID, lat, lng)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"areas": areas})
}
