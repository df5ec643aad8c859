package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller handles HTTP requests for pricing
type Controller struct {
	service Service
}

// NewController creates a new pricing controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// FreezePrice handles POST /api/pricing/freeze
func (c *Controller) FreezePrice(ctx *gin.Context) {
	var req FreezePriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	result, err := c.service.FreezePrice(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to freeze price",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetFreezeStatus handles GET /api/pricing/freeze/:itemType/:itemId?userId=...
func (c *Controller) GetFreezeStatus(ctx *gin.Context) {
	itemType := ctx.Param("itemType")
	itemID := ctx.Param("itemId")
	userID := ctx.Query("userId")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required"})
		return
	}

	status, err := c.service.GetFreezeStatus(ctx.Request.Context(), itemType, itemID, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get freeze status",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, status)
}

// RecordPricePoint handles POST /api/pricing/history
func (c *Controller) RecordPricePoint(ctx *gin.Context) {
	var req RecordPricePointRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	history, err := c.service.RecordPricePoint(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to record price point",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, history)
}

// GetPriceHistory handles GET /api/pricing/history/:itemId/:itemType
func (c *Controller) GetPriceHistory(ctx *gin.Context) {
	itemID := ctx.Param("itemId")
	itemType := ctx.Param("itemType")

	history, err := c.service.GetPriceHistory(ctx.Request.Context(), itemID, itemType)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":   "Price history not found",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, history)
}

// GetPriceInsights handles GET /api/pricing/insights/:itemId/:itemType
func (c *Controller) GetPriceInsights(ctx *gin.Context) {
	itemID := ctx.Param("itemId")
	itemType := ctx.Param("itemType")

	insights, err := c.service.GetPriceInsights(ctx.Request.Context(), itemID, itemType)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":   "Price insights not available",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, insights)
}
