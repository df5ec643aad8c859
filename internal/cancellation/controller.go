package cancellation

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller handles HTTP requests for cancellations
type Controller struct {
	service Service
}

// NewController creates a new cancellation controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetUserBookings handles GET /cancellation/bookings/:userId
func (c *Controller) GetUserBookings(ctx *gin.Context) {
	userID := ctx.Param("userId")

	userBookings, err := c.service.GetUserBookings(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to get user bookings",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, userBookings)
}

// CalculateRefund handles POST /cancellation/calculate-refund
func (c *Controller) CalculateRefund(ctx *gin.Context) {
	var req CalculateRefundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	quote, err := c.service.CalculateRefund(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to calculate refund",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, quote)
}

// CancelBooking handles POST /cancellation/cancel
func (c *Controller) CancelBooking(ctx *gin.Context) {
	var req CancelBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	booking, err := c.service.CancelBooking(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to cancel booking",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, booking)
}

// UpdateRefundStatus handles PUT /cancellation/refund-status
func (c *Controller) UpdateRefundStatus(ctx *gin.Context) {
	var req UpdateRefundStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	booking, err := c.service.UpdateRefundStatus(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to update refund status",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, booking)
}
