package cancellation

import (
	"voyago/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCancellationRoutes(rg *gin.RouterGroup, controller *Controller) {
	cancellationGroup := rg.Group("/cancellation")
	{
		cancellationGroup.GET("/bookings/:userId", controller.GetUserBookings) // GET /cancellation/bookings/:userId
		cancellationGroup.POST("/calculate-refund", controller.CalculateRefund) // POST /cancellation/calculate-refund
		cancellationGroup.POST("/cancel", controller.CancelBooking)             // POST /cancellation/cancel
	}

	// Refund progress updates come from back-office tooling
	admin := rg.Group("/cancellation")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.PUT("/refund-status", controller.UpdateRefundStatus) // PUT /cancellation/refund-status
	}
}
