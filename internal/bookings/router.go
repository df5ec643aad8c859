package bookings

import (
	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookingsGroup := rg.Group("/api/bookings")
	{
		bookingsGroup.POST("", controller.CreateBooking)                // POST /api/bookings
		bookingsGroup.GET("/:id", controller.GetBooking)                // GET /api/bookings/:id
		bookingsGroup.GET("/user/:userId", controller.GetUserBookings)  // GET /api/bookings/user/:userId
	}
}
