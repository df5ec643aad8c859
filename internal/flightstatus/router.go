package flightstatus

import (
	"voyago/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupFlightStatusRoutes(rg *gin.RouterGroup, controller *Controller) {
	statusRoutes := rg.Group("/api/flight-status")
	{
		statusRoutes.GET("/:flightId", controller.GetByFlightID)                 // GET /api/flight-status/:flightId
		statusRoutes.GET("/number/:flightNumber", controller.GetByFlightNumber)  // GET /api/flight-status/number/:flightNumber
	}

	// Status overrides come from operations tooling
	admin := rg.Group("/api/flight-status")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.PUT("/:flightId", controller.UpdateStatus) // PUT /api/flight-status/:flightId
	}
}
