package seats

import (
	"github.com/gin-gonic/gin"
)

func SetupSeatRoutes(rg *gin.RouterGroup, controller *Controller) {
	seatSelection := rg.Group("/api/seat-selection")
	{
		seatSelection.GET("/flight/:flightId", controller.GetSeatMap)                      // GET /api/seat-selection/flight/:flightId
		seatSelection.POST("/book-seats", controller.BookSeats)                            // POST /api/seat-selection/book-seats
		seatSelection.POST("/calculate-upgrade-price", controller.CalculateUpgradePrice)   // POST /api/seat-selection/calculate-upgrade-price
	}
}
