package rooms

import (
	"github.com/gin-gonic/gin"
)

func SetupRoomRoutes(rg *gin.RouterGroup, controller *Controller) {
	roomSelection := rg.Group("/api/room-selection")
	{
		roomSelection.GET("/hotel/:hotelId", controller.GetRoomLayout)                        // GET /api/room-selection/hotel/:hotelId
		roomSelection.POST("/book-room", controller.BookRoom)                                 // POST /api/room-selection/book-room
		roomSelection.GET("/hotel/:hotelId/available/:roomType", controller.GetAvailableRooms) // GET /api/room-selection/hotel/:hotelId/available/:roomType
	}
}
