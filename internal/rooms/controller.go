package rooms

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller handles HTTP requests for room selection
type Controller struct {
	service Service
}

// NewController creates a new room controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetRoomLayout handles GET /api/room-selection/hotel/:hotelId
func (c *Controller) GetRoomLayout(ctx *gin.Context) {
	hotelID := ctx.Param("hotelId")

	data, err := c.service.GetRoomLayout(ctx.Request.Context(), hotelID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load room layout",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, data)
}

// BookRoom handles POST /api/room-selection/book-room
func (c *Controller) BookRoom(ctx *gin.Context) {
	var req BookRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	result, err := c.service.BookRoom(ctx.Request.Context(), req)
	if err != nil {
		var conflict *RoomConflictError
		if errors.As(err, &conflict) {
			ctx.JSON(http.StatusConflict, gin.H{
				"error":   "Room no longer available",
				"details": err.Error(),
			})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to book room",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetAvailableRooms handles GET /api/room-selection/hotel/:hotelId/available/:roomType
func (c *Controller) GetAvailableRooms(ctx *gin.Context) {
	hotelID := ctx.Param("hotelId")
	roomType := RoomType(ctx.Param("roomType"))

	result, err := c.service.GetAvailableRoomsByType(ctx.Request.Context(), hotelID, roomType)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to load available rooms",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
