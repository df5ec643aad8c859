package seats

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller handles HTTP requests for seat selection
type Controller struct {
	service Service
}

// NewController creates a new seat controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetSeatMap handles GET /api/seat-selection/flight/:flightId
func (c *Controller) GetSeatMap(ctx *gin.Context) {
	flightID := ctx.Param("flightId")

	data, err := c.service.GetSeatMap(ctx.Request.Context(), flightID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load seat map",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, data)
}

// BookSeats handles POST /api/seat-selection/book-seats
func (c *Controller) BookSeats(ctx *gin.Context) {
	var req BookSeatsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	result, err := c.service.BookSeats(ctx.Request.Context(), req)
	if err != nil {
		var conflict *SeatConflictError
		if errors.As(err, &conflict) {
			ctx.JSON(http.StatusConflict, gin.H{
				"error":   "Seat no longer available",
				"details": err.Error(),
			})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to book seats",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// CalculateUpgradePrice handles POST /api/seat-selection/calculate-upgrade-price
func (c *Controller) CalculateUpgradePrice(ctx *gin.Context) {
	var req UpgradePriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	result, err := c.service.CalculateUpgradePrice(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to calculate upgrade price",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
