package flightstatus

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller handles HTTP requests for flight status
type Controller struct {
	service Service
}

// NewController creates a new flight status controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetByFlightID handles GET /api/flight-status/:flightId
func (c *Controller) GetByFlightID(ctx *gin.Context) {
	flightID := ctx.Param("flightId")

	status, err := c.service.GetByFlightID(ctx.Request.Context(), flightID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load flight status",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, status)
}

// GetByFlightNumber handles GET /api/flight-status/number/:flightNumber
func (c *Controller) GetByFlightNumber(ctx *gin.Context) {
	flightNumber := ctx.Param("flightNumber")

	status, err := c.service.GetByFlightNumber(ctx.Request.Context(), flightNumber)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":   "Flight status not found",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, status)
}

// UpdateStatus handles PUT /api/flight-status/:flightId
func (c *Controller) UpdateStatus(ctx *gin.Context) {
	flightID := ctx.Param("flightId")

	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	status, err := c.service.UpdateStatus(ctx.Request.Context(), flightID, req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to update flight status",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, status)
}
