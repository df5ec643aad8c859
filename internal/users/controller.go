package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Controller handles HTTP requests for user profiles
type Controller struct {
	service Service
}

// NewController creates a new user controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetProfile handles GET /api/users/:userId
func (c *Controller) GetProfile(ctx *gin.Context) {
	userID := ctx.Param("userId")

	user, err := c.service.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"error":   "User not found",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, user)
}
