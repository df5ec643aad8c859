package users

import (
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(rg *gin.RouterGroup, controller *Controller) {
	usersGroup := rg.Group("/api/users")
	{
		usersGroup.GET("/:userId", controller.GetProfile) // GET /api/users/:userId
	}
}
