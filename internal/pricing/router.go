package pricing

import (
	"voyago/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPricingRoutes(rg *gin.RouterGroup, controller *Controller) {
	pricingGroup := rg.Group("/api/pricing")
	{
		pricingGroup.POST("/freeze", controller.FreezePrice)                      // POST /api/pricing/freeze
		pricingGroup.GET("/freeze/:itemType/:itemId", controller.GetFreezeStatus) // GET /api/pricing/freeze/:itemType/:itemId
		pricingGroup.GET("/history/:itemId/:itemType", controller.GetPriceHistory)   // GET /api/pricing/history/:itemId/:itemType
		pricingGroup.GET("/insights/:itemId/:itemType", controller.GetPriceInsights) // GET /api/pricing/insights/:itemId/:itemType
	}

	// Price points are recorded by back-office observers
	admin := rg.Group("/api/pricing")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("/history", controller.RecordPricePoint) // POST /api/pricing/history
	}
}
