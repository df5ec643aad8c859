package reviews

import (
	"voyago/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupReviewRoutes(rg *gin.RouterGroup, controller *Controller) {
	reviewRoutes := rg.Group("/api/reviews")
	{
		reviewRoutes.POST("", controller.CreateReview)                            // POST /api/reviews
		reviewRoutes.GET("/item/:itemType/:itemId", controller.GetReviews)        // GET /api/reviews/item/:itemType/:itemId?sort=recent|helpful
		reviewRoutes.GET("/item/:itemType/:itemId/rating", controller.GetRatingSummary) // GET /api/reviews/item/:itemType/:itemId/rating
		reviewRoutes.POST("/:reviewId/helpful", controller.MarkHelpful)           // POST /api/reviews/:reviewId/helpful
		reviewRoutes.POST("/:reviewId/flag", controller.FlagReview)               // POST /api/reviews/:reviewId/flag

		// Business replies are moderation actions
		moderation := reviewRoutes.Group("")
		moderation.Use(middleware.JWTAuth(), middleware.RequireAdmin())
		{
			moderation.POST("/:reviewId/reply", controller.AddBusinessReply) // POST /api/reviews/:reviewId/reply
		}
	}
}
