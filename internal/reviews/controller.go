package reviews

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Controller handles HTTP requests for reviews
type Controller struct {
	service Service
}

// NewController creates a new review controller
func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateReview handles POST /api/reviews
func (c *Controller) CreateReview(ctx *gin.Context) {
	var req CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	review, err := c.service.CreateReview(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to create review",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, review)
}

// GetReviews handles GET /api/reviews/item/:itemType/:itemId
func (c *Controller) GetReviews(ctx *gin.Context) {
	itemType := ctx.Param("itemType")
	itemID := ctx.Param("itemId")
	sort := ctx.DefaultQuery("sort", SortRecent)

	result, err := c.service.GetReviews(ctx.Request.Context(), itemID, itemType, sort)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load reviews",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetRatingSummary handles GET /api/reviews/item/:itemType/:itemId/rating
func (c *Controller) GetRatingSummary(ctx *gin.Context) {
	itemType := ctx.Param("itemType")
	itemID := ctx.Param("itemId")

	result, err := c.service.GetRatingSummary(ctx.Request.Context(), itemID, itemType)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load rating summary",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// MarkHelpful handles POST /api/reviews/:reviewId/helpful
func (c *Controller) MarkHelpful(ctx *gin.Context) {
	reviewID, err := uuid.Parse(ctx.Param("reviewId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid review ID",
			"details": err.Error(),
		})
		return
	}

	var req MarkHelpfulRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	review, err := c.service.MarkHelpful(ctx.Request.Context(), reviewID, req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to mark review helpful",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, review)
}

// FlagReview handles POST /api/reviews/:reviewId/flag
func (c *Controller) FlagReview(ctx *gin.Context) {
	reviewID, err := uuid.Parse(ctx.Param("reviewId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid review ID",
			"details": err.Error(),
		})
		return
	}

	var req FlagReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	review, err := c.service.FlagReview(ctx.Request.Context(), reviewID, req.Reason)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to flag review",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, review)
}

// AddBusinessReply handles POST /api/reviews/:reviewId/reply
func (c *Controller) AddBusinessReply(ctx *gin.Context) {
	reviewID, err := uuid.Parse(ctx.Param("reviewId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid review ID",
			"details": err.Error(),
		})
		return
	}

	var req BusinessReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	review, err := c.service.AddBusinessReply(ctx.Request.Context(), reviewID, req.Reply)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to add business reply",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, review)
}
