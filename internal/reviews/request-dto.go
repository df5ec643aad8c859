package reviews

// CreateReviewRequest submits a new review for an item.
type CreateReviewRequest struct {
	ItemID   string   `json:"itemId" binding:"required"`
	ItemType string   `json:"itemType" binding:"required,oneof=flight hotel"`
	UserID   string   `json:"userId" binding:"required"`
	Rating   int      `json:"rating" binding:"required,min=1,max=5"`
	Title    string   `json:"title" binding:"required,max=200"`
	Comment  string   `json:"comment" binding:"required"`
	Photos   []string `json:"photos"`
}

// MarkHelpfulRequest records a helpful vote on a review.
type MarkHelpfulRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// FlagReviewRequest flags a review for moderation.
type FlagReviewRequest struct {
	Reason string `json:"reason" binding:"required,max=255"`
}

// BusinessReplyRequest attaches the business's reply to a review.
type BusinessReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}
