package pricing

// FreezePriceRequest represents a request to freeze a price for a user
type FreezePriceRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	ItemType string `json:"itemType" binding:"required,oneof=flight hotel"`
	UserID   string `json:"userId" binding:"required"`
	Hours    int    `json:"hours" binding:"min=0,max=168"`
}

// RecordPricePointRequest represents an observed price to append to history
type RecordPricePointRequest struct {
	ItemID   string  `json:"itemId" binding:"required"`
	ItemType string  `json:"itemType" binding:"required,oneof=flight hotel"`
	Price    float64 `json:"price" binding:"required,min=0"`
}
