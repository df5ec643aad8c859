package bookings

import "time"

// CreateBookingRequest represents a request to create a booking
type CreateBookingRequest struct {
	UserID        string    `json:"userId" binding:"required"`
	Type          string    `json:"type" binding:"required,oneof=flight hotel"`
	ItemID        string    `json:"itemId" binding:"required"`
	ItemName      string    `json:"itemName"`
	TravelDate    time.Time `json:"travelDate" binding:"required"`
	Quantity      int       `json:"quantity" binding:"min=1"`
	OriginalPrice float64   `json:"originalPrice" binding:"min=0"`
	TotalPrice    float64   `json:"totalPrice" binding:"required,min=0"`
}
