package cancellation

// CalculateRefundRequest represents a request to quote a refund
type CalculateRefundRequest struct {
	UserID    string `json:"userId" binding:"required"`
	BookingID string `json:"bookingId" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

// CancelBookingRequest represents a request to cancel a booking
type CancelBookingRequest struct {
	UserID    string `json:"userId" binding:"required"`
	BookingID string `json:"bookingId" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

// UpdateRefundStatusRequest represents an admin update of refund progress
type UpdateRefundStatusRequest struct {
	BookingID    string `json:"bookingId" binding:"required"`
	RefundStatus string `json:"refundStatus" binding:"required,oneof=pending processed not-applicable"`
}
