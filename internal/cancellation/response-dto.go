package cancellation

// RefundQuoteResponse is the payload for POST /cancellation/calculate-refund
type RefundQuoteResponse struct {
	BookingID    string  `json:"bookingId"`
	RefundAmount float64 `json:"refundAmount"`
}
