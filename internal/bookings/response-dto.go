package bookings

// BookingListResponse wraps a user's bookings
type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
	Count    int       `json:"count"`
}
