package seats

// BookSeatsRequest represents a request to book a set of seats on a flight
type BookSeatsRequest struct {
	FlightID    string   `json:"flightId" binding:"required"`
	SeatNumbers []string `json:"seatNumbers" binding:"required,min=1"`
	UserID      string   `json:"userId" binding:"required"`
}

// UpgradePriceRequest represents a request to price a seat selection
type UpgradePriceRequest struct {
	FlightID    string   `json:"flightId" binding:"required"`
	SeatNumbers []string `json:"seatNumbers" binding:"required,min=1"`
}
