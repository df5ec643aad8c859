package seats

// SeatRow groups the seats of one cabin row for rendering.
type SeatRow struct {
	Row   int    `json:"row"`
	Seats []Seat `json:"seats"`
}

// SeatMapData is the payload for GET /api/seat-selection/flight/:flightId
type SeatMapData struct {
	FlightID     string              `json:"flightId"`
	AircraftType string              `json:"aircraftType"`
	Rows         []SeatRow           `json:"rows"`
	ClassPricing map[string]float64  `json:"classPricing"`
}

// BookSeatsResponse is the payload for POST /api/seat-selection/book-seats
type BookSeatsResponse struct {
	Success     bool     `json:"success"`
	FlightID    string   `json:"flightId"`
	SeatNumbers []string `json:"seatNumbers"`
}

// UpgradePriceResponse is the payload for POST /api/seat-selection/upgrade-price
type UpgradePriceResponse struct {
	UpgradePrice float64 `json:"upgradePrice"`
}
