package rooms

// RoomLayoutData is the API shape of a hotel's room inventory.
type RoomLayoutData struct {
	HotelID   string          `json:"hotelId"`
	RoomTypes []RoomTypeGroup `json:"roomTypes"`
}

// BookRoomResponse confirms a committed room booking.
type BookRoomResponse struct {
	Success    bool   `json:"success"`
	HotelID    string `json:"hotelId"`
	RoomNumber string `json:"roomNumber"`
}

// AvailableRoomsResponse lists the free rooms of one type.
type AvailableRoomsResponse struct {
	HotelID   string  `json:"hotelId"`
	RoomType  string  `json:"roomType"`
	BasePrice float64 `json:"basePrice"`
	Rooms     []Room  `json:"rooms"`
}
