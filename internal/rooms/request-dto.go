package rooms

// BookRoomRequest commits a room selection for a hotel stay.
type BookRoomRequest struct {
	HotelID    string `json:"hotelId" binding:"required"`
	RoomNumber string `json:"roomNumber" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
}
