package database

import (
	"voyago/internal/bookings"
	"voyago/internal/flightstatus"
	"voyago/internal/pricing"
	"voyago/internal/reviews"
	"voyago/internal/rooms"
	"voyago/internal/seats"
	"voyago/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&bookings.Booking{},
		&seats.SeatMap{},
		&seats.Seat{},
		&rooms.RoomLayout{},
		&rooms.RoomTypeGroup{},
		&rooms.Room{},
		&reviews.Review{},
		&flightstatus.FlightStatus{},
		&pricing.PriceHistory{},
		&pricing.PricePoint{},
	)
}
