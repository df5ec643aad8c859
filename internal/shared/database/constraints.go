package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds database constraints that AutoMigrate does not cover.
func MigrateConstraints(db *gorm.DB) error {
	// One seat number per seat map
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_seat_per_map
		ON seats (seat_map_id, seat_number);
	`).Error
	if err != nil {
		return err
	}

	// One room number per hotel layout
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_room_per_layout
		ON rooms (room_type_group_id, room_number);
	`).Error
	if err != nil {
		return err
	}

	// Availability scans during booking validation
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_seats_map_available
		ON seats (seat_map_id, available);
	`).Error
	if err != nil {
		return err
	}

	// User booking lookups drive the cancellation endpoints
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_status
		ON bookings (user_id, status);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
