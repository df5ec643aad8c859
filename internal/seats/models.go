package seats

import (
	"time"

	"github.com/google/uuid"
)

type SeatClass string

const (
	ClassEconomy  SeatClass = "economy"
	ClassPremium  SeatClass = "premium"
	ClassBusiness SeatClass = "business"
)

// SeatMap is the cabin layout for one flight.
type SeatMap struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FlightID     string    `gorm:"type:varchar(100);unique;not null" json:"flightId"`
	AircraftType string    `gorm:"type:varchar(50)" json:"aircraftType"`
	Seats        []Seat    `gorm:"foreignKey:SeatMapID" json:"seats"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (SeatMap) TableName() string {
	return "seat_maps"
}

// Seat is a single cabin seat. BookedBy carries the owning user's id once
// the seat is sold; Available flips to false at the same time.
type Seat struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SeatMapID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	SeatNumber string    `gorm:"type:varchar(5);not null" json:"seatNumber"`
	Row        int       `gorm:"not null" json:"row"`
	Column     string    `gorm:"type:varchar(1);not null" json:"column"`
	Class      SeatClass `gorm:"type:varchar(10);not null" json:"class"`
	Window     bool      `json:"window"`
	Aisle      bool      `json:"aisle"`
	ExtraPrice float64   `gorm:"default:0" json:"extraPrice"`
	Available  bool      `gorm:"default:true" json:"available"`
	BookedBy   *string   `gorm:"type:varchar(100)" json:"bookedBy,omitempty"`
}

func (Seat) TableName() string {
	return "seats"
}
