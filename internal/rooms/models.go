package rooms

import (
	"time"

	"github.com/google/uuid"
)

type RoomType string

const (
	TypeStandard RoomType = "standard"
	TypeDeluxe   RoomType = "deluxe"
	TypeSuite    RoomType = "suite"
)

func (t RoomType) IsValid() bool {
	return t == TypeStandard || t == TypeDeluxe || t == TypeSuite
}

// RoomLayout is the bookable inventory of one hotel, grouped by room type.
type RoomLayout struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	HotelID   string          `gorm:"type:varchar(100);unique;not null" json:"hotelId"`
	RoomTypes []RoomTypeGroup `gorm:"foreignKey:LayoutID" json:"roomTypes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (RoomLayout) TableName() string {
	return "room_layouts"
}

// RoomTypeGroup describes one room category and its rooms.
type RoomTypeGroup struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LayoutID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Type        RoomType  `gorm:"type:varchar(20);not null" json:"type"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	BasePrice   float64   `gorm:"not null" json:"basePrice"`
	Amenities   []string  `gorm:"serializer:json" json:"amenities"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	Rooms       []Room    `gorm:"foreignKey:RoomTypeGroupID" json:"rooms"`
}

func (RoomTypeGroup) TableName() string {
	return "room_type_groups"
}

// Room is a single bookable room.
type Room struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RoomTypeGroupID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	RoomNumber      string    `gorm:"type:varchar(10);not null" json:"roomNumber"`
	Floor           int       `gorm:"not null" json:"floor"`
	View            string    `gorm:"type:varchar(30)" json:"view"`
	SizeSqm         int       `json:"sizeSqm"`
	Features        []string  `gorm:"serializer:json" json:"features"`
	Available       bool      `gorm:"default:true" json:"available"`
	BookedBy        *string   `gorm:"type:varchar(100)" json:"bookedBy,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}
