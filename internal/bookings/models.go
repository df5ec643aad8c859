package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a confirmed purchase of a flight or hotel stay. Cancellation
// fields stay nil until the booking is cancelled.
type Booking struct {
	ID                 uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID     `gorm:"type:uuid;not null;index" json:"userId"`
	Type               BookingType   `gorm:"type:varchar(10);not null" json:"type"`
	ItemID             string        `gorm:"type:varchar(100);not null;index" json:"itemId"`
	ItemName           string        `gorm:"type:varchar(255)" json:"itemName"`
	BookingDate        time.Time     `json:"bookingDate"`
	TravelDate         time.Time     `gorm:"not null" json:"travelDate"`
	Quantity           int           `gorm:"default:1" json:"quantity"`
	OriginalPrice      float64       `json:"originalPrice"`
	TotalPrice         float64       `gorm:"not null" json:"totalPrice"`
	Status             BookingStatus `gorm:"type:varchar(20);default:'confirmed'" json:"status"`
	CancellationReason *string       `gorm:"type:varchar(500)" json:"cancellationReason,omitempty"`
	RefundAmount       *float64      `json:"refundAmount,omitempty"`
	RefundStatus       *RefundStatus `gorm:"type:varchar(20)" json:"refundStatus,omitempty"`
	CancellationDate   *time.Time    `json:"cancellationDate,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// IsCancellable reports whether the booking can still be cancelled.
func (b *Booking) IsCancellable() bool {
	return b.Status == StatusConfirmed || b.Status == StatusPending
}
