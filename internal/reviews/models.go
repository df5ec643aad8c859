package reviews

import (
	"time"

	"github.com/google/uuid"
)

// Review is a traveler's review of a flight or hotel.
type Review struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ItemID          string     `gorm:"type:varchar(100);not null;index:idx_reviews_item" json:"itemId"`
	ItemType        string     `gorm:"type:varchar(20);not null;index:idx_reviews_item" json:"itemType"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	UserName        string     `gorm:"type:varchar(200)" json:"userName"`
	Rating          int        `gorm:"not null" json:"rating"`
	Title           string     `gorm:"type:varchar(200)" json:"title"`
	Comment         string     `gorm:"type:text" json:"comment"`
	Photos          []string   `gorm:"serializer:json" json:"photos"`
	HelpfulVotes    int        `gorm:"default:0" json:"helpfulVotes"`
	VotedBy         []string   `gorm:"serializer:json" json:"-"`
	Flagged         bool       `gorm:"default:false" json:"flagged"`
	FlagReason      *string    `gorm:"type:varchar(255)" json:"flagReason,omitempty"`
	BusinessReply   *string    `gorm:"type:text" json:"businessReply,omitempty"`
	BusinessReplyAt *time.Time `json:"businessReplyAt,omitempty"`
	VerifiedBooking bool       `gorm:"default:false" json:"verifiedBooking"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}
