package pricing

import (
	"time"

	"github.com/google/uuid"
)

// PriceHistory tracks observed prices for one item. Points are capped at
// the most recent maxPricePoints entries.
type PriceHistory struct {
	ID        uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ItemID    string       `gorm:"type:varchar(100);not null;uniqueIndex:unique_item_history" json:"itemId"`
	ItemType  string       `gorm:"type:varchar(10);not null;uniqueIndex:unique_item_history" json:"itemType"`
	Points    []PricePoint `gorm:"foreignKey:HistoryID" json:"points"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (PriceHistory) TableName() string {
	return "price_histories"
}

// PricePoint is a single observed price.
type PricePoint struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	HistoryID  uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Price      float64   `gorm:"not null" json:"price"`
	RecordedAt time.Time `gorm:"not null;index" json:"recordedAt"`
}

func (PricePoint) TableName() string {
	return "price_points"
}

// PriceFreeze is the redis-backed record of an active freeze. The key TTL
// carries the freeze window; the value documents who froze what.
type PriceFreeze struct {
	ItemID    string    `json:"itemId"`
	ItemType  string    `json:"itemType"`
	UserID    string    `json:"userId"`
	FrozenAt  time.Time `json:"frozenAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
