package users

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the read-side traveler profile. Account management lives in a
// separate identity service; this table only backs lookups for bookings
// and reviewer attribution.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	FirstName string    `gorm:"type:varchar(100)" json:"firstname"`
	LastName  string    `gorm:"type:varchar(100)" json:"lastname"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	Role      Role      `gorm:"type:varchar(20);default:'USER'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// FullName returns the display name used on reviews and bookings.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
