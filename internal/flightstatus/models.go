package flightstatus

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOnTime    Status = "on-time"
	StatusDelayed   Status = "delayed"
	StatusCancelled Status = "cancelled"
	StatusBoarding  Status = "boarding"
	StatusDeparted  Status = "departed"
	StatusArrived   Status = "arrived"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOnTime, StatusDelayed, StatusCancelled, StatusBoarding, StatusDeparted, StatusArrived:
		return true
	}
	return false
}

// FlightStatus is the live operational status of one flight.
type FlightStatus struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FlightID           string     `gorm:"type:varchar(100);unique;not null" json:"flightId"`
	FlightNumber       string     `gorm:"type:varchar(10);index" json:"flightNumber"`
	Status             Status     `gorm:"type:varchar(20);not null" json:"status"`
	DelayMinutes       int        `gorm:"default:0" json:"delayMinutes"`
	DelayReason        *string    `gorm:"type:varchar(100)" json:"delayReason,omitempty"`
	ScheduledDeparture time.Time  `json:"scheduledDeparture"`
	EstimatedDeparture time.Time  `json:"estimatedDeparture"`
	ActualDeparture    *time.Time `json:"actualDeparture,omitempty"`
	Gate               string     `gorm:"type:varchar(10)" json:"gate"`
	Terminal           string     `gorm:"type:varchar(10)" json:"terminal"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (FlightStatus) TableName() string {
	return "flight_statuses"
}
