package flightstatus

import (
	"fmt"
	"hash/fnv"
	"time"
)

// Status distribution for flights with no live feed: mostly on time, a
// quarter delayed, a small tail cancelled. Derived from the flight ID so
// repeated lookups agree.
const (
	onTimePercent  = 70
	delayedPercent = 25

	minDelayMinutes  = 15
	delayMinutesSpan = 120 // delays fall in [15, 135)
)

var delayReasons = []string{
	"Weather conditions",
	"Air traffic control",
	"Technical maintenance",
	"Crew scheduling",
	"Airport congestion",
	"Security check",
}

const cancellationReason = "Operational reasons"

// GenerateStatus builds a deterministic mock status for a flight.
func GenerateStatus(flightID string, now time.Time) *FlightStatus {
	seed := hashSeed(flightID)

	scheduled := now.Truncate(time.Hour).Add(time.Duration(2+seed%10) * time.Hour)
	status := &FlightStatus{
		FlightID:           flightID,
		FlightNumber:       fmt.Sprintf("AI%d", 1000+seed%9000),
		Status:             StatusOnTime,
		ScheduledDeparture: scheduled,
		EstimatedDeparture: scheduled,
		Gate:               fmt.Sprintf("%c%d", 'A'+byte(seed%6), 1+seed%24),
		Terminal:           fmt.Sprintf("T%d", 1+seed%3),
	}

	switch roll := seed % 100; {
	case roll < onTimePercent:
		// on time
	case roll < onTimePercent+delayedPercent:
		delay := minDelayMinutes + int(seed%delayMinutesSpan)
		reason := delayReasons[seed%uint64(len(delayReasons))]
		status.Status = StatusDelayed
		status.DelayMinutes = delay
		status.DelayReason = &reason
		status.EstimatedDeparture = scheduled.Add(time.Duration(delay) * time.Minute)
	default:
		reason := cancellationReason
		status.Status = StatusCancelled
		status.DelayReason = &reason
	}

	return status
}

func hashSeed(flightID string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(flightID))
	return h.Sum64()
}
