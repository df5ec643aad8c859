package client

import (
	"math"
	"time"
)

// EstimateRefund computes the local fallback refund for a booking. The
// service quote is authoritative; this estimate is shown only when the
// calculate-refund call cannot be reached.
//
// Bands, evaluated top-down on hours until travel:
//
//	> 24h        80% of total price
//	> 2h, <= 24h 50%
//	<= 2h        nothing (including travel dates already in the past)
func EstimateRefund(travelTime, now time.Time, totalPrice float64) float64 {
	hours := travelTime.Sub(now).Hours()
	switch {
	case hours > 24:
		return roundTo2(totalPrice * 0.80)
	case hours > 2:
		return roundTo2(totalPrice * 0.50)
	default:
		return 0
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
