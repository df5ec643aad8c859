package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateRefund(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		hoursAhead time.Duration
		totalPrice float64
		expected   float64
	}{
		{
			name:       "more than 24 hours gets 80 percent",
			hoursAhead: 30 * time.Hour,
			totalPrice: 450.00,
			expected:   360.00,
		},
		{
			name:       "exactly 24 hours falls into the 50 percent band",
			hoursAhead: 24 * time.Hour,
			totalPrice: 200.00,
			expected:   100.00,
		},
		{
			name:       "between 2 and 24 hours gets 50 percent",
			hoursAhead: 10 * time.Hour,
			totalPrice: 300.00,
			expected:   150.00,
		},
		{
			name:       "exactly 2 hours gets nothing",
			hoursAhead: 2 * time.Hour,
			totalPrice: 500.00,
			expected:   0,
		},
		{
			name:       "one hour before travel gets nothing",
			hoursAhead: time.Hour,
			totalPrice: 450.00,
			expected:   0,
		},
		{
			name:       "travel date already passed gets nothing",
			hoursAhead: -5 * time.Hour,
			totalPrice: 450.00,
			expected:   0,
		},
		{
			name:       "zero price stays zero",
			hoursAhead: 48 * time.Hour,
			totalPrice: 0,
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateRefund(now.Add(tt.hoursAhead), now, tt.totalPrice)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEstimateRefundRounding(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	travel := now.Add(72 * time.Hour)

	// 123.45 * 0.80 = 98.76 exactly after rounding
	assert.Equal(t, 98.76, EstimateRefund(travel, now, 123.45))
	assert.Equal(t, 79.99, EstimateRefund(travel, now, 99.99))
}
