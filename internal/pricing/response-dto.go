package pricing

import "time"

// FreezePriceResponse is the payload for POST /api/pricing/freeze
type FreezePriceResponse struct {
	Success   bool       `json:"success"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// FreezeStatusResponse reports whether a freeze is active for an item/user
type FreezeStatusResponse struct {
	Frozen    bool       `json:"frozen"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// PriceInsights summarizes history for a booking decision
type PriceInsights struct {
	ItemID         string  `json:"itemId"`
	ItemType       string  `json:"itemType"`
	CurrentPrice   float64 `json:"currentPrice"`
	AveragePrice   float64 `json:"averagePrice"`
	LowestPrice    float64 `json:"lowestPrice"`
	HighestPrice   float64 `json:"highestPrice"`
	Trend          string  `json:"trend"` // increasing | decreasing | stable
	Recommendation string  `json:"recommendation"`
}
