package reviews

// ReviewListResponse is the sorted review listing for one item.
type ReviewListResponse struct {
	ItemID   string   `json:"itemId"`
	ItemType string   `json:"itemType"`
	Sort     string   `json:"sort"`
	Count    int      `json:"count"`
	Reviews  []Review `json:"reviews"`
}

// RatingSummary aggregates an item's ratings.
type RatingSummary struct {
	ItemID        string  `json:"itemId"`
	ItemType      string  `json:"itemType"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int64   `json:"reviewCount"`
}
