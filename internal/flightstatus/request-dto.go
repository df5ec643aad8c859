package flightstatus

// UpdateStatusRequest is the back-office status override.
type UpdateStatusRequest struct {
	Status       Status  `json:"status" binding:"required,oneof=on-time delayed cancelled boarding departed arrived"`
	DelayMinutes int     `json:"delayMinutes" binding:"min=0"`
	DelayReason  *string `json:"delayReason"`
	Gate         string  `json:"gate"`
	Terminal     string  `json:"terminal"`
}
