package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"voyago/pkg/clock"
)

const defaultFreezeHours = 24

// ErrAlreadyFrozen is returned when Freeze is called while a freeze is
// active. The pending expiry is never rescheduled or extended.
var ErrAlreadyFrozen = errors.New("a price freeze is already active")

// PriceFreezeTimer tracks the client-side view of one price freeze. The
// service owns the authoritative freeze; this timer mirrors it and
// auto-unfreezes the local state when the window elapses. A fresh timer
// always starts unfrozen, so after a reload the client stays unfrozen
// until a new freeze succeeds.
type PriceFreezeTimer struct {
	mu      sync.Mutex
	client  *Client
	session Session
	clk     clock.Clock

	frozen    bool
	expiresAt time.Time
	timer     clock.Timer
}

// NewPriceFreezeTimer creates an unfrozen timer. A nil clk uses the
// system clock.
func NewPriceFreezeTimer(c *Client, session Session, clk clock.Clock) *PriceFreezeTimer {
	if clk == nil {
		clk = clock.New()
	}
	return &PriceFreezeTimer{
		client:  c,
		session: session,
		clk:     clk,
	}
}

// Freeze requests a price freeze and, on success, schedules the local
// auto-unfreeze after the given number of hours (default 24). A second
// freeze while frozen is rejected without touching the pending expiry.
func (t *PriceFreezeTimer) Freeze(ctx context.Context, itemID, itemType string, hours int) (bool, error) {
	t.mu.Lock()
	if t.frozen {
		t.mu.Unlock()
		return false, ErrAlreadyFrozen
	}
	t.mu.Unlock()

	if hours <= 0 {
		hours = defaultFreezeHours
	}

	req := map[string]interface{}{
		"itemId":   itemID,
		"itemType": itemType,
		"userId":   t.session.UserID,
		"hours":    hours,
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if err := t.client.postJSON(ctx, "/api/pricing/freeze", req, &resp); err != nil {
		return false, err
	}
	if !resp.Success {
		// The service already holds an active freeze for this item
		return false, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.frozen {
		return false, ErrAlreadyFrozen
	}

	t.frozen = true
	t.expiresAt = t.clk.Now().Add(time.Duration(hours) * time.Hour)
	t.timer = t.clk.AfterFunc(time.Duration(hours)*time.Hour, t.expire)
	return true, nil
}

func (t *PriceFreezeTimer) expire() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frozen = false
	t.timer = nil
}

// Stop cancels any pending auto-unfreeze and resets the timer. No timer
// fires after Stop returns. Used when the owning view goes away.
func (t *PriceFreezeTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.frozen = false
}

// Frozen reports whether the local freeze is active.
func (t *PriceFreezeTimer) Frozen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frozen
}

// ExpiresAt returns the local expiry time; zero when not frozen.
func (t *PriceFreezeTimer) ExpiresAt() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.frozen {
		return time.Time{}
	}
	return t.expiresAt
}
