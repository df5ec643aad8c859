package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// FlowStep is a CancellationFlow state.
type FlowStep int

const (
	StepReasonSelection FlowStep = iota
	StepRefundReview
	StepCompleted
)

func (s FlowStep) String() string {
	switch s {
	case StepReasonSelection:
		return "reason-selection"
	case StepRefundReview:
		return "refund-review"
	case StepCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// CancelReason is a cancellation reason tag.
type CancelReason string

const (
	ReasonChangeOfPlans CancelReason = "change-of-plans"
	ReasonMedical       CancelReason = "medical"
	ReasonEmergency     CancelReason = "emergency"
	ReasonWork          CancelReason = "work"
	ReasonWeather       CancelReason = "weather"
	ReasonOther         CancelReason = "other"
)

var validReasons = map[CancelReason]bool{
	ReasonChangeOfPlans: true,
	ReasonMedical:       true,
	ReasonEmergency:     true,
	ReasonWork:          true,
	ReasonWeather:       true,
	ReasonOther:         true,
}

// QuoteSource tags where a refund quote came from.
type QuoteSource string

const (
	QuoteSourceBackend       QuoteSource = "backend"
	QuoteSourceLocalEstimate QuoteSource = "local-estimate"
)

// RefundQuote is the amount shown on the review step. Quotes are tied to
// one (booking, reason) pair and recomputed whenever the flow re-advances.
type RefundQuote struct {
	BookingID string
	Amount    float64
	Source    QuoteSource
}

// ConfirmedBy tags how a completed cancellation was confirmed.
type ConfirmedBy string

const (
	ConfirmedByBackend   ConfirmedBy = "backend"
	ConfirmedByLocalOnly ConfirmedBy = "local-only"
)

// ProcessingWindowMessage is the fixed refund-processing notice shown on
// completion.
const ProcessingWindowMessage = "5-7 business days"

// Confirmation is the result of completing the flow.
type Confirmation struct {
	BookingID        string
	RefundAmount     float64
	ConfirmedBy      ConfirmedBy
	ProcessingWindow string
}

// BookingRef is the read-only booking projection the flow works against.
// TravelDate and TotalPrice feed the local estimator when the service is
// unreachable.
type BookingRef struct {
	ID         string
	TravelDate time.Time
	TotalPrice float64
}

var (
	ErrFlowCompleted   = errors.New("cancellation flow already completed")
	ErrWrongStep       = errors.New("operation not valid for current step")
	ErrReasonRequired  = errors.New("a cancellation reason is required")
	ErrDetailRequired  = errors.New("reason 'other' requires a description")
	ErrInvalidReason   = errors.New("invalid cancellation reason")
	ErrQuoteMissing    = errors.New("no refund quote to confirm")
	ErrStaleResponse   = errors.New("response discarded, flow state changed")
	ErrSessionRequired = errors.New("a session with a user id is required")
)

// CancellationFlow walks a booking through ReasonSelection, RefundReview,
// and Completed. Completed is terminal. The flow is safe for use from
// multiple goroutines; responses that arrive after the flow has moved on
// are discarded.
type CancellationFlow struct {
	mu         sync.Mutex
	client     *Client
	session    Session
	booking    BookingRef
	now        func() time.Time
	onCancel   func(Confirmation)
	step       FlowStep
	reason     CancelReason
	detail     string
	quote      *RefundQuote
	generation uint64
	notified   bool
}

// NewCancellationFlow starts a flow at ReasonSelection. onCancel fires
// exactly once, when the flow enters Completed; it may be nil.
func NewCancellationFlow(c *Client, session Session, booking BookingRef, onCancel func(Confirmation)) *CancellationFlow {
	return &CancellationFlow{
		client:   c,
		session:  session,
		booking:  booking,
		now:      time.Now,
		onCancel: onCancel,
		step:     StepReasonSelection,
	}
}

// Step returns the current flow step.
func (f *CancellationFlow) Step() FlowStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Quote returns the active refund quote, or nil before RefundReview.
func (f *CancellationFlow) Quote() *RefundQuote {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.quote == nil {
		return nil
	}
	q := *f.quote
	return &q
}

// SelectReason records the cancellation reason. Reason "other" requires a
// non-empty description. Changing the reason invalidates any quote request
// still in flight, since quotes are tied to the reason they were computed
// for.
func (f *CancellationFlow) SelectReason(reason CancelReason, detail string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step == StepCompleted {
		return ErrFlowCompleted
	}
	if f.step != StepReasonSelection {
		return ErrWrongStep
	}
	if !validReasons[reason] {
		return ErrInvalidReason
	}
	if reason == ReasonOther && detail == "" {
		return ErrDetailRequired
	}

	f.reason = reason
	f.detail = detail
	f.generation++
	return nil
}

// Advance moves from ReasonSelection to RefundReview, fetching the refund
// quote from the service and falling back to the local estimator on any
// transport or service error. A quote is always produced.
func (f *CancellationFlow) Advance(ctx context.Context) (*RefundQuote, error) {
	f.mu.Lock()
	if f.step == StepCompleted {
		f.mu.Unlock()
		return nil, ErrFlowCompleted
	}
	if f.step != StepReasonSelection {
		f.mu.Unlock()
		return nil, ErrWrongStep
	}
	if f.reason == "" {
		f.mu.Unlock()
		return nil, ErrReasonRequired
	}
	if f.session.UserID == "" {
		f.mu.Unlock()
		return nil, ErrSessionRequired
	}

	gen := f.generation
	reason := f.reason
	f.mu.Unlock()

	quote := f.fetchQuote(ctx, reason)

	f.mu.Lock()
	defer f.mu.Unlock()

	// Discard the resolution if the flow moved on while the request was
	// in flight.
	if f.generation != gen || f.step != StepReasonSelection {
		return nil, ErrStaleResponse
	}

	f.quote = quote
	f.step = StepRefundReview
	q := *quote
	return &q, nil
}

func (f *CancellationFlow) fetchQuote(ctx context.Context, reason CancelReason) *RefundQuote {
	req := map[string]string{
		"userId":    f.session.UserID,
		"bookingId": f.booking.ID,
		"reason":    string(reason),
	}

	var resp struct {
		BookingID    string  `json:"bookingId"`
		RefundAmount float64 `json:"refundAmount"`
	}
	if err := f.client.postJSON(ctx, "/cancellation/calculate-refund", req, &resp); err != nil {
		// The user still needs a number; estimate locally
		return &RefundQuote{
			BookingID: f.booking.ID,
			Amount:    EstimateRefund(f.booking.TravelDate, f.now(), f.booking.TotalPrice),
			Source:    QuoteSourceLocalEstimate,
		}
	}

	return &RefundQuote{
		BookingID: f.booking.ID,
		Amount:    resp.RefundAmount,
		Source:    QuoteSourceBackend,
	}
}

// Back returns from RefundReview to ReasonSelection, discarding the quote.
func (f *CancellationFlow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step == StepCompleted {
		return ErrFlowCompleted
	}
	if f.step != StepRefundReview {
		return ErrWrongStep
	}

	f.quote = nil
	f.step = StepReasonSelection
	f.generation++
	return nil
}

// Confirm cancels the booking. The remote call is best effort: the flow
// completes even when the service cannot be reached, and the returned
// confirmation is tagged so callers can tell a backend-confirmed
// cancellation from a local-only one.
func (f *CancellationFlow) Confirm(ctx context.Context) (*Confirmation, error) {
	f.mu.Lock()
	if f.step == StepCompleted {
		f.mu.Unlock()
		return nil, ErrFlowCompleted
	}
	if f.step != StepRefundReview {
		f.mu.Unlock()
		return nil, ErrWrongStep
	}
	if f.quote == nil {
		f.mu.Unlock()
		return nil, ErrQuoteMissing
	}

	gen := f.generation
	reason := f.reason
	quote := *f.quote
	f.mu.Unlock()

	req := map[string]string{
		"userId":    f.session.UserID,
		"bookingId": f.booking.ID,
		"reason":    string(reason),
	}
	confirmedBy := ConfirmedByBackend
	if err := f.client.postJSON(ctx, "/cancellation/cancel", req, nil); err != nil {
		confirmedBy = ConfirmedByLocalOnly
	}

	f.mu.Lock()
	if f.generation != gen || f.step != StepRefundReview {
		f.mu.Unlock()
		return nil, ErrStaleResponse
	}

	confirmation := Confirmation{
		BookingID:        f.booking.ID,
		RefundAmount:     quote.Amount,
		ConfirmedBy:      confirmedBy,
		ProcessingWindow: ProcessingWindowMessage,
	}
	f.step = StepCompleted

	notify := !f.notified && f.onCancel != nil
	f.notified = true
	f.mu.Unlock()

	if notify {
		f.onCancel(confirmation)
	}

	c := confirmation
	return &c, nil
}

// String implements fmt.Stringer for debugging.
func (f *CancellationFlow) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fmt.Sprintf("CancellationFlow(booking=%s step=%s)", f.booking.ID, f.step)
}
