package clock

import (
	"sync"
	"time"
)

// Clock abstracts wall time and timer scheduling so that components with
// time-dependent behavior can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable scheduled callback.
type Timer interface {
	Stop() bool
}

type realClock struct{}

// New returns a Clock backed by the system clock.
func New() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Mock is a manually advanced clock for tests. Timers fire synchronously
// when Advance or Set moves the clock past their deadline.
type Mock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*mockTimer
}

type mockTimer struct {
	clock    *Mock
	deadline time.Time
	fn       func()
	stopped  bool
	fired    bool
}

// NewMock creates a mock clock starting at the given time.
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Mock) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	t := &mockTimer{
		clock:    m,
		deadline: m.now.Add(d),
		fn:       f,
	}
	m.timers = append(m.timers, t)
	m.mu.Unlock()

	if d <= 0 {
		m.fireDue()
	}
	return t
}

// Set moves the clock to the given time and fires any due timers.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
	m.fireDue()
}

// Advance moves the clock forward by d and fires any due timers.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
	m.fireDue()
}

func (m *Mock) fireDue() {
	m.mu.Lock()
	var due []*mockTimer
	for _, t := range m.timers {
		if !t.stopped && !t.fired && !t.deadline.After(m.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	m.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

func (t *mockTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
