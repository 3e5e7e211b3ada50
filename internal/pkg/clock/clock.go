package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

// Now is UTC truncated to microseconds so values round-trip through timestamptz unchanged.
func (RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// MockClock is a manual clock. With a step set, every Now moves it forward,
// which gives successive bookings distinct created_at values.
type MockClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *MockClock) SetStep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.step = d
}
