// Package clock abstracts the wall clock so commit timestamps are testable.
package clock

import (
	"sync"
	"time"
)

// Clock provides the current time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// System implements Clock using the system time, in UTC.
type System struct{}

// Now returns the current system time.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed implements Clock with a settable time for tests.
type Fixed struct {
	mu      sync.Mutex
	current time.Time
}

// NewFixed creates a Fixed clock reading t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{current: t}
}

// Now returns the fixed time.
func (c *Fixed) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves the fixed time forward by d.
func (c *Fixed) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}
