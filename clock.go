package treestore

import (
	"sync"
	"time"
)

// Clock supplies timestamps for journal entries and transactions.
// The default is the system wall clock; tests inject a FixedClock via
// WithClock for deterministic entries.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// FixedClock starts at a known instant and advances by a fixed step on every
// Now call, so a sequence of operations always stamps the same times.
//
// Thread-safe via internal mutex, though the store itself is single-writer.
type FixedClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewFixedClock creates a FixedClock starting at start; each Now call
// returns the current instant and advances by step.
func NewFixedClock(start time.Time, step time.Duration) *FixedClock {
	return &FixedClock{current: start, step: step}
}

// Now returns the current instant and advances the clock.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.current
	c.current = c.current.Add(c.step)
	return t
}
