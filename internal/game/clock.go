package game

import (
	"sync"
	"time"
)

// Clock stamps sessions and summaries.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FakeClock returns its current time and then moves forward by step, so
// successive readings are distinct and ordered.
type FakeClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func NewFakeClock(start time.Time, step time.Duration) *FakeClock {
	return &FakeClock{t: start, step: step}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}
