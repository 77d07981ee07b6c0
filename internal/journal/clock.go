package journal

import "sync/atomic"

// Clock is a monotonic logical clock for event ordering.
//
// Events are stamped with a strictly increasing seq, never wall time, so
// two events recorded within the same instant still have a defined order.
type Clock struct {
	seq atomic.Int64
}

// NewClockAt creates a clock that resumes after start.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
