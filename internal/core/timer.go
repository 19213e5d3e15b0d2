package core

import "time"

// StepClock paces erosion updates at a fixed number of steps per second,
// independent of the caller's frame rate.
type StepClock struct {
	interval time.Duration
	credit   time.Duration
	last     time.Time
}

// NewStepClock returns a clock targeting the given steps per second. The
// first Tick fires immediately.
func NewStepClock(perSecond int) *StepClock {
	c := &StepClock{}
	c.SetRate(perSecond)
	c.credit = c.interval
	return c
}

// SetRate changes the step rate. Rates below one fall back to 10.
func (c *StepClock) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 10
	}
	c.interval = time.Second / time.Duration(perSecond)
}

// Tick reports whether another step is due. Elapsed time accumulates as
// credit, so a slow frame still yields at most one step per call.
func (c *StepClock) Tick() bool {
	now := time.Now()
	if !c.last.IsZero() {
		c.credit += now.Sub(c.last)
	}
	c.last = now
	if c.credit < c.interval {
		return false
	}
	c.credit -= c.interval
	return true
}
