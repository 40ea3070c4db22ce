package gamemode

import "time"

// Clock measures the time between ticks, or hands out a fixed step.
type Clock struct {
	Fixed time.Duration

	now        func() time.Time
	lastUpdate time.Time
}

func NewClock(fixed time.Duration) *Clock {
	return &Clock{Fixed: fixed, now: time.Now}
}

// Start marks the reference point for the first Elapsed call.
func (c *Clock) Start() {
	c.lastUpdate = c.now()
}

// Elapsed returns the seconds since the previous call (or Start).
func (c *Clock) Elapsed() float64 {
	if c.Fixed > 0 {
		return c.Fixed.Seconds()
	}
	now := c.now()
	dt := now.Sub(c.lastUpdate)
	c.lastUpdate = now
	return dt.Seconds()
}
