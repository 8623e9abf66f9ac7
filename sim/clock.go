package sim

import "time"

// Clock supplies monotonically increasing elapsed time and the delta since the
// previous Delta call, both in seconds.
type Clock interface {
	Now() float64
	Delta() float64
}

// WallClock measures real time.
type WallClock struct {
	start time.Time
	last  time.Time
}

// NewWallClock starts a clock at the current time.
func NewWallClock() *WallClock {
	now := time.Now()
	return &WallClock{start: now, last: now}
}

func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

func (c *WallClock) Delta() float64 {
	now := time.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// ManualClock advances by Step on every Delta call. Tests and headless runs use it
// to make ticks deterministic.
type ManualClock struct {
	Step    float64
	elapsed float64
}

func (c *ManualClock) Now() float64 {
	return c.elapsed
}

func (c *ManualClock) Delta() float64 {
	c.elapsed += c.Step
	return c.Step
}
