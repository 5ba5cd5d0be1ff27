package main

import (
	"time"

	"glowquad/misc"
)

// FrameClock is the monotonic millisecond clock handed to the scheduler,
// zero at the first reading.
type FrameClock struct {
	Start   time.Time
	Started bool
}

func (c *FrameClock) NowMs() float64 {
	if !c.Started {
		c.Start = time.Now()
		c.Started = true
	}
	return DurationToMs(time.Since(c.Start))
}

func DurationToMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

// Timer for profiling.
// Usage :
//
//	{
//		timer := NewProfTimer("some function")
//		defer timer.Report()
//		// reports some function took 10ms
//	}
type ProfTimer struct {
	Start time.Time
	Name  string
}

func NewProfTimer(name string) ProfTimer {
	return ProfTimer{
		Start: time.Now(),
		Name:  name,
	}
}

func (p ProfTimer) Report() {
	misc.InfoLogger.Printf("\"%v\" took %v\n", p.Name, time.Since(p.Start))
}
