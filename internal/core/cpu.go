package core

import (
	"github.com/sirupsen/logrus"
)

// Slice is one contiguous segment of the Gantt timeline.
type Slice struct {
	PID   string `json:"pid,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Idle  bool   `json:"idle,omitempty"`
}

func (s Slice) Duration() int {
	return s.End - s.Start
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is a single simulated core driven by a logical clock. It replaces
// wall-clock execution: running a process just advances the clock and
// records the segment on the timeline.
type CPU struct {
	clock    int
	busy     int
	idle     int
	last     int // arena index of the last segment's owner, -1 for idle/none
	timeline []Slice
}

func NewCPU() *CPU {
	return &CPU{last: -1}
}

// Clock returns the current simulated time.
func (c *CPU) Clock() int {
	return c.clock
}

// IdleUntil jumps the clock forward to t, recording the gap as idle.
// It is a no-op when t is not in the future.
func (c *CPU) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	logrus.WithFields(logrus.Fields{"from": c.clock, "to": t}).Debug("cpu idle")
	c.timeline = append(c.timeline, Slice{Start: c.clock, End: t, Idle: true})
	c.idle += t - c.clock
	c.clock = t
	c.last = -1
}

// Execute runs the process at arena index for the given number of ticks and
// returns the new clock. Back-to-back segments of the same process are merged.
func (c *CPU) Execute(index int, p Process, ticks int) int {
	start := c.clock
	c.clock += ticks
	c.busy += ticks

	logrus.WithFields(logrus.Fields{"pid": p.ID, "start": start, "end": c.clock}).Debug("cpu execute")

	if c.last == index && len(c.timeline) > 0 {
		c.timeline[len(c.timeline)-1].End = c.clock
	} else {
		c.timeline = append(c.timeline, Slice{PID: p.ID, Start: start, End: c.clock})
	}
	c.last = index
	return c.clock
}

// Timeline returns a copy of the recorded segments.
func (c *CPU) Timeline() []Slice {
	out := make([]Slice, len(c.timeline))
	copy(out, c.timeline)
	return out
}

func (c *CPU) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.clock,
		UtilizationTime: c.busy,
		IdleTime:        c.idle,
	}
}
