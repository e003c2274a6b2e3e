package frame

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/frameloop/event"
)

// Stats summarizes what a loop has done so far.
type Stats struct {
	Iterations    uint64
	Frames        uint64
	Events        map[event.Kind]int64
	IgnoredEvents int64
	// DeltaTime is the time in seconds between the last two steps.
	DeltaTime float64
	State     State
	// StopEvent is the event that stopped the loop. Only set once State is
	// StateStopped.
	StopEvent event.Event
	Update    *PipelineStats
	Draw      *PipelineStats
}

type counters struct {
	iterations uint64
	frames     uint64
	ignored    int64
	lastDelta  float64
	byKind     *intmap.Map[event.Kind, int64]
}

func newCounters() *counters {
	return &counters{
		byKind: intmap.New[event.Kind, int64](4),
	}
}

func (c *counters) countEvent(e event.Event) {
	n, _ := c.byKind.Get(e.Kind)
	c.byKind.Put(e.Kind, n+1)
	if !e.Stops() {
		c.ignored++
	}
}

func (c *counters) eventsByKind() map[event.Kind]int64 {
	out := make(map[event.Kind]int64, c.byKind.Len())
	for _, kind := range []event.Kind{event.KindOther, event.KindQuit, event.KindKeyDown} {
		if n, ok := c.byKind.Get(kind); ok {
			out[kind] = n
		}
	}
	return out
}
