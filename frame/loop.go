// Package frame implements the frame loop: drain the backend's event queue,
// stop on quit or escape, and composite and present the scene while still
// running.
//
// The loop has two states. It starts in StateRunning and moves to
// StateStopped on the first quit event or escape key press; StateStopped is
// terminal. Rendering happens after event handling and is skipped in the
// iteration that stopped the loop.
package frame

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plus3/frameloop/event"
	"github.com/plus3/frameloop/gfx"
	"github.com/plus3/frameloop/scene"
	"go.uber.org/zap"
)

var (
	// ErrAlreadyOpen is returned when Open is called a second time.
	ErrAlreadyOpen = errors.New("frame: loop already opened")
	// ErrNoWindow is returned when rendering before the window exists.
	ErrNoWindow = errors.New("frame: window not open")
)

// State is the loop's lifecycle state.
type State uint8

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "running"
}

// Loop drives a Backend from window creation to a clean exit. All of its
// state is owned by the value; a Loop is not safe for concurrent use.
type Loop struct {
	backend  Backend
	scene    *scene.Scene
	width    int
	height   int
	tickRate int
	logger   *zap.Logger
	extra    []Stage

	update *Pipeline
	draw   *Pipeline

	window    *gfx.Surface
	opened    bool
	closed    bool
	state     State
	stopEvent event.Event
	counters  *counters
	lastTick  time.Time
}

// New creates a loop for backend. The loop does nothing until Open or Run.
func New(backend Backend, opts ...Option) *Loop {
	l := &Loop{
		backend:  backend,
		width:    DefaultWidth,
		height:   DefaultHeight,
		logger:   zap.NewNop(),
		state:    StateRunning,
		counters: newCounters(),
		lastTick: time.Now(),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.update = NewPipeline()
	l.update.Register(&InputStage{})
	for _, stage := range l.extra {
		l.update.Register(stage)
	}

	l.draw = NewPipeline()
	if l.scene != nil {
		l.draw.Register(&CompositeStage{})
	}
	return l
}

// Open initializes the backend and creates the window. It may only be
// called once; neither step is retried.
func (l *Loop) Open() error {
	if l.opened {
		return ErrAlreadyOpen
	}
	l.opened = true

	if err := l.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}

	window, err := l.backend.OpenWindow(l.width, l.height)
	if err != nil {
		return fmt.Errorf("open %dx%d window: %w", l.width, l.height, err)
	}
	l.window = window
	l.lastTick = time.Now()

	l.logger.Info("window opened",
		zap.Int("width", l.width),
		zap.Int("height", l.height),
		zap.Bool("drawing", l.Draws()),
		zap.Int("tick_rate", l.tickRate),
	)
	return nil
}

// Close releases the backend. Calling it more than once is a no-op.
func (l *Loop) Close() error {
	if !l.opened || l.closed {
		return nil
	}
	l.closed = true
	l.window = nil

	if err := l.backend.Close(); err != nil {
		return fmt.Errorf("close backend: %w", err)
	}
	l.logger.Info("window closed", zap.Uint64("iterations", l.counters.iterations))
	return nil
}

// Step handles one batch of events. Every event in the batch is processed,
// even after one of them has stopped the loop. A stopped loop ignores
// further batches.
func (l *Loop) Step(events []event.Event) (State, error) {
	if l.state == StateStopped {
		return l.state, nil
	}

	now := time.Now()
	tick := &Tick{
		Iteration: l.counters.iterations,
		DeltaTime: now.Sub(l.lastTick).Seconds(),
		Events:    events,
		Loop:      l,
	}
	l.lastTick = now
	l.counters.iterations++
	l.counters.lastDelta = tick.DeltaTime

	if err := l.update.Once(tick); err != nil {
		return l.state, err
	}
	return l.state, nil
}

// Render composites the scene onto the window surface and presents it.
// Loops without a scene present nothing.
func (l *Loop) Render() error {
	if l.window == nil {
		return ErrNoWindow
	}
	if !l.Draws() {
		return nil
	}

	tick := &Tick{Iteration: l.counters.iterations, Loop: l}
	if err := l.draw.Once(tick); err != nil {
		return err
	}
	if err := l.backend.Present(l.window); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	l.counters.frames++
	return nil
}

// Iterate polls the backend once, handles the batch and renders if the loop
// is still running.
func (l *Loop) Iterate() (State, error) {
	state, err := l.Step(l.backend.PollEvents())
	if err != nil || state == StateStopped {
		return state, err
	}
	return state, l.Render()
}

// Run opens the window, iterates until the loop stops or ctx is cancelled,
// and closes the backend on the way out.
func (l *Loop) Run(ctx context.Context) (err error) {
	if err := l.Open(); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, l.Close())
	}()

	var throttle <-chan time.Time
	if l.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
		throttle = ticker.C
	}

	for {
		if throttle != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-throttle:
			}
		} else if ctx.Err() != nil {
			return ctx.Err()
		}

		state, err := l.Iterate()
		if err != nil {
			return err
		}
		if state == StateStopped {
			return nil
		}
	}
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Running reports whether the loop has not yet stopped.
func (l *Loop) Running() bool {
	return l.state == StateRunning
}

// Draws reports whether the loop composites and presents frames.
func (l *Loop) Draws() bool {
	return l.scene != nil
}

// Window returns the window surface, or nil before Open and after Close.
func (l *Loop) Window() *gfx.Surface {
	return l.window
}

// Scene returns the scene being drawn, or nil.
func (l *Loop) Scene() *scene.Scene {
	return l.scene
}

// TickRate returns the configured iteration cap; zero means unbounded.
func (l *Loop) TickRate() int {
	return l.tickRate
}

// Size returns the window size the loop opens.
func (l *Loop) Size() (width, height int) {
	return l.width, l.height
}

// Stop moves the loop into StateStopped, recording e as the cause. It
// returns false if the loop had already stopped.
func (l *Loop) Stop(e event.Event) bool {
	if l.state == StateStopped {
		return false
	}
	l.state = StateStopped
	l.stopEvent = e
	l.logger.Info("loop stopped",
		zap.Stringer("event", e),
		zap.Uint64("iteration", l.counters.iterations),
	)
	return true
}

// Stats returns a snapshot of the loop counters.
func (l *Loop) Stats() Stats {
	return Stats{
		Iterations:    l.counters.iterations,
		Frames:        l.counters.frames,
		Events:        l.counters.eventsByKind(),
		IgnoredEvents: l.counters.ignored,
		DeltaTime:     l.counters.lastDelta,
		State:         l.state,
		StopEvent:     l.stopEvent,
		Update:        l.update.GetStats(),
		Draw:          l.draw.GetStats(),
	}
}
