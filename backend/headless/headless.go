// Package headless provides a windowless frame.Backend driven by a script of
// event batches. It is used by tests and by `frameloop run --headless`.
package headless

import (
	"errors"

	"github.com/plus3/frameloop/event"
	"github.com/plus3/frameloop/gfx"
)

var ErrNotInitialized = errors.New("headless: backend not initialized")

// Backend hands out one queued batch per poll and records every call the
// loop makes.
type Backend struct {
	batches  [][]event.Event
	maxPolls int

	InitCalls    int
	OpenCalls    int
	CloseCalls   int
	Polls        int
	Presents     int
	LastFrame    *gfx.Surface
	initErr      error
	openErr      error
	presentErr   error
	initialized  bool
	quitInjected bool
}

// Option configures a Backend.
type Option func(*Backend)

// WithBatches queues event batches, one per poll, in order.
func WithBatches(batches ...[]event.Event) Option {
	return func(b *Backend) {
		b.batches = append(b.batches, batches...)
	}
}

// WithMaxPolls makes the backend report a quit event on poll n once the
// script runs dry. Zero disables the limit.
func WithMaxPolls(n int) Option {
	return func(b *Backend) {
		b.maxPolls = n
	}
}

// WithInitError makes Init fail.
func WithInitError(err error) Option {
	return func(b *Backend) { b.initErr = err }
}

// WithOpenError makes OpenWindow fail.
func WithOpenError(err error) Option {
	return func(b *Backend) { b.openErr = err }
}

// WithPresentError makes Present fail.
func WithPresentError(err error) Option {
	return func(b *Backend) { b.presentErr = err }
}

// New creates a scripted backend.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Push queues another batch.
func (b *Backend) Push(events ...event.Event) {
	b.batches = append(b.batches, events)
}

func (b *Backend) Init() error {
	b.InitCalls++
	if b.initErr != nil {
		return b.initErr
	}
	b.initialized = true
	return nil
}

func (b *Backend) OpenWindow(width, height int) (*gfx.Surface, error) {
	b.OpenCalls++
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	if b.openErr != nil {
		return nil, b.openErr
	}
	return gfx.NewSurface(width, height)
}

func (b *Backend) PollEvents() []event.Event {
	b.Polls++
	if len(b.batches) > 0 {
		batch := b.batches[0]
		b.batches = b.batches[1:]
		return batch
	}
	if b.maxPolls > 0 && b.Polls >= b.maxPolls && !b.quitInjected {
		b.quitInjected = true
		return []event.Event{event.Quit()}
	}
	return nil
}

func (b *Backend) Present(window *gfx.Surface) error {
	if b.presentErr != nil {
		return b.presentErr
	}
	b.Presents++
	b.LastFrame = window
	return nil
}

func (b *Backend) Close() error {
	b.CloseCalls++
	b.initialized = false
	return nil
}

// Pending returns the number of batches not yet polled.
func (b *Backend) Pending() int {
	return len(b.batches)
}
