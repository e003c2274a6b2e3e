package frame

import (
	"github.com/plus3/frameloop/event"
	"github.com/plus3/frameloop/gfx"
)

// Backend is the windowing library the loop drives.
//
// Init is called exactly once before anything else and OpenWindow exactly
// once after it. PollEvents must never block: it drains whatever is queued
// and returns an empty batch when nothing is. Present shows the composited
// window surface (a buffer swap). Close releases the window.
type Backend interface {
	Init() error
	OpenWindow(width, height int) (*gfx.Surface, error)
	PollEvents() []event.Event
	Present(window *gfx.Surface) error
	Close() error
}
