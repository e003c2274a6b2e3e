// Package ebiten runs the frame loop in a desktop window using Ebitengine.
//
// Ebitengine owns the main loop and calls back into Update and Draw, so
// Game maps those callbacks onto frame.Loop: Update polls and steps, Draw
// renders and presents.
package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/frameloop/event"
	"github.com/plus3/frameloop/gfx"
)

// ErrNoScreen is returned by Present outside of a Draw callback.
var ErrNoScreen = errors.New("ebiten: present called outside of Draw")

// Backend implements frame.Backend on top of Ebitengine's window and input
// state.
type Backend struct {
	title    string
	tickRate int

	keys   []ebiten.Key
	screen *ebiten.Image
	last   *gfx.Surface
}

// NewBackend creates a backend whose window carries title. tickRate caps
// Update calls per second; zero or less syncs with the display refresh.
func NewBackend(title string, tickRate int) *Backend {
	return &Backend{
		title:    title,
		tickRate: tickRate,
	}
}

func (b *Backend) Init() error {
	ebiten.SetWindowTitle(b.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	// Window close requests are delivered as quit events instead of
	// terminating the game directly.
	ebiten.SetWindowClosingHandled(true)
	// Frames drawn without a new iteration keep the last presented image.
	ebiten.SetScreenClearedEveryFrame(false)

	if b.tickRate > 0 {
		ebiten.SetTPS(b.tickRate)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}
	return nil
}

func (b *Backend) OpenWindow(width, height int) (*gfx.Surface, error) {
	ebiten.SetWindowSize(width, height)
	return gfx.NewSurface(width, height)
}

// PollEvents reports the keys pressed since the previous tick and any
// pending close request. It never blocks.
func (b *Backend) PollEvents() []event.Event {
	var events []event.Event

	b.keys = inpututil.AppendJustPressedKeys(b.keys[:0])
	for _, k := range b.keys {
		events = append(events, event.KeyDown(translateKey(k)))
	}

	if ebiten.IsWindowBeingClosed() {
		events = append(events, event.Quit())
	}
	return events
}

// Present copies the window surface onto the screen image of the current
// Draw call. Ebitengine swaps buffers once Draw returns.
func (b *Backend) Present(window *gfx.Surface) error {
	if b.screen == nil {
		return ErrNoScreen
	}
	b.screen.WritePixels(window.Pixels())
	b.last = window
	return nil
}

func (b *Backend) Close() error {
	b.screen = nil
	b.last = nil
	return nil
}

func (b *Backend) attach(screen *ebiten.Image) {
	b.screen = screen
}

func (b *Backend) repaint(screen *ebiten.Image) {
	if b.last == nil {
		screen.Clear()
		return
	}
	screen.WritePixels(b.last.Pixels())
}
