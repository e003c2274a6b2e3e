package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/frameloop/event"
	"github.com/plus3/frameloop/frame"
)

// Overlay draws on top of the loop's frame, e.g. a debug UI. BeginFrame and
// EndFrame bracket each Update; Build is called in between with the latest
// loop stats.
type Overlay interface {
	BeginFrame()
	Build(stats frame.Stats)
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// screenBackend is the part of Backend that Game drives directly.
type screenBackend interface {
	PollEvents() []event.Event
	// attach sets the screen Present writes to; nil detaches it.
	attach(screen *ebiten.Image)
	// repaint restores the last presented frame without presenting again.
	repaint(screen *ebiten.Image)
}

// Game implements ebiten.Game for a frame.Loop.
//
// Ebitengine may call Draw more or less often than Update. The loop is
// rendered at most once per Update that left it running; extra Draw calls
// keep the previous image on screen.
type Game struct {
	loop    *frame.Loop
	backend screenBackend
	overlay Overlay

	pendingRender bool
	drawErr       error
}

// NewGame binds loop to backend. The loop must have been created with
// backend. overlay may be nil.
func NewGame(loop *frame.Loop, backend *Backend, overlay Overlay) *Game {
	return newGame(loop, backend, overlay)
}

func newGame(loop *frame.Loop, backend screenBackend, overlay Overlay) *Game {
	return &Game{
		loop:    loop,
		backend: backend,
		overlay: overlay,
	}
}

func (g *Game) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}

	if g.overlay != nil {
		g.overlay.BeginFrame()
	}

	state, err := g.loop.Step(g.backend.PollEvents())

	if g.overlay != nil {
		g.overlay.Build(g.loop.Stats())
		g.overlay.EndFrame()
	}

	if err != nil {
		return err
	}
	if state == frame.StateStopped {
		g.pendingRender = false
		return ebiten.Termination
	}
	g.pendingRender = true
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.pendingRender && g.loop.Running() {
		g.pendingRender = false
		g.backend.attach(screen)
		// Draw cannot fail; the error surfaces from the next Update.
		if err := g.loop.Render(); err != nil && g.drawErr == nil {
			g.drawErr = err
		}
		g.backend.attach(nil)
	} else if g.overlay != nil {
		// The overlay repaints every frame, so the loop image underneath
		// has to be restored first.
		g.backend.repaint(screen)
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return g.loop.Size()
}

// Run opens the loop's window and hands control to Ebitengine until the
// loop stops. It must be called from the main goroutine.
func Run(loop *frame.Loop, backend *Backend, overlay Overlay) error {
	return run(loop, backend, overlay, ebiten.RunGame)
}

func run(loop *frame.Loop, backend screenBackend, overlay Overlay, runGame func(ebiten.Game) error) (err error) {
	if err := loop.Open(); err != nil {
		return err
	}
	defer func() {
		if cerr := loop.Close(); err == nil {
			err = cerr
		}
	}()

	return runGame(newGame(loop, backend, overlay))
}
