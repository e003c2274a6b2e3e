package ebiten

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/frameloop/backend/headless"
	"github.com/plus3/frameloop/event"
	"github.com/plus3/frameloop/frame"
	"github.com/plus3/frameloop/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedScreen drives Game from a headless script and records the screen
// hand-offs Ebitengine would normally see.
type scriptedScreen struct {
	*headless.Backend
	repaints int
}

func (s *scriptedScreen) attach(*ebiten.Image) {}

func (s *scriptedScreen) repaint(*ebiten.Image) { s.repaints++ }

type recordingOverlay struct {
	begins, builds, ends, draws int
	lastStats                   frame.Stats
	layoutW, layoutH            int
}

func (o *recordingOverlay) BeginFrame() { o.begins++ }
func (o *recordingOverlay) Build(stats frame.Stats) {
	o.builds++
	o.lastStats = stats
}
func (o *recordingOverlay) EndFrame()          { o.ends++ }
func (o *recordingOverlay) Draw(*ebiten.Image) { o.draws++ }
func (o *recordingOverlay) Layout(w, h int)    { o.layoutW, o.layoutH = w, h }

func newTestGame(t *testing.T, overlay Overlay, opts ...headless.Option) (*Game, *scriptedScreen, *frame.Loop) {
	t.Helper()
	s, _, err := scene.Build(scene.VariantPlayer, scene.DefaultOptions())
	require.NoError(t, err)

	screen := &scriptedScreen{Backend: headless.New(opts...)}
	loop := frame.New(screen, frame.WithScene(s))
	require.NoError(t, loop.Open())
	return newGame(loop, screen, overlay), screen, loop
}

func TestGameRendersOncePerUpdate(t *testing.T) {
	game, screen, loop := newTestGame(t, nil)

	require.NoError(t, game.Update())
	for range 3 {
		game.Draw(nil)
	}
	assert.Equal(t, 1, screen.Presents, "extra draws keep the previous frame")
	assert.Zero(t, screen.repaints)

	require.NoError(t, game.Update())
	game.Draw(nil)
	game.Draw(nil)
	assert.Equal(t, 2, screen.Presents)
	assert.Equal(t, uint64(2), loop.Stats().Frames)
}

func TestGameDrawBeforeUpdate(t *testing.T) {
	game, screen, _ := newTestGame(t, nil)

	game.Draw(nil)
	assert.Zero(t, screen.Presents)
}

func TestGameTerminatesOnStop(t *testing.T) {
	game, screen, loop := newTestGame(t, nil, headless.WithBatches(
		[]event.Event{event.KeyDown(event.KeyA)},
		[]event.Event{event.KeyDown(event.KeyA), event.KeyDown(event.KeyEscape)},
	))

	require.NoError(t, game.Update())
	game.Draw(nil)

	assert.ErrorIs(t, game.Update(), ebiten.Termination)
	game.Draw(nil)

	assert.Equal(t, frame.StateStopped, loop.State())
	assert.Equal(t, 1, screen.Presents, "the stopping iteration does not render")
	assert.Equal(t, 2, screen.Polls)
}

func TestGameSurfacesRenderError(t *testing.T) {
	presentErr := errors.New("swap failed")
	game, _, _ := newTestGame(t, nil, headless.WithPresentError(presentErr))

	require.NoError(t, game.Update())
	game.Draw(nil)

	assert.ErrorIs(t, game.Update(), presentErr)
}

func TestGameOverlay(t *testing.T) {
	overlay := &recordingOverlay{}
	game, screen, _ := newTestGame(t, overlay, headless.WithBatches(
		[]event.Event{event.Other()},
	))

	require.NoError(t, game.Update())
	assert.Equal(t, 1, overlay.begins)
	assert.Equal(t, 1, overlay.builds)
	assert.Equal(t, 1, overlay.ends)
	assert.Equal(t, uint64(1), overlay.lastStats.Iterations)

	game.Draw(nil)
	game.Draw(nil)
	assert.Equal(t, 2, overlay.draws)
	assert.Equal(t, 1, screen.Presents)
	assert.Equal(t, 1, screen.repaints, "overlay frames restore the loop image")

	w, h := game.Layout(1024, 768)
	assert.Equal(t, frame.DefaultWidth, w)
	assert.Equal(t, frame.DefaultHeight, h)
	assert.Equal(t, 1024, overlay.layoutW)
	assert.Equal(t, 768, overlay.layoutH)
}

// runUntilTermination mimics ebiten.RunGame: one Draw per Update until the
// game asks to stop.
func runUntilTermination(g ebiten.Game) error {
	for {
		if err := g.Update(); err != nil {
			if errors.Is(err, ebiten.Termination) {
				return nil
			}
			return err
		}
		g.Draw(nil)
	}
}

func TestRunClosesLoop(t *testing.T) {
	s, _, err := scene.Build(scene.VariantRect, scene.DefaultOptions())
	require.NoError(t, err)

	screen := &scriptedScreen{Backend: headless.New(headless.WithMaxPolls(4))}
	loop := frame.New(screen, frame.WithScene(s))

	require.NoError(t, run(loop, screen, nil, runUntilTermination))

	assert.Equal(t, 1, screen.InitCalls)
	assert.Equal(t, 1, screen.OpenCalls)
	assert.Equal(t, 1, screen.CloseCalls)
	assert.Equal(t, 3, screen.Presents)
	assert.Equal(t, frame.StateStopped, loop.State())
	assert.Nil(t, loop.Window())
}

func TestRunReportsOpenError(t *testing.T) {
	openErr := errors.New("no display")
	screen := &scriptedScreen{Backend: headless.New(headless.WithOpenError(openErr))}
	loop := frame.New(screen)

	called := false
	err := run(loop, screen, nil, func(ebiten.Game) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, openErr)
	assert.False(t, called)
	assert.Zero(t, screen.CloseCalls)
}
