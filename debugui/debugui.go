// Package debugui provides a Dear ImGui overlay that shows frame loop
// statistics on top of the Ebitengine window.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/frameloop/frame"
)

// Overlay wraps the Ebitengine Dear ImGui backend. It satisfies the
// Overlay interface of the ebiten frame backend.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	stats   *LoopStatsWindow
}

// NewOverlay creates the ImGui context and its window. historyFrames is the
// length of the frame time graph.
func NewOverlay(title string, width, height, historyFrames int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	return &Overlay{
		backend: backend,
		stats:   NewLoopStatsWindow(historyFrames),
	}
}

func (o *Overlay) BeginFrame() {
	o.backend.BeginFrame()
}

// Build renders the stats window. It must run between BeginFrame and EndFrame.
func (o *Overlay) Build(stats frame.Stats) {
	o.stats.Render(stats)
}

func (o *Overlay) EndFrame() {
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}
