package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/frameloop/event"
	"github.com/plus3/frameloop/frame"
)

// LoopStatsWindow renders loop counters, a frame time graph and per-stage
// timings.
type LoopStatsWindow struct {
	history *FrameHistory
}

func NewLoopStatsWindow(historyFrames int) *LoopStatsWindow {
	return &LoopStatsWindow{
		history: NewFrameHistory(historyFrames),
	}
}

// Render draws the window and records the loop's latest step time.
func (w *LoopStatsWindow) Render(stats frame.Stats) {
	if !imgui.BeginV("Loop Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	w.history.Record(float32(stats.DeltaTime))

	imgui.Text(fmt.Sprintf("State: %s", stats.State))
	imgui.Text(fmt.Sprintf("Iterations: %d", stats.Iterations))
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))

	avgFrameTime := w.history.Average()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	samples := w.history.Samples()
	imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))

	if imgui.TreeNodeStr("Events") {
		for _, kind := range []event.Kind{event.KindKeyDown, event.KindQuit, event.KindOther} {
			imgui.BulletText(fmt.Sprintf("%s: %d", kind, stats.Events[kind]))
		}
		imgui.BulletText(fmt.Sprintf("ignored: %d", stats.IgnoredEvents))
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Stages") {
		renderStageTable("UpdateStages", stats.Update)
		renderStageTable("DrawStages", stats.Draw)
		imgui.TreePop()
	}

	imgui.End()
}

func renderStageTable(id string, stats *frame.PipelineStats) {
	if stats == nil || stats.StageCount == 0 {
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV(id, 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Stage")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableHeadersRow()

		for _, stage := range stats.Stages {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(stage.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", stage.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(stage.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(stage.MaxDuration.String())
		}

		imgui.EndTable()
	}
}

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	count   int
}

// NewFrameHistory keeps the last size samples. size is at least one.
func NewFrameHistory(size int) *FrameHistory {
	if size < 1 {
		size = 1
	}
	return &FrameHistory{samples: make([]float32, size)}
}

// Record stores a frame duration given in seconds.
func (h *FrameHistory) Record(deltaTime float32) {
	h.samples[h.index] = deltaTime * 1000.0
	h.index = (h.index + 1) % len(h.samples)
	if h.count < len(h.samples) {
		h.count++
	}
}

// Average returns the mean of the recorded samples, in milliseconds.
func (h *FrameHistory) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var total float32
	for _, ft := range h.samples[:h.count] {
		total += ft
	}
	return total / float32(h.count)
}

// Samples returns the ring buffer backing the graph.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}
