package frame

import "go.uber.org/zap"

// InputStage applies the iteration's events to the loop state.
type InputStage struct{}

func (s *InputStage) Name() string { return "input" }

func (s *InputStage) Execute(tick *Tick) error {
	l := tick.Loop
	for _, e := range tick.Events {
		l.counters.countEvent(e)
		if e.Stops() {
			l.Stop(e)
			continue
		}
		l.logger.Debug("event ignored",
			zap.Stringer("event", e),
			zap.Uint64("iteration", tick.Iteration),
		)
	}
	return nil
}

// CompositeStage blits every sprite of the scene onto the window surface.
type CompositeStage struct{}

func (s *CompositeStage) Name() string { return "composite" }

func (s *CompositeStage) Execute(tick *Tick) error {
	l := tick.Loop
	l.scene.Draw(l.window)
	return nil
}
