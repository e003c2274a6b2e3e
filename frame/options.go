package frame

import (
	"github.com/plus3/frameloop/scene"
	"go.uber.org/zap"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Option configures a Loop.
type Option func(*Loop)

// WithScene makes the loop composite and present s every iteration.
// Without a scene the loop only polls events.
func WithScene(s *scene.Scene) Option {
	return func(l *Loop) {
		l.scene = s
	}
}

// WithWindowSize overrides the 800x600 window.
func WithWindowSize(width, height int) Option {
	return func(l *Loop) {
		l.width = width
		l.height = height
	}
}

// WithTickRate caps Run at hz iterations per second. Zero or less leaves
// the loop unbounded.
func WithTickRate(hz int) Option {
	return func(l *Loop) {
		l.tickRate = hz
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithStage appends an update stage that runs after event handling.
func WithStage(stage Stage) Option {
	return func(l *Loop) {
		l.extra = append(l.extra, stage)
	}
}

