package scene

import (
	"fmt"

	"github.com/plus3/frameloop/gfx"
)

// BoxSpec describes a flat-colored rectangle.
type BoxSpec struct {
	Width  int
	Height int
	Color  gfx.Color
}

// Options configures Build.
type Options struct {
	Rect   BoxSpec
	Player BoxSpec
}

// DefaultOptions returns the sizes used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Rect:   BoxSpec{Width: 50, Height: 50, Color: gfx.White},
		Player: BoxSpec{Width: 75, Height: 25, Color: gfx.White},
	}
}

// Build creates the scene for a variant. The bare variant yields an empty
// scene. The returned entity is the one sprite of the drawing variants, or
// nil for bare.
func Build(v Variant, opts Options) (*Scene, *Entity, error) {
	var box BoxSpec
	switch v {
	case VariantBare:
		return New(), nil, nil
	case VariantRect:
		box = opts.Rect
	case VariantPlayer:
		box = opts.Player
	default:
		return nil, nil, fmt.Errorf("unknown variant %q", v)
	}

	entity, err := NewBox(box.Width, box.Height, box.Color)
	if err != nil {
		return nil, nil, fmt.Errorf("build %s scene: %w", v, err)
	}
	return New(entity), entity, nil
}
