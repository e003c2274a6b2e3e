// Package scene holds the things the frame loop draws.
//
// An Entity is a plain aggregate of a visual surface and a position rect.
// Anything satisfying Sprite can be composited by a Scene; there is no
// base type to inherit from.
package scene

import (
	"fmt"
	"strings"

	"github.com/plus3/frameloop/gfx"
)

// Drawable has a visual surface.
type Drawable interface {
	Surface() *gfx.Surface
}

// Bounded has a position rect in window coordinates.
type Bounded interface {
	Rect() gfx.Rect
}

// Sprite can be composited onto a window surface.
type Sprite interface {
	Drawable
	Bounded
}

// Entity is a surface placed at a rect.
type Entity struct {
	surf *gfx.Surface
	rect gfx.Rect
}

// NewEntity places surf at rect.
func NewEntity(surf *gfx.Surface, rect gfx.Rect) *Entity {
	return &Entity{surf: surf, rect: rect}
}

// NewBox creates a flat-colored w×h entity positioned at the origin, its
// rect taken from the surface.
func NewBox(w, h int, c gfx.Color) (*Entity, error) {
	surf, err := gfx.NewSurface(w, h)
	if err != nil {
		return nil, fmt.Errorf("create box surface: %w", err)
	}
	surf.Fill(c)
	return NewEntity(surf, surf.Rect()), nil
}

func (e *Entity) Surface() *gfx.Surface { return e.surf }
func (e *Entity) Rect() gfx.Rect        { return e.rect }

// Variant selects which of the loop flavours is run.
type Variant string

const (
	// VariantBare opens the window and polls events; nothing is drawn or presented.
	VariantBare Variant = "bare"
	// VariantRect draws a plain surface at its own rect every frame.
	VariantRect Variant = "rect"
	// VariantPlayer draws the player entity every frame.
	VariantPlayer Variant = "player"
)

// Variants lists every known variant.
var Variants = []Variant{VariantBare, VariantRect, VariantPlayer}

// ParseVariant resolves a variant name, case-insensitively.
func ParseVariant(name string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Variants {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q", name)
}

// Draws reports whether the variant renders and presents frames.
func (v Variant) Draws() bool {
	return v != VariantBare
}

// Scene is the ordered set of sprites composited each frame.
type Scene struct {
	sprites []Sprite
}

// New creates a scene from the given sprites, drawn in order.
func New(sprites ...Sprite) *Scene {
	return &Scene{sprites: sprites}
}

// Len returns the number of sprites.
func (s *Scene) Len() int {
	return len(s.sprites)
}

// Draw composites every sprite onto dst at its rect.
func (s *Scene) Draw(dst *gfx.Surface) {
	for _, sprite := range s.sprites {
		dst.Blit(sprite.Surface(), sprite.Rect())
	}
}
