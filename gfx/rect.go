package gfx

import (
	"fmt"
	"image"
)

// Rect is a position and size in window coordinates.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect returns a rect at (x, y) with the given size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Move returns a copy of r positioned at (x, y).
func (r Rect) Move(x, y int) Rect {
	r.X, r.Y = x, y
	return r
}

// Image converts r into an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func (r Rect) String() string {
	return fmt.Sprintf("<rect(%d, %d, %d, %d)>", r.X, r.Y, r.W, r.H)
}
