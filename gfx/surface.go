// Package gfx provides the software surfaces the frame loop draws with.
// A Surface is a rectangular RGBA pixel buffer that can be filled and
// blitted onto another surface.
package gfx

import (
	"fmt"
	"image"
	"image/draw"
)

// Surface is a fixed-size pixel buffer.
type Surface struct {
	img *image.RGBA
}

// NewSurface allocates a black, fully transparent surface of the given size.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Rect returns the surface bounds positioned at the origin.
func (s *Surface) Rect() Rect {
	return Rect{W: s.Width(), H: s.Height()}
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c Color) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Blit copies src onto s with its top-left corner at the position of at.
// The copied area is the full size of src; the width and height of at are
// ignored. Pixels falling outside s are clipped.
func (s *Surface) Blit(src *Surface, at Rect) {
	dst := src.Rect().Move(at.X, at.Y).Image()
	if dst.Intersect(s.img.Rect).Empty() {
		return
	}
	draw.Draw(s.img, dst, src.img, image.Point{}, draw.Src)
}

// At returns the color of the pixel at (x, y). Outside the bounds it returns
// the zero color.
func (s *Surface) At(x, y int) Color {
	if !image.Pt(x, y).In(s.img.Rect) {
		return Color{}
	}
	c := s.img.RGBAAt(x, y)
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Pixels exposes the backing RGBA buffer, row-major with a stride of
// 4*Width bytes. Backends copy it to the screen when presenting.
func (s *Surface) Pixels() []byte {
	return s.img.Pix
}

// Image exposes the surface as an image.Image.
func (s *Surface) Image() image.Image {
	return s.img
}

