// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/squaregrid/geom"
)

// ErrClosed is returned when drawing on a closed surface.
var ErrClosed = errors.New("surface: closed")

// ImageSurface is a CPU surface backed by a gg.Context.
//
// The backing pixmap is the nominal size multiplied by the device pixel
// ratio, and the context transform is scaled by the same ratio, so callers
// keep drawing in nominal units while the output stays sharp on high
// density displays.
//
// Example:
//
//	s := surface.NewImageSurface(surface.Options{Width: 32, Height: 32, PixelRatio: 2})
//	defer s.Close()
//
//	s.SetColor(color.Black)
//	s.DrawRectangle(1, 1, 10, 10)
//	_ = s.Fill()
//
//	img := s.Snapshot() // 64x64
type ImageSurface struct {
	dc *gg.Context

	width, height float64
	ratio         float64
	x, y          float64

	closed bool
}

// NewImageSurface creates a CPU surface.
// A non-positive nominal size is clamped to 1x1.
func NewImageSurface(opts Options) *ImageSurface {
	width := max(opts.Width, 1)
	height := max(opts.Height, 1)
	ratio := geom.NormalizeRatio(opts.PixelRatio)

	bw, bh := geom.BackingSize(width, height, ratio)
	dc := gg.NewContext(bw, bh)
	dc.Scale(ratio, ratio)

	return &ImageSurface{
		dc:     dc,
		width:  width,
		height: height,
		ratio:  ratio,
	}
}

// NewImage is a Factory for ImageSurface.
func NewImage(opts Options) (Surface, error) {
	return NewImageSurface(opts), nil
}

// Context returns the underlying gg drawing context.
// Its transform already includes the device pixel ratio.
func (s *ImageSurface) Context() *gg.Context {
	return s.dc
}

// SetColor sets the current drawing color.
func (s *ImageSurface) SetColor(c color.Color) { s.dc.SetColor(c) }

// SetLineWidth sets the stroke width in nominal units.
func (s *ImageSurface) SetLineWidth(width float64) { s.dc.SetLineWidth(width) }

// DrawRectangle appends a rectangle to the current path.
func (s *ImageSurface) DrawRectangle(x, y, w, h float64) { s.dc.DrawRectangle(x, y, w, h) }

// Fill fills the current path.
func (s *ImageSurface) Fill() error {
	if s.closed {
		s.dc.ClearPath()
		return ErrClosed
	}
	return s.dc.Fill()
}

// Stroke strokes the current path.
func (s *ImageSurface) Stroke() error {
	if s.closed {
		s.dc.ClearPath()
		return ErrClosed
	}
	return s.dc.Stroke()
}

// Size returns the nominal size.
func (s *ImageSurface) Size() (width, height float64) {
	return s.width, s.height
}

// BackingSize returns the pixmap size in pixels.
func (s *ImageSurface) BackingSize() (width, height int) {
	return s.dc.Width(), s.dc.Height()
}

// PixelRatio returns the device pixel ratio.
func (s *ImageSurface) PixelRatio() float64 {
	return s.ratio
}

// BoundingRect returns the on-screen rectangle. The displayed size is the
// nominal size regardless of the pixel ratio.
func (s *ImageSurface) BoundingRect() geom.Rect {
	return geom.Rect{X: s.x, Y: s.y, Width: s.width, Height: s.height}
}

// Place moves the on-screen origin.
func (s *ImageSurface) Place(x, y float64) {
	s.x, s.y = x, y
}

// Flush dispatches shapes queued by a batching GPU accelerator to the
// pixmap.
func (s *ImageSurface) Flush() error {
	if s.closed {
		return ErrClosed
	}
	return s.dc.FlushGPU()
}

// Snapshot returns a copy of the pixmap after flushing queued shapes.
// Use EncodePNG or call Flush first to see flush errors.
func (s *ImageSurface) Snapshot() *image.RGBA {
	_ = s.Flush()
	return toRGBA(s.dc.Image())
}

// EncodePNG flushes queued shapes and writes the surface contents as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if err := s.Flush(); err != nil {
		return fmt.Errorf("surface: flush: %w", err)
	}
	return png.Encode(w, toRGBA(s.dc.Image()))
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

// SavePNG writes the surface contents to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := s.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Close releases the drawing context.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}
