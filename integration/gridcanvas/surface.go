// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gridcanvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/squaregrid/geom"
	"github.com/gogpu/squaregrid/surface"
)

// BackendName is the registry name of the canvas backend.
const BackendName = "gpu"

// backendPriority ranks the canvas backend above the CPU image backend.
const backendPriority = 100

// ErrClosed is returned when drawing on a closed surface.
var ErrClosed = errors.New("gridcanvas: surface is closed")

// Surface is a surface.Surface backed by a ggcanvas.Canvas.
//
// The canvas is allocated at the backing size and its context is scaled by
// the device pixel ratio, so grids keep drawing in nominal units.
type Surface struct {
	canvas *ggcanvas.Canvas
	dc     *gg.Context

	width, height float64
	ratio         float64
	x, y          float64

	closed bool
}

// Compile-time check.
var _ surface.Surface = (*Surface)(nil)

// New creates a canvas surface on the device provided by provider.
// The provider should come from gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider, opts surface.Options) (*Surface, error) {
	width := max(opts.Width, 1)
	height := max(opts.Height, 1)
	ratio := geom.NormalizeRatio(opts.PixelRatio)

	bw, bh := geom.BackingSize(width, height, ratio)
	canvas, err := ggcanvas.New(provider, bw, bh)
	if err != nil {
		return nil, fmt.Errorf("gridcanvas: %w", err)
	}
	dc := canvas.Context()
	dc.Scale(ratio, ratio)

	return &Surface{
		canvas: canvas,
		dc:     dc,
		width:  width,
		height: height,
		ratio:  ratio,
	}, nil
}

// Factory returns a surface.Factory creating canvas surfaces on provider.
func Factory(provider gpucontext.DeviceProvider) surface.Factory {
	return func(opts surface.Options) (surface.Surface, error) {
		return New(provider, opts)
	}
}

// Register adds the canvas backend for provider to the surface registry.
// The backend reports itself unavailable when provider is nil.
func Register(provider gpucontext.DeviceProvider) {
	surface.Register(BackendName, backendPriority, Factory(provider), func() bool {
		return provider != nil
	})
}

// Canvas returns the underlying canvas.
func (s *Surface) Canvas() *ggcanvas.Canvas {
	return s.canvas
}

// SetColor sets the current drawing color.
func (s *Surface) SetColor(c color.Color) { s.dc.SetColor(c) }

// SetLineWidth sets the stroke width in nominal units.
func (s *Surface) SetLineWidth(width float64) { s.dc.SetLineWidth(width) }

// DrawRectangle appends a rectangle to the current path.
func (s *Surface) DrawRectangle(x, y, w, h float64) { s.dc.DrawRectangle(x, y, w, h) }

// Fill fills the current path and flags the canvas for upload.
func (s *Surface) Fill() error {
	if s.closed {
		s.dc.ClearPath()
		return ErrClosed
	}
	s.canvas.MarkDirty()
	return s.dc.Fill()
}

// Stroke strokes the current path and flags the canvas for upload.
func (s *Surface) Stroke() error {
	if s.closed {
		s.dc.ClearPath()
		return ErrClosed
	}
	s.canvas.MarkDirty()
	return s.dc.Stroke()
}

// Dirty reports whether the canvas has content not yet uploaded.
func (s *Surface) Dirty() bool {
	return s.canvas.IsDirty()
}

// RenderTo uploads pending changes and draws the canvas to dc at the
// surface's position. The texture is drawn at its backing size, so the
// position is converted to physical pixels.
func (s *Surface) RenderTo(dc gpucontext.TextureDrawer) error {
	if s.closed {
		return ErrClosed
	}
	return s.canvas.RenderToPosition(dc, float32(s.x*s.ratio), float32(s.y*s.ratio))
}

// Size returns the nominal size.
func (s *Surface) Size() (width, height float64) {
	return s.width, s.height
}

// BackingSize returns the canvas size in pixels.
func (s *Surface) BackingSize() (width, height int) {
	return s.canvas.Size()
}

// PixelRatio returns the device pixel ratio.
func (s *Surface) PixelRatio() float64 {
	return s.ratio
}

// BoundingRect returns the on-screen rectangle in logical units.
func (s *Surface) BoundingRect() geom.Rect {
	return geom.Rect{X: s.x, Y: s.y, Width: s.width, Height: s.height}
}

// Place moves the on-screen origin.
func (s *Surface) Place(x, y float64) {
	s.x, s.y = x, y
}

// Flush dispatches shapes queued by a batching GPU accelerator to the
// canvas pixmap.
func (s *Surface) Flush() error {
	if s.closed {
		return ErrClosed
	}
	return s.dc.FlushGPU()
}

// Snapshot returns a copy of the canvas pixels after flushing queued shapes.
func (s *Surface) Snapshot() *image.RGBA {
	_ = s.Flush()
	img := s.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

// Close releases the canvas and its GPU texture. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.canvas.Close()
}
