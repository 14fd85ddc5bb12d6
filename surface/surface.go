// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/squaregrid/geom"
)

// Painter is the drawing contract a grid renders through.
//
// It is the subset of the gg.Context API used for axis-aligned cells,
// so *gg.Context satisfies it directly. All coordinates are nominal units;
// the surface owning the Painter applies the device pixel ratio.
type Painter interface {
	// SetColor sets the color used by the next Fill or Stroke.
	SetColor(c color.Color)

	// SetLineWidth sets the stroke width in nominal units.
	SetLineWidth(width float64)

	// DrawRectangle appends a rectangle to the current path.
	DrawRectangle(x, y, w, h float64)

	// Fill fills and clears the current path.
	Fill() error

	// Stroke strokes and clears the current path.
	Stroke() error
}

// Surface is a drawing target a grid is attached to.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, normally the host's UI goroutine.
type Surface interface {
	Painter

	// Size returns the nominal (logical) size of the surface.
	Size() (width, height float64)

	// BackingSize returns the physical size of the backing store in pixels.
	BackingSize() (width, height int)

	// PixelRatio returns the device pixel ratio applied to drawing.
	PixelRatio() float64

	// BoundingRect returns the on-screen rectangle of the surface in the
	// host's logical coordinates.
	BoundingRect() geom.Rect

	// Place moves the surface's on-screen origin. Hosts call it when laying
	// the surface out inside a container.
	Place(x, y float64)

	// Flush completes drawing a GPU accelerator has queued, so the backing
	// store holds every Fill and Stroke issued so far.
	Flush() error

	// Snapshot flushes and returns a copy of the backing store.
	Snapshot() *image.RGBA

	// Close releases the surface. Close is idempotent.
	Close() error
}

// Options configures surface creation.
type Options struct {
	// Width and Height are the nominal size.
	Width, Height float64

	// PixelRatio is the host's device pixel ratio. Values that are not
	// positive and finite are treated as 1.
	PixelRatio float64
}
