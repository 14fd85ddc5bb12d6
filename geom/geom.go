// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geom maps between pointer positions, grid cells and surface
// geometry.
//
// All coordinates are nominal units: the logical space the grid is laid out
// in, independent of the display's physical pixel density. A grid of
// rows x columns cells of size s occupies columns*s+2 by rows*s+2 nominal
// units, leaving a one unit margin on every edge for cell borders.
package geom

import "math"

// Margin is the border margin, in nominal units, around the cell area.
const Margin = 1

// Rect is an axis-aligned rectangle in nominal units.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) lies inside r.
// The left and top edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Inset returns r shrunk by d on every side. A negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		X:      r.X + d,
		Y:      r.Y + d,
		Width:  math.Max(0, r.Width-2*d),
		Height: math.Max(0, r.Height-2*d),
	}
}

// Intersect returns the overlap of r and o, or the zero Rect if they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.Width, o.X+o.Width)
	y1 := math.Min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// CellToRect returns the rectangle owned by cell (row, column).
func CellToRect(row, column, cellSize int) Rect {
	return Rect{
		X:      float64(column*cellSize + Margin),
		Y:      float64(row*cellSize + Margin),
		Width:  float64(cellSize),
		Height: float64(cellSize),
	}
}

// PointerToCell resolves a pointer position to the cell under it.
//
// x and y are relative to the surface origin and measured in the same units
// as surface, its on-screen rectangle. The position is first brought into
// nominal units (the on-screen size may differ from the nominal one), then
// the margin is removed and the remainder divided by cellSize, so every
// point inside CellToRect(row, column, cellSize) resolves to (row, column).
// The result is always a valid index: positions in the margin or outside
// the surface, including its trailing edge, clamp to the nearest cell.
func PointerToCell(x, y float64, surface Rect, rows, columns, cellSize int) (row, column int) {
	width, height := SurfaceSize(rows, columns, cellSize)
	column = axisIndex(x, surface.Width, width, cellSize, columns)
	row = axisIndex(y, surface.Height, height, cellSize, rows)
	return row, column
}

func axisIndex(pos, extent, nominal float64, cellSize, n int) int {
	if n <= 0 || cellSize <= 0 {
		return 0
	}
	if extent > 0 {
		pos *= nominal / extent
	}
	i := int(math.Floor((pos - Margin) / float64(cellSize)))
	return clamp(i, 0, n-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SurfaceSize returns the nominal size of a grid surface.
func SurfaceSize(rows, columns, cellSize int) (width, height float64) {
	return float64(columns*cellSize + 2*Margin), float64(rows*cellSize + 2*Margin)
}

// BackingSize returns the physical pixel size of a surface of nominal size
// width x height at the given device pixel ratio. Fractional pixels round
// up so the scaled drawing is never clipped.
func BackingSize(width, height, ratio float64) (int, int) {
	ratio = NormalizeRatio(ratio)
	return int(math.Ceil(width * ratio)), int(math.Ceil(height * ratio))
}

// NormalizeRatio returns ratio, or 1 if ratio is not a usable scale factor.
func NormalizeRatio(ratio float64) float64 {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return 1
	}
	return ratio
}
