// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import (
	"math"
	"testing"
)

func TestCellToRect(t *testing.T) {
	tests := []struct {
		row, column, size int
		want              Rect
	}{
		{0, 0, 10, Rect{X: 1, Y: 1, Width: 10, Height: 10}},
		{1, 1, 10, Rect{X: 11, Y: 11, Width: 10, Height: 10}},
		{2, 0, 20, Rect{X: 1, Y: 41, Width: 20, Height: 20}},
		{0, 3, 5, Rect{X: 16, Y: 1, Width: 5, Height: 5}},
	}
	for _, tt := range tests {
		got := CellToRect(tt.row, tt.column, tt.size)
		if got != tt.want {
			t.Errorf("CellToRect(%d, %d, %d) = %+v, want %+v", tt.row, tt.column, tt.size, got, tt.want)
		}
	}
}

func TestSurfaceSize(t *testing.T) {
	w, h := SurfaceSize(3, 4, 10)
	if w != 42 || h != 32 {
		t.Errorf("SurfaceSize(3, 4, 10) = (%v, %v), want (42, 32)", w, h)
	}
	w, h = SurfaceSize(50, 50, 20)
	if w != 1002 || h != 1002 {
		t.Errorf("SurfaceSize(50, 50, 20) = (%v, %v), want (1002, 1002)", w, h)
	}
}

// TestPointerToCellRoundTrip checks that every point strictly inside a cell
// rectangle resolves back to that cell.
func TestPointerToCellRoundTrip(t *testing.T) {
	grids := []struct{ rows, columns, size int }{
		{3, 3, 10},
		{7, 13, 5},
		{10, 10, 10},
		{1, 1, 20},
	}
	offsets := []float64{0.01, 0.5, 0.25, 0.75, 0.99}

	for _, g := range grids {
		w, h := SurfaceSize(g.rows, g.columns, g.size)
		bounds := Rect{Width: w, Height: h}
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.columns; c++ {
				cell := CellToRect(r, c, g.size)
				for _, fx := range offsets {
					for _, fy := range offsets {
						x := cell.X + fx*cell.Width
						y := cell.Y + fy*cell.Height
						gr, gc := PointerToCell(x, y, bounds, g.rows, g.columns, g.size)
						if gr != r || gc != c {
							t.Fatalf("%dx%d/%d: PointerToCell(%v, %v) = (%d, %d), want (%d, %d)",
								g.rows, g.columns, g.size, x, y, gr, gc, r, c)
						}
					}
				}
			}
		}
	}
}

func TestPointerToCellClamps(t *testing.T) {
	const rows, columns, size = 3, 4, 10
	w, h := SurfaceSize(rows, columns, size)
	bounds := Rect{Width: w, Height: h}

	tests := []struct {
		name           string
		x, y           float64
		wantR, wantCol int
	}{
		{"origin", 0, 0, 0, 0},
		{"negative", -5, -100, 0, 0},
		{"bottom-right edge", w, h, rows - 1, columns - 1},
		{"last pixel", w - 1, h - 1, rows - 1, columns - 1},
		{"far outside", 10 * w, 10 * h, rows - 1, columns - 1},
		{"right margin", w - 0.5, 5, 0, columns - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, c := PointerToCell(tt.x, tt.y, bounds, rows, columns, size)
			if r != tt.wantR || c != tt.wantCol {
				t.Errorf("PointerToCell(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, r, c, tt.wantR, tt.wantCol)
			}
		})
	}
}

func TestPointerToCellDisplayScaled(t *testing.T) {
	// Surface shown at twice its nominal size.
	const rows, columns, size = 3, 3, 10
	w, h := SurfaceSize(rows, columns, size)
	bounds := Rect{Width: 2 * w, Height: 2 * h}

	cell := CellToRect(1, 2, size)
	x := 2 * (cell.X + cell.Width/2)
	y := 2 * (cell.Y + cell.Height/2)
	r, c := PointerToCell(x, y, bounds, rows, columns, size)
	if r != 1 || c != 2 {
		t.Errorf("PointerToCell(%v, %v) = (%d, %d), want (1, 2)", x, y, r, c)
	}
}

func TestBackingSize(t *testing.T) {
	tests := []struct {
		w, h, ratio  float64
		wantW, wantH int
	}{
		{32, 32, 1, 32, 32},
		{32, 32, 2, 64, 64},
		{22, 12, 1.5, 33, 18},
		{21, 21, 1.25, 27, 27},
		{10, 10, 0, 10, 10},
		{10, 10, -2, 10, 10},
		{10, 10, math.NaN(), 10, 10},
	}
	for _, tt := range tests {
		gw, gh := BackingSize(tt.w, tt.h, tt.ratio)
		if gw != tt.wantW || gh != tt.wantH {
			t.Errorf("BackingSize(%v, %v, %v) = (%d, %d), want (%d, %d)",
				tt.w, tt.h, tt.ratio, gw, gh, tt.wantW, tt.wantH)
		}
	}
}

func TestRectOps(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 10, Height: 10}

	if !r.Contains(10, 10) {
		t.Error("Contains(10, 10) = false, want true")
	}
	if r.Contains(20, 15) {
		t.Error("Contains(20, 15) = true, want false")
	}

	grown := r.Inset(-1)
	if want := (Rect{X: 9, Y: 9, Width: 12, Height: 12}); grown != want {
		t.Errorf("Inset(-1) = %+v, want %+v", grown, want)
	}

	clipped := grown.Intersect(Rect{Width: 15, Height: 100})
	if want := (Rect{X: 9, Y: 9, Width: 6, Height: 12}); clipped != want {
		t.Errorf("Intersect = %+v, want %+v", clipped, want)
	}

	if !r.Intersect(Rect{X: 50, Y: 50, Width: 1, Height: 1}).Empty() {
		t.Error("disjoint Intersect should be empty")
	}
}
