// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/squaregrid/geom"
)

// TestNewImageSurface tests surface creation at ratio 1.
func TestNewImageSurface(t *testing.T) {
	s := NewImageSurface(Options{Width: 32, Height: 22, PixelRatio: 1})
	defer s.Close()

	if w, h := s.Size(); w != 32 || h != 22 {
		t.Errorf("Size() = (%v, %v), want (32, 22)", w, h)
	}
	if w, h := s.BackingSize(); w != 32 || h != 22 {
		t.Errorf("BackingSize() = (%d, %d), want (32, 22)", w, h)
	}
	if s.PixelRatio() != 1 {
		t.Errorf("PixelRatio() = %v, want 1", s.PixelRatio())
	}
}

// TestImageSurfaceHiDPI tests that the backing store is scaled while the
// displayed size stays nominal.
func TestImageSurfaceHiDPI(t *testing.T) {
	s := NewImageSurface(Options{Width: 32, Height: 22, PixelRatio: 2})
	defer s.Close()

	if w, h := s.BackingSize(); w != 64 || h != 44 {
		t.Errorf("BackingSize() = (%d, %d), want (64, 44)", w, h)
	}
	r := s.BoundingRect()
	if r.Width != 32 || r.Height != 22 {
		t.Errorf("BoundingRect() size = %vx%v, want 32x22", r.Width, r.Height)
	}

	// A rectangle drawn in nominal units lands on doubled pixels.
	s.SetColor(color.RGBA{0, 0, 255, 255})
	s.DrawRectangle(10, 10, 5, 5)
	if err := s.Fill(); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	img := s.Snapshot()
	if c := img.RGBAAt(25, 25); c.B < 250 || c.R > 5 {
		t.Errorf("pixel (25, 25) = %v, want blue", c)
	}
	if c := img.RGBAAt(12, 12); c.B > 5 {
		t.Errorf("pixel (12, 12) = %v, want untouched", c)
	}
}

// TestImageSurfaceInvalidOptions tests clamping of size and ratio.
func TestImageSurfaceInvalidOptions(t *testing.T) {
	s := NewImageSurface(Options{Width: 0, Height: -3, PixelRatio: 0})
	defer s.Close()

	if w, h := s.BackingSize(); w != 1 || h != 1 {
		t.Errorf("BackingSize() = (%d, %d), want (1, 1)", w, h)
	}
	if s.PixelRatio() != 1 {
		t.Errorf("PixelRatio() = %v, want 1", s.PixelRatio())
	}
}

func TestImageSurfacePlace(t *testing.T) {
	s := NewImageSurface(Options{Width: 10, Height: 10})
	defer s.Close()

	s.Place(100, 40)
	want := geom.Rect{X: 100, Y: 40, Width: 10, Height: 10}
	if got := s.BoundingRect(); got != want {
		t.Errorf("BoundingRect() = %+v, want %+v", got, want)
	}
}

func TestImageSurfaceEncodePNG(t *testing.T) {
	s := NewImageSurface(Options{Width: 8, Height: 6, PixelRatio: 1.5})
	defer s.Close()

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Errorf("decoded size = %dx%d, want 12x9", b.Dx(), b.Dy())
	}
}

func TestImageSurfaceClose(t *testing.T) {
	s := NewImageSurface(Options{Width: 10, Height: 10})
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	s.DrawRectangle(0, 0, 5, 5)
	if err := s.Fill(); !errors.Is(err, ErrClosed) {
		t.Errorf("Fill after Close = %v, want ErrClosed", err)
	}
	if err := s.Stroke(); !errors.Is(err, ErrClosed) {
		t.Errorf("Stroke after Close = %v, want ErrClosed", err)
	}
}
