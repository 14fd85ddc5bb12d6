// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the drawing targets a square grid renders onto.
//
// A Surface couples a Painter (the fill and stroke calls the renderer
// issues, all in nominal units) with the geometry a host needs to lay it out
// and route pointer events: its nominal size, its on-screen rectangle and
// the device pixel ratio it was created for.
//
// # Surface Types
//
//   - ImageSurface: CPU rendering into a gg.Context pixmap
//   - gridcanvas.Surface: gg.Context presented in a gogpu window
//     (package integration/gridcanvas)
//
// # HiDPI
//
// Surfaces are created from a nominal size and a device pixel ratio. The
// backing store is the nominal size times the ratio, rounded up, and the
// drawing transform is scaled by the ratio once at creation. The on-screen
// size reported by BoundingRect stays nominal.
//
// # Registry
//
// Backends are registered by name so hosts and tools can choose one at run
// time:
//
//	s, err := surface.NewByName("image", surface.Options{
//	    Width: 42, Height: 42, PixelRatio: 2,
//	})
package surface
