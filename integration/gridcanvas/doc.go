// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gridcanvas presents square grids in gogpu GPU-accelerated windows.
//
// A Surface draws the grid on the CPU through a ggcanvas.Canvas and marks
// the canvas dirty after every fill or stroke, so the next RenderTo uploads
// only what changed since the last frame. The data flow is:
//
//	squaregrid.Grid -> gg.Context (draw) -> Pixmap (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	g, err := squaregrid.New(container,
//	    squaregrid.WithSurfaceFactory(gridcanvas.Factory(app.GPUContextProvider())),
//	)
//	if err != nil {
//	    return err
//	}
//	defer g.Close()
//
//	// In the window's draw callback:
//	s := g.Surface().(*gridcanvas.Surface)
//	_ = s.RenderTo(dc)
//
// Register adds the canvas backend to the surface registry so that
// surface.New picks it over the CPU image backend.
//
// # Thread Safety
//
// Surface is NOT safe for concurrent use. Draw and render from the window's
// UI goroutine.
package gridcanvas
