// Package squaregrid provides an interactive grid of colored square cells.
//
// # Overview
//
// A Grid is a rows by columns board of square cells drawn on a surface that
// the grid attaches to a host Container. Each cell is either unset, and
// shown in the grid's default color, or carries an explicit color. Clicks on
// the surface are resolved to a cell and handed to a callback.
//
// # Quick Start
//
//	import "github.com/gogpu/squaregrid"
//
//	g, err := squaregrid.New(container,
//	    squaregrid.WithSize(3, 3),
//	    squaregrid.WithCellSize(10),
//	)
//	if err != nil {
//	    return err
//	}
//	defer g.Close()
//
//	g.SetOnClickCallback(func(row, column int, _ squaregrid.ClickEvent) {
//	    _ = g.SetCellColor(row, column, colornames.Blue)
//	})
//
// # Geometry
//
// Cell (row, column) covers the square with top-left corner
// (column*cellSize+1, row*cellSize+1) and side cellSize, in nominal units.
// The surface is columns*cellSize+2 by rows*cellSize+2 so the outermost
// borders fit. Row is the vertical index and column the horizontal one.
//
// On HiDPI displays the backing store is scaled by the container's device
// pixel ratio while the nominal size and all drawing coordinates stay the
// same.
//
// # Borders
//
// A cell is stroked with the grid color when it has an explicit color, or
// when AlwaysDrawGrid is enabled. A nil grid color disables borders.
//
// # Redrawing
//
// With auto-redraw on (the default) every mutation repaints what it changed.
// With auto-redraw off mutations only update state; call Redraw to repaint.
//
// # Surfaces
//
// Grids draw through the surface package. The default factory renders on
// the CPU into an image; integration/gridcanvas presents the same grid in a
// gogpu window.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package squaregrid

// Version is the current version of the library.
const Version = "0.1.0"
