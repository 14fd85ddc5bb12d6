// Package render paints a cell model onto a surface.Painter.
//
// Every call works in nominal units; the painter's owner applies any device
// pixel ratio. Cells are drawn as a fill of their rectangle followed by an
// optional one unit border in the grid color.
package render

import (
	"fmt"
	"image/color"

	"github.com/gogpu/squaregrid/geom"
	"github.com/gogpu/squaregrid/internal/cells"
	"github.com/gogpu/squaregrid/surface"
)

// BorderWidth is the stroke width of cell borders in nominal units.
const BorderWidth = 1

// Style is the border policy shared between a grid and its renderer.
type Style struct {
	// GridColor is the border color. Nil disables borders entirely.
	GridColor color.Color

	// AlwaysDrawGrid draws borders on unset cells too.
	AlwaysDrawGrid bool
}

// Renderer draws a cells.Model.
// The style is read on every draw, so changes made by the owner apply to
// the next repaint.
type Renderer struct {
	p        surface.Painter
	model    *cells.Model
	style    *Style
	cellSize int
}

// New creates a renderer.
func New(p surface.Painter, model *cells.Model, style *Style, cellSize int) *Renderer {
	return &Renderer{p: p, model: model, style: style, cellSize: cellSize}
}

// bounds returns the full nominal surface rectangle.
func (r *Renderer) bounds() geom.Rect {
	w, h := geom.SurfaceSize(r.model.Rows(), r.model.Columns(), r.cellSize)
	return geom.Rect{Width: w, Height: h}
}

// FillBackground fills the whole surface with the default color.
func (r *Renderer) FillBackground() error {
	return r.fillRect(r.bounds(), r.model.Default())
}

// DrawCell fills a cell with its resolved color and strokes its border if
// the style calls for one.
func (r *Renderer) DrawCell(row, column int) error {
	c, explicit := r.model.Lookup(row, column)
	rect := geom.CellToRect(row, column, r.cellSize)
	if err := r.fillRect(rect, c); err != nil {
		return fmt.Errorf("render: fill cell (%d, %d): %w", row, column, err)
	}
	return r.strokeCell(row, column, rect, explicit)
}

// RedrawOne repaints a single cell.
func (r *Renderer) RedrawOne(row, column int) error {
	return r.DrawCell(row, column)
}

// RedrawAll repaints the background and then every cell in row-major
// order. Unset cells are not filled again since the background already
// holds the default color.
func (r *Renderer) RedrawAll() error {
	if err := r.FillBackground(); err != nil {
		return fmt.Errorf("render: fill background: %w", err)
	}
	for row := 0; row < r.model.Rows(); row++ {
		for column := 0; column < r.model.Columns(); column++ {
			if err := r.repaint(row, column); err != nil {
				return err
			}
		}
	}
	return nil
}

// RedrawRegion repaints the area a cell's border can reach: the cell grown
// by one border width, then the cell and its neighbours in row-major order.
// Use it after a cell loses its explicit color, when repainting the cell
// alone would leave the outer half of its old border on the neighbours.
func (r *Renderer) RedrawRegion(row, column int) error {
	area := geom.CellToRect(row, column, r.cellSize).Inset(-BorderWidth).Intersect(r.bounds())
	if err := r.fillRect(area, r.model.Default()); err != nil {
		return fmt.Errorf("render: fill region (%d, %d): %w", row, column, err)
	}

	r0, r1 := max(row-1, 0), min(row+1, r.model.Rows()-1)
	c0, c1 := max(column-1, 0), min(column+1, r.model.Columns()-1)
	for rr := r0; rr <= r1; rr++ {
		for cc := c0; cc <= c1; cc++ {
			if err := r.repaint(rr, cc); err != nil {
				return err
			}
		}
	}
	return nil
}

// repaint draws a cell over an area already filled with the default color.
func (r *Renderer) repaint(row, column int) error {
	c, explicit := r.model.Lookup(row, column)
	rect := geom.CellToRect(row, column, r.cellSize)
	if explicit {
		if err := r.fillRect(rect, c); err != nil {
			return fmt.Errorf("render: fill cell (%d, %d): %w", row, column, err)
		}
	}
	return r.strokeCell(row, column, rect, explicit)
}

func (r *Renderer) strokeCell(row, column int, rect geom.Rect, explicit bool) error {
	gc := r.style.GridColor
	if gc == nil || !(explicit || r.style.AlwaysDrawGrid) {
		return nil
	}
	r.p.SetColor(gc)
	r.p.SetLineWidth(BorderWidth)
	r.p.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
	if err := r.p.Stroke(); err != nil {
		return fmt.Errorf("render: stroke cell (%d, %d): %w", row, column, err)
	}
	return nil
}

func (r *Renderer) fillRect(rect geom.Rect, c color.Color) error {
	if rect.Empty() {
		return nil
	}
	r.p.SetColor(c)
	r.p.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
	return r.p.Fill()
}
