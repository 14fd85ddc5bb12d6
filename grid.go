package squaregrid

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/gogpu/squaregrid/geom"
	"github.com/gogpu/squaregrid/internal/cells"
	"github.com/gogpu/squaregrid/internal/render"
	"github.com/gogpu/squaregrid/surface"
)

// Grid is an interactive grid of colored square cells drawn on a surface.
//
// Grid is NOT safe for concurrent use. All calls, including the click
// callback, happen on the host's UI goroutine. The callback may call back
// into the grid; such calls take effect immediately.
type Grid struct {
	rows, columns int
	cellSize      int

	container Container
	surface   surface.Surface
	model     *cells.Model
	style     render.Style
	renderer  *render.Renderer
	log       *slog.Logger

	onClick    ClickFunc
	autoRedraw bool
	dirty      bool
	closed     bool
}

// New creates a grid, attaches its surface to container and paints it.
//
// The surface is sized columns*cellSize+2 by rows*cellSize+2 nominal units
// at the container's device pixel ratio. If any step fails nothing stays
// attached to the container.
func New(container Container, opts ...Option) (*Grid, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.rows < 1 || o.columns < 1 {
		return nil, fmt.Errorf("%w: rows=%d, columns=%d", ErrInvalidDimensions, o.rows, o.columns)
	}
	if container == nil {
		return nil, ErrMissingContainer
	}
	if o.cellSize < MinCellSize {
		return nil, fmt.Errorf("%w: requested %d, minimum %d", ErrCellSizeTooSmall, o.cellSize, MinCellSize)
	}
	if o.defaultColor == nil {
		return nil, fmt.Errorf("%w: default color", ErrNilColor)
	}

	log := o.logger
	if log == nil {
		log = Logger()
	}

	ratio := container.DevicePixelRatio()
	if norm := geom.NormalizeRatio(ratio); norm != ratio {
		log.Warn("squaregrid: unusable device pixel ratio, using 1", "ratio", ratio)
		ratio = norm
	}

	width, height := geom.SurfaceSize(o.rows, o.columns, o.cellSize)
	s, err := o.factory(surface.Options{Width: width, Height: height, PixelRatio: ratio})
	if err != nil {
		return nil, fmt.Errorf("squaregrid: create surface: %w", err)
	}

	g := &Grid{
		rows:       o.rows,
		columns:    o.columns,
		cellSize:   o.cellSize,
		container:  container,
		surface:    s,
		model:      cells.New(o.rows, o.columns, o.defaultColor),
		style:      render.Style{GridColor: o.gridColor, AlwaysDrawGrid: o.alwaysDrawGrid},
		log:        log,
		onClick:    o.onClick,
		autoRedraw: o.autoRedraw,
	}
	g.renderer = render.New(s, g.model, &g.style, g.cellSize)

	if err := g.renderer.RedrawAll(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("squaregrid: initial paint: %w", err)
	}
	if err := container.Attach(s, g.handleClick); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("squaregrid: attach surface: %w", err)
	}

	bw, bh := s.BackingSize()
	log.Info("squaregrid: created",
		"rows", g.rows, "columns", g.columns, "cellSize", g.cellSize,
		"pixelRatio", ratio, "backing", fmt.Sprintf("%dx%d", bw, bh))
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// CellSize returns the side of a cell in nominal units.
func (g *Grid) CellSize() int { return g.cellSize }

// Surface returns the surface the grid draws on.
func (g *Grid) Surface() surface.Surface { return g.surface }

// handleClick resolves a click to a cell and invokes the callback.
// Panics raised by the callback propagate to the host.
func (g *Grid) handleClick(ev ClickEvent) {
	if g.closed {
		return
	}
	rect := g.surface.BoundingRect()
	row, column := geom.PointerToCell(ev.ClientX-rect.X, ev.ClientY-rect.Y, rect, g.rows, g.columns, g.cellSize)
	g.log.Debug("squaregrid: click", "x", ev.ClientX, "y", ev.ClientY, "row", row, "column", column)
	if g.onClick != nil {
		g.onClick(row, column, ev)
	}
}

// SetOnClickCallback replaces the click callback. Nil removes it.
func (g *Grid) SetOnClickCallback(fn ClickFunc) {
	g.onClick = fn
}

// SetCellColor gives a cell an explicit color.
func (g *Grid) SetCellColor(row, column int, c color.Color) error {
	if g.closed {
		return ErrClosed
	}
	if err := g.model.Set(row, column, c); err != nil {
		return err
	}
	return g.changed("cell", func() error { return g.renderer.RedrawOne(row, column) })
}

// CellColor returns the color of a cell, or the default color if the cell
// has no explicit color.
func (g *Grid) CellColor(row, column int) (color.Color, error) {
	return g.model.Get(row, column)
}

// ClearCell removes a cell's explicit color.
func (g *Grid) ClearCell(row, column int) error {
	if g.closed {
		return ErrClosed
	}
	if err := g.model.Clear(row, column); err != nil {
		return err
	}
	return g.changed("region", func() error { return g.renderer.RedrawRegion(row, column) })
}

// ClearGrid removes every explicit color.
func (g *Grid) ClearGrid() error {
	if g.closed {
		return ErrClosed
	}
	g.model.ClearAll()
	return g.changed("full", g.renderer.RedrawAll)
}

// Redraw repaints the whole surface regardless of the auto-redraw setting.
func (g *Grid) Redraw() error {
	if g.closed {
		return ErrClosed
	}
	if err := g.renderer.RedrawAll(); err != nil {
		g.dirty = true
		return err
	}
	g.dirty = false
	return nil
}

// SetDefaultColor sets the fill for cells without an explicit color.
func (g *Grid) SetDefaultColor(c color.Color) error {
	if g.closed {
		return ErrClosed
	}
	if err := g.model.SetDefault(c); err != nil {
		return err
	}
	return g.changed("full", g.renderer.RedrawAll)
}

// DefaultColor returns the fill for cells without an explicit color.
func (g *Grid) DefaultColor() color.Color { return g.model.Default() }

// SetGridColor sets the border color. Nil disables borders.
func (g *Grid) SetGridColor(c color.Color) error {
	if g.closed {
		return ErrClosed
	}
	g.style.GridColor = c
	return g.changed("full", g.renderer.RedrawAll)
}

// GridColor returns the border color, or nil if borders are disabled.
func (g *Grid) GridColor() color.Color { return g.style.GridColor }

// SetAlwaysDrawGrid sets whether unset cells get borders too.
func (g *Grid) SetAlwaysDrawGrid(always bool) error {
	if g.closed {
		return ErrClosed
	}
	g.style.AlwaysDrawGrid = always
	return g.changed("full", g.renderer.RedrawAll)
}

// AlwaysDrawGrid reports whether unset cells get borders.
func (g *Grid) AlwaysDrawGrid() bool { return g.style.AlwaysDrawGrid }

// SetAutoRedraw sets whether mutations repaint immediately. Turning it back
// on does not repaint by itself; call Redraw to flush pending changes.
func (g *Grid) SetAutoRedraw(auto bool) {
	g.autoRedraw = auto
}

// AutoRedraw reports whether mutations repaint immediately.
func (g *Grid) AutoRedraw() bool { return g.autoRedraw }

// Dirty reports whether the surface is behind the grid state, because
// changes were made with auto-redraw off or a repaint failed. A successful
// Redraw clears it.
func (g *Grid) Dirty() bool { return g.dirty }

// Close detaches the surface from its container and releases it.
// Close is idempotent.
func (g *Grid) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	g.container.Detach(g.surface)
	g.log.Info("squaregrid: closed", "explicitCells", g.model.Explicit())
	return g.surface.Close()
}

// changed applies the redraw policy after a mutation.
func (g *Grid) changed(scope string, redraw func() error) error {
	if !g.autoRedraw {
		g.dirty = true
		g.log.Debug("squaregrid: redraw deferred", "scope", scope)
		return nil
	}
	g.log.Debug("squaregrid: redraw", "scope", scope)
	if err := redraw(); err != nil {
		// The model already changed; the surface may be partly painted.
		g.dirty = true
		return err
	}
	if scope == "full" {
		g.dirty = false
	}
	return nil
}
