package squaregrid

import (
	"image/color"
	"log/slog"

	"golang.org/x/image/colornames"

	"github.com/gogpu/squaregrid/surface"
)

// Construction defaults.
const (
	DefaultRows     = 50
	DefaultColumns  = 50
	DefaultCellSize = 20

	// MinCellSize is the smallest accepted cell size in nominal units.
	MinCellSize = 5
)

// Option configures a Grid during creation.
//
// Example:
//
//	g, err := squaregrid.New(container,
//	    squaregrid.WithSize(3, 3),
//	    squaregrid.WithCellSize(10),
//	    squaregrid.WithOnClick(func(row, column int, _ squaregrid.ClickEvent) {
//	        log.Printf("clicked %d,%d", row, column)
//	    }),
//	)
type Option func(*options)

// options holds the configuration collected from Options.
type options struct {
	rows, columns  int
	cellSize       int
	onClick        ClickFunc
	defaultColor   color.Color
	gridColor      color.Color
	alwaysDrawGrid bool
	autoRedraw     bool
	factory        surface.Factory
	logger         *slog.Logger
}

// defaultOptions returns the default grid options.
func defaultOptions() options {
	return options{
		rows:         DefaultRows,
		columns:      DefaultColumns,
		cellSize:     DefaultCellSize,
		defaultColor: colornames.White,
		gridColor:    colornames.Black,
		autoRedraw:   true,
		factory:      surface.NewImage,
	}
}

// WithSize sets the number of rows and columns. Both must be at least 1.
func WithSize(rows, columns int) Option {
	return func(o *options) {
		o.rows = rows
		o.columns = columns
	}
}

// WithCellSize sets the side of a cell in nominal units.
// It must be at least MinCellSize.
func WithCellSize(size int) Option {
	return func(o *options) {
		o.cellSize = size
	}
}

// WithOnClick registers the click callback.
func WithOnClick(fn ClickFunc) Option {
	return func(o *options) {
		o.onClick = fn
	}
}

// WithDefaultColor sets the fill for cells without an explicit color.
func WithDefaultColor(c color.Color) Option {
	return func(o *options) {
		o.defaultColor = c
	}
}

// WithGridColor sets the border color. Nil disables borders.
func WithGridColor(c color.Color) Option {
	return func(o *options) {
		o.gridColor = c
	}
}

// WithAlwaysDrawGrid draws borders on every cell, not only on cells with an
// explicit color.
func WithAlwaysDrawGrid(always bool) Option {
	return func(o *options) {
		o.alwaysDrawGrid = always
	}
}

// WithAutoRedraw sets whether mutations repaint immediately.
// Defaults to true.
func WithAutoRedraw(auto bool) Option {
	return func(o *options) {
		o.autoRedraw = auto
	}
}

// WithSurfaceFactory sets how the grid's surface is created.
// Defaults to surface.NewImage. Use gridcanvas.Factory to present the grid
// in a gogpu window.
func WithSurfaceFactory(f surface.Factory) Option {
	return func(o *options) {
		if f != nil {
			o.factory = f
		}
	}
}

// WithLogger sets a logger for this grid instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
