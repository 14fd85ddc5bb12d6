// Command griddemo renders a square grid headlessly.
//
// It builds a grid on an offscreen surface, replays a list of clicks that
// toggle the clicked cells and writes the result as PNG:
//
//	griddemo -rows 3 -columns 3 -cell-size 10 -clicks "15,15 25,5" -output grid.png
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/squaregrid"
	"github.com/gogpu/squaregrid/surface"
)

func main() {
	var (
		rows         = flag.Int("rows", squaregrid.DefaultRows, "number of rows")
		columns      = flag.Int("columns", squaregrid.DefaultColumns, "number of columns")
		cellSize     = flag.Int("cell-size", squaregrid.DefaultCellSize, "cell side in logical units")
		ratio        = flag.Float64("ratio", 1, "device pixel ratio")
		defaultColor = flag.String("default-color", "white", "color of unset cells")
		gridColor    = flag.String("grid-color", "black", `border color, "none" disables borders`)
		fillColor    = flag.String("fill-color", "blue", "color given to clicked cells")
		alwaysGrid   = flag.Bool("always-grid", false, "draw borders on unset cells too")
		clicks       = flag.String("clicks", "", `clicks as "x,y" client points separated by spaces or semicolons`)
		backend      = flag.String("surface", "", "surface backend name (default: best available)")
		output       = flag.String("output", "grid.png", "output file")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		squaregrid.SetLogger(logger)
		gg.SetLogger(logger)
	}
	defer closeAccelerator()

	if err := run(config{
		rows:         *rows,
		columns:      *columns,
		cellSize:     *cellSize,
		ratio:        *ratio,
		defaultColor: *defaultColor,
		gridColor:    *gridColor,
		fillColor:    *fillColor,
		alwaysGrid:   *alwaysGrid,
		clicks:       *clicks,
		backend:      *backend,
		output:       *output,
	}); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	rows, columns, cellSize int
	ratio                   float64

	defaultColor, gridColor, fillColor string
	alwaysGrid                         bool

	clicks  string
	backend string
	output  string
}

func run(cfg config) error {
	def, err := parseRequiredColor("default-color", cfg.defaultColor)
	if err != nil {
		return err
	}
	fill, err := parseRequiredColor("fill-color", cfg.fillColor)
	if err != nil {
		return err
	}
	grid, err := squaregrid.ParseColor(cfg.gridColor)
	if err != nil {
		return fmt.Errorf("grid-color: %w", err)
	}
	points, err := parsePoints(cfg.clicks)
	if err != nil {
		return fmt.Errorf("clicks: %w", err)
	}

	factory := surface.New
	if cfg.backend != "" {
		factory = func(opts surface.Options) (surface.Surface, error) {
			return surface.NewByName(cfg.backend, opts)
		}
	}

	host := &headless{ratio: cfg.ratio}
	g, err := squaregrid.New(host,
		squaregrid.WithSize(cfg.rows, cfg.columns),
		squaregrid.WithCellSize(cfg.cellSize),
		squaregrid.WithDefaultColor(def),
		squaregrid.WithGridColor(grid),
		squaregrid.WithAlwaysDrawGrid(cfg.alwaysGrid),
		squaregrid.WithSurfaceFactory(factory),
	)
	if err != nil {
		return err
	}
	defer g.Close()

	g.SetOnClickCallback(toggle(g, fill))
	for _, p := range points {
		host.click(p[0], p[1])
	}

	if err := writePNG(cfg.output, g.Surface()); err != nil {
		return err
	}
	bw, bh := g.Surface().BackingSize()
	log.Printf("Grid saved to %s (%dx%d)\n", cfg.output, bw, bh)
	return nil
}

// toggle returns a click callback that fills unset cells and clears
// filled ones.
func toggle(g *squaregrid.Grid, fill color.Color) squaregrid.ClickFunc {
	return func(row, column int, _ squaregrid.ClickEvent) {
		cur, err := g.CellColor(row, column)
		if err != nil {
			log.Printf("cell (%d, %d): %v", row, column, err)
			return
		}
		if cur == fill {
			err = g.ClearCell(row, column)
		} else {
			err = g.SetCellColor(row, column, fill)
		}
		if err != nil {
			log.Printf("cell (%d, %d): %v", row, column, err)
		}
	}
}

func parseRequiredColor(name, s string) (color.Color, error) {
	c, err := squaregrid.ParseColor(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if c == nil {
		return nil, fmt.Errorf("%s: %w", name, squaregrid.ErrNilColor)
	}
	return c, nil
}

// parsePoints parses "x,y" pairs separated by spaces or semicolons.
func parsePoints(s string) ([][2]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ';' || r == '\t' || r == '\n'
	})
	points := make([][2]float64, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("point %q: want x,y", f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, err)
		}
		points = append(points, [2]float64{x, y})
	}
	return points, nil
}

func writePNG(path string, s surface.Surface) error {
	if err := s.Flush(); err != nil {
		return fmt.Errorf("flush surface: %w", err)
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Snapshot()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
