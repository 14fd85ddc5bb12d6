// Package cells holds the color state of a rectangular grid.
package cells

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	// ErrOutOfBounds is returned when a row or column lies outside the grid.
	ErrOutOfBounds = errors.New("squaregrid: cell out of bounds")

	// ErrNilColor is returned when a nil color is stored.
	ErrNilColor = errors.New("squaregrid: nil color")
)

// cell is a single grid entry. A cell without set falls back to the
// model's default color.
type cell struct {
	color color.Color
	set   bool
}

// Model is a rows x columns matrix of optional colors.
// The dimensions are fixed at creation.
type Model struct {
	rows, columns int
	cells         []cell // row-major
	def           color.Color
}

// New creates a model with every cell unset.
// rows and columns must be positive; def must not be nil.
func New(rows, columns int, def color.Color) *Model {
	return &Model{
		rows:    rows,
		columns: columns,
		cells:   make([]cell, rows*columns),
		def:     def,
	}
}

// Rows returns the number of rows.
func (m *Model) Rows() int { return m.rows }

// Columns returns the number of columns.
func (m *Model) Columns() int { return m.columns }

// Check returns an error wrapping ErrOutOfBounds unless (row, column) is
// inside the grid.
func (m *Model) Check(row, column int) error {
	if row < 0 || row >= m.rows {
		return fmt.Errorf("%w: row %d out of bounds [0, %d)", ErrOutOfBounds, row, m.rows)
	}
	if column < 0 || column >= m.columns {
		return fmt.Errorf("%w: column %d out of bounds [0, %d)", ErrOutOfBounds, column, m.columns)
	}
	return nil
}

// Get returns the color of a cell, or the default color if it is unset.
func (m *Model) Get(row, column int) (color.Color, error) {
	if err := m.Check(row, column); err != nil {
		return nil, err
	}
	c, _ := m.Lookup(row, column)
	return c, nil
}

// Lookup returns the resolved color of a cell and whether it was set
// explicitly. It does not check bounds.
func (m *Model) Lookup(row, column int) (color.Color, bool) {
	c := m.cells[row*m.columns+column]
	if !c.set {
		return m.def, false
	}
	return c.color, true
}

// Set stores an explicit color for a cell.
func (m *Model) Set(row, column int, c color.Color) error {
	if err := m.Check(row, column); err != nil {
		return err
	}
	if c == nil {
		return ErrNilColor
	}
	m.cells[row*m.columns+column] = cell{color: c, set: true}
	return nil
}

// Clear resets a cell to the default color.
func (m *Model) Clear(row, column int) error {
	if err := m.Check(row, column); err != nil {
		return err
	}
	m.cells[row*m.columns+column] = cell{}
	return nil
}

// ClearAll resets every cell.
func (m *Model) ClearAll() {
	for row := 0; row < m.rows; row++ {
		for column := 0; column < m.columns; column++ {
			m.cells[row*m.columns+column] = cell{}
		}
	}
}

// Default returns the fallback color for unset cells.
func (m *Model) Default() color.Color { return m.def }

// SetDefault replaces the fallback color.
func (m *Model) SetDefault(c color.Color) error {
	if c == nil {
		return ErrNilColor
	}
	m.def = c
	return nil
}

// Explicit returns the number of cells holding an explicit color.
func (m *Model) Explicit() int {
	n := 0
	for _, c := range m.cells {
		if c.set {
			n++
		}
	}
	return n
}
