// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetframe

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// NotFound is the coordinate returned by label searches without a match.
// Coordinates are 1-based, so it never names a real row or column.
const NotFound = 0

// Cell is a 1-based (row, column) coordinate.
type Cell struct {
	Row, Col int
}

// Valid reports whether the cell is on a sheet.
func (c Cell) Valid() bool {
	return 1 <= c.Row && c.Row <= MaxRowCount && 1 <= c.Col && c.Col <= MaxColCount
}

// Name returns the A1-style name of the cell.
func (c Cell) Name() (string, error) {
	return excelize.CoordinatesToCellName(c.Col, c.Row)
}

func (c Cell) String() string {
	if s, err := c.Name(); err == nil {
		return s
	}
	return fmt.Sprintf("R%dC%d", c.Row, c.Col)
}

// Offset returns the cell moved by dr rows and dc columns.
func (c Cell) Offset(dr, dc int) Cell { return Cell{Row: c.Row + dr, Col: c.Col + dc} }

// ParseCell parses an A1-style cell name.
func ParseCell(s string) (Cell, error) {
	col, row, err := excelize.CellNameToCoordinates(strings.TrimSpace(s))
	if err != nil {
		return Cell{}, err
	}
	return Cell{Row: row, Col: col}, nil
}

// Range is an inclusive rectangular block of cells.
type Range struct {
	Start, End Cell
}

// SingleCell returns the range of the one cell.
func SingleCell(c Cell) Range { return Range{Start: c, End: c} }

// ParseRange parses "C5:D7" or a single cell name "C5".
func ParseRange(s string) (Range, error) {
	a, b, ok := strings.Cut(s, ":")
	start, err := ParseCell(a)
	if err != nil {
		return Range{}, fmt.Errorf("%q: %w", s, err)
	}
	if !ok {
		return SingleCell(start), nil
	}
	end, err := ParseCell(b)
	if err != nil {
		return Range{}, fmt.Errorf("%q: %w", s, err)
	}
	if end.Row < start.Row {
		start.Row, end.Row = end.Row, start.Row
	}
	if end.Col < start.Col {
		start.Col, end.Col = end.Col, start.Col
	}
	return Range{Start: start, End: end}, nil
}

// ParseColumns parses a column span: "B", "B:D" or "2:4".
func ParseColumns(s string) (first, last int, err error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		b = a
	}
	if first, err = parseColumn(a); err != nil {
		return 0, 0, err
	}
	if last, err = parseColumn(b); err != nil {
		return 0, 0, err
	}
	if last < first {
		first, last = last, first
	}
	return first, last, nil
}

func parseColumn(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > MaxColCount {
			return 0, fmt.Errorf("column %d: %w", n, ErrTooManyColumns)
		}
		return n, nil
	}
	return excelize.ColumnNameToNumber(s)
}

// Empty reports whether the range holds no cell: End precedes Start on
// either axis, or Start is not a sheet coordinate.
func (r Range) Empty() bool {
	return r.Start.Row < 1 || r.Start.Col < 1 ||
		r.End.Row < r.Start.Row || r.End.Col < r.Start.Col
}

// Rows is the height of the range.
func (r Range) Rows() int {
	if r.Empty() {
		return 0
	}
	return r.End.Row - r.Start.Row + 1
}

// Cols is the width of the range.
func (r Range) Cols() int {
	if r.Empty() {
		return 0
	}
	return r.End.Col - r.Start.Col + 1
}

// Contains reports whether c is inside the range.
func (r Range) Contains(c Cell) bool {
	return !r.Empty() &&
		r.Start.Row <= c.Row && c.Row <= r.End.Row &&
		r.Start.Col <= c.Col && c.Col <= r.End.Col
}

// Overlaps reports whether the two ranges share a cell.
func (r Range) Overlaps(o Range) bool {
	return !r.Empty() && !o.Empty() &&
		r.Start.Row <= o.End.Row && o.Start.Row <= r.End.Row &&
		r.Start.Col <= o.End.Col && o.Start.Col <= r.End.Col
}

// Names returns the A1 names of the top-left and bottom-right cells.
func (r Range) Names() (string, string, error) {
	a, err := r.Start.Name()
	if err != nil {
		return "", "", err
	}
	b, err := r.End.Name()
	return a, b, err
}

func (r Range) String() string {
	if r.Empty() {
		return "(" + r.Start.String() + ":" + r.End.String() + " empty)"
	}
	if r.Start == r.End {
		return r.Start.String()
	}
	return r.Start.String() + ":" + r.End.String()
}

// Cells yields the cells of the range in row-major order.
func (r Range) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if r.Empty() {
			return
		}
		for row := r.Start.Row; row <= r.End.Row; row++ {
			for col := r.Start.Col; col <= r.End.Col; col++ {
				if !yield(Cell{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// Enumerate yields the 0-based offset inside the range with each cell,
// in row-major order.
func (r Range) Enumerate() iter.Seq2[Cell, Cell] {
	return func(yield func(Cell, Cell) bool) {
		for c := range r.Cells() {
			if !yield(Cell{Row: c.Row - r.Start.Row, Col: c.Col - r.Start.Col}, c) {
				return
			}
		}
	}
}
