// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetframe

import (
	"fmt"
)

// Shape is the size of a frame to be placed on a sheet.
type Shape struct {
	Rows, Cols int
	// HeaderLevels is the number of stacked column label rows.
	// Zero means 1 (flat header).
	HeaderLevels int
	// NoIndex omits the index column.
	NoIndex bool
}

func (s Shape) levels() int {
	if s.HeaderLevels == 0 {
		return 1
	}
	return s.HeaderLevels
}

// Layout holds the ranges of a frame placed at Anchor.
//
// Index is the column left of Data, Columns is the header block right above
// Data (HeaderLevels rows high), IndexName is the index column's part of the
// header rows.
type Layout struct {
	Shape  Shape
	Anchor Cell

	Data, Index, Columns, IndexName Range
	// ColumnsMultiBegin is the top-left cell of the header block.
	ColumnsMultiBegin Cell
}

// HeaderLevels of the layout, at least 1.
func (l Layout) HeaderLevels() int { return l.Shape.levels() }

// HeaderRow returns the range of the given header level (0 is the outermost).
func (l Layout) HeaderRow(level int) Range {
	row := l.ColumnsMultiBegin.Row + level
	return Range{
		Start: Cell{Row: row, Col: l.Columns.Start.Col},
		End:   Cell{Row: row, Col: l.Columns.End.Col},
	}
}

// LayoutError is returned when the frame does not fit at the anchor.
type LayoutError struct {
	Err    error
	Reason string
	Shape  Shape
	Anchor Cell
}

func (e *LayoutError) Error() string {
	msg := fmt.Sprintf("layout %dx%d (levels=%d) at %s: %s",
		e.Shape.Rows, e.Shape.Cols, e.Shape.levels(), e.Anchor, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LayoutError) Unwrap() error { return e.Err }

// ComputeLayout returns the ranges of a frame of the given shape whose
// top-left data cell is anchor.
//
// An empty frame (Rows or Cols is 0) yields an empty Data range,
// which is not an error.
func ComputeLayout(shape Shape, anchor Cell) (Layout, error) {
	L := shape.levels()
	fail := func(reason string, err error) (Layout, error) {
		return Layout{}, &LayoutError{Shape: shape, Anchor: anchor, Reason: reason, Err: err}
	}
	switch {
	case shape.Rows < 0 || shape.Cols < 0:
		return fail("negative size", nil)
	case L < 0:
		return fail("negative header levels", nil)
	case !shape.NoIndex && anchor.Col < 2:
		return fail("no column left of the anchor for the index", nil)
	case anchor.Col < 1:
		return fail("column out of sheet", nil)
	case anchor.Row < L+1:
		return fail(fmt.Sprintf("%d header rows do not fit above the anchor", L), nil)
	case shape.Rows > MaxRowCount-anchor.Row+1:
		return fail("data below the last row", ErrTooManyRows)
	case shape.Cols > MaxColCount-anchor.Col+1:
		return fail("data right of the last column", ErrTooManyColumns)
	}

	r, c := anchor.Row, anchor.Col
	lastRow, lastCol := r+shape.Rows-1, c+shape.Cols-1
	l := Layout{
		Shape:             shape,
		Anchor:            anchor,
		Data:              Range{Start: anchor, End: Cell{Row: lastRow, Col: lastCol}},
		Columns:           Range{Start: Cell{Row: r - L, Col: c}, End: Cell{Row: r - 1, Col: lastCol}},
		ColumnsMultiBegin: Cell{Row: r - L, Col: c},
	}
	if !shape.NoIndex {
		l.Index = Range{Start: Cell{Row: r, Col: c - 1}, End: Cell{Row: lastRow, Col: c - 1}}
		l.IndexName = Range{Start: Cell{Row: r - L, Col: c - 1}, End: Cell{Row: r - 1, Col: c - 1}}
	}
	return l, nil
}

// AnchorFor returns the first anchor on a sheet where a frame of the
// given shape fits when its header (and index) starts at topLeft.
func AnchorFor(shape Shape, topLeft Cell) Cell {
	a := Cell{Row: topLeft.Row + shape.levels(), Col: topLeft.Col}
	if !shape.NoIndex {
		a.Col++
	}
	return a
}
