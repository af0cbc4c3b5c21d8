// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetframe

import (
	"fmt"
	"reflect"
)

// Frame is an in-memory table: Values with an Index (row labels) and
// Columns (column labels, possibly on several levels).
type Frame struct {
	IndexName string
	// Index holds the row labels. Nil means 0, 1, 2...
	Index []any
	// Columns holds the header levels, outermost first.
	// Every level has one label per column.
	Columns [][]any
	// Values[row][col]
	Values [][]any
}

// NewFrame returns a frame with a flat header.
func NewFrame(columns []any, values [][]any) *Frame {
	return &Frame{Columns: [][]any{columns}, Values: values}
}

// NumRows is the number of data rows.
func (f *Frame) NumRows() int {
	if f.Index != nil {
		return len(f.Index)
	}
	return len(f.Values)
}

// NumCols is the number of data columns.
func (f *Frame) NumCols() int {
	if len(f.Columns) != 0 {
		return len(f.Columns[len(f.Columns)-1])
	}
	if len(f.Values) != 0 {
		return len(f.Values[0])
	}
	return 0
}

// HeaderLevels is the number of column label levels, at least 1.
func (f *Frame) HeaderLevels() int { return max(1, len(f.Columns)) }

// Shape of the frame.
func (f *Frame) Shape() Shape {
	return Shape{Rows: f.NumRows(), Cols: f.NumCols(), HeaderLevels: f.HeaderLevels()}
}

// Validate checks that every row and header level has NumCols elements
// and that the labels are comparable.
func (f *Frame) Validate() error {
	rows, cols := f.NumRows(), f.NumCols()
	if len(f.Values) != rows {
		return fmt.Errorf("%w: %d index labels for %d rows", ErrInvalidFrame, rows, len(f.Values))
	}
	for i, row := range f.Values {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d values, not %d", ErrInvalidFrame, i, len(row), cols)
		}
	}
	for level, labels := range f.Columns {
		if len(labels) != cols {
			return fmt.Errorf("%w: header level %d has %d labels, not %d", ErrInvalidFrame, level, len(labels), cols)
		}
		for j, v := range labels {
			if !isComparable(v) {
				return fmt.Errorf("%w: column label %d/%d is a %T", ErrInvalidFrame, level, j, v)
			}
		}
	}
	for i, v := range f.Index {
		if !isComparable(v) {
			return fmt.Errorf("%w: index label %d is a %T", ErrInvalidFrame, i, v)
		}
	}
	return nil
}

func isComparable(v any) bool { return v == nil || reflect.TypeOf(v).Comparable() }

// IndexValue returns the label of the i-th (0-based) row.
func (f *Frame) IndexValue(i int) any {
	if f.Index == nil {
		return i
	}
	return f.Index[i]
}

// Level returns the labels of one header level; nil labels for a frame
// without Columns.
func (f *Frame) Level(level int) []any {
	if level < len(f.Columns) {
		return f.Columns[level]
	}
	return make([]any, f.NumCols())
}

// Row returns the values of the i-th (0-based) row.
func (f *Frame) Row(i int) []any { return f.Values[i] }

// Column returns a copy of the values of the j-th (0-based) column.
func (f *Frame) Column(j int) []any {
	col := make([]any, len(f.Values))
	for i, row := range f.Values {
		col[i] = row[j]
	}
	return col
}

// IndexPos returns the 1-based position of the first row labeled with label,
// or NotFound.
func (f *Frame) IndexPos(label any) int {
	if f.Index == nil {
		if i, ok := label.(int); ok && 0 <= i && i < len(f.Values) {
			return i + 1
		}
		return NotFound
	}
	return IndexOf(f.Index, label)
}

// ColumnPos returns the 1-based position of the first column labeled with
// label on the given header level, or NotFound.
func (f *Frame) ColumnPos(level int, label any) int {
	if level < 0 || level >= len(f.Columns) {
		return NotFound
	}
	return IndexOf(f.Columns[level], label)
}
