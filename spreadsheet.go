// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package sheetframe places frames (values, an index and single- or
// multi-level column headers) onto spreadsheet sheets at an anchor cell.
//
// The layout computation is format neutral; the xlsx and ods subpackages
// provide the Writer, Sheet, Grid and Styler implementations.
package sheetframe

import (
	"errors"
	"io"
)

// Writer writes the spreadsheet consisting of the sheets created
// with NewSheet. The write finishes when Close is called.
//
// The writer SHOULD allow writing to separate sheets concurrently,
// and document if it does not provide this functionality.
type Writer interface {
	io.Closer
	NewSheet(name string, cols []Column) (Sheet, error)
}

// Sheet should be Closed when finished.
type Sheet interface {
	io.Closer
	Grid
	Styler
	AppendRow(values ...any) error
}

// Grid is a randomly addressable sheet.
type Grid interface {
	SetValue(c Cell, v any) error
	// Merge merges the cells of the range, keeping the top-left value.
	Merge(r Range) error
}

// Styler applies a Style to every cell of a range.
type Styler interface {
	SetStyle(r Range, st Style) error
}

// BorderStyle is the line style of a cell border: thin, medium, thick,
// dashed, dotted, double, hair...
type BorderStyle string

const (
	BorderNone   = BorderStyle("")
	BorderThin   = BorderStyle("thin")
	BorderMedium = BorderStyle("medium")
	BorderThick  = BorderStyle("thick")
	BorderDashed = BorderStyle("dashed")
	BorderDotted = BorderStyle("dotted")
	BorderDouble = BorderStyle("double")
	BorderHair   = BorderStyle("hair")
)

// Alignment of the cell content.
type Alignment struct {
	// Horizontal is left, center, right, fill, justify...
	Horizontal string
	// Vertical is top, center, bottom, justify...
	Vertical string
	WrapText bool
}

// IsZero reports whether no alignment is set.
func (a Alignment) IsZero() bool { return a == Alignment{} }

// Style is a style for a column/row/cell.
//
// When applied to an existing cell, the zero fields leave the cell's
// current settings intact.
type Style struct {
	// Named is a built-in style name (Good, Bad, Note, Total...), applied first.
	Named string
	// Format is the number format
	Format string
	// Border is drawn on all four sides.
	Border BorderStyle
	Align  Alignment
	// FontBold is true if the font is bold
	FontBold bool
}

// IsZero reports whether the style changes nothing.
func (st Style) IsZero() bool { return st == Style{} }

// Column contains the Name of the column and header's style and column's style.
type Column struct {
	Name           string
	Header, Column Style
}

var (
	ErrTooManyRows    = errors.New("too many rows")
	ErrTooManyColumns = errors.New("too many columns")
	ErrInvalidFrame   = errors.New("invalid frame")
)

const (
	// MaxRowCount is the number of maximum rows.
	MaxRowCount = 1_048_576
	// MaxColCount is the number of maximum columns.
	MaxColCount = 16_384
)

// Number is a string that contains a number.
type Number string
