// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/UNO-SOFT/sheetframe"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/width"
)

// The functions below operate on a workbook owned by the caller,
// who must serialize concurrent modifications of the same file.

// Open the workbook at path.
func Open(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	return f, nil
}

func hasSheet(f *excelize.File, sheet string) bool {
	idx, err := f.GetSheetIndex(sheet)
	return err == nil && idx >= 0
}

func sheetOf(f *excelize.File, sheet string) (*XLSXSheet, error) {
	if !hasSheet(f, sheet) {
		return nil, excelize.ErrSheetNotExist{SheetName: sheet}
	}
	return &XLSXSheet{xl: f, styles: newStyleCache(), Name: sheet}, nil
}

// DeleteSheet deletes the sheet, if exists.
func DeleteSheet(f *excelize.File, sheet string) error {
	if !hasSheet(f, sheet) {
		return nil
	}
	return f.DeleteSheet(sheet)
}

// replaceSheet creates an empty sheet in place of the named one.
func replaceSheet(f *excelize.File, sheet string) error {
	const tmp = "sheetframe~"
	if _, err := f.NewSheet(tmp); err != nil {
		return err
	}
	if err := DeleteSheet(f, sheet); err != nil {
		return err
	}
	return f.SetSheetName(tmp, sheet)
}

// ClearSheet removes every row, column (with its width, visibility and
// style) and merge of the sheet.
func ClearSheet(f *excelize.File, sheet string) error {
	merged, err := f.GetMergeCells(sheet)
	if err != nil {
		return err
	}
	for _, m := range merged {
		if err := f.UnmergeCell(sheet, m.GetStartAxis(), m.GetEndAxis()); err != nil {
			return err
		}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	lastCol, err := lastColumn(f, sheet)
	if err != nil {
		return err
	}
	for i := len(rows); i >= 1; i-- {
		if err := f.RemoveRow(sheet, i); err != nil {
			return fmt.Errorf("%s: remove row %d: %w", sheet, i, err)
		}
	}
	for j := lastCol; j >= 1; j-- {
		name, err := excelize.ColumnNumberToName(j)
		if err != nil {
			return err
		}
		if err := f.RemoveCol(sheet, name); err != nil {
			return fmt.Errorf("%s: remove column %s: %w", sheet, name, err)
		}
	}
	return nil
}

// lastColumn returns the last column holding a value or a column
// setting (width, visibility, style).
func lastColumn(f *excelize.File, sheet string) (int, error) {
	cols, err := f.GetCols(sheet)
	if err != nil {
		return 0, err
	}
	// the last column of the sheet is the unset reference
	dflt, err := f.GetColWidth(sheet, "XFD")
	if err != nil {
		return 0, err
	}
	for j := sheetframe.MaxColCount - 1; j > len(cols); j-- {
		name, err := excelize.ColumnNumberToName(j)
		if err != nil {
			return 0, err
		}
		w, err := f.GetColWidth(sheet, name)
		if err != nil {
			return 0, err
		}
		visible, err := f.GetColVisible(sheet, name)
		if err != nil {
			return 0, err
		}
		style, err := f.GetColStyle(sheet, name)
		if err != nil {
			return 0, err
		}
		if w != dflt || !visible || style != 0 {
			return j, nil
		}
	}
	return len(cols), nil
}

type commentSet map[string]struct{}

func comments(f *excelize.File, sheet string) (commentSet, error) {
	cms, err := f.GetComments(sheet)
	if err != nil {
		return nil, err
	}
	m := make(commentSet, len(cms))
	for _, c := range cms {
		m[c.Cell] = struct{}{}
	}
	return m, nil
}

// ClearCell clears the value, the style and the comment of the cell.
func ClearCell(f *excelize.File, sheet string, c sheetframe.Cell) error {
	cms, err := comments(f, sheet)
	if err != nil {
		return err
	}
	return clearCell(f, sheet, c, cms)
}

func clearCell(f *excelize.File, sheet string, c sheetframe.Cell, cms commentSet) error {
	axis, err := c.Name()
	if err != nil {
		return err
	}
	if err = f.SetCellValue(sheet, axis, nil); err != nil {
		return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
	}
	if err = f.SetCellStyle(sheet, axis, axis, 0); err != nil {
		return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
	}
	if _, ok := cms[axis]; ok {
		if err = f.DeleteComment(sheet, axis); err != nil {
			return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
		}
	}
	return nil
}

// ClearColumns clears every used cell of the columns first..last (1-based).
func ClearColumns(f *excelize.File, sheet string, first, last int) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}
	cms, err := comments(f, sheet)
	if err != nil {
		return err
	}
	r := sheetframe.Range{
		Start: sheetframe.Cell{Row: 1, Col: first},
		End:   sheetframe.Cell{Row: len(rows), Col: last},
	}
	for c := range r.Cells() {
		if err := clearCell(f, sheet, c, cms); err != nil {
			return err
		}
	}
	return nil
}

// SheetToFrame reads the used area of the sheet into a frame with
// 0, 1, 2... as index and column labels. Empty cells are nil.
func SheetToFrame(f *excelize.File, sheet string) (*sheetframe.Frame, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	var n int
	for _, row := range rows {
		n = max(n, len(row))
	}
	fr := sheetframe.Frame{
		Columns: [][]any{make([]any, n)},
		Values:  make([][]any, len(rows)),
	}
	for j := range n {
		fr.Columns[0][j] = j
	}
	for i, row := range rows {
		vals := make([]any, n)
		for j, s := range row {
			if s != "" {
				vals[j] = s
			}
		}
		fr.Values[i] = vals
	}
	return &fr, nil
}

// WriteFrame writes the frame into an existing sheet at anchor.
func WriteFrame(f *excelize.File, sheet string, fr *sheetframe.Frame, anchor sheetframe.Cell, opts sheetframe.WriteOptions) (sheetframe.Layout, error) {
	xls, err := sheetOf(f, sheet)
	if err != nil {
		return sheetframe.Layout{}, err
	}
	return sheetframe.WriteFrame(xls, fr, anchor, opts)
}

// WriteFrameAsSheet writes the frame into the workbook at path as the
// named sheet, replacing the previous version of the sheet.
// The workbook is created if it does not exist.
func WriteFrameAsSheet(path, sheet string, fr *sheetframe.Frame, withIndex bool) error {
	f, err := excelize.OpenFile(path)
	created := errors.Is(err, fs.ErrNotExist)
	if created {
		f = excelize.NewFile()
	} else if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	if created {
		err = f.SetSheetName(f.GetSheetName(0), sheet)
	} else {
		err = replaceSheet(f, sheet)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", sheet, err)
	}
	shape := fr.Shape()
	shape.NoIndex = !withIndex
	if _, err = WriteFrame(f, sheet, fr, sheetframe.AnchorFor(shape, sheetframe.Cell{Row: 1, Col: 1}),
		sheetframe.WriteOptions{NoIndex: !withIndex},
	); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// FindInRow returns the column of the first cell of the row whose
// value is label, or sheetframe.NotFound.
func FindInRow(f *excelize.File, sheet string, row int, label string) (int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return sheetframe.NotFound, err
	}
	if row < 1 || row > len(rows) {
		return sheetframe.NotFound, nil
	}
	return sheetframe.IndexOf(rows[row-1], label), nil
}

// FindInColumn returns the row of the first cell of the column whose
// value is label, or sheetframe.NotFound.
func FindInColumn(f *excelize.File, sheet string, col int, label string) (int, error) {
	cols, err := f.GetCols(sheet)
	if err != nil {
		return sheetframe.NotFound, err
	}
	if col < 1 || col > len(cols) {
		return sheetframe.NotFound, nil
	}
	return sheetframe.IndexOf(cols[col-1], label), nil
}

func applyStyle(f *excelize.File, sheet string, r sheetframe.Range, st sheetframe.Style) error {
	xls, err := sheetOf(f, sheet)
	if err != nil {
		return err
	}
	return xls.SetStyle(r, st)
}

// SetRangeBorder draws the border around every cell of the range.
func SetRangeBorder(f *excelize.File, sheet string, r sheetframe.Range, border sheetframe.BorderStyle) error {
	return applyStyle(f, sheet, r, sheetframe.Style{Border: border})
}

// SetRangeStyle applies a built-in named style (Good, Bad, Note, Total...)
// to the range.
func SetRangeStyle(f *excelize.File, sheet string, r sheetframe.Range, name string) error {
	return applyStyle(f, sheet, r, sheetframe.Style{Named: name})
}

// SetRangeAlignment sets the alignment of the range.
func SetRangeAlignment(f *excelize.File, sheet string, r sheetframe.Range, a sheetframe.Alignment) error {
	return applyStyle(f, sheet, r, sheetframe.Style{Align: a})
}

// SetRangeNumberFormat sets the number format ("0.00", "#,##0", "yyyy-mm-dd"...)
// of the range.
func SetRangeNumberFormat(f *excelize.File, sheet string, r sheetframe.Range, format string) error {
	return applyStyle(f, sheet, r, sheetframe.Style{Format: format})
}

// SetFrameBorders draws the DefaultFrameStyle borders around the
// parts of the frame written at anchor.
func SetFrameBorders(f *excelize.File, sheet string, fr *sheetframe.Frame, anchor sheetframe.Cell) error {
	l, err := sheetframe.ComputeLayout(fr.Shape(), anchor)
	if err != nil {
		return err
	}
	xls, err := sheetOf(f, sheet)
	if err != nil {
		return err
	}
	return sheetframe.FormatFrame(xls, l, sheetframe.DefaultFrameStyle)
}

func columnSpan(first, last int) (string, error) {
	a, err := excelize.ColumnNumberToName(first)
	if err != nil {
		return "", err
	}
	b, err := excelize.ColumnNumberToName(last)
	return a + ":" + b, err
}

// SetColumnWidth sets the width of the columns first..last.
func SetColumnWidth(f *excelize.File, sheet string, first, last int, w float64) error {
	a, err := excelize.ColumnNumberToName(first)
	if err != nil {
		return err
	}
	b, err := excelize.ColumnNumberToName(last)
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, a, b, w)
}

// SetColumnsVisible shows or hides the columns first..last.
func SetColumnsVisible(f *excelize.File, sheet string, first, last int, visible bool) error {
	span, err := columnSpan(first, last)
	if err != nil {
		return err
	}
	return f.SetColVisible(sheet, span, visible)
}

// SetSheetVisible shows or hides the sheet.
func SetSheetVisible(f *excelize.File, sheet string, visible bool) error {
	return f.SetSheetVisible(sheet, visible)
}

// MaxColumnWidth is the widest column a sheet can have, in characters.
const MaxColumnWidth = 255

// AutofitColumns sets the width of each column of first..last to its
// widest (displayed) value, at least minWidth.
func AutofitColumns(f *excelize.File, sheet string, first, last int, minWidth float64) error {
	cols, err := f.GetCols(sheet)
	if err != nil {
		return err
	}
	for col := first; col <= last; col++ {
		var n int
		if col <= len(cols) {
			for _, s := range cols[col-1] {
				n = max(n, DisplayWidth(s))
			}
		}
		w := min(MaxColumnWidth, max(minWidth, float64(n)*1.1+2))
		if err := SetColumnWidth(f, sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

// DisplayWidth is the width of the widest line of s, counting East Asian
// wide and fullwidth characters twice.
func DisplayWidth(s string) int {
	var widest int
	for _, line := range strings.Split(s, "\n") {
		var n int
		for _, r := range line {
			switch width.LookupRune(r).Kind() {
			case width.EastAsianWide, width.EastAsianFullwidth:
				n += 2
			default:
				n++
			}
		}
		widest = max(widest, n)
	}
	return widest
}
