// Copyright 2020, 2023 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/UNO-SOFT/sheetframe"
	"github.com/xuri/excelize/v2"
)

var (
	_ = (sheetframe.Writer)((*XLSXWriter)(nil))
	_ = (sheetframe.Sheet)((*XLSXSheet)(nil))
)

type XLSXWriter struct {
	w      io.Writer
	xl     *excelize.File
	styles *styleCache
	logger *slog.Logger
	sheets []string
	mu     sync.Mutex
}

type XLSXSheet struct {
	xl     *excelize.File
	styles *styleCache
	Name   string
	row    int64
	mu     sync.Mutex
}

// NewWriter returns a new sheetframe.Writer.
//
// This writer allows concurrent writes to separate sheets.
//
// This writer collects everything in memory, so big sheets may impose problems.
func NewWriter(w io.Writer) *XLSXWriter {
	return &XLSXWriter{w: w, xl: excelize.NewFile(), styles: newStyleCache()}
}

// WrapFile returns a writer over an already opened workbook.
// Close does not save the file, that's the caller's responsibility.
func WrapFile(f *excelize.File) *XLSXWriter {
	xlw := &XLSXWriter{xl: f, styles: newStyleCache()}
	xlw.sheets = f.GetSheetList()
	return xlw
}

// SetLogger sets the debug logger.
func (xlw *XLSXWriter) SetLogger(logger *slog.Logger) { xlw.logger = logger }

// File returns the underlying workbook.
func (xlw *XLSXWriter) File() *excelize.File { return xlw.xl }

func (xlw *XLSXWriter) Close() error {
	if xlw == nil {
		return nil
	}
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	xl, w := xlw.xl, xlw.w
	xlw.xl, xlw.w = nil, nil
	if xl == nil || w == nil {
		return nil
	}
	_, err := xl.WriteTo(w)
	return err
}

// NewSheet creates the named sheet and writes the column names into
// its first row, if any.
func (xlw *XLSXWriter) NewSheet(name string, columns []sheetframe.Column) (sheetframe.Sheet, error) {
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	xlw.sheets = append(xlw.sheets, name)
	if len(xlw.sheets) == 1 && xlw.w != nil { // first
		if err := xlw.xl.SetSheetName("Sheet1", name); err != nil {
			return nil, err
		}
	} else if _, err := xlw.xl.NewSheet(name); err != nil {
		return nil, err
	}
	if xlw.logger != nil {
		xlw.logger.Debug("new sheet", "name", name, "columns", len(columns))
	}
	xls := &XLSXSheet{xl: xlw.xl, styles: xlw.styles, Name: name}
	var hasHeader bool
	for i, c := range columns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if !c.Column.IsZero() {
			s, err := xlw.styles.get(xlw.xl, 0, c.Column)
			if err != nil {
				return nil, err
			}
			if err = xlw.xl.SetColStyle(name, col, s); err != nil {
				return nil, err
			}
		}
		if !c.Header.IsZero() {
			if err = xls.SetStyle(sheetframe.SingleCell(sheetframe.Cell{Row: 1, Col: i + 1}), c.Header); err != nil {
				return nil, err
			}
		}
		if c.Name != "" {
			hasHeader = true
			if err = xlw.xl.SetCellStr(name, col+"1", c.Name); err != nil {
				return nil, err
			}
		}
	}
	if hasHeader {
		xls.row++
	}
	return xls, nil
}

// Sheet returns an existing sheet of the workbook.
func (xlw *XLSXWriter) Sheet(name string) (*XLSXSheet, error) {
	xlw.mu.Lock()
	defer xlw.mu.Unlock()
	if idx, err := xlw.xl.GetSheetIndex(name); err != nil {
		return nil, err
	} else if idx < 0 {
		return nil, excelize.ErrSheetNotExist{SheetName: name}
	}
	rows, err := xlw.xl.GetRows(name)
	if err != nil {
		return nil, err
	}
	return &XLSXSheet{xl: xlw.xl, styles: xlw.styles, Name: name, row: int64(len(rows))}, nil
}

// MaxRowCount is the number of maximum rows.
const MaxRowCount = sheetframe.MaxRowCount

func (xls *XLSXSheet) Close() error { return nil }

// AppendRow writes the values into the row after the last written one.
func (xls *XLSXSheet) AppendRow(values ...any) error {
	xls.mu.Lock()
	defer xls.mu.Unlock()
	if xls.row >= MaxRowCount {
		return sheetframe.ErrTooManyRows
	}
	xls.row++
	for i, v := range values {
		axis, err := excelize.CoordinatesToCellName(i+1, int(xls.row))
		if err != nil {
			return fmt.Errorf("%d/%d: %w", i, int(xls.row), err)
		}
		if err = xls.setValue(axis, v); err != nil {
			return err
		}
	}
	return nil
}

// SetValue sets the value of one cell. Nil values are skipped.
func (xls *XLSXSheet) SetValue(c sheetframe.Cell, v any) error {
	axis, err := c.Name()
	if err != nil {
		return err
	}
	xls.mu.Lock()
	defer xls.mu.Unlock()
	if err = xls.setValue(axis, v); err != nil {
		return err
	}
	if int64(c.Row) > xls.row {
		xls.row = int64(c.Row)
	}
	return nil
}

// Merge the cells of the range.
func (xls *XLSXSheet) Merge(r sheetframe.Range) error {
	a, b, err := r.Names()
	if err != nil {
		return err
	}
	xls.mu.Lock()
	defer xls.mu.Unlock()
	if err = xls.xl.MergeCell(xls.Name, a, b); err != nil {
		return fmt.Errorf("%s[%s:%s]: %w", xls.Name, a, b, err)
	}
	return nil
}

// SetStyle patches the style of each cell of the range with st.
func (xls *XLSXSheet) SetStyle(r sheetframe.Range, st sheetframe.Style) error {
	xls.mu.Lock()
	defer xls.mu.Unlock()
	return xls.styles.apply(xls.xl, xls.Name, r, st)
}

func (xls *XLSXSheet) setValue(axis string, v any) error {
	isNil := v == nil
	if isNil {
		return nil
	}
	if vr, ok := v.(driver.Valuer); ok {
		if vv, err := vr.Value(); err == nil {
			v = vv
		}
	}
	var err error
	var printed bool
	switch x := v.(type) {
	case time.Time:
		if isNil = x.IsZero(); !isNil {
			err = xls.xl.SetCellStr(xls.Name, axis, x.Format("2006-01-02"))
			printed = true
		}
	case sql.NullTime:
		if x.Valid {
			t := x.Time
			if isNil = t.IsZero(); !isNil {
				err = xls.xl.SetCellStr(xls.Name, axis, t.Format("2006-01-02"))
				printed = true
			}
		} else {
			isNil = true
		}
	case sql.NullFloat64:
		if x.Valid {
			err = xls.xl.SetCellFloat(xls.Name, axis, x.Float64, -1, 64)
			printed = true
		} else {
			isNil = true
		}
	case sql.NullInt64:
		if x.Valid {
			err = xls.xl.SetCellInt(xls.Name, axis, x.Int64)
			printed = true
		} else {
			isNil = true
		}
	case sql.NullString:
		if x.Valid {
			v = x.String
		} else {
			v, isNil = "", true
		}
	case sheetframe.Number:
		if f, perr := strconv.ParseFloat(string(x), 64); perr == nil {
			err = xls.xl.SetCellFloat(xls.Name, axis, f, -1, 64)
		} else {
			err = xls.xl.SetCellStr(xls.Name, axis, string(x))
		}
		printed = true
	case fmt.Stringer:
		v = x.String()
	}
	if isNil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s[%s]: %w", xls.Name, axis, err)
	}
	if printed {
		return nil
	}
	if s, ok := v.(string); ok {
		err = xls.xl.SetCellStr(xls.Name, axis, s)
	} else {
		err = xls.xl.SetCellValue(xls.Name, axis, v)
	}
	if err != nil {
		return fmt.Errorf("%s[%s]: %w", xls.Name, axis, err)
	}
	return nil
}
