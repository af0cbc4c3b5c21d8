// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package ods writes OpenDocument spreadsheets.
package ods

//go:generate qtc -file=content.qtpl

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/UNO-SOFT/sheetframe"
	"github.com/klauspost/compress/zip"
)

const mimeType = "application/vnd.oasis.opendocument.spreadsheet"

var (
	_ = (sheetframe.Writer)((*ODSWriter)(nil))
	_ = (sheetframe.Sheet)((*ODSSheet)(nil))

	ErrMergeOverlap = errors.New("merged ranges overlap")
)

type ODSWriter struct {
	w      io.Writer
	logger *slog.Logger
	sheets []*ODSSheet
	mu     sync.Mutex
}

// NewWriter returns a writer producing an .ods file into w on Close.
//
// Sheets can be written concurrently, and are kept in memory until Close.
func NewWriter(w io.Writer) (*ODSWriter, error) {
	if w == nil {
		return nil, errors.New("nil writer")
	}
	return &ODSWriter{w: w}, nil
}

// SetLogger sets the debug logger.
func (ow *ODSWriter) SetLogger(logger *slog.Logger) { ow.logger = logger }

func (ow *ODSWriter) NewSheet(name string, columns []sheetframe.Column) (sheetframe.Sheet, error) {
	ow.mu.Lock()
	defer ow.mu.Unlock()
	if ow.w == nil {
		return nil, errors.New("writer is closed")
	}
	for _, s := range ow.sheets {
		if s.Name == name {
			return nil, fmt.Errorf("sheet %q already exists", name)
		}
	}
	s := &ODSSheet{Name: name, cells: make(map[sheetframe.Cell]value)}
	var hasHeader bool
	for i, c := range columns {
		if !c.Column.IsZero() {
			if err := checkStyle(c.Column); err != nil {
				return nil, err
			}
			for len(s.colStyles) <= i {
				s.colStyles = append(s.colStyles, sheetframe.Style{})
			}
			s.colStyles[i] = c.Column
		}
		at := sheetframe.Cell{Row: 1, Col: i + 1}
		if c.Name != "" {
			hasHeader = true
			s.cells[at] = stringValue(c.Name)
		}
		if !c.Header.IsZero() {
			if err := s.SetStyle(sheetframe.SingleCell(at), c.Header); err != nil {
				return nil, err
			}
		}
	}
	if hasHeader {
		s.row = 1
	}
	if ow.logger != nil {
		ow.logger.Debug("new sheet", "name", name, "columns", len(columns))
	}
	ow.sheets = append(ow.sheets, s)
	return s, nil
}

// Close renders the sheets and writes the document.
func (ow *ODSWriter) Close() error {
	if ow == nil {
		return nil
	}
	ow.mu.Lock()
	defer ow.mu.Unlock()
	w := ow.w
	ow.w = nil
	if w == nil {
		return nil
	}

	var d document
	ss := newStyleSet(&d)
	for _, s := range ow.sheets {
		d.Tables = append(d.Tables, s.table(ss))
	}

	zw := zip.NewWriter(w)
	// The mimetype must be the first, uncompressed entry.
	fw, err := zw.CreateRaw(&zip.FileHeader{
		Name:               "mimetype",
		Method:             zip.Store,
		CRC32:              crc32.ChecksumIEEE([]byte(mimeType)),
		CompressedSize64:   uint64(len(mimeType)),
		UncompressedSize64: uint64(len(mimeType)),
	})
	if err != nil {
		return err
	}
	if _, err = io.WriteString(fw, mimeType); err != nil {
		return err
	}
	if fw, err = zw.Create("META-INF/manifest.xml"); err != nil {
		return err
	}
	writemanifest(fw)
	if fw, err = zw.Create("content.xml"); err != nil {
		return err
	}
	writecontent(fw, &d)
	return zw.Close()
}

type ODSSheet struct {
	Name      string
	cells     map[sheetframe.Cell]value
	colStyles []sheetframe.Style
	merges    []sheetframe.Range
	row       int
	mu        sync.Mutex
}

type value struct {
	typ, val, text string
	style          sheetframe.Style
}

func stringValue(s string) value { return value{typ: "string", text: s} }

func (s *ODSSheet) Close() error { return nil }

// AppendRow writes the values into the row after the last written one.
func (s *ODSSheet) AppendRow(values ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.row >= sheetframe.MaxRowCount {
		return sheetframe.ErrTooManyRows
	}
	if len(values) > sheetframe.MaxColCount {
		return sheetframe.ErrTooManyColumns
	}
	s.row++
	for i, v := range values {
		s.set(sheetframe.Cell{Row: s.row, Col: i + 1}, v)
	}
	return nil
}

// SetValue sets the value of one cell. Nil values are skipped.
func (s *ODSSheet) SetValue(c sheetframe.Cell, v any) error {
	if !c.Valid() {
		return fmt.Errorf("%s: invalid cell", c)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(c, v)
	s.row = max(s.row, c.Row)
	return nil
}

func (s *ODSSheet) set(c sheetframe.Cell, v any) {
	typ, val, text := convert(v)
	if typ == "" {
		return
	}
	old := s.cells[c]
	s.cells[c] = value{typ: typ, val: val, text: text, style: old.style}
}

// Merge the cells of the range.
func (s *ODSSheet) Merge(r sheetframe.Range) error {
	if r.Empty() || !r.Start.Valid() || !r.End.Valid() {
		return fmt.Errorf("%s: invalid range", r)
	}
	if r.Rows() == 1 && r.Cols() == 1 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.merges {
		if m.Overlaps(r) {
			return fmt.Errorf("%s[%s]: %s: %w", s.Name, r, m, ErrMergeOverlap)
		}
	}
	s.merges = append(s.merges, r)
	return nil
}

// SetStyle patches the style of each cell of the range with st.
func (s *ODSSheet) SetStyle(r sheetframe.Range, st sheetframe.Style) error {
	if err := checkStyle(st); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range r.Cells() {
		v := s.cells[c]
		v.style = patch(v.style, st)
		s.cells[c] = v
	}
	return nil
}

func (s *ODSSheet) extent() (rows, cols int) {
	cols = len(s.colStyles)
	for c := range s.cells {
		rows, cols = max(rows, c.Row), max(cols, c.Col)
	}
	for _, m := range s.merges {
		rows, cols = max(rows, m.End.Row), max(cols, m.End.Col)
	}
	return rows, cols
}

func (s *ODSSheet) table(ss *styleSet) table {
	s.mu.Lock()
	defer s.mu.Unlock()
	spans := make(map[sheetframe.Cell]sheetframe.Range, len(s.merges))
	covered := make(map[sheetframe.Cell]struct{})
	for _, m := range s.merges {
		spans[m.Start] = m
		for c := range m.Cells() {
			if c != m.Start {
				covered[c] = struct{}{}
			}
		}
	}

	rows, cols := s.extent()
	t := table{Name: s.Name, Columns: make([]string, cols), Rows: make([]tableRow, rows)}
	for j, st := range s.colStyles {
		t.Columns[j] = ss.name(st)
	}
	for i := range rows {
		row := make(tableRow, cols)
		for j := range cols {
			c := sheetframe.Cell{Row: i + 1, Col: j + 1}
			if _, ok := covered[c]; ok {
				row[j].Covered = true
				continue
			}
			if m, ok := spans[c]; ok {
				row[j].RowSpan, row[j].ColSpan = m.Rows(), m.Cols()
			}
			v := s.cells[c]
			st := v.style
			if j < len(s.colStyles) {
				st = patch(s.colStyles[j], st)
			}
			row[j].Style = ss.name(st)
			row[j].Type, row[j].Value, row[j].Text = v.typ, v.val, v.text
		}
		t.Rows[i] = row
	}
	return t
}

// convert returns the OpenDocument value type, the value attribute and
// the displayed text of v. The type is empty for nil values.
func convert(v any) (typ, val, text string) {
	if v == nil {
		return "", "", ""
	}
	if vr, ok := v.(driver.Valuer); ok {
		if vv, err := vr.Value(); err == nil {
			v = vv
		}
	}
	switch x := v.(type) {
	case nil:
		return "", "", ""
	case string:
		return "string", "", x
	case sheetframe.Number:
		if _, err := strconv.ParseFloat(string(x), 64); err != nil {
			return "string", "", string(x)
		}
		return "float", string(x), string(x)
	case bool:
		s := strconv.FormatBool(x)
		return "boolean", s, s
	case time.Time:
		if x.IsZero() {
			return "", "", ""
		}
		return "date", x.Format("2006-01-02T15:04:05"), x.Format("2006-01-02")
	case sql.NullTime:
		if !x.Valid {
			return "", "", ""
		}
		return convert(x.Time)
	case sql.NullString:
		if !x.Valid {
			return "", "", ""
		}
		return "string", "", x.String
	case sql.NullInt64:
		if !x.Valid {
			return "", "", ""
		}
		return convert(x.Int64)
	case sql.NullFloat64:
		if !x.Valid {
			return "", "", ""
		}
		return convert(x.Float64)
	case int:
		return number(strconv.FormatInt(int64(x), 10))
	case int8:
		return number(strconv.FormatInt(int64(x), 10))
	case int16:
		return number(strconv.FormatInt(int64(x), 10))
	case int32:
		return number(strconv.FormatInt(int64(x), 10))
	case int64:
		return number(strconv.FormatInt(x, 10))
	case uint:
		return number(strconv.FormatUint(uint64(x), 10))
	case uint8:
		return number(strconv.FormatUint(uint64(x), 10))
	case uint16:
		return number(strconv.FormatUint(uint64(x), 10))
	case uint32:
		return number(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return number(strconv.FormatUint(x, 10))
	case float32:
		return number(strconv.FormatFloat(float64(x), 'f', -1, 32))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return "", "", ""
		}
		return number(strconv.FormatFloat(x, 'f', -1, 64))
	case fmt.Stringer:
		return "string", "", x.String()
	default:
		return "string", "", fmt.Sprint(v)
	}
}

func number(s string) (string, string, string) { return "float", s, s }
