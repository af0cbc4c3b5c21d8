// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package ods

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/UNO-SOFT/sheetframe"
	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/zip"
)

type odsCell struct {
	Covered          bool
	Text, Type       string
	Style            string
	ColSpan, RowSpan string
}

// readTable returns the cells of the named table, row by row.
func readTable(t *testing.T, b []byte, name string) [][]odsCell {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) == 0 {
		t.Fatal("empty archive")
	}
	if fh := zr.File[0].FileHeader; fh.Name != "mimetype" || fh.Method != zip.Store {
		t.Fatalf("first entry: %+v", fh)
	}
	var content []byte
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("%s: %+v", f.Name, err)
		}
		switch f.Name {
		case "mimetype":
			if string(data) != mimeType {
				t.Errorf("mimetype=%q", data)
			}
		case "content.xml":
			content = data
		}
	}

	var rows [][]odsCell
	var inTable, inCell bool
	dec := xml.NewDecoder(bytes.NewReader(content))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			t.Fatalf("%+v\n%s", err, content)
		}
		switch x := tok.(type) {
		case xml.StartElement:
			switch x.Name.Local {
			case "table":
				inTable = attr(x, "name") == name
			case "table-row":
				if inTable {
					rows = append(rows, nil)
				}
			case "covered-table-cell":
				if inTable {
					rows[len(rows)-1] = append(rows[len(rows)-1], odsCell{Covered: true})
				}
			case "table-cell":
				if inTable {
					inCell = true
					rows[len(rows)-1] = append(rows[len(rows)-1], odsCell{
						Type:    attr(x, "value-type"),
						Style:   attr(x, "style-name"),
						ColSpan: attr(x, "number-columns-spanned"),
						RowSpan: attr(x, "number-rows-spanned"),
					})
				}
			}
		case xml.EndElement:
			switch x.Name.Local {
			case "table":
				inTable = false
			case "table-cell":
				inCell = false
			}
		case xml.CharData:
			if inCell {
				row := rows[len(rows)-1]
				row[len(row)-1].Text += string(x)
			}
		}
	}
	return rows
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func TestWriteFrame(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	sh, err := w.NewSheet("frame", nil)
	if err != nil {
		t.Fatal(err)
	}
	fr := &sheetframe.Frame{
		IndexName: "name",
		Index:     []any{"x"},
		Columns:   [][]any{{"A", "A", "B"}, {"a", "b", "c"}},
		Values:    [][]any{{1, 2.5, "<&>"}},
	}
	if _, err = sheetframe.WriteFrame(sh, fr, sheetframe.Cell{Row: 3, Col: 2}, sheetframe.WriteOptions{}); err != nil {
		t.Fatal(err)
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}

	rows := readTable(t, buf.Bytes(), "frame")
	if len(rows) != 3 {
		t.Fatalf("got %d rows", len(rows))
	}
	for i, row := range rows {
		if len(row) != 4 {
			t.Errorf("row %d: %d cells", i, len(row))
		}
	}
	want := [][]odsCell{
		{
			{Text: "name", Type: "string", ColSpan: "1", RowSpan: "2"},
			{Text: "A", Type: "string", ColSpan: "2", RowSpan: "1"},
			{Covered: true},
			{Text: "B", Type: "string"},
		},
		{
			{Covered: true},
			{Text: "a", Type: "string"},
			{Text: "b", Type: "string"},
			{Text: "c", Type: "string"},
		},
		{
			{Text: "x", Type: "string"},
			{Text: "1", Type: "float"},
			{Text: "2.5", Type: "float"},
			{Text: "<&>", Type: "string"},
		},
	}
	if d := cmp.Diff(want, rows); d != "" {
		t.Error(d)
	}
}

func TestStyles(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	sh, err := w.NewSheet("styled", []sheetframe.Column{
		{Name: "a", Header: sheetframe.Style{FontBold: true}},
		{Name: "b", Column: sheetframe.Style{Format: "0.00"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err = sh.AppendRow(sheetframe.Number("1.5"), 2); err != nil {
		t.Fatal(err)
	}
	r := sheetframe.Range{Start: sheetframe.Cell{Row: 2, Col: 1}, End: sheetframe.Cell{Row: 2, Col: 2}}
	if err = sh.SetStyle(r, sheetframe.Style{Border: sheetframe.BorderThin}); err != nil {
		t.Fatal(err)
	}
	if err = sh.SetStyle(r, sheetframe.Style{Named: "Fancy"}); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("got %v, wanted ErrUnknownStyle", err)
	}
	if err = sh.SetStyle(r, sheetframe.Style{Border: "wavy"}); !errors.Is(err, ErrUnknownBorder) {
		t.Errorf("got %v, wanted ErrUnknownBorder", err)
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}

	rows := readTable(t, buf.Bytes(), "styled")
	if d := cmp.Diff([][]odsCell{
		{{Text: "a", Type: "string", Style: "ce2"}, {Text: "b", Type: "string", Style: "ce1"}},
		{{Text: "1.5", Type: "float", Style: "ce3"}, {Text: "2", Type: "float", Style: "ce4"}},
	}, rows); d != "" {
		t.Error(d)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range zr.File {
		if f.Name != "content.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		s := string(b)
		for _, want := range []string{
			`<number:number-style style:name="N1"><number:number number:decimal-places="2" number:min-integer-digits="1"/></number:number-style>`,
			`<style:style style:name="ce2" style:family="table-cell"><style:table-cell-properties/><style:text-properties fo:font-weight="bold"/></style:style>`,
			`<style:style style:name="ce4" style:family="table-cell" style:data-style-name="N1"><style:table-cell-properties fo:border="0.74pt solid #000000"/></style:style>`,
			`<table:table-column/><table:table-column table:default-cell-style-name="ce1"/>`,
		} {
			if !strings.Contains(s, want) {
				t.Errorf("%s is missing from\n%s", want, s)
			}
		}
	}
}

func TestMerge(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	sh, err := w.NewSheet("m", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = w.NewSheet("m", nil); err == nil {
		t.Error("duplicate sheet name accepted")
	}
	a, err := sheetframe.ParseRange("A1:B2")
	if err != nil {
		t.Fatal(err)
	}
	b, err := sheetframe.ParseRange("B2:C3")
	if err != nil {
		t.Fatal(err)
	}
	if err = sh.Merge(a); err != nil {
		t.Fatal(err)
	}
	if err = sh.Merge(b); !errors.Is(err, ErrMergeOverlap) {
		t.Errorf("got %v, wanted ErrMergeOverlap", err)
	}
	if err = sh.Merge(sheetframe.SingleCell(sheetframe.Cell{Row: 5, Col: 5})); err != nil {
		t.Errorf("single cell: %+v", err)
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}
	if err = w.Close(); err != nil {
		t.Errorf("second close: %+v", err)
	}
	rows := readTable(t, buf.Bytes(), "m")
	if d := cmp.Diff([][]odsCell{
		{{ColSpan: "2", RowSpan: "2"}, {Covered: true}},
		{{Covered: true}, {Covered: true}},
	}, rows); d != "" {
		t.Error(d)
	}
}

func TestConvert(t *testing.T) {
	for _, tc := range []struct {
		in             any
		typ, val, text string
	}{
		{in: nil},
		{in: "s", typ: "string", text: "s"},
		{in: 3, typ: "float", val: "3", text: "3"},
		{in: int64(-4), typ: "float", val: "-4", text: "-4"},
		{in: 0.25, typ: "float", val: "0.25", text: "0.25"},
		{in: true, typ: "boolean", val: "true", text: "true"},
		{in: sheetframe.Number("1e3"), typ: "float", val: "1e3", text: "1e3"},
		{in: sheetframe.Number("x1"), typ: "string", text: "x1"},
	} {
		typ, val, text := convert(tc.in)
		if typ != tc.typ || val != tc.val || text != tc.text {
			t.Errorf("%#v: got (%q, %q, %q), wanted (%q, %q, %q)", tc.in, typ, val, text, tc.typ, tc.val, tc.text)
		}
	}
}

func TestParseNumberFormat(t *testing.T) {
	for format, want := range map[string]dataStyle{
		"0":       {},
		"0.00":    {Decimals: 2},
		"#,##0.0": {Decimals: 1, Grouping: true},
		"0.00%":   {Decimals: 2, Percent: true},
		"0%":      {Percent: true},
	} {
		got, ok := parseNumberFormat(format)
		if !ok {
			t.Errorf("%q: not parsed", format)
			continue
		}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("%q: %s", format, d)
		}
	}
	for _, format := range []string{"", "@", "General", "yyyy-mm-dd", "#"} {
		if _, ok := parseNumberFormat(format); ok {
			t.Errorf("%q parsed", format)
		}
	}
}
