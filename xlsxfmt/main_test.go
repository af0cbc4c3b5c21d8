// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

const multiLevelCSV = `name,2023,2023,2024
,Q1,Q2,Q1
x,1,2,3
y,4,5,6
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := newApp(&buf).ParseAndRun(context.Background(), args)
	return buf.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("%q: %+v", args, err)
	}
	return out
}

// setup returns a workbook with the sheets Sheet1 and other,
// and the quarterly CSV.
func setup(t *testing.T) (book, csv string) {
	t.Helper()
	dir := t.TempDir()
	book, csv = filepath.Join(dir, "book.xlsx"), filepath.Join(dir, "quarters.csv")
	if err := os.WriteFile(csv, []byte(multiLevelCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("other"); err != nil {
		t.Fatal(err)
	}
	if err := f.SaveAs(book); err != nil {
		t.Fatal(err)
	}
	return book, csv
}

func open(t *testing.T, book string) *excelize.File {
	t.Helper()
	f, err := excelize.OpenFile(book)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func checkValues(t *testing.T, f *excelize.File, sheet string, want map[string]string) {
	t.Helper()
	for axis, w := range want {
		got, err := f.GetCellValue(sheet, axis)
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Errorf("%s!%s: got %q, wanted %q", sheet, axis, got, w)
		}
	}
}

func TestLayout(t *testing.T) {
	out := mustRun(t, "layout", "-rows=2", "-cols=5", "-header-levels=2", "C4")
	for _, want := range []string{"C4:G5", "B4:B5", "C2:G3", "B2:B3", "C2:G2", "C3:G3", "multi begin"} {
		if !strings.Contains(out, want) {
			t.Errorf("%s is missing from\n%s", want, out)
		}
	}

	out = mustRun(t, "layout", "-rows=0", "-cols=3", "-no-index", "A2")
	if strings.Contains(out, "multi begin") {
		t.Errorf("flat header printed as multi-level:\n%s", out)
	}
	if !strings.Contains(out, "A1:C1") {
		t.Errorf("header is missing:\n%s", out)
	}

	if _, err := run(t, "layout", "-rows=1", "-cols=1", "A1"); err == nil {
		t.Error("index left of column A accepted")
	}
}

func TestWrite(t *testing.T) {
	book, csv := setup(t)
	mustRun(t, "write", "-header-levels=2", "-index", "-anchor=C4", "-borders", book, "Sheet1", csv)

	f := open(t, book)
	checkValues(t, f, "Sheet1", map[string]string{
		"B2": "name", "C2": "2023", "E2": "2024",
		"C3": "Q1", "D3": "Q2", "E3": "Q1",
		"B4": "x", "C4": "1", "E5": "6",
	})
	mcs, err := f.GetMergeCells("Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	merged := make([]string, 0, len(mcs))
	for _, m := range mcs {
		merged = append(merged, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	slices.Sort(merged)
	if d := cmp.Diff([]string{"B2:B3", "C2:D2"}, merged); d != "" {
		t.Error(d)
	}
	id, err := f.GetCellStyle("Sheet1", "D5")
	if err != nil {
		t.Fatal(err)
	}
	st, err := f.GetStyle(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Border) != 4 {
		t.Errorf("borders: %+v", st.Border)
	}

	if _, err = run(t, "write", "-anchor=C1", "-header-levels=2", book, "Sheet1", csv); err == nil {
		t.Error("header above the first row accepted")
	}
	if _, err = run(t, "write", book, "Sheet1"); !errors.Is(err, errArgs) {
		t.Errorf("got %v, wanted errArgs", err)
	}
	if _, err = run(t, "write", book, "nosuch", csv); err == nil {
		t.Error("missing sheet accepted")
	}
}

func TestFormat(t *testing.T) {
	book, csv := setup(t)
	mustRun(t, "write", "-header-levels=2", "-index", "-anchor=C4", book, "Sheet1", csv)
	mustRun(t, "numfmt", book, "Sheet1", "C4:E5", "0.00")
	mustRun(t, "align", "-h=center", book, "Sheet1", "C4")
	mustRun(t, "border", "-style=thick", book, "Sheet1", "C4:C5")
	mustRun(t, "style", book, "Sheet1", "E5", "Good")
	mustRun(t, "width", book, "Sheet1", "B:C", "20")
	mustRun(t, "autofit", "-min=30", book, "Sheet1", "E")
	mustRun(t, "hide", book, "Sheet1", "D")
	mustRun(t, "hide", book, "other")

	f := open(t, book)
	style := func(axis string) *excelize.Style {
		t.Helper()
		id, err := f.GetCellStyle("Sheet1", axis)
		if err != nil {
			t.Fatal(err)
		}
		st, err := f.GetStyle(id)
		if err != nil {
			t.Fatal(err)
		}
		return st
	}
	st := style("C4")
	if st.NumFmt != 2 {
		t.Errorf("C4 number format: %d", st.NumFmt)
	}
	if st.Alignment == nil || st.Alignment.Horizontal != "center" {
		t.Errorf("C4 alignment: %+v", st.Alignment)
	}
	if len(st.Border) != 4 || st.Border[0].Style != 5 {
		t.Errorf("C4 borders: %+v", st.Border)
	}
	if st = style("D5"); st.NumFmt != 2 || len(st.Border) != 0 {
		t.Errorf("D5: %+v", st)
	}
	if st = style("E5"); len(st.Fill.Color) == 0 || !strings.HasSuffix(strings.ToUpper(st.Fill.Color[0]), "C6EFCE") {
		t.Errorf("E5 fill: %+v", st.Fill)
	}

	for col, want := range map[string]float64{"B": 20, "C": 20, "E": 30} {
		if w, err := f.GetColWidth("Sheet1", col); err != nil {
			t.Fatal(err)
		} else if w != want {
			t.Errorf("%s width: got %v, wanted %v", col, w, want)
		}
	}
	if visible, err := f.GetColVisible("Sheet1", "D"); err != nil || visible {
		t.Errorf("D visible=%t (%v)", visible, err)
	}
	if visible, err := f.GetSheetVisible("other"); err != nil || visible {
		t.Errorf("other visible=%t (%v)", visible, err)
	}

	if _, err := run(t, "align", book, "Sheet1", "C4"); err == nil {
		t.Error("align without alignment accepted")
	}
	if _, err := run(t, "border", "-style=wavy", book, "Sheet1", "C4"); err == nil {
		t.Error("unknown border accepted")
	}
	if _, err := run(t, "width", book, "Sheet1", "B", "wide"); err == nil {
		t.Error("bad width accepted")
	}
}

func TestFindAndDump(t *testing.T) {
	book, csv := setup(t)
	mustRun(t, "write", "-header-levels=2", "-index", "-anchor=C4", book, "Sheet1", csv)
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"-row=3", book, "Sheet1", "Q2"}, "4"},
		{[]string{"-col=B", book, "Sheet1", "y"}, "5"},
		{[]string{"-col=2", book, "Sheet1", "name"}, "2"},
		{[]string{"-row=3", book, "Sheet1", "Q9"}, "0"},
		{[]string{"-row=99", book, "Sheet1", "Q1"}, "0"},
	} {
		if got := strings.TrimSpace(mustRun(t, append([]string{"find"}, tc.args...)...)); got != tc.want {
			t.Errorf("%q: got %q, wanted %q", tc.args, got, tc.want)
		}
	}
	if _, err := run(t, "find", book, "Sheet1", "x"); err == nil {
		t.Error("find without -row and -col accepted")
	}

	out := mustRun(t, "dump", book, "Sheet1")
	for _, want := range []string{"name", "2024", "Q2", " E "} {
		if !strings.Contains(out, want) {
			t.Errorf("%q is missing from\n%s", want, out)
		}
	}
}

func TestClear(t *testing.T) {
	book, csv := setup(t)
	mustRun(t, "write", "-header-levels=2", "-index", "-anchor=C4", book, "Sheet1", csv)
	mustRun(t, "clear", book, "Sheet1", "C4:D4")
	mustRun(t, "clear", book, "Sheet1", "B:B")
	f := open(t, book)
	checkValues(t, f, "Sheet1", map[string]string{
		"C4": "", "D4": "", "E4": "3", "C5": "4",
		"B2": "", "B4": "", "C2": "2023",
	})
	f.Close()

	mustRun(t, "clear", book, "Sheet1")
	f = open(t, book)
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("rows left: %q", rows)
	}
	if mcs, _ := f.GetMergeCells("Sheet1"); len(mcs) != 0 {
		t.Errorf("merges left: %v", mcs)
	}
}

func TestReplaceAndDelete(t *testing.T) {
	dir := t.TempDir()
	book, csv := filepath.Join(dir, "new.xlsx"), filepath.Join(dir, "kv.csv")
	if err := os.WriteFile(csv, []byte("k,v\nx,1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	mustRun(t, "replace", book, "data", csv)
	mustRun(t, "replace", "-index", book, "other", csv)
	mustRun(t, "replace", book, "data", csv)

	f := open(t, book)
	if d := cmp.Diff([]string{"other", "data"}, f.GetSheetList()); d != "" {
		t.Error(d)
	}
	checkValues(t, f, "data", map[string]string{"A1": "k", "B1": "v", "A2": "x", "B2": "1"})
	checkValues(t, f, "other", map[string]string{"A1": "k", "B1": "v", "A2": "x", "B2": "1"})
	f.Close()

	mustRun(t, "delete", book, "data")
	mustRun(t, "delete", book, "nosuch")
	f = open(t, book)
	if d := cmp.Diff([]string{"other"}, f.GetSheetList()); d != "" {
		t.Error(d)
	}
}
