package main

import (
	"bytes"
	"slices"
	"testing"

	"github.com/UNO-SOFT/sheetframe"
	"github.com/google/go-cmp/cmp"
)

func quarters() *sheetframe.Frame {
	return &sheetframe.Frame{
		IndexName: "name",
		Index:     []any{"x", "y", "z"},
		Columns: [][]any{
			{"2023", "2023", "2024", "2024", "2024"},
			{"Q1", "Q2", "Q1", "Q2", "Q3"},
		},
		Values: [][]any{
			{1, 2, 3, 4, 5},
			{6, 7, 8, 9, 10},
			{sheetframe.Number("11.25"), nil, 13, 14, 15},
		},
	}
}

func TestRender(t *testing.T) {
	for name, opts := range map[string]pdfOptions{
		"default":   {},
		"landscape": {Landscape: true, PrintPageNum: true, FontSize: 10},
		"flat":      {Write: sheetframe.WriteOptions{NoMerge: true, NoIndex: true}},
	} {
		b, err := render(quarters(), opts)
		if err != nil {
			t.Fatalf("%s: %+v", name, err)
		}
		if !bytes.HasPrefix(b, []byte("%PDF")) {
			t.Errorf("%s: not a PDF: %q", name, b[:min(16, len(b))])
		}
	}

	if _, err := render(&sheetframe.Frame{Columns: [][]any{{"a"}}, Values: [][]any{{1, 2}}}, pdfOptions{}); err == nil {
		t.Error("invalid frame rendered")
	}
}

func TestGridSizes(t *testing.T) {
	fr := sheetframe.NewFrame([]any{"a", "bbbbbbbb"}, [][]any{{"cc", 1}})
	if d := cmp.Diff([]int{2, 6}, gridSizes(fr, false)); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]int{1, 1}, gridSizes(sheetframe.NewFrame([]any{nil, nil}, nil), false)); d != "" {
		t.Error(d)
	}
	if n := len(gridSizes(quarters(), true)); n != 6 {
		t.Errorf("got %d sizes", n)
	}
}

func TestHeaderRuns(t *testing.T) {
	fr := quarters()
	type span struct{ first, last int }
	spans := func(level int, parents []sheetframe.LabelRun[any], merge bool, opts sheetframe.WriteOptions) []span {
		var ss []span
		for r := range headerRuns(fr.Level(level), level, parents, merge, opts) {
			ss = append(ss, span{r.StartCol, r.EndCol})
		}
		return ss
	}
	if d := cmp.Diff([]span{{1, 2}, {3, 5}}, spans(0, nil, true, sheetframe.WriteOptions{}), cmp.AllowUnexported(span{})); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]span{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}}, spans(0, nil, false, sheetframe.WriteOptions{}), cmp.AllowUnexported(span{})); d != "" {
		t.Error(d)
	}

	fr.Columns[1] = []any{"Q", "Q", "Q", "Q", "R"}
	parents := slices.Collect(headerRuns(fr.Level(0), 0, nil, true, sheetframe.WriteOptions{}))
	if d := cmp.Diff([]span{{1, 4}, {5, 5}}, spans(1, parents, true, sheetframe.WriteOptions{}), cmp.AllowUnexported(span{})); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]span{{1, 2}, {3, 4}, {5, 5}}, spans(1, parents, true, sheetframe.WriteOptions{Nested: true}), cmp.AllowUnexported(span{})); d != "" {
		t.Error(d)
	}
}

func TestColor(t *testing.T) {
	var c Color
	if err := c.Set("#e6e6fa"); err != nil {
		t.Fatal(err)
	}
	if c.Red != 230 || c.Green != 230 || c.Blue != 250 {
		t.Errorf("got %+v", c.Color)
	}
	if s := c.String(); s != "e6e6fa" {
		t.Errorf("String=%q", s)
	}
	for _, s := range []string{"", "e6e6", "zzzzzz"} {
		if err := c.Set(s); err == nil {
			t.Errorf("%q accepted", s)
		}
	}
}
