// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetframe

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrameLookup(t *testing.T) {
	fr := &Frame{
		Index:   []any{"x", "y", "x"},
		Columns: [][]any{{"A", "A", "B"}, {1, 2, 1}},
		Values:  [][]any{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	}
	if err := fr.Validate(); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Shape{Rows: 3, Cols: 3, HeaderLevels: 2}, fr.Shape()); d != "" {
		t.Error(d)
	}
	if i := fr.IndexPos("x"); i != 1 {
		t.Errorf("x: %d", i)
	}
	if i := fr.IndexPos("z"); i != NotFound {
		t.Errorf("z: %d", i)
	}
	if j := fr.ColumnPos(0, "B"); j != 3 {
		t.Errorf("B: %d", j)
	}
	if j := fr.ColumnPos(1, 2); j != 2 {
		t.Errorf("2: %d", j)
	}
	if j := fr.ColumnPos(2, "A"); j != NotFound {
		t.Errorf("level 2: %d", j)
	}
	if d := cmp.Diff([]any{2, 5, 8}, fr.Column(1)); d != "" {
		t.Error(d)
	}
}

func TestFrameRangeIndex(t *testing.T) {
	fr := NewFrame([]any{"a"}, [][]any{{1}, {2}})
	if fr.IndexValue(1) != 1 {
		t.Errorf("index value %v", fr.IndexValue(1))
	}
	if i := fr.IndexPos(1); i != 2 {
		t.Errorf("IndexPos(1)=%d", i)
	}
	if i := fr.IndexPos(2); i != NotFound {
		t.Errorf("IndexPos(2)=%d", i)
	}
	if d := cmp.Diff([]any{nil}, (&Frame{Values: [][]any{{1}}}).Level(0)); d != "" {
		t.Error(d)
	}
}

func TestFrameValidate(t *testing.T) {
	for name, fr := range map[string]*Frame{
		"ragged":      {Columns: [][]any{{"a", "b"}}, Values: [][]any{{1, 2}, {3}}},
		"level width": {Columns: [][]any{{"a"}, {"a", "b"}}, Values: [][]any{{1, 2}}},
		"index":       {Index: []any{"x"}, Columns: [][]any{{"a"}}, Values: [][]any{{1}, {2}}},
		"label":       {Columns: [][]any{{[]int{1}}}, Values: [][]any{{1}}},
	} {
		if err := fr.Validate(); !errors.Is(err, ErrInvalidFrame) {
			t.Errorf("%s: got %v", name, err)
		}
	}
}
