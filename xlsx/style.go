// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/UNO-SOFT/sheetframe"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnknownStyle  = errors.New("unknown style")
	ErrUnknownBorder = errors.New("unknown border style")
)

// excelize border style indexes
var borderWeights = map[sheetframe.BorderStyle]int{
	"none":             0,
	"thin":             1,
	"medium":           2,
	"dashed":           3,
	"dotted":           4,
	"thick":            5,
	"double":           6,
	"hair":             7,
	"mediumDashed":     8,
	"dashDot":          9,
	"mediumDashDot":    10,
	"dashDotDot":       11,
	"mediumDashDotDot": 12,
	"slantDashDot":     13,
}

// built-in number formats that need no custom format
var builtinNumFmts = map[string]int{
	"General":  0,
	"0":        1,
	"0.00":     2,
	"#,##0":    3,
	"#,##0.00": 4,
	"0%":       9,
	"0.00%":    10,
	"0.00E+00": 11,
	"mm-dd-yy": 14,
	"d-mmm-yy": 15,
	"h:mm":     20,
	"@":        49,
}

func fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func box(weight int, color string) []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: color, Style: weight},
		{Type: "right", Color: color, Style: weight},
		{Type: "top", Color: color, Style: weight},
		{Type: "bottom", Color: color, Style: weight},
	}
}

// namedStyles approximate the built-in cell styles of spreadsheet
// applications. Keys are lower case.
var namedStyles = map[string]excelize.Style{
	"normal":       {},
	"good":         {Font: &excelize.Font{Color: "006100"}, Fill: fill("C6EFCE")},
	"bad":          {Font: &excelize.Font{Color: "9C0006"}, Fill: fill("FFC7CE")},
	"neutral":      {Font: &excelize.Font{Color: "9C5700"}, Fill: fill("FFEB9C")},
	"note":         {Fill: fill("FFFFCC"), Border: box(1, "B2B2B2")},
	"warning text": {Font: &excelize.Font{Color: "FF0000"}},
	"title":        {Font: &excelize.Font{Bold: true, Size: 18, Color: "44546A"}},
	"headline 1": {
		Font:   &excelize.Font{Bold: true, Size: 15, Color: "44546A"},
		Border: []excelize.Border{{Type: "bottom", Color: "4472C4", Style: 5}},
	},
	"headline 2": {
		Font:   &excelize.Font{Bold: true, Size: 13, Color: "44546A"},
		Border: []excelize.Border{{Type: "bottom", Color: "A2B8E1", Style: 5}},
	},
	"headline 3": {
		Font:   &excelize.Font{Bold: true, Size: 11, Color: "44546A"},
		Border: []excelize.Border{{Type: "bottom", Color: "8EA9DB", Style: 2}},
	},
	"headline 4": {Font: &excelize.Font{Bold: true, Size: 11, Color: "44546A"}},
	"total": {
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "top", Color: "4472C4", Style: 1},
			{Type: "bottom", Color: "4472C4", Style: 6},
		},
	},
	"input":        {Font: &excelize.Font{Color: "3F3F76"}, Fill: fill("FFCC99"), Border: box(1, "7F7F7F")},
	"output":       {Font: &excelize.Font{Bold: true, Color: "3F3F3F"}, Fill: fill("F2F2F2"), Border: box(1, "3F3F3F")},
	"calculation":  {Font: &excelize.Font{Bold: true, Color: "FA7D00"}, Fill: fill("F2F2F2"), Border: box(1, "7F7F7F")},
	"percent":      {NumFmt: 9},
	"comma":        {NumFmt: 43},
	"comma [0]":    {NumFmt: 41},
	"currency":     {NumFmt: 44},
	"currency [0]": {NumFmt: 42},
}

// NamedStyles returns the names of the known built-in styles.
func NamedStyles() []string {
	names := make([]string, 0, len(namedStyles))
	for k := range namedStyles {
		names = append(names, k)
	}
	return names
}

// patchStyle applies the non-zero fields of st to xs.
func patchStyle(xs *excelize.Style, st sheetframe.Style) error {
	if xs.Font != nil {
		font := *xs.Font
		xs.Font = &font
	}
	if xs.Alignment != nil {
		a := *xs.Alignment
		xs.Alignment = &a
	}
	if st.Named != "" {
		preset, ok := namedStyles[strings.ToLower(strings.TrimSpace(st.Named))]
		if !ok {
			return fmt.Errorf("%q: %w", st.Named, ErrUnknownStyle)
		}
		if strings.EqualFold(st.Named, "normal") {
			*xs = excelize.Style{}
		}
		if preset.Font != nil {
			font := *preset.Font
			xs.Font = &font
		}
		if preset.Fill.Type != "" {
			xs.Fill = preset.Fill
		}
		if len(preset.Border) != 0 {
			xs.Border = append([]excelize.Border(nil), preset.Border...)
		}
		if preset.NumFmt != 0 {
			xs.NumFmt, xs.CustomNumFmt, xs.DecimalPlaces = preset.NumFmt, nil, nil
		}
	}
	if st.Format != "" {
		if id, ok := builtinNumFmts[st.Format]; ok {
			xs.NumFmt, xs.CustomNumFmt = id, nil
		} else {
			format := st.Format
			xs.NumFmt, xs.CustomNumFmt = 0, &format
		}
		xs.DecimalPlaces = nil
	}
	if st.Border != sheetframe.BorderNone {
		w, ok := borderWeights[st.Border]
		if !ok {
			return fmt.Errorf("%q: %w", st.Border, ErrUnknownBorder)
		}
		if w == 0 {
			xs.Border = nil
		} else {
			xs.Border = box(w, "000000")
		}
	}
	if !st.Align.IsZero() {
		if xs.Alignment == nil {
			xs.Alignment = &excelize.Alignment{}
		}
		if st.Align.Horizontal != "" {
			xs.Alignment.Horizontal = st.Align.Horizontal
		}
		if st.Align.Vertical != "" {
			xs.Alignment.Vertical = st.Align.Vertical
		}
		if st.Align.WrapText {
			xs.Alignment.WrapText = true
		}
	}
	if st.FontBold {
		if xs.Font == nil {
			xs.Font = &excelize.Font{}
		}
		xs.Font.Bold = true
	}
	return nil
}

type styleKey struct {
	st   sheetframe.Style
	base int
}

// styleCache maps (existing style, patch) pairs to style indexes
// of one workbook.
type styleCache struct {
	ids map[styleKey]int
	mu  sync.Mutex
}

func newStyleCache() *styleCache { return &styleCache{ids: make(map[styleKey]int)} }

func (sc *styleCache) get(f *excelize.File, base int, st sheetframe.Style) (int, error) {
	k := styleKey{base: base, st: st}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if id, ok := sc.ids[k]; ok {
		return id, nil
	}
	var xs excelize.Style
	if base != 0 {
		p, err := f.GetStyle(base)
		if err != nil {
			return 0, fmt.Errorf("get style %d: %w", base, err)
		}
		xs = *p
	}
	if err := patchStyle(&xs, st); err != nil {
		return 0, err
	}
	id, err := f.NewStyle(&xs)
	if err != nil {
		return 0, err
	}
	sc.ids[k] = id
	return id, nil
}

// apply patches the style of every cell of r with st.
func (sc *styleCache) apply(f *excelize.File, sheet string, r sheetframe.Range, st sheetframe.Style) error {
	for c := range r.Cells() {
		axis, err := c.Name()
		if err != nil {
			return err
		}
		base, err := f.GetCellStyle(sheet, axis)
		if err != nil {
			return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
		}
		id, err := sc.get(f, base, st)
		if err != nil {
			return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
		}
		if id == base {
			continue
		}
		if err = f.SetCellStyle(sheet, axis, axis, id); err != nil {
			return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
		}
	}
	return nil
}
