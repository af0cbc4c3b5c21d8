// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package ods

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/UNO-SOFT/sheetframe"
)

var (
	ErrUnknownStyle  = errors.New("unknown style")
	ErrUnknownBorder = errors.New("unknown border style")
)

// document is rendered into content.xml.
type document struct {
	DataStyles []dataStyle
	Styles     []cellStyle
	Tables     []table
}

type dataStyle struct {
	Name     string
	Decimals int
	Grouping bool
	Percent  bool
}

type cellStyle struct {
	Name, DataStyle   string
	Border            string
	Background, Color string
	HAlign, VAlign    string
	Wrap, Bold        bool
}

type table struct {
	Name    string
	Columns []string
	Rows    []tableRow
}

type tableRow []tableCell

type tableCell struct {
	Covered          bool
	Style            string
	ColSpan, RowSpan int
	Type, Value      string
	Text             string
}

// fo:border values
var borders = map[sheetframe.BorderStyle]string{
	"none":                  "none",
	sheetframe.BorderHair:   "0.05pt solid #000000",
	sheetframe.BorderThin:   "0.74pt solid #000000",
	sheetframe.BorderMedium: "1.76pt solid #000000",
	sheetframe.BorderThick:  "2.49pt solid #000000",
	sheetframe.BorderDashed: "0.74pt dashed #000000",
	sheetframe.BorderDotted: "0.74pt dotted #000000",
	sheetframe.BorderDouble: "2.6pt double #000000",
}

var hAligns = map[string]string{
	"left": "start", "general": "", "center": "center", "centerContinuous": "center",
	"right": "end", "justify": "justify", "distributed": "justify", "fill": "start",
}

var vAligns = map[string]string{
	"top": "top", "center": "middle", "middle": "middle", "bottom": "bottom",
	"justify": "middle", "distributed": "middle",
}

type preset struct {
	Color, Background, Border, Format string
	Bold                              bool
}

// presets approximate the built-in cell styles of spreadsheet
// applications. Keys are lower case.
var presets = map[string]preset{
	"normal":       {},
	"good":         {Color: "#006100", Background: "#c6efce"},
	"bad":          {Color: "#9c0006", Background: "#ffc7ce"},
	"neutral":      {Color: "#9c5700", Background: "#ffeb9c"},
	"note":         {Background: "#ffffcc", Border: "0.74pt solid #b2b2b2"},
	"warning text": {Color: "#ff0000"},
	"title":        {Bold: true, Color: "#44546a"},
	"headline 1":   {Bold: true, Color: "#44546a"},
	"headline 2":   {Bold: true, Color: "#44546a"},
	"headline 3":   {Bold: true, Color: "#44546a"},
	"headline 4":   {Bold: true, Color: "#44546a"},
	"total":        {Bold: true},
	"input":        {Color: "#3f3f76", Background: "#ffcc99", Border: "0.74pt solid #7f7f7f"},
	"output":       {Bold: true, Color: "#3f3f3f", Background: "#f2f2f2", Border: "0.74pt solid #3f3f3f"},
	"calculation":  {Bold: true, Color: "#fa7d00", Background: "#f2f2f2", Border: "0.74pt solid #7f7f7f"},
	"percent":      {Format: "0%"},
	"comma":        {Format: "#,##0.00"},
	"comma [0]":    {Format: "#,##0"},
}

func presetOf(name string) (preset, bool) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

func checkStyle(st sheetframe.Style) error {
	if st.Named != "" {
		if _, ok := presetOf(st.Named); !ok {
			return fmt.Errorf("%q: %w", st.Named, ErrUnknownStyle)
		}
	}
	if st.Border != sheetframe.BorderNone {
		if _, ok := borders[st.Border]; !ok {
			return fmt.Errorf("%q: %w", st.Border, ErrUnknownBorder)
		}
	}
	return nil
}

// patch returns base overridden by the non-zero fields of st.
// The "normal" named style resets base.
func patch(base, st sheetframe.Style) sheetframe.Style {
	if st.Named != "" {
		if strings.EqualFold(strings.TrimSpace(st.Named), "normal") {
			base = sheetframe.Style{}
		} else {
			base.Named = st.Named
		}
	}
	if st.Format != "" {
		base.Format = st.Format
	}
	if st.Border != sheetframe.BorderNone {
		base.Border = st.Border
	}
	if st.Align.Horizontal != "" {
		base.Align.Horizontal = st.Align.Horizontal
	}
	if st.Align.Vertical != "" {
		base.Align.Vertical = st.Align.Vertical
	}
	base.Align.WrapText = base.Align.WrapText || st.Align.WrapText
	base.FontBold = base.FontBold || st.FontBold
	return base
}

// styleSet names the distinct styles of a document in order of appearance.
type styleSet struct {
	doc     *document
	names   map[sheetframe.Style]string
	formats map[string]string
}

func newStyleSet(d *document) *styleSet {
	return &styleSet{doc: d, names: make(map[sheetframe.Style]string), formats: make(map[string]string)}
}

func (ss *styleSet) name(st sheetframe.Style) string {
	if st.IsZero() {
		return ""
	}
	if nm, ok := ss.names[st]; ok {
		return nm
	}
	p, _ := presetOf(st.Named)
	cs := cellStyle{
		Name:       "ce" + strconv.Itoa(len(ss.doc.Styles)+1),
		Border:     p.Border,
		Background: p.Background,
		Color:      p.Color,
		Bold:       p.Bold || st.FontBold,
		HAlign:     hAligns[st.Align.Horizontal],
		VAlign:     vAligns[st.Align.Vertical],
		Wrap:       st.Align.WrapText,
	}
	if st.Border != sheetframe.BorderNone {
		cs.Border = borders[st.Border]
	}
	format := p.Format
	if st.Format != "" {
		format = st.Format
	}
	cs.DataStyle = ss.dataStyle(format)
	ss.doc.Styles = append(ss.doc.Styles, cs)
	ss.names[st] = cs.Name
	return cs.Name
}

func (ss *styleSet) dataStyle(format string) string {
	if nm, ok := ss.formats[format]; ok {
		return nm
	}
	ds, ok := parseNumberFormat(format)
	if !ok {
		return ""
	}
	ds.Name = "N" + strconv.Itoa(len(ss.doc.DataStyles)+1)
	ss.doc.DataStyles = append(ss.doc.DataStyles, ds)
	ss.formats[format] = ds.Name
	return ds.Name
}

// parseNumberFormat understands the plain numeric formats
// ("0", "0.00", "#,##0.0", "0.00%"). Others are displayed as General.
func parseNumberFormat(format string) (dataStyle, bool) {
	if format == "" || strings.Trim(format, "0#,.%") != "" || !strings.Contains(format, "0") {
		return dataStyle{}, false
	}
	ds := dataStyle{
		Percent:  strings.HasSuffix(format, "%"),
		Grouping: strings.Contains(format, ","),
	}
	if i := strings.IndexByte(format, '.'); i >= 0 {
		for _, r := range format[i+1:] {
			if r != '0' && r != '#' {
				break
			}
			ds.Decimals++
		}
	}
	return ds, true
}
