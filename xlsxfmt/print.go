// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/xuri/excelize/v2"

	"github.com/UNO-SOFT/sheetframe"
)

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// printLayout prints the parts of the layout, one per line.
func printLayout(w io.Writer, l sheetframe.Layout) error {
	table := newTable(w)
	table.SetHeader([]string{"part", "range", "rows", "cols"})
	add := func(part string, r sheetframe.Range) {
		s := "-"
		if !r.Empty() {
			s = r.String()
		}
		table.Append([]string{part, s, strconv.Itoa(r.Rows()), strconv.Itoa(r.Cols())})
	}
	add("data", l.Data)
	add("index", l.Index)
	add("columns", l.Columns)
	add("index name", l.IndexName)
	if L := l.HeaderLevels(); L > 1 {
		for level := range L {
			add(fmt.Sprintf("header %d", level+1), l.HeaderRow(level))
		}
		table.Append([]string{"multi begin", l.ColumnsMultiBegin.String(), "", ""})
	}
	table.Render()
	return nil
}

// printSheet prints a dumped sheet with column letters and row numbers.
func printSheet(w io.Writer, fr *sheetframe.Frame) error {
	header := make([]string, fr.NumCols()+1)
	for j := range fr.NumCols() {
		name, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		header[j+1] = name
	}
	table := newTable(w)
	table.SetHeader(header)
	for i := range fr.NumRows() {
		line := make([]string, 0, len(header))
		line = append(line, strconv.Itoa(i+1))
		for _, v := range fr.Row(i) {
			if v == nil {
				line = append(line, "")
			} else {
				line = append(line, fmt.Sprint(v))
			}
		}
		table.Append(line)
	}
	table.Render()
	return nil
}
