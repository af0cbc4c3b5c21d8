// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetframe

import (
	"fmt"
	"log/slog"
	"slices"
)

// WriteOptions configures WriteFrame.
type WriteOptions struct {
	Logger *slog.Logger
	// Runs decides which header labels are equal.
	// A nil Runs.IsMissing means IsMissingLabel.
	Runs RunOptions[any]
	// Nested splits header runs at the boundaries of the level above.
	Nested bool
	// NoMerge disables merging of repeated header labels.
	NoMerge bool
	// NoIndex omits the index column.
	NoIndex bool
}

// WriteFrame writes the frame's values, index, index name and column
// labels to g, the top-left data cell being anchor.
//
// With more than one header level, adjacent equal labels of each level
// are merged; the index name spans all header rows.
func WriteFrame(g Grid, fr *Frame, anchor Cell, opts WriteOptions) (Layout, error) {
	if err := fr.Validate(); err != nil {
		return Layout{}, err
	}
	shape := fr.Shape()
	shape.NoIndex = opts.NoIndex
	l, err := ComputeLayout(shape, anchor)
	if err != nil {
		return l, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	set := func(c Cell, v any) error {
		if err := g.SetValue(c, v); err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		return nil
	}
	merge := func(r Range) error {
		logger.Debug("merge", "range", r.String())
		if err := g.Merge(r); err != nil {
			return fmt.Errorf("merge %s: %w", r, err)
		}
		return nil
	}

	for off, c := range l.Data.Enumerate() {
		if err := set(c, fr.Values[off.Row][off.Col]); err != nil {
			return l, err
		}
	}

	if !shape.NoIndex {
		for off, c := range l.Index.Enumerate() {
			if err := set(c, fr.IndexValue(off.Row)); err != nil {
				return l, err
			}
		}
		if fr.IndexName != "" {
			if err := set(l.IndexName.Start, fr.IndexName); err != nil {
				return l, err
			}
		}
		if l.IndexName.Rows() > 1 && !opts.NoMerge {
			if err := merge(l.IndexName); err != nil {
				return l, err
			}
		}
	}

	ro := opts.Runs
	if ro.IsMissing == nil {
		ro.IsMissing = IsMissingLabel
	}
	levels := l.HeaderLevels()
	var parents []LabelRun[any]
	for level := range levels {
		labels := fr.Level(level)
		hdr := l.HeaderRow(level)
		for off, c := range hdr.Enumerate() {
			if err := set(c, labels[off.Col]); err != nil {
				return l, err
			}
		}
		if levels == 1 || opts.NoMerge || hdr.Empty() {
			continue
		}
		runs := FindLabelRuns(labels, hdr.Start.Row, hdr.Start.Col, ro)
		if opts.Nested {
			if level > 0 {
				runs = NestRuns(runs, parents)
			}
			parents = slices.Collect(runs)
			runs = slices.Values(parents)
		}
		for r := range MergeRanges(runs) {
			if err := merge(r); err != nil {
				return l, err
			}
		}
	}
	logger.Debug("frame written", "anchor", anchor.String(), "data", l.Data.String(),
		"index", l.Index.String(), "columns", l.Columns.String())
	return l, nil
}

// FrameStyle holds the styles of the parts of a written frame.
type FrameStyle struct {
	Data, Index, IndexName, Columns Style
}

// DefaultFrameStyle draws thin borders around the data cells and thick
// ones around the index, the index name and the column labels.
var DefaultFrameStyle = FrameStyle{
	Data:      Style{Border: BorderThin},
	Index:     Style{Border: BorderThick},
	IndexName: Style{Border: BorderThick},
	Columns:   Style{Border: BorderThick},
}

// FormatFrame applies fs to the ranges of l.
func FormatFrame(s Styler, l Layout, fs FrameStyle) error {
	for _, part := range []struct {
		name string
		rng  Range
		st   Style
	}{
		{"data", l.Data, fs.Data},
		{"index", l.Index, fs.Index},
		{"index name", l.IndexName, fs.IndexName},
		{"columns", l.Columns, fs.Columns},
	} {
		if part.rng.Empty() || part.st.IsZero() {
			continue
		}
		if err := s.SetStyle(part.rng, part.st); err != nil {
			return fmt.Errorf("%s %s: %w", part.name, part.rng, err)
		}
	}
	return nil
}
