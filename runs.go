// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package sheetframe

import (
	"iter"
	"math"
)

// LabelRun is a maximal span of adjacent columns in one header row
// sharing the same label.
type LabelRun[T any] struct {
	Value            T
	Row              int
	StartCol, EndCol int
}

// Len is the number of columns in the run.
func (r LabelRun[T]) Len() int { return r.EndCol - r.StartCol + 1 }

// Range of the run's cells.
func (r LabelRun[T]) Range() Range {
	return Range{Start: Cell{Row: r.Row, Col: r.StartCol}, End: Cell{Row: r.Row, Col: r.EndCol}}
}

// MissingPolicy decides whether adjacent missing labels form one run.
type MissingPolicy uint8

const (
	// MissingMerge treats missing labels as equal to each other,
	// so adjacent missing labels are merged.
	MissingMerge MissingPolicy = iota
	// MissingSplit never puts two missing labels into the same run.
	MissingSplit
)

func (p MissingPolicy) String() string {
	if p == MissingSplit {
		return "split"
	}
	return "merge"
}

// ParseMissingPolicy parses "merge" or "split".
func ParseMissingPolicy(s string) (MissingPolicy, bool) {
	switch s {
	case "", "merge":
		return MissingMerge, true
	case "split":
		return MissingSplit, true
	}
	return MissingMerge, false
}

// RunOptions configures label run detection.
type RunOptions[T any] struct {
	// IsMissing reports a missing label. Nil means the zero value of T.
	IsMissing func(T) bool
	Missing   MissingPolicy
}

func (o RunOptions[T]) equal(a, b T) bool {
	isMissing := o.IsMissing
	if isMissing == nil {
		isMissing = isZero[T]
	}
	ma, mb := isMissing(a), isMissing(b)
	if ma || mb {
		return ma && mb && o.Missing == MissingMerge
	}
	return any(a) == any(b)
}

func isZero[T any](v T) bool {
	var zero T
	return any(v) == any(zero)
}

// IsMissingLabel reports whether an untyped label is missing: nil or NaN.
func IsMissingLabel(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

// FindLabelRuns yields the maximal runs of equal adjacent values,
// left to right, the first value being at column startCol of row.
// Runs of length 1 are yielded, too.
func FindLabelRuns[T comparable](values []T, row, startCol int, opts RunOptions[T]) iter.Seq[LabelRun[T]] {
	return func(yield func(LabelRun[T]) bool) {
		if len(values) == 0 {
			return
		}
		run := LabelRun[T]{Value: values[0], Row: row, StartCol: startCol, EndCol: startCol}
		for i, v := range values[1:] {
			col := startCol + 1 + i
			if opts.equal(run.Value, v) {
				run.EndCol = col
				continue
			}
			if !yield(run) {
				return
			}
			run = LabelRun[T]{Value: v, Row: row, StartCol: col, EndCol: col}
		}
		yield(run)
	}
}

// MergeRanges yields the range of each run that spans at least two columns.
func MergeRanges[T any](runs iter.Seq[LabelRun[T]]) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for r := range runs {
			if r.EndCol > r.StartCol && !yield(r.Range()) {
				return
			}
		}
	}
}

// NestRuns splits the runs at the column boundaries of the parent runs,
// so a label under two different parents is never one run.
func NestRuns[T, P any](runs iter.Seq[LabelRun[T]], parents []LabelRun[P]) iter.Seq[LabelRun[T]] {
	return func(yield func(LabelRun[T]) bool) {
		for r := range runs {
			for _, p := range parents {
				if p.EndCol < r.StartCol || r.EndCol < p.StartCol {
					continue
				}
				part := r
				part.StartCol, part.EndCol = max(r.StartCol, p.StartCol), min(r.EndCol, p.EndCol)
				if !yield(part) {
					return
				}
			}
		}
	}
}

// IndexOf returns the 1-based position of the first v in values,
// or NotFound.
func IndexOf[T comparable](values []T, v T) int {
	for i, x := range values {
		if x == v {
			return i + 1
		}
	}
	return NotFound
}
