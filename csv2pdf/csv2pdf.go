// Copyright 2021 Tamas Gulacsi. All rights reserved.

// Command csv2pdf prints a CSV frame as a PDF table.
package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/UNO-SOFT/sheetframe"
	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/peterbourgon/ff/v3/ffyaml"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		slog.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

type pdfOptions struct {
	Write        sheetframe.WriteOptions
	Alternate    Color
	FontSize     float64
	Landscape    bool
	PrintPageNum bool
}

func Main() error {
	opts := pdfOptions{Alternate: Color{Color: props.Color{
		Red:   230,
		Green: 230,
		Blue:  230,
	}}}
	var csvOpts sheetframe.CSVOptions

	fs := flag.NewFlagSet("csv2pdf", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	flagEnc := fs.String("charset", sheetframe.EncName, "csv charset name")
	flagOut := fs.String("o", "", "output file name (default input file + .pdf)")
	fs.Var(&opts.Alternate, "alternate-color", "alternate color")
	fs.BoolVar(&opts.Landscape, "L", false, "landscape orientation (default: portrait)")
	fs.Float64Var(&opts.FontSize, "f", 8, "font size")
	fs.BoolVar(&opts.PrintPageNum, "print-pagenum", false, "print page numbers")
	fs.IntVar(&csvOpts.HeaderLevels, "header-levels", 1, "number of header lines")
	fs.BoolVar(&csvOpts.IndexColumn, "index", false, "the first column is the row index")
	fs.BoolVar(&csvOpts.FillForward, "fill-forward", false, "empty outer header labels repeat the label on their left")
	flagMissing := fs.String("missing", sheetframe.MissingMerge.String(), "missing header labels: merge|split")
	fs.BoolVar(&opts.Write.Nested, "nested", false, "header spans do not cross the spans of the level above")
	fs.BoolVar(&opts.Write.NoMerge, "no-merge", false, "do not span repeated header labels")
	_ = fs.String("config", "", "config file (YAML)")

	app := ffcli.Command{Name: "csv2pdf", FlagSet: fs,
		ShortUsage: "csv2pdf [flags] <input.csv>",
		Options: []ff.Option{
			ff.WithEnvVarPrefix("SHEETFRAME"),
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
			ff.WithAllowMissingConfigFile(true),
		},
		Exec: func(ctx context.Context, args []string) error {
			fn := "-"
			if len(args) != 0 {
				fn = args[0]
			}
			var ok bool
			if opts.Write.Runs.Missing, ok = sheetframe.ParseMissingPolicy(*flagMissing); !ok {
				return fmt.Errorf("-missing=%q: wanted merge or split", *flagMissing)
			}
			opts.Write.NoIndex = !csvOpts.IndexColumn

			cr, err := sheetframe.OpenCsv(fn, *flagEnc)
			if err != nil {
				return err
			}
			defer cr.Close()
			fr, err := sheetframe.ReadFrame(cr.Reader, csvOpts)
			if err != nil {
				return err
			}
			logger.Debug("read", "file", fn, "shape", fr.Shape())

			b, err := render(fr, opts)
			if err != nil {
				return err
			}
			out := *flagOut
			if out == "" && fn != "" && fn != "-" {
				out = fn + ".pdf"
			}
			if out == "" || out == "-" {
				_, err = os.Stdout.Write(b)
				return err
			}
			return os.WriteFile(out, b, 0o644)
		},
	}

	args := make([]string, 0, len(os.Args))
	for _, a := range os.Args[1:] {
		if strings.HasPrefix(a, "-f") && len(a) > 2 && '0' <= a[2] && a[2] <= '9' {
			args = append(args, "-f", a[2:])
		} else {
			args = append(args, a)
		}
	}
	logger.Debug("args", "original", os.Args[1:], "fixed", args)

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.ParseAndRun(ctx, args)
}

// gridSizes returns the relative widths of the index (if any) and the
// columns, proportional to their widest text.
func gridSizes(fr *sheetframe.Frame, withIndex bool) []int {
	var widths []float64
	if withIndex {
		w := utf8.RuneCountInString(fr.IndexName)
		for i := range fr.NumRows() {
			w = max(w, utf8.RuneCountInString(label(fr.IndexValue(i))))
		}
		widths = append(widths, float64(w))
	}
	for j := range fr.NumCols() {
		var w int
		for level := range fr.HeaderLevels() {
			if labels := fr.Level(level); j < len(labels) {
				w = max(w, utf8.RuneCountInString(label(labels[j])))
			}
		}
		for _, v := range fr.Column(j) {
			w = max(w, utf8.RuneCountInString(label(v)))
		}
		widths = append(widths, float64(w))
	}
	var avg float64
	for _, w := range widths {
		avg += w
	}
	sizes := make([]int, len(widths))
	if avg == 0 {
		for i := range sizes {
			sizes[i] = 1
		}
		return sizes
	}
	avg /= float64(len(widths))
	for i, w := range widths {
		sizes[i] = max(1, int(math.Round(4*w/avg)))
	}
	return sizes
}

// headerRuns returns the spans of one header level.
func headerRuns(labels []any, level int, parents []sheetframe.LabelRun[any], merge bool, opts sheetframe.WriteOptions) iter.Seq[sheetframe.LabelRun[any]] {
	if !merge {
		return func(yield func(sheetframe.LabelRun[any]) bool) {
			for j, v := range labels {
				if !yield(sheetframe.LabelRun[any]{Value: v, Row: level + 1, StartCol: j + 1, EndCol: j + 1}) {
					return
				}
			}
		}
	}
	ro := opts.Runs
	if ro.IsMissing == nil {
		ro.IsMissing = sheetframe.IsMissingLabel
	}
	runs := sheetframe.FindLabelRuns(labels, level+1, 1, ro)
	if opts.Nested && level > 0 {
		runs = sheetframe.NestRuns(runs, parents)
	}
	return runs
}

func render(fr *sheetframe.Frame, opts pdfOptions) ([]byte, error) {
	if err := fr.Validate(); err != nil {
		return nil, err
	}
	withIndex := !opts.Write.NoIndex
	sizes := gridSizes(fr, withIndex)
	var total int
	for _, s := range sizes {
		total += s
	}
	o := orientation.Vertical
	if opts.Landscape {
		o = orientation.Horizontal
	}
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = 8
	}
	cb := config.NewBuilder().
		WithOrientation(o).
		WithPageSize(pagesize.A4).
		WithMaxGridSize(total)
	if opts.PrintPageNum {
		cb = cb.WithPageNumber(props.PageNumber{Pattern: "{current} / {total}", Place: props.RightBottom})
	}
	m := maroto.New(cb.Build())

	headerText := props.Text{Family: fontfamily.Arial, Style: fontstyle.Bold, Size: fontSize * 1.375, Align: align.Center, Top: 1}
	contentText := props.Text{Family: fontfamily.Courier, Style: fontstyle.Normal, Size: fontSize, Align: align.Center, Top: 1}
	headerCell := &props.Cell{BorderType: border.Full}
	alternate := &props.Cell{BackgroundColor: &opts.Alternate.Color}
	headerHeight, contentHeight := fontSize*0.6+2, fontSize*0.45+2

	off := 0
	if withIndex {
		off = 1
	}
	span := func(first, last int) int {
		var n int
		for _, s := range sizes[off+first-1 : off+last] {
			n += s
		}
		return n
	}

	levels := fr.HeaderLevels()
	merge := levels > 1 && !opts.Write.NoMerge
	var parents []sheetframe.LabelRun[any]
	for level := range levels {
		var cols []core.Col
		if withIndex {
			var name string
			if level == 0 {
				name = fr.IndexName
			}
			cols = append(cols, col.New(sizes[0]).Add(text.New(name, headerText)))
		}
		runs := slices.Collect(headerRuns(fr.Level(level), level, parents, merge, opts.Write))
		for _, r := range runs {
			cols = append(cols, col.New(span(r.StartCol, r.EndCol)).
				Add(text.New(label(r.Value), headerText)).
				WithStyle(headerCell))
		}
		parents = runs
		m.AddRows(row.New(headerHeight).Add(cols...))
	}

	for i := range fr.NumRows() {
		cols := make([]core.Col, 0, len(sizes))
		if withIndex {
			cols = append(cols, col.New(sizes[0]).Add(text.New(label(fr.IndexValue(i)), headerText)))
		}
		for j, v := range fr.Row(i) {
			c := col.New(sizes[off+j]).Add(text.New(label(v), contentText))
			if i%2 == 1 {
				c = c.WithStyle(alternate)
			}
			cols = append(cols, c)
		}
		m.AddRows(row.New(contentHeight).Add(cols...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func label(v any) string {
	if sheetframe.IsMissingLabel(v) {
		return ""
	}
	return fmt.Sprint(v)
}

// Color is a flag.Value of a hex RGB color.
type Color struct {
	props.Color
}

func (c *Color) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.Red, c.Green, c.Blue)
}
func (c *Color) Set(s string) error {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil {
		return err
	}
	if len(b) != 3 {
		return fmt.Errorf("%q: wanted RRGGBB", s)
	}
	c.Red, c.Green, c.Blue = int(b[0]), int(b[1]), int(b[2])
	return nil
}
