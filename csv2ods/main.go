// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Command csv2ods converts CSV files into the sheets of one .ods or .xlsx workbook.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/peterbourgon/ff/v3/ffyaml"

	"github.com/UNO-SOFT/sheetframe"
	"github.com/UNO-SOFT/sheetframe/ods"
	"github.com/UNO-SOFT/sheetframe/xlsx"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		slog.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

type config struct {
	Charset string
	Anchor  string
	CSV     sheetframe.CSVOptions
	Write   sheetframe.WriteOptions
	Borders bool
}

func Main() error {
	var cfg config
	fs := flag.NewFlagSet("csv2ods", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	fs.StringVar(&cfg.Charset, "charset", sheetframe.EncName, "csv charset name")
	fs.StringVar(&cfg.Anchor, "anchor", "", "top-left data cell, such as C4 (default: below the header, right of the index)")
	fs.IntVar(&cfg.CSV.HeaderLevels, "header-levels", 1, "number of header lines")
	fs.BoolVar(&cfg.CSV.IndexColumn, "index", false, "the first column is the row index")
	fs.BoolVar(&cfg.CSV.FillForward, "fill-forward", false, "empty outer header labels repeat the label on their left")
	fs.BoolVar(&cfg.CSV.Numbers, "numbers", true, "write numeric fields as numbers")
	flagMissing := fs.String("missing", sheetframe.MissingMerge.String(), "missing header labels: merge|split")
	fs.BoolVar(&cfg.Write.Nested, "nested", false, "header runs do not cross the runs of the level above")
	fs.BoolVar(&cfg.Write.NoMerge, "no-merge", false, "do not merge repeated header labels")
	fs.BoolVar(&cfg.Borders, "borders", false, "draw borders around the parts of each frame")
	_ = fs.String("config", "", "config file (YAML)")

	app := ffcli.Command{Name: "csv2ods", FlagSet: fs,
		ShortUsage: "csv2ods [flags] <output.ods|output.xlsx> [sheet:]<input.csv>...",
		Options: []ff.Option{
			ff.WithEnvVarPrefix("SHEETFRAME"),
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
			ff.WithAllowMissingConfigFile(true),
		},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return flag.ErrHelp
			}
			var ok bool
			if cfg.Write.Runs.Missing, ok = sheetframe.ParseMissingPolicy(*flagMissing); !ok {
				return fmt.Errorf("-missing=%q: wanted merge or split", *flagMissing)
			}
			cfg.Write.NoIndex = !cfg.CSV.IndexColumn
			cfg.Write.Logger = logger
			return convert(ctx, args[0], args[1:], cfg)
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.ParseAndRun(ctx, os.Args[1:])
}

func convert(ctx context.Context, out string, inputs []string, cfg config) error {
	fh := os.Stdout
	if !(out == "" || out == "-") {
		var err error
		if fh, err = os.Create(out); err != nil {
			return err
		}
	}
	defer fh.Close()
	w, err := newWriter(fh, out)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for i, arg := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		sheetName, fn := sheetNameOf(i, arg)
		logger.Debug("convert", "file", fn, "sheet", sheetName)
		if err := copyFile(w, sheetName, fn, cfg); err != nil {
			return fmt.Errorf("%q: %w", fn, err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return fh.Close()
}

// newWriter returns an xlsx writer for .xlsx names, an ods one otherwise.
func newWriter(w io.Writer, fn string) (sheetframe.Writer, error) {
	if strings.EqualFold(filepath.Ext(fn), ".xlsx") {
		xw := xlsx.NewWriter(w)
		xw.SetLogger(logger)
		return xw, nil
	}
	ow, err := ods.NewWriter(w)
	if err != nil {
		return nil, err
	}
	ow.SetLogger(logger)
	return ow, nil
}

// sheetNameOf splits "sheet:file.csv"; without a sheet name it is the
// base name of the file, or SheetN for stdin.
func sheetNameOf(i int, arg string) (sheetName, fn string) {
	if j := strings.IndexByte(arg, ':'); j >= 0 {
		return arg[:j], arg[j+1:]
	}
	if arg == "" || arg == "-" {
		return "Sheet" + strconv.Itoa(i+1), arg
	}
	return strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg)), arg
}

func copyFile(w sheetframe.Writer, sheetName, fn string, cfg config) error {
	cr, err := sheetframe.OpenCsv(fn, cfg.Charset)
	if err != nil {
		return err
	}
	defer cr.Close()
	fr, err := sheetframe.ReadFrame(cr.Reader, cfg.CSV)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("less than %d header lines: %w", max(1, cfg.CSV.HeaderLevels), err)
		}
		return err
	}
	return writeSheet(w, sheetName, fr, cfg)
}

var headerStyle = sheetframe.FrameStyle{
	Columns:   sheetframe.Style{FontBold: true, Align: sheetframe.Alignment{Horizontal: "center"}},
	IndexName: sheetframe.Style{FontBold: true},
}

func writeSheet(w sheetframe.Writer, sheetName string, fr *sheetframe.Frame, cfg config) error {
	sheet, err := w.NewSheet(sheetName, nil)
	if err != nil {
		return err
	}
	shape := fr.Shape()
	shape.NoIndex = cfg.Write.NoIndex
	anchor := sheetframe.AnchorFor(shape, sheetframe.Cell{Row: 1, Col: 1})
	if cfg.Anchor != "" {
		if anchor, err = sheetframe.ParseCell(cfg.Anchor); err != nil {
			return fmt.Errorf("anchor %q: %w", cfg.Anchor, err)
		}
	}
	l, err := sheetframe.WriteFrame(sheet, fr, anchor, cfg.Write)
	if err != nil {
		return err
	}
	fs := headerStyle
	if cfg.Borders {
		fs = sheetframe.DefaultFrameStyle
		fs.Columns.FontBold, fs.IndexName.FontBold = true, true
	}
	if err = sheetframe.FormatFrame(sheet, l, fs); err != nil {
		return err
	}
	return sheet.Close()
}
