// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Command xlsxfmt places frames on the sheets of an existing xlsx workbook
// and formats them.
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
	"strconv"
	"syscall"

	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/peterbourgon/ff/v3/ffyaml"
	"github.com/xuri/excelize/v2"

	"github.com/UNO-SOFT/sheetframe"
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

func Main() error {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return newApp(os.Stdout).ParseAndRun(ctx, os.Args[1:])
}

var errArgs = errors.New("wrong number of arguments")

func needArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return fmt.Errorf("%w: wanted %s, got %q", errArgs, usage, args)
	}
	return nil
}

// modify opens the workbook, calls fn and saves the result.
func modify(path string, fn func(*excelize.File) error) error {
	f, err := xlsx.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = fn(f); err != nil {
		return err
	}
	logger.Debug("save", "file", path)
	return f.Save()
}

func view(path string, fn func(*excelize.File) error) error {
	f, err := xlsx.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}

// csvFlags are the flags of the commands reading a frame from CSV.
type csvFlags struct {
	Charset string
	Missing string
	CSV     sheetframe.CSVOptions
	Write   sheetframe.WriteOptions
}

func (cf *csvFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&cf.Charset, "charset", sheetframe.EncName, "csv charset name")
	fs.IntVar(&cf.CSV.HeaderLevels, "header-levels", 1, "number of header lines")
	fs.BoolVar(&cf.CSV.IndexColumn, "index", false, "the first column is the row index")
	fs.BoolVar(&cf.CSV.FillForward, "fill-forward", false, "empty outer header labels repeat the label on their left")
	fs.BoolVar(&cf.CSV.Numbers, "numbers", true, "write numeric fields as numbers")
	fs.StringVar(&cf.Missing, "missing", sheetframe.MissingMerge.String(), "missing header labels: merge|split")
	fs.BoolVar(&cf.Write.Nested, "nested", false, "header runs do not cross the runs of the level above")
	fs.BoolVar(&cf.Write.NoMerge, "no-merge", false, "do not merge repeated header labels")
}

func (cf *csvFlags) readFrame(fn string) (*sheetframe.Frame, error) {
	var ok bool
	if cf.Write.Runs.Missing, ok = sheetframe.ParseMissingPolicy(cf.Missing); !ok {
		return nil, fmt.Errorf("-missing=%q: wanted merge or split", cf.Missing)
	}
	cf.Write.NoIndex = !cf.CSV.IndexColumn
	cf.Write.Logger = logger
	cr, err := sheetframe.OpenCsv(fn, cf.Charset)
	if err != nil {
		return nil, err
	}
	defer cr.Close()
	fr, err := sheetframe.ReadFrame(cr.Reader, cf.CSV)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", fn, err)
	}
	logger.Debug("read", "file", fn, "shape", fr.Shape())
	return fr, nil
}

// parseColumns accepts "B", "B:D" or "2:4".
func parseColumns(s string) (int, int, error) {
	first, last, err := sheetframe.ParseColumns(s)
	if err != nil {
		return 0, 0, fmt.Errorf("columns %q: %w", s, err)
	}
	return first, last, nil
}

func newApp(out io.Writer) *ffcli.Command {
	options := []ff.Option{ff.WithEnvVarPrefix("SHEETFRAME")}
	newFlagSet := func(name string) *flag.FlagSet {
		return flag.NewFlagSet(name, flag.ContinueOnError)
	}

	fsLayout := newFlagSet("layout")
	var shape sheetframe.Shape
	fsLayout.IntVar(&shape.Rows, "rows", 0, "number of data rows")
	fsLayout.IntVar(&shape.Cols, "cols", 0, "number of data columns")
	fsLayout.IntVar(&shape.HeaderLevels, "header-levels", 1, "number of header rows")
	fsLayout.BoolVar(&shape.NoIndex, "no-index", false, "frame without index column")
	layoutCmd := ffcli.Command{Name: "layout", FlagSet: fsLayout, Options: options,
		ShortUsage: "layout [flags] <anchor>",
		ShortHelp:  "print the ranges of a frame placed at anchor",
		Exec: func(ctx context.Context, args []string) error {
			if err := needArgs(args, 1, "anchor"); err != nil {
				return err
			}
			anchor, err := sheetframe.ParseCell(args[0])
			if err != nil {
				return err
			}
			l, err := sheetframe.ComputeLayout(shape, anchor)
			if err != nil {
				return err
			}
			return printLayout(out, l)
		},
	}

	fsWrite := newFlagSet("write")
	var writeCSV csvFlags
	writeCSV.register(fsWrite)
	flagWriteAnchor := fsWrite.String("anchor", "", "top-left data cell (default: below the header, right of the index)")
	flagWriteBorders := fsWrite.Bool("borders", false, "draw borders around the parts of the frame")
	writeCmd := ffcli.Command{Name: "write", FlagSet: fsWrite, Options: options,
		ShortUsage: "write [flags] <file.xlsx> <sheet> <input.csv>",
		ShortHelp:  "write a CSV frame into an existing sheet",
		Exec: func(ctx context.Context, args []string) error {
			if err := needArgs(args, 3, "file, sheet and csv"); err != nil {
				return err
			}
			fr, err := writeCSV.readFrame(args[2])
			if err != nil {
				return err
			}
			shape := fr.Shape()
			shape.NoIndex = writeCSV.Write.NoIndex
			anchor := sheetframe.AnchorFor(shape, sheetframe.Cell{Row: 1, Col: 1})
			if *flagWriteAnchor != "" {
				if anchor, err = sheetframe.ParseCell(*flagWriteAnchor); err != nil {
					return err
				}
			}
			return modify(args[0], func(f *excelize.File) error {
				l, err := xlsx.WriteFrame(f, args[1], fr, anchor, writeCSV.Write)
				if err != nil {
					return err
				}
				logger.Info("written", "sheet", args[1], "data", l.Data.String())
				if !*flagWriteBorders {
					return nil
				}
				sheet, err := xlsx.WrapFile(f).Sheet(args[1])
				if err != nil {
					return err
				}
				return sheetframe.FormatFrame(sheet, l, sheetframe.DefaultFrameStyle)
			})
		},
	}

	fsReplace := newFlagSet("replace")
	var replaceCSV csvFlags
	replaceCSV.register(fsReplace)
	replaceCmd := ffcli.Command{Name: "replace", FlagSet: fsReplace, Options: options,
		ShortUsage: "replace [flags] <file.xlsx> <sheet> <input.csv>",
		ShortHelp:  "replace (or create) the sheet with a CSV frame",
		Exec: func(ctx context.Context, args []string) error {
			if err := needArgs(args, 3, "file, sheet and csv"); err != nil {
				return err
			}
			fr, err := replaceCSV.readFrame(args[2])
			if err != nil {
				return err
			}
			return xlsx.WriteFrameAsSheet(args[0], args[1], fr, replaceCSV.CSV.IndexColumn)
		},
	}

	deleteCmd := ffcli.Command{Name: "delete", FlagSet: newFlagSet("delete"), Options: options,
		ShortUsage: "delete <file.xlsx> <sheet>",
		ShortHelp:  "delete the sheet",
		Exec: func(ctx context.Context, args []string) error {
			if err := needArgs(args, 2, "file and sheet"); err != nil {
				return err
			}
			return modify(args[0], func(f *excelize.File) error {
				return xlsx.DeleteSheet(f, args[1])
			})
		},
	}

	clearCmd := ffcli.Command{Name: "clear", FlagSet: newFlagSet("clear"), Options: options,
		ShortUsage: "clear <file.xlsx> <sheet> [range|columns]",
		ShortHelp:  "clear the whole sheet, a range (B2:D5) or columns (B:D)",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 2 {
				if err := needArgs(args, 3, "file, sheet and range"); err != nil {
					return err
				}
			}
			return modify(args[0], func(f *excelize.File) error {
				if len(args) == 2 {
					return xlsx.ClearSheet(f, args[1])
				}
				if r, err := sheetframe.ParseRange(args[2]); err == nil {
					for c := range r.Cells() {
						if err := xlsx.ClearCell(f, args[1], c); err != nil {
							return err
						}
					}
					return nil
				}
				first, last, err := parseColumns(args[2])
				if err != nil {
					return err
				}
				return xlsx.ClearColumns(f, args[1], first, last)
			})
		},
	}

	// rangeCmd is a command modifying a range of a sheet,
	// with extra positional arguments.
	rangeCmd := func(name, extra, help string, fs *flag.FlagSet, fn func(*excelize.File, string, sheetframe.Range, []string) error) *ffcli.Command {
		if fs == nil {
			fs = newFlagSet(name)
		}
		usage, n := "<file.xlsx> <sheet> <range>", 3
		if extra != "" {
			usage, n = usage+" <"+extra+">", 4
		}
		return &ffcli.Command{Name: name, FlagSet: fs, Options: options,
			ShortUsage: name + " [flags] " + usage,
			ShortHelp:  help,
			Exec: func(ctx context.Context, args []string) error {
				if err := needArgs(args, n, usage); err != nil {
					return err
				}
				r, err := sheetframe.ParseRange(args[2])
				if err != nil {
					return err
				}
				return modify(args[0], func(f *excelize.File) error {
					return fn(f, args[1], r, args[3:])
				})
			},
		}
	}

	fsBorder := newFlagSet("border")
	flagBorder := fsBorder.String("style", string(sheetframe.BorderThin), "border style: thin|medium|thick|dashed|dotted|double|hair")
	borderCmd := rangeCmd("border", "", "draw borders around every cell of the range", fsBorder,
		func(f *excelize.File, sheet string, r sheetframe.Range, _ []string) error {
			return xlsx.SetRangeBorder(f, sheet, r, sheetframe.BorderStyle(*flagBorder))
		})

	styleCmd := rangeCmd("style", "name", "apply a named style (Good, Bad, Note, Total...)", nil,
		func(f *excelize.File, sheet string, r sheetframe.Range, args []string) error {
			return xlsx.SetRangeStyle(f, sheet, r, args[0])
		})

	fsAlign := newFlagSet("align")
	var align sheetframe.Alignment
	fsAlign.StringVar(&align.Horizontal, "h", "", "horizontal alignment: left|center|right|fill|justify")
	fsAlign.StringVar(&align.Vertical, "v", "", "vertical alignment: top|center|bottom|justify")
	fsAlign.BoolVar(&align.WrapText, "wrap", false, "wrap text")
	alignCmd := rangeCmd("align", "", "set the alignment of the range", fsAlign,
		func(f *excelize.File, sheet string, r sheetframe.Range, _ []string) error {
			if align.IsZero() {
				return errors.New("one of -h, -v or -wrap is required")
			}
			return xlsx.SetRangeAlignment(f, sheet, r, align)
		})

	numfmtCmd := rangeCmd("numfmt", "format", "set the number format (0.00, #,##0, yyyy-mm-dd...)", nil,
		func(f *excelize.File, sheet string, r sheetframe.Range, args []string) error {
			return xlsx.SetRangeNumberFormat(f, sheet, r, args[0])
		})

	widthCmd := ffcli.Command{Name: "width", FlagSet: newFlagSet("width"), Options: options,
		ShortUsage: "width <file.xlsx> <sheet> <columns> <width>",
		ShortHelp:  "set the width of the columns",
		Exec: func(ctx context.Context, args []string) error {
			if err := needArgs(args, 4, "file, sheet, columns and width"); err != nil {
				return err
			}
			first, last, err := parseColumns(args[2])
			if err != nil {
				return err
			}
			w, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("width %q: %w", args[3], err)
			}
			return modify(args[0], func(f *excelize.File) error {
				return xlsx.SetColumnWidth(f, args[1], first, last, w)
			})
		},
	}

	fsAutofit := newFlagSet("autofit")
	flagMinWidth := fsAutofit.Float64("min", 8, "minimal column width")
	autofitCmd := ffcli.Command{Name: "autofit", FlagSet: fsAutofit, Options: options,
		ShortUsage: "autofit [flags] <file.xlsx> <sheet> <columns>",
		ShortHelp:  "fit the width of the columns to their content",
		Exec: func(ctx context.Context, args []string) error {
			if err := needArgs(args, 3, "file, sheet and columns"); err != nil {
				return err
			}
			first, last, err := parseColumns(args[2])
			if err != nil {
				return err
			}
			return modify(args[0], func(f *excelize.File) error {
				return xlsx.AutofitColumns(f, args[1], first, last, *flagMinWidth)
			})
		},
	}

	fsHide := newFlagSet("hide")
	flagShow := fsHide.Bool("show", false, "show instead of hide")
	hideCmd := ffcli.Command{Name: "hide", FlagSet: fsHide, Options: options,
		ShortUsage: "hide [flags] <file.xlsx> <sheet> [columns]",
		ShortHelp:  "hide (or show) columns, or the whole sheet",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 2 {
				if err := needArgs(args, 3, "file, sheet and columns"); err != nil {
					return err
				}
			}
			return modify(args[0], func(f *excelize.File) error {
				if len(args) == 2 {
					return xlsx.SetSheetVisible(f, args[1], *flagShow)
				}
				first, last, err := parseColumns(args[2])
				if err != nil {
					return err
				}
				return xlsx.SetColumnsVisible(f, args[1], first, last, *flagShow)
			})
		},
	}

	fsFind := newFlagSet("find")
	flagFindRow := fsFind.Int("row", 0, "search in this row: prints the column")
	flagFindCol := fsFind.String("col", "", "search in this column (B or 2): prints the row")
	findCmd := ffcli.Command{Name: "find", FlagSet: fsFind, Options: options,
		ShortUsage: "find -row=N|-col=C <file.xlsx> <sheet> <label>",
		ShortHelp:  "print the position of a label, 0 if not found",
		Exec: func(ctx context.Context, args []string) error {
			if err := needArgs(args, 3, "file, sheet and label"); err != nil {
				return err
			}
			if (*flagFindRow == 0) == (*flagFindCol == "") {
				return errors.New("exactly one of -row and -col is required")
			}
			return view(args[0], func(f *excelize.File) error {
				var pos int
				var err error
				if *flagFindRow != 0 {
					pos, err = xlsx.FindInRow(f, args[1], *flagFindRow, args[2])
				} else {
					var col int
					if col, _, err = parseColumns(*flagFindCol); err != nil {
						return err
					}
					pos, err = xlsx.FindInColumn(f, args[1], col, args[2])
				}
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, pos)
				return err
			})
		},
	}

	dumpCmd := ffcli.Command{Name: "dump", FlagSet: newFlagSet("dump"), Options: options,
		ShortUsage: "dump <file.xlsx> <sheet>",
		ShortHelp:  "print the used area of the sheet",
		Exec: func(ctx context.Context, args []string) error {
			if err := needArgs(args, 2, "file and sheet"); err != nil {
				return err
			}
			return view(args[0], func(f *excelize.File) error {
				fr, err := xlsx.SheetToFrame(f, args[1])
				if err != nil {
					return err
				}
				return printSheet(out, fr)
			})
		},
	}

	fs := newFlagSet("xlsxfmt")
	fs.Var(&verbose, "v", "logging verbosity")
	_ = fs.String("config", "", "config file (YAML)")
	return &ffcli.Command{Name: "xlsxfmt", FlagSet: fs,
		ShortUsage: "xlsxfmt [flags] <subcommand> [flags] <args>...",
		Options: append(options,
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
			ff.WithAllowMissingConfigFile(true),
		),
		Subcommands: []*ffcli.Command{
			&layoutCmd, &writeCmd, &replaceCmd, &deleteCmd, &clearCmd,
			borderCmd, styleCmd, alignCmd, numfmtCmd,
			&widthCmd, &autofitCmd, &hideCmd, &findCmd, &dumpCmd,
		},
		Exec: func(ctx context.Context, args []string) error {
			return flag.ErrHelp
		},
	}
}
