package sheetframe

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// EncName is the default charset of CSV input, taken from $LANG.
var EncName = "utf-8"

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
	}
	if EncName == "" {
		EncName = "utf-8"
	}
}

// GetEncoding returns the named encoding, nil for UTF-8.
func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

type csvReadCloser struct {
	*csv.Reader
	io.Closer
}

// OpenCsv opens fn ("" or "-" is stdin), decodes it from encName
// and guesses the field separator from the first line.
func OpenCsv(fn, encName string) (csvReadCloser, error) {
	var enc encoding.Encoding
	if encName != "" {
		var err error
		if enc, err = GetEncoding(encName); err != nil {
			return csvReadCloser{}, err
		}
	}
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return csvReadCloser{}, err
		}
	}
	return NewCsvReader(fh, enc)
}

// NewCsvReader is OpenCsv over an already opened stream.
// A nil enc means UTF-8.
func NewCsvReader(rc io.ReadCloser, enc encoding.Encoding) (csvReadCloser, error) {
	r := rc
	if enc != nil {
		r = struct {
			io.Reader
			io.Closer
		}{enc.NewDecoder().Reader(r), r}
	}
	br := bufio.NewReaderSize(r, 1<<20)
	b, err := br.Peek(1024)
	if err != nil && len(b) == 0 {
		return csvReadCloser{}, err
	}
	cr := csv.NewReader(br)
	cr.ReuseRecord = true
	cr.Comma = guessSeparator(b)
	return csvReadCloser{cr, r}, nil
}

var separators = []rune{',', ';', '\t', '|'}

// guessSeparator returns the most frequent separator of the first line
// outside quoted fields; ',' when there's none.
func guessSeparator(b []byte) rune {
	counts := make(map[rune]int, len(separators))
	var quoted bool
	for _, r := range string(b) {
		if r == '"' {
			quoted = !quoted
			continue
		}
		if quoted {
			continue
		}
		if r == '\n' || r == '\r' {
			break
		}
		counts[r]++
	}
	sep := separators[0]
	for _, r := range separators[1:] {
		if counts[r] > counts[sep] {
			sep = r
		}
	}
	return sep
}

// CSVOptions configures ReadFrame.
type CSVOptions struct {
	// HeaderLevels is the number of header lines, 0 means 1.
	HeaderLevels int
	// IndexColumn makes the first field of each line the row label;
	// the first non-empty one in the header lines is the index name.
	IndexColumn bool
	// FillForward repeats the label on its left for empty labels
	// of all but the innermost header level.
	FillForward bool
	// Numbers converts numeric fields to Number.
	Numbers bool
}

// ReadFrame reads a frame from r: the header lines first, then the data.
// Empty fields are nil.
func ReadFrame(r *csv.Reader, opts CSVOptions) (*Frame, error) {
	levels := max(1, opts.HeaderLevels)
	var fr Frame
	for level := range levels {
		rec, err := r.Read()
		if err != nil {
			return nil, fmt.Errorf("header line %d: %w", level+1, err)
		}
		if opts.IndexColumn && len(rec) != 0 {
			if fr.IndexName == "" {
				fr.IndexName = rec[0]
			}
			rec = rec[1:]
		}
		labels := make([]any, len(rec))
		for j, s := range rec {
			if s != "" {
				labels[j] = s
			} else if opts.FillForward && level < levels-1 && j > 0 {
				labels[j] = labels[j-1]
			}
		}
		fr.Columns = append(fr.Columns, labels)
	}

	conv := func(s string) any {
		if s == "" {
			return nil
		}
		if opts.Numbers && isNumber(s) {
			return Number(s)
		}
		return s
	}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("line %d: %w", levels+len(fr.Values)+1, err)
		}
		if opts.IndexColumn && len(rec) != 0 {
			fr.Index = append(fr.Index, conv(rec[0]))
			rec = rec[1:]
		}
		row := make([]any, len(rec))
		for j, s := range rec {
			row[j] = conv(s)
		}
		fr.Values = append(fr.Values, row)
	}
	if opts.IndexColumn && fr.Index == nil {
		fr.Index = []any{}
	}
	if err := fr.Validate(); err != nil {
		return nil, err
	}
	return &fr, nil
}

func isNumber(s string) bool {
	if strings.ContainsAny(s, "nNiIxX_") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
