package sheetframe

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readFrame(t *testing.T, s string, opts CSVOptions) *Frame {
	t.Helper()
	cr, err := NewCsvReader(io.NopCloser(strings.NewReader(s)), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer cr.Close()
	fr, err := ReadFrame(cr.Reader, opts)
	if err != nil {
		t.Fatal(err)
	}
	return fr
}

func TestReadFrameMultiLevel(t *testing.T) {
	fr := readFrame(t, "idx,2023,2023,2024\n,Q1,Q2,Q1\na,1,2.5,3\nb,4,,x\n",
		CSVOptions{HeaderLevels: 2, IndexColumn: true, Numbers: true})
	want := &Frame{
		IndexName: "idx",
		Index:     []any{"a", "b"},
		Columns:   [][]any{{"2023", "2023", "2024"}, {"Q1", "Q2", "Q1"}},
		Values: [][]any{
			{Number("1"), Number("2.5"), Number("3")},
			{Number("4"), nil, "x"},
		},
	}
	if d := cmp.Diff(want, fr); d != "" {
		t.Error(d)
	}
}

func TestReadFrameFillForward(t *testing.T) {
	fr := readFrame(t, "2023,,2024\nQ1,,Q1\n1,2,3\n",
		CSVOptions{HeaderLevels: 2, FillForward: true})
	if d := cmp.Diff([][]any{{"2023", "2023", "2024"}, {"Q1", nil, "Q1"}}, fr.Columns); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([][]any{{"1", "2", "3"}}, fr.Values); d != "" {
		t.Error(d)
	}
	if fr.Index != nil {
		t.Errorf("index=%v", fr.Index)
	}
}

func TestCsvSeparator(t *testing.T) {
	cr, err := NewCsvReader(io.NopCloser(strings.NewReader("name;value\nx;1\n")), nil)
	if err != nil {
		t.Fatal(err)
	}
	if cr.Comma != ';' {
		t.Errorf("separator %q", cr.Comma)
	}
	fr, err := ReadFrame(cr.Reader, CSVOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([][]any{{"name", "value"}}, fr.Columns); d != "" {
		t.Error(d)
	}
}

func TestGuessSeparator(t *testing.T) {
	for in, want := range map[string]rune{
		"Price (USD),Qty\n1.5,2\n":       ',',
		"a/b;c%;#d\n1;2;3\n":             ';',
		"x:y\tz&w\tv\n":                  '\t',
		"k|v\n":                          '|',
		`"a;b;c",d` + "\n":               ',',
		"single\n1\n":                    ',',
		"":                               ',',
		"a;b,c;d\n":                      ';',
		"first,line\nsecond;;;;;line\n": ',',
	} {
		if got := guessSeparator([]byte(in)); got != want {
			t.Errorf("%q: got %q, wanted %q", in, got, want)
		}
	}

	fr := readFrame(t, "Price (USD),Qty\n1.5,2\n", CSVOptions{Numbers: true})
	if d := cmp.Diff([][]any{{"Price (USD)", "Qty"}}, fr.Columns); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([][]any{{Number("1.5"), Number("2")}}, fr.Values); d != "" {
		t.Error(d)
	}
}

func TestReadFrameShortHeader(t *testing.T) {
	cr, err := NewCsvReader(io.NopCloser(strings.NewReader("a,b\n")), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = ReadFrame(cr.Reader, CSVOptions{HeaderLevels: 2}); !errors.Is(err, io.EOF) {
		t.Errorf("got %v, wanted EOF", err)
	}
}

func TestGetEncoding(t *testing.T) {
	if enc, err := GetEncoding("UTF-8"); err != nil || enc != nil {
		t.Errorf("utf-8: %v, %v", enc, err)
	}
	enc, err := GetEncoding("iso-8859-2")
	if err != nil {
		t.Fatal(err)
	}
	s, err := enc.NewDecoder().String("\xe1rv\xedzt\xfbr\xf5")
	if err != nil {
		t.Fatal(err)
	}
	if s != "árvíztűrő" {
		t.Errorf("got %q", s)
	}
	if _, err := GetEncoding("no-such-charset"); err == nil {
		t.Error("no error for an unknown charset")
	}
}
