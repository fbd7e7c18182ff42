package numcmp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Row is one pair of lines, both parsed, at the same position in each input.
// Values are unbounded, so differences and sums never wrap.
type Row struct {
	Index          int
	Value1, Value2 *big.Int
}

func (r Row) Diff() *big.Int {
	return new(big.Int).Sub(r.Value1, r.Value2)
}

// Negative reports whether the first input's value is below the second's.
func (r Row) Negative() bool {
	return r.Value1.Cmp(r.Value2) < 0
}

func (r Row) String() string {
	line := fmt.Sprintf("%d %8d %8d %8d", r.Index, r.Value1, r.Value2, r.Diff())
	if r.Negative() {
		line += " ###"
	}
	return line + "\n"
}

type Totals struct {
	Sum1, Sum2 *big.Int
	Pairs      int
}

func newTotals() Totals {
	return Totals{Sum1: new(big.Int), Sum2: new(big.Int)}
}

func (t *Totals) add(r Row) {
	t.Sum1.Add(t.Sum1, r.Value1)
	t.Sum2.Add(t.Sum2, r.Value2)
	t.Pairs++
}

func (t Totals) String() string {
	return fmt.Sprintf("sum:   %8d  %8d\n", orZero(t.Sum1), orZero(t.Sum2))
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

var ErrNotInteger = errors.New("not a base-10 integer")

// ParseError reports a line that does not hold a base-10 integer.
type ParseError struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: invalid integer %q: %v", e.Source, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type source struct {
	name   string
	reader *bufio.Reader
	line   int
	done   bool
}

func newSource(name string, r io.Reader) *source {
	return &source{name: name, reader: bufio.NewReader(r)}
}

// next reads and parses the following line. ok is false once the source
// is exhausted. Lines have no length limit.
func (s *source) next() (v *big.Int, ok bool, err error) {
	if s.done {
		return nil, false, nil
	}
	text, err := s.reader.ReadString('\n')
	if err == io.EOF {
		s.done = true
		if text == "" {
			return nil, false, nil
		}
	} else if err != nil {
		return nil, false, fmt.Errorf("%s: %w", s.name, err)
	}
	s.line++
	text = strings.TrimRight(text, "\r\n")
	v, ok = new(big.Int).SetString(strings.TrimSpace(text), 10)
	if !ok {
		return nil, false, &ParseError{Source: s.name, Line: s.line, Text: text, Err: ErrNotInteger}
	}
	return v, true, nil
}

// EachPair walks r1 and r2 in lockstep and calls fn for every pair. It stops
// as soon as either reader runs out; r2 is not read once r1 is exhausted.
func EachPair(r1, r2 io.Reader, fn func(Row) error) (Totals, error) {
	return eachPair(newSource("input1", r1), newSource("input2", r2), fn)
}

func eachPair(s1, s2 *source, fn func(Row) error) (Totals, error) {
	totals := newTotals()
	for i := 0; ; i++ {
		v1, ok, err := s1.next()
		if err != nil || !ok {
			return totals, err
		}
		v2, ok, err := s2.next()
		if err != nil || !ok {
			return totals, err
		}
		row := Row{Index: i, Value1: v1, Value2: v2}
		totals.add(row)
		if err := fn(row); err != nil {
			return totals, err
		}
	}
}

// Compare writes one report row per pair to w, then the summary row. Nothing
// further is written once an error occurs.
func Compare(r1, r2 io.Reader, w io.Writer) (Totals, error) {
	return compare(newSource("input1", r1), newSource("input2", r2), w)
}

func compare(s1, s2 *source, w io.Writer) (Totals, error) {
	totals, err := eachPair(s1, s2, func(r Row) error {
		_, err := io.WriteString(w, r.String())
		return err
	})
	if err != nil {
		return totals, err
	}
	_, err = io.WriteString(w, totals.String())
	return totals, err
}

// CollectRows gathers every pair from r1 and r2 under the same rules as
// Compare.
func CollectRows(r1, r2 io.Reader) ([]Row, Totals, error) {
	return collectRows(newSource("input1", r1), newSource("input2", r2))
}

func collectRows(s1, s2 *source) ([]Row, Totals, error) {
	var rows []Row
	totals, err := eachPair(s1, s2, func(r Row) error {
		rows = append(rows, r)
		return nil
	})
	if err != nil {
		return nil, totals, err
	}
	return rows, totals, nil
}
