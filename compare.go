package numcmp

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrNoPaths          = errors.New("two input files are required")
	ErrFileAccess       = errors.New("cannot access input file")
	ErrValueCannotBeNil = errors.New("value cannot be nil")
)

type Comparer struct {
	Path1, Path2   string
	Stdout, Stderr io.Writer
}

func NewComparer(opts ...Option) (*Comparer, error) {
	c := &Comparer{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	for _, o := range opts {
		err := o(c)
		if err != nil {
			return nil, err
		}
	}
	if c.Path1 == "" || c.Path2 == "" {
		return nil, ErrNoPaths
	}
	return c, nil
}

func WithPaths(path1, path2 string) Option {
	return func(c *Comparer) error {
		c.Path1 = path1
		c.Path2 = path2
		return nil
	}
}

func WithStdout(w io.Writer) Option {
	return func(c *Comparer) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		c.Stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) Option {
	return func(c *Comparer) error {
		if w == nil {
			return ErrValueCannotBeNil
		}
		c.Stderr = w
		return nil
	}
}

// WithInputsFromArgs takes the first two positional arguments as the input
// paths. Anything after them is ignored.
func WithInputsFromArgs(args []string) Option {
	return func(c *Comparer) error {
		if len(args) < 2 {
			return ErrNoPaths
		}
		c.Path1 = args[0]
		c.Path2 = args[1]
		return nil
	}
}

type Option func(*Comparer) error

// Run opens both inputs and writes the report to the configured stdout.
func (c *Comparer) Run() (Totals, error) {
	f1, err := openInput(c.Path1)
	if err != nil {
		return Totals{}, err
	}
	defer f1.Close()
	f2, err := openInput(c.Path2)
	if err != nil {
		return Totals{}, err
	}
	defer f2.Close()
	return compare(newSource(c.Path1, f1), newSource(c.Path2, f2), c.Stdout)
}

// Rows opens both inputs and returns every pair without writing a report.
func (c *Comparer) Rows() ([]Row, Totals, error) {
	f1, err := openInput(c.Path1)
	if err != nil {
		return nil, Totals{}, err
	}
	defer f1.Close()
	f2, err := openInput(c.Path2)
	if err != nil {
		return nil, Totals{}, err
	}
	defer f2.Close()
	return collectRows(newSource(c.Path1, f1), newSource(c.Path2, f2))
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return f, nil
}

func (c Comparer) LogFStdErr(msg string, opts ...interface{}) {
	fmt.Fprintf(c.Stderr, msg, opts...)
}

// RunCLI compares the two files named in args. With fewer than two
// arguments it does nothing and reports no error. Any failure is reported
// on the configured stderr before it is returned.
func RunCLI(args []string, opts ...Option) error {
	c, err := NewComparer(append([]Option{WithInputsFromArgs(args)}, opts...)...)
	if errors.Is(err, ErrNoPaths) {
		return nil
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	_, err = c.Run()
	if err != nil {
		c.LogFStdErr("%v\n", err)
		return err
	}
	return nil
}
