package numcmp

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var ErrNoRows = errors.New("no rows to chart")

const (
	DefaultChartWidth  = 16 * vg.Centimeter
	DefaultChartHeight = 10 * vg.Centimeter
)

type chartConfig struct {
	title          string
	label1, label2 string
}

type ChartOption func(*chartConfig)

func WithChartTitle(title string) ChartOption {
	return func(c *chartConfig) { c.title = title }
}

// WithChartLabels names the two input series in the legend.
func WithChartLabels(label1, label2 string) ChartOption {
	return func(c *chartConfig) {
		c.label1 = label1
		c.label2 = label2
	}
}

// Chart plots both input series and their delta against the pair index.
func Chart(rows []Row, opts ...ChartOption) (*plot.Plot, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	cfg := chartConfig{
		title:  "numcmp",
		label1: "file1",
		label2: "file2",
	}
	for _, o := range opts {
		o(&cfg)
	}

	v1 := make(plotter.XYs, len(rows))
	v2 := make(plotter.XYs, len(rows))
	delta := make(plotter.XYs, len(rows))
	for i, r := range rows {
		x := float64(r.Index)
		v1[i] = plotter.XY{X: x, Y: toFloat(r.Value1)}
		v2[i] = plotter.XY{X: x, Y: toFloat(r.Value2)}
		delta[i] = plotter.XY{X: x, Y: toFloat(r.Diff())}
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "line"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())
	err := plotutil.AddLinePoints(p,
		cfg.label1, v1,
		cfg.label2, v2,
		"delta", delta,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// toFloat rounds v to the nearest float64; values beyond its range become ±Inf.
func toFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}

// SaveChart writes the chart to path. The image format follows the file
// extension.
func SaveChart(rows []Row, path string, opts ...ChartOption) error {
	p, err := Chart(rows, opts...)
	if err != nil {
		return err
	}
	return p.Save(DefaultChartWidth, DefaultChartHeight, path)
}

// RunPlotCLI parses "[-o out.png] [-title t] file1 file2" and saves a chart
// of the two files. Flag and run errors are reported on stderr; ErrNoPaths
// is left to the caller.
func RunPlotCLI(args []string, stderr io.Writer) error {
	fset := flag.NewFlagSet("numplot", flag.ContinueOnError)
	fset.SetOutput(stderr)
	out := fset.String("o", "numcmp.png", "output `file`; the extension selects the image format")
	title := fset.String("title", "", "chart title (defaults to the two file names)")
	err := fset.Parse(args)
	if err != nil {
		return err
	}
	c, err := NewComparer(WithInputsFromArgs(fset.Args()), WithStderr(stderr))
	if err != nil {
		return err
	}
	rows, _, err := c.Rows()
	if err != nil {
		c.LogFStdErr("%v\n", err)
		return err
	}
	if *title == "" {
		*title = fmt.Sprintf("%s vs %s", c.Path1, c.Path2)
	}
	err = SaveChart(rows, *out,
		WithChartTitle(*title),
		WithChartLabels(filepath.Base(c.Path1), filepath.Base(c.Path2)),
	)
	if err != nil {
		c.LogFStdErr("%v\n", err)
		return err
	}
	return nil
}
