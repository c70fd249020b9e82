package main

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/vdobler/stripchart"
	"github.com/vdobler/stripchart/data"
	"github.com/vdobler/stripchart/trace"
)

type options struct {
	width, height  int
	title          string
	xLabel, yLabel string
	xScale, yScale string
	xRange, yRange string
	xTicks, yTicks int
	noGrid         bool
	margins        string
	legend         string
	decimation     int
	lossless       bool
	line, marker   string
	sheet          string
	colors         string

	output string
	format string
	align  bool
	follow bool
}

func defaultOptions() *options {
	return &options{width: 800, height: 300}
}

// parseRange parses "min:max".
func parseRange(s string) (lo, hi float64, err error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("bad range %q, want min:max", s)
	}
	if lo, err = strconv.ParseFloat(a, 64); err != nil {
		return 0, 0, fmt.Errorf("bad range %q: %w", s, err)
	}
	if hi, err = strconv.ParseFloat(b, 64); err != nil {
		return 0, 0, fmt.Errorf("bad range %q: %w", s, err)
	}
	return lo, hi, nil
}

func setupAxis(a *stripchart.Axis, label, scale, rng string, ticks int, grid bool) error {
	a.Label = label
	a.ShowLabel = label != ""
	a.RequestedTicks = ticks
	a.Grid.Show = grid
	mode, err := stripchart.ParseScaleMode(scale)
	if err != nil {
		return err
	}
	a.SetScaleMode(mode)
	if rng != "" {
		lo, hi, err := parseRange(rng)
		if err != nil {
			return err
		}
		a.SetRange(lo, hi)
	}
	return nil
}

// newChart builds the chart for the series of one file.
func newChart(name string, series []data.Series, opts *options) (*stripchart.Chart, error) {
	c := stripchart.New()
	c.Title = opts.title
	if c.Title == "" {
		c.Title = filepath.Base(name)
	}
	if err := setupAxis(c.X, opts.xLabel, opts.xScale, opts.xRange, opts.xTicks, !opts.noGrid); err != nil {
		return nil, err
	}
	if err := setupAxis(c.Y, opts.yLabel, opts.yScale, opts.yRange, opts.yTicks, !opts.noGrid); err != nil {
		return nil, err
	}
	var err error
	if c.Margins, err = stripchart.ParseMargins(opts.margins); err != nil {
		return nil, err
	}
	if c.Legend, err = stripchart.ParseLegendPosition(opts.legend); err != nil {
		return nil, err
	}
	lineType, err := trace.ParseLineType(opts.line)
	if err != nil {
		return nil, err
	}
	markerType, err := trace.ParseMarkerType(opts.marker)
	if err != nil {
		return nil, err
	}

	for i, s := range series {
		t, err := s.Trace()
		if err != nil {
			return nil, err
		}
		t.Decimation = opts.decimation
		t.Lossless = opts.lossless
		t.Line.Type = lineType
		col, err := seriesColor(opts.colors, i, len(series))
		if err != nil {
			return nil, err
		}
		t.Line.Color = col
		if markerType != trace.MarkerNone {
			t.Marker = trace.MarkerStyle{Type: markerType, Color: col}
		}
		if err := c.AddTrace(t); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	c.OnResize(float64(opts.width), float64(opts.height))
	return c, nil
}

// seriesColor returns the color of series i out of n for the color
// scheme "plotutil" (distinct colors) or "kindlmann" (a luminance ramp).
func seriesColor(scheme string, i, n int) (color.Color, error) {
	switch scheme {
	case "", "plotutil":
		return plotutil.Color(i), nil
	case "kindlmann":
		cm := moreland.Kindlmann()
		cm.SetMin(0)
		cm.SetMax(1)
		return cm.At((float64(i) + 0.5) / float64(n))
	}
	return nil, fmt.Errorf("unknown color scheme %q", scheme)
}

func loadCharts(files []string, opts *options) ([]*stripchart.Chart, error) {
	charts := make([]*stripchart.Chart, 0, len(files))
	for _, name := range files {
		series, err := data.Load(name, opts.sheet)
		if err != nil {
			return nil, err
		}
		c, err := newChart(name, series, opts)
		if err != nil {
			return nil, err
		}
		charts = append(charts, c)
	}
	return charts, nil
}

// alignMargins fixes the margins of all charts to the largest automatic
// ones so that their plot areas line up.
func alignMargins(charts []*stripchart.Chart) error {
	var left, right float64
	for _, c := range charts {
		l, r, err := c.IdealMargins()
		if err != nil {
			return err
		}
		left, right = math.Max(left, l), math.Max(right, r)
	}
	for _, c := range charts {
		c.Margins = stripchart.Margins{Mode: stripchart.MarginPixels, Left: left, Right: right}
	}
	return nil
}

type exportCanvas interface {
	vg.CanvasSizer
	io.WriterTo
}

func outputFormat(opts *options) string {
	if opts.format != "" {
		return strings.ToLower(opts.format)
	}
	if ext := strings.TrimPrefix(filepath.Ext(opts.output), "."); ext != "" {
		return strings.ToLower(ext)
	}
	return "png"
}

func newCanvas(format string, w, h vg.Length) (exportCanvas, error) {
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72))}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// render draws the charts of files stacked top to bottom into one output
// file.
func render(files []string, opts *options) error {
	charts, err := loadCharts(files, opts)
	if err != nil {
		return err
	}
	if opts.align && len(charts) > 1 && opts.margins == "auto" {
		if err := alignMargins(charts); err != nil {
			return err
		}
	}

	w, h := vg.Length(opts.width), vg.Length(opts.height)
	canvas, err := newCanvas(outputFormat(opts), w, h*vg.Length(len(charts)))
	if err != nil {
		return err
	}
	dc := draw.New(canvas)
	n := len(charts)
	for i, c := range charts {
		sub := dc
		sub.Min.Y = dc.Min.Y + h*vg.Length(n-1-i)
		sub.Max.Y = sub.Min.Y + h
		if err := c.Draw(sub); err != nil {
			return fmt.Errorf("%s: %w", files[i], err)
		}
		c.Close()
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if _, err := canvas.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// margins prints the automatic margins of each file's chart followed by
// the margins that align all of them.
func margins(w io.Writer, files []string, opts *options) error {
	charts, err := loadCharts(files, opts)
	if err != nil {
		return err
	}
	var left, right float64
	for i, c := range charts {
		l, r, err := c.IdealMargins()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\tpx:%g,%g\n", files[i], math.Ceil(l), math.Ceil(r))
		left, right = math.Max(left, l), math.Max(right, r)
	}
	aligned := stripchart.Margins{Mode: stripchart.MarginPixels, Left: math.Ceil(left), Right: math.Ceil(right)}
	fmt.Fprintf(w, "aligned\t%s\n", aligned)
	return nil
}
