// Package geom provides the geometric objects a strip chart is drawn
// from: decimated lines, markers, rules and boxes.
//
// Geoms draw onto a Panel which maps data coordinates to points of a
// gonum/plot canvas. Lines may be much denser than the pixels available
// to show them, so Line supports two decimation modes:
//
//   - Stride decimation uses every Divisor-th sample. A NaN sample
//     breaks the line, two consecutive samples outside the panel's data
//     range are not connected.
//   - Lossless decimation groups the samples by pixel column and draws
//     the min/max envelope of each column, so spikes stay visible.
package geom

import (
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Panel is the plot area geoms are drawn onto.
type Panel interface {
	// MapXY maps the data coordinate (x,y) to a canvas point and reports
	// whether (x,y) lies inside the data range of the panel.
	MapXY(x, y float64) (vg.Point, bool)

	// MapX and MapY map a single coordinate.
	MapX(x float64) (vg.Length, bool)
	MapY(y float64) (vg.Length, bool)

	// DrawArea is the canvas restricted to the plot area.
	DrawArea() draw.Canvas
}

// ----------------------------------------------------------------------------
// Line

// Line connects the samples of XY in data order.
type Line struct {
	XY plotter.XYer

	// Divisor selects every Divisor-th sample. Values below 1 mean 1.
	Divisor int

	// Lossless draws the per pixel column min/max envelope.
	Lossless bool

	Style draw.LineStyle
}

func (l Line) stride() int {
	if l.Divisor < 1 {
		return 1
	}
	return l.Divisor
}

// Paths returns the polylines making up l in canvas coordinates, before
// clipping to the draw area.
func (l Line) Paths(panel Panel) [][]vg.Point {
	if l.XY == nil || l.XY.Len() == 0 {
		return nil
	}
	if l.Lossless {
		return l.envelope(panel)
	}

	var paths [][]vg.Point
	var cur []vg.Point
	flush := func() {
		if len(cur) > 1 {
			paths = append(paths, cur)
		}
		cur = nil
	}

	gap, lastOut := true, false
	n, dd := l.XY.Len(), l.stride()
	for i := 0; i < n; i += dd {
		x, y := l.XY.XY(i)
		if math.IsNaN(x) || math.IsNaN(y) {
			gap = true
			continue
		}
		p, in := panel.MapXY(x, y)
		if gap || (!in && lastOut) {
			flush()
		}
		cur = append(cur, p)
		gap, lastOut = false, !in
	}
	flush()
	return paths
}

// envelope computes the lossless decimation of l: one vertical segment per
// pixel column spanning all its samples and one segment connecting the
// last sample of a column to the first sample of the next.
func (l Line) envelope(panel Panel) [][]vg.Point {
	var segs [][]vg.Point

	var (
		have       bool
		col        int
		cx         vg.Length
		lo, hi, at vg.Length
	)
	span := func() {
		if have && hi > lo {
			segs = append(segs, []vg.Point{{X: cx, Y: lo}, {X: cx, Y: hi}})
		}
	}

	n, dd := l.XY.Len(), l.stride()
	for i := 0; i < n; i += dd {
		x, y := l.XY.XY(i)
		if math.IsNaN(x) || math.IsNaN(y) {
			span()
			have = false
			continue
		}
		p, _ := panel.MapXY(x, y)
		c := int(math.Floor(float64(p.X)))
		if have && c == col {
			if p.Y < lo {
				lo = p.Y
			}
			if p.Y > hi {
				hi = p.Y
			}
			at = p.Y
			continue
		}
		if have {
			span()
			segs = append(segs, []vg.Point{{X: cx, Y: at}, {X: vg.Length(c), Y: p.Y}})
		}
		col, cx = c, vg.Length(c)
		lo, hi, at = p.Y, p.Y, p.Y
		have = true
	}
	span()
	return segs
}

// Draw strokes l clipped to the draw area of panel.
func (l Line) Draw(panel Panel) {
	if l.Style.Color == nil || l.Style.Width <= 0 {
		return
	}
	canvas := panel.DrawArea()
	paths := l.Paths(panel)
	if len(paths) == 0 {
		return
	}
	canvas.StrokeLines(l.Style, canvas.ClipLinesXY(paths...)...)
}

// ----------------------------------------------------------------------------
// Markers

// Markers draws a glyph at every sample of XY inside the data range of the
// panel. Samples outside are skipped entirely, no partial glyphs are drawn.
type Markers struct {
	XY    plotter.XYer
	Style draw.GlyphStyle
}

// Points returns the canvas positions of the glyphs.
func (m Markers) Points(panel Panel) []vg.Point {
	if m.XY == nil {
		return nil
	}
	var pts []vg.Point
	for i := 0; i < m.XY.Len(); i++ {
		x, y := m.XY.XY(i)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		if p, ok := panel.MapXY(x, y); ok {
			pts = append(pts, p)
		}
	}
	return pts
}

// Draw draws the glyphs.
func (m Markers) Draw(panel Panel) {
	if m.Style.Shape == nil || m.Style.Color == nil {
		return
	}
	canvas := panel.DrawArea()
	for _, p := range m.Points(panel) {
		canvas.DrawGlyphNoClip(m.Style, p)
	}
}
