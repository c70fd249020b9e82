package stripchart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/stripchart/geom"
)

// render draws the chart for the current layout onto p.
func (c *Chart) render(p *Panel) {
	L := c.layout
	surface := p.Surface

	if c.Style.Background != nil {
		surface.SetColor(c.Style.Background)
		surface.Fill(surface.Rectangle.Path())
	}

	if c.ShowTitle && c.Title != "" {
		surface.FillText(c.Style.Title, p.Point(L.Width/2, L.TitleTop), c.Title)
	}

	drawLegend(p, c.legend, L.Legend, c.Style)

	area := p.Rectangle(L.Area)
	geom.Box{Rect: area, BoxStyle: geom.BoxStyle{Fill: c.Style.Area.Background}}.Draw(surface)

	xticks, yticks := c.X.Ticks(), c.Y.Ticks()
	if c.X.Grid.Show {
		geom.VRule{X: tickValues(xticks), Style: c.X.Grid.LineStyle}.Draw(p)
	}
	if c.Y.Grid.Show {
		geom.HRule{Y: tickValues(yticks), Style: c.Y.Grid.LineStyle}.Draw(p)
	}
	if c.X.ShowTickLabels {
		for _, t := range xticks {
			surface.FillText(c.Style.XAxis.TickLabel, p.Point(c.trans.X.Map(t.Value), L.XTickTop), t.Label)
		}
	}
	if c.Y.ShowTickLabels {
		for _, t := range yticks {
			surface.FillText(c.Style.YAxis.TickLabel, p.Point(L.YTickRight, c.trans.Y.Map(t.Value)), t.Label)
		}
	}

	if c.X.ShowLabel && c.X.Label != "" {
		cx := (L.Area.Left + L.Area.Right) / 2
		surface.FillText(c.Style.XAxis.Label, p.Point(cx, L.XLabelTop), c.X.Label)
	}
	if c.Y.ShowLabel && c.Y.Label != "" {
		cy := (L.Area.Top + L.Area.Bottom) / 2
		surface.FillText(c.Style.YAxis.Label, p.Point(L.YLabelLeft, cy), c.Y.Label)
	}

	for _, t := range c.traces {
		if t.Len() == 0 {
			continue
		}
		if ls, ok := lineStyle(t.Line); ok {
			geom.Line{
				XY:       t,
				Divisor:  t.Decimation,
				Lossless: t.Lossless || t.Decimation < 1,
				Style:    ls,
			}.Draw(p)
		}
	}
	for _, t := range c.traces {
		if gs, ok := glyphStyle(t.Marker); ok && t.Len() > 0 {
			geom.Markers{XY: t, Style: gs}.Draw(p)
		}
	}

	geom.Box{Rect: area, BoxStyle: geom.BoxStyle{Border: c.Style.Area.Border}}.Draw(surface)
}

func tickValues(ticks []plot.Tick) []float64 {
	v := make([]float64, len(ticks))
	for i, t := range ticks {
		v[i] = t.Value
	}
	return v
}

// Crosshair lines leave a gap between crossGapIn and crossGapOut pixels
// around their center.
const (
	crossGapIn  = 5
	crossGapOut = 10
)

// renderOverlay draws the interactive decorations onto p.
func (c *Chart) renderOverlay(p *Panel) {
	if c.cursor != nil {
		c.cursor.draw(p)
	}

	if r, ok := c.ZoomRect(); ok {
		geom.Box{
			Rect:     p.Rectangle(r),
			BoxStyle: geom.BoxStyle{Border: c.Style.ZoomBox},
		}.Draw(p.DrawArea())
	}

	ro, ok := c.Readout()
	if !ok {
		return
	}
	if c.Crosshair != CrosshairNone {
		c.drawCrosshair(p, ro.PX, ro.PY)
	}
	if c.ShowCoords {
		c.drawCoords(p, ro)
	}
}

func (c *Chart) drawCrosshair(p *Panel, px, py float64) {
	a := c.layout.Area
	sty := c.Style.Crosshair
	canvas := p.DrawArea()
	var lines [][]vg.Point
	for _, seg := range [][2]float64{
		{a.Left, px - crossGapOut}, {px - crossGapIn, px + crossGapIn}, {px + crossGapOut, a.Right},
	} {
		lines = append(lines, []vg.Point{p.Point(seg[0], py), p.Point(seg[1], py)})
	}
	for _, seg := range [][2]float64{
		{a.Top, py - crossGapOut}, {py - crossGapIn, py + crossGapIn}, {py + crossGapOut, a.Bottom},
	} {
		lines = append(lines, []vg.Point{p.Point(px, seg[0]), p.Point(px, seg[1])})
	}
	canvas.StrokeLines(sty, canvas.ClipLinesXY(lines...)...)
}

// drawCoords draws the coordinate readout box in the quadrant of the
// readout point facing away from the plot edges.
func (c *Chart) drawCoords(p *Panel, ro Readout) {
	sty := c.Style.Coords.TextStyle
	if sty.Font.Size == 0 {
		return
	}
	lines := []string{ro.XLabel, ro.YLabel}
	w := 0.0
	for _, s := range lines {
		if sw := width(sty, s); sw > w {
			w = sw
		}
	}
	lh := height(sty, "Xy")
	pad := 3.0
	bw, bh := w+2*pad, float64(len(lines))*lh+2*pad

	a := c.layout.Area
	box := Rect{Left: ro.PX + crossGapOut, Top: ro.PY + crossGapOut}
	if ro.PX > (a.Left+a.Right)/2 {
		box.Left = ro.PX - crossGapOut - bw
	}
	if ro.PY > (a.Top+a.Bottom)/2 {
		box.Top = ro.PY - crossGapOut - bh
	}
	box.Right, box.Bottom = box.Left+bw, box.Top+bh

	geom.Box{
		Rect:     p.Rectangle(box),
		BoxStyle: geom.BoxStyle{Fill: c.Style.Coords.Background, Border: c.Style.Coords.Border},
	}.Draw(p.Surface)
	ts := sty
	ts.XAlign, ts.YAlign = draw.XLeft, draw.YTop
	for i, s := range lines {
		p.Surface.FillText(ts, p.Point(box.Left+pad, box.Top+pad+float64(i)*lh), s)
	}
}
