package stripchart

import (
	"fmt"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/stripchart/geom"
	"github.com/vdobler/stripchart/trace"
)

// LegendPosition places the legend.
type LegendPosition int

const (
	LegendNone LegendPosition = iota
	LegendRight
	LegendTop
)

var legendNames = []string{"none", "right", "top"}

// String returns the name of p.
func (p LegendPosition) String() string {
	if p < 0 || int(p) >= len(legendNames) {
		return fmt.Sprintf("LegendPosition(%d)", int(p))
	}
	return legendNames[p]
}

// ParseLegendPosition is the inverse of LegendPosition.String.
func ParseLegendPosition(s string) (LegendPosition, error) {
	for i, n := range legendNames {
		if n == s {
			return LegendPosition(i), nil
		}
	}
	return LegendNone, fmt.Errorf("unknown legend position %q", s)
}

const (
	legendBorder  = 3  // inner margin of the legend box
	legendLine    = 15 // length of the line sample
	legendTextGap = 5  // between line sample and name
	legendSpacing = 10 // between legend and plot and between entries on top
)

// legendEntry is one line of the legend, positioned relative to the top
// left corner of the legend box.
type legendEntry struct {
	tr   *trace.Trace
	x, y float64 // left end of the line sample, vertical center
}

// legendLayout is the arrangement of the entries in the legend box.
type legendLayout struct {
	size    Size
	entries []legendEntry
}

// layoutLegend arranges the named traces for the legend position pos.
// Traces without a name get no entry. maxWidth limits the width of a
// top legend which then wraps into several rows.
func layoutLegend(pos LegendPosition, traces []*trace.Trace, sty TextSizer, maxWidth float64) legendLayout {
	var named []*trace.Trace
	for _, t := range traces {
		if t.Name != "" {
			named = append(named, t)
		}
	}
	if pos == LegendNone || len(named) == 0 || sty == nil {
		return legendLayout{}
	}

	pitch := 1.5 * height(sty, "Test")
	var ll legendLayout

	switch pos {
	case LegendRight:
		widest := 10.0
		for i, t := range named {
			if w := width(sty, t.Name); w > widest {
				widest = w
			}
			ll.entries = append(ll.entries, legendEntry{
				tr: t,
				x:  legendBorder,
				y:  legendBorder + (float64(i)+0.5)*pitch,
			})
		}
		ll.size.W = 2*legendBorder + legendLine + legendTextGap + widest
		ll.size.H = 2*legendBorder + float64(len(named))*pitch

	case LegendTop:
		x, row, widest := float64(legendBorder), 0, 0.0
		for _, t := range named {
			w := legendLine + legendTextGap + width(sty, t.Name)
			if x > legendBorder && x+w+legendBorder > maxWidth {
				x, row = legendBorder, row+1
			}
			ll.entries = append(ll.entries, legendEntry{
				tr: t,
				x:  x,
				y:  legendBorder + (float64(row)+0.5)*pitch,
			})
			x += w
			if x > widest {
				widest = x
			}
			x += legendSpacing
		}
		ll.size.W = widest + legendBorder
		ll.size.H = 2*legendBorder + float64(row+1)*pitch
	}
	return ll
}

// drawLegend draws ll into box of the panel's surface.
func drawLegend(p *Panel, ll legendLayout, box Rect, style Style) {
	if len(ll.entries) == 0 {
		return
	}
	geom.Box{
		Rect:     p.Rectangle(box),
		BoxStyle: geom.BoxStyle{Fill: style.Legend.Background, Border: style.Legend.Border},
	}.Draw(p.Surface)

	for _, e := range ll.entries {
		x, y := box.Left+e.x, box.Top+e.y
		if ls, ok := lineStyle(e.tr.Line); ok {
			a, b := p.Point(x, y), p.Point(x+legendLine, y)
			p.Surface.StrokeLine2(ls, a.X, a.Y, b.X, b.Y)
		}
		if gs, ok := glyphStyle(e.tr.Marker); ok {
			p.Surface.DrawGlyphNoClip(gs, p.Point(x+legendLine/2, y))
		}
		p.Surface.FillText(style.Legend.Label, p.Point(x+legendLine+legendTextGap, y), e.tr.Name)
	}
}

// lineStyle converts the line style of a trace. It reports false for
// invisible lines.
func lineStyle(ls trace.LineStyle) (draw.LineStyle, bool) {
	if ls.Type == trace.LineNone || ls.Color == nil || ls.Width <= 0 {
		return draw.LineStyle{}, false
	}
	return draw.LineStyle{Color: ls.Color, Width: ls.Width, Dashes: ls.Type.Dashes()}, true
}

// glyphStyle converts the marker style of a trace. It reports false for
// invisible markers.
func glyphStyle(ms trace.MarkerStyle) (draw.GlyphStyle, bool) {
	if ms.Color == nil {
		return draw.GlyphStyle{}, false
	}
	size := ms.Size
	if size <= 0 {
		size = 5
	}
	gs := draw.GlyphStyle{Color: ms.Color, Radius: size / 2}
	switch ms.Type {
	case trace.MarkerPoint:
		gs.Shape = draw.CircleGlyph{}
		gs.Radius = vg.Length(1.5)
	case trace.MarkerCircle:
		gs.Shape = draw.RingGlyph{}
	case trace.MarkerSquare:
		gs.Shape = draw.SquareGlyph{}
	case trace.MarkerX:
		gs.Shape = draw.CrossGlyph{}
	default:
		return draw.GlyphStyle{}, false
	}
	return gs, true
}
