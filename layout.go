package stripchart

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
)

// layoutGap is the distance between neighbouring blocks of the layout.
const layoutGap = 6

// TextSizer measures text. draw.TextStyle implements it.
type TextSizer interface {
	Width(txt string) vg.Length
	Height(txt string) vg.Length
}

// ----------------------------------------------------------------------------
// Margins

// MarginMode selects how the left and right edge of the plot area are
// determined.
type MarginMode int

const (
	// MarginAuto sizes the margins to fit labels and legend.
	MarginAuto MarginMode = iota
	// MarginPixels uses Left and Right as pixel distances.
	MarginPixels
	// MarginPercent uses Left and Right as fractions of the chart width.
	MarginPercent
)

var marginModeNames = []string{"auto", "pixels", "percent"}

// String returns the name of m.
func (m MarginMode) String() string {
	if m < 0 || int(m) >= len(marginModeNames) {
		return fmt.Sprintf("MarginMode(%d)", int(m))
	}
	return marginModeNames[m]
}

// Margins are the horizontal margins around the plot area.
type Margins struct {
	Mode        MarginMode
	Left, Right float64
}

// String formats m in the form accepted by ParseMargins.
func (m Margins) String() string {
	switch m.Mode {
	case MarginPixels:
		return fmt.Sprintf("px:%g,%g", m.Left, m.Right)
	case MarginPercent:
		return fmt.Sprintf("pct:%g,%g", 100*m.Left, 100*m.Right)
	}
	return "auto"
}

// ParseMargins parses "auto", "px:LEFT,RIGHT" (pixels) or
// "pct:LEFT,RIGHT" (percent of the chart width).
func ParseMargins(s string) (Margins, error) {
	if s == "auto" || s == "" {
		return Margins{Mode: MarginAuto}, nil
	}
	kind, vals, ok := strings.Cut(s, ":")
	if !ok {
		return Margins{}, fmt.Errorf("bad margins %q", s)
	}
	l, r, ok := strings.Cut(vals, ",")
	if !ok {
		return Margins{}, fmt.Errorf("bad margins %q", s)
	}
	left, err := strconv.ParseFloat(strings.TrimSpace(l), 64)
	if err != nil {
		return Margins{}, fmt.Errorf("bad left margin in %q: %w", s, err)
	}
	right, err := strconv.ParseFloat(strings.TrimSpace(r), 64)
	if err != nil {
		return Margins{}, fmt.Errorf("bad right margin in %q: %w", s, err)
	}
	if left < 0 || right < 0 {
		return Margins{}, fmt.Errorf("negative margins %q", s)
	}
	switch kind {
	case "px":
		return Margins{Mode: MarginPixels, Left: left, Right: right}, nil
	case "pct":
		return Margins{Mode: MarginPercent, Left: left / 100, Right: right / 100}, nil
	}
	return Margins{}, fmt.Errorf("unknown margin mode %q", kind)
}

// ----------------------------------------------------------------------------
// Layout

// Layout is the outcome of one layout pass. All values are device pixels.
type Layout struct {
	Width, Height float64

	// Area is the plot area.
	Area Rect

	// TitleTop is the top of the title which is centered horizontally.
	TitleTop float64

	// XLabelTop is the top of the x axis label, centered on the plot area.
	XLabelTop float64

	// YLabelLeft is the left edge of the rotated y axis label, centered
	// vertically on the plot area.
	YLabelLeft float64

	// XTickTop is the top of the x tick labels.
	XTickTop float64

	// YTickRight is the right edge of the y tick labels.
	YTickRight float64

	// Legend is the legend box, empty if there is none.
	Legend Rect

	// IdealLeft and IdealRight are the margins automatic layout would use.
	IdealLeft, IdealRight float64
}

// layoutInput collects everything the layout depends on. Nil sizers
// mark hidden text.
type layoutInput struct {
	width, height float64

	title      string
	titleStyle TextSizer

	xLabel, yLabel           string
	xLabelStyle, yLabelStyle TextSizer

	xTicks, yTicks         []string
	xTickStyle, yTickStyle TextSizer

	legend     LegendPosition
	legendSize Size

	margins Margins
}

// Size is a width and height in device pixels.
type Size struct {
	W, H float64
}

func height(sty TextSizer, txt string) float64 {
	if sty == nil {
		return 0
	}
	return float64(sty.Height(txt))
}

func width(sty TextSizer, txt string) float64 {
	if sty == nil {
		return 0
	}
	return float64(sty.Width(txt))
}

// negotiate computes the layout for in.
func negotiate(in layoutInput) Layout {
	W, H := in.width, in.height
	L := Layout{Width: W, Height: H}

	L.TitleTop = 0.01 * H
	titleBottom := L.TitleTop
	if in.titleStyle != nil && in.title != "" {
		titleBottom += height(in.titleStyle, in.title)
	}

	xLabelBottom := H - 0.01*H
	L.XLabelTop = xLabelBottom
	if in.xLabelStyle != nil {
		L.XLabelTop -= height(in.xLabelStyle, in.xLabel)
	}

	switch in.legend {
	case LegendRight:
		L.Legend.Left = W - in.legendSize.W - legendSpacing
		L.Legend.Top = titleBottom + 0.01*H
	case LegendTop:
		L.Legend.Left = (W - in.legendSize.W) / 2
		L.Legend.Top = titleBottom + legendSpacing
	}
	if in.legend != LegendNone {
		L.Legend.Right = L.Legend.Left + in.legendSize.W
		L.Legend.Bottom = L.Legend.Top + in.legendSize.H
	}

	yLabelW := 0.0
	if in.yLabelStyle != nil {
		yLabelW = height(in.yLabelStyle, in.yLabel)
	}
	widestY := 0.0
	for _, s := range in.yTicks {
		if w := width(in.yTickStyle, s); w > widestY {
			widestY = w
		}
	}

	// Automatic margins.
	left := float64(layoutGap)
	if yLabelW > 0 {
		left += yLabelW + layoutGap
	}
	left += widestY + layoutGap
	right := W - 0.06*W
	if in.legend == LegendRight {
		right = L.Legend.Left - legendSpacing
	}
	if n := len(in.xTicks); n > 0 {
		lw := width(in.xTickStyle, in.xTicks[n-1])
		if lw/2 > W-right {
			right = W - lw
		}
	}
	L.IdealLeft, L.IdealRight = left, W-right

	switch in.margins.Mode {
	case MarginPixels:
		left, right = in.margins.Left, W-in.margins.Right
	case MarginPercent:
		left, right = in.margins.Left*W, W-in.margins.Right*W
	}

	L.YTickRight = left - layoutGap
	L.YLabelLeft = L.YTickRight - widestY - layoutGap - yLabelW

	top := titleBottom + 2*layoutGap
	if in.legend == LegendTop {
		top = L.Legend.Bottom + 2*layoutGap
	}

	xTickBottom := H - layoutGap
	if in.xLabelStyle != nil {
		xTickBottom = L.XLabelTop - layoutGap
	}
	L.XTickTop = xTickBottom
	if len(in.xTicks) > 0 {
		L.XTickTop -= height(in.xTickStyle, in.xTicks[0])
	}
	bottom := L.XTickTop - layoutGap

	if right < left+1 {
		right = left + 1
	}
	if bottom < top+1 {
		bottom = top + 1
	}
	L.Area = Rect{Left: left, Right: right, Top: top, Bottom: bottom}
	debugf("layout %gx%g: area %+v ideal %g/%g", W, H, L.Area, L.IdealLeft, L.IdealRight)
	return L
}
