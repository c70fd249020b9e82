package geom

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// HRule

// HRule draws horizontal reference (or rule) lines across the panel at the
// given Y values. Values outside the data range of the panel are skipped.
type HRule struct {
	Y     []float64
	Style draw.LineStyle
}

// Draw implements drawing of h.
func (h HRule) Draw(panel Panel) {
	if h.Style.Color == nil || h.Style.Width <= 0 {
		return
	}
	canvas := panel.DrawArea()
	for _, y := range h.Y {
		cy, ok := panel.MapY(y)
		if !ok {
			continue
		}
		canvas.StrokeLine2(h.Style, canvas.Min.X, cy, canvas.Max.X, cy)
	}
}

// ----------------------------------------------------------------------------
// VRule

// VRule draws vertical reference (or rule) lines across the panel at the
// given X values. Values outside the data range of the panel are skipped.
type VRule struct {
	X     []float64
	Style draw.LineStyle
}

// Draw implements drawing of v.
func (v VRule) Draw(panel Panel) {
	if v.Style.Color == nil || v.Style.Width <= 0 {
		return
	}
	canvas := panel.DrawArea()
	for _, x := range v.X {
		cx, ok := panel.MapX(x)
		if !ok {
			continue
		}
		canvas.StrokeLine2(v.Style, cx, canvas.Min.Y, cx, canvas.Max.Y)
	}
}

// ----------------------------------------------------------------------------
// Box

// Box draws a rectangle given in canvas coordinates. The border is drawn
// inside the rectangle.
type Box struct {
	Rect vg.Rectangle
	BoxStyle
}

// Draw draws b onto canvas, clipped to the canvas.
func (b Box) Draw(canvas draw.Canvas) {
	rect := clipRect(b.Rect, canvas)
	if rect.Max.X <= rect.Min.X || rect.Max.Y <= rect.Min.Y {
		return
	}
	if b.Fill != nil {
		canvas.SetColor(b.Fill)
		canvas.Fill(rect.Path())
	}
	border := b.Border
	if border.Color == nil || border.Width <= 0 {
		return
	}
	w := 0.499 * border.Width
	rect.Min.X += w
	rect.Min.Y += w
	rect.Max.X -= w
	rect.Max.Y -= w
	canvas.SetColor(border.Color)
	canvas.SetLineWidth(border.Width)
	canvas.SetLineDash(border.Dashes, border.DashOffs)
	canvas.Stroke(rect.Path())
}

// BoxStyle combines a line style for the border with a fill color for the
// interior of a geom.
type BoxStyle struct {
	Fill   color.Color
	Border draw.LineStyle
}
