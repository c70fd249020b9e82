package stripchart

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Panel

// A Panel is the plot area of a chart on one drawing surface. It maps data
// coordinates through the chart's transform to device pixels and device
// pixels to points of the surface canvas.
//
// Device pixels have their origin in the top left corner of the surface
// while vg canvases have theirs in the bottom left.
type Panel struct {
	// Surface is the whole drawing surface.
	Surface draw.Canvas

	// Area is the plot area in device pixels.
	Area Rect

	Trans Transform
	X, Y  *Axis
}

// InRangeXY reports whether (x,y) lies within the axes' extents.
func (p *Panel) InRangeXY(x, y float64) bool {
	return p.X.InRange(x) && p.Y.InRange(y)
}

// MapXY maps the data coordinate (x,y) to a canvas point.
func (p *Panel) MapXY(x, y float64) (vg.Point, bool) {
	px, py := p.Trans.Pixel(x, y)
	return p.Point(px, py), p.InRangeXY(x, y)
}

// MapX maps the data coordinate x to the canvas.
func (p *Panel) MapX(x float64) (vg.Length, bool) {
	return p.Surface.Min.X + vg.Length(p.Trans.X.Map(x)), p.X.InRange(x)
}

// MapY maps the data coordinate y to the canvas.
func (p *Panel) MapY(y float64) (vg.Length, bool) {
	return p.Surface.Max.Y - vg.Length(p.Trans.Y.Map(y)), p.Y.InRange(y)
}

// Point converts the device pixel (px,py) to a canvas point.
func (p *Panel) Point(px, py float64) vg.Point {
	return vg.Point{
		X: p.Surface.Min.X + vg.Length(px),
		Y: p.Surface.Max.Y - vg.Length(py),
	}
}

// Rectangle converts a rectangle in device pixels to a canvas rectangle.
func (p *Panel) Rectangle(r Rect) vg.Rectangle {
	return vg.Rectangle{
		Min: p.Point(r.Left, r.Bottom),
		Max: p.Point(r.Right, r.Top),
	}
}

// DrawArea returns the surface restricted to the plot area.
func (p *Panel) DrawArea() draw.Canvas {
	return draw.Canvas{
		Canvas:    p.Surface.Canvas,
		Rectangle: p.Rectangle(p.Area),
	}
}
