package stripchart

// Affine is the linear map p = M*v + B between data values v and device
// pixels p along one axis.
type Affine struct {
	M, B float64
}

// Map maps the data value v to pixels.
func (a Affine) Map(v float64) float64 { return a.M*v + a.B }

// Invert maps the pixel position p back to a data value.
func (a Affine) Invert(p float64) float64 { return (p - a.B) / a.M }

// Transform maps data coordinates to device pixels of a plot area and
// back. Device pixels have their origin top left with y growing
// downwards, so larger data y map to smaller pixel y.
type Transform struct {
	X, Y Affine
}

// NewTransform maps the extents x and y onto area.
func NewTransform(area Rect, x, y Interval) Transform {
	var t Transform
	t.X.M = (area.Right - area.Left) / (x.Max - x.Min)
	t.X.B = area.Left - t.X.M*x.Min
	t.Y.M = (area.Top - area.Bottom) / (y.Max - y.Min)
	t.Y.B = area.Bottom - t.Y.M*y.Min
	return t
}

// Pixel maps the data point (x,y) to device pixels.
func (t Transform) Pixel(x, y float64) (px, py float64) {
	return t.X.Map(x), t.Y.Map(y)
}

// Data maps the device pixel (px,py) to data coordinates.
func (t Transform) Data(px, py float64) (x, y float64) {
	return t.X.Invert(px), t.Y.Invert(py)
}

// Rect is a rectangle in device pixels.
type Rect struct {
	Left, Right, Top, Bottom float64
}

// Width of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Contains reports whether (x,y) lies inside r grown by pad on each side.
func (r Rect) Contains(x, y, pad float64) bool {
	return x >= r.Left-pad && x <= r.Right+pad && y >= r.Top-pad && y <= r.Bottom+pad
}
