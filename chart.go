package stripchart

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/stripchart/trace"
)

// MaxTraces is the maximum number of traces of one chart.
const MaxTraces = 100

// ----------------------------------------------------------------------------
// Chart

// Chart is one interactive strip chart. It owns its axes, plot area and
// interaction state and references the traces attached to it.
//
// A Chart is not safe for concurrent use: feed data, deliver events and
// draw from one goroutine.
type Chart struct {
	Title     string
	ShowTitle bool

	X, Y *Axis

	Margins Margins

	Legend LegendPosition

	Crosshair  CrosshairMode
	ShowCoords bool

	// Antialias is forwarded to surfaces implementing SetAntialias(bool).
	Antialias bool

	Style Style

	// Notify receives zoom, pan and context menu events. It may be nil.
	Notify func(Event)

	traces []*trace.Trace
	cursor *Cursor

	width, height float64
	layout        Layout
	trans         Transform
	legend        legendLayout

	ix          interaction
	pendingZoom bool
	snap        snapIndex

	buffer     *vgimg.Canvas
	bufferSize Size
}

// New returns an empty chart with the default style.
func New() *Chart {
	return &Chart{
		ShowTitle: true,
		X:         NewAxis(""),
		Y:         NewAxis(""),
		Antialias: true,
		Style:     DefaultStyle(10),
	}
}

// AddTrace attaches t to c. At most MaxTraces traces can be attached.
func (c *Chart) AddTrace(t *trace.Trace) error {
	if len(c.traces) >= MaxTraces {
		err := &CapacityError{Limit: MaxTraces, Requested: len(c.traces) + 1, Err: ErrTooManyTraces}
		Logger.Print(err)
		return err
	}
	c.traces = append(c.traces, t)
	return nil
}

// RemoveTrace detaches t from c. The trace itself is left untouched.
func (c *Chart) RemoveTrace(t *trace.Trace) error {
	for i, u := range c.traces {
		if u == t {
			c.traces = append(c.traces[:i], c.traces[i+1:]...)
			return nil
		}
	}
	return ErrUnknownTrace
}

// Traces returns the attached traces in drawing order.
func (c *Chart) Traces() []*trace.Trace {
	return append([]*trace.Trace(nil), c.traces...)
}

// ClearData clears all attached traces.
func (c *Chart) ClearData() {
	for _, t := range c.traces {
		t.Clear()
	}
}

// OnResize sets the size of the chart's surface in device pixels.
func (c *Chart) OnResize(w, h float64) {
	c.width, c.height = w, h
}

// Size returns the current surface size.
func (c *Chart) Size() (w, h float64) { return c.width, c.height }

// Transform returns the transform of the last layout pass.
func (c *Chart) Transform() Transform { return c.trans }

// Layout runs a layout pass for the current size and returns it. Axis
// extents and ticks are updated from the traces.
func (c *Chart) Layout() (Layout, error) {
	err := c.relayout()
	return c.layout, err
}

// IdealMargins runs the automatic layout without drawing and returns the
// left and right margins it would use. Charts stacked on a shared time
// axis can be aligned by setting the largest of these as fixed pixel
// margins on all of them.
func (c *Chart) IdealMargins() (left, right float64, err error) {
	if c.width <= 0 || c.height <= 0 {
		return 0, 0, ErrNoSurface
	}
	c.updateAxes()
	in := c.layoutInput()
	in.margins = Margins{Mode: MarginAuto}
	L := negotiate(in)
	return L.IdealLeft, L.IdealRight, nil
}

// dataRanges scans the traces for the extents of autoscaled axes. If only
// one axis autoscales, only samples inside the other axis' range count.
func (c *Chart) dataRanges() (xr, yr Interval) {
	xr, yr = unsetInterval(), unsetInterval()
	xAuto, yAuto := c.X.Mode != Manual, c.Y.Mode != Manual
	if !xAuto && !yAuto {
		return xr, yr
	}
	for _, t := range c.traces {
		for k := 0; k < t.Len(); k++ {
			x, y := t.XY(k)
			if xAuto && (yAuto || c.Y.InRange(y)) {
				xr.Update(x)
			}
			if yAuto && (xAuto || c.X.InRange(x)) {
				yr.Update(y)
			}
		}
	}
	return xr, yr
}

// updateAxes recomputes extents and ticks of both axes. An axis which
// fails keeps its previous state; the first error is returned.
func (c *Chart) updateAxes() error {
	xr, yr := c.dataRanges()
	errX := c.X.update(xr)
	errY := c.Y.update(yr)
	if errX != nil {
		return errX
	}
	return errY
}

func tickLabels(a *Axis) []string {
	if !a.ShowTickLabels {
		return nil
	}
	ticks := a.Ticks()
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		labels[i] = t.Label
	}
	return labels
}

func (c *Chart) layoutInput() layoutInput {
	in := layoutInput{
		width:   c.width,
		height:  c.height,
		title:   c.Title,
		xLabel:  c.X.Label,
		yLabel:  c.Y.Label,
		xTicks:  tickLabels(c.X),
		yTicks:  tickLabels(c.Y),
		legend:  c.Legend,
		margins: c.Margins,
	}
	if c.ShowTitle && c.Title != "" {
		in.titleStyle = c.Style.Title
	}
	if c.X.ShowLabel && c.X.Label != "" {
		in.xLabelStyle = c.Style.XAxis.Label
	}
	if c.Y.ShowLabel && c.Y.Label != "" {
		in.yLabelStyle = c.Style.YAxis.Label
	}
	in.xTickStyle = c.Style.XAxis.TickLabel
	in.yTickStyle = c.Style.YAxis.TickLabel

	c.legend = layoutLegend(c.Legend, c.traces, c.Style.Legend.Label, c.width)
	in.legendSize = c.legend.size
	if len(c.legend.entries) == 0 {
		in.legend = LegendNone
	}
	return in
}

// relayout updates the axes, negotiates the layout and derives the
// transform. Pending notifications of constrained zooms are delivered
// with the resulting extents.
func (c *Chart) relayout() error {
	if c.width <= 0 || c.height <= 0 {
		return ErrNoSurface
	}
	err := c.updateAxes()
	c.layout = negotiate(c.layoutInput())
	c.trans = NewTransform(c.layout.Area, c.X.Interval, c.Y.Interval)
	if c.pendingZoom {
		c.pendingZoom = false
		c.notify(Event{Kind: ZoomIn, X: c.X.Interval, Y: c.Y.Interval})
	}
	return err
}

func (c *Chart) notify(e Event) {
	if c.Notify != nil {
		c.Notify(e)
	}
}

// ----------------------------------------------------------------------------
// Surfaces

// Draw renders the chart without the interactive overlay into dc. The
// layout is computed for the size of dc; the on-screen layout used by the
// pointer handlers is left unchanged. This is the export entry point.
func (c *Chart) Draw(dc draw.Canvas) error {
	saved := struct {
		w, h   float64
		layout Layout
		trans  Transform
		legend legendLayout
	}{c.width, c.height, c.layout, c.trans, c.legend}
	defer func() {
		c.width, c.height = saved.w, saved.h
		c.layout, c.trans, c.legend = saved.layout, saved.trans, saved.legend
	}()

	c.width = float64(dc.Max.X - dc.Min.X)
	c.height = float64(dc.Max.Y - dc.Min.Y)
	err := c.relayout()
	if err == ErrNoSurface {
		return err
	}
	c.render(c.panel(dc))
	return err
}

// DrawOverlay renders the zoom box, cursor, crosshair and coordinate
// readout for the current on-screen layout into dc.
func (c *Chart) DrawOverlay(dc draw.Canvas) {
	c.renderOverlay(c.panel(dc))
}

// Paint lays out and renders the chart with its overlay into the buffered
// raster surface and returns it. The surface is (re)allocated when the
// size changed and stays valid until the next Paint or Close.
func (c *Chart) Paint() (image.Image, error) {
	if c.width <= 0 || c.height <= 0 {
		return nil, ErrNoSurface
	}
	size := Size{W: math.Ceil(c.width), H: math.Ceil(c.height)}
	if c.buffer == nil || size != c.bufferSize || !opaque(c.Style.Background) {
		c.buffer = vgimg.NewWith(
			vgimg.UseWH(vg.Length(size.W), vg.Length(size.H)),
			vgimg.UseDPI(72),
		)
		c.bufferSize = size
	}
	dc := draw.New(c.buffer)
	err := c.relayout()
	p := c.panel(dc)
	c.render(p)
	c.renderOverlay(p)
	return c.buffer.Image(), err
}

// Close releases the buffered surface and the snap index. The chart may
// be painted again afterwards.
func (c *Chart) Close() {
	c.buffer = nil
	c.bufferSize = Size{}
	c.snap = snapIndex{}
}

func (c *Chart) panel(dc draw.Canvas) *Panel {
	if aa, ok := dc.Canvas.(interface{ SetAntialias(bool) }); ok {
		aa.SetAntialias(c.Antialias)
	}
	return &Panel{Surface: dc, Area: c.layout.Area, Trans: c.trans, X: c.X, Y: c.Y}
}

func opaque(col color.Color) bool {
	if col == nil {
		return false
	}
	_, _, _, a := col.RGBA()
	return a == 0xffff
}
