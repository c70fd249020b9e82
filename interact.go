package stripchart

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ----------------------------------------------------------------------------
// Pointer events

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonMiddle
	ButtonSecondary
)

// Modifiers are the keyboard modifiers held during a pointer event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
)

// PointerEvent is a pointer event in device pixels.
type PointerEvent struct {
	X, Y      float64
	Button    Button
	Modifiers Modifiers

	// Clicks is 2 for the press of a double click.
	Clicks int
}

// ----------------------------------------------------------------------------
// Notifications

// EventKind is the kind of a notification.
type EventKind int

const (
	// ZoomIn reports new extents after a zoom drag.
	ZoomIn EventKind = iota
	// ZoomAll reports the return to autoscaling after a double click.
	ZoomAll
	// Pan reports new extents while panning.
	Pan
	// ContextMenu asks the host to open its context menu at PX, PY.
	ContextMenu
)

func (k EventKind) String() string {
	switch k {
	case ZoomIn:
		return "zoom-in"
	case ZoomAll:
		return "zoom-all"
	case Pan:
		return "pan"
	case ContextMenu:
		return "context-menu"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a notification raised by the chart.
type Event struct {
	Kind   EventKind
	X, Y   Interval
	PX, PY float64
}

// ----------------------------------------------------------------------------
// State machine

// State is the state of pointer interaction.
type State int

const (
	Idle State = iota
	ZoomDragging
	PanDragging
)

func (s State) String() string {
	return [...]string{"idle", "zoom-dragging", "pan-dragging"}[s]
}

type interaction struct {
	state State

	anchorX, anchorY float64
	curX, curY       float64
	hZoom, vZoom     bool

	panX, panY Interval
	panTrans   Transform

	// Last known pointer position and whether the pointer is over the chart.
	pointerX, pointerY float64
	inside             bool
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// State returns the interaction state.
func (c *Chart) State() State { return c.ix.state }

func (c *Chart) setConstraint(m Modifiers) {
	c.ix.hZoom = m&ModShift != 0
	c.ix.vZoom = !c.ix.hZoom && m&ModCtrl != 0
}

// OnPointerDown handles a button press.
func (c *Chart) OnPointerDown(ev PointerEvent) {
	c.trackPointer(ev)
	area := c.layout.Area

	if ev.Clicks >= 2 {
		c.X.SetScaleMode(AutoTight)
		c.Y.SetScaleMode(AutoTight)
		c.notify(Event{Kind: ZoomAll})
		return
	}

	switch ev.Button {
	case ButtonPrimary:
		if !area.Contains(ev.X, ev.Y, 0) {
			return
		}
		c.ix.state = ZoomDragging
		c.ix.anchorX, c.ix.anchorY = ev.X, ev.Y
		c.ix.curX, c.ix.curY = ev.X, ev.Y
		c.setConstraint(ev.Modifiers)

	case ButtonSecondary:
		if c.ix.state == ZoomDragging {
			c.ix.state = Idle
			return
		}
		c.notify(Event{Kind: ContextMenu, PX: ev.X, PY: ev.Y})

	case ButtonMiddle:
		if c.ix.state == ZoomDragging {
			c.ix.state = Idle
		}
		if !area.Contains(ev.X, ev.Y, 0) {
			return
		}
		c.ix.state = PanDragging
		c.ix.anchorX, c.ix.anchorY = ev.X, ev.Y
		c.ix.panX, c.ix.panY = c.X.Interval, c.Y.Interval
		c.ix.panTrans = c.trans
	}
}

// OnPointerMove handles pointer motion.
func (c *Chart) OnPointerMove(ev PointerEvent) {
	c.trackPointer(ev)
	switch c.ix.state {
	case ZoomDragging:
		c.ix.curX, c.ix.curY = ev.X, ev.Y
		c.setConstraint(ev.Modifiers)

	case PanDragging:
		t := c.ix.panTrans
		dx := (ev.X - c.ix.anchorX) / t.X.M
		dy := (ev.Y - c.ix.anchorY) / t.Y.M
		c.X.SetRange(c.ix.panX.Min-dx, c.ix.panX.Max-dx)
		c.Y.SetRange(c.ix.panY.Min-dy, c.ix.panY.Max-dy)
		c.notify(Event{Kind: Pan, X: c.X.Interval, Y: c.Y.Interval})
	}
}

// OnPointerUp handles a button release.
func (c *Chart) OnPointerUp(ev PointerEvent) {
	c.trackPointer(ev)
	switch {
	case ev.Button == ButtonPrimary && c.ix.state == ZoomDragging:
		c.ix.curX, c.ix.curY = ev.X, ev.Y
		if ev.Modifiers != 0 {
			c.setConstraint(ev.Modifiers)
		}
		r, _ := c.ZoomRect()
		c.ix.state = Idle
		c.zoomTo(r)

	case ev.Button == ButtonMiddle && c.ix.state == PanDragging:
		c.ix.state = Idle
	}
}

// OnPointerLeave handles the pointer leaving the chart.
func (c *Chart) OnPointerLeave() {
	c.ix.inside = false
}

func (c *Chart) trackPointer(ev PointerEvent) {
	c.ix.pointerX, c.ix.pointerY = ev.X, ev.Y
	c.ix.inside = true
}

// ZoomRect returns the rubber band rectangle of a zoom drag in device
// pixels, clamped to the plot area.
func (c *Chart) ZoomRect() (Rect, bool) {
	if c.ix.state != ZoomDragging {
		return Rect{}, false
	}
	a := c.layout.Area
	x0 := clamp(c.ix.anchorX, a.Left, a.Right)
	x1 := clamp(c.ix.curX, a.Left, a.Right)
	y0 := clamp(c.ix.anchorY, a.Top, a.Bottom)
	y1 := clamp(c.ix.curY, a.Top, a.Bottom)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	r := Rect{Left: x0, Right: x1, Top: y0, Bottom: y1}
	switch {
	case c.ix.hZoom:
		r.Top, r.Bottom = a.Top, a.Bottom
	case c.ix.vZoom:
		r.Left, r.Right = a.Left, a.Right
	}
	return r, true
}

// zoomTo sets the axes to the data range covered by r.
func (c *Chart) zoomTo(r Rect) {
	xmin, ymax := c.trans.Data(r.Left, r.Top)
	xmax, ymin := c.trans.Data(r.Right, r.Bottom)
	switch {
	case c.ix.hZoom:
		if r.Width() == 0 {
			return
		}
		c.X.SetRange(xmin, xmax)
		c.pendingZoom = true
	case c.ix.vZoom:
		if r.Height() == 0 {
			return
		}
		c.Y.SetRange(ymin, ymax)
		c.pendingZoom = true
	default:
		if r.Width() == 0 || r.Height() == 0 {
			return
		}
		c.X.SetRange(xmin, xmax)
		c.Y.SetRange(ymin, ymax)
		c.notify(Event{Kind: ZoomIn, X: c.X.Interval, Y: c.Y.Interval})
	}
}
