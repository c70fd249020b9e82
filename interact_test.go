package stripchart

import "testing"

// zoomChart returns a chart whose plot area is [0,400]x[0,400] with an
// identity x and flipped y transform.
func zoomChart() (*Chart, *[]Event) {
	c := New()
	c.layout.Area = Rect{Left: 0, Right: 400, Top: 0, Bottom: 400}
	c.trans = Transform{X: Affine{M: 1, B: 0}, Y: Affine{M: -1, B: 400}}
	var events []Event
	c.Notify = func(e Event) { events = append(events, e) }
	return c, &events
}

func primary(x, y float64) PointerEvent {
	return PointerEvent{X: x, Y: y, Button: ButtonPrimary}
}

func TestZoomDrag(t *testing.T) {
	c, events := zoomChart()
	c.OnPointerDown(primary(100, 100))
	if c.State() != ZoomDragging {
		t.Fatalf("state = %s after press", c.State())
	}
	c.OnPointerMove(primary(250, 200))
	if r, ok := c.ZoomRect(); !ok || r != (Rect{100, 250, 100, 200}) {
		t.Errorf("zoom rect = %+v %t", r, ok)
	}
	c.OnPointerUp(primary(300, 250))

	if c.State() != Idle {
		t.Errorf("state = %s after release", c.State())
	}
	if c.X.Mode != Manual || c.Y.Mode != Manual {
		t.Errorf("modes %s/%s, want manual", c.X.Mode, c.Y.Mode)
	}
	if !c.X.Interval.Equal(Interval{100, 300}) || !c.Y.Interval.Equal(Interval{150, 300}) {
		t.Errorf("zoomed to x=%v y=%v", c.X.Interval, c.Y.Interval)
	}
	if len(*events) != 1 || (*events)[0].Kind != ZoomIn {
		t.Fatalf("events %v", *events)
	}
	if e := (*events)[0]; !e.X.Equal(Interval{100, 300}) || !e.Y.Equal(Interval{150, 300}) {
		t.Errorf("event extents %v %v", e.X, e.Y)
	}
}

func TestZoomDragClampedToArea(t *testing.T) {
	c, _ := zoomChart()
	c.layout.Area = Rect{Left: 50, Right: 350, Top: 50, Bottom: 350}
	c.OnPointerDown(primary(300, 300))
	c.OnPointerUp(primary(500, -20))
	if !c.X.Interval.Equal(Interval{300, 350}) || !c.Y.Interval.Equal(Interval{100, 350}) {
		t.Errorf("zoomed to x=%v y=%v", c.X.Interval, c.Y.Interval)
	}
}

func TestConstrainedZoom(t *testing.T) {
	for _, tc := range []struct {
		name string
		mod  Modifiers
		x, y Interval
	}{
		{"horizontal", ModShift, Interval{100, 300}, Interval{0, 10}},
		{"horizontal-wins", ModShift | ModCtrl, Interval{100, 300}, Interval{0, 10}},
		{"vertical", ModCtrl, Interval{0, 10}, Interval{150, 300}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, events := zoomChart()
			c.OnResize(400, 400)
			down := primary(100, 100)
			down.Modifiers = tc.mod
			c.OnPointerDown(down)
			up := primary(300, 250)
			up.Modifiers = tc.mod
			c.OnPointerUp(up)

			if !c.X.Interval.Equal(tc.x) || !c.Y.Interval.Equal(tc.y) {
				t.Errorf("zoomed to x=%v y=%v", c.X.Interval, c.Y.Interval)
			}
			if len(*events) != 0 {
				t.Errorf("notified before relayout: %v", *events)
			}
			if _, err := c.Layout(); err != nil {
				t.Fatalf("Layout: %v", err)
			}
			if len(*events) != 1 || (*events)[0].Kind != ZoomIn {
				t.Errorf("events after relayout %v", *events)
			}
			c.Layout()
			if len(*events) != 1 {
				t.Errorf("pending zoom notified twice")
			}
		})
	}
}

func TestZoomZeroExtent(t *testing.T) {
	c, events := zoomChart()
	c.OnPointerDown(primary(100, 100))
	c.OnPointerUp(primary(100, 100))
	if c.X.Mode != AutoTight || len(*events) != 0 {
		t.Errorf("empty zoom changed chart: mode %s events %v", c.X.Mode, *events)
	}

	c.OnPointerDown(PointerEvent{X: 100, Y: 100, Button: ButtonPrimary, Modifiers: ModShift})
	c.OnPointerUp(PointerEvent{X: 100, Y: 300, Button: ButtonPrimary, Modifiers: ModShift})
	if c.X.Mode != AutoTight || c.pendingZoom {
		t.Errorf("empty horizontal zoom changed chart")
	}
}

func TestPressOutsideArea(t *testing.T) {
	c, _ := zoomChart()
	c.layout.Area = Rect{Left: 50, Right: 350, Top: 50, Bottom: 350}
	c.OnPointerDown(primary(10, 10))
	if c.State() != Idle {
		t.Errorf("press outside area started %s", c.State())
	}
	c.OnPointerDown(PointerEvent{X: 10, Y: 10, Button: ButtonMiddle})
	if c.State() != Idle {
		t.Errorf("middle press outside area started %s", c.State())
	}
}

func TestDoubleClick(t *testing.T) {
	c, events := zoomChart()
	c.X.SetRange(1, 2)
	c.Y.SetRange(3, 4)
	c.OnPointerDown(PointerEvent{X: 5, Y: 5, Button: ButtonPrimary, Clicks: 2})
	if c.X.Mode != AutoTight || c.Y.Mode != AutoTight {
		t.Errorf("modes %s/%s after double click", c.X.Mode, c.Y.Mode)
	}
	if c.State() != Idle {
		t.Errorf("double click started %s", c.State())
	}
	if len(*events) != 1 || (*events)[0].Kind != ZoomAll {
		t.Errorf("events %v", *events)
	}
}

func TestSecondaryButton(t *testing.T) {
	c, events := zoomChart()
	c.OnPointerDown(primary(100, 100))
	c.OnPointerMove(primary(200, 200))
	c.OnPointerDown(PointerEvent{X: 200, Y: 200, Button: ButtonSecondary})
	if c.State() != Idle {
		t.Errorf("secondary press did not cancel zoom")
	}
	c.OnPointerUp(primary(200, 200))
	if c.X.Mode != AutoTight || len(*events) != 0 {
		t.Errorf("cancelled zoom applied: mode %s events %v", c.X.Mode, *events)
	}

	c.OnPointerDown(PointerEvent{X: 42, Y: 17, Button: ButtonSecondary})
	if len(*events) != 1 {
		t.Fatalf("events %v", *events)
	}
	if e := (*events)[0]; e.Kind != ContextMenu || e.PX != 42 || e.PY != 17 {
		t.Errorf("got %+v", e)
	}
}

func TestPan(t *testing.T) {
	c, events := zoomChart()
	c.X.SetRange(0, 100)
	c.Y.SetRange(0, 100)

	c.OnPointerDown(PointerEvent{X: 200, Y: 200, Button: ButtonMiddle})
	if c.State() != PanDragging {
		t.Fatalf("state = %s", c.State())
	}
	c.OnPointerMove(PointerEvent{X: 205, Y: 195, Button: ButtonMiddle})
	c.OnPointerMove(PointerEvent{X: 210, Y: 190, Button: ButtonMiddle})
	if !c.X.Interval.Equal(Interval{-10, 90}) || !c.Y.Interval.Equal(Interval{-10, 90}) {
		t.Errorf("panned to x=%v y=%v", c.X.Interval, c.Y.Interval)
	}
	if len(*events) != 2 || (*events)[1].Kind != Pan {
		t.Errorf("events %v", *events)
	}
	c.OnPointerUp(PointerEvent{X: 210, Y: 190, Button: ButtonMiddle})
	if c.State() != Idle {
		t.Errorf("state = %s after release", c.State())
	}
	c.OnPointerMove(PointerEvent{X: 300, Y: 300})
	if !c.X.Interval.Equal(Interval{-10, 90}) {
		t.Errorf("moved after pan ended: %v", c.X.Interval)
	}
}

func TestEventKindString(t *testing.T) {
	for k, want := range map[EventKind]string{
		ZoomIn: "zoom-in", ZoomAll: "zoom-all", Pan: "pan", ContextMenu: "context-menu", 9: "EventKind(9)",
	} {
		if got := k.String(); got != want {
			t.Errorf("%d: got %q, want %q", int(k), got, want)
		}
	}
}
