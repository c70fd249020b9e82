// Command stripchart-live shows a strip chart of a live signal in a
// window. Drag with the primary button to zoom (shift: x only, ctrl: y
// only), drag with the middle button to pan, double click to return to
// autoscaling and use the secondary button to cycle the crosshair mode.
package main

import (
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/spf13/cobra"

	"github.com/vdobler/stripchart"
	"github.com/vdobler/stripchart/trace"
)

// doubleClick is the longest interval between the presses of a double
// click.
const doubleClick = 400 * time.Millisecond

type sample struct {
	t, v float64
}

func main() {
	var (
		capacity  int
		period    time.Duration
		crosshair string
		coords    bool
		lossless  bool
	)
	rootCmd := &cobra.Command{
		Use:   "stripchart-live",
		Short: "Show a live signal in a strip chart window",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := stripchart.ParseCrosshairMode(crosshair)
			if err != nil {
				return err
			}
			tr, err := trace.New(capacity)
			if err != nil {
				return err
			}
			tr.Name = "signal"
			tr.Lossless = lossless

			c := stripchart.New()
			c.Title = "Live signal"
			c.X.Label, c.X.ShowLabel = "time [s]", true
			c.Y.SetScaleMode(stripchart.AutoLoose)
			c.Crosshair = mode
			c.ShowCoords = coords
			c.Legend = stripchart.LegendTop
			if err := c.AddTrace(tr); err != nil {
				return err
			}
			v := &viewer{chart: c, trace: tr, lastPress: -doubleClick}
			c.Notify = v.notify

			samples := make(chan sample, 1024)
			w := app.NewWindow(app.Title("stripchart"))
			go produce(w, samples, period)
			go func() {
				if err := loop(w, v, samples); err != nil {
					log.Fatal(err)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}
	f := rootCmd.Flags()
	f.IntVar(&capacity, "capacity", 2000, "Number of samples kept")
	f.DurationVar(&period, "period", 10*time.Millisecond, "Sampling period")
	f.StringVar(&crosshair, "crosshair", "snap", "Crosshair mode: none, free or snap")
	f.BoolVar(&coords, "coords", true, "Show the coordinates under the pointer")
	f.BoolVar(&lossless, "lossless", true, "Draw the min/max envelope per pixel column")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// produce generates a noisy sine and hands it to the UI goroutine.
func produce(w *app.Window, samples chan<- sample, period time.Duration) {
	start := time.Now()
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for now := range ticker.C {
		t := now.Sub(start).Seconds()
		v := math.Sin(2*math.Pi*0.5*t) + 0.3*math.Sin(2*math.Pi*3.1*t) + 0.05*rand.NormFloat64()
		samples <- sample{t: t, v: v}
		w.Invalidate()
	}
}

func loop(w *app.Window, v *viewer, samples <-chan sample) error {
	var ops op.Ops
	defer v.chart.Close()
	for {
		switch ev := w.NextEvent().(type) {
		case system.DestroyEvent:
			return ev.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, ev)
		drain:
			for {
				select {
				case s := <-samples:
					v.trace.AddPoint(s.t, s.v)
				default:
					break drain
				}
			}
			v.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

// viewer routes window events to a chart and paints it.
type viewer struct {
	chart *stripchart.Chart
	trace *trace.Trace

	pressed   stripchart.Button
	lastPress time.Duration
	lastPos   f32.Point
}

func (v *viewer) notify(e stripchart.Event) {
	switch e.Kind {
	case stripchart.ContextMenu:
		v.chart.Crosshair = (v.chart.Crosshair + 1) % 3
		log.Printf("crosshair %s", v.chart.Crosshair)
	case stripchart.ZoomAll:
		log.Printf("%s", e.Kind)
	default:
		log.Printf("%s x=[%.4g,%.4g] y=[%.4g,%.4g]", e.Kind, e.X.Min, e.X.Max, e.Y.Min, e.Y.Max)
	}
}

func button(b pointer.Buttons) stripchart.Button {
	switch {
	case b.Contain(pointer.ButtonSecondary):
		return stripchart.ButtonSecondary
	case b.Contain(pointer.ButtonTertiary):
		return stripchart.ButtonMiddle
	}
	return stripchart.ButtonPrimary
}

func modifiers(m key.Modifiers) stripchart.Modifiers {
	var mod stripchart.Modifiers
	if m.Contain(key.ModShift) {
		mod |= stripchart.ModShift
	}
	if m.Contain(key.ModCtrl) {
		mod |= stripchart.ModCtrl
	}
	return mod
}

// clicks counts a primary press following another one closely in time
// and space as a double click.
func (v *viewer) clicks(e pointer.Event) int {
	d := e.Position.Sub(v.lastPos)
	if e.Time-v.lastPress < doubleClick && d.X*d.X+d.Y*d.Y < 16 {
		v.lastPress = -doubleClick
		return 2
	}
	v.lastPress, v.lastPos = e.Time, e.Position
	return 1
}

func (v *viewer) update(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: v,
			Kinds: pointer.Press | pointer.Release | pointer.Move | pointer.Drag |
				pointer.Enter | pointer.Leave | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		pe := stripchart.PointerEvent{
			X:         float64(e.Position.X),
			Y:         float64(e.Position.Y),
			Modifiers: modifiers(e.Modifiers),
			Button:    v.pressed,
		}
		switch e.Kind {
		case pointer.Press:
			pe.Button = button(e.Buttons)
			if pe.Button == stripchart.ButtonPrimary {
				pe.Clicks = v.clicks(e)
			}
			v.pressed = pe.Button
			v.chart.OnPointerDown(pe)
		case pointer.Release:
			v.pressed = 0
			v.chart.OnPointerUp(pe)
		case pointer.Move, pointer.Drag, pointer.Enter:
			v.chart.OnPointerMove(pe)
		case pointer.Leave, pointer.Cancel:
			v.chart.OnPointerLeave()
		}
	}
}

func (v *viewer) layout(gtx layout.Context) layout.Dimensions {
	v.update(gtx)
	size := gtx.Constraints.Max
	v.chart.OnResize(float64(size.X), float64(size.Y))
	img, err := v.chart.Paint()
	if err != nil {
		log.Print(err)
	}

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, v)
	if img != nil {
		paint.NewImageOp(img).Add(gtx.Ops)
		paint.PaintOp{}.Add(gtx.Ops)
	}
	area.Pop()
	return layout.Dimensions{Size: size}
}
