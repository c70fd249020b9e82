package stripchart

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Axis

// Axis is one of the two axes of a chart. It keeps the current extents,
// how they are determined and the ticks computed for them.
type Axis struct {
	// Label is the axis title.
	Label     string
	ShowLabel bool

	// Interval is the current extent of the axis. Set it through SetRange
	// to switch the axis to manual scaling.
	Interval

	// Mode selects autoscaling.
	Mode ScaleMode

	// RequestedTicks is the number of ticks aimed for. The actual number
	// may differ as tick spacing is rounded to nice values.
	RequestedTicks int

	// ShowTickLabels controls drawing of tick labels.
	ShowTickLabels bool

	// Grid are the gridlines drawn at each tick.
	Grid struct {
		Show bool
		draw.LineStyle
	}

	// Format is a printf style format for tick labels. An empty Format
	// selects a format based on the tick spacing.
	Format string

	// CoordFormat is the printf style format of coordinate readouts. An
	// empty CoordFormat selects a format based on the tick spacing.
	CoordFormat string

	ticks      []plot.Tick
	manual     bool
	autoFormat string
	autoCoord  string
}

// NewAxis returns an autoscaling axis with the default settings.
func NewAxis(label string) *Axis {
	a := &Axis{
		Label:          label,
		ShowLabel:      label != "",
		Interval:       Interval{0, 10},
		Mode:           AutoTight,
		RequestedTicks: 8,
		ShowTickLabels: true,
		autoFormat:     "%g",
		autoCoord:      "%g",
	}
	a.Grid.Show = true
	a.Grid.Color = color.Gray{0xcc}
	a.Grid.Width = 1
	return a
}

// SetRange fixes the extent of a to [min,max] and turns off autoscaling.
// Reversed bounds are swapped.
func (a *Axis) SetRange(min, max float64) {
	if min > max {
		min, max = max, min
	}
	a.Min, a.Max = min, max
	a.Mode = Manual
}

// SetScaleMode selects how the extent of a is determined.
func (a *Axis) SetScaleMode(m ScaleMode) {
	a.Mode = m
}

// SetTicks installs manual ticks. They are used verbatim until SetTicks
// is called with less than two ticks which switches back to automatic
// ticks. More than MaxTicks ticks are rejected and the current ticks kept.
func (a *Axis) SetTicks(ticks []plot.Tick) error {
	if len(ticks) < 2 {
		a.manual = false
		return nil
	}
	if len(ticks) > MaxTicks {
		return &CapacityError{Limit: MaxTicks, Requested: len(ticks), Err: ErrTooManyTicks}
	}
	a.ticks = append([]plot.Tick(nil), ticks...)
	sort.SliceStable(a.ticks, func(i, j int) bool { return a.ticks[i].Value < a.ticks[j].Value })
	a.manual = true
	return nil
}

// ManualTicks reports whether a uses ticks installed by SetTicks.
func (a *Axis) ManualTicks() bool { return a.manual }

// Ticks returns the ticks inside the extent of a.
func (a *Axis) Ticks() []plot.Tick {
	var ticks []plot.Tick
	for _, t := range a.ticks {
		if a.InRange(t.Value) {
			ticks = append(ticks, t)
		}
	}
	return ticks
}

// InRange reports whether x lies in the extent of a.
func (a *Axis) InRange(x float64) bool {
	return x >= a.Min && x <= a.Max
}

// FormatCoord formats a coordinate readout value.
func (a *Axis) FormatCoord(x float64) string {
	if a.CoordFormat != "" {
		return fmt.Sprintf(a.CoordFormat, x)
	}
	return fmt.Sprintf(a.autoCoord, x)
}

// update recomputes extents and ticks of a. data is the range of the
// applicable samples, it is ignored for manual axes. On error a keeps its
// previous extents and ticks.
func (a *Axis) update(data Interval) error {
	r := a.Interval
	if a.Mode != Manual && data.Valid() {
		r = data
	}
	r = r.Widen()

	ts, err := niceTicks(r, a.RequestedTicks, a.Mode == AutoLoose)
	if err != nil {
		Logger.Print(err)
		return err
	}
	a.Interval = ts.extent
	a.autoFormat, a.autoCoord = labelFormats(ts)
	if a.manual {
		return nil
	}

	format := a.Format
	if format == "" {
		format = a.autoFormat
	}
	a.ticks = a.ticks[:0]
	for _, v := range ts.values {
		a.ticks = append(a.ticks, plot.Tick{Value: v, Label: fmt.Sprintf(format, v)})
	}
	return nil
}

func (a *Axis) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%g:%g] %s %d ticks %q",
		a.Min, a.Max, a.Mode, len(a.ticks), a.Label)
}

// ----------------------------------------------------------------------------
// ScaleMode

// ScaleMode selects how the extent of an axis is determined.
type ScaleMode int

const (
	// AutoTight uses the exact data range.
	AutoTight ScaleMode = iota
	// AutoLoose widens the data range outwards to the next ticks.
	AutoLoose
	// Manual keeps the range set by SetRange.
	Manual
)

var scaleModeNames = []string{"tight", "loose", "manual"}

// String returns the name of m.
func (m ScaleMode) String() string {
	if m < 0 || int(m) >= len(scaleModeNames) {
		return fmt.Sprintf("ScaleMode(%d)", int(m))
	}
	return scaleModeNames[m]
}

// ParseScaleMode is the inverse of ScaleMode.String.
func ParseScaleMode(s string) (ScaleMode, error) {
	for i, n := range scaleModeNames {
		if n == s {
			return ScaleMode(i), nil
		}
	}
	return AutoTight, fmt.Errorf("unknown scale mode %q", s)
}

// ----------------------------------------------------------------------------
// Intervall

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges. NaN edges are equal.
func (i Interval) Equal(j Interval) bool {
	same := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// Valid reports whether both edges are finite.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max) &&
		!math.IsInf(i.Min, 0) && !math.IsInf(i.Max, 0)
}

// Span is Max-Min.
func (i Interval) Span() float64 { return i.Max - i.Min }

// Contains reports whether x lies in i.
func (i Interval) Contains(x float64) bool { return x >= i.Min && x <= i.Max }

// Widen turns a degenerate interval [v:v] into a usable one by moving each
// edge outwards by 10% of its magnitude, or to [-1:1] if v is 0.
// Non-degenerate intervals are returned unchanged.
func (i Interval) Widen() Interval {
	if i.Min != i.Max {
		return i
	}
	if i.Min == 0 {
		return Interval{-1, 1}
	}
	return Interval{i.Min - 0.1*math.Abs(i.Min), i.Max + 0.1*math.Abs(i.Max)}
}
