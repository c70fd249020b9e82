package stripchart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// MaxTicks is the maximum number of major ticks on one axis.
const MaxTicks = 50

// niceSteps are the allowed mantissas of the tick spacing.
var niceSteps = []float64{1, 2, 2.5, 5, 10}

// niceDelta returns a tick spacing of 1, 2, 2.5, 5 or 10 times a power of
// ten which is not smaller than span/(n-1).
func niceDelta(span float64, n int) float64 {
	if n < 2 {
		n = 2
	}
	raw := span / float64(n-1)
	exp := math.Floor(math.Log10(raw))
	pow := math.Pow(10, exp)
	mant := raw / pow
	for _, s := range niceSteps {
		if mant <= s*(1+1e-9) {
			return s * pow
		}
	}
	return 10 * pow
}

// tickSet is the outcome of a tick computation.
type tickSet struct {
	values []float64
	delta  float64
	extent Interval
}

// niceTicks computes ticks for r with about n ticks. In loose mode the
// returned extent is widened to the first and last tick, otherwise it is
// r and all ticks lie inside r. r must not be degenerate.
func niceTicks(r Interval, n int, loose bool) (tickSet, error) {
	d := niceDelta(r.Span(), n)
	const eps = 1e-9

	var first float64
	var count int
	if loose {
		first = math.Floor(r.Min/d+eps) * d
		count = int(math.Ceil((r.Max-first)/d-eps)) + 1
	} else {
		first = math.Ceil(r.Min/d-eps) * d
		count = int(math.Floor((r.Max-first)/d+eps)) + 1
	}
	if count > MaxTicks {
		return tickSet{}, &CapacityError{Limit: MaxTicks, Requested: count, Err: ErrTooManyTicks}
	}
	if count < 0 {
		count = 0
	}

	ts := tickSet{values: make([]float64, count), delta: d, extent: r}
	for i := range ts.values {
		v := first + float64(i)*d
		if math.Abs(v/d) < 0.5 {
			v = 0
		}
		if !loose {
			v = math.Max(r.Min, math.Min(r.Max, v))
		}
		ts.values[i] = v
	}
	if loose && count > 0 {
		ts.extent = Interval{ts.values[0], ts.values[count-1]}
	}
	return ts, nil
}

// labelFormats returns the printf formats for tick labels and for
// coordinate readouts suitable for ts.
func labelFormats(ts tickSet) (tick, coord string) {
	lo, hi := ts.extent.Min, ts.extent.Max
	if len(ts.values) > 0 {
		lo, hi = ts.values[0], ts.values[len(ts.values)-1]
	}
	sigs := 4
	if m := math.Max(math.Abs(lo), math.Abs(hi)); m > 0 && ts.delta > 0 {
		s := int(math.Ceil(math.Log10(m)) - math.Floor(math.Log10(ts.delta)) + 2)
		if s > sigs {
			sigs = s
		}
	}
	if sigs > 15 {
		sigs = 15
	}
	return fmt.Sprintf("%%.%dg", sigs), fmt.Sprintf("%%.%dg", sigs+2)
}

// ----------------------------------------------------------------------------
// NiceTicks

// NiceTicks is a plot.Ticker placing ticks at multiples of 1, 2, 2.5 or 5
// times a power of ten inside the given range.
type NiceTicks struct {
	// N is the requested number of ticks.
	N int

	// Format is the printf style label format. Empty selects a format
	// based on the tick spacing.
	Format string
}

var _ plot.Ticker = NiceTicks{}

// Ticks implements plot.Ticker.
func (nt NiceTicks) Ticks(min, max float64) []plot.Tick {
	n := nt.N
	if n == 0 {
		n = 8
	}
	if min > max {
		min, max = max, min
	}
	ts, err := niceTicks(Interval{min, max}.Widen(), n, false)
	if err != nil {
		Logger.Print(err)
		return nil
	}
	format := nt.Format
	if format == "" {
		format, _ = labelFormats(ts)
	}
	ticks := make([]plot.Tick, len(ts.values))
	for i, v := range ts.values {
		ticks[i] = plot.Tick{Value: v, Label: fmt.Sprintf(format, v)}
	}
	return ticks
}
