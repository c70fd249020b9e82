package stripchart

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"gonum.org/v1/plot"
)

var nan = math.NaN()

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var widenTests = []struct {
	in, want Interval
}{
	{Interval{5, 5}, Interval{4.5, 5.5}},
	{Interval{-5, -5}, Interval{-5.5, -4.5}},
	{Interval{0, 0}, Interval{-1, 1}},
	{Interval{2, 3}, Interval{2, 3}},
}

func TestIntervalWiden(t *testing.T) {
	for i, tc := range widenTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.in.Widen(); !equal64(got.Min, tc.want.Min) || !equal64(got.Max, tc.want.Max) {
				t.Errorf("%v widened = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestAxisUpdateDegenerate(t *testing.T) {
	a := NewAxis("y")
	if err := a.update(Interval{5, 5}); err != nil {
		t.Fatal(err)
	}
	if !equal64(a.Min, 4.5) || !equal64(a.Max, 5.5) {
		t.Errorf("extent = %v, want [4.5,5.5]", a.Interval)
	}
	if len(a.Ticks()) < 2 {
		t.Errorf("only %d ticks for widened range", len(a.Ticks()))
	}
}

func TestAxisModes(t *testing.T) {
	a := NewAxis("x")
	data := Interval{0.3, 9.7}

	a.update(data)
	if a.Min != 0.3 || a.Max != 9.7 {
		t.Errorf("tight: extent %v", a.Interval)
	}

	a.SetScaleMode(AutoLoose)
	a.update(data)
	if a.Min != 0 || a.Max != 10 {
		t.Errorf("loose: extent %v, want [0,10]", a.Interval)
	}

	a.SetRange(7, 2)
	a.update(data)
	if a.Mode != Manual || a.Min != 2 || a.Max != 7 {
		t.Errorf("manual: %v", a)
	}

	// No data keeps the current extent.
	a.SetScaleMode(AutoTight)
	a.update(unsetInterval())
	if a.Min != 2 || a.Max != 7 {
		t.Errorf("no data: extent %v", a.Interval)
	}
}

func TestAxisManualTicks(t *testing.T) {
	a := NewAxis("x")
	manual := []plot.Tick{{Value: 8, Label: "eight"}, {Value: 2, Label: "two"}, {Value: 20, Label: "far"}}
	if err := a.SetTicks(manual); err != nil {
		t.Fatal(err)
	}
	a.update(Interval{0, 10})
	got := a.Ticks()
	if len(got) != 2 || got[0].Label != "two" || got[1].Label != "eight" {
		t.Errorf("manual ticks = %v", got)
	}

	// Too many ticks are rejected and the manual ticks survive.
	err := a.SetTicks(make([]plot.Tick, MaxTicks+1))
	if !errors.Is(err, ErrTooManyTicks) {
		t.Errorf("err = %v", err)
	}
	if !a.ManualTicks() || len(a.Ticks()) != 2 {
		t.Errorf("manual ticks lost after rejected update")
	}

	// Less than two ticks switch back to automatic ticks.
	a.SetTicks(manual[:1])
	a.update(Interval{0, 10})
	if a.ManualTicks() || len(a.Ticks()) != 6 {
		t.Errorf("auto ticks = %v", a.Ticks())
	}
}

func TestAxisFormats(t *testing.T) {
	a := NewAxis("x")
	a.update(Interval{0, 10})
	if got := a.Ticks()[1].Label; got != "2" {
		t.Errorf("auto label = %q", got)
	}
	if got := a.FormatCoord(3.14159265); got != "3.14159" {
		t.Errorf("auto coord = %q", got)
	}

	a.Format = "%.1f"
	a.CoordFormat = "x=%.2f"
	a.update(Interval{0, 10})
	if got := a.Ticks()[1].Label; got != "2.0" {
		t.Errorf("custom label = %q", got)
	}
	if got := a.FormatCoord(3.14159); got != "x=3.14" {
		t.Errorf("custom coord = %q", got)
	}
}

func TestParseScaleMode(t *testing.T) {
	for m := AutoTight; m <= Manual; m++ {
		if got, err := ParseScaleMode(m.String()); err != nil || got != m {
			t.Errorf("ParseScaleMode(%q) = %v, %v", m, got, err)
		}
	}
}
