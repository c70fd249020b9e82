// Package trace provides the sample store of a strip chart: a fixed
// capacity ring buffer of (x,y) pairs together with the visual attributes
// of the series.
//
// A Trace either owns its backing arrays (New) or borrows arrays managed
// by the caller (NewWithData, SetData). Owned storage may grow on Resize,
// borrowed storage is never reallocated or written by the trace.
//
// A Trace is not safe for concurrent use.
package trace

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// MaxCapacity is the largest capacity a trace accepts.
const MaxCapacity = 1 << 28

var (
	// ErrAlloc is wrapped by every AllocError.
	ErrAlloc = errors.New("trace: cannot allocate sample storage")

	// ErrBorrowed is returned when sample data would have to be written
	// into storage owned by the caller.
	ErrBorrowed = errors.New("trace: storage is borrowed")

	// ErrBorrowedCapacity is returned when a borrowed trace is resized
	// beyond the length of the caller's arrays.
	ErrBorrowedCapacity = errors.New("trace: capacity exceeds borrowed storage")

	// ErrNoCapacity is returned when adding a point to a trace without
	// any storage.
	ErrNoCapacity = errors.New("trace: zero capacity")
)

// AllocError reports a capacity which cannot be backed by storage.
type AllocError struct {
	Capacity int
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("trace: cannot allocate storage for %d samples", e.Capacity)
}

func (e *AllocError) Unwrap() error { return ErrAlloc }

func checkCapacity(capacity int) error {
	if capacity < 0 || capacity > MaxCapacity {
		return &AllocError{Capacity: capacity}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Storage

// storage is the backing of a trace. The two implementations differ in
// whether they may be written to and grown.
type storage interface {
	arrays() (x, y []float64)
	owned() bool
}

type ownedStorage struct{ x, y []float64 }

func (s ownedStorage) arrays() (x, y []float64) { return s.x, s.y }
func (s ownedStorage) owned() bool              { return true }

type borrowedStorage struct{ x, y []float64 }

func (s borrowedStorage) arrays() (x, y []float64) { return s.x, s.y }
func (s borrowedStorage) owned() bool              { return false }

// ----------------------------------------------------------------------------
// Trace

// Trace is one named (x,y) series with its own visual style.
type Trace struct {
	// Name is shown in the legend. Traces without name have no legend entry.
	Name string

	Line   LineStyle
	Marker MarkerStyle

	// Decimation is the stride used when drawing lines: only every
	// Decimation-th sample is used. Values below 1 are treated as 1.
	Decimation int

	// Lossless selects min/max envelope rendering per pixel column instead
	// of plain stride decimation.
	Lossless bool

	store    storage
	capacity int
	length   int
	start    int
	version  uint64
}

// New returns an empty trace owning storage for capacity samples.
func New(capacity int) (*Trace, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}
	t := &Trace{
		Line:       DefaultLineStyle(),
		Decimation: 1,
		store: ownedStorage{
			x: make([]float64, capacity),
			y: make([]float64, capacity),
		},
		capacity: capacity,
	}
	return t, nil
}

// NewWithData returns a trace which borrows x and y. The first length
// samples are valid. The caller keeps the arrays; the trace never writes
// to them.
func NewWithData(x, y []float64, length, capacity int) (*Trace, error) {
	t := &Trace{Line: DefaultLineStyle(), Decimation: 1}
	if err := t.SetData(x, y, length, capacity); err != nil {
		return nil, err
	}
	return t, nil
}

// SetData makes t borrow the caller's arrays x and y. Any storage owned
// by t is dropped.
func (t *Trace) SetData(x, y []float64, length, capacity int) error {
	if err := checkCapacity(capacity); err != nil {
		return err
	}
	if capacity > len(x) || capacity > len(y) {
		return ErrBorrowedCapacity
	}
	if length < 0 || length > capacity {
		return fmt.Errorf("trace: length %d outside [0,%d]", length, capacity)
	}
	t.store = borrowedStorage{x: x, y: y}
	t.capacity = capacity
	t.length = length
	t.start = 0
	t.version++
	return nil
}

// AddPoint appends (x,y). Once the trace is full the oldest sample is
// overwritten.
func (t *Trace) AddPoint(x, y float64) error {
	if t.store == nil || t.capacity == 0 {
		return ErrNoCapacity
	}
	if !t.store.owned() {
		return ErrBorrowed
	}
	xs, ys := t.store.arrays()
	if t.length < t.capacity {
		i := (t.start + t.length) % t.capacity
		xs[i], ys[i] = x, y
		t.length++
	} else {
		xs[t.start], ys[t.start] = x, y
		t.start = (t.start + 1) % t.capacity
	}
	t.version++
	return nil
}

// Resize changes the capacity of t. Owned storage is reallocated in
// logical order; when shrinking the newest samples are kept. Borrowed
// storage only changes the capacity in use.
func (t *Trace) Resize(capacity int) error {
	if err := checkCapacity(capacity); err != nil {
		return err
	}
	if t.store != nil && !t.store.owned() {
		xs, ys := t.store.arrays()
		if capacity > len(xs) || capacity > len(ys) {
			return ErrBorrowedCapacity
		}
		t.capacity = capacity
		if t.length > capacity {
			t.length = capacity
		}
		if t.start >= capacity && capacity > 0 {
			t.start %= capacity
		} else if capacity == 0 {
			t.start = 0
		}
		t.version++
		return nil
	}

	x := make([]float64, capacity)
	y := make([]float64, capacity)
	skip := 0
	if t.length > capacity {
		skip = t.length - capacity
	}
	n := 0
	for k := skip; k < t.length; k++ {
		x[n], y[n] = t.XY(k)
		n++
	}
	t.store = ownedStorage{x: x, y: y}
	t.capacity = capacity
	t.length = n
	t.start = 0
	t.version++
	return nil
}

// Clear logically removes all samples without touching the storage.
func (t *Trace) Clear() {
	t.length, t.start = 0, 0
	t.version++
}

// Destroy drops owned storage and detaches borrowed storage. The trace is
// empty with capacity 0 afterwards.
func (t *Trace) Destroy() {
	t.store = nil
	t.capacity, t.length, t.start = 0, 0, 0
	t.version++
}

// Len returns the number of valid samples. It implements plotter.XYer.
func (t *Trace) Len() int { return t.length }

// XY returns the k-th sample in chronological order, oldest first.
// It implements plotter.XYer.
func (t *Trace) XY(k int) (x, y float64) {
	if k < 0 || k >= t.length {
		panic(fmt.Sprintf("trace: index %d out of range [0,%d)", k, t.length))
	}
	xs, ys := t.store.arrays()
	i := (t.start + k) % t.capacity
	return xs[i], ys[i]
}

// Cap returns the capacity of t.
func (t *Trace) Cap() int { return t.capacity }

// Start returns the physical index of the oldest sample.
func (t *Trace) Start() int { return t.start }

// Owned reports whether t owns its storage.
func (t *Trace) Owned() bool { return t.store == nil || t.store.owned() }

// Version is incremented on every change of the sample data.
func (t *Trace) Version() uint64 { return t.version }

// Touch marks the data of a borrowed trace as changed after the caller
// modified its arrays.
func (t *Trace) Touch() { t.version++ }

// Range returns the extents of all samples. NaN values are ignored; the
// returned values are NaN if there is no valid sample.
func (t *Trace) Range() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.NaN(), math.NaN()
	ymin, ymax = math.NaN(), math.NaN()
	for k := 0; k < t.length; k++ {
		x, y := t.XY(k)
		if !math.IsNaN(x) {
			if !(xmin <= x) {
				xmin = x
			}
			if !(xmax >= x) {
				xmax = x
			}
		}
		if !math.IsNaN(y) {
			if !(ymin <= y) {
				ymin = y
			}
			if !(ymax >= y) {
				ymax = y
			}
		}
	}
	return xmin, xmax, ymin, ymax
}

// ----------------------------------------------------------------------------
// Styles

// LineType selects how the connecting line of a trace is drawn.
type LineType int

const (
	LineSolid LineType = iota
	LineNone
	LineDashed
	LineDotted
)

// String returns the name of lt.
func (lt LineType) String() string {
	switch lt {
	case LineSolid:
		return "solid"
	case LineNone:
		return "none"
	case LineDashed:
		return "dashed"
	case LineDotted:
		return "dotted"
	}
	return fmt.Sprintf("LineType(%d)", int(lt))
}

// Dashes returns the dash pattern of lt.
func (lt LineType) Dashes() []vg.Length {
	switch lt {
	case LineDashed:
		return plotutil.Dashes(1)
	case LineDotted:
		return plotutil.Dashes(2)
	}
	return nil
}

// MarkerType selects the symbol drawn at each sample.
type MarkerType int

const (
	MarkerNone MarkerType = iota
	MarkerPoint
	MarkerCircle
	MarkerSquare
	MarkerX
)

var markerNames = []string{"none", "point", "circle", "square", "x"}

// String returns the name of mt.
func (mt MarkerType) String() string {
	if mt < 0 || int(mt) >= len(markerNames) {
		return fmt.Sprintf("MarkerType(%d)", int(mt))
	}
	return markerNames[mt]
}

// ParseMarkerType is the inverse of MarkerType.String.
func ParseMarkerType(s string) (MarkerType, error) {
	for i, n := range markerNames {
		if n == s {
			return MarkerType(i), nil
		}
	}
	return MarkerNone, fmt.Errorf("trace: unknown marker type %q", s)
}

// ParseLineType is the inverse of LineType.String.
func ParseLineType(s string) (LineType, error) {
	for lt := LineSolid; lt <= LineDotted; lt++ {
		if lt.String() == s {
			return lt, nil
		}
	}
	return LineSolid, fmt.Errorf("trace: unknown line type %q", s)
}

// LineStyle is the style of the connecting line.
type LineStyle struct {
	Type  LineType
	Width vg.Length
	Color color.Color
}

// MarkerStyle is the style of the per-sample symbols.
type MarkerStyle struct {
	Type  MarkerType
	Size  vg.Length // diameter
	Color color.Color
}

// DefaultLineStyle is a solid black line of width 1.
func DefaultLineStyle() LineStyle {
	return LineStyle{Type: LineSolid, Width: 1, Color: color.Black}
}
