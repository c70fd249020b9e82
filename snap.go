package stripchart

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/vdobler/stripchart/trace"
)

// CrosshairMode selects the crosshair behaviour.
type CrosshairMode int

const (
	CrosshairNone CrosshairMode = iota
	// CrosshairFree follows the pointer.
	CrosshairFree
	// CrosshairSnap locks onto the sample nearest to the pointer.
	CrosshairSnap
)

var crosshairNames = []string{"none", "free", "snap"}

func (m CrosshairMode) String() string {
	if m < 0 || int(m) >= len(crosshairNames) {
		return fmt.Sprintf("CrosshairMode(%d)", int(m))
	}
	return crosshairNames[m]
}

// ParseCrosshairMode is the inverse of CrosshairMode.String.
func ParseCrosshairMode(s string) (CrosshairMode, error) {
	for i, n := range crosshairNames {
		if n == s {
			return CrosshairMode(i), nil
		}
	}
	return CrosshairNone, fmt.Errorf("unknown crosshair mode %q", s)
}

// SnapIndexThreshold is the number of samples from which nearest sample
// queries use a spatial index instead of scanning all samples.
var SnapIndexThreshold = 4096

// Readout is the position of the crosshair and its coordinate labels.
type Readout struct {
	// PX, PY is the crosshair position in device pixels.
	PX, PY float64

	// X, Y are the data coordinates at the crosshair.
	X, Y float64

	// Trace and Index identify the snapped sample. Trace is nil if the
	// crosshair follows the pointer.
	Trace *trace.Trace
	Index int

	XLabel, YLabel string
}

// Readout returns the crosshair for the last pointer position. It reports
// false if neither crosshair nor coordinates are enabled or if the pointer
// is not over the plot area.
func (c *Chart) Readout() (Readout, bool) {
	if c.Crosshair == CrosshairNone && !c.ShowCoords {
		return Readout{}, false
	}
	if !c.ix.inside || !c.layout.Area.Contains(c.ix.pointerX, c.ix.pointerY, 1) {
		return Readout{}, false
	}

	ro := Readout{PX: c.ix.pointerX, PY: c.ix.pointerY, Index: -1}
	ro.X, ro.Y = c.trans.Data(ro.PX, ro.PY)
	if c.Crosshair == CrosshairSnap {
		if ref, ok := c.nearest(ro.PX, ro.PY); ok {
			ro.Trace, ro.Index = c.traces[ref.trace], ref.index
			ro.X, ro.Y = ro.Trace.XY(ref.index)
			ro.PX, ro.PY = c.trans.Pixel(ro.X, ro.Y)
		}
	}
	ro.XLabel = "x: " + c.X.FormatCoord(ro.X)
	ro.YLabel = "y: " + c.Y.FormatCoord(ro.Y)
	return ro, true
}

// sampleRef is the logical index of a sample of the chart's traces.
type sampleRef struct {
	trace, index int
}

// nearest finds the sample closest to the device pixel (px,py). Large
// sets of samples are indexed once the same data and transform are
// queried twice in a row.
func (c *Chart) nearest(px, py float64) (sampleRef, bool) {
	total := 0
	for _, t := range c.traces {
		total += t.Len()
	}
	if total < SnapIndexThreshold {
		return nearestLinear(c.traces, c.trans, px, py)
	}
	if c.snap.matches(c.traces, c.trans) {
		if !c.snap.built {
			c.snap.build(c.traces, c.trans)
		}
		return c.snap.nearest(px, py)
	}
	c.snap.reset(c.traces, c.trans)
	return nearestLinear(c.traces, c.trans, px, py)
}

// nearestLinear scans every sample of every trace. Ties go to the first
// sample found.
func nearestLinear(traces []*trace.Trace, tr Transform, px, py float64) (sampleRef, bool) {
	best, found := math.Inf(1), false
	var ref sampleRef
	for i, t := range traces {
		for k := 0; k < t.Len(); k++ {
			x, y := t.XY(k)
			if math.IsNaN(x) || math.IsNaN(y) {
				continue
			}
			sx, sy := tr.Pixel(x, y)
			d := (sx-px)*(sx-px) + (sy-py)*(sy-py)
			if d < best {
				best, found = d, true
				ref = sampleRef{trace: i, index: k}
			}
		}
	}
	return ref, found
}

// ----------------------------------------------------------------------------
// Snap index

// snapIndex is a k-d tree of the samples in device pixels. It is valid
// for one transform and one version of each trace.
type snapIndex struct {
	traces   []*trace.Trace
	versions []uint64
	trans    Transform

	built bool
	tree  *kdtree.Tree
	refs  map[[2]float64]sampleRef
}

func (s *snapIndex) matches(traces []*trace.Trace, tr Transform) bool {
	if tr != s.trans || len(traces) != len(s.traces) {
		return false
	}
	for i, t := range traces {
		if t != s.traces[i] || t.Version() != s.versions[i] {
			return false
		}
	}
	return true
}

// reset records the key of the index without building it.
func (s *snapIndex) reset(traces []*trace.Trace, tr Transform) {
	s.traces = append(s.traces[:0], traces...)
	s.versions = s.versions[:0]
	for _, t := range traces {
		s.versions = append(s.versions, t.Version())
	}
	s.trans = tr
	s.tree, s.refs, s.built = nil, nil, false
}

func (s *snapIndex) build(traces []*trace.Trace, tr Transform) {
	s.reset(traces, tr)
	s.built = true
	s.refs = make(map[[2]float64]sampleRef)
	var pts kdtree.Points
	for i, t := range traces {
		for k := 0; k < t.Len(); k++ {
			x, y := t.XY(k)
			if math.IsNaN(x) || math.IsNaN(y) {
				continue
			}
			sx, sy := tr.Pixel(x, y)
			key := [2]float64{sx, sy}
			if _, dup := s.refs[key]; dup {
				continue
			}
			s.refs[key] = sampleRef{trace: i, index: k}
			pts = append(pts, kdtree.Point{sx, sy})
		}
	}
	if len(pts) > 0 {
		s.tree = kdtree.New(pts, false)
	}
}

func (s *snapIndex) nearest(px, py float64) (sampleRef, bool) {
	if s.tree == nil {
		return sampleRef{}, false
	}
	got, _ := s.tree.Nearest(kdtree.Point{px, py})
	p, ok := got.(kdtree.Point)
	if !ok {
		return sampleRef{}, false
	}
	ref, ok := s.refs[[2]float64{p[0], p[1]}]
	return ref, ok
}
