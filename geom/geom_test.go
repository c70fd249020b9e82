package geom

import (
	"image/color"
	"math"
	"strconv"
	"testing"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

var nan = math.NaN()

// testPanel maps data 1:1 to canvas units and treats [0,100]x[0,100] as
// data range.
type testPanel struct {
	rec *recorder.Canvas
}

func (p testPanel) MapX(x float64) (vg.Length, bool) { return vg.Length(x), x >= 0 && x <= 100 }
func (p testPanel) MapY(y float64) (vg.Length, bool) { return vg.Length(y), y >= 0 && y <= 100 }

func (p testPanel) MapXY(x, y float64) (vg.Point, bool) {
	cx, okx := p.MapX(x)
	cy, oky := p.MapY(y)
	return vg.Point{X: cx, Y: cy}, okx && oky
}

func (p testPanel) DrawArea() draw.Canvas {
	return draw.Canvas{
		Canvas:    p.rec,
		Rectangle: vg.Rectangle{Max: vg.Point{X: 100, Y: 100}},
	}
}

func newPanel() testPanel { return testPanel{rec: new(recorder.Canvas)} }

func xys(pts ...float64) plotter.XYs {
	xy := make(plotter.XYs, len(pts)/2)
	for i := range xy {
		xy[i].X, xy[i].Y = pts[2*i], pts[2*i+1]
	}
	return xy
}

// sizes returns the number of points of each path.
func sizes(paths [][]vg.Point) []int {
	n := make([]int, len(paths))
	for i, p := range paths {
		n[i] = len(p)
	}
	return n
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var strideTests = []struct {
	name    string
	xy      plotter.XYs
	divisor int
	want    []int
}{
	{"plain", xys(1, 1, 2, 2, 3, 3), 1, []int{3}},
	{"nan-breaks", xys(1, 1, 2, nan, 3, 3, 4, 4), 1, []int{2}},
	{"nan-breaks-both", xys(1, 1, 2, 2, 3, nan, 4, 4, 5, 5), 1, []int{2, 2}},
	{"leave-range", xys(10, 10, 20, 200, 30, 10), 1, []int{3}},
	{"two-outside", xys(10, 10, 20, 200, 30, 300, 40, 10), 1, []int{2, 2}},
	{"all-outside", xys(10, 200, 20, 300, 30, 400), 1, nil},
	{"stride", xys(1, 1, 2, nan, 3, 3, 4, nan, 5, 5), 2, []int{3}},
	{"empty", xys(), 1, nil},
	{"single", xys(5, 5), 1, nil},
}

func TestLineStride(t *testing.T) {
	for _, tc := range strideTests {
		t.Run(tc.name, func(t *testing.T) {
			l := Line{XY: tc.xy, Divisor: tc.divisor}
			got := sizes(l.Paths(newPanel()))
			if !sameInts(got, tc.want) {
				t.Errorf("path sizes = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLineStrideOutsideNeighbour(t *testing.T) {
	// The out of range sample stays connected to both visible neighbours.
	l := Line{XY: xys(10, 10, 20, 200, 30, 10)}
	paths := l.Paths(newPanel())
	if len(paths) != 1 || paths[0][1] != (vg.Point{X: 20, Y: 200}) {
		t.Errorf("paths = %v", paths)
	}
}

func TestLineLossless(t *testing.T) {
	// Column 1 gets samples 10, 50, 30; column 2 gets 20; column 3 gets 5, 5.
	xy := xys(1.1, 10, 1.5, 50, 1.9, 30, 2.2, 20, 3.0, 5, 3.5, 5)
	l := Line{XY: xy, Lossless: true}
	got := l.Paths(newPanel())
	want := [][]vg.Point{
		{{X: 1, Y: 10}, {X: 1, Y: 50}}, // span of column 1
		{{X: 1, Y: 30}, {X: 2, Y: 20}}, // connector 1 -> 2
		{{X: 2, Y: 20}, {X: 3, Y: 5}},  // connector 2 -> 3
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i][0] != want[i][0] || got[i][1] != want[i][1] {
			t.Errorf("segment %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLineLosslessKeepsSpikes(t *testing.T) {
	// 10000 samples onto 100 columns with a single spike.
	n := 10000
	xy := make(plotter.XYs, n)
	for i := range xy {
		xy[i].X = float64(i) / 100
		xy[i].Y = 10
	}
	xy[4321].Y = 90
	l := Line{XY: xy, Lossless: true}
	found := false
	for _, s := range l.Paths(newPanel()) {
		for _, p := range s {
			if p.Y == 90 {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("spike lost")
	}

	// Stride decimation may drop it.
	l = Line{XY: xy, Divisor: 100}
	for _, s := range l.Paths(newPanel()) {
		for _, p := range s {
			if p.Y == 90 {
				t.Errorf("spike survived stride 100")
			}
		}
	}
}

func TestLineLosslessNaN(t *testing.T) {
	xy := xys(1, 10, 2, nan, 3, 20)
	l := Line{XY: xy, Lossless: true}
	if got := l.Paths(newPanel()); len(got) != 0 {
		t.Errorf("connector across NaN: %v", got)
	}
}

func TestMarkersSkipOutside(t *testing.T) {
	m := Markers{XY: xys(1, 1, 2, 200, -5, 3, 4, nan, 50, 50)}
	pts := m.Points(newPanel())
	if len(pts) != 2 {
		t.Errorf("markers at %v", pts)
	}
}

func countStrokes(rec *recorder.Canvas) int {
	n := 0
	for _, a := range rec.Actions {
		if _, ok := a.(*recorder.Stroke); ok {
			n++
		}
	}
	return n
}

var drawTests = []struct {
	geom interface{ Draw(Panel) }
	want int
}{
	{Line{XY: xys(1, 1, 2, 2), Style: draw.LineStyle{Color: color.Black, Width: 1}}, 1},
	{Line{XY: xys(1, 1, 2, 2), Style: draw.LineStyle{Width: 1}}, 0}, // no color: line type none
	{Line{XY: xys(), Style: draw.LineStyle{Color: color.Black, Width: 1}}, 0},
	{HRule{Y: []float64{10, 20, 500}, Style: draw.LineStyle{Color: color.Black, Width: 1}}, 2},
	{VRule{X: []float64{-1, 50}, Style: draw.LineStyle{Color: color.Black, Width: 1}}, 1},
}

func TestDraw(t *testing.T) {
	for i, tc := range drawTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			p := newPanel()
			tc.geom.Draw(p)
			if got := countStrokes(p.rec); got != tc.want {
				t.Errorf("%d strokes, want %d", got, tc.want)
			}
		})
	}
}

func TestBoxClipped(t *testing.T) {
	p := newPanel()
	b := Box{Rect: vg.Rectangle{Min: vg.Point{X: 50, Y: 50}, Max: vg.Point{X: 150, Y: -10}}}
	b.Fill = color.White
	b.Border = draw.LineStyle{Color: color.Black, Width: 1}
	b.Draw(p.DrawArea())
	if countStrokes(p.rec) != 1 {
		t.Errorf("border not stroked")
	}

	r := clipRect(b.Rect, p.DrawArea())
	if r.Min.Y != 0 || r.Max.X != 100 || r.Max.Y != 50 {
		t.Errorf("clipped to %v", r)
	}
}
