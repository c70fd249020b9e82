//go:build ignore

package main

import (
	"log"
	"math"
	"math/rand"
	"os"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/stripchart"
	"github.com/vdobler/stripchart/trace"
)

// noise returns the same trace of n samples of a slowly drifting random walk
// with occasional spikes and a gap.
func noise(n int) *trace.Trace {
	t, err := trace.New(n)
	if err != nil {
		log.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	y := 0.0
	for i := 0; i < n; i++ {
		y += rng.NormFloat64()
		v := y
		if rng.Intn(5000) == 0 {
			v += 200
		}
		if i > n/2 && i < n/2+n/50 {
			v = math.NaN()
		}
		t.AddPoint(float64(i)/1000, v)
	}
	return t
}

func main() {
	const n = 200000
	const w, h = 800, 200

	img := vgimg.NewWith(vgimg.UseWH(w, 3*h), vgimg.UseDPI(72))
	dc := draw.New(img)

	for i, mode := range []string{"stride 50", "stride 1", "lossless"} {
		c := stripchart.New()
		c.Title = "Random walk, " + mode
		c.X.Label, c.X.ShowLabel = "time [s]", true
		c.Y.SetScaleMode(stripchart.AutoLoose)

		t := noise(n)
		t.Name = mode
		switch mode {
		case "stride 50":
			t.Decimation = 50
		case "lossless":
			t.Lossless = true
		}
		c.AddTrace(t)
		c.Legend = stripchart.LegendRight

		sub := dc
		sub.Min.Y = vg.Length((2 - i) * h)
		sub.Max.Y = sub.Min.Y + h
		if err := c.Draw(sub); err != nil {
			log.Print(err)
		}
	}
	write(img, "testdata/scale-00.png")
}

func write(canvas *vgimg.Canvas, name string) {
	w, err := os.Create(name)
	if err != nil {
		log.Fatal(err)
	}
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err = png.WriteTo(w); err != nil {
		log.Fatal(err)
	}
	if err = w.Close(); err != nil {
		log.Fatal(err)
	}
}
