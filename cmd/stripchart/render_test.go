package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vdobler/stripchart"
)

func writeTable(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseRange(t *testing.T) {
	lo, hi, err := parseRange("-1.5:20")
	if err != nil || lo != -1.5 || hi != 20 {
		t.Errorf("got %g %g %v", lo, hi, err)
	}
	for _, bad := range []string{"", "1", "a:2", "1:b"} {
		if _, _, err := parseRange(bad); err == nil {
			t.Errorf("%q: no error", bad)
		}
	}
}

func TestSeriesColor(t *testing.T) {
	for _, scheme := range []string{"plotutil", "kindlmann"} {
		a, err := seriesColor(scheme, 0, 3)
		if err != nil {
			t.Fatalf("%s: %v", scheme, err)
		}
		b, _ := seriesColor(scheme, 2, 3)
		if a == b {
			t.Errorf("%s: series 0 and 2 share color %v", scheme, a)
		}
	}
	if _, err := seriesColor("rainbow", 0, 1); err == nil {
		t.Errorf("unknown scheme accepted")
	}
}

func TestNewChart(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, "power.csv", "t,cpu,gpu\n0,10,20\n1,12,25\n")
	opts := defaultOptions()
	opts.yRange = "0:50"
	opts.marker = "circle"
	opts.legend = "top"
	charts, err := loadCharts([]string{path}, opts)
	if err != nil {
		t.Fatal(err)
	}
	c := charts[0]
	if c.Title != "power.csv" || c.Legend != stripchart.LegendTop {
		t.Errorf("title %q legend %s", c.Title, c.Legend)
	}
	if c.Y.Mode != stripchart.Manual || c.Y.Min != 0 || c.Y.Max != 50 {
		t.Errorf("y axis %s", c.Y)
	}
	traces := c.Traces()
	if len(traces) != 2 || traces[1].Name != "gpu" || traces[1].Marker.Color == nil {
		t.Errorf("traces %v", traces)
	}

	opts.xScale = "logarithmic"
	if _, err := loadCharts([]string{path}, opts); err == nil {
		t.Errorf("bad scale mode accepted")
	}
}

func TestRenderFormats(t *testing.T) {
	dir := t.TempDir()
	a := writeTable(t, dir, "a.csv", "t,u\n0,1\n1,2\n2,1\n")
	b := writeTable(t, dir, "b.csv", "t,v\n0,1000\n1,2000\n2,1500\n")

	for _, format := range []string{"png", "svg", "pdf"} {
		opts := defaultOptions()
		opts.width, opts.height = 300, 120
		opts.output = filepath.Join(dir, "out."+format)
		if err := render([]string{a, b}, opts); err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		fi, err := os.Stat(opts.output)
		if err != nil || fi.Size() == 0 {
			t.Errorf("%s: output missing: %v", format, err)
		}
	}

	opts := defaultOptions()
	opts.output = filepath.Join(dir, "out.gif")
	if err := render([]string{a}, opts); err == nil {
		t.Errorf("gif output accepted")
	}
}

func TestMargins(t *testing.T) {
	dir := t.TempDir()
	a := writeTable(t, dir, "a.csv", "t,u\n0,1\n1,2\n")
	b := writeTable(t, dir, "b.csv", "t,v\n0,100000\n1,200000\n")

	var buf bytes.Buffer
	if err := margins(&buf, []string{a, b}, defaultOptions()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[2], "aligned\tpx:") {
		t.Errorf("got %q", buf.String())
	}
}
