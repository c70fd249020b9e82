package stripchart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Chart is drawn.
type Style struct {
	Background color.Color

	Title draw.TextStyle

	Area struct {
		Background color.Color
		Border     draw.LineStyle
	}

	XAxis struct {
		Label     draw.TextStyle
		TickLabel draw.TextStyle
	}

	YAxis struct {
		Label     draw.TextStyle
		TickLabel draw.TextStyle
	}

	Legend struct {
		Label      draw.TextStyle
		Background color.Color
		Border     draw.LineStyle
	}

	// Crosshair are the lines through the pointer or the snapped sample.
	Crosshair draw.LineStyle

	// Coords is the coordinate readout box.
	Coords struct {
		draw.TextStyle
		Background color.Color
		Border     draw.LineStyle
	}

	// ZoomBox is the rubber band drawn while dragging a zoom.
	ZoomBox draw.LineStyle
}

// DefaultStyle returns the default chart style. The baseFontSize is used
// for tick labels, axis labels and the legend, the title is a bit bigger.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White

	s.Title.Color = color.Black
	s.Title.Font = titleFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop

	s.Area.Background = color.White
	s.Area.Border.Color = color.Black
	s.Area.Border.Width = 2

	s.XAxis.Label.Color = color.Black
	s.XAxis.Label.Font = baseFont
	s.XAxis.Label.XAlign = draw.XCenter
	s.XAxis.Label.YAlign = draw.YTop
	s.XAxis.TickLabel.Color = color.Black
	s.XAxis.TickLabel.Font = baseFont
	s.XAxis.TickLabel.XAlign = draw.XCenter
	s.XAxis.TickLabel.YAlign = draw.YTop

	s.YAxis.Label.Color = color.Black
	s.YAxis.Label.Font = baseFont
	s.YAxis.Label.Rotation = math.Pi / 2
	s.YAxis.Label.XAlign = draw.XCenter
	s.YAxis.Label.YAlign = draw.YTop
	s.YAxis.TickLabel.Color = color.Black
	s.YAxis.TickLabel.Font = baseFont
	s.YAxis.TickLabel.XAlign = draw.XRight
	s.YAxis.TickLabel.YAlign = draw.YCenter

	s.Legend.Label.Color = color.Black
	s.Legend.Label.Font = baseFont
	s.Legend.Label.XAlign = draw.XLeft
	s.Legend.Label.YAlign = draw.YCenter
	s.Legend.Background = color.White
	s.Legend.Border.Color = color.Black
	s.Legend.Border.Width = 1

	s.Crosshair.Color = color.Gray{0x40}
	s.Crosshair.Width = 1

	s.Coords.Color = color.Black
	s.Coords.Font = baseFont
	s.Coords.XAlign = draw.XLeft
	s.Coords.YAlign = draw.YTop
	s.Coords.Background = color.RGBA{0xff, 0xff, 0xe0, 0xff}
	s.Coords.Border.Color = color.Gray{0x80}
	s.Coords.Border.Width = 1

	s.ZoomBox.Color = color.Gray{0x40}
	s.ZoomBox.Width = 1
	s.ZoomBox.Dashes = []vg.Length{3, 3}

	return s
}
