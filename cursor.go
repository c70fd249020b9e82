package stripchart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/stripchart/geom"
)

// CursorType selects the lines of a cursor.
type CursorType int

const (
	CursorVertical CursorType = iota
	CursorHorizontal
	CursorCross
)

func (ct CursorType) String() string {
	switch ct {
	case CursorVertical:
		return "vertical"
	case CursorHorizontal:
		return "horizontal"
	case CursorCross:
		return "cross"
	}
	return fmt.Sprintf("CursorType(%d)", int(ct))
}

// A Cursor marks a data position set by the application, e.g. the current
// time in a replay.
type Cursor struct {
	Type  CursorType
	X, Y  float64
	Style draw.LineStyle
}

// SetCursor shows cur. A zero line style is replaced by a 1 pixel red line.
func (c *Chart) SetCursor(cur Cursor) {
	if cur.Style.Color == nil {
		cur.Style.Color = color.RGBA{0xd0, 0, 0, 0xff}
	}
	if cur.Style.Width == 0 {
		cur.Style.Width = 1
	}
	c.cursor = &cur
}

// ClearCursor hides the cursor.
func (c *Chart) ClearCursor() { c.cursor = nil }

// Cursor returns the current cursor.
func (c *Chart) Cursor() (Cursor, bool) {
	if c.cursor == nil {
		return Cursor{}, false
	}
	return *c.cursor, true
}

func (cur *Cursor) draw(p *Panel) {
	if cur.Type == CursorVertical || cur.Type == CursorCross {
		geom.VRule{X: []float64{cur.X}, Style: cur.Style}.Draw(p)
	}
	if cur.Type == CursorHorizontal || cur.Type == CursorCross {
		geom.HRule{Y: []float64{cur.Y}, Style: cur.Style}.Draw(p)
	}
}
