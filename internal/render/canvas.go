// Package render draws the logical playfield onto a terminal cell buffer.
//
// The simulation works in logical pixels (1000x700 by default). Canvas maps
// those coordinates onto however many cells the terminal has, so the same
// frame fits any window size.
package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Canvas implements the loop's renderer over a core.Screen.
type Canvas struct {
	screen  *core.Screen
	fieldW  int
	fieldH  int
	size    func() (int, int)
	present func(*core.Screen) error
}

// textColor is the foreground of DrawText.
const textColor = core.ColorBlack

// Option configures a Canvas.
type Option func(*Canvas)

// WithSizeFunc makes the canvas poll the terminal size at the start of every
// frame.
func WithSizeFunc(f func() (int, int)) Option {
	return func(c *Canvas) { c.size = f }
}

// WithPresent sets the function that flushes a finished frame.
func WithPresent(f func(*core.Screen) error) Option {
	return func(c *Canvas) { c.present = f }
}

// NewCanvas creates a canvas of cols x rows cells showing a fieldW x fieldH
// logical playfield.
func NewCanvas(fieldW, fieldH, cols, rows int, opts ...Option) *Canvas {
	c := &Canvas{
		screen: core.NewScreen(cols, rows),
		fieldW: max(fieldW, 1),
		fieldH: max(fieldH, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Screen returns the cell buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Resize changes the number of cells.
func (c *Canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
}

// Fill starts a frame by clearing every cell to the background colour.
func (c *Canvas) Fill(bg core.Color) {
	if c.size != nil {
		c.Resize(c.size())
	}
	c.screen.Fill(core.Cell{Rune: ' ', BG: bg})
}

// DrawFilledRect paints the cells covered by r.
func (c *Canvas) DrawFilledRect(bg core.Color, r core.Rect) {
	c.screen.FillRect(c.cellRect(r), bg)
}

// DrawSprite stretches the sprite's art over the logical rectangle r. Spaces
// in the art leave the background visible.
func (c *Canvas) DrawSprite(s *assets.Sprite, r core.Rect) {
	if s == nil {
		return
	}
	box := c.cellRect(r)
	cols, rows := s.Columns(), s.Rows()
	if box.Empty() || cols == 0 || rows == 0 {
		return
	}

	for dy := 0; dy < box.H; dy++ {
		row := dy * rows / box.H
		for dx := 0; dx < box.W; dx++ {
			r := s.At(dx*cols/box.W, row)
			if r == ' ' {
				continue
			}
			c.screen.Set(box.X+dx, box.Y+dy, r, s.Color)
		}
	}
}

// DrawText writes text with its top-left corner at the given logical point.
func (c *Canvas) DrawText(text string, at core.Point) {
	p := c.cellPoint(at)
	c.screen.DrawText(p.X, p.Y, text, textColor)
}

// TextWidth returns how many logical pixels text occupies on this canvas.
func (c *Canvas) TextWidth(text string) int {
	cols := c.screen.Width()
	if cols == 0 {
		return 0
	}
	return runewidth.StringWidth(text) * c.fieldW / cols
}

// Present hands the finished frame to the frontend.
func (c *Canvas) Present() error {
	if c.present == nil {
		return nil
	}
	return c.present(c.screen)
}

func (c *Canvas) cellPoint(p core.Point) core.Point {
	return core.Pt(
		floorDiv(p.X*c.screen.Width(), c.fieldW),
		floorDiv(p.Y*c.screen.Height(), c.fieldH),
	)
}

// cellRect maps a logical rectangle to cells. A non-empty rectangle always
// covers at least one cell so small objects stay visible.
func (c *Canvas) cellRect(r core.Rect) core.Rect {
	if r.Empty() {
		return core.Rect{}
	}
	cols, rows := c.screen.Width(), c.screen.Height()
	x0 := floorDiv(r.X*cols, c.fieldW)
	y0 := floorDiv(r.Y*rows, c.fieldH)
	x1 := floorDiv(r.Right()*cols, c.fieldW)
	y1 := floorDiv(r.Bottom()*rows, c.fieldH)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
