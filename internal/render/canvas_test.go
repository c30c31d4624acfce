package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

func TestCellRect(t *testing.T) {
	c := NewCanvas(1000, 700, 100, 35)

	tests := []struct {
		name     string
		in       core.Rect
		expected core.Rect
	}{
		{"player", core.NewRect(50, 300, 100, 100), core.NewRect(5, 15, 10, 5)},
		{"ground band", core.NewRect(0, 400, 1000, 300), core.NewRect(0, 20, 100, 15)},
		{"aerial", core.NewRect(990, 50, 100, 50), core.NewRect(99, 2, 10, 3)},
		{"off left", core.NewRect(-55, 300, 100, 100), core.NewRect(-6, 15, 10, 5)},
		{"tiny", core.NewRect(3, 3, 1, 1), core.NewRect(0, 0, 1, 1)},
		{"empty", core.NewRect(10, 10, 0, 5), core.Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.cellRect(tc.in)
			if got != tc.expected {
				t.Errorf("cellRect(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, expected int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-6, 2, -3},
		{0, 5, 0},
	}
	for _, tc := range tests {
		if got := floorDiv(tc.a, tc.b); got != tc.expected {
			t.Errorf("floorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestFillAndRect(t *testing.T) {
	c := NewCanvas(100, 100, 10, 10)
	c.Fill(core.ColorWhite)
	c.DrawFilledRect(core.ColorBrown, core.NewRect(0, 50, 100, 50))

	if bg := c.Screen().GetCell(0, 4).BG; bg != core.ColorWhite {
		t.Errorf("sky cell BG = %v, expected white", bg)
	}
	if bg := c.Screen().GetCell(9, 9).BG; bg != core.ColorBrown {
		t.Errorf("ground cell BG = %v, expected brown", bg)
	}
}

func TestDrawSpriteKeepsBackground(t *testing.T) {
	atlas, err := assets.Load("")
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas(1000, 700, 100, 35)
	c.Fill(core.ColorWhite)

	s := atlas.Sprite(runner.SpriteGround)
	c.DrawSprite(s, core.NewRect(500, 300, 100, 100))

	drawn := 0
	for y := 15; y < 20; y++ {
		for x := 50; x < 60; x++ {
			cell := c.Screen().GetCell(x, y)
			if cell.BG != core.ColorWhite {
				t.Fatalf("sprite overwrote background at (%d,%d)", x, y)
			}
			if cell.Rune != ' ' {
				drawn++
				if cell.FG != s.Color {
					t.Errorf("cell (%d,%d) FG = %v, expected %v", x, y, cell.FG, s.Color)
				}
			}
		}
	}
	if drawn == 0 {
		t.Error("sprite drew nothing")
	}

	// Nothing outside the box.
	if r := c.Screen().GetCell(60, 16).Rune; r != ' ' {
		t.Errorf("sprite leaked to (60,16): %q", r)
	}

	c.DrawSprite(nil, core.NewRect(0, 0, 10, 10))
}

func TestDrawSpriteStretchesToRect(t *testing.T) {
	atlas, err := assets.Load("")
	if err != nil {
		t.Fatal(err)
	}
	c := NewCanvas(1000, 700, 100, 70)

	tests := []struct {
		name string
		rect core.Rect
	}{
		{"short player", core.NewRect(50, 340, 100, 60)},
		{"wide player", core.NewRect(50, 200, 300, 200)},
		{"tiny player", core.NewRect(50, 395, 20, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c.Fill(core.ColorWhite)
			c.DrawSprite(atlas.Sprite(runner.SpritePlayer), tc.rect)

			box := c.cellRect(tc.rect)
			drawn := 0
			for y := 0; y < c.Screen().Height(); y++ {
				for x := 0; x < c.Screen().Width(); x++ {
					if c.Screen().GetCell(x, y).Rune == ' ' {
						continue
					}
					drawn++
					if x < box.X || x >= box.Right() || y < box.Y || y >= box.Bottom() {
						t.Errorf("sprite cell (%d,%d) outside %+v", x, y, box)
					}
				}
			}
			if drawn == 0 {
				t.Error("sprite drew nothing")
			}
		})
	}
}

func TestDrawTextAndWidth(t *testing.T) {
	c := NewCanvas(1000, 700, 100, 35)
	c.Fill(core.ColorWhite)
	c.DrawText("Score: 42", core.Pt(10, 10))

	// (10,10) lands in cell (1,0)
	if row := c.Screen().Row(0); !strings.HasPrefix(row, " Score: 42") {
		t.Errorf("row 0 = %q, expected the score text", row)
	}
	if cell := c.Screen().GetCell(1, 0); cell.FG != core.ColorBlack || cell.BG != core.ColorWhite {
		t.Errorf("text cell = %+v, expected black on white", cell)
	}
	if w := c.TextWidth("Game Over"); w != 90 {
		t.Errorf("TextWidth = %d, expected 90", w)
	}
}

func TestSizeFuncAndPresent(t *testing.T) {
	cols, rows := 40, 20
	var presented *core.Screen
	c := NewCanvas(1000, 700, 10, 10,
		WithSizeFunc(func() (int, int) { return cols, rows }),
		WithPresent(func(s *core.Screen) error { presented = s; return nil }),
	)

	c.Fill(core.ColorWhite)
	if c.Screen().Width() != 40 || c.Screen().Height() != 20 {
		t.Errorf("screen = %dx%d, expected 40x20", c.Screen().Width(), c.Screen().Height())
	}
	if err := c.Present(); err != nil {
		t.Fatal(err)
	}
	if presented != c.Screen() {
		t.Error("Present() did not pass the screen to the hook")
	}
}
