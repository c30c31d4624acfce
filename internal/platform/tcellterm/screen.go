// Package tcellterm provides a frontend that drives the game loop directly on
// a tcell screen with its own frame clock.
package tcellterm

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/input"
)

// footerHeight is the number of rows below the playfield used for help.
const footerHeight = 1

var footerStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

var palette = map[core.Color]tcell.Color{
	core.ColorBlack:   tcell.ColorBlack,
	core.ColorWhite:   tcell.ColorWhite,
	core.ColorRed:     tcell.ColorRed,
	core.ColorGreen:   tcell.ColorGreen,
	core.ColorYellow:  tcell.ColorYellow,
	core.ColorBlue:    tcell.ColorBlue,
	core.ColorMagenta: tcell.ColorDarkMagenta,
	core.ColorCyan:    tcell.ColorDarkCyan,
	core.ColorGray:    tcell.ColorGray,
	core.ColorBrown:   tcell.NewRGBColor(139, 69, 19),
	core.ColorOrange:  tcell.ColorOrange,
}

// styleFor returns the tcell style for a cell's colours. ColorDefault keeps
// the terminal default.
func styleFor(fg, bg core.Color) tcell.Style {
	style := tcell.StyleDefault
	if c, ok := palette[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := palette[bg]; ok {
		style = style.Background(c)
	}
	return style
}

// helpLine renders the key bindings as one footer line.
func helpLine() string {
	parts := make([]string, 0, len(input.Help()))
	for _, h := range input.Help() {
		parts = append(parts, h[0]+" "+h[1])
	}
	return strings.Join(parts, " • ")
}

// playfieldSize returns the cells available to the canvas on screen.
func playfieldSize(screen tcell.Screen) (int, int) {
	w, h := screen.Size()
	return w, max(h-footerHeight, 0)
}

// blitter returns a present function that copies a frame onto screen and
// writes the help footer below it.
func blitter(screen tcell.Screen) func(*core.Screen) error {
	help := []rune(helpLine())
	return func(frame *core.Screen) error {
		for y := range frame.Height() {
			for x := range frame.Width() {
				cell := frame.GetCell(x, y)
				screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.FG, cell.BG))
			}
		}
		footerY := frame.Height()
		for x := range frame.Width() {
			r := ' '
			if x < len(help) {
				r = help[x]
			}
			screen.SetContent(x, footerY, r, nil, footerStyle)
		}
		screen.Show()
		return nil
	}
}

// keyName converts a key event to the names the input package binds.
// It returns "" for keys without a name.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return " "
		}
		return strings.ToLower(string(ev.Rune()))
	}
	return ""
}
