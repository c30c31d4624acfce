package tcellterm

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/loop"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		ev       *tcell.EventKey
		expected string
	}{
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), " "},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), "w"},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), "r"},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "up"},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), "down"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc"},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "ctrl+c"},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), ""},
	}

	for _, tc := range tests {
		if got := keyName(tc.ev); got != tc.expected {
			t.Errorf("keyName(%v) = %q, expected %q", tc.ev.Name(), got, tc.expected)
		}
	}
}

func TestStyleFor(t *testing.T) {
	fg, bg, _ := styleFor(core.ColorBlue, core.ColorWhite).Decompose()
	if fg != tcell.ColorBlue || bg != tcell.ColorWhite {
		t.Errorf("got fg=%v bg=%v, expected blue on white", fg, bg)
	}

	fg, bg, _ = styleFor(core.ColorDefault, core.ColorBrown).Decompose()
	if fg != tcell.ColorDefault {
		t.Errorf("default foreground should stay default, got %v", fg)
	}
	if bg != tcell.NewRGBColor(139, 69, 19) {
		t.Errorf("got bg=%v, expected brown", bg)
	}
}

func TestBlitter(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	frame := core.NewScreen(4, 2)
	frame.Fill(core.Cell{Rune: ' ', BG: core.ColorWhite})
	frame.DrawText(1, 1, "ok", core.ColorBlack)

	if err := blitter(screen)(frame); err != nil {
		t.Fatal(err)
	}
	r, _, style, _ := screen.GetContent(2, 1)
	if r != 'k' {
		t.Errorf("got rune %q, expected 'k'", r)
	}
	if _, bg, _ := style.Decompose(); bg != tcell.ColorWhite {
		t.Errorf("got bg=%v, expected white", bg)
	}
}

func TestBlitterWritesHelpFooter(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 11)

	w, h := playfieldSize(screen)
	if w != 80 || h != 10 {
		t.Fatalf("playfield = %dx%d, expected 80x10", w, h)
	}
	frame := core.NewScreen(w, h)
	if err := blitter(screen)(frame); err != nil {
		t.Fatal(err)
	}

	var got []rune
	for x := 0; x < 9; x++ {
		r, _, _, _ := screen.GetContent(x, 10)
		got = append(got, r)
	}
	if string(got) != "space/↑/w" {
		t.Errorf("footer starts with %q, expected the jump binding", string(got))
	}
	if !strings.HasPrefix(helpLine(), "space/↑/w jump • ↓/s crouch") {
		t.Errorf("helpLine() = %q", helpLine())
	}
}

// quitScreen injects ctrl+c as soon as it is initialized.
type quitScreen struct {
	tcell.SimulationScreen
}

func (s quitScreen) Init() error {
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	s.SetSize(100, 35)
	s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	return nil
}

type memStore struct{ high int }

func (s *memStore) Load() (int, error) { return s.high, nil }
func (s *memStore) Save(n int) error   { s.high = n; return nil }

func TestRunStopsOnQuitKey(t *testing.T) {
	atlas, err := assets.Load("")
	if err != nil {
		t.Fatal(err)
	}
	f := Frontend{newScreen: func() (tcell.Screen, error) {
		return quitScreen{tcell.NewSimulationScreen("")}, nil
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rt := core.DefaultConfig()
	rt.TickRate = 100
	opts := loop.Options{
		Config: config.DefaultRunnerConfig(),
		Store:  &memStore{},
		Atlas:  atlas,
		Seed:   1,
	}
	if err := f.Run(ctx, opts, rt); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if ctx.Err() != nil {
		t.Error("Run should stop on ctrl+c before the deadline")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	atlas, err := assets.Load("")
	if err != nil {
		t.Fatal(err)
	}
	f := Frontend{newScreen: func() (tcell.Screen, error) {
		return tcell.NewSimulationScreen(""), nil
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	opts := loop.Options{
		Config: config.DefaultRunnerConfig(),
		Store:  &memStore{},
		Atlas:  atlas,
		Seed:   1,
	}
	if err := f.Run(ctx, opts, core.DefaultConfig()); err != nil {
		t.Fatalf("Run returned %v, expected nil on cancel", err)
	}
}
