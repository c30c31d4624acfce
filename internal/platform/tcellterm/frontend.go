package tcellterm

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/input"
	"github.com/vovakirdan/tui-runner/internal/loop"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/render"
)

// Frontend runs the game on a raw tcell screen.
type Frontend struct {
	newScreen func() (tcell.Screen, error)
}

// New returns a frontend that opens the process terminal.
func New() Frontend {
	return Frontend{newScreen: tcell.NewScreen}
}

func (Frontend) ID() string    { return "tcell" }
func (Frontend) Title() string { return "tcell" }

// Run plays until the machine terminates or ctx is cancelled.
func (f Frontend) Run(ctx context.Context, opts loop.Options, rt core.RuntimeConfig) error {
	newScreen := f.newScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("tcell: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	cfg := opts.Config
	screen.SetTitle(cfg.Title)

	queue := input.NewQueue(time.Duration(cfg.Input.CrouchHoldMS) * time.Millisecond)
	cols, rows := playfieldSize(screen)
	canvas := render.NewCanvas(cfg.Screen.Width, cfg.Screen.Height, cols, rows,
		render.WithSizeFunc(func() (int, int) { return playfieldSize(screen) }),
		render.WithPresent(blitter(screen)),
	)

	opts.Input = queue
	opts.Renderer = canvas
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	machine, err := loop.New(opts)
	if err != nil {
		return err
	}

	go pollEvents(screen, queue)

	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = cfg.TickRate
	}
	clock := loop.NewFrameClock(tickRate)
	defer clock.Stop()

	return machine.Run(ctx, clock)
}

// pollEvents feeds key presses into queue until the screen is finalized.
func pollEvents(screen tcell.Screen, queue *input.Queue) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if name := keyName(ev); name != "" {
				queue.PushKey(name)
			}
		}
	}
}

func init() {
	registry.Register("tcell", func() registry.Frontend {
		return New()
	})
}
