package tui

import (
	"context"
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/input"
	"github.com/vovakirdan/tui-runner/internal/loop"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/render"
)

// Frontend runs the game inside a Bubble Tea program.
type Frontend struct{}

func (Frontend) ID() string    { return "tea" }
func (Frontend) Title() string { return "Bubble Tea" }

// Run plays until the machine terminates or ctx is cancelled.
func (Frontend) Run(ctx context.Context, opts loop.Options, rt core.RuntimeConfig) error {
	cfg := opts.Config
	queue := input.NewQueue(time.Duration(cfg.Input.CrouchHoldMS) * time.Millisecond)
	canvas := render.NewCanvas(cfg.Screen.Width, cfg.Screen.Height, rt.ScreenW, rt.ScreenH-helpHeight)

	opts.Input = queue
	opts.Renderer = canvas
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	machine, err := loop.New(opts)
	if err != nil {
		return err
	}

	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = cfg.TickRate
	}
	model := NewModel(machine, queue, canvas, cfg.Title, tickRate, opts.Logger)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if ctx.Err() != nil {
		machine.Terminate("context cancelled")
		return nil
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}

func init() {
	registry.Register("tea", func() registry.Frontend {
		return Frontend{}
	})
}
