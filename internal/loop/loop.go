// Package loop runs the game: it polls input, advances the current session,
// handles the Playing / GameOver / Terminated transitions and draws each frame
// through a Renderer.
package loop

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// State is the machine's top-level state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Renderer draws one frame. Positions and rectangles are in logical pixels.
type Renderer interface {
	Fill(bg core.Color)
	DrawFilledRect(c core.Color, r core.Rect)
	DrawSprite(s *assets.Sprite, r core.Rect)
	DrawText(text string, at core.Point)
	Present() error
}

// TextMeasurer is implemented by renderers that can report text width, used
// to centre the game-over lines.
type TextMeasurer interface {
	TextWidth(text string) int
}

// InputSource is polled without blocking once per tick.
type InputSource interface {
	Poll() []core.Event
}

// Clock blocks until the next tick boundary.
type Clock interface {
	Wait(ctx context.Context) error
}

// FrameClock is a Clock backed by a time.Ticker.
type FrameClock struct {
	ticker *time.Ticker
}

// NewFrameClock starts a clock ticking tickRate times per second.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 30
	}
	return &FrameClock{ticker: time.NewTicker(time.Second / time.Duration(tickRate))}
}

// Wait blocks until the next tick or until ctx is done.
func (c *FrameClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (c *FrameClock) Stop() {
	c.ticker.Stop()
}
