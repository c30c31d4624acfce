package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Frame colours.
const (
	colorBackground = core.ColorWhite
	colorGround     = core.ColorBrown
)

// fallbackGlyphWidth is the assumed width of one character, in logical
// pixels, when the renderer cannot measure text.
const fallbackGlyphWidth = 10

// Options configures a Machine.
type Options struct {
	Config   config.RunnerConfig
	Store    storage.ScoreStore
	Input    InputSource
	Renderer Renderer
	Atlas    *assets.Atlas
	Logger   *log.Logger
	Seed     int64 // 0 means time-based
}

// Machine owns the current session and the high score.
type Machine struct {
	cfg      config.RunnerConfig
	store    storage.ScoreStore
	input    InputSource
	renderer Renderer
	atlas    *assets.Atlas
	logger   *log.Logger
	rng      *rand.Rand

	state     State
	session   *runner.Session
	runID     string
	highScore int
}

// New loads the high score and starts the first session. A high score that
// cannot be read is logged and treated as 0.
func New(opts Options) (*Machine, error) {
	switch {
	case opts.Store == nil:
		return nil, errors.New("loop: score store is required")
	case opts.Input == nil:
		return nil, errors.New("loop: input source is required")
	case opts.Renderer == nil:
		return nil, errors.New("loop: renderer is required")
	case opts.Atlas == nil:
		return nil, errors.New("loop: sprite atlas is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("loop: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &Machine{
		cfg:      opts.Config,
		store:    opts.Store,
		input:    opts.Input,
		renderer: opts.Renderer,
		atlas:    opts.Atlas,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
	}

	high, err := m.store.Load()
	if err != nil {
		logger.Warn("cannot load high score, starting from 0", "err", err)
		high = 0
	}
	m.highScore = high

	m.startSession()
	logger.Info("session started", "run", m.runID, "seed", seed, "high_score", high)
	return m, nil
}

// Step runs one tick in the current state and draws the frame.
func (m *Machine) Step() (State, error) {
	switch m.state {
	case StatePlaying:
		m.stepPlaying()
	case StateGameOver:
		m.stepGameOver()
	}
	if m.state == StateTerminated {
		return m.state, nil
	}
	if err := m.draw(); err != nil {
		return m.state, fmt.Errorf("loop: render: %w", err)
	}
	return m.state, nil
}

// Run steps the machine once per clock tick until it terminates or ctx is
// cancelled. Cancellation is a normal quit and returns nil.
func (m *Machine) Run(ctx context.Context, clock Clock) error {
	for {
		if ctx.Err() != nil {
			m.Terminate("context cancelled")
			return nil
		}
		state, err := m.Step()
		if err != nil {
			return err
		}
		if state == StateTerminated {
			return nil
		}
		if err := clock.Wait(ctx); err != nil {
			m.Terminate("context cancelled")
			return nil
		}
	}
}

// Terminate moves the machine to Terminated from any state.
func (m *Machine) Terminate(reason string) {
	if m.state == StateTerminated {
		return
	}
	m.logger.Info("quit", "reason", reason, "state", m.state, "score", m.session.Score())
	m.state = StateTerminated
}

func (m *Machine) stepPlaying() {
	for _, ev := range m.input.Poll() {
		if ev.Kind == core.EventQuit {
			m.Terminate("quit event")
			return
		}
		m.session.HandleInput(ev)
	}

	if out := m.session.Advance(); out.Collided {
		m.gameOver(out)
	}
}

func (m *Machine) stepGameOver() {
	for _, ev := range m.input.Poll() {
		switch {
		case ev.Kind == core.EventQuit:
			m.Terminate("quit event")
			return
		case ev.IsKeyDown(core.KeyExit):
			m.Terminate("exit from game over")
			return
		case ev.IsKeyDown(core.KeyReplay):
			m.replay()
			return
		}
	}
}

func (m *Machine) gameOver(out runner.Outcome) {
	s := m.session
	m.state = StateGameOver

	score := s.Score()
	if score > m.highScore {
		m.highScore = score
		if err := m.store.Save(score); err != nil {
			m.logger.Error("cannot save high score", "score", score, "err", err)
		} else {
			m.logger.Info("new high score", "score", score)
		}
	}

	if rec, ok := m.store.(storage.RunRecorder); ok {
		run := &storage.Run{ID: m.runID, Score: score, Speed: s.Speed(), Ticks: s.Ticks()}
		if err := rec.RecordRun(run); err != nil {
			m.logger.Error("cannot record run", "run", m.runID, "err", err)
		}
	}

	m.logger.Info("game over",
		"run", m.runID,
		"score", score,
		"high_score", m.highScore,
		"speed", s.Speed(),
		"ticks", s.Ticks(),
		"hit", out.Hit.Sprite(),
	)
}

func (m *Machine) replay() {
	m.startSession()
	m.state = StatePlaying
	m.logger.Info("replay", "run", m.runID, "high_score", m.highScore)
}

func (m *Machine) startSession() {
	m.session = runner.NewSession(m.cfg, m.rng)
	m.runID = uuid.NewString()
}

func (m *Machine) draw() error {
	r := m.renderer
	r.Fill(colorBackground)

	if m.state == StateGameOver {
		m.drawGameOver()
		return r.Present()
	}

	screen := m.cfg.Screen
	r.DrawFilledRect(colorGround, core.NewRect(0, screen.GroundLine, screen.Width, screen.Height-screen.GroundLine))
	for _, e := range m.session.Entities() {
		r.DrawSprite(m.atlas.Sprite(e.Sprite()), e.Bounds())
	}
	r.DrawText(fmt.Sprintf("Score: %d", m.session.Score()), core.Pt(10, 10))
	r.DrawText(fmt.Sprintf("High Score: %d", m.highScore), core.Pt(10, 40))
	if m.session.Paused() {
		m.drawCentered("Paused - press P to resume", screen.Height/2-100)
	}
	return r.Present()
}

func (m *Machine) drawGameOver() {
	mid := m.cfg.Screen.Height / 2
	m.drawCentered("Game Over", mid-100)
	m.drawCentered(fmt.Sprintf("Score: %d", m.session.Score()), mid-50)
	m.drawCentered(fmt.Sprintf("High Score: %d", m.highScore), mid)
	m.drawCentered("Press R to Replay or Q to Quit", mid+50)
}

func (m *Machine) drawCentered(text string, y int) {
	w := len(text) * fallbackGlyphWidth
	if tm, ok := m.renderer.(TextMeasurer); ok {
		w = tm.TextWidth(text)
	}
	m.renderer.DrawText(text, core.Pt(m.cfg.Screen.Width/2-w/2, y))
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Session returns the current session.
func (m *Machine) Session() *runner.Session { return m.session }

// HighScore returns the best score known to the machine.
func (m *Machine) HighScore() int { return m.highScore }

// RunID returns the identifier of the current session.
func (m *Machine) RunID() string { return m.runID }
