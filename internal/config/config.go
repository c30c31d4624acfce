// Package config provides YAML-based game configuration loading and
// difficulty presets for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the runner game.
// Geometry is expressed in logical playfield pixels; frontends scale it onto
// the terminal.
type RunnerConfig struct {
	Title       string            `yaml:"title"`
	TickRate    int               `yaml:"tick_rate"`
	Screen      ScreenConfig      `yaml:"screen"`
	Player      PlayerConfig      `yaml:"player"`
	Ground      GroundConfig      `yaml:"ground"`
	Aerial      AerialConfig      `yaml:"aerial"`
	Progression ProgressionConfig `yaml:"progression"`
	Input       InputConfig       `yaml:"input"`
}

// ScreenConfig defines the logical playfield.
type ScreenConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	GroundLine int `yaml:"ground_line"` // y of the ground surface
}

// PlayerConfig defines the player's hitbox and jump physics.
type PlayerConfig struct {
	X                 int `yaml:"x"`
	Width             int `yaml:"width"`
	Height            int `yaml:"height"`
	JumpImpulse       int `yaml:"jump_impulse"`        // negative = up
	CrouchJumpImpulse int `yaml:"crouch_jump_impulse"` // used when jumping from a crouch
	Gravity           int `yaml:"gravity"`             // added to velocity every airborne tick
}

// GroundConfig defines ground obstacles and their spawn cadence.
type GroundConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	MinDelay int `yaml:"min_delay"` // lower bound of the random spawn threshold, in ticks
	MaxDelay int `yaml:"max_delay"` // upper bound of the random spawn threshold, in ticks
	Spacing  int `yaml:"spacing"`   // last obstacle must be left of width-spacing
}

// AerialConfig defines aerial obstacles and their score-gated spawn.
type AerialConfig struct {
	Width             int  `yaml:"width"`
	Height            int  `yaml:"height"`
	MinAltitude       int  `yaml:"min_altitude"`
	BandMargin        int  `yaml:"band_margin"` // max altitude is ground_line - band_margin
	ScoreInterval     int  `yaml:"score_interval"`
	Spacing           int  `yaml:"spacing"`
	RetryUntilSpawned bool `yaml:"retry_until_spawned"`
}

// ProgressionConfig defines scroll speed and how it escalates with score.
type ProgressionConfig struct {
	InitialSpeed int  `yaml:"initial_speed"`
	SpeedStep    int  `yaml:"speed_step"` // 0 disables progression
	StepEvery    int  `yaml:"step_every"` // score interval between steps
	LiveSpeed    bool `yaml:"live_speed"` // obstacles follow the current speed instead of their spawn speed
}

// InputConfig tunes terminal input handling.
type InputConfig struct {
	CrouchHoldMS int `yaml:"crouch_hold_ms"` // crouch is released this long after the last key repeat
}

// MaxAltitude returns the lowest y an aerial obstacle may be placed at.
func (c RunnerConfig) MaxAltitude() int {
	return c.Screen.GroundLine - c.Aerial.BandMargin
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate rejects configurations the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.TickRate > 0, "tick_rate must be positive, got %d", c.TickRate)
	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen must have a positive size, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Screen.GroundLine > 0 && c.Screen.GroundLine <= c.Screen.Height,
		"ground_line must be within (0, %d], got %d", c.Screen.Height, c.Screen.GroundLine)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player must have a positive size")
	check(c.Player.Height <= c.Screen.GroundLine, "player taller than the ground line")
	check(c.Player.Gravity > 0, "player gravity must be positive, got %d", c.Player.Gravity)
	check(c.Player.JumpImpulse < 0 && c.Player.CrouchJumpImpulse < 0, "jump impulses must be negative (upward)")
	check(c.Ground.Width > 0 && c.Ground.Height > 0, "ground obstacle must have a positive size")
	check(c.Ground.MinDelay >= 0 && c.Ground.MinDelay <= c.Ground.MaxDelay,
		"ground delay range [%d, %d] is empty", c.Ground.MinDelay, c.Ground.MaxDelay)
	check(c.Aerial.Width > 0 && c.Aerial.Height > 0, "aerial obstacle must have a positive size")
	check(c.Aerial.MinAltitude >= 0 && c.Aerial.MinAltitude <= c.MaxAltitude(),
		"aerial altitude band [%d, %d] is empty", c.Aerial.MinAltitude, c.MaxAltitude())
	check(c.Aerial.ScoreInterval > 0, "aerial score_interval must be positive, got %d", c.Aerial.ScoreInterval)
	check(c.Progression.InitialSpeed > 0, "initial_speed must be positive, got %d", c.Progression.InitialSpeed)
	check(c.Progression.SpeedStep >= 0, "speed_step must not be negative, got %d", c.Progression.SpeedStep)
	check(c.Progression.SpeedStep == 0 || c.Progression.StepEvery > 0, "step_every must be positive when speed_step is set")

	return errors.Join(errs...)
}
