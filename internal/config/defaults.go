package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Title:    "Runner",
		TickRate: 30,
		Screen: ScreenConfig{
			Width:      1000,
			Height:     700,
			GroundLine: 400,
		},
		Player: PlayerConfig{
			X:                 50,
			Width:             100,
			Height:            100,
			JumpImpulse:       -30,
			CrouchJumpImpulse: -25,
			Gravity:           2,
		},
		Ground: GroundConfig{
			Width:    100,
			Height:   100,
			MinDelay: 50,
			MaxDelay: 150,
			Spacing:  200,
		},
		Aerial: AerialConfig{
			Width:         100,
			Height:        50,
			MinAltitude:   50,
			BandMargin:    150,
			ScoreInterval: 500,
			Spacing:       200,
		},
		Progression: ProgressionConfig{
			InitialSpeed: 10,
			SpeedStep:    1,
			StepEvery:    100,
		},
		Input: InputConfig{
			CrouchHoldMS: 500,
		},
	}
}
