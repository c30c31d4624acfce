package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/loop"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var (
	flagFrontend   string
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run.

Controls:
  Space/Up/W  - Jump
  Down/S      - Crouch (hold)
  P           - Pause
  R           - Replay (after game over)
  Q/Esc       - Quit (after game over)
  Ctrl+C      - Quit at any time

Difficulty options:
  easy   - Slower start, speeds up every 150 points
  normal - Speed 10, speeds up every 100 points
  hard   - Faster start, speeds up every 75 points
  fixed  - No progression

Examples:
  runner play
  runner play --difficulty easy
  runner play --frontend tcell
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFrontend, "frontend", "tea", "Terminal frontend: tea or tcell")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadConfig applies the search order, the difficulty preset and validation.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q (run 'runner frontends' to list them)", flagFrontend)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	atlas, err := assets.Load(flagAssets)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	rt := runtimeConfig()

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	logger.Debug("starting", "frontend", frontend.ID(), "store", flagStore, "assets", assetsLabel())
	opts := loop.Options{
		Config: cfg,
		Store:  store,
		Atlas:  atlas,
		Logger: logger,
		Seed:   flagSeed,
	}
	return frontend.Run(cmd.Context(), opts, rt)
}

// runtimeConfig returns the defaults overridden by the terminal size and the
// global flags. A zero tick rate defers to the game config.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return rt
}

func assetsLabel() string {
	if flagAssets == "" {
		return "embedded"
	}
	return flagAssets
}
