// runner is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	runner                  - Play with the default frontend
//	runner play             - Play a game
//	runner scores           - Show the high score and best runs
//	runner frontends        - List available frontends
//	runner config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Override the configured tick rate
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--store <kind>       - High score store: file or sqlite
//	--score-file <path>  - High score file (default: ~/.runner/high_score.txt)
//	--db <path>          - Run history database (default: ~/.runner/scores.db)
//	--assets <dir>       - Directory of sprite manifests
//	--log-file <path>    - Log destination (default: ~/.runner/runner.log)
//	--debug              - Log at debug level
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-runner/internal/platform/tcellterm"
	_ "github.com/vovakirdan/tui-runner/internal/platform/tui"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagStore     string
	flagScoreFile string
	flagDBPath    string
	flagAssets    string
	flagLogFile   string
	flagDebug     bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - jump and crouch past obstacles in your terminal",
	Long: `Runner is an endless side-scroller: jump over ground obstacles, crouch
under aerial ones, and beat your high score. The game speeds up every
100 points.

Available commands:
  play       - Play the game (default)
  scores     - View the high score and best runs
  frontends  - List the terminal frontends
  config     - Print the effective configuration

Examples:
  runner
  runner play --difficulty hard
  runner play --frontend tcell
  runner scores --store sqlite --limit 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use the config's tick_rate)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagStore, "store", "file", "High score store: file or sqlite")
	pf.StringVar(&flagScoreFile, "score-file", "~/.runner/high_score.txt", "Path to the high score file")
	pf.StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to the run history database")
	pf.StringVar(&flagAssets, "assets", "", "Directory of sprite manifests (default: embedded sprites)")
	pf.StringVar(&flagLogFile, "log-file", "~/.runner/runner.log", "Path to the log file")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger opens the log file. The returned function closes it.
func openLogger() (*log.Logger, func(), error) {
	path, err := storage.ExpandPath(flagLogFile)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// scoreStore is the union of the stores the CLI can open.
type scoreStore interface {
	storage.ScoreStore
	Reset() error
}

// openStore opens the store selected by --store. The returned function
// releases it.
func openStore() (scoreStore, func(), error) {
	switch flagStore {
	case "file":
		store, err := storage.NewFileStore(flagScoreFile)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case "sqlite":
		store, err := storage.OpenSQLite(flagDBPath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q (want file or sqlite)", flagStore)
	}
}
