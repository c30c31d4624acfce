package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagLimit int
	flagReset bool
	flagTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and best runs",
	Long: `Display the stored high score. With --store sqlite the best runs are
listed too.

Examples:
  runner scores
  runner scores --store sqlite --limit 5
  runner scores --store sqlite --tui
  runner scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the stored high score and run history")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse the run history interactively")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if flagReset {
		if err := store.Reset(); err != nil {
			return err
		}
		fmt.Printf("High score cleared (%s).\n", storeLocation(store))
		return nil
	}

	lister, hasRuns := store.(tui.RunLister)
	if flagTUI {
		if !hasRuns {
			return fmt.Errorf("run history needs --store sqlite")
		}
		rt := runtimeConfig()
		return tui.RunScoreboard(lister, flagLimit, rt.ScreenW, rt.ScreenH)
	}

	high, err := store.Load()
	if err != nil {
		return err
	}
	fmt.Printf("High Score: %s (%s)\n", humanize.Comma(int64(high)), storeLocation(store))

	if !hasRuns {
		return nil
	}
	runs, err := lister.TopRuns(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play --store sqlite' to record the first run!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %-10s  %s\n", "Rank", "Score", "Speed", "Ticks", "When")
	fmt.Printf("  %-4s  %-10s  %-5s  %-10s  %s\n", "----", "-----", "-----", "-----", "----")

	// Print runs
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-5d  %-10s  %s\n",
			i+1, humanize.Comma(int64(r.Score)), r.Speed, humanize.Comma(int64(r.Ticks)), humanize.Time(r.CreatedAt))
	}
	return nil
}

// storeLocation describes where the high score lives.
func storeLocation(store scoreStore) string {
	if fs, ok := store.(*storage.FileStore); ok {
		return fs.Path()
	}
	return flagDBPath
}
