// Package storage persists the high score. FileStore keeps the single decimal
// integer on disk; SQLiteStore additionally records every finished run.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ScoreStore reads and writes the durable high score.
type ScoreStore interface {
	// Load returns the stored high score. A store that has never been written
	// returns 0 and no error.
	Load() (int, error)
	// Save replaces the stored high score.
	Save(score int) error
}

// Run is the outcome of one finished session.
type Run struct {
	ID        string
	Score     int
	Speed     int // scroll speed when the run ended
	Ticks     int // simulated ticks
	CreatedAt time.Time
}

// RunRecorder is implemented by stores that keep a history of runs.
type RunRecorder interface {
	RecordRun(run *Run) error
}

// ErrMalformedScore is returned when stored high-score data cannot be parsed.
var ErrMalformedScore = errors.New("storage: malformed high score")

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return nil
}
