package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore keeps the high score as a decimal ASCII integer in a text file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path. The file is not
// touched until Load or Save is called.
func NewFileStore(path string) (*FileStore, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: expanded}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the high score. A missing file means no prior high score.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	text := strings.TrimSpace(string(data))
	score, err := strconv.Atoi(text)
	if err != nil || score < 0 {
		return 0, fmt.Errorf("%w: %q in %s", ErrMalformedScore, text, s.path)
	}
	return score, nil
}

// scoreFileMode is the permission of a written high score file.
const scoreFileMode = 0o644

// Save writes the score. The file is replaced atomically so a crash never
// leaves a truncated value behind.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: refusing to save negative score %d", score)
	}
	if err := ensureDir(s.path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".high_score-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if err := tmp.Chmod(scoreFileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot set score file mode: %w", err)
	}
	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// Reset deletes the stored high score.
func (s *FileStore) Reset() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot remove %s: %w", s.path, err)
	}
	return nil
}
