// Package assets loads the sprite atlas the renderer draws entities with.
// The built-in atlas is embedded; a directory of YAML manifests can replace it.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

//go:embed data/sprites.yaml
var defaultManifest []byte

// ErrMissingSprite is returned when an atlas lacks a sprite the game draws.
var ErrMissingSprite = errors.New("assets: missing sprite")

// Sprite is a block-character image. The renderer stretches it over the
// drawn entity's bounds.
type Sprite struct {
	ID    string
	Color core.Color
	rows  [][]rune
}

// Columns returns the width of the art grid.
func (s *Sprite) Columns() int {
	n := 0
	for _, r := range s.rows {
		n = max(n, len(r))
	}
	return n
}

// Rows returns the height of the art grid.
func (s *Sprite) Rows() int {
	return len(s.rows)
}

// At returns the art rune at (col, row), or a space outside the grid.
func (s *Sprite) At(col, row int) rune {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.rows[row]) {
		return ' '
	}
	return s.rows[row][col]
}

// Atlas maps sprite IDs to sprites.
type Atlas struct {
	sprites map[string]*Sprite
}

// Sprite returns the sprite for id, or nil.
func (a *Atlas) Sprite(id runner.SpriteID) *Sprite {
	return a.sprites[string(id)]
}

// manifest is the YAML structure of a sprite file.
type manifest struct {
	Sprites map[string]spriteSpec `yaml:"sprites"`
}

type spriteSpec struct {
	Color string   `yaml:"color"`
	Art   []string `yaml:"art"`
}

// Load returns the embedded atlas when dir is empty. Otherwise every .yaml or
// .yml file under dir is read, in lexical order, and later files override
// earlier sprites with the same ID. The result must define every sprite the
// game draws.
func Load(dir string) (*Atlas, error) {
	atlas := &Atlas{sprites: make(map[string]*Sprite)}

	if dir == "" {
		if err := atlas.parse(defaultManifest, "embedded sprites.yaml"); err != nil {
			return nil, err
		}
	} else if err := atlas.loadDir(dir); err != nil {
		return nil, err
	}

	if err := atlas.validate(); err != nil {
		return nil, err
	}
	return atlas, nil
}

func (a *Atlas) loadDir(dir string) error {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("assets: walking %s: %w", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("assets: no sprite manifests in %s", dir)
	}

	sort.Strings(files)
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("assets: reading %s: %w", path, err)
		}
		if err := a.parse(data, path); err != nil {
			return err
		}
	}
	return nil
}

func (a *Atlas) parse(data []byte, source string) error {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("assets: parsing %s: %w", source, err)
	}

	for id, spec := range m.Sprites {
		color, ok := core.ParseColor(spec.Color)
		if !ok {
			return fmt.Errorf("assets: %s: sprite %q has unknown color %q", source, id, spec.Color)
		}
		if len(spec.Art) == 0 {
			return fmt.Errorf("assets: %s: sprite %q has no art", source, id)
		}

		rows := make([][]rune, len(spec.Art))
		for i, line := range spec.Art {
			rows[i] = []rune(line)
		}
		a.sprites[id] = &Sprite{
			ID:    id,
			Color: color,
			rows:  rows,
		}
	}
	return nil
}

func (a *Atlas) validate() error {
	var missing []string
	for _, id := range runner.SpriteIDs() {
		if a.sprites[string(id)] == nil {
			missing = append(missing, string(id))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSprite, strings.Join(missing, ", "))
	}
	return nil
}
