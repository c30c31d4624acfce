package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

func TestLoadEmbedded(t *testing.T) {
	atlas, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	for _, id := range runner.SpriteIDs() {
		s := atlas.Sprite(id)
		if s == nil {
			t.Errorf("missing sprite %q", id)
			continue
		}
		if s.Columns() == 0 || s.Rows() == 0 {
			t.Errorf("sprite %q has empty art", id)
		}
	}

	if s := atlas.Sprite(runner.SpriteAerial); s.Columns() != 10 || s.Rows() != 3 {
		t.Errorf("aerial art = %dx%d, expected 10x3", s.Columns(), s.Rows())
	}
	if s := atlas.Sprite(runner.SpritePlayer); s.Color != core.ColorBlue {
		t.Errorf("player color = %v, expected blue", s.Color)
	}
}

func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func fullManifest(color string) string {
	var sb strings.Builder
	sb.WriteString("sprites:\n")
	for _, id := range runner.SpriteIDs() {
		sb.WriteString("  " + string(id) + ":\n")
		sb.WriteString("    color: " + color + "\n")
		sb.WriteString("    art: [\"#\"]\n")
	}
	return sb.String()
}

func TestLoadDirOverrides(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "a.yaml", fullManifest("red"))
	writeManifest(t, dir, "b.yml", `
sprites:
  player:
    color: yellow
    art: ["ab", "c"]
`)
	writeManifest(t, dir, "notes.txt", "ignored")

	atlas, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	p := atlas.Sprite(runner.SpritePlayer)
	if p.Color != core.ColorYellow {
		t.Errorf("player not overridden: %+v", p)
	}
	if p.Columns() != 2 || p.Rows() != 2 {
		t.Errorf("grid = %dx%d, expected 2x2", p.Columns(), p.Rows())
	}
	if p.At(1, 0) != 'b' || p.At(1, 1) != ' ' || p.At(-1, 0) != ' ' {
		t.Error("At() returned unexpected runes")
	}
	if g := atlas.Sprite(runner.SpriteGround); g.Color != core.ColorRed {
		t.Errorf("ground color = %v, expected red", g.Color)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]string
		sentinel error
	}{
		{"no manifests", map[string]string{"readme.md": "x"}, nil},
		{"bad yaml", map[string]string{"s.yaml": "sprites: [unclosed"}, nil},
		{"unknown color", map[string]string{"s.yaml": fullManifest("chartreuse")}, nil},
		{"missing sprite", map[string]string{"s.yaml": "sprites:\n  player:\n    color: red\n    art: [\"x\"]\n"}, ErrMissingSprite},
		{"empty art", map[string]string{"s.yaml": strings.ReplaceAll(fullManifest("red"), "art: [\"#\"]", "art: []")}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tc.files {
				writeManifest(t, dir, name, content)
			}
			_, err := Load(dir)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if tc.sentinel != nil && !errors.Is(err, tc.sentinel) {
				t.Errorf("error = %v, expected %v", err, tc.sentinel)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Load() of a missing directory should fail")
	}
}
