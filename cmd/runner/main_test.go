package main

import (
	"path/filepath"
	"testing"
)

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()
	flagScoreFile = filepath.Join(dir, "high_score.txt")
	flagDBPath = filepath.Join(dir, "scores.db")

	for _, kind := range []string{"file", "sqlite"} {
		flagStore = kind
		store, closeStore, err := openStore()
		if err != nil {
			t.Fatalf("openStore(%s): %v", kind, err)
		}
		if err := store.Save(42); err != nil {
			t.Fatalf("%s: Save: %v", kind, err)
		}
		got, err := store.Load()
		if err != nil || got != 42 {
			t.Errorf("%s: got %d, %v; expected 42", kind, got, err)
		}
		expected := flagScoreFile
		if kind == "sqlite" {
			expected = flagDBPath
		}
		if loc := storeLocation(store); loc != expected {
			t.Errorf("%s: storeLocation() = %q, expected %q", kind, loc, expected)
		}
		closeStore()
	}

	flagStore = "redis"
	if _, _, err := openStore(); err == nil {
		t.Error("expected an error for an unknown store")
	}
	flagStore = "file"
}

func TestLoadConfigDifficulty(t *testing.T) {
	flagConfig = ""
	defer func() { flagDifficulty = "" }()

	flagDifficulty = "fixed"
	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Progression.SpeedStep != 0 {
		t.Errorf("got speed step %d, expected 0 for fixed", cfg.Progression.SpeedStep)
	}

	flagDifficulty = "nightmare"
	if _, err := loadConfig(); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}

func TestRuntimeConfigFlags(t *testing.T) {
	flagFPS, flagSeed = 45, 7
	defer func() { flagFPS, flagSeed = 0, 0 }()

	rt := runtimeConfig()
	if rt.TickRate != 45 || rt.Seed != 7 {
		t.Errorf("got tick rate %d seed %d, expected 45 and 7", rt.TickRate, rt.Seed)
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		t.Errorf("got screen %dx%d, expected a positive size", rt.ScreenW, rt.ScreenH)
	}
}
