package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadGameEmbeddedDefault(t *testing.T) {
	cfg, err := LoadGame("")
	if err != nil {
		t.Fatalf("LoadGame failed: %v", err)
	}

	want := DefaultGameConfig()
	if cfg != want {
		t.Errorf("embedded default mismatch: got %+v, want %+v", cfg, want)
	}
}

func TestLoadGameExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	data := []byte("start_lives: 5\nmystery_wait: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame failed: %v", err)
	}

	if cfg.StartLives != 5 {
		t.Errorf("expected start_lives 5, got %d", cfg.StartLives)
	}
	if cfg.MysteryWait != 10 {
		t.Errorf("expected mystery_wait 10, got %d", cfg.MysteryWait)
	}
	// Dials the file omits stay zero so the sim keeps its defaults.
	if cfg.BulletCooldown != 0 {
		t.Errorf("expected omitted bullet_cooldown to be 0, got %d", cfg.BulletCooldown)
	}
}

func TestLoadGameMissingFile(t *testing.T) {
	_, err := LoadGame(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadGameMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("start_lives: [oops\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	_, err := LoadGame(path)
	if err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestLoadGameRejectsNegativeDial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	if err := os.WriteFile(path, []byte("respawn_frames: -1\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	_, err := LoadGame(path)
	if err == nil {
		t.Error("expected error for negative dial")
	}
}

func TestValidateZeroConfig(t *testing.T) {
	var cfg GameConfig
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero config should validate, got %v", err)
	}
}

func TestResolvePathPrefersExplicit(t *testing.T) {
	if got := ResolvePath("custom.yaml"); got != "custom.yaml" {
		t.Errorf("expected explicit path to win, got %q", got)
	}
}

func TestResolvePathFindsUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".spacedinvaders", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(dir, "invaders.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatalf("write user config: %v", err)
	}

	if got := ResolvePath(""); got != path {
		t.Errorf("expected user config %q, got %q", path, got)
	}
}

func TestResolvePathFallsBackToEmbedded(t *testing.T) {
	// Point HOME somewhere empty so no user config resolves.
	t.Setenv("HOME", t.TempDir())

	if got := ResolvePath(""); got != "" {
		t.Errorf("expected embedded fallback, got %q", got)
	}
}
