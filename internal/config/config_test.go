package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := LoadMinopac("")
	if err != nil {
		t.Fatalf("LoadMinopac: %v", err)
	}
	want := DefaultMinopacConfig()

	if cfg.Movement.PlayerSpeed != want.Movement.PlayerSpeed {
		t.Errorf("player speed = %v, expected %v", cfg.Movement.PlayerSpeed, want.Movement.PlayerSpeed)
	}
	if cfg.Fright.Duration != want.Fright.Duration {
		t.Errorf("fright duration = %v, expected %v", cfg.Fright.Duration, want.Fright.Duration)
	}
	if cfg.Scoring.MaxGhostPoints != want.Scoring.MaxGhostPoints {
		t.Errorf("max ghost points = %v, expected %v", cfg.Scoring.MaxGhostPoints, want.Scoring.MaxGhostPoints)
	}
	if len(cfg.Ghosts) != 4 {
		t.Fatalf("ghost roster = %d, expected 4", len(cfg.Ghosts))
	}
	if cfg.Ghosts[3].Personality != "accelerator" || cfg.Ghosts[3].Accelerator == nil {
		t.Errorf("fourth ghost = %+v, expected accelerator with tuning", cfg.Ghosts[3])
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := `
movement:
  player_speed: 8.0
  ghost_speed: 4.0
  frightened_multiplier: 0.5
  eaten_multiplier: 1.5
  collision_radius: 0.44
fright:
  duration: 3.0
scoring:
  pellet_points: 1
  power_pellet_points: 5
  ghost_points: 100
  max_ghost_points: 800
gameplay:
  lives: 1
  ambush_offset: 2
ghosts:
  - personality: wanderer
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMinopac(path)
	if err != nil {
		t.Fatalf("LoadMinopac: %v", err)
	}
	if cfg.Movement.PlayerSpeed != 8.0 || cfg.Fright.Duration != 3.0 || cfg.Gameplay.Lives != 1 {
		t.Errorf("custom config not applied: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadMinopac("/nonexistent/minopac.yaml"); err == nil {
		t.Error("expected error for missing custom path")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("movement: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMinopac(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	// Parses but fails validation.
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("movement:\n  player_speed: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMinopac(invalid); err == nil {
		t.Error("expected validation error for negative speed")
	}
}

func TestApplyPresets(t *testing.T) {
	base := DefaultMinopacConfig()

	easy := DefaultMinopacConfig()
	ApplyMinopacPreset(&easy, DifficultyEasy)
	if easy.Movement.GhostSpeed >= base.Movement.GhostSpeed {
		t.Error("easy preset should slow ghosts down")
	}
	if easy.Gameplay.Lives <= base.Gameplay.Lives {
		t.Error("easy preset should grant extra lives")
	}

	hard := DefaultMinopacConfig()
	ApplyMinopacPreset(&hard, DifficultyHard)
	if hard.Movement.GhostSpeed <= base.Movement.GhostSpeed {
		t.Error("hard preset should speed ghosts up")
	}
	if hard.Fright.Duration >= base.Fright.Duration {
		t.Error("hard preset should shorten fright")
	}

	fixed := DefaultMinopacConfig()
	ApplyMinopacPreset(&fixed, DifficultyFixed)
	if fixed.Movement.GhostSpeed != base.Movement.GhostSpeed || fixed.Gameplay.Lives != base.Gameplay.Lives {
		t.Error("fixed preset should not change the config")
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if GetDefaultYAML("minopac") == nil {
		t.Error("expected embedded yaml for minopac")
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("expected nil for unknown game")
	}
}
