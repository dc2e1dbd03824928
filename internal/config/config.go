// Package config provides YAML-based game configuration loading and
// difficulty presets for minopac.
package config

// MinopacConfig contains all tuning for the minopac game.
type MinopacConfig struct {
	Movement MinopacMovement `yaml:"movement"`
	Fright   MinopacFright   `yaml:"fright"`
	Scoring  MinopacScoring  `yaml:"scoring"`
	Gameplay MinopacGameplay `yaml:"gameplay"`
	Ghosts   []GhostConfig   `yaml:"ghosts"`
}

// MinopacMovement defines agent speeds. Speeds are in tiles per second;
// multipliers apply on top of the ghost base speed in the matching mode.
type MinopacMovement struct {
	PlayerSpeed          float64 `yaml:"player_speed"`
	GhostSpeed           float64 `yaml:"ghost_speed"`
	FrightenedMultiplier float64 `yaml:"frightened_multiplier"` // < 1: frightened ghosts crawl
	EatenMultiplier      float64 `yaml:"eaten_multiplier"`      // > 1: eaten ghosts dash home
	CollisionRadius      float64 `yaml:"collision_radius"`      // fraction of tile size
}

// MinopacFright defines power-pellet fright behavior.
type MinopacFright struct {
	Duration float64 `yaml:"duration"` // seconds
}

// MinopacScoring defines point values.
type MinopacScoring struct {
	PelletPoints      int `yaml:"pellet_points"`
	PowerPelletPoints int `yaml:"power_pellet_points"`
	GhostPoints       int `yaml:"ghost_points"`     // base; doubles per combo
	MaxGhostPoints    int `yaml:"max_ghost_points"` // combo cap
}

// MinopacGameplay defines round structure.
type MinopacGameplay struct {
	Lives        int `yaml:"lives"`
	AmbushOffset int `yaml:"ambush_offset"` // tiles ahead of the player for the ambusher
}

// GhostConfig declares one ghost in the roster.
type GhostConfig struct {
	Personality string          `yaml:"personality"`
	Accelerator *AcceleratorCfg `yaml:"accelerator,omitempty"`
}

// AcceleratorCfg tunes the accelerator personality's speed ramp.
type AcceleratorCfg struct {
	Delegate      string  `yaml:"delegate"`       // "chaser" or "wanderer"
	RampPerSecond float64 `yaml:"ramp_per_second"`
	MaxMultiplier float64 `yaml:"max_multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyMinopacPreset modifies the config based on a difficulty preset.
func ApplyMinopacPreset(cfg *MinopacConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Movement.GhostSpeed *= 0.85
		cfg.Fright.Duration += 2
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Movement.GhostSpeed *= 1.15
		cfg.Fright.Duration -= 3
		cfg.Gameplay.Lives = 2
	}
	// Normal and fixed keep the config as loaded.
}
