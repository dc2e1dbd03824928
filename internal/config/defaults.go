package config

import (
	_ "embed"
)

//go:embed defaults/minopac.yaml
var defaultMinopacYAML []byte

// DefaultMinopacConfig returns the default minopac configuration.
func DefaultMinopacConfig() MinopacConfig {
	return MinopacConfig{
		Movement: MinopacMovement{
			PlayerSpeed:          5.0, // 0.2s per tile
			GhostSpeed:           5.0,
			FrightenedMultiplier: 0.5,
			EatenMultiplier:      1.5,
			CollisionRadius:      0.44,
		},
		Fright: MinopacFright{
			Duration: 10.0,
		},
		Scoring: MinopacScoring{
			PelletPoints:      10,
			PowerPelletPoints: 50,
			GhostPoints:       200,
			MaxGhostPoints:    1600,
		},
		Gameplay: MinopacGameplay{
			Lives:        3,
			AmbushOffset: 4,
		},
		Ghosts: []GhostConfig{
			{Personality: "chaser"},
			{Personality: "ambusher"},
			{Personality: "wanderer"},
			{Personality: "accelerator", Accelerator: &AcceleratorCfg{
				Delegate:      "chaser",
				RampPerSecond: 0.02,
				MaxMultiplier: 1.6,
			}},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "minopac":
		return defaultMinopacYAML
	default:
		return nil
	}
}
