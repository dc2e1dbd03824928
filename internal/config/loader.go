package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMinopac loads minopac configuration.
// Search order: customPath -> ~/.minopac/configs/minopac.yaml -> ./configs/minopac.yaml -> embedded default
func LoadMinopac(customPath string) (MinopacConfig, error) {
	var cfg MinopacConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("minopac.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/minopac.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMinopacYAML, &cfg); err != nil {
		return DefaultMinopacConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// validate rejects configs the engine cannot run with.
func (c *MinopacConfig) validate() error {
	if c.Movement.PlayerSpeed <= 0 || c.Movement.GhostSpeed <= 0 {
		return fmt.Errorf("config: speeds must be positive")
	}
	if c.Fright.Duration < 0 {
		return fmt.Errorf("config: fright duration must not be negative")
	}
	if c.Gameplay.Lives <= 0 {
		return fmt.Errorf("config: lives must be positive")
	}
	if len(c.Ghosts) == 0 {
		return fmt.Errorf("config: at least one ghost required")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".minopac", "configs", filename)
}
