package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the ball game configuration.
// Search order: customPath -> ~/.ballgame/configs/ballgame.yaml -> ./configs/ballgame.yaml -> embedded default.
// Files only need to name the values they override; everything else keeps its default.
// The first file found is used; if it does not parse, Load fails rather than
// falling through to the next location.
func Load(customPath string) (BallGameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BallGameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BallGameConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ballgame.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			cfg, err := Parse(data)
			if err != nil {
				return BallGameConfig{}, fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			return cfg, nil
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "ballgame.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		cfg, err := Parse(data)
		if err != nil {
			return BallGameConfig{}, fmt.Errorf("failed to parse config %s: %w", localPath, err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBallGameYAML)
	if err != nil {
		return DefaultBallGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (BallGameConfig, error) {
	cfg := DefaultBallGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BallGameConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BallGameConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg BallGameConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ballgame", "configs", filename)
}
