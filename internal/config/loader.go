package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "match3.yaml"

// LoadMatch3 loads Match-3 configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml -> ./configs/match3.yaml
// -> embedded default -> hardcoded default.
// Files only need the keys they change; the rest keep default values.
func LoadMatch3(customPath string) (Match3Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Match3Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Match3Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultMatch3YAML)
	if err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data on top of the hardcoded defaults and validates it.
func parse(data []byte) (Match3Config, error) {
	cfg := DefaultMatch3Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Match3Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Match3Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a file in ~/.match3/configs.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}

// ApplyPreset adjusts the configuration for a difficulty preset.
// Easy drops a color, hard adds one; fixed turns progression off.
func ApplyPreset(cfg *Match3Config, preset DifficultyPreset) {
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	switch preset {
	case DifficultyEasy:
		if cfg.Board.Colors > 3 {
			cfg.Board.Colors--
		}
	case DifficultyHard:
		cfg.Board.Colors++
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
