package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGame loads the gameplay tuning. An explicit path must load
// cleanly or the call fails; an empty path returns the embedded
// default with no filesystem search, so the simulation behaves the
// same everywhere. Callers wanting the search order resolve a path
// with ResolvePath first.
func LoadGame(customPath string) (GameConfig, error) {
	var cfg GameConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ResolvePath picks the tuning file the cabinet should use.
// Search order: customPath -> ~/.spacedinvaders/configs/invaders.yaml -> ./configs/invaders.yaml -> "" (embedded default)
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		if _, err := os.Stat(userCfgPath); err == nil {
			return userCfgPath
		}
	}
	local := filepath.Join("configs", "invaders.yaml")
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return ""
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacedinvaders", "configs", filename)
}
