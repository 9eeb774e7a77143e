package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the brick breaker configuration.
// Search order: customPath -> ~/.bricks/config.yaml -> ./configs/bricks.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// A custom path is explicit, so its errors are reported
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "bricks.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	cfg, err := Parse(defaultBricksYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// the keys it overrides.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricks", filename)
}
