package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in the user and local config directories.
const configFile = "slide.yaml"

// LoadSlide loads the sliding puzzle configuration.
// Search order: customPath -> ~/.slide/configs/slide.yaml -> ./configs/slide.yaml -> embedded default
//
// Values missing from a file keep their defaults. A custom path that cannot be
// read, parsed or validated is an error; the other locations are skipped silently.
func LoadSlide(customPath string) (SlideConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultSlideConfig(), err
		}
		if err := cfg.Validate(); err != nil {
			return DefaultSlideConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{UserConfigPath(), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultSlideConfig()
	if err := yaml.Unmarshal(defaultSlideYAML, &cfg); err != nil {
		return DefaultSlideConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses a config file over the defaults.
func loadFile(path string) (SlideConfig, error) {
	cfg := DefaultSlideConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// UserConfigPath returns the path of the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slide", "configs", configFile)
}

// Write stores cfg as YAML at path, creating parent directories.
func Write(path string, cfg SlideConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}
