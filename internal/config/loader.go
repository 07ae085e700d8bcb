package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is the source reported when no config file was found.
const SourceEmbedded = "embedded"

// Load loads the configuration for a variant and reports where it came from.
// Search order: customPath -> ~/.lighting/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default.
//
// Values missing from a file keep the variant defaults. A custom path that
// cannot be read, parsed or validated is an error; the other locations are
// skipped when unusable.
func Load(v Variant, customPath string) (LightingConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LightingConfig{}, customPath, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(v, data)
		if err != nil {
			return LightingConfig{}, customPath, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	filename := string(v) + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(v, data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(v, GetDefaultYAML(v)); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return Default(v), SourceEmbedded, nil // Fallback to hardcoded if embed fails
}

// parse decodes YAML over the variant defaults and validates the result.
func parse(v Variant, data []byte) (LightingConfig, error) {
	cfg := Default(v)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LightingConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return LightingConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lighting", "configs", filename)
}
