package config

import (
	_ "embed"
)

//go:embed defaults/lighting.yaml
var defaultLightingYAML []byte

//go:embed defaults/lighting_hd.yaml
var defaultLightingHDYAML []byte

// DefaultLightingConfig returns the 1280x720 configuration.
func DefaultLightingConfig() LightingConfig {
	return LightingConfig{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
		},
		Level: LevelConfig{
			ZombieChance: 256,
		},
		Player: PlayerConfig{
			Speed: 2,
		},
		Input: InputConfig{
			HoldTicks: 30,
		},
	}
}

// DefaultHDConfig returns the 1920x1080 configuration.
func DefaultHDConfig() LightingConfig {
	cfg := DefaultLightingConfig()
	cfg.Window = WindowConfig{Width: 1920, Height: 1080}
	cfg.Level.ZombieChance = 512
	return cfg
}

// Default returns the hardcoded configuration for a variant.
// Unknown variants get the classic configuration.
func Default(v Variant) LightingConfig {
	if v == VariantHD {
		return DefaultHDConfig()
	}
	return DefaultLightingConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(v Variant) []byte {
	switch v {
	case VariantClassic:
		return defaultLightingYAML
	case VariantHD:
		return defaultLightingHDYAML
	default:
		return nil
	}
}
