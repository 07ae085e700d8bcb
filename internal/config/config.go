// Package config provides YAML-based configuration loading for the
// lighting simulation variants.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Variant names a registered simulation variant. Variants differ only in
// configuration values.
type Variant string

const (
	VariantClassic Variant = "lighting"
	VariantHD      Variant = "lighting_hd"
)

// LightingConfig contains all configuration for a lighting variant.
type LightingConfig struct {
	Window WindowConfig `yaml:"window"`
	Level  LevelConfig  `yaml:"level"`
	Player PlayerConfig `yaml:"player"`
	Input  InputConfig  `yaml:"input"`
}

// WindowConfig defines the simulated window in pixels.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LevelConfig defines level generation.
type LevelConfig struct {
	ZombieChance int `yaml:"zombie_chance"` // One zombie per N cells on average
}

// PlayerConfig defines player movement.
type PlayerConfig struct {
	Speed int `yaml:"speed"` // Pixels per tick
}

// InputConfig defines how terminal key presses become key edges.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks without a movement key before a release
}

// Validate checks that every value is usable by the simulation.
func (c LightingConfig) Validate() error {
	switch {
	case c.Window.Width <= 0:
		return fmt.Errorf("%w: window.width must be positive, got %d", ErrInvalidConfig, c.Window.Width)
	case c.Window.Height <= 0:
		return fmt.Errorf("%w: window.height must be positive, got %d", ErrInvalidConfig, c.Window.Height)
	case c.Level.ZombieChance < 0:
		return fmt.Errorf("%w: level.zombie_chance must not be negative, got %d", ErrInvalidConfig, c.Level.ZombieChance)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player.speed must be positive, got %d", ErrInvalidConfig, c.Player.Speed)
	case c.Input.HoldTicks <= 0:
		return fmt.Errorf("%w: input.hold_ticks must be positive, got %d", ErrInvalidConfig, c.Input.HoldTicks)
	}
	return nil
}
