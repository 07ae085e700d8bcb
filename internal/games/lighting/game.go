// Package lighting provides the radial lighting demo: a tile map lit around
// the player while zombies close in. Two variants are registered, differing
// only in configuration.
package lighting

import (
	platformcore "github.com/vovakirdan/tui-lighting/internal/core"
	"github.com/vovakirdan/tui-lighting/internal/config"
	"github.com/vovakirdan/tui-lighting/internal/games/lighting/core"
	"github.com/vovakirdan/tui-lighting/internal/registry"
)

// Package-level config path, set by the CLI before the game is created.
var configPath string

// SetConfigPath sets the custom config file used on Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts the lighting simulation to the platform.
type Game struct {
	variant config.Variant
	cfg     config.LightingConfig
	world   *core.World

	idleTicks int // Ticks since the last movement key
	paused    bool
}

// New creates the 1280x720 variant.
func New() *Game {
	return &Game{variant: config.VariantClassic}
}

// NewHD creates the 1920x1080 variant.
func NewHD() *Game {
	return &Game{variant: config.VariantHD}
}

func init() {
	registry.Register(string(config.VariantClassic), func() registry.Game {
		return New()
	})
	registry.Register(string(config.VariantHD), func() registry.Game {
		return NewHD()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == config.VariantHD {
		return "Lighting Test (HD)"
	}
	return "Lighting Test"
}

// Reset loads the variant config and generates a new level from the seed.
// The screen size is not needed: Render fits the camera to any screen.
// An unusable config falls back to the variant defaults; the CLI validates
// the config before a game is started.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	lc, _, err := config.Load(g.variant, configPath)
	if err != nil {
		lc = config.Default(g.variant)
	}
	g.cfg = lc
	g.newWorld(cfg.Seed)
}

// newWorld regenerates the level and clears transient input state.
func (g *Game) newWorld(seed int64) {
	g.world = core.NewWorld(core.WorldConfig{
		Width:        g.cfg.Window.Width,
		Height:       g.cfg.Window.Height,
		ZombieChance: g.cfg.Level.ZombieChance,
		PlayerSpeed:  g.cfg.Player.Speed,
	}, seed)
	g.idleTicks = 0
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionRestart) {
		g.newWorld(g.world.NextSeed())
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.applyInput(in)
	g.world.Step()

	return platformcore.StepResult{State: g.State()}
}

// applyInput turns the frame's key presses into player key edges.
// Terminals deliver no key-up events, so a release is synthesized once no
// movement key has arrived for HoldTicks ticks; key repeat keeps a held key
// alive.
func (g *Game) applyInput(in platformcore.InputFrame) {
	p := &g.world.Player

	if in.Has(platformcore.ActionStop) {
		p.Release()
		g.idleTicks = 0
	}

	moves := in.Movement()
	for _, a := range moves {
		if d, ok := directionFor(a); ok {
			p.Press(d)
		}
	}

	switch {
	case len(moves) > 0:
		g.idleTicks = 0
	case p.Moving():
		g.idleTicks++
		if g.idleTicks >= g.cfg.Input.HoldTicks {
			p.Release()
			g.idleTicks = 0
		}
	}
}

// directionFor maps a movement action to a player direction.
func directionFor(a platformcore.Action) (core.Direction, bool) {
	switch a {
	case platformcore.ActionUp:
		return core.DirUp, true
	case platformcore.ActionDown:
		return core.DirDown, true
	case platformcore.ActionLeft:
		return core.DirLeft, true
	case platformcore.ActionRight:
		return core.DirRight, true
	default:
		return 0, false
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	var tick uint64
	if g.world != nil {
		tick = g.world.Tick()
	}
	return platformcore.GameState{
		Tick:   tick,
		Paused: g.paused,
	}
}

// Config returns the configuration loaded on the last Reset.
func (g *Game) Config() config.LightingConfig {
	return g.cfg
}

// Snapshot returns the world snapshot for determinism checks.
func (g *Game) Snapshot() core.Snapshot {
	return g.world.Snapshot()
}
