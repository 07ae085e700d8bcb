// Package registry maps lighting variant IDs to game factories.
// Each variant package registers itself in an init() function, and the CLI
// creates variants by ID for play, report and list.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-lighting/internal/core"
)

// Game is the interface every lighting variant implements.
// Games hold simulation state only and never import Bubble Tea.
// The TUI driver maps keys to actions, paces ticks and paints the screen.
type Game interface {
	// ID returns the variant identifier (e.g., "lighting", "lighting_hd").
	// Used for CLI commands and config file lookup.
	ID() string

	// Title returns a human-readable name for display (e.g., "Lighting Test").
	Title() string

	// Reset builds a fresh world from the RuntimeConfig seed.
	// The driver calls it once when the game starts. A terminal resize only
	// resizes the screen buffer, and restart is handled inside Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick using the actions
	// pressed since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the visible map and HUD into dst. It clears dst first and
	// leaves the last core.HUDReserve columns of row 0 free.
	Render(dst *core.Screen)

	// State returns the current game state (tick, paused).
	State() core.GameState
}

// GameInfo describes a registered variant for the list command.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet Reset, variant instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
