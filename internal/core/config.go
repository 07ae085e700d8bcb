package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic simulation
}

// DefaultConfig returns the runtime settings used when the terminal size
// is unknown. A zero seed is replaced by the current time when a game starts.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// HUDReserve is the number of columns at the right end of screen row 0 that
// games leave free for the driver's status label.
const HUDReserve = 10

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Tick   uint64 // Ticks simulated since the last reset
	Paused bool   // Whether the simulation is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
