package core

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
)

// WorldConfig contains the parameters for building a World.
type WorldConfig struct {
	Width        int // Window width in pixels
	Height       int // Window height in pixels
	ZombieChance int // One spawn in ZombieChance cells
	PlayerSpeed  int // Pixels per tick while a movement key is active
}

// World is the complete simulation state. Tiles and zombies live in dense
// arenas; an entity has no identity beyond its index.
type World struct {
	Tiles   []Tile
	Zombies []Zombie
	Player  Player

	bounds Bounds
	rng    *rand.Rand
	tick   uint64
}

// NewWorld generates a level from cfg using a generator seeded with seed.
// The player starts at the window center.
func NewWorld(cfg WorldConfig, seed int64) *World {
	rng := rand.New(rand.NewSource(seed))
	tiles, zombies := GenerateLevel(LevelSpec{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ZombieChance: cfg.ZombieChance,
	}, rng)

	return &World{
		Tiles:   tiles,
		Zombies: zombies,
		Player:  NewPlayer(P(cfg.Width/2, cfg.Height/2), cfg.PlayerSpeed),
		bounds:  Bounds{W: cfg.Width, H: cfg.Height},
		rng:     rng,
	}
}

// Step advances the simulation by one tick.
//
// Order matters: zombies move first so the zombie lighting pass sees their
// new positions; the player moves last, so every pass this tick uses the
// position clamped at the end of the previous tick.
func (w *World) Step() {
	w.tick++
	observer := w.Player.Pos

	StepZombies(w.Zombies, observer, w.rng)
	ApplyLighting(w.Tiles, observer)
	ApplyLighting(w.Zombies, observer)

	w.Player.Advance(w.bounds)
}

// Tick returns the number of steps taken.
func (w *World) Tick() uint64 {
	return w.tick
}

// Bounds returns the window area in pixels.
func (w *World) Bounds() Bounds {
	return w.bounds
}

// NextSeed draws a seed from the world generator, for deterministic restarts.
func (w *World) NextSeed() int64 {
	return w.rng.Int63()
}

// Stats summarizes the lit state of the world.
type Stats struct {
	Tiles          int
	VisibleTiles   int
	Zombies        int
	VisibleZombies int
	NearestZombie  int // Light distance of the closest zombie, -1 when there are none
}

// Stats counts visible entities and finds the closest zombie.
func (w *World) Stats() Stats {
	s := Stats{
		Tiles:         len(w.Tiles),
		Zombies:       len(w.Zombies),
		NearestZombie: -1,
	}
	for i := range w.Tiles {
		if w.Tiles[i].Visible {
			s.VisibleTiles++
		}
	}
	for i := range w.Zombies {
		z := &w.Zombies[i]
		if z.Visible {
			s.VisibleZombies++
		}
		d := LightDistance(z.Pos, w.Player.Pos)
		if s.NearestZombie < 0 || d < s.NearestZombie {
			s.NearestZombie = d
		}
	}
	return s
}

// Snapshot captures the world state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	PlayerX    int
	PlayerY    int
	Zombies    int
	ZombieHash uint64 // FNV-1a over zombie positions in arena order
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	h := fnv.New64a()
	var buf [16]byte
	for i := range w.Zombies {
		binary.LittleEndian.PutUint64(buf[:8], uint64(w.Zombies[i].Pos.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(w.Zombies[i].Pos.Y))
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never returns an error
	}

	return Snapshot{
		Tick:       w.tick,
		PlayerX:    w.Player.Pos.X,
		PlayerY:    w.Player.Pos.Y,
		Zombies:    len(w.Zombies),
		ZombieHash: h.Sum64(),
	}
}
