package core

import (
	"math"
	"math/rand"
)

// Zombie motion tuning.
const (
	JitterOdds  = 6 // One tick in JitterOdds applies a jitter offset
	JitterRange = 2 // Jitter offset per axis is in [-JitterRange, JitterRange]
)

// FacingAngle returns the sprite rotation, in degrees, for an entity at from
// facing a target at to. A sprite drawn pointing up needs no rotation when the
// target is straight above it. Coincident points give atan2(0, 0) = 0.
func FacingAngle(from, to Point) float64 {
	adjacent := float64(from.X - to.X)
	opposite := float64(from.Y - to.Y)
	return math.Atan2(opposite, adjacent)*180/math.Pi - 90
}

// StepZombies advances every zombie one tick toward the observer.
func StepZombies(zombies []Zombie, observer Point, rng *rand.Rand) {
	for i := range zombies {
		zombies[i].step(observer, rng)
	}
}

// step turns the zombie to face the target, drifts at most one pixel per axis
// toward it and occasionally jitters. Position is never clamped.
func (z *Zombie) step(target Point, rng *rand.Rand) {
	z.Angle = FacingAngle(z.Pos, target)

	z.Pos.X += pursue(z.Pos.X, target.X, rng)
	z.Pos.Y += pursue(z.Pos.Y, target.Y, rng)

	if rng.Intn(JitterOdds) == 0 {
		z.Pos.X += rng.Intn(2*JitterRange+1) - JitterRange
		z.Pos.Y += rng.Intn(2*JitterRange+1) - JitterRange
	}
}

// pursue returns the pursuit offset for one axis: 0 or 1 pixel toward target.
// The generator is not consulted when the axis is already aligned.
func pursue(from, target int, rng *rand.Rand) int {
	switch {
	case from < target:
		return rng.Intn(2)
	case from > target:
		return -rng.Intn(2)
	default:
		return 0
	}
}
