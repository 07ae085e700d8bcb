package core

import "math/rand"

// LevelSpec describes the map generated at level init.
type LevelSpec struct {
	Width        int // Window width in pixels
	Height       int // Window height in pixels
	ZombieChance int // Each cell spawns a zombie with probability 1/ZombieChance; <= 0 disables spawning
}

// Cols returns the number of tile columns covering the window.
func (s LevelSpec) Cols() int {
	return max(s.Width/BlockSize, 0)
}

// Rows returns the number of tile rows covering the window.
func (s LevelSpec) Rows() int {
	return max(s.Height/BlockSize, 0)
}

// GenerateLevel lays out tiles row-major at BlockSize spacing and rolls each
// cell independently for a zombie spawned at the cell position.
// Tiles start invisible until the first lighting pass.
func GenerateLevel(spec LevelSpec, rng *rand.Rand) ([]Tile, []Zombie) {
	cols, rows := spec.Cols(), spec.Rows()
	tiles := make([]Tile, 0, cols*rows)
	var zombies []Zombie

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := P(c*BlockSize, r*BlockSize)
			tiles = append(tiles, Tile{Body: Body{Pos: pos}})

			if spec.ZombieChance > 0 && rng.Intn(spec.ZombieChance) == 0 {
				zombies = append(zombies, Zombie{Body: Body{Pos: pos}})
			}
		}
	}
	return tiles, zombies
}
