// Package core provides the simulation for the lighting demo: a tile map,
// a player and wandering zombies lit by a radial light centered on the player.
// This package is UI-agnostic and deterministic for a given seed.
package core

// Grid and light constants, in pixels and light steps.
const (
	BlockSize     = 8   // Tile spacing and the unit of light distance
	LightRadius   = 16  // Farthest visible distance, in blocks
	MaxBrightness = 255 // Brightness at distance 0
)

// Point is a position in pixel space.
type Point struct {
	X, Y int
}

// P is a shorthand constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Body is the lit state shared by tiles and zombies.
// Visible and Brightness are derived from the distance to the player on
// every lighting pass. Brightness is only meaningful while Visible is true.
type Body struct {
	Pos        Point
	Visible    bool
	Brightness uint8
}

// Tile is a static grid cell of the map.
type Tile struct {
	Body
}

func (t *Tile) body() *Body { return &t.Body }

// Zombie is a mobile entity pursuing the player.
type Zombie struct {
	Body
	Angle float64 // Facing, in degrees, for a sprite drawn pointing up
}

func (z *Zombie) body() *Body { return &z.Body }

// Lit is implemented by the entity kinds the lighting pass updates.
type Lit interface {
	body() *Body
}

// Bounds is the window area the player is clamped to, in pixels.
type Bounds struct {
	W, H int
}
