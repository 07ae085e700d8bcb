package core

import platformcore "github.com/vovakirdan/tui-lighting/internal/core"

// Direction is a movement key direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Player is the observer: the light source and the target zombies pursue.
// Velocity is set by key edges, not by polling held keys.
type Player struct {
	Pos   Point
	MoveX int
	MoveY int
	Speed int
	Angle float64 // Facing, same convention as Zombie.Angle
}

// NewPlayer creates a stationary player.
func NewPlayer(pos Point, speed int) Player {
	return Player{Pos: pos, Speed: speed}
}

// Press applies a key press: it sets the velocity on that key's axis only,
// so a vertical and a horizontal press combine into a diagonal.
func (p *Player) Press(d Direction) {
	switch d {
	case DirUp:
		p.MoveY = -p.Speed
	case DirDown:
		p.MoveY = p.Speed
	case DirLeft:
		p.MoveX = -p.Speed
	case DirRight:
		p.MoveX = p.Speed
	}
}

// Release applies a key release. Any release stops both axes.
func (p *Player) Release() {
	p.MoveX = 0
	p.MoveY = 0
}

// Moving reports whether the player has a non-zero velocity.
func (p *Player) Moving() bool {
	return p.MoveX != 0 || p.MoveY != 0
}

// Advance moves the player by its velocity and clamps it to [0, W] x [0, H].
// The facing angle follows the direction of travel and is kept while idle.
func (p *Player) Advance(b Bounds) {
	if p.Moving() {
		p.Angle = FacingAngle(p.Pos, P(p.Pos.X+p.MoveX, p.Pos.Y+p.MoveY))
	}
	p.Pos.X = platformcore.Clamp(p.Pos.X+p.MoveX, 0, b.W)
	p.Pos.Y = platformcore.Clamp(p.Pos.Y+p.MoveY, 0, b.H)
}
