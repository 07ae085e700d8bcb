package lighting

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/tui-lighting/internal/core"
	"github.com/vovakirdan/tui-lighting/internal/games/lighting/core"
)

// TileChar is drawn for every lit tile.
const TileChar = '▓'

// dangerDistance is the light distance at which the nearest zombie is
// highlighted in the HUD.
const dangerDistance = 4

// Each tile is drawn two columns wide so the light circle looks round in a
// terminal whose cells are about twice as tall as they are wide.
const (
	cellW     = 2
	hudHeight = 1
)

// facingGlyphs point in an entity's facing direction, clockwise from up.
var facingGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// facingGlyph picks the arrow nearest to a sprite rotation in degrees.
// Zombies and the player share the rotation convention.
func facingGlyph(angle float64) rune {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return facingGlyphs[int(math.Round(a/45))%len(facingGlyphs)]
}

// viewport maps world pixels to screen cells with the player tile centered.
type viewport struct {
	originX, originY int // World tile at the top-left of the map area
	cols, rows       int // Map area size in tiles
}

func newViewport(dst *platformcore.Screen, player core.Point) viewport {
	cols := dst.Width() / cellW
	rows := dst.Height() - hudHeight
	return viewport{
		originX: platformcore.FloorDiv(player.X, core.BlockSize) - cols/2,
		originY: platformcore.FloorDiv(player.Y, core.BlockSize) - rows/2,
		cols:    cols,
		rows:    rows,
	}
}

// project returns the screen cell for a world position, if it is on screen.
func (v viewport) project(p core.Point) (x, y int, ok bool) {
	tx := platformcore.FloorDiv(p.X, core.BlockSize) - v.originX
	ty := platformcore.FloorDiv(p.Y, core.BlockSize) - v.originY
	if tx < 0 || tx >= v.cols || ty < 0 || ty >= v.rows {
		return 0, 0, false
	}
	return tx * cellW, ty + hudHeight, true
}

// Render draws the lit map, the zombies and the player.
// Only visible entities are drawn, tinted by their brightness.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if dst.Width() < cellW*2 || dst.Height() < hudHeight+2 {
		dst.DrawText(0, 0, "Window too small")
		return
	}

	w := g.world
	view := newViewport(dst, w.Player.Pos)

	for i := range w.Tiles {
		t := &w.Tiles[i]
		if !t.Visible {
			continue
		}
		if x, y, ok := view.project(t.Pos); ok {
			for dx := range cellW {
				dst.SetShaded(x+dx, y, TileChar, t.Brightness)
			}
		}
	}

	for i := range w.Zombies {
		z := &w.Zombies[i]
		if !z.Visible {
			continue
		}
		if x, y, ok := view.project(z.Pos); ok {
			dst.SetShaded(x, y, facingGlyph(z.Angle), z.Brightness)
		}
	}

	if x, y, ok := view.project(w.Player.Pos); ok {
		dst.SetColor(x, y, facingGlyph(w.Player.Angle), platformcore.ColorBrightYellow)
	}

	g.renderHUD(dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// hudSegment is a run of HUD text in one color.
type hudSegment struct {
	text  string
	color platformcore.Color
}

// renderHUD draws the top status line, leaving the reserved right-hand
// columns of the row to the driver.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	stats := g.world.Stats()
	pos := g.world.Player.Pos

	nearest := hudSegment{"-", platformcore.ColorGray}
	if stats.NearestZombie >= 0 {
		nearest.text = fmt.Sprint(stats.NearestZombie)
		if stats.NearestZombie <= dangerDistance {
			nearest.color = platformcore.ColorRed
		}
	}

	segments := []hudSegment{
		{fmt.Sprintf(" %s  Zombies: %d (%d lit)  Nearest: ", g.Title(), stats.Zombies, stats.VisibleZombies), platformcore.ColorGray},
		nearest,
		{fmt.Sprintf("  Pos: %d,%d", pos.X, pos.Y), platformcore.ColorGray},
	}

	limit := dst.Width() - platformcore.HUDReserve
	x := 0
	for _, seg := range segments {
		x += drawClipped(dst, x, 0, seg.text, seg.color, limit)
	}
}

// drawClipped draws text from x without passing column limit and returns
// the number of cells written.
func drawClipped(dst *platformcore.Screen, x, y int, text string, c platformcore.Color, limit int) int {
	runes := []rune(text)
	n := platformcore.Clamp(limit-x, 0, len(runes))
	dst.DrawTextColor(x, y, string(runes[:n]), c)
	return n
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *platformcore.Screen, title, hint string) {
	boxW := platformcore.Clamp(max(len(title), len(hint))+4, 0, dst.Width())
	boxH := 5
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title, platformcore.ColorWhite)
	dst.DrawTextCentered(box.Y+3, hint, platformcore.ColorGray)
}
