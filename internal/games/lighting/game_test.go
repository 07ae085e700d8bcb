package lighting

import (
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-lighting/internal/core"
	"github.com/vovakirdan/tui-lighting/internal/games/lighting/core"
	"github.com/vovakirdan/tui-lighting/internal/registry"
)

// isolate keeps user and local config files out of the test.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	SetConfigPath("")
}

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	isolate(t)
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func press(actions ...platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"lighting", "lighting_hd"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestResetUsesVariantConfig(t *testing.T) {
	isolate(t)
	tests := []struct {
		game          *Game
		width, height int
	}{
		{New(), 1280, 720},
		{NewHD(), 1920, 1080},
	}

	for _, tc := range tests {
		tc.game.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
		b := tc.game.world.Bounds()
		if b.W != tc.width || b.H != tc.height {
			t.Errorf("%s: bounds = %+v, expected %dx%d", tc.game.ID(), b, tc.width, tc.height)
		}
		wantTiles := (tc.width / core.BlockSize) * (tc.height / core.BlockSize)
		if len(tc.game.world.Tiles) != wantTiles {
			t.Errorf("%s: %d tiles, expected %d", tc.game.ID(), len(tc.game.world.Tiles), wantTiles)
		}
	}
}

func TestStepMovesPlayer(t *testing.T) {
	g := newGame(t, 1)
	start := g.world.Player.Pos

	g.Step(press(platformcore.ActionRight))
	g.Step(press(platformcore.ActionUp))

	want := core.P(start.X+4, start.Y-2)
	if g.world.Player.Pos != want {
		t.Errorf("player at %v, expected %v", g.world.Player.Pos, want)
	}
}

func TestHeldKeyReleasesAfterHoldTicks(t *testing.T) {
	g := newGame(t, 1)
	hold := g.Config().Input.HoldTicks

	g.Step(press(platformcore.ActionRight))
	for i := 1; i < hold; i++ {
		g.Step(platformcore.NewInputFrame())
		if !g.world.Player.Moving() {
			t.Fatalf("released early after %d idle ticks", i)
		}
	}

	g.Step(platformcore.NewInputFrame())
	if g.world.Player.Moving() {
		t.Errorf("player still moving after %d idle ticks", hold)
	}
}

func TestRepeatedKeyKeepsMoving(t *testing.T) {
	g := newGame(t, 1)
	hold := g.Config().Input.HoldTicks

	for i := 0; i < hold*3; i++ {
		in := platformcore.NewInputFrame()
		if i%(hold-1) == 0 {
			in.Set(platformcore.ActionDown)
		}
		g.Step(in)
		if !g.world.Player.Moving() {
			t.Fatalf("key repeat should keep the player moving, stopped at tick %d", i)
		}
	}
}

func TestStopReleasesImmediately(t *testing.T) {
	g := newGame(t, 1)
	g.Step(press(platformcore.ActionLeft))
	pos := g.world.Player.Pos

	g.Step(press(platformcore.ActionStop))
	if g.world.Player.Moving() || g.world.Player.Pos != pos {
		t.Errorf("stop should halt the player, moved to %v", g.world.Player.Pos)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newGame(t, 1)
	g.Step(platformcore.NewInputFrame())

	res := g.Step(press(platformcore.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	before := g.Snapshot()
	for range 10 {
		g.Step(press(platformcore.ActionRight))
	}
	if g.Snapshot() != before {
		t.Error("paused game should not advance")
	}

	res = g.Step(press(platformcore.ActionPause))
	if res.State.Paused || res.State.Tick != before.Tick+1 {
		t.Errorf("unpause should resume stepping, got %+v", res.State)
	}
}

func TestRestartRegeneratesLevel(t *testing.T) {
	g1 := newGame(t, 7)
	g2 := newGame(t, 7)
	for range 30 {
		g1.Step(platformcore.NewInputFrame())
		g2.Step(platformcore.NewInputFrame())
	}

	res := g1.Step(press(platformcore.ActionRestart))
	g2.Step(press(platformcore.ActionRestart))

	if res.State.Tick != 0 {
		t.Errorf("restart should reset the tick, got %d", res.State.Tick)
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Error("restart seeds should follow the original seed")
	}
	if g1.world.Player.Pos != core.P(640, 360) {
		t.Errorf("player should restart at the center, got %v", g1.world.Player.Pos)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]platformcore.InputFrame, 240)
	for i := range inputs {
		inputs[i] = platformcore.NewInputFrame()
		switch {
		case i%40 == 0:
			inputs[i].Set(platformcore.ActionLeft)
		case i%25 == 0:
			inputs[i].Set(platformcore.ActionDown)
		}
	}

	run := func() core.Snapshot {
		g := newGame(t, 2024)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("runs diverged:\n%+v\n%+v", a, b)
	}
}

func TestRenderCentersPlayer(t *testing.T) {
	g := newGame(t, 1)
	g.world.Zombies = nil
	g.Step(platformcore.NewInputFrame())

	dst := platformcore.NewScreen(80, 24)
	g.Render(dst)

	// 40x23 tile view: player tile at column 20, row 11 of the map area
	if cell := dst.GetCell(40, 12); cell.Rune != '↑' || cell.Color != platformcore.ColorBrightYellow {
		t.Fatalf("expected player facing up at (40, 12), got %+v in row %q", cell, dst.Row(12))
	}

	// Neighbouring tile is one block away
	cell := dst.GetCell(42, 12)
	if !cell.Shaded || cell.Shade != core.BrightnessAt(1) || cell.Rune != TileChar {
		t.Errorf("tile next to the player = %+v, expected shade %d", cell, core.BrightnessAt(1))
	}

	// Left edge of the view is 20 blocks away, beyond the light radius
	if cell := dst.GetCell(0, 12); cell.Rune != ' ' {
		t.Errorf("dark tile should not be drawn, got %+v", cell)
	}

	if !strings.Contains(dst.Row(0), "Lighting Test") {
		t.Errorf("HUD missing title: %q", dst.Row(0))
	}
}

func TestRenderDrawsVisibleZombies(t *testing.T) {
	g := newGame(t, 1)
	g.world.Zombies = []core.Zombie{
		{Body: core.Body{Pos: core.P(600, 360)}},  // 5 blocks left of the player
		{Body: core.Body{Pos: core.P(640, 1000)}}, // far below, stays dark
	}
	g.Step(platformcore.NewInputFrame())

	dst := platformcore.NewScreen(80, 24)
	g.Render(dst)

	z := g.world.Zombies[0]
	x, y, ok := newViewport(dst, g.world.Player.Pos).project(z.Pos)
	if !ok {
		t.Fatalf("zombie at %v should be on screen", z.Pos)
	}
	cell := dst.GetCell(x, y)
	if cell.Rune != facingGlyph(z.Angle) || cell.Shade != z.Brightness {
		t.Errorf("zombie cell = %+v, expected %q at %d", cell, facingGlyph(z.Angle), z.Brightness)
	}
	if g.world.Zombies[1].Visible {
		t.Error("far zombie should be dark")
	}
}

func TestRenderPlayerFacesTravel(t *testing.T) {
	tests := []struct {
		dir      platformcore.Action
		expected rune
	}{
		{platformcore.ActionRight, '→'},
		{platformcore.ActionLeft, '←'},
		{platformcore.ActionDown, '↓'},
		{platformcore.ActionUp, '↑'},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			g := newGame(t, 1)
			g.world.Zombies = nil
			g.Step(press(tc.dir))

			dst := platformcore.NewScreen(80, 24)
			g.Render(dst)
			x, y, ok := newViewport(dst, g.world.Player.Pos).project(g.world.Player.Pos)
			if !ok {
				t.Fatal("player should be on screen")
			}
			if got := dst.GetCell(x, y).Rune; got != tc.expected {
				t.Errorf("player glyph = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestRenderHUDLeavesReservedColumns(t *testing.T) {
	isolate(t)
	g := NewHD()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	g.world.Player.Pos = core.P(1920, 1080)
	g.Step(platformcore.NewInputFrame())

	dst := platformcore.NewScreen(80, 24)
	g.Render(dst)

	row := []rune(dst.Row(0))
	if !strings.HasPrefix(string(row), " Lighting Test (HD)") {
		t.Fatalf("HUD missing title: %q", string(row))
	}
	reserved := string(row[80-platformcore.HUDReserve:])
	if strings.TrimSpace(reserved) != "" {
		t.Errorf("HUD should leave the last %d columns free, got %q", platformcore.HUDReserve, reserved)
	}
}

func TestRenderHUDNearestWarning(t *testing.T) {
	tests := []struct {
		name     string
		zombie   core.Point
		expected platformcore.Color
	}{
		{"close", core.P(656, 360), platformcore.ColorRed}, // 2 blocks
		{"far", core.P(800, 360), platformcore.ColorGray},  // 20 blocks
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, 1)
			g.world.Zombies = []core.Zombie{{Body: core.Body{Pos: tc.zombie}}}

			dst := platformcore.NewScreen(120, 24)
			g.Render(dst)

			row := dst.Row(0)
			label := "Nearest: "
			i := strings.Index(row, label)
			if i < 0 {
				t.Fatalf("HUD missing nearest distance: %q", row)
			}
			cell := dst.GetCell(len([]rune(row[:i+len(label)])), 0)
			if cell.Color != tc.expected {
				t.Errorf("nearest distance %q drawn in %v, expected %v", cell.Rune, cell.Color, tc.expected)
			}
		})
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g := newGame(t, 1)
	g.Step(press(platformcore.ActionPause))

	dst := platformcore.NewScreen(80, 24)
	g.Render(dst)
	for y := range dst.Height() {
		row := dst.Row(y)
		i := strings.Index(row, "Paused")
		if i < 0 {
			continue
		}
		x := len([]rune(row[:i]))
		if cell := dst.GetCell(x, y); cell.Color != platformcore.ColorWhite {
			t.Errorf("overlay title cell = %+v, expected white", cell)
		}
		return
	}
	t.Error("paused overlay missing")
}

func TestRenderTinyScreen(t *testing.T) {
	g := newGame(t, 1)
	dst := platformcore.NewScreen(3, 2)
	g.Render(dst) // must not panic
}

func TestFacingGlyph(t *testing.T) {
	tests := []struct {
		angle    float64
		expected rune
	}{
		{0, '↑'},
		{45, '↗'},
		{90, '→'},
		{-90, '←'},
		{-180, '↓'},
		{-270, '→'},
		{359, '↑'},
		{200, '↓'},
		{-30, '↖'},
	}

	for _, tc := range tests {
		if got := facingGlyph(tc.angle); got != tc.expected {
			t.Errorf("facingGlyph(%v) = %q, expected %q", tc.angle, got, tc.expected)
		}
	}
}
