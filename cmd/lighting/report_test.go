package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-lighting/internal/config"
)

func smallConfig() config.LightingConfig {
	lc := config.DefaultLightingConfig()
	lc.Window.Width = 192
	lc.Window.Height = 192
	lc.Level.ZombieChance = 16
	return lc
}

func TestSimulateDeterministic(t *testing.T) {
	lc := smallConfig()
	a := simulate(lc, 1, 42, 300, 0)
	b := simulate(lc, 1, 42, 300, 0)
	if a != b {
		t.Fatalf("same seed produced different runs:\n%+v\n%+v", a, b)
	}

	c := simulate(lc, 1, 43, 300, 0)
	if a.hash == c.hash {
		t.Error("different seeds should produce different zombie hashes")
	}
}

func TestSimulateTracksLitZombies(t *testing.T) {
	lc := smallConfig()
	rs := simulate(lc, 1, 7, 600, 0)

	if rs.zombies == 0 {
		t.Fatal("expected zombies with 1 in 16 spawn chance")
	}
	// Every tile of a 192x192 map is within the light radius of its center
	if rs.firstSightTick != 1 {
		t.Errorf("first sight = %d, expected 1", rs.firstSightTick)
	}
	if rs.peakVisible < rs.finalVisible || rs.peakVisible > rs.zombies {
		t.Errorf("peak %d out of range [%d, %d]", rs.peakVisible, rs.finalVisible, rs.zombies)
	}
	if rs.closest < 0 || rs.closest > rs.finalNearest {
		t.Errorf("closest %d should not exceed the final nearest %d", rs.closest, rs.finalNearest)
	}
	if rs.visibleTiles != (192/8)*(192/8) {
		t.Errorf("visible tiles = %d, expected the whole map", rs.visibleTiles)
	}
}

func TestSimulateNoZombies(t *testing.T) {
	lc := smallConfig()
	lc.Level.ZombieChance = 0
	rs := simulate(lc, 1, 1, 50, 10)

	if rs.zombies != 0 || rs.firstSightTick != -1 || rs.closest != -1 {
		t.Errorf("expected an empty run, got %+v", rs)
	}
}

func TestSimulatePatrolMovesPlayer(t *testing.T) {
	lc := smallConfig()
	still := simulate(lc, 1, 5, 200, 0)
	patrol := simulate(lc, 1, 5, 200, 50)

	// Zombies chase the observer, so a moving player changes their paths
	if still.hash == patrol.hash {
		t.Error("patrol should change the zombie trajectories")
	}
}

func TestSummarize(t *testing.T) {
	all := []runStats{
		{zombies: 10, firstSightTick: 5, closest: 0},
		{zombies: 20, firstSightTick: 15, closest: 3},
		{zombies: 0, firstSightTick: -1, closest: -1},
	}

	out := summarize(all)
	for _, want := range []string{"mean zombies 10.0", "lit in 2/3 runs", "mean first tick 10.0", "reached the player in 1/3 runs"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary %q missing %q", out, want)
		}
	}

	if got := summarize(nil); got != "no runs" {
		t.Errorf("summarize(nil) = %q", got)
	}
}

func TestReportTableRows(t *testing.T) {
	all := []runStats{
		{run: 1, seed: 42, zombies: 3, firstSightTick: -1, closest: -1, finalNearest: -1, hash: 0xabc},
		{run: 2, seed: 43, zombies: 5, firstSightTick: 9, closest: 2, finalNearest: 7},
	}

	tbl := reportTable(all)
	rows := tbl.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	if rows[0][3] != "-" || rows[0][5] != "-" || rows[0][7] != "-" {
		t.Errorf("missing values should render as '-', got %v", rows[0])
	}
	if rows[0][9] != "0000000000000abc" {
		t.Errorf("hash column = %q", rows[0][9])
	}
	if rows[1][3] != "9" || rows[1][5] != "2" || rows[1][7] != "7" {
		t.Errorf("row 2 = %v", rows[1])
	}
}
