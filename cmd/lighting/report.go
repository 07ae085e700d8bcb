package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lighting/internal/config"
	"github.com/vovakirdan/tui-lighting/internal/games/lighting/core"
	"github.com/vovakirdan/tui-lighting/internal/registry"
)

var (
	flagRuns     int
	flagTicks    int
	flagSeedBase int64
	flagSeedStep int64
	flagPatrol   int
)

var reportCmd = &cobra.Command{
	Use:   "report [variant]",
	Short: "Run headless simulations and print a summary",
	Long: `Run the simulation without a terminal UI over a range of seeds and
summarize how the zombies close in on the player.

The player stands still at the window center unless --patrol is set, in
which case it walks a square, turning every given number of ticks.

Examples:
  lighting report
  lighting report lighting_hd --runs 10
  lighting report --ticks 1800 --seed-base 7 --seed-step 100
  lighting report --patrol 120`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	reportCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of headless runs")
	reportCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Ticks per run")
	reportCmd.Flags().Int64Var(&flagSeedBase, "seed-base", 42, "Seed of the first run")
	reportCmd.Flags().Int64Var(&flagSeedStep, "seed-step", 1, "Seed increment between runs")
	reportCmd.Flags().IntVar(&flagPatrol, "patrol", 0, "Walk a square, turning every N ticks (0 = stand still)")
}

// runStats collects what one headless run observed.
type runStats struct {
	run  int
	seed int64

	zombies        int
	firstSightTick int // First tick with a lit zombie, -1 if never
	peakVisible    int // Most zombies lit at once
	closest        int // Smallest light distance reached, -1 without zombies
	finalVisible   int
	finalNearest   int
	visibleTiles   int
	hash           uint64
}

// patrolRoute is the square walked with --patrol.
var patrolRoute = [4]core.Direction{core.DirRight, core.DirDown, core.DirLeft, core.DirUp}

func runReport(_ *cobra.Command, args []string) {
	variant := config.VariantClassic
	if len(args) == 1 {
		variant = config.Variant(args[0])
	}
	if !registry.Exists(string(variant)) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		os.Exit(1)
	}
	if flagRuns <= 0 || flagTicks <= 0 || flagPatrol < 0 {
		fmt.Fprintln(os.Stderr, "Error: --runs and --ticks must be > 0, --patrol must be >= 0")
		os.Exit(1)
	}

	lc, source, err := config.Load(variant, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "variant", variant, "source", source)

	all := make([]runStats, 0, flagRuns)
	for i := range flagRuns {
		seed := flagSeedBase + int64(i)*flagSeedStep
		stats := simulate(lc, i+1, seed, flagTicks, flagPatrol)
		logger.Info("run complete",
			"run", stats.run,
			"seed", stats.seed,
			"zombies", stats.zombies,
			"first_sight", stats.firstSightTick,
			"closest", stats.closest,
		)
		all = append(all, stats)
	}

	fmt.Printf("=== Headless Lighting Report ===\n")
	fmt.Printf("variant=%s runs=%d ticks=%d seed_base=%d seed_step=%d patrol=%d\n\n",
		variant, flagRuns, flagTicks, flagSeedBase, flagSeedStep, flagPatrol)
	fmt.Println(reportTable(all).View())
	fmt.Println()
	fmt.Println(summarize(all))
}

// simulate runs one world for the given number of ticks.
func simulate(lc config.LightingConfig, run int, seed int64, ticks, patrol int) runStats {
	w := core.NewWorld(core.WorldConfig{
		Width:        lc.Window.Width,
		Height:       lc.Window.Height,
		ZombieChance: lc.Level.ZombieChance,
		PlayerSpeed:  lc.Player.Speed,
	}, seed)

	rs := runStats{
		run:            run,
		seed:           seed,
		zombies:        len(w.Zombies),
		firstSightTick: -1,
		closest:        -1,
	}

	var s core.Stats
	for t := range ticks {
		if patrol > 0 && t%patrol == 0 {
			w.Player.Release()
			w.Player.Press(patrolRoute[(t/patrol)%len(patrolRoute)])
		}
		w.Step()

		s = w.Stats()
		if s.VisibleZombies > 0 && rs.firstSightTick < 0 {
			rs.firstSightTick = int(w.Tick())
		}
		rs.peakVisible = max(rs.peakVisible, s.VisibleZombies)
		if s.NearestZombie >= 0 && (rs.closest < 0 || s.NearestZombie < rs.closest) {
			rs.closest = s.NearestZombie
		}
	}

	rs.finalVisible = s.VisibleZombies
	rs.finalNearest = s.NearestZombie
	rs.visibleTiles = s.VisibleTiles
	rs.hash = w.Snapshot().ZombieHash
	return rs
}

// reportTable lays out one row per run.
func reportTable(all []runStats) table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 4},
		{Title: "Seed", Width: 12},
		{Title: "Zombies", Width: 8},
		{Title: "First lit", Width: 10},
		{Title: "Peak lit", Width: 9},
		{Title: "Closest", Width: 8},
		{Title: "Lit now", Width: 8},
		{Title: "Nearest now", Width: 12},
		{Title: "Lit tiles", Width: 10},
		{Title: "Hash", Width: 17},
	}

	rows := make([]table.Row, len(all))
	for i, rs := range all {
		rows[i] = table.Row{
			strconv.Itoa(rs.run),
			strconv.FormatInt(rs.seed, 10),
			strconv.Itoa(rs.zombies),
			orDash(rs.firstSightTick),
			strconv.Itoa(rs.peakVisible),
			orDash(rs.closest),
			strconv.Itoa(rs.finalVisible),
			orDash(rs.finalNearest),
			strconv.Itoa(rs.visibleTiles),
			fmt.Sprintf("%016x", rs.hash),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // Header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// summarize aggregates all runs into a short text block.
func summarize(all []runStats) string {
	if len(all) == 0 {
		return "no runs"
	}

	var zombies, sighted, sightSum, reached int
	for _, rs := range all {
		zombies += rs.zombies
		if rs.firstSightTick >= 0 {
			sighted++
			sightSum += rs.firstSightTick
		}
		if rs.closest == 0 {
			reached++
		}
	}

	meanSight := "-"
	if sighted > 0 {
		meanSight = fmt.Sprintf("%.1f", float64(sightSum)/float64(sighted))
	}

	label := lipgloss.NewStyle().Bold(true)
	return fmt.Sprintf("%s mean zombies %.1f, lit in %d/%d runs (mean first tick %s), reached the player in %d/%d runs",
		label.Render("Summary:"),
		float64(zombies)/float64(len(all)),
		sighted, len(all), meanSight,
		reached, len(all))
}

func orDash(v int) string {
	if v < 0 {
		return "-"
	}
	return strconv.Itoa(v)
}
