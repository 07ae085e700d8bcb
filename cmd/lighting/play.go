package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lighting/internal/config"
	"github.com/vovakirdan/tui-lighting/internal/core"
	"github.com/vovakirdan/tui-lighting/internal/games/lighting"
	"github.com/vovakirdan/tui-lighting/internal/platform/tui"
	"github.com/vovakirdan/tui-lighting/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start the specified variant.

Controls:
  W/A/S/D, arrows  - Move
  Space            - Stop
  P                - Pause
  R                - New level
  Ctrl+S           - Screenshot to ~/.lighting/screenshots
  Ctrl+Y           - Copy the screen to the clipboard
  Esc/Q/Ctrl+C     - Quit

Terminals report key presses but not releases, so movement continues
while a key repeats and stops shortly after it is let go.

Examples:
  lighting play lighting
  lighting play lighting_hd --fps 30
  lighting play lighting --seed 42
  lighting play lighting --config ./my-lighting.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'lighting list' to see available variants.")
		os.Exit(1)
	}

	if err := playGame(gameID, runtimeConfig(), flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime settings from the terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// playGame resolves the variant config, then runs the game until the player quits.
func playGame(gameID string, cfg core.RuntimeConfig, configPath string) error {
	lc, source, err := config.Load(config.Variant(gameID), configPath)
	if err != nil {
		return err
	}
	logger.Info("config loaded",
		"variant", gameID,
		"source", source,
		"window", fmt.Sprintf("%dx%d", lc.Window.Width, lc.Window.Height),
		"zombie_chance", lc.Level.ZombieChance,
	)

	lighting.SetConfigPath(configPath)
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Debug("starting", "variant", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)

	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("stopped", "variant", gameID, "ticks", game.State().Tick)
	return nil
}
