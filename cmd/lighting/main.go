// lighting is a terminal rendition of a radial lighting demo: a tile map lit
// around the player while zombies close in.
//
// Usage:
//
//	lighting list               - List available variants
//	lighting play <variant>     - Play a variant
//	lighting menu               - Pick a variant interactively
//	lighting report [variant]   - Run headless simulations and print a summary
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible levels
//	--log-level <level>   - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-lighting/internal/games/lighting"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string

	logger = newLogger()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lighting",
	Short: "Lighting Test - radial lighting and zombies in your terminal",
	Long: `Lighting Test draws a tile map lit around the player. Brightness falls
off with distance and zombies shuffle towards you out of the dark.

Available commands:
  list     - Show all variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker
  report   - Headless simulation report

Examples:
  lighting list
  lighting play lighting
  lighting play lighting_hd --seed 42
  lighting report --runs 10 --ticks 1800`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(reportCmd)
}

// newLogger creates the CLI logger. Nothing logs while a game owns the screen.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lighting",
	})
}
