// lander runs the lunar lander physics core headless: scripted scenarios
// are stepped at a fixed tick rate and their results are kept in SQLite.
//
// Usage:
//
//	lander scenarios             - List available scenarios
//	lander simulate <scenario>   - Run a scenario and record the result
//	lander results [scenario]    - Show recorded runs
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.lander/runs.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import scenarios to register them
	_ "github.com/vovakirdan/tui-lander/internal/scenarios"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lunar lander physics core",
	Long: `Lander steps the collision and physics core of a 2D lunar lander
without a screen. Scenarios place bodies and script the controls; every
run is recorded so results can be compared across seeds and tunings.

Available commands:
  scenarios  - Show all available scenarios
  simulate   - Run a scenario
  results    - View recorded runs

Examples:
  lander scenarios
  lander simulate crash-landing
  lander simulate safe-landing --difficulty hard --seed 42
  lander simulate shield-clash --config ./configs/lander.yaml --watch
  lander results safe-landing`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lander/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(resultsCmd)
}

// newLogger builds the command-line logger from --log-level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lander",
		Level:           level,
	})
	return logger, nil
}
