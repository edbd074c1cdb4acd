package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/scenarios"
	"github.com/vovakirdan/tui-lander/internal/sim"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagTicks      int
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagNoSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario>",
	Short: "Run a scenario headless",
	Long: `Runs a scenario at the fixed tick rate until the craft lands or dies or
the tick budget is spent, then prints and records the result.

With --watch the run is paced in real time and the --config file is
reloaded whenever it changes; the new tuning applies from the next tick.

Examples:
  lander simulate crash-landing
  lander simulate safe-landing --difficulty hard
  lander simulate missile-climb --ticks 1200 --seed 7
  lander simulate shield-clash --config ./configs/lander.yaml --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Tick budget (0 = scenario default)")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a tuning YAML file")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "fixed", "Difficulty preset (easy, normal, hard, fixed)")
	simulateCmd.Flags().BoolVar(&flagWatch, "watch", false, "Pace the run in real time and reload --config on change")
	simulateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

func runSimulate(cmd *cobra.Command, args []string) {
	id := args[0]

	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'lander scenarios' to see available scenarios.")
		os.Exit(1)
	}
	if flagWatch && flagConfig == "" {
		fmt.Fprintln(os.Stderr, "Error: --watch needs --config")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, preset)

	sc, err := registry.Create(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scenario: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.RuntimeConfig{TickRate: flagFPS, Seed: seed}

	s, err := scenarios.Prepare(sc, cfg, runtime, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing scenario: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := sim.RunOptions{Ticks: flagTicks}
	if opts.Ticks <= 0 {
		opts.Ticks = sc.Ticks()
	}
	if flagWatch {
		w, err := config.Watch(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error watching config: %v\n", err)
			os.Exit(1)
		}
		defer w.Close()
		opts.Updates = reload(ctx, w, sc, preset, logger)
		opts.Pace = time.Second / time.Duration(max(flagFPS, 1))
	}

	logger.Info("running", "scenario", id, "ticks", opts.Ticks, "seed", seed, "difficulty", preset)
	sum, err := s.Run(ctx, sc, opts)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", err)
		os.Exit(1)
	}
	interrupted := err != nil

	printSummary(sc.Title(), sum, seed)
	if interrupted {
		logger.Warn("run interrupted, not recording", "tick", sum.Ticks)
		return
	}
	if flagNoSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return
	}
	defer store.Close()

	runID, err := store.SaveRun(storage.RunRecord{
		ScenarioID: id,
		Outcome:    string(sum.Outcome),
		Difficulty: string(preset),
		Ticks:      sum.Ticks,
		Collisions: sum.Collisions,
		Deaths:     sum.Deaths,
		Rescued:    sum.Rescued,
		Seed:       seed,
		Hash:       sum.Hash,
	})
	if err != nil {
		logger.Warn("could not record run", "error", err)
		return
	}
	logger.Debug("run recorded", "id", runID)
}

// reload turns file change events into validated tunings for the run.
// Rejected files are logged and skipped; the run keeps its current tuning.
func reload(ctx context.Context, w *config.Watcher, sc registry.Scenario, preset config.DifficultyPreset,
	logger *log.Logger,
) <-chan config.LanderConfig {
	updates := make(chan config.LanderConfig, 1)
	go func() {
		defer close(updates)
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("config watch failed", "error", err)
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				cfg, err := config.Load(path)
				if err != nil {
					logger.Warn("config rejected", "path", path, "error", err)
					continue
				}
				config.ApplyPreset(&cfg, preset)
				sc.Tune(&cfg)
				select {
				case updates <- cfg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return updates
}

func printSummary(title string, sum sim.Summary, seed int64) {
	fmt.Println(titleStyle.Render(title))
	fmt.Println()
	fmt.Printf("  %-11s %s\n", "Outcome", outcome(string(sum.Outcome), 0))
	fmt.Printf("  %-11s %d\n", "Ticks", sum.Ticks)
	fmt.Printf("  %-11s %d\n", "Collisions", sum.Collisions)
	fmt.Printf("  %-11s %d\n", "Deaths", sum.Deaths)
	fmt.Printf("  %-11s %d\n", "Rescued", sum.Rescued)
	fmt.Printf("  %-11s %d\n", "Shakes", sum.Shakes)
	fmt.Printf("  %-11s %d\n", "Seed", seed)
	fmt.Printf("  %-11s %016x\n", "Hash", sum.Hash)
}
