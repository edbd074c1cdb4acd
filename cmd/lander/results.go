package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagLimit int
	flagStats bool
)

var resultsCmd = &cobra.Command{
	Use:   "results [scenario]",
	Short: "Show recorded runs",
	Long: `Display the most recent runs, optionally for one scenario only.
With --stats, show per-scenario outcome counts instead.

Examples:
  lander results
  lander results safe-landing --limit 5
  lander results --stats`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	resultsCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-scenario statistics")
}

func runResults(cmd *cobra.Command, args []string) {
	var id string
	if len(args) == 1 {
		id = args[0]
		if !registry.Exists(id) {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", id)
			fmt.Fprintln(os.Stderr, "Run 'lander scenarios' to see available scenarios.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStats {
		printStats(store)
		return
	}

	runs, err := store.RecentRuns(id, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render("Recent runs"))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println(hintStyle.Render("Run 'lander simulate <id>' to record the first one."))
		return
	}

	fmt.Printf("  %-5s  %-16s  %-8s  %-10s  %6s  %-16s  %s\n",
		"ID", "Scenario", "Outcome", "Difficulty", "Ticks", "Hash", "Date")
	fmt.Printf("  %-5s  %-16s  %-8s  %-10s  %6s  %-16s  %s\n",
		"--", "--------", "-------", "----------", "-----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-16s  %s  %-10s  %6d  %016x  %s\n",
			r.ID, r.ScenarioID, outcome(r.Outcome, 8), r.Difficulty, r.Ticks, r.Hash,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printStats(store *storage.Store) {
	stats, err := store.AllScenarioStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render("Scenario statistics"))
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %5s  %6s  %5s  %8s  %9s  %s\n",
		"Scenario", "Runs", "Landed", "Dead", "Survived", "Avg ticks", "Last run")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-16s  %5d  %6d  %5d  %8d  %9.1f  %s\n",
			st.ScenarioID, st.Runs, st.Landed, st.Dead, st.Survived, st.AvgTicks,
			st.LastRun.Format("2006-01-02 15:04"))
	}
}
