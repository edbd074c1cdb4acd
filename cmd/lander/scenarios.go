package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/registry"
)

var scenariosCmd = &cobra.Command{
	Use:     "scenarios",
	Aliases: []string{"list"},
	Short:   "List all available scenarios",
	Long:    `Shows a list of all scenarios registered with the simulator.`,
	Run:     runScenarios,
}

func runScenarios(cmd *cobra.Command, args []string) {
	list := registry.List()

	if len(list) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println(titleStyle.Render("Available scenarios:"))
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range list {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %s  %s  %s\n",
		headerStyle.Width(maxIDLen).Render("ID"), headerStyle.Width(5).Render("Ticks"), headerStyle.Render("Title"))

	for _, s := range list {
		fmt.Printf("  %-*s  %5d  %s\n", maxIDLen, s.ID, s.Ticks, s.Title)
	}

	fmt.Println()
	fmt.Println(hintStyle.Render("Run 'lander simulate <id>' to run a scenario."))
}
