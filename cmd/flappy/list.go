package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-tui/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available hosts",
	Long:  `Shows every host the game can run in.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	hosts := registry.List()

	if len(hosts) == 0 {
		fmt.Println("No hosts available.")
		return
	}

	fmt.Println("Available hosts:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, h := range hosts {
		if len(h.ID) > maxIDLen {
			maxIDLen = len(h.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, h := range hosts {
		fmt.Printf("  %-*s  %s\n", maxIDLen, h.ID, h.Title)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play --host <id>' to play.")
}
