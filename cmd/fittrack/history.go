// ABOUTME: CLI commands for viewing and clearing the workout history.
// ABOUTME: Shows completed sessions newest-first with friendly dates.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/stats"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "Show completed workouts",
	Long: `Show your completed workouts, newest first.

Examples:
  fittrack history
  fittrack history -n 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history := repos.Workouts.History()
		if len(history) == 0 {
			fmt.Println("No workouts yet. Complete one with 'fittrack workout complete'.")
			return nil
		}

		if historyLimit > 0 && len(history) > historyLimit {
			history = history[:historyLimit]
		}

		now := nowFunc()
		faint := color.New(color.Faint)
		for _, w := range history {
			fmt.Printf("%s %s %s %s %d min, %d kcal\n",
				faint.Sprint(w.ID),
				padRight(stats.FormatDate(w.CompletedAt, now), 12),
				faint.Sprint(stats.FormatTime(w.CompletedAt)),
				padRight(w.Name, 20),
				w.Duration,
				w.Calories)
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all workout history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repos.Workouts.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		color.Green("✓ Workout history cleared")
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of results")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
