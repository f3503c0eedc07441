// ABOUTME: CLI commands for the daily water ledger.
// ABOUTME: Status, additions, and manual reset of today's intake.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/repo"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track today's water intake",
	Long: `Show today's water intake. The ledger resets automatically on the
first touch of a new calendar day.

Examples:
  fittrack water            # Show today's progress
  fittrack water add        # Log one 250ml glass
  fittrack water add 500    # Log 500ml
  fittrack water reset      # Zero out today's intake`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printWaterStatus()
		return nil
	},
}

var waterAddCmd = &cobra.Command{
	Use:   "add [ml]",
	Short: "Log water intake",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount := 0
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed <= 0 {
				return fmt.Errorf("invalid amount: %s", args[0])
			}
			amount = parsed
		}

		if err := repos.Water.Add(amount); err != nil {
			return fmt.Errorf("failed to add water: %w", err)
		}

		color.Green("✓ Water logged")
		printWaterStatus()
		return nil
	},
}

var waterResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset today's water intake to zero",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repos.Water.Reset(); err != nil {
			return fmt.Errorf("failed to reset water: %w", err)
		}
		color.Green("✓ Water intake reset")
		return nil
	},
}

func printWaterStatus() {
	faint := color.New(color.Faint)
	fmt.Printf("  %d / %d ml (%.0f%%), %d %s\n",
		repos.Water.Intake(),
		repo.DailyWaterGoal,
		repos.Water.Progress(),
		repos.Water.Glasses(),
		pluralize(repos.Water.Glasses(), "glass", "glasses"))
	if repos.Water.Intake() >= repo.DailyWaterGoal {
		color.Green("  Daily goal reached!")
	} else {
		remaining := repo.DailyWaterGoal - repos.Water.Intake()
		fmt.Printf("  %s\n", faint.Sprintf("%d ml to go", remaining))
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

func init() {
	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterResetCmd)
	rootCmd.AddCommand(waterCmd)
}
