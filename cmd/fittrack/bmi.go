// ABOUTME: CLI commands for calculating BMI and viewing BMI history.
// ABOUTME: Each calculation is appended to the BMI ledger.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/stats"
)

var bmiCmd = &cobra.Command{
	Use:   "bmi [weight-kg height-cm]",
	Short: "Calculate and track BMI",
	Long: `Calculate BMI from weight (kg) and height (cm) and save the result.
With no arguments, uses the weight and height from your profile.

Examples:
  fittrack bmi 70 175
  fittrack bmi              # Use profile measurements
  fittrack bmi history
  fittrack bmi clear`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var weight, height float64

		switch len(args) {
		case 2:
			var err error
			weight, err = strconv.ParseFloat(args[0], 64)
			if err != nil || weight <= 0 {
				return fmt.Errorf("invalid weight: %s", args[0])
			}
			height, err = strconv.ParseFloat(args[1], 64)
			if err != nil || height <= 0 {
				return fmt.Errorf("invalid height: %s", args[1])
			}
		case 0:
			p := repos.Profile.Profile()
			if p == nil || p.Weight <= 0 || p.Height <= 0 {
				return fmt.Errorf("no profile measurements; pass weight and height or run 'fittrack profile set'")
			}
			weight, height = p.Weight, p.Height
		default:
			return fmt.Errorf("provide both weight and height, or neither")
		}

		record, err := repos.BMI.Save(weight, height)
		if err != nil {
			return fmt.Errorf("failed to save bmi: %w", err)
		}

		category := stats.CategoryFor(record.BMI)
		color.Green("✓ BMI recorded")
		fmt.Printf("  %.1f %s %s\n", record.BMI, category.Name, category.Glyph)
		return nil
	},
}

var bmiHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show BMI history",
	RunE: func(cmd *cobra.Command, args []string) error {
		history := repos.BMI.History()
		if len(history) == 0 {
			fmt.Println("No BMI results yet.")
			return nil
		}

		now := nowFunc()
		faint := color.New(color.Faint)
		for _, r := range history {
			fmt.Printf("%s %s %.1f %s (%.1f kg, %.1f cm)\n",
				faint.Sprint(r.ID),
				padRight(stats.FormatDate(r.Date, now), 12),
				r.BMI,
				padRight(r.Category, 11),
				r.Weight,
				r.Height)
		}
		return nil
	},
}

var bmiClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all BMI history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repos.BMI.Clear(); err != nil {
			return fmt.Errorf("failed to clear bmi history: %w", err)
		}
		color.Green("✓ BMI history cleared")
		return nil
	},
}

func init() {
	bmiCmd.AddCommand(bmiHistoryCmd)
	bmiCmd.AddCommand(bmiClearCmd)
	rootCmd.AddCommand(bmiCmd)
}
