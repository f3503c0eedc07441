// ABOUTME: CLI commands for browsing the workout catalog and completing workouts.
// ABOUTME: Completion appends a record to the workout history.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/catalog"
)

var workoutCategory string

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Browse and complete workouts",
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List catalog workouts",
	Long: `List the built-in workout catalog.

Categories: ` + strings.Join(catalog.Categories, ", ") + `

Examples:
  fittrack workout list
  fittrack workout list --category Yoga`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if workoutCategory != "" && !catalog.IsValidCategory(workoutCategory) {
			return fmt.Errorf("unknown category: %s\nValid categories: %s",
				workoutCategory, strings.Join(catalog.Categories, ", "))
		}

		workouts := catalog.ByCategory(workoutCategory)
		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, w := range workouts {
			fmt.Printf("%s %s %s %d min, %d kcal %s\n",
				faint.Sprint(padRight(w.ID, 20)),
				padRight(w.Name, 20),
				padRight(w.Category, 14),
				w.Duration,
				w.Calories,
				faint.Sprint(w.Difficulty))
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a catalog workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, ok := catalog.ByID(args[0])
		if !ok {
			return fmt.Errorf("not found: %s", args[0])
		}

		fmt.Printf("%s\n", color.New(color.Bold).Sprint(w.Name))
		fmt.Printf("  Category    %s\n", w.Category)
		fmt.Printf("  Difficulty  %s\n", w.Difficulty)
		fmt.Printf("  Duration    %d min\n", w.Duration)
		fmt.Printf("  Calories    %d kcal\n", w.Calories)
		fmt.Println("  Exercises:")
		for _, e := range w.Exercises {
			fmt.Printf("    - %s\n", e)
		}
		return nil
	},
}

var workoutCompleteCmd = &cobra.Command{
	Use:     "complete <id>",
	Aliases: []string{"done"},
	Short:   "Record a completed workout",
	Long: `Record a catalog workout as completed now.

Examples:
  fittrack workout complete core-crusher
  fittrack workout done sunrise-flow`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, ok := catalog.ByID(args[0])
		if !ok {
			return fmt.Errorf("not found: %s", args[0])
		}

		record, err := repos.Workouts.Add(w.Name, w.Category, w.Duration, w.Calories)
		if err != nil {
			return fmt.Errorf("failed to record workout: %w", err)
		}

		color.Green("✓ Workout complete! You burned %d calories.", record.Calories)
		streak := repos.Workouts.Stats(nowFunc()).Streak
		if streak.Current > 1 {
			fmt.Printf("  %d day streak — keep it up!\n", streak.Current)
		}
		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	workoutListCmd.Flags().StringVarP(&workoutCategory, "category", "c", "", "filter by category")
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutCompleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
