// ABOUTME: CLI command for the daily dashboard.
// ABOUTME: Greeting, workout stats, water progress, and latest BMI.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/stats"
)

// nowFunc exists so command tests can pin the clock.
var nowFunc = time.Now

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your daily dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := nowFunc()
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		greeting := stats.Greeting(now)
		if p := repos.Profile.Profile(); p != nil && p.Name != "" {
			fmt.Printf("%s\n\n", bold.Sprintf("%s, %s!", greeting, p.Name))
		} else {
			fmt.Printf("%s\n\n", bold.Sprintf("%s!", greeting))
		}

		s := repos.Workouts.Stats(now)
		fmt.Println("Workouts")
		fmt.Printf("  Total      %d\n", s.TotalWorkouts)
		fmt.Printf("  Today      %d\n", s.TodayWorkouts)
		fmt.Printf("  Calories   %d kcal\n", s.TotalCalories)
		fmt.Printf("  Streak     %d day(s) %s\n", s.Streak.Current,
			faint.Sprintf("(longest %d)", s.Streak.Longest))

		fmt.Println("Water")
		fmt.Printf("  Today      %d ml (%.0f%%), %d glasses\n",
			repos.Water.Intake(), repos.Water.Progress(), repos.Water.Glasses())

		if latest := repos.BMI.Latest(); latest != nil {
			category := stats.CategoryFor(latest.BMI)
			fmt.Println("BMI")
			fmt.Printf("  Latest     %.1f %s %s %s\n", latest.BMI, category.Name,
				category.Glyph, faint.Sprint(stats.FormatDate(latest.Date, now)))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
