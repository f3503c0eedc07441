// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Handles store and repository lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/logging"
	"github.com/harperreed/fittrack/internal/repo"
	"github.com/harperreed/fittrack/internal/storage"
)

var (
	store  storage.Store
	logger *zap.Logger
	repos  *repo.Repos
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness tracker",
	Long: `Fittrack is a CLI tool for tracking workouts, water intake, and BMI.

QUICK START:

  $ fittrack profile set --name Ada --age 34 --weight 62 --height 170
  $ fittrack workout list                  # Browse the workout catalog
  $ fittrack workout complete core-crusher # Record a completed workout
  $ fittrack water add                     # Log a 250ml glass of water
  $ fittrack bmi 62 170                    # Calculate and save BMI
  $ fittrack stats                         # Streaks, calories, water, BMI

WORKOUTS:

  The built-in catalog covers Full Body, Abs, Chest & Arms, Legs, and Yoga.
  Completing a workout appends it to your history; streaks count consecutive
  calendar days with at least one completed workout.

WATER:

  The water ledger tracks today's running total only. It resets to zero the
  first time it is touched on a new day.

DATA STORAGE:

  Data is stored locally at ~/.local/share/fittrack (Badger by default;
  set "backend": "sqlite" in ~/.config/fittrack/config.json to switch).
  'fittrack logout' wipes everything.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger = logging.New(cfg.GetDataDir())

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		repos = repo.New(store, logger)
		if err := repos.LoadAll(); err != nil {
			_ = store.Close()
			return err
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
