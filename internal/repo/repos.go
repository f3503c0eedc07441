// ABOUTME: Repos bundles the four repositories over one shared store.
// ABOUTME: Construction and initial load for CLI wiring.
package repo

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/harperreed/fittrack/internal/storage"
)

// Repos holds one repository per tracked domain, all backed by the same
// store.
type Repos struct {
	Profile  *ProfileRepo
	Workouts *WorkoutRepo
	Water    *WaterRepo
	BMI      *BMIRepo
}

// New constructs the four repositories over store.
func New(store storage.Store, log *zap.Logger) *Repos {
	return &Repos{
		Profile:  NewProfileRepo(store, log),
		Workouts: NewWorkoutRepo(store, log),
		Water:    NewWaterRepo(store, log),
		BMI:      NewBMIRepo(store, log),
	}
}

// LoadAll populates every snapshot from the store. The water load runs the
// daily-reset policy as a side effect.
func (r *Repos) LoadAll() error {
	if err := r.Profile.Load(); err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if err := r.Workouts.Load(); err != nil {
		return fmt.Errorf("load workout history: %w", err)
	}
	if err := r.Water.Load(); err != nil {
		return fmt.Errorf("load water ledger: %w", err)
	}
	if err := r.BMI.Load(); err != nil {
		return fmt.Errorf("load bmi history: %w", err)
	}
	return nil
}
