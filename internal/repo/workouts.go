// ABOUTME: WorkoutRepo owns the completed-workout history collection.
// ABOUTME: Append-only, newest-first; stats are derived from the snapshot.
package repo

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/stats"
	"github.com/harperreed/fittrack/internal/storage"
)

// WorkoutRepo reads and writes the workout history.
type WorkoutRepo struct {
	store storage.Store
	log   *zap.Logger

	mu      sync.Mutex
	history []models.WorkoutRecord
}

// NewWorkoutRepo creates a repository over the given store.
func NewWorkoutRepo(store storage.Store, log *zap.Logger) *WorkoutRepo {
	if log == nil {
		log = zap.NewNop()
	}
	return &WorkoutRepo{store: store, log: log}
}

// Load reads the history from the store. Absence and decode failure both
// yield an empty history; decode failure is logged.
func (r *WorkoutRepo) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var history []models.WorkoutRecord
	found, err := r.store.Get(storage.KeyWorkoutHistory, &history)
	if err != nil {
		r.log.Warn("workout history unreadable, treating as empty", zap.Error(err))
		r.history = nil
		return nil
	}
	if !found {
		r.history = nil
		return nil
	}
	r.history = history
	return nil
}

// History returns a newest-first copy of the snapshot.
func (r *WorkoutRepo) History() []models.WorkoutRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.WorkoutRecord(nil), r.history...)
}

// Add records a completed workout at the head of the history. The snapshot
// is updated only after the new collection is durably written.
func (r *WorkoutRepo) Add(name, category string, duration, calories int) (*models.WorkoutRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := models.NewWorkoutRecord(name, category, duration, calories)
	updated := make([]models.WorkoutRecord, 0, len(r.history)+1)
	updated = append(updated, *record)
	updated = append(updated, r.history...)

	if err := r.store.Put(storage.KeyWorkoutHistory, updated); err != nil {
		r.log.Error("add workout", zap.Error(err))
		return nil, fmt.Errorf("add workout: %w", err)
	}
	r.history = updated
	return record, nil
}

// Clear persists an empty history.
func (r *WorkoutRepo) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Put(storage.KeyWorkoutHistory, []models.WorkoutRecord{}); err != nil {
		r.log.Error("clear workout history", zap.Error(err))
		return fmt.Errorf("clear workout history: %w", err)
	}
	r.history = nil
	return nil
}

// Stats computes the derived history aggregates against now.
func (r *WorkoutRepo) Stats(now time.Time) stats.HistoryStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return stats.HistoryStatsFor(r.history, now)
}

// restore replaces the stored history during import.
func (r *WorkoutRepo) restore(history []models.WorkoutRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if history == nil {
		history = []models.WorkoutRecord{}
	}
	if err := r.store.Put(storage.KeyWorkoutHistory, history); err != nil {
		return fmt.Errorf("restore workout history: %w", err)
	}
	r.history = history
	return nil
}
