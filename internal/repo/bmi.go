// ABOUTME: BMIRepo owns the append-only BMI result history.
// ABOUTME: Save computes the value and category before persisting.
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

// BMIRepo reads and writes the BMI history.
type BMIRepo struct {
	store storage.Store
	log   *zap.Logger

	mu      sync.Mutex
	history []models.BMIRecord
}

// NewBMIRepo creates a repository over the given store.
func NewBMIRepo(store storage.Store, log *zap.Logger) *BMIRepo {
	if log == nil {
		log = zap.NewNop()
	}
	return &BMIRepo{store: store, log: log}
}

// Load reads the BMI history from the store. Absence and decode failure
// both yield an empty history; decode failure is logged.
func (r *BMIRepo) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var history []models.BMIRecord
	found, err := r.store.Get(storage.KeyBMIResults, &history)
	if err != nil {
		r.log.Warn("bmi history unreadable, treating as empty", zap.Error(err))
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
func (r *BMIRepo) History() []models.BMIRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.BMIRecord(nil), r.history...)
}

// Save computes BMI and category for the given measurements, prepends the
// record, and persists the new history. The computed value is a 0 sentinel
// for non-positive inputs; the CLI validates before calling.
func (r *BMIRepo) Save(weight, height float64) (*models.BMIRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bmi := stats.BMI(weight, height)
	record := models.BMIRecord{
		ID:       models.NewID(),
		BMI:      bmi,
		Category: stats.CategoryFor(bmi).Name,
		Weight:   weight,
		Height:   height,
		Date:     time.Now(),
	}

	updated := make([]models.BMIRecord, 0, len(r.history)+1)
	updated = append(updated, record)
	updated = append(updated, r.history...)

	if err := r.store.Put(storage.KeyBMIResults, updated); err != nil {
		r.log.Error("save bmi", zap.Error(err))
		return nil, fmt.Errorf("save bmi: %w", err)
	}
	r.history = updated
	return &record, nil
}

// Latest returns the most recent BMI record, or nil when none exist.
func (r *BMIRepo) Latest() *models.BMIRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.history) == 0 {
		return nil
	}
	latest := r.history[0]
	return &latest
}

// Clear persists an empty BMI history.
func (r *BMIRepo) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Put(storage.KeyBMIResults, []models.BMIRecord{}); err != nil {
		r.log.Error("clear bmi history", zap.Error(err))
		return fmt.Errorf("clear bmi history: %w", err)
	}
	r.history = nil
	return nil
}

// restore replaces the stored history during import.
func (r *BMIRepo) restore(history []models.BMIRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if history == nil {
		history = []models.BMIRecord{}
	}
	if err := r.store.Put(storage.KeyBMIResults, history); err != nil {
		return fmt.Errorf("restore bmi history: %w", err)
	}
	r.history = history
	return nil
}
