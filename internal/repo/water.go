// ABOUTME: WaterRepo owns the daily water ledger and its reset policy.
// ABOUTME: Stale-day reset and corrupt-intake repair happen on load and mutation.
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

// Water ledger constants, milliliters.
const (
	DailyWaterGoal = 2000
	WaterIncrement = 250
)

// WaterRepo reads and writes the water ledger. The ledger spans two store
// keys (intake and last date) that only this policy writes, always together
// on resets and additions.
type WaterRepo struct {
	store storage.Store
	log   *zap.Logger
	now   func() time.Time

	mu     sync.Mutex
	ledger models.WaterLedger
}

// NewWaterRepo creates a repository over the given store.
func NewWaterRepo(store storage.Store, log *zap.Logger) *WaterRepo {
	if log == nil {
		log = zap.NewNop()
	}
	return &WaterRepo{store: store, log: log, now: time.Now}
}

// Load reads the ledger, resetting it when the stored date precedes today
// and repairing the intake in place when the stored value is unusable.
func (r *WaterRepo) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	var lastDate time.Time
	dateFound, err := r.store.Get(storage.KeyLastWaterDate, &lastDate)
	if err != nil {
		r.log.Warn("last water date unreadable", zap.Error(err))
	}
	if !dateFound || err != nil {
		lastDate = now
	}

	if !stats.SameDay(now, lastDate) {
		return r.resetLocked(now)
	}

	var intake int
	intakeFound, err := r.store.Get(storage.KeyWaterIntake, &intake)
	if err != nil {
		r.log.Warn("water intake unreadable, repairing to 0", zap.Error(err))
	}
	valid := intakeFound && err == nil && intake >= 0

	if !valid {
		intake = 0
		// Repair the intake only; lastDate stays untouched.
		if intakeFound || err != nil {
			if perr := r.store.Put(storage.KeyWaterIntake, 0); perr != nil {
				r.log.Error("repair water intake", zap.Error(perr))
				return fmt.Errorf("repair water intake: %w", perr)
			}
		}
	}

	r.ledger = models.WaterLedger{Intake: intake, LastDate: lastDate}
	return nil
}

// Add increases today's intake by amount milliliters. Non-positive amounts
// fall back to the standard glass increment. Both ledger keys are
// re-stamped; the snapshot changes only after both writes succeed.
func (r *WaterRepo) Add(amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if amount <= 0 {
		amount = WaterIncrement
	}

	now := r.now()
	current := r.ledger.Intake
	if !stats.SameDay(now, r.ledger.LastDate) {
		current = 0
	}
	if current < 0 {
		current = 0
	}

	newIntake := current + amount
	if err := r.store.Put(storage.KeyWaterIntake, newIntake); err != nil {
		r.log.Error("add water", zap.Error(err))
		return fmt.Errorf("add water: %w", err)
	}
	if err := r.store.Put(storage.KeyLastWaterDate, now); err != nil {
		r.log.Error("add water", zap.Error(err))
		return fmt.Errorf("add water: %w", err)
	}

	r.ledger = models.WaterLedger{Intake: newIntake, LastDate: now}
	return nil
}

// Reset forces the intake to 0 and the date to now regardless of prior
// state. Idempotent.
func (r *WaterRepo) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetLocked(r.now())
}

// resetLocked persists a zero ledger stamped at now. Callers hold r.mu.
func (r *WaterRepo) resetLocked(now time.Time) error {
	if err := r.store.Put(storage.KeyWaterIntake, 0); err != nil {
		r.log.Error("reset water", zap.Error(err))
		return fmt.Errorf("reset water: %w", err)
	}
	if err := r.store.Put(storage.KeyLastWaterDate, now); err != nil {
		r.log.Error("reset water", zap.Error(err))
		return fmt.Errorf("reset water: %w", err)
	}
	r.ledger = models.WaterLedger{Intake: 0, LastDate: now}
	return nil
}

// Ledger returns the current snapshot.
func (r *WaterRepo) Ledger() models.WaterLedger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger
}

// Intake returns today's running total in milliliters.
func (r *WaterRepo) Intake() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger.Intake
}

// Progress returns intake as a percentage of the daily goal, clamped to 100.
func (r *WaterRepo) Progress() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	progress := float64(r.ledger.Intake) / DailyWaterGoal * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// Glasses returns the number of whole standard glasses consumed today.
func (r *WaterRepo) Glasses() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ledger.Intake / WaterIncrement
}

// restore replaces the stored ledger during import. The imported state is
// still subject to the reset policy on the next load.
func (r *WaterRepo) restore(ledger models.WaterLedger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ledger.Intake < 0 {
		ledger.Intake = 0
	}
	if err := r.store.Put(storage.KeyWaterIntake, ledger.Intake); err != nil {
		return fmt.Errorf("restore water ledger: %w", err)
	}
	if err := r.store.Put(storage.KeyLastWaterDate, ledger.LastDate); err != nil {
		return fmt.Errorf("restore water ledger: %w", err)
	}
	r.ledger = ledger
	return nil
}
