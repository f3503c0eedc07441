// ABOUTME: Tests for the Store implementations.
// ABOUTME: Round-trips the real collection shapes through every backend.
package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// backends returns a fresh instance of every Store implementation.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	badgerStore, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	sqliteStore, err := OpenSQLite(t.TempDir())
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}

	return map[string]Store{
		"badger": badgerStore,
		"sqlite": sqliteStore,
		"memory": NewMemoryStore(),
	}
}

func TestRoundTripCollections(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			profile := models.Profile{Name: "Ada", Age: 34, Weight: 62, Height: 170, CreatedAt: now}
			if err := store.Put(KeyProfile, &profile); err != nil {
				t.Fatalf("Put profile failed: %v", err)
			}
			var gotProfile models.Profile
			found, err := store.Get(KeyProfile, &gotProfile)
			if err != nil || !found {
				t.Fatalf("Get profile: found=%v err=%v", found, err)
			}
			if gotProfile.Name != profile.Name || gotProfile.Age != profile.Age ||
				gotProfile.Weight != profile.Weight || gotProfile.Height != profile.Height ||
				!gotProfile.CreatedAt.Equal(profile.CreatedAt) {
				t.Errorf("profile mismatch: got %+v, want %+v", gotProfile, profile)
			}

			history := []models.WorkoutRecord{
				{ID: "2", Name: "Leg Day Burn", Category: "Legs", Duration: 26, Calories: 290, CompletedAt: now},
				{ID: "1", Name: "Sunrise Flow", Category: "Yoga", Duration: 20, Calories: 90, CompletedAt: now.Add(-time.Hour)},
			}
			if err := store.Put(KeyWorkoutHistory, history); err != nil {
				t.Fatalf("Put history failed: %v", err)
			}
			var gotHistory []models.WorkoutRecord
			if found, err := store.Get(KeyWorkoutHistory, &gotHistory); err != nil || !found {
				t.Fatalf("Get history: found=%v err=%v", found, err)
			}
			if len(gotHistory) != 2 || gotHistory[0].ID != history[0].ID ||
				gotHistory[1].Name != history[1].Name ||
				!gotHistory[0].CompletedAt.Equal(history[0].CompletedAt) {
				t.Errorf("history mismatch: got %+v", gotHistory)
			}

			// Empty collection stays distinguishable from absent.
			if err := store.Put(KeyBMIResults, []models.BMIRecord{}); err != nil {
				t.Fatalf("Put empty bmi history failed: %v", err)
			}
			var gotBMI []models.BMIRecord
			if found, err := store.Get(KeyBMIResults, &gotBMI); err != nil || !found {
				t.Fatalf("Get empty bmi history: found=%v err=%v", found, err)
			}
			if len(gotBMI) != 0 {
				t.Errorf("expected empty bmi history, got %+v", gotBMI)
			}

			// Water ledger keys: bare int and timestamp.
			if err := store.Put(KeyWaterIntake, 1500); err != nil {
				t.Fatalf("Put intake failed: %v", err)
			}
			var intake int
			if found, err := store.Get(KeyWaterIntake, &intake); err != nil || !found {
				t.Fatalf("Get intake: found=%v err=%v", found, err)
			}
			if intake != 1500 {
				t.Errorf("intake = %d, want 1500", intake)
			}

			if err := store.Put(KeyLastWaterDate, now); err != nil {
				t.Fatalf("Put last date failed: %v", err)
			}
			var lastDate time.Time
			if found, err := store.Get(KeyLastWaterDate, &lastDate); err != nil || !found {
				t.Fatalf("Get last date: found=%v err=%v", found, err)
			}
			if !lastDate.Equal(now) {
				t.Errorf("last date = %v, want %v", lastDate, now)
			}

			// Null profile round-trips through a pointer.
			if err := store.Put(KeyProfile, (*models.Profile)(nil)); err != nil {
				t.Fatalf("Put nil profile failed: %v", err)
			}
			var nilProfile *models.Profile
			if found, err := store.Get(KeyProfile, &nilProfile); err != nil || !found {
				t.Fatalf("Get nil profile: found=%v err=%v", found, err)
			}
			if nilProfile != nil {
				t.Errorf("expected nil profile, got %+v", nilProfile)
			}
		})
	}
}

func TestGetAbsentKey(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			var out int
			found, err := store.Get("missing", &out)
			if err != nil {
				t.Fatalf("Get absent key returned error: %v", err)
			}
			if found {
				t.Error("expected found=false for absent key")
			}
		})
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			if err := store.Put("k", 1); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			if err := store.Remove("k"); err != nil {
				t.Fatalf("Remove failed: %v", err)
			}
			if err := store.Remove("k"); err != nil {
				t.Fatalf("second Remove failed: %v", err)
			}

			var out int
			if found, _ := store.Get("k", &out); found {
				t.Error("key still present after Remove")
			}
		})
	}
}

func TestClearIsIdempotent(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			if err := store.Put(KeyProfile, 1); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			if err := store.Put(KeyWaterIntake, 2); err != nil {
				t.Fatalf("Put failed: %v", err)
			}

			if err := store.Clear(); err != nil {
				t.Fatalf("Clear failed: %v", err)
			}
			keys, err := store.Keys()
			if err != nil {
				t.Fatalf("Keys failed: %v", err)
			}
			if len(keys) != 0 {
				t.Errorf("expected empty store, got keys %v", keys)
			}

			if err := store.Clear(); err != nil {
				t.Fatalf("second Clear failed: %v", err)
			}
			keys, err = store.Keys()
			if err != nil {
				t.Fatalf("Keys failed: %v", err)
			}
			if len(keys) != 0 {
				t.Errorf("expected empty store after second Clear, got keys %v", keys)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			if err := store.Put("a", 1); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			if err := store.Put("b", 2); err != nil {
				t.Fatalf("Put failed: %v", err)
			}

			keys, err := store.Keys()
			if err != nil {
				t.Fatalf("Keys failed: %v", err)
			}
			if len(keys) != 2 {
				t.Errorf("expected 2 keys, got %v", keys)
			}
		})
	}
}

func TestGetCorruptValue(t *testing.T) {
	store := NewMemoryStore()
	store.PutRaw(KeyWaterIntake, []byte("not json at all"))

	var out int
	found, err := store.Get(KeyWaterIntake, &out)
	if found {
		t.Error("expected found=false for corrupt value")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if decodeErr.Key != KeyWaterIntake {
		t.Errorf("DecodeError.Key = %q, want %q", decodeErr.Key, KeyWaterIntake)
	}
}

func TestPutOverwrites(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer store.Close()

			if err := store.Put("k", "old"); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			if err := store.Put("k", "new"); err != nil {
				t.Fatalf("Put failed: %v", err)
			}

			var out string
			if found, err := store.Get("k", &out); err != nil || !found {
				t.Fatalf("Get: found=%v err=%v", found, err)
			}
			if out != "new" {
				t.Errorf("got %q, want %q", out, "new")
			}
		})
	}
}
