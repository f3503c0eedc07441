// ABOUTME: Tests for WorkoutRepo.
// ABOUTME: Append ordering, persistence agreement, clears, and stats.
package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

func TestWorkoutAddPrependsNewest(t *testing.T) {
	store := storage.NewMemoryStore()
	r := NewWorkoutRepo(store, nil)
	require.NoError(t, r.Load())

	first, err := r.Add("Sunrise Flow", "Yoga", 20, 90)
	require.NoError(t, err)
	second, err := r.Add("Core Crusher", "Abs", 20, 180)
	require.NoError(t, err)

	history := r.History()
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)

	// Store and snapshot agree.
	var stored []models.WorkoutRecord
	found, err := store.Get(storage.KeyWorkoutHistory, &stored)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, stored, 2)
	assert.Equal(t, second.ID, stored[0].ID)
}

func TestWorkoutAddFailureLeavesSnapshot(t *testing.T) {
	store := &failingStore{Store: storage.NewMemoryStore()}
	r := NewWorkoutRepo(store, nil)
	require.NoError(t, r.Load())

	_, err := r.Add("Sunrise Flow", "Yoga", 20, 90)
	require.NoError(t, err)

	store.failPut = true
	_, err = r.Add("Core Crusher", "Abs", 20, 180)
	require.Error(t, err)
	assert.Len(t, r.History(), 1)
}

func TestWorkoutClear(t *testing.T) {
	store := storage.NewMemoryStore()
	r := NewWorkoutRepo(store, nil)
	require.NoError(t, r.Load())

	_, err := r.Add("Core Crusher", "Abs", 20, 180)
	require.NoError(t, err)
	require.NoError(t, r.Clear())
	assert.Empty(t, r.History())

	// Cleared history persists as an empty collection, not absence.
	var stored []models.WorkoutRecord
	found, err := store.Get(storage.KeyWorkoutHistory, &stored)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, stored)
}

func TestWorkoutCorruptHistoryTreatedAsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	store.PutRaw(storage.KeyWorkoutHistory, []byte("[[["))

	r := NewWorkoutRepo(store, nil)
	require.NoError(t, r.Load())
	assert.Empty(t, r.History())
}

func TestWorkoutStats(t *testing.T) {
	store := storage.NewMemoryStore()
	r := NewWorkoutRepo(store, nil)
	require.NoError(t, r.Load())

	_, err := r.Add("Core Crusher", "Abs", 20, 180)
	require.NoError(t, err)
	_, err = r.Add("Sunrise Flow", "Yoga", 20, 90)
	require.NoError(t, err)

	s := r.Stats(time.Now())
	assert.Equal(t, 2, s.TotalWorkouts)
	assert.Equal(t, 270, s.TotalCalories)
	assert.Equal(t, 2, s.TodayWorkouts)
	assert.Equal(t, 1, s.Streak.Current)
	assert.Equal(t, 1, s.Streak.Longest)
}
