// ABOUTME: WorkoutRecord model for completed workout sessions.
// ABOUTME: Immutable once created; collections are ordered newest-first.
package models

import "time"

// WorkoutRecord is one completed workout session.
type WorkoutRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Duration    int       `json:"duration"` // minutes
	Calories    int       `json:"calories"`
	CompletedAt time.Time `json:"completedAt"`
}

// NewWorkoutRecord creates a completed-workout record with a generated ID
// and the current completion time.
func NewWorkoutRecord(name, category string, duration, calories int) *WorkoutRecord {
	return &WorkoutRecord{
		ID:          NewID(),
		Name:        name,
		Category:    category,
		Duration:    duration,
		Calories:    calories,
		CompletedAt: time.Now(),
	}
}
