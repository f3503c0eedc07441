// ABOUTME: Pure derived-statistics functions over workout and BMI data.
// ABOUTME: BMI classification, calorie totals, streaks, and today filters.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// Category classifies a BMI value for display.
type Category struct {
	Name  string
	Color string // hex, for UI consumers
	Glyph string
}

// BMI category bands. Lower bounds are inclusive, upper bounds exclusive.
var (
	CategoryUnderweight = Category{Name: "Underweight", Color: "#3b82f6", Glyph: "⚠️"}
	CategoryNormal      = Category{Name: "Normal", Color: "#10b981", Glyph: "✅"}
	CategoryOverweight  = Category{Name: "Overweight", Color: "#f59e0b", Glyph: "⚠️"}
	CategoryObese       = Category{Name: "Obese", Color: "#ef4444", Glyph: "🚨"}
)

// BMI computes body-mass index from weight in kg and height in cm, rounded
// half-up to one decimal place. It returns 0 when either input is
// non-positive; that zero is a sentinel, not a valid BMI, and callers must
// check it before display.
func BMI(weight, heightCM float64) float64 {
	if weight <= 0 || heightCM <= 0 {
		return 0
	}
	heightM := heightCM / 100
	bmi := weight / (heightM * heightM)
	return math.Floor(bmi*10+0.5) / 10
}

// CategoryFor maps a BMI value to its classification band.
func CategoryFor(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryNormal
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// TotalCalories sums calories across all workout records.
func TotalCalories(history []models.WorkoutRecord) int {
	total := 0
	for _, w := range history {
		total += w.Calories
	}
	return total
}

// TodayCount counts workouts completed on the same local calendar day as now.
func TodayCount(history []models.WorkoutRecord, now time.Time) int {
	count := 0
	for _, w := range history {
		if SameDay(w.CompletedAt, now) {
			count++
		}
	}
	return count
}

// StreakResult holds consecutive-day workout streaks.
type StreakResult struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// Streak computes current and longest consecutive-day streaks from the
// workout history. Days are local calendar days; a streak is only live when
// its most recent day is today or yesterday relative to now, otherwise both
// values are 0 regardless of past runs. Current is anchored at the most
// recent active day.
func Streak(history []models.WorkoutRecord, now time.Time) StreakResult {
	if len(history) == 0 {
		return StreakResult{}
	}

	days := activeDays(history)

	today := dayOf(now)
	yesterday := today.AddDate(0, 0, -1)
	if !days[0].Equal(today) && !days[0].Equal(yesterday) {
		return StreakResult{}
	}

	current := 1
	longest := 1
	run := 1
	anchored := true
	for i := 1; i < len(days); i++ {
		// AddDate rather than 24h arithmetic: local days around DST
		// transitions are not always 24 hours long.
		if days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			run++
			if anchored {
				current = run
			}
		} else {
			anchored = false
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}

	return StreakResult{Current: current, Longest: longest}
}

// activeDays reduces the history to distinct local calendar days with at
// least one workout, descending.
func activeDays(history []models.WorkoutRecord) []time.Time {
	sorted := make([]models.WorkoutRecord, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})

	var days []time.Time
	for _, w := range sorted {
		day := dayOf(w.CompletedAt)
		if len(days) == 0 || !days[len(days)-1].Equal(day) {
			days = append(days, day)
		}
	}
	return days
}

// dayOf truncates a timestamp to local midnight.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// HistoryStats aggregates the derived workout-history numbers the UI shows.
type HistoryStats struct {
	TotalWorkouts int          `json:"totalWorkouts"`
	TotalCalories int          `json:"totalCalories"`
	Streak        StreakResult `json:"streak"`
	TodayWorkouts int          `json:"todayWorkouts"`
}

// HistoryStatsFor computes all history aggregates in one pass over the
// supplied snapshot.
func HistoryStatsFor(history []models.WorkoutRecord, now time.Time) HistoryStats {
	return HistoryStats{
		TotalWorkouts: len(history),
		TotalCalories: TotalCalories(history),
		Streak:        Streak(history, now),
		TodayWorkouts: TodayCount(history, now),
	}
}
