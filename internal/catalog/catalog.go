// ABOUTME: Built-in workout catalog the user browses and completes.
// ABOUTME: Static data; completing an entry appends a WorkoutRecord to history.
package catalog

import "strings"

// Workout is a browsable catalog entry. Duration is minutes; Calories is
// the estimated burn recorded on completion.
type Workout struct {
	ID         string
	Name       string
	Category   string
	Difficulty string
	Duration   int
	Calories   int
	Exercises  []string
}

// Categories lists the browsable workout categories. "All" is the unfiltered
// view, not a real category.
var Categories = []string{
	"All",
	"Full Body",
	"Abs",
	"Chest & Arms",
	"Legs",
	"Yoga",
}

// DifficultyColors maps difficulty labels to display color hex values.
var DifficultyColors = map[string]string{
	"Beginner":     "#10b981",
	"Intermediate": "#f59e0b",
	"Advanced":     "#ef4444",
}

// Workouts is the built-in catalog.
var Workouts = []Workout{
	{
		ID: "full-body-blast", Name: "Full Body Blast", Category: "Full Body",
		Difficulty: "Intermediate", Duration: 30, Calories: 320,
		Exercises: []string{"Jumping Jacks", "Push-ups", "Squats", "Mountain Climbers", "Burpees", "Plank"},
	},
	{
		ID: "morning-energizer", Name: "Morning Energizer", Category: "Full Body",
		Difficulty: "Beginner", Duration: 15, Calories: 140,
		Exercises: []string{"Arm Circles", "High Knees", "Bodyweight Squats", "Lunges", "Jumping Jacks"},
	},
	{
		ID: "hiit-inferno", Name: "HIIT Inferno", Category: "Full Body",
		Difficulty: "Advanced", Duration: 25, Calories: 380,
		Exercises: []string{"Burpees", "Squat Jumps", "Sprint in Place", "Push-up to Plank", "Tuck Jumps"},
	},
	{
		ID: "core-crusher", Name: "Core Crusher", Category: "Abs",
		Difficulty: "Intermediate", Duration: 20, Calories: 180,
		Exercises: []string{"Crunches", "Leg Raises", "Russian Twists", "Bicycle Crunches", "Plank"},
	},
	{
		ID: "six-pack-starter", Name: "Six Pack Starter", Category: "Abs",
		Difficulty: "Beginner", Duration: 12, Calories: 100,
		Exercises: []string{"Crunches", "Dead Bug", "Heel Touches", "Knee Plank"},
	},
	{
		ID: "ab-shredder", Name: "Ab Shredder", Category: "Abs",
		Difficulty: "Advanced", Duration: 22, Calories: 240,
		Exercises: []string{"V-Ups", "Hanging Knee Raises", "Side Plank Dips", "Dragon Flags", "Plank Jacks"},
	},
	{
		ID: "push-day-power", Name: "Push Day Power", Category: "Chest & Arms",
		Difficulty: "Intermediate", Duration: 28, Calories: 260,
		Exercises: []string{"Push-ups", "Diamond Push-ups", "Tricep Dips", "Pike Push-ups", "Arm Pulses"},
	},
	{
		ID: "upper-body-basics", Name: "Upper Body Basics", Category: "Chest & Arms",
		Difficulty: "Beginner", Duration: 18, Calories: 150,
		Exercises: []string{"Wall Push-ups", "Knee Push-ups", "Chair Dips", "Arm Circles"},
	},
	{
		ID: "leg-day-burn", Name: "Leg Day Burn", Category: "Legs",
		Difficulty: "Intermediate", Duration: 26, Calories: 290,
		Exercises: []string{"Squats", "Walking Lunges", "Calf Raises", "Wall Sit", "Glute Bridges"},
	},
	{
		ID: "lower-body-ladder", Name: "Lower Body Ladder", Category: "Legs",
		Difficulty: "Advanced", Duration: 32, Calories: 400,
		Exercises: []string{"Jump Squats", "Bulgarian Split Squats", "Single-Leg Deadlifts", "Pistol Squats", "Lunge Pulses"},
	},
	{
		ID: "sunrise-flow", Name: "Sunrise Flow", Category: "Yoga",
		Difficulty: "Beginner", Duration: 20, Calories: 90,
		Exercises: []string{"Sun Salutation", "Downward Dog", "Warrior I", "Warrior II", "Child's Pose"},
	},
	{
		ID: "power-yoga", Name: "Power Yoga", Category: "Yoga",
		Difficulty: "Intermediate", Duration: 35, Calories: 200,
		Exercises: []string{"Chair Pose", "Crow Pose", "Plank Flow", "Chaturanga", "Boat Pose", "Pigeon Pose"},
	},
}

// ByID finds a catalog workout by its exact ID, case-insensitively.
func ByID(id string) (Workout, bool) {
	for _, w := range Workouts {
		if strings.EqualFold(w.ID, id) {
			return w, true
		}
	}
	return Workout{}, false
}

// ByCategory returns catalog workouts in the given category. "All" or an
// empty category returns the whole catalog.
func ByCategory(category string) []Workout {
	if category == "" || strings.EqualFold(category, "All") {
		return append([]Workout(nil), Workouts...)
	}

	var matched []Workout
	for _, w := range Workouts {
		if strings.EqualFold(w.Category, category) {
			matched = append(matched, w)
		}
	}
	return matched
}

// IsValidCategory checks whether category names a browsable category.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}
