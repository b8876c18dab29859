package records

import "time"

// PersonalRecord is the heaviest-weight fact a user logs for an exercise.
// Many records may exist per exercise; only the heaviest one (in kg)
// counts as the "best" for strength classification.
type PersonalRecord struct {
	ID           int       `json:"id"`
	ExerciseName string    `json:"exerciseName"`
	Weight       float64   `json:"weight"`
	WeightUnit   string    `json:"weightUnit"` // "kg" or "lbs"
	Date         time.Time `json:"date"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"createdAt"`
}

// WorkoutLog is a single finished training session.
type WorkoutLog struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Notes     string    `json:"notes"`
	Duration  int       `json:"durationMinutes"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}
