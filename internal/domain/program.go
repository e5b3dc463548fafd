package domain

// Category classifies how an exercise is logged.
type Category string

// Define constants for exercise categories
const (
	CategoryResistance Category = "Resistance"
	CategoryCardio     Category = "Cardio"
	CategoryHIIT       Category = "HIIT"
)

// IsCardioStyle reports whether the category is logged as a single
// duration/distance/heart-rate entry rather than weight/reps sets.
func (c Category) IsCardioStyle() bool {
	return c == CategoryCardio || c == CategoryHIIT
}

// Exercise is one entry in a day's program. Exercise IDs are globally unique
// across all programs: the previous-logs cache is keyed by them, so the same
// ID appearing in two days would share history.
type Exercise struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Tip         string   `json:"tip"`
	DefaultRest int      `json:"defaultRest"` // seconds between sets

	// --- Resistance only ---
	Sets        int    `json:"sets,omitempty"`
	Reps        string `json:"reps,omitempty"` // display range, e.g. "8-10"
	MuscleGroup string `json:"muscleGroup,omitempty"`

	// --- Cardio / HIIT only ---
	Duration string `json:"duration,omitempty"` // display target, e.g. "25 mins"
	Details  string `json:"details,omitempty"`
}

// Program is one day's fixed exercise plan. Immutable reference data.
type Program struct {
	Day       string     `json:"day"`
	Focus     string     `json:"focus"`
	TimeLimit string     `json:"timeLimit"`
	Sequence  string     `json:"sequence"`
	Exercises []Exercise `json:"exercises"`
}
