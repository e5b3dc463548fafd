package domain

import "time"

// EntryKind tags a set entry with its logging shape. The kind is fixed from
// the exercise's category when the log is built and never changes within a
// session; it is NOT inferred from which fields happen to be populated.
type EntryKind string

const (
	EntryResistance EntryKind = "resistance"
	EntryCardio     EntryKind = "cardio"
)

// SetEntry is one loggable row of an exercise. Resistance exercises have one
// entry per planned set; Cardio/HIIT exercises have exactly one entry.
// Numeric fields are kept as the user typed them (possibly empty or
// unparsable) and treated as zero during aggregation.
type SetEntry struct {
	SetNum    int       `bson:"setNum" json:"setNum"` // 1-based, matches position
	Kind      EntryKind `bson:"kind" json:"kind"`
	Completed bool      `bson:"completed" json:"completed"`

	// --- Resistance ---
	Weight string `bson:"weight,omitempty" json:"weight,omitempty"`
	Reps   string `bson:"reps,omitempty" json:"reps,omitempty"`

	// --- Cardio / HIIT ---
	Duration string `bson:"duration,omitempty" json:"duration,omitempty"`
	Distance string `bson:"distance,omitempty" json:"distance,omitempty"`
	AvgHR    string `bson:"avgHR,omitempty" json:"avgHR,omitempty"`
}

// SessionLog maps exercise ID to that exercise's ordered set entries.
type SessionLog map[string][]SetEntry

// Clone deep-copies the log so a frozen snapshot cannot be altered through
// the live session.
func (l SessionLog) Clone() SessionLog {
	if l == nil {
		return nil
	}
	out := make(SessionLog, len(l))
	for id, sets := range l {
		copied := make([]SetEntry, len(sets))
		copy(copied, sets)
		out[id] = copied
	}
	return out
}

// PreviousLog holds the last-known input values for one exercise, used only
// to pre-fill the next session's log.
type PreviousLog struct {
	Weight   string `bson:"weight,omitempty" json:"weight,omitempty"`
	Reps     string `bson:"reps,omitempty" json:"reps,omitempty"`
	Duration string `bson:"duration,omitempty" json:"duration,omitempty"`
	Distance string `bson:"distance,omitempty" json:"distance,omitempty"`
	AvgHR    string `bson:"avgHR,omitempty" json:"avgHR,omitempty"`
}

// PreviousLogsCache maps exercise ID to its last-known values.
type PreviousLogsCache map[string]PreviousLog

// Progress is the live completion state of a session, always derived from
// the log, never stored.
type Progress struct {
	TotalSets     int `json:"totalSets"`
	CompletedSets int `json:"completedSets"`
	Percent       int `json:"progressPercent"` // 0-100
}

// WorkoutSummary is the immutable record of a finished session. Created once
// at finish time and appended to history; never mutated or removed.
type WorkoutSummary struct {
	Day             string     `bson:"day" json:"day"`
	Focus           string     `bson:"focus" json:"focus"`
	Date            time.Time  `bson:"date" json:"date"`
	Duration        int        `bson:"duration" json:"duration"` // whole minutes
	Logs            SessionLog `bson:"logs" json:"logs"`
	TotalSets       int        `bson:"totalSets" json:"totalSets"`
	CompletedSets   int        `bson:"completedSets" json:"completedSets"`
	ProgressPercent int        `bson:"progressPercent" json:"progressPercent"`
}
