package domain

// GamificationState is the persistent XP/streak progress for one user,
// independent of any single session. Mutated exactly once per finished
// workout.
type GamificationState struct {
	XP     int `bson:"xp" json:"xp"`
	Streak int `bson:"streak" json:"streak"`
	// LastWorkoutDate is a calendar-day key ("2006-01-02"), empty when the
	// user has never finished a workout.
	LastWorkoutDate string   `bson:"lastWorkoutDate,omitempty" json:"lastWorkoutDate,omitempty"`
	Badges          []string `bson:"badges" json:"badges"`
}

// Level is one rung of the static XP ladder. XPRequired is ascending and
// level 1 requires 0 XP, so a lookup always matches.
type Level struct {
	Level      int    `json:"level"`
	Title      string `json:"title"`
	XPRequired int    `json:"xpRequired"`
	Badge      string `json:"badge"`
}

// GamificationResult describes a single scoring event for presentation.
// It is never persisted.
type GamificationResult struct {
	XPEarned     int  `json:"xpEarned"`
	Streak       int  `json:"streak"`
	LevelUp      bool `json:"levelUp"`
	CurrentLevel int  `json:"currentLevel"`
	XP           int  `json:"xp"`
}
