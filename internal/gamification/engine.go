// Package gamification turns finished-workout summaries into XP, streak and
// level progress. Apply is a pure function of its inputs; the clock is passed
// in so scoring is independently testable.
package gamification

import (
	"time"

	"vfp/workout-tracker/internal/domain"
)

// XP award constants.
const (
	XPPerExercise        = 15  // per completed set
	XPPerWorkoutComplete = 100 // bonus at 100% completion
	XPPerStreak          = 50  // bonus on the first workout of a calendar day
)

// levels is the static ladder. XPRequired ascends and level 1 requires 0 XP,
// so LevelFor always matches something.
var levels = []domain.Level{
	{Level: 1, Title: "Beginner", XPRequired: 0, Badge: "seedling"},
	{Level: 2, Title: "Committed", XPRequired: 200, Badge: "muscle"},
	{Level: 3, Title: "Warrior", XPRequired: 500, Badge: "swords"},
	{Level: 4, Title: "Athlete", XPRequired: 1000, Badge: "lifter"},
	{Level: 5, Title: "Elite", XPRequired: 2000, Badge: "fire"},
	{Level: 6, Title: "Champion", XPRequired: 3500, Badge: "trophy"},
	{Level: 7, Title: "Legend", XPRequired: 5500, Badge: "crown"},
	{Level: 8, Title: "Ironclad", XPRequired: 8000, Badge: "bolt"},
}

// Levels returns the full ladder in ascending order.
func Levels() []domain.Level {
	return levels
}

// LevelFor returns the highest level whose XP requirement is met.
func LevelFor(xp int) domain.Level {
	current := levels[0]
	for _, l := range levels {
		if l.XPRequired <= xp {
			current = l
		}
	}
	return current
}

// NextLevel returns the first level above the given XP, or false when the
// ladder is maxed out.
func NextLevel(xp int) (domain.Level, bool) {
	for _, l := range levels {
		if l.XPRequired > xp {
			return l, true
		}
	}
	return domain.Level{}, false
}

// DayKey reduces a timestamp to its calendar-day identifier in local time.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Apply scores one finished workout against the current state and returns
// the updated state plus a presentation-only result descriptor.
//
// The streak increments at most once per calendar day, and a gap of missed
// days does NOT reset it: the streak only ever grows or stays flat. Kept
// deliberately to match the shipped scoring behavior.
func Apply(state domain.GamificationState, summary domain.WorkoutSummary, now time.Time) (domain.GamificationState, domain.GamificationResult) {
	xpEarned := summary.CompletedSets * XPPerExercise
	if summary.ProgressPercent == 100 {
		xpEarned += XPPerWorkoutComplete
	}

	today := DayKey(now)
	streak := state.Streak
	if state.LastWorkoutDate != today {
		streak++
		xpEarned += XPPerStreak
	}

	newXP := state.XP + xpEarned
	oldLevel := LevelFor(state.XP)
	newLevel := LevelFor(newXP)

	next := domain.GamificationState{
		XP:              newXP,
		Streak:          streak,
		LastWorkoutDate: today,
		Badges:          state.Badges,
	}
	result := domain.GamificationResult{
		XPEarned:     xpEarned,
		Streak:       streak,
		LevelUp:      newLevel.Level > oldLevel.Level,
		CurrentLevel: newLevel.Level,
		XP:           newXP,
	}
	return next, result
}
