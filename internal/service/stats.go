package service

import (
	"strconv"

	"vfp/workout-tracker/internal/domain"
	"vfp/workout-tracker/internal/gamification"
	"vfp/workout-tracker/internal/repository"
)

const recentSessionCount = 4

// Stats is the dashboard view: current level standing plus lifetime
// aggregates over the workout history.
type Stats struct {
	XP        int           `json:"xp"`
	Streak    int           `json:"streak"`
	Level     domain.Level  `json:"level"`
	NextLevel *domain.Level `json:"nextLevel,omitempty"`
	XPToNext  int           `json:"xpToNext,omitempty"`

	TotalWorkouts int     `json:"totalWorkouts"`
	TotalMinutes  int     `json:"totalMinutes"`
	TotalVolume   float64 `json:"totalVolume"` // kg lifted across completed resistance sets
	AvgCompletion int     `json:"avgCompletion"`

	RecentSessions []domain.WorkoutSummary `json:"recentSessions"`
}

// computeStats derives the dashboard metrics from persisted state. Weight
// and reps are user-typed strings; unparsable values count as zero and never
// fail the aggregation.
func computeStats(state *repository.UserState) *Stats {
	gam := state.Gamification
	stats := &Stats{
		XP:     gam.XP,
		Streak: gam.Streak,
		Level:  gamification.LevelFor(gam.XP),
	}
	if next, ok := gamification.NextLevel(gam.XP); ok {
		stats.NextLevel = &next
		stats.XPToNext = next.XPRequired - gam.XP
	}

	var percentSum int
	for _, w := range state.WorkoutHistory {
		stats.TotalWorkouts++
		stats.TotalMinutes += w.Duration
		percentSum += w.ProgressPercent
		for _, sets := range w.Logs {
			for _, set := range sets {
				if set.Kind != domain.EntryResistance || !set.Completed {
					continue
				}
				weight, _ := strconv.ParseFloat(set.Weight, 64)
				reps, _ := strconv.Atoi(set.Reps)
				stats.TotalVolume += weight * float64(reps)
			}
		}
	}
	if stats.TotalWorkouts > 0 {
		stats.AvgCompletion = (percentSum + stats.TotalWorkouts/2) / stats.TotalWorkouts
	}

	recent := state.WorkoutHistory
	if len(recent) > recentSessionCount {
		recent = recent[len(recent)-recentSessionCount:]
	}
	stats.RecentSessions = recent

	return stats
}
