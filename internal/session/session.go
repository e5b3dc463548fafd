// Package session implements the workout-session lifecycle: building an
// editable log from a program, applying field edits and completion toggles,
// and reducing the log to an immutable finish-time summary.
package session

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"vfp/workout-tracker/internal/domain"
)

// --- Error Definitions ---
// These signal caller-contract violations (bad exercise id, bad index); a
// correct caller never triggers them. The API layer maps them to 400s.
var (
	ErrUnknownExercise = errors.New("exercise id not present in session log")
	ErrSetIndexRange   = errors.New("set index out of range")
	ErrFieldNotAllowed = errors.New("field not valid for this entry kind")
)

// Valid field names for SetField, per entry kind.
const (
	FieldWeight   = "weight"
	FieldReps     = "reps"
	FieldDuration = "duration"
	FieldDistance = "distance"
	FieldAvgHR    = "avgHR"
)

// Session is one in-progress attempt at a program. It owns its log
// exclusively and is not safe for concurrent use; callers must serialize
// access (the service layer holds its lock across every operation).
// Discarding a Session without calling Finalize abandons it with no trace.
type Session struct {
	ID        string
	Program   domain.Program
	StartedAt time.Time

	logs domain.SessionLog
}

// Start builds a new session for the given program. Resistance exercises get
// one entry per planned set with weight/reps pre-filled from the previous-logs
// cache when present; Cardio/HIIT exercises get a single entry pre-filled from
// the cache's duration/distance/avgHR. Absent cache entries silently yield
// empty fields. Pure construction, no failure modes.
func Start(program domain.Program, previous domain.PreviousLogsCache, now time.Time) *Session {
	logs := make(domain.SessionLog, len(program.Exercises))
	for _, ex := range program.Exercises {
		prev, hasPrev := previous[ex.ID]
		if ex.Category.IsCardioStyle() {
			entry := domain.SetEntry{SetNum: 1, Kind: domain.EntryCardio}
			if hasPrev {
				entry.Duration = prev.Duration
				entry.Distance = prev.Distance
				entry.AvgHR = prev.AvgHR
			}
			logs[ex.ID] = []domain.SetEntry{entry}
			continue
		}
		sets := make([]domain.SetEntry, ex.Sets)
		for i := range sets {
			sets[i] = domain.SetEntry{SetNum: i + 1, Kind: domain.EntryResistance}
			if hasPrev {
				sets[i].Weight = prev.Weight
				sets[i].Reps = prev.Reps
			}
		}
		logs[ex.ID] = sets
	}
	return &Session{
		ID:        uuid.NewString(),
		Program:   program,
		StartedAt: now,
		logs:      logs,
	}
}

// Logs returns a snapshot of the current log state.
func (s *Session) Logs() domain.SessionLog {
	return s.logs.Clone()
}

// SetField replaces one field of one entry. Values are stored as provided,
// even when non-numeric; aggregation treats unparsable values as zero.
func (s *Session) SetField(exerciseID string, setIndex int, field, value string) error {
	entry, err := s.entry(exerciseID, setIndex)
	if err != nil {
		return err
	}
	switch field {
	case FieldWeight:
		if entry.Kind != domain.EntryResistance {
			return ErrFieldNotAllowed
		}
		entry.Weight = value
	case FieldReps:
		if entry.Kind != domain.EntryResistance {
			return ErrFieldNotAllowed
		}
		entry.Reps = value
	case FieldDuration:
		if entry.Kind != domain.EntryCardio {
			return ErrFieldNotAllowed
		}
		entry.Duration = value
	case FieldDistance:
		if entry.Kind != domain.EntryCardio {
			return ErrFieldNotAllowed
		}
		entry.Distance = value
	case FieldAvgHR:
		if entry.Kind != domain.EntryCardio {
			return ErrFieldNotAllowed
		}
		entry.AvgHR = value
	default:
		return ErrFieldNotAllowed
	}
	return nil
}

// ToggleCompleted flips the completion flag of one entry; no other field
// changes.
func (s *Session) ToggleCompleted(exerciseID string, setIndex int) error {
	entry, err := s.entry(exerciseID, setIndex)
	if err != nil {
		return err
	}
	entry.Completed = !entry.Completed
	return nil
}

func (s *Session) entry(exerciseID string, setIndex int) (*domain.SetEntry, error) {
	sets, ok := s.logs[exerciseID]
	if !ok {
		return nil, ErrUnknownExercise
	}
	if setIndex < 0 || setIndex >= len(sets) {
		return nil, ErrSetIndexRange
	}
	return &sets[setIndex], nil
}

// Progress derives the live completion state from the log. Always recomputed
// on demand, never cached.
func (s *Session) Progress() domain.Progress {
	var p domain.Progress
	for _, sets := range s.logs {
		p.TotalSets += len(sets)
		for _, set := range sets {
			if set.Completed {
				p.CompletedSets++
			}
		}
	}
	if p.TotalSets > 0 {
		p.Percent = int(math.Round(100 * float64(p.CompletedSets) / float64(p.TotalSets)))
	}
	return p
}

// Finalize reduces the session to an immutable WorkoutSummary and the
// previous-logs cache update. The summary's log is a deep copy; mutating the
// live session afterwards cannot alter it.
//
// Cache rules: Cardio/HIIT entries are cached unconditionally (completed or
// not); resistance exercises cache weight/reps from the LAST completed set,
// and contribute nothing when no set was completed (the prior cache value for
// that exercise stays untouched).
func (s *Session) Finalize(now time.Time) (domain.WorkoutSummary, domain.PreviousLogsCache) {
	progress := s.Progress()
	summary := domain.WorkoutSummary{
		Day:             s.Program.Day,
		Focus:           s.Program.Focus,
		Date:            now,
		Duration:        int(math.Round(now.Sub(s.StartedAt).Minutes())),
		Logs:            s.logs.Clone(),
		TotalSets:       progress.TotalSets,
		CompletedSets:   progress.CompletedSets,
		ProgressPercent: progress.Percent,
	}

	update := make(domain.PreviousLogsCache)
	for id, sets := range s.logs {
		if len(sets) == 0 {
			continue
		}
		if sets[0].Kind == domain.EntryCardio {
			update[id] = domain.PreviousLog{
				Duration: sets[0].Duration,
				Distance: sets[0].Distance,
				AvgHR:    sets[0].AvgHR,
			}
			continue
		}
		for i := len(sets) - 1; i >= 0; i-- {
			if sets[i].Completed {
				update[id] = domain.PreviousLog{Weight: sets[i].Weight, Reps: sets[i].Reps}
				break
			}
		}
	}
	return summary, update
}
