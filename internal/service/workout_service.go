package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"vfp/workout-tracker/internal/catalog"
	"vfp/workout-tracker/internal/domain"
	"vfp/workout-tracker/internal/gamification"
	"vfp/workout-tracker/internal/session"
)

// --- Error Definitions ---
var (
	ErrNoActiveSession = errors.New("no active workout session")
	ErrRestDay         = errors.New("no program scheduled for this day")
)

// SessionSnapshot is the current state of an active session, for display.
type SessionSnapshot struct {
	ID        string            `json:"id"`
	Day       string            `json:"day"`
	Focus     string            `json:"focus"`
	TimeLimit string            `json:"timeLimit"`
	Sequence  string            `json:"sequence"`
	StartedAt time.Time         `json:"startedAt"`
	Logs      domain.SessionLog `json:"logs"`
	Progress  domain.Progress   `json:"progress"`
}

// FinishResult pairs the immutable summary with the scoring event it
// produced.
type FinishResult struct {
	Summary      domain.WorkoutSummary     `json:"summary"`
	Gamification domain.GamificationResult `json:"gamification"`
}

// --- Service Interface ---

// WorkoutService drives the session lifecycle: at most one active session
// per principal, sequential edits, and a finish step that reduces the log to
// a summary, scores it, and writes everything through the state service.
// Abandoning a session discards it without persisting anything.
type WorkoutService interface {
	StartSession(ctx context.Context, p Principal, day string) (*SessionSnapshot, error)
	CurrentSession(p Principal) (*SessionSnapshot, error)
	SetField(p Principal, exerciseID string, setIndex int, field, value string) (domain.Progress, error)
	ToggleSet(p Principal, exerciseID string, setIndex int) (domain.Progress, error)
	Progress(p Principal) (domain.Progress, error)
	FinishSession(ctx context.Context, p Principal) (*FinishResult, error)
	AbandonSession(p Principal)
	History(ctx context.Context, p Principal) []domain.WorkoutSummary
	Stats(ctx context.Context, p Principal) *Stats
}

// --- Service Implementation ---

// workoutService implements WorkoutService. The mutex guards the
// active-session map AND is held across every session operation: handlers
// run concurrently, and two requests for the same principal key would
// otherwise race on the session's log.
type workoutService struct {
	states StateService

	mu       sync.Mutex
	sessions map[string]*session.Session // principal key -> active session

	now func() time.Time
}

// NewWorkoutService creates a new workoutService.
func NewWorkoutService(states StateService) WorkoutService {
	return &workoutService{
		states:   states,
		sessions: make(map[string]*session.Session),
		now:      time.Now,
	}
}

// StartSession builds a fresh log for the given day's program, pre-filled
// from the principal's previous-logs cache. Any prior active session for the
// same principal is discarded, never finalized.
func (s *workoutService) StartSession(ctx context.Context, p Principal, day string) (*SessionSnapshot, error) {
	program, ok := catalog.ProgramForDay(day)
	if !ok {
		return nil, ErrRestDay
	}

	state := s.states.Load(ctx, p)
	sess := session.Start(program, state.PreviousLogs, s.now())

	// Snapshot before releasing the lock: once the session is published in
	// the map, concurrent requests may mutate it.
	s.mu.Lock()
	s.sessions[p.Key()] = sess
	snap := snapshotOf(sess)
	s.mu.Unlock()

	return snap, nil
}

// CurrentSession returns the active session's state.
func (s *workoutService) CurrentSession(p Principal) (*SessionSnapshot, error) {
	var snap *SessionSnapshot
	err := s.withSession(p, func(sess *session.Session) error {
		snap = snapshotOf(sess)
		return nil
	})
	return snap, err
}

// SetField edits one field of one set entry and returns the live progress.
func (s *workoutService) SetField(p Principal, exerciseID string, setIndex int, field, value string) (domain.Progress, error) {
	var progress domain.Progress
	err := s.withSession(p, func(sess *session.Session) error {
		if err := sess.SetField(exerciseID, setIndex, field, value); err != nil {
			return err
		}
		progress = sess.Progress()
		return nil
	})
	return progress, err
}

// ToggleSet flips one entry's completion flag and returns the live progress.
func (s *workoutService) ToggleSet(p Principal, exerciseID string, setIndex int) (domain.Progress, error) {
	var progress domain.Progress
	err := s.withSession(p, func(sess *session.Session) error {
		if err := sess.ToggleCompleted(exerciseID, setIndex); err != nil {
			return err
		}
		progress = sess.Progress()
		return nil
	})
	return progress, err
}

// Progress returns the active session's derived completion state.
func (s *workoutService) Progress(p Principal) (domain.Progress, error) {
	var progress domain.Progress
	err := s.withSession(p, func(sess *session.Session) error {
		progress = sess.Progress()
		return nil
	})
	return progress, err
}

// FinishSession finalizes the active session: freeze the summary, fold the
// cache update into the previous-logs cache, append to history, score the
// summary, persist all three fields, and drop the session. Persistence is
// write-through best-effort; the result is returned regardless.
func (s *workoutService) FinishSession(ctx context.Context, p Principal) (*FinishResult, error) {
	// Removing the session from the map makes it unreachable to concurrent
	// requests; finalizing outside the lock is then safe.
	s.mu.Lock()
	sess, ok := s.sessions[p.Key()]
	if ok {
		delete(s.sessions, p.Key())
	}
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoActiveSession
	}

	now := s.now()
	summary, cacheUpdate := sess.Finalize(now)

	state := s.states.Load(ctx, p)

	prevLogs := state.PreviousLogs
	if prevLogs == nil {
		prevLogs = domain.PreviousLogsCache{}
	}
	for id, entry := range cacheUpdate {
		prevLogs[id] = entry
	}
	s.states.SavePreviousLogs(ctx, p, prevLogs)

	history := append(state.WorkoutHistory, summary)
	s.states.SaveHistory(ctx, p, history)

	gamState, result := gamification.Apply(state.Gamification, summary, now)
	s.states.SaveGamification(ctx, p, gamState)

	return &FinishResult{Summary: summary, Gamification: result}, nil
}

// AbandonSession discards the active session, if any. No partial summary is
// ever persisted.
func (s *workoutService) AbandonSession(p Principal) {
	s.mu.Lock()
	delete(s.sessions, p.Key())
	s.mu.Unlock()
}

// History returns the principal's persisted workout history.
func (s *workoutService) History(ctx context.Context, p Principal) []domain.WorkoutSummary {
	return s.states.Load(ctx, p).WorkoutHistory
}

// Stats aggregates gamification status and lifetime history metrics.
func (s *workoutService) Stats(ctx context.Context, p Principal) *Stats {
	state := s.states.Load(ctx, p)
	return computeStats(state)
}

// withSession runs fn on the principal's active session while holding the
// lock. The session pointer must never escape fn.
func (s *workoutService) withSession(p Principal, fn func(*session.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[p.Key()]
	if !ok {
		return ErrNoActiveSession
	}
	return fn(sess)
}

func snapshotOf(sess *session.Session) *SessionSnapshot {
	return &SessionSnapshot{
		ID:        sess.ID,
		Day:       sess.Program.Day,
		Focus:     sess.Program.Focus,
		TimeLimit: sess.Program.TimeLimit,
		Sequence:  sess.Program.Sequence,
		StartedAt: sess.StartedAt,
		Logs:      sess.Logs(),
		Progress:  sess.Progress(),
	}
}
