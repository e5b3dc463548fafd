package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"vfp/workout-tracker/internal/domain"
	"vfp/workout-tracker/internal/gamification"
)

func TestWorkoutLifecycle(t *testing.T) {
	local := newFakeStateRepo()
	now := time.Date(2026, 8, 25, 18, 0, 0, 0, time.UTC) // a Tuesday
	svc := NewWorkoutService(NewStateService(nil, local)).(*workoutService)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	snap, err := svc.StartSession(ctx, anonP, "Tuesday")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if snap.Day != "Tuesday" || snap.Progress.TotalSets != 11 { // 4+4+2+1
		t.Fatalf("unexpected snapshot: day=%s totals=%+v", snap.Day, snap.Progress)
	}

	// Log and complete every set of the bench press.
	for i := 0; i < 4; i++ {
		if _, err := svc.SetField(anonP, "tue_r1", i, "weight", "22.5"); err != nil {
			t.Fatalf("set weight: %v", err)
		}
		if _, err := svc.SetField(anonP, "tue_r1", i, "reps", "10"); err != nil {
			t.Fatalf("set reps: %v", err)
		}
		if _, err := svc.ToggleSet(anonP, "tue_r1", i); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}

	progress, err := svc.Progress(anonP)
	if err != nil {
		t.Fatal(err)
	}
	if progress.CompletedSets != 4 {
		t.Errorf("CompletedSets = %d, want 4", progress.CompletedSets)
	}

	now = now.Add(50 * time.Minute)
	result, err := svc.FinishSession(ctx, anonP)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if result.Summary.Duration != 50 {
		t.Errorf("Duration = %d, want 50", result.Summary.Duration)
	}
	if result.Summary.CompletedSets != 4 {
		t.Errorf("CompletedSets = %d, want 4", result.Summary.CompletedSets)
	}
	// 4*15 set XP + 50 first-workout-of-day streak bonus, no completion bonus
	if result.Gamification.XPEarned != 4*gamification.XPPerExercise+gamification.XPPerStreak {
		t.Errorf("XPEarned = %d", result.Gamification.XPEarned)
	}

	// Everything was written through.
	if len(local.histories[anonP.Key()]) != 1 {
		t.Error("summary not appended to history")
	}
	if local.gamifications[anonP.Key()].Streak != 1 {
		t.Error("gamification state not persisted")
	}
	if got := local.prevLogs[anonP.Key()]["tue_r1"]; got.Weight != "22.5" || got.Reps != "10" {
		t.Errorf("previous-logs cache not persisted: %+v", got)
	}

	// The session is gone.
	if _, err := svc.Progress(anonP); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("after finish: %v, want ErrNoActiveSession", err)
	}

	// The next session on the same program is pre-filled from the cache.
	snap2, err := svc.StartSession(ctx, anonP, "Tuesday")
	if err != nil {
		t.Fatal(err)
	}
	if got := snap2.Logs["tue_r1"][0]; got.Weight != "22.5" {
		t.Errorf("new session not pre-filled: %+v", got)
	}
}

func TestStartSessionRestDay(t *testing.T) {
	svc := NewWorkoutService(NewStateService(nil, newFakeStateRepo()))
	if _, err := svc.StartSession(context.Background(), anonP, "Monday"); !errors.Is(err, ErrRestDay) {
		t.Errorf("got %v, want ErrRestDay", err)
	}
}

func TestStartSessionReplacesActiveSession(t *testing.T) {
	svc := NewWorkoutService(NewStateService(nil, newFakeStateRepo()))
	ctx := context.Background()

	if _, err := svc.StartSession(ctx, anonP, "Tuesday"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleSet(anonP, "tue_r1", 0); err != nil {
		t.Fatal(err)
	}

	// Starting again discards the first session entirely.
	snap, err := svc.StartSession(ctx, anonP, "Thursday")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Day != "Thursday" || snap.Progress.CompletedSets != 0 {
		t.Errorf("old session leaked into new one: %+v", snap.Progress)
	}
}

func TestAbandonSessionPersistsNothing(t *testing.T) {
	local := newFakeStateRepo()
	svc := NewWorkoutService(NewStateService(nil, local))
	ctx := context.Background()

	if _, err := svc.StartSession(ctx, anonP, "Tuesday"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleSet(anonP, "tue_r1", 0); err != nil {
		t.Fatal(err)
	}
	svc.AbandonSession(anonP)

	if local.has(anonP.Key()) {
		t.Error("abandoning must not persist any state")
	}
	if _, err := svc.FinishSession(ctx, anonP); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("finish after abandon: %v, want ErrNoActiveSession", err)
	}
}

// Exercises the same session from many goroutines, the way concurrent
// requests for one principal key hit the service. Meaningful under -race;
// without the service holding its lock across session operations this races
// on the log slices.
func TestConcurrentSessionAccess(t *testing.T) {
	svc := NewWorkoutService(NewStateService(nil, newFakeStateRepo()))
	ctx := context.Background()

	if _, err := svc.StartSession(ctx, anonP, "Tuesday"); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		idx := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := svc.SetField(anonP, "tue_r1", idx, "weight", "20"); err != nil {
				t.Errorf("set field: %v", err)
			}
			if _, err := svc.ToggleSet(anonP, "tue_r1", idx); err != nil {
				t.Errorf("toggle: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := svc.Progress(anonP); err != nil {
				t.Errorf("progress: %v", err)
			}
			if _, err := svc.CurrentSession(anonP); err != nil {
				t.Errorf("current: %v", err)
			}
		}()
	}
	wg.Wait()

	p, err := svc.Progress(anonP)
	if err != nil {
		t.Fatal(err)
	}
	if p.CompletedSets != 4 {
		t.Errorf("CompletedSets = %d, want 4 (each set toggled exactly once)", p.CompletedSets)
	}
}

func TestSessionsAreIsolatedPerPrincipal(t *testing.T) {
	svc := NewWorkoutService(NewStateService(nil, newFakeStateRepo()))
	ctx := context.Background()
	other := Principal{DeviceID: "device-2"}

	if _, err := svc.StartSession(ctx, anonP, "Tuesday"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.StartSession(ctx, other, "Thursday"); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ToggleSet(anonP, "tue_r1", 0); err != nil {
		t.Fatal(err)
	}
	p, err := svc.Progress(other)
	if err != nil {
		t.Fatal(err)
	}
	if p.CompletedSets != 0 {
		t.Error("one principal's edits leaked into another's session")
	}
}

func TestStatsAggregation(t *testing.T) {
	local := newFakeStateRepo()
	local.gamifications[anonP.Key()] = domain.GamificationState{XP: 250, Streak: 2}
	local.histories[anonP.Key()] = []domain.WorkoutSummary{
		{
			Day: "Tuesday", Duration: 45, ProgressPercent: 100,
			Logs: domain.SessionLog{
				"tue_r1": {
					{Kind: domain.EntryResistance, Weight: "20", Reps: "10", Completed: true},
					{Kind: domain.EntryResistance, Weight: "20", Reps: "8", Completed: false},   // not completed, no volume
					{Kind: domain.EntryResistance, Weight: "junk", Reps: "10", Completed: true}, // unparsable, counts zero
				},
				"tue_c1": {
					{Kind: domain.EntryCardio, Duration: "25", Completed: true},
				},
			},
		},
		{Day: "Thursday", Duration: 55, ProgressPercent: 50},
	}

	svc := NewWorkoutService(NewStateService(nil, local))
	stats := svc.Stats(context.Background(), anonP)

	if stats.Level.Level != 2 {
		t.Errorf("Level = %d, want 2 at 250 XP", stats.Level.Level)
	}
	if stats.NextLevel == nil || stats.NextLevel.Level != 3 || stats.XPToNext != 250 {
		t.Errorf("next level wrong: %+v xpToNext=%d", stats.NextLevel, stats.XPToNext)
	}
	if stats.TotalWorkouts != 2 || stats.TotalMinutes != 100 {
		t.Errorf("totals = %d workouts / %d min", stats.TotalWorkouts, stats.TotalMinutes)
	}
	if stats.TotalVolume != 200 { // only the completed parsable set: 20*10
		t.Errorf("TotalVolume = %v, want 200", stats.TotalVolume)
	}
	if stats.AvgCompletion != 75 {
		t.Errorf("AvgCompletion = %d, want 75", stats.AvgCompletion)
	}
	if len(stats.RecentSessions) != 2 {
		t.Errorf("RecentSessions = %d entries", len(stats.RecentSessions))
	}
}
