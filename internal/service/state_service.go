package service

import (
	"context"
	"errors"
	"log"

	"vfp/workout-tracker/internal/domain"
	"vfp/workout-tracker/internal/repository"
)

// Principal identifies who owns persisted workout state: an authenticated
// user (hex ObjectID) or an anonymous device.
type Principal struct {
	UserID   string // empty when anonymous
	DeviceID string // stable per-device key for the anonymous path
}

// Authenticated reports whether a signed-in user is behind this principal.
func (p Principal) Authenticated() bool {
	return p.UserID != ""
}

// Key returns the storage owner key.
func (p Principal) Key() string {
	if p.Authenticated() {
		return p.UserID
	}
	return "device:" + p.DeviceID
}

// --- Service Interface ---

// StateService loads and persists per-owner workout state across a ranked
// list of storage backends. Loads fall through the ranking until one backend
// answers; saves are best-effort write-through to every backend in the
// ranking. Persistence failures are logged, never surfaced to the caller:
// the tracker keeps working on whatever state it has.
//
// Known limitation, inherited from the design: remote writes are
// last-write-wins per field. Two devices finishing workouts concurrently can
// lose one device's history append. Acceptable for a personal tracker.
type StateService interface {
	Load(ctx context.Context, p Principal) *repository.UserState
	SaveHistory(ctx context.Context, p Principal, history []domain.WorkoutSummary)
	SaveGamification(ctx context.Context, p Principal, state domain.GamificationState)
	SavePreviousLogs(ctx context.Context, p Principal, cache domain.PreviousLogsCache)
	// MigrateLocalToRemote copies the local device store into the user's
	// remote document, only when the remote document does not exist yet.
	// Intended to run once, on first authenticated load.
	MigrateLocalToRemote(ctx context.Context, p Principal) error
}

// backend pairs a repository with a name for diagnostics.
type backend struct {
	name string
	repo repository.StateRepository
}

// stateService implements StateService. remote may be nil when the server
// runs without a database connection; the local store alone then serves
// everyone.
type stateService struct {
	remote repository.StateRepository
	local  repository.StateRepository
}

// NewStateService creates a new stateService. local is required; remote is
// optional.
func NewStateService(remote, local repository.StateRepository) StateService {
	if local == nil {
		panic("state service requires a local store")
	}
	return &stateService{remote: remote, local: local}
}

// backendsFor returns the ranked backends for a principal: authenticated
// users prefer the remote document and fall back to the local store;
// anonymous principals only ever touch the local store.
func (s *stateService) backendsFor(p Principal) []backend {
	if p.Authenticated() && s.remote != nil {
		return []backend{
			{name: "remote", repo: s.remote},
			{name: "local", repo: s.local},
		}
	}
	return []backend{{name: "local", repo: s.local}}
}

// Load tries each backend in rank order and returns the first answer. When
// every backend fails or holds nothing, zero-progress defaults are returned;
// a load never fails from the caller's point of view.
func (s *stateService) Load(ctx context.Context, p Principal) *repository.UserState {
	for _, b := range s.backendsFor(p) {
		state, err := b.repo.Load(ctx, p.Key())
		if err == nil {
			return state
		}
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("WARN: %s state load failed for %s: %v", b.name, p.Key(), err)
		}
	}
	return repository.NewUserState()
}

// SaveHistory writes the history through every backend in the ranking.
func (s *stateService) SaveHistory(ctx context.Context, p Principal, history []domain.WorkoutSummary) {
	for _, b := range s.backendsFor(p) {
		if err := b.repo.SaveHistory(ctx, p.Key(), history); err != nil {
			log.Printf("WARN: %s history save failed for %s: %v", b.name, p.Key(), err)
		}
	}
}

// SaveGamification writes the gamification state through every backend.
func (s *stateService) SaveGamification(ctx context.Context, p Principal, state domain.GamificationState) {
	for _, b := range s.backendsFor(p) {
		if err := b.repo.SaveGamification(ctx, p.Key(), state); err != nil {
			log.Printf("WARN: %s gamification save failed for %s: %v", b.name, p.Key(), err)
		}
	}
}

// SavePreviousLogs writes the pre-fill cache through every backend.
func (s *stateService) SavePreviousLogs(ctx context.Context, p Principal, cache domain.PreviousLogsCache) {
	for _, b := range s.backendsFor(p) {
		if err := b.repo.SavePreviousLogs(ctx, p.Key(), cache); err != nil {
			log.Printf("WARN: %s previous-logs save failed for %s: %v", b.name, p.Key(), err)
		}
	}
}

// MigrateLocalToRemote copies local device state into the user's remote
// document on first login. The remote document existing, or the local store
// being empty, makes this a no-op.
func (s *stateService) MigrateLocalToRemote(ctx context.Context, p Principal) error {
	if !p.Authenticated() || s.remote == nil {
		return nil
	}

	exists, err := s.remote.Exists(ctx, p.Key())
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	local, err := s.local.Load(ctx, p.Key())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if local.Empty() {
		return nil
	}

	if err := s.remote.SaveHistory(ctx, p.Key(), local.WorkoutHistory); err != nil {
		return err
	}
	if err := s.remote.SaveGamification(ctx, p.Key(), local.Gamification); err != nil {
		return err
	}
	if err := s.remote.SavePreviousLogs(ctx, p.Key(), local.PreviousLogs); err != nil {
		return err
	}
	log.Printf("Migrated local workout state to remote document for %s", p.Key())
	return nil
}
