package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vfp/workout-tracker/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserState is everything persisted per owner: the append-only workout
// history, the gamification progress, and the previous-logs pre-fill cache.
// An owner is either an authenticated user (hex ObjectID) or an anonymous
// device.
type UserState struct {
	WorkoutHistory []domain.WorkoutSummary  `bson:"workoutHistory" json:"workoutHistory"`
	Gamification   domain.GamificationState `bson:"gamification" json:"gamification"`
	PreviousLogs   domain.PreviousLogsCache `bson:"previousLogs" json:"previousLogs"`
}

// NewUserState returns the zero-progress default used when nothing is stored
// yet or every backend failed to load.
func NewUserState() *UserState {
	return &UserState{
		WorkoutHistory: []domain.WorkoutSummary{},
		Gamification:   domain.GamificationState{Badges: []string{}},
		PreviousLogs:   domain.PreviousLogsCache{},
	}
}

// Empty reports whether the state carries nothing worth migrating.
func (s *UserState) Empty() bool {
	return len(s.WorkoutHistory) == 0 && s.Gamification.XP == 0
}

// StateRepository is the persistence contract consumed by the core. Each
// Save method overwrites only its own top-level field (merge semantics); a
// later write to one field never clobbers the others.
type StateRepository interface {
	Load(ctx context.Context, ownerID string) (*UserState, error)
	SaveHistory(ctx context.Context, ownerID string, history []domain.WorkoutSummary) error
	SaveGamification(ctx context.Context, ownerID string, state domain.GamificationState) error
	SavePreviousLogs(ctx context.Context, ownerID string, cache domain.PreviousLogsCache) error
	// Exists reports whether a document for this owner is already present,
	// without applying defaults. Used by the one-time local-to-remote
	// migration.
	Exists(ctx context.Context, ownerID string) (bool, error)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}
