package mongo

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vfp/workout-tracker/internal/domain"
	"vfp/workout-tracker/internal/repository"
)

const stateCollectionName = "user_state"

// stateDocument is the per-owner document shape. The owner key (user hex ID
// or device key) is the document _id, so every owner has exactly one doc.
type stateDocument struct {
	ID             string                    `bson:"_id"`
	WorkoutHistory []domain.WorkoutSummary   `bson:"workoutHistory,omitempty"`
	Gamification   *domain.GamificationState `bson:"gamification,omitempty"`
	PreviousLogs   domain.PreviousLogsCache  `bson:"previousLogs,omitempty"`
	UpdatedAt      time.Time                 `bson:"updatedAt"`
}

// mongoStateRepository implements repository.StateRepository on a single
// document per owner, with field-level merge writes.
type mongoStateRepository struct {
	collection *mongo.Collection
}

// NewMongoStateRepository creates a new state repository.
func NewMongoStateRepository(db *mongo.Database) repository.StateRepository {
	return &mongoStateRepository{
		collection: db.Collection(stateCollectionName),
	}
}

// Load retrieves the full state for an owner. A missing document returns
// repository.ErrNotFound; missing fields inside an existing document fall
// back to zero-progress defaults.
func (r *mongoStateRepository) Load(ctx context.Context, ownerID string) (*repository.UserState, error) {
	var doc stateDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": ownerID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	state := repository.NewUserState()
	if doc.WorkoutHistory != nil {
		state.WorkoutHistory = doc.WorkoutHistory
	}
	if doc.Gamification != nil {
		state.Gamification = *doc.Gamification
		if state.Gamification.Badges == nil {
			state.Gamification.Badges = []string{}
		}
	}
	if doc.PreviousLogs != nil {
		state.PreviousLogs = doc.PreviousLogs
	}
	return state, nil
}

// SaveHistory overwrites only the workoutHistory field, creating the
// document if needed.
func (r *mongoStateRepository) SaveHistory(ctx context.Context, ownerID string, history []domain.WorkoutSummary) error {
	return r.setField(ctx, ownerID, "workoutHistory", history)
}

// SaveGamification overwrites only the gamification field.
func (r *mongoStateRepository) SaveGamification(ctx context.Context, ownerID string, state domain.GamificationState) error {
	return r.setField(ctx, ownerID, "gamification", state)
}

// SavePreviousLogs overwrites only the previousLogs field.
func (r *mongoStateRepository) SavePreviousLogs(ctx context.Context, ownerID string, cache domain.PreviousLogsCache) error {
	return r.setField(ctx, ownerID, "previousLogs", cache)
}

// setField is the merge-write primitive: $set of a single top-level field
// with upsert, so concurrent writers to different fields never clobber each
// other. Same-field writes are last-write-wins; no cross-device merge.
func (r *mongoStateRepository) setField(ctx context.Context, ownerID, field string, value interface{}) error {
	filter := bson.M{"_id": ownerID}
	update := bson.M{
		"$set": bson.M{
			field:       value,
			"updatedAt": time.Now().UTC(),
		},
	}
	opts := options.Update().SetUpsert(true)

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 && result.UpsertedCount == 0 {
		return repository.ErrUpdateFailed
	}
	return nil
}

// Exists reports whether the owner already has a state document.
func (r *mongoStateRepository) Exists(ctx context.Context, ownerID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": ownerID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureStateIndexes creates necessary indexes. Call during startup.
func EnsureStateIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "updatedAt", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
