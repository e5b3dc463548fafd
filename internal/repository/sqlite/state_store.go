// Package sqlite implements the local device store: the fallback backend
// used when no user is authenticated, and the write-through copy for
// authenticated users. State is stored as JSON blobs in a key-value table,
// one key per top-level state field.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"vfp/workout-tracker/internal/domain"
	"vfp/workout-tracker/internal/repository"
)

// The store is per-device, like browser localStorage: one row per field,
// regardless of which owner is asking. Keys kept for compatibility with the
// original client's storage.
const (
	keyWorkoutHistory = "vfp-workout-history"
	keyGamification   = "vfp-gamification"
	keyPreviousLogs   = "vfp-previous-logs"
)

// Store implements repository.StateRepository over a local sqlite file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the local store at path. Use ":memory:"
// for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open local store: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS app_state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init local store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads all three state fields, tolerating missing keys.
func (s *Store) Load(ctx context.Context, ownerID string) (*repository.UserState, error) {
	state := repository.NewUserState()

	found, err := s.get(ctx, keyWorkoutHistory, &state.WorkoutHistory)
	if err != nil {
		return nil, err
	}
	any := found

	found, err = s.get(ctx, keyGamification, &state.Gamification)
	if err != nil {
		return nil, err
	}
	any = any || found
	if state.Gamification.Badges == nil {
		state.Gamification.Badges = []string{}
	}

	found, err = s.get(ctx, keyPreviousLogs, &state.PreviousLogs)
	if err != nil {
		return nil, err
	}
	any = any || found

	if !any {
		return nil, repository.ErrNotFound
	}
	return state, nil
}

// SaveHistory overwrites only the history key.
func (s *Store) SaveHistory(ctx context.Context, ownerID string, history []domain.WorkoutSummary) error {
	return s.set(ctx, keyWorkoutHistory, history)
}

// SaveGamification overwrites only the gamification key.
func (s *Store) SaveGamification(ctx context.Context, ownerID string, state domain.GamificationState) error {
	return s.set(ctx, keyGamification, state)
}

// SavePreviousLogs overwrites only the previous-logs key.
func (s *Store) SavePreviousLogs(ctx context.Context, ownerID string, cache domain.PreviousLogsCache) error {
	return s.set(ctx, keyPreviousLogs, cache)
}

// Exists reports whether any state has ever been stored on this device.
func (s *Store) Exists(ctx context.Context, ownerID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM app_state").Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM app_state WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO app_state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(raw))
	return err
}
