package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"daybook/local-app/src/pkg/model"
)

// Persisted collection keys. Daily plans are scoped per account and use
// PlanKey instead of a fixed constant.
const (
	KeyAuthState    = "auth_state"
	KeyAccounts     = "registered_users"
	KeyMemories     = "memories"
	KeyProjects     = "projects"
	KeyFolders      = "projectFolders"
	KeyCategories   = "categoryGroups"
	KeyExportPath   = "exportPath"
	planKeyPrefix   = "dailyPlans_"
	GuestPlanUserID = "guest"
)

// PlanKey returns the per-account daily plan collection key. An empty user id
// falls back to the guest scope.
func PlanKey(userID string) string {
	if userID == "" {
		userID = GuestPlanUserID
	}
	return planKeyPrefix + userID
}

// Store is the entity store: a named-collection persistence layer over the
// SQLite key-value table. Each Save replaces the whole collection under its key.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewStore opens the backing database and returns the entity store.
func NewStore(cfg *model.Config, logger *zap.Logger) (*Store, error) {
	db, err := openDatabase(filepath.Join(cfg.DataDir, cfg.DatabaseFile), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the backing database.
func (s *Store) Close() error {
	s.logger.Info("Closing entity store")
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// LoadRaw returns the raw JSON value under key. The second return value
// reports whether the key was present.
func (s *Store) LoadRaw(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM collections WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load collection '%s': %w", key, err)
	}
	return []byte(value), true, nil
}

// SaveRaw replaces the value under key with the given JSON document.
func (s *Store) SaveRaw(key string, value []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO collections (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to save collection '%s': %w", key, err)
	}
	return nil
}

// Delete removes the value under key. Used only by tests and maintenance paths;
// domain collections are replaced, never removed.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM collections WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete collection '%s': %w", key, err)
	}
	return nil
}

// LoadCollection loads the collection stored under key. An absent key or an
// undecodable value yields an empty collection; decode failures are logged
// and swallowed, never surfaced to callers.
func LoadCollection[T any](s *Store, key string) ([]T, error) {
	raw, ok, err := s.LoadRaw(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("Undecodable collection treated as empty",
			zap.String("key", key), zap.Error(err))
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveCollection serializes items and replaces the collection under key.
func SaveCollection[T any](s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection '%s': %w", key, err)
	}
	return s.SaveRaw(key, data)
}

// LoadString loads a scalar string value (e.g. the export path setting).
// Absent or undecodable values yield the empty string.
func (s *Store) LoadString(key string) (string, error) {
	raw, ok, err := s.LoadRaw(key)
	if err != nil || !ok {
		return "", err
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Warn("Undecodable scalar treated as empty", zap.String("key", key), zap.Error(err))
		return "", nil
	}
	return value, nil
}

// SaveString stores a scalar string value under key.
func (s *Store) SaveString(key, value string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode scalar '%s': %w", key, err)
	}
	return s.SaveRaw(key, data)
}
