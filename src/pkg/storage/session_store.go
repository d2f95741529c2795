package storage

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"daybook/local-app/src/pkg/model"
)

// SessionStore persists the single process-wide auth state record.
type SessionStore interface {
	SessionLoad() (*model.AuthState, error)
	SessionSave(state *model.AuthState) error
}

// SessionStorage implements SessionStore on top of the entity store.
type SessionStorage struct {
	store *Store
}

// NewSessionStorage creates a new SessionStorage instance.
func NewSessionStorage(store *Store) *SessionStorage {
	return &SessionStorage{store: store}
}

// SessionLoad re-hydrates the persisted auth state. An absent or corrupt
// record yields the anonymous state rather than an error.
func (s *SessionStorage) SessionLoad() (*model.AuthState, error) {
	raw, ok, err := s.store.LoadRaw(KeyAuthState)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &model.AuthState{}, nil
	}

	var state model.AuthState
	if err := json.Unmarshal(raw, &state); err != nil {
		s.store.logger.Warn("Corrupt auth state treated as anonymous", zap.Error(err))
		return &model.AuthState{}, nil
	}
	return &state, nil
}

// SessionSave replaces the persisted auth state wholesale.
func (s *SessionStorage) SessionSave(state *model.AuthState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode auth state: %w", err)
	}
	return s.store.SaveRaw(KeyAuthState, data)
}
