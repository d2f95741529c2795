// Package session holds the single process-wide authentication state and the
// command routing layer the CLI drives. The session is a two-state machine:
// Anonymous and Authenticated. It is re-hydrated from the entity store at
// start and persisted wholesale on every transition.
package session

import (
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"daybook/local-app/src/pkg/data"
	"daybook/local-app/src/pkg/event"
	"daybook/local-app/src/pkg/model"
	"daybook/local-app/src/pkg/storage"
)

const (
	tokenIssuer    = "daybook"
	signingKeyFile = "session.key"
	signingKeyLen  = 32
)

const msgNotLoggedIn = "not logged in"

// CommandHandler is a function type for command handlers
type CommandHandler func(*SessionManager, model.Command) (interface{}, error)

// SessionManager owns the current auth state and routes CLI commands to the
// data managers.
type SessionManager struct {
	dataManager  *data.DataManager
	sessionStore storage.SessionStore
	eventManager *event.EventManager
	logger       *zap.Logger

	state           *model.AuthState
	signingKey      []byte
	tokenTTL        time.Duration
	commandHandlers map[string]map[string]CommandHandler
}

// NewSessionManager hydrates the persisted session and prepares command
// routing. A corrupt or absent session record yields the anonymous state.
func NewSessionManager(dataManager *data.DataManager, sessionStore storage.SessionStore, cfg *model.Config, logger *zap.Logger) (*SessionManager, error) {
	if dataManager == nil {
		return nil, fmt.Errorf("dataManager not initialized")
	}
	if sessionStore == nil {
		return nil, fmt.Errorf("sessionStore not initialized")
	}

	key, err := loadSigningKey(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load signing key: %w", err)
	}

	state, err := sessionStore.SessionLoad()
	if err != nil {
		return nil, fmt.Errorf("failed to hydrate session: %w", err)
	}
	if state.User == nil {
		// Never trust a record that claims authentication without a user.
		state = &model.AuthState{}
	}

	sm := &SessionManager{
		dataManager:  dataManager,
		sessionStore: sessionStore,
		eventManager: dataManager.EventManager,
		logger:       logger,
		state:        state,
		signingKey:   key,
		tokenTTL:     time.Duration(cfg.TokenTTLMinutes) * time.Minute,
	}
	sm.initCommandHandlers()

	// Propagate the hydrated identity so per-account scopes line up.
	sm.publishSessionChanged()

	logger.Info("Session hydrated", zap.Bool("authenticated", state.IsAuthenticated))
	return sm, nil
}

// Current returns a copy of the auth state.
func (sm *SessionManager) Current() model.AuthState {
	state := *sm.state
	if sm.state.User != nil {
		user := *sm.state.User
		state.User = &user
	}
	return state
}

// IsAuthenticated reports whether a user is logged in.
func (sm *SessionManager) IsAuthenticated() bool {
	return sm.state.IsAuthenticated && sm.state.User != nil
}

// Register creates an account and establishes a session for it (auto-login).
func (sm *SessionManager) Register(input model.RegisterInput) model.Result {
	account, result := sm.dataManager.AccountManager.Register(input)
	if !result.Success {
		return result
	}
	if err := sm.establish(account); err != nil {
		sm.logger.Error("Failed to establish session after register", zap.Error(err))
		return model.Result{Success: false, Message: "registration failed, please try again"}
	}
	return result
}

// Login authenticates by username or email and establishes a session.
func (sm *SessionManager) Login(identifier, password string) model.Result {
	account, result := sm.dataManager.AccountManager.Authenticate(identifier, password)
	if !result.Success {
		return result
	}
	if err := sm.establish(account); err != nil {
		sm.logger.Error("Failed to establish session after login", zap.Error(err))
		return model.Result{Success: false, Message: "login failed, please try again"}
	}
	return result
}

// Logout clears the session wholesale. The credential registry is untouched.
func (sm *SessionManager) Logout() error {
	sm.state = &model.AuthState{}
	if err := sm.sessionStore.SessionSave(sm.state); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	sm.publishSessionChanged()
	sm.logger.Info("Logged out")
	return nil
}

// UpdateProfile applies the patch to the logged-in account and refreshes the
// session's user projection in place.
func (sm *SessionManager) UpdateProfile(patch model.ProfilePatch) model.Result {
	if !sm.IsAuthenticated() {
		return model.Result{Success: false, Message: msgNotLoggedIn}
	}

	account, result := sm.dataManager.AccountManager.UpdateProfile(sm.state.User.ID, patch)
	if !result.Success {
		return result
	}

	sm.state.User = account.Projection()
	if err := sm.sessionStore.SessionSave(sm.state); err != nil {
		sm.logger.Error("Failed to persist session after profile update", zap.Error(err))
		return model.Result{Success: false, Message: "profile update failed, please try again"}
	}
	return result
}

// establish replaces the session with an authenticated state for the account,
// with a freshly issued token, and persists it.
func (sm *SessionManager) establish(account *model.Account) error {
	token, err := sm.issueToken(account.ID)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	sm.state = &model.AuthState{
		IsAuthenticated: true,
		User:            account.Projection(),
		Token:           token,
	}
	if err := sm.sessionStore.SessionSave(sm.state); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	sm.publishSessionChanged()
	sm.logger.Info("Session established", zap.String("accountID", account.ID))
	return nil
}

// issueToken signs a fresh HS256 token for the account. The token is a
// presence marker only; nothing in the application validates it on use.
func (sm *SessionManager) issueToken(accountID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sm.tokenTTL)),
		ID:        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(sm.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (sm *SessionManager) publishSessionChanged() {
	userID := ""
	if sm.IsAuthenticated() {
		userID = sm.state.User.ID
	}
	sm.eventManager.Publish(event.Event{Type: event.SessionChanged, Data: userID})
}

// loadSigningKey reads the per-install token signing key, generating and
// persisting a random one on first run.
func loadSigningKey(dataDir string) ([]byte, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	keyPath := filepath.Join(dataDir, signingKeyFile)
	if key, err := os.ReadFile(keyPath); err == nil && len(key) == signingKeyLen {
		return key, nil
	}

	key := make([]byte, signingKeyLen)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}
	if err := os.WriteFile(keyPath, key, 0600); err != nil {
		return nil, fmt.Errorf("failed to persist signing key: %w", err)
	}
	return key, nil
}
