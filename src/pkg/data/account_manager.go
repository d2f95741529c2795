// Package data provides data management functionality for the Daybook application.
// This file contains operations on the credential registry.
package data

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"daybook/local-app/src/pkg/model"
	"daybook/local-app/src/pkg/storage"
	"daybook/local-app/src/pkg/validation"
)

// Generic failure messages. Login deliberately does not distinguish an unknown
// identifier from a wrong password.
const (
	msgUsernameTaken   = "username already exists"
	msgEmailTaken      = "email already registered"
	msgBadCredentials  = "invalid username or password"
	msgRegisterFailed  = "registration failed, please try again"
	msgUpdateFailed    = "profile update failed, please try again"
	msgAccountMissing  = "account not found"
	msgProfileUpdated  = "profile updated"
	msgRegisterSuccess = "registration successful"
	msgLoginSuccess    = "login successful"
)

// AccountManager owns the credential registry: account creation, credential
// verification and profile updates. Password hashes never leave this type.
type AccountManager struct {
	accountStore storage.AccountStore
	logger       *zap.Logger
	now          func() time.Time
}

// NewAccountManager creates a new AccountManager instance.
func NewAccountManager(accountStore storage.AccountStore, logger *zap.Logger) (*AccountManager, error) {
	if accountStore == nil {
		return nil, fmt.Errorf("accountStore not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	return &AccountManager{
		accountStore: accountStore,
		logger:       logger,
		now:          time.Now,
	}, nil
}

// Register creates a new account. Username and email must be unique across the
// registry (case-sensitive exact match). The password is stored as a bcrypt
// hash. On success the new account is returned so the caller can establish a
// session immediately.
func (am *AccountManager) Register(input model.RegisterInput) (*model.Account, model.Result) {
	am.logger.Info("Registering account", zap.String("username", input.Username))

	if err := validation.ValidateStruct(input); err != nil {
		return nil, model.Result{Success: false, Message: err.Error()}
	}

	accounts, err := am.accountStore.AccountsLoad()
	if err != nil {
		am.logger.Error("Failed to load registry", zap.Error(err))
		return nil, model.Result{Success: false, Message: msgRegisterFailed}
	}

	for _, a := range accounts {
		if a.Username == input.Username {
			am.logger.Warn("Username already taken", zap.String("username", input.Username))
			return nil, model.Result{Success: false, Message: msgUsernameTaken}
		}
		if a.Email == input.Email {
			am.logger.Warn("Email already taken", zap.String("email", input.Email))
			return nil, model.Result{Success: false, Message: msgEmailTaken}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		am.logger.Error("Failed to hash password", zap.Error(err))
		return nil, model.Result{Success: false, Message: msgRegisterFailed}
	}

	now := am.now()
	account := model.Account{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		LastLogin:    now,
	}

	accounts = append(accounts, account)
	if err := am.accountStore.AccountsSave(accounts); err != nil {
		am.logger.Error("Failed to persist registry", zap.Error(err))
		return nil, model.Result{Success: false, Message: msgRegisterFailed}
	}

	am.logger.Info("Account registered", zap.String("accountID", account.ID))
	return &account, model.Result{Success: true, Message: msgRegisterSuccess}
}

// Authenticate verifies credentials. The identifier may be either the username
// or the email of the account. On success the account's last-login stamp is
// updated and persisted.
func (am *AccountManager) Authenticate(identifier, password string) (*model.Account, model.Result) {
	am.logger.Info("Authenticating", zap.String("identifier", identifier))

	accounts, err := am.accountStore.AccountsLoad()
	if err != nil {
		am.logger.Error("Failed to load registry", zap.Error(err))
		return nil, model.Result{Success: false, Message: msgBadCredentials}
	}

	for i := range accounts {
		a := &accounts[i]
		if a.Username != identifier && a.Email != identifier {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
			break
		}

		a.LastLogin = am.now()
		if err := am.accountStore.AccountsSave(accounts); err != nil {
			am.logger.Error("Failed to persist last login", zap.Error(err))
			return nil, model.Result{Success: false, Message: msgBadCredentials}
		}

		am.logger.Info("Authentication succeeded", zap.String("accountID", a.ID))
		account := *a
		return &account, model.Result{Success: true, Message: msgLoginSuccess}
	}

	am.logger.Warn("Authentication failed", zap.String("identifier", identifier))
	return nil, model.Result{Success: false, Message: msgBadCredentials}
}

// UpdateProfile applies the given patch to the account with the given id.
// A new username or email must not collide with a different account.
func (am *AccountManager) UpdateProfile(accountID string, patch model.ProfilePatch) (*model.Account, model.Result) {
	am.logger.Info("Updating profile", zap.String("accountID", accountID))

	if err := validation.ValidateStruct(patch); err != nil {
		return nil, model.Result{Success: false, Message: err.Error()}
	}

	accounts, err := am.accountStore.AccountsLoad()
	if err != nil {
		am.logger.Error("Failed to load registry", zap.Error(err))
		return nil, model.Result{Success: false, Message: msgUpdateFailed}
	}

	idx := -1
	for i := range accounts {
		if accounts[i].ID == accountID {
			idx = i
			break
		}
	}
	if idx < 0 {
		am.logger.Warn("Account not found", zap.String("accountID", accountID))
		return nil, model.Result{Success: false, Message: msgAccountMissing}
	}

	for i := range accounts {
		if accounts[i].ID == accountID {
			continue
		}
		if patch.Username != nil && accounts[i].Username == *patch.Username {
			return nil, model.Result{Success: false, Message: msgUsernameTaken}
		}
		if patch.Email != nil && accounts[i].Email == *patch.Email {
			return nil, model.Result{Success: false, Message: msgEmailTaken}
		}
	}

	if patch.Username != nil {
		accounts[idx].Username = *patch.Username
	}
	if patch.Email != nil {
		accounts[idx].Email = *patch.Email
	}

	if err := am.accountStore.AccountsSave(accounts); err != nil {
		am.logger.Error("Failed to persist registry", zap.Error(err))
		return nil, model.Result{Success: false, Message: msgUpdateFailed}
	}

	am.logger.Info("Profile updated", zap.String("accountID", accountID))
	account := accounts[idx]
	return &account, model.Result{Success: true, Message: msgProfileUpdated}
}
