package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"daybook/local-app/src/pkg/model"
	"daybook/local-app/src/pkg/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	cfg := &model.Config{DataDir: t.TempDir(), DatabaseFile: "test.db"}
	store, err := storage.NewStore(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newTestAccountManager(t *testing.T) *AccountManager {
	t.Helper()
	am, err := NewAccountManager(storage.NewAccountStorage(newTestStore(t)), zap.NewNop())
	require.NoError(t, err)
	return am
}

func registerTestAccount(t *testing.T, am *AccountManager) *model.Account {
	t.Helper()
	account, result := am.Register(model.RegisterInput{
		Username: "sam",
		Email:    "sam@example.com",
		Password: "hunter42",
	})
	require.True(t, result.Success, result.Message)
	require.NotNil(t, account)
	return account
}

func TestRegisterHashesPassword(t *testing.T) {
	am := newTestAccountManager(t)
	account := registerTestAccount(t, am)

	assert.NotEmpty(t, account.ID)
	assert.NotEqual(t, "hunter42", account.PasswordHash)
	assert.False(t, account.CreatedAt.IsZero())
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	am := newTestAccountManager(t)
	registerTestAccount(t, am)

	account, result := am.Register(model.RegisterInput{
		Username: "sam",
		Email:    "other@example.com",
		Password: "hunter42",
	})
	assert.Nil(t, account)
	assert.False(t, result.Success)
	assert.Equal(t, "username already exists", result.Message)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	am := newTestAccountManager(t)
	registerTestAccount(t, am)

	account, result := am.Register(model.RegisterInput{
		Username: "other",
		Email:    "sam@example.com",
		Password: "hunter42",
	})
	assert.Nil(t, account)
	assert.False(t, result.Success)
	assert.Equal(t, "email already registered", result.Message)
}

func TestRegisterValidatesInput(t *testing.T) {
	am := newTestAccountManager(t)

	_, result := am.Register(model.RegisterInput{Username: "sam", Email: "not-an-email", Password: "hunter42"})
	assert.False(t, result.Success)

	_, result = am.Register(model.RegisterInput{Username: "sam", Email: "sam@example.com", Password: "short"})
	assert.False(t, result.Success)
}

func TestAuthenticateByUsernameAndEmail(t *testing.T) {
	am := newTestAccountManager(t)
	created := registerTestAccount(t, am)

	byName, result := am.Authenticate("sam", "hunter42")
	require.True(t, result.Success, result.Message)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, result := am.Authenticate("sam@example.com", "hunter42")
	require.True(t, result.Success, result.Message)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestAuthenticateFailureIsGeneric(t *testing.T) {
	am := newTestAccountManager(t)
	registerTestAccount(t, am)

	_, wrongPassword := am.Authenticate("sam", "wrong")
	_, unknownUser := am.Authenticate("nobody", "hunter42")

	assert.False(t, wrongPassword.Success)
	assert.False(t, unknownUser.Success)
	assert.Equal(t, wrongPassword.Message, unknownUser.Message)
}

func TestAuthenticateStampsLastLogin(t *testing.T) {
	am := newTestAccountManager(t)
	created := registerTestAccount(t, am)

	later := created.LastLogin.Add(time.Hour)
	am.now = func() time.Time { return later }

	account, result := am.Authenticate("sam", "hunter42")
	require.True(t, result.Success)
	assert.Equal(t, later, account.LastLogin)
}

func TestUpdateProfileMergesFields(t *testing.T) {
	am := newTestAccountManager(t)
	created := registerTestAccount(t, am)

	newName := "sammy"
	account, result := am.UpdateProfile(created.ID, model.ProfilePatch{Username: &newName})
	require.True(t, result.Success, result.Message)
	assert.Equal(t, "sammy", account.Username)
	assert.Equal(t, "sam@example.com", account.Email)

	// Login still works under the new name
	_, result = am.Authenticate("sammy", "hunter42")
	assert.True(t, result.Success)
}

func TestUpdateProfileRejectsCollision(t *testing.T) {
	am := newTestAccountManager(t)
	registerTestAccount(t, am)
	other, result := am.Register(model.RegisterInput{
		Username: "alex",
		Email:    "alex@example.com",
		Password: "hunter42",
	})
	require.True(t, result.Success)

	taken := "sam"
	_, result = am.UpdateProfile(other.ID, model.ProfilePatch{Username: &taken})
	assert.False(t, result.Success)
	assert.Equal(t, "username already exists", result.Message)
}

func TestUpdateProfileUnknownAccount(t *testing.T) {
	am := newTestAccountManager(t)

	name := "ghost"
	_, result := am.UpdateProfile("missing", model.ProfilePatch{Username: &name})
	assert.False(t, result.Success)
	assert.Equal(t, "account not found", result.Message)
}
