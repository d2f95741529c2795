package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"daybook/local-app/src/pkg/data"
	"daybook/local-app/src/pkg/model"
	"daybook/local-app/src/pkg/storage"
)

type testEnv struct {
	cfg   *model.Config
	store *storage.Store
	dm    *data.DataManager
	sm    *SessionManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := &model.Config{
		DataDir:         t.TempDir(),
		DatabaseFile:    "test.db",
		ExportDir:       t.TempDir(),
		TokenTTLMinutes: 60,
	}
	logger := zap.NewNop()

	store, err := storage.NewStore(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	dm, err := data.NewDataManager(store, cfg, logger)
	require.NoError(t, err)

	sm, err := NewSessionManager(dm, storage.NewSessionStorage(store), cfg, logger)
	require.NoError(t, err)

	return &testEnv{cfg: cfg, store: store, dm: dm, sm: sm}
}

// reopen builds a fresh session manager over the same store, simulating an
// application restart.
func (env *testEnv) reopen(t *testing.T) *SessionManager {
	t.Helper()
	sm, err := NewSessionManager(env.dm, storage.NewSessionStorage(env.store), env.cfg, zap.NewNop())
	require.NoError(t, err)
	return sm
}

func register(t *testing.T, sm *SessionManager) model.Result {
	t.Helper()
	result := sm.Register(model.RegisterInput{
		Username: "sam",
		Email:    "sam@example.com",
		Password: "hunter42",
	})
	require.True(t, result.Success, result.Message)
	return result
}

func TestSessionStartsAnonymous(t *testing.T) {
	env := newTestEnv(t)

	assert.False(t, env.sm.IsAuthenticated())
	state := env.sm.Current()
	assert.Nil(t, state.User)
	assert.Empty(t, state.Token)
}

func TestRegisterEstablishesSession(t *testing.T) {
	env := newTestEnv(t)
	register(t, env.sm)

	require.True(t, env.sm.IsAuthenticated())
	state := env.sm.Current()
	require.NotNil(t, state.User)
	assert.Equal(t, "sam", state.User.Username)
	assert.Equal(t, "sam@example.com", state.User.Email)
	assert.NotEmpty(t, state.Token)
}

func TestLoginByEmailSameAccount(t *testing.T) {
	env := newTestEnv(t)
	register(t, env.sm)
	registered := env.sm.Current().User.ID

	require.NoError(t, env.sm.Logout())
	assert.False(t, env.sm.IsAuthenticated())

	result := env.sm.Login("sam@example.com", "hunter42")
	require.True(t, result.Success, result.Message)
	assert.Equal(t, registered, env.sm.Current().User.ID)
}

func TestLoginFailureLeavesSessionAnonymous(t *testing.T) {
	env := newTestEnv(t)
	register(t, env.sm)
	require.NoError(t, env.sm.Logout())

	result := env.sm.Login("sam", "wrong")
	assert.False(t, result.Success)
	assert.False(t, env.sm.IsAuthenticated())
}

func TestSessionSurvivesRestart(t *testing.T) {
	env := newTestEnv(t)
	register(t, env.sm)
	token := env.sm.Current().Token

	reopened := env.reopen(t)
	require.True(t, reopened.IsAuthenticated())
	assert.Equal(t, "sam", reopened.Current().User.Username)
	assert.Equal(t, token, reopened.Current().Token)
}

func TestCorruptSessionRecordYieldsAnonymous(t *testing.T) {
	env := newTestEnv(t)
	register(t, env.sm)

	require.NoError(t, env.store.SaveRaw(storage.KeyAuthState, []byte("{broken")))
	reopened := env.reopen(t)
	assert.False(t, reopened.IsAuthenticated())
}

func TestAuthenticatedFlagWithoutUserIsIgnored(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.store.SaveRaw(storage.KeyAuthState, []byte(`{"isAuthenticated":true,"user":null,"token":"x"}`)))
	reopened := env.reopen(t)
	assert.False(t, reopened.IsAuthenticated())
}

func TestUpdateProfileRefreshesSession(t *testing.T) {
	env := newTestEnv(t)
	register(t, env.sm)

	name := "sammy"
	result := env.sm.UpdateProfile(model.ProfilePatch{Username: &name})
	require.True(t, result.Success, result.Message)
	assert.Equal(t, "sammy", env.sm.Current().User.Username)

	// The change is persisted in both the registry and the session record
	reopened := env.reopen(t)
	assert.Equal(t, "sammy", reopened.Current().User.Username)
	_, loginResult := env.dm.AccountManager.Authenticate("sammy", "hunter42")
	assert.True(t, loginResult.Success)
}

func TestUpdateProfileRequiresLogin(t *testing.T) {
	env := newTestEnv(t)

	name := "sammy"
	result := env.sm.UpdateProfile(model.ProfilePatch{Username: &name})
	assert.False(t, result.Success)
	assert.Equal(t, msgNotLoggedIn, result.Message)
}

func TestSessionChangedSwitchesPlanScope(t *testing.T) {
	env := newTestEnv(t)

	// Guest plan before any login
	_, err := env.dm.PlanManager.Add(model.PlanDraft{Date: "2026-08-27"})
	require.NoError(t, err)

	register(t, env.sm)
	plans, err := env.dm.PlanManager.List()
	require.NoError(t, err)
	assert.Empty(t, plans, "fresh account sees no guest plans")

	_, err = env.dm.PlanManager.Add(model.PlanDraft{Date: "2026-08-28"})
	require.NoError(t, err)

	require.NoError(t, env.sm.Logout())
	plans, err = env.dm.PlanManager.List()
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "2026-08-27", plans[0].Date)
}

func TestCommandRunGatesOnLogin(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sm.CommandRun(model.Command{Scope: "memory", Operation: "list"})
	assert.ErrorIs(t, err, ErrLoginRequired)

	// auth scope is reachable while anonymous
	_, err = env.sm.CommandRun(model.Command{Scope: "auth", Operation: "whoami"})
	assert.NoError(t, err)

	register(t, env.sm)
	_, err = env.sm.CommandRun(model.Command{Scope: "memory", Operation: "list"})
	assert.NoError(t, err)
}

func TestCommandRunRejectsUnknownScopeAndOperation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sm.CommandRun(model.Command{Scope: "bogus", Operation: "list"})
	assert.Error(t, err)

	_, err = env.sm.CommandRun(model.Command{Scope: "auth", Operation: "bogus"})
	assert.Error(t, err)
}
