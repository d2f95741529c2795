package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"daybook/local-app/src/pkg/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := &model.Config{DataDir: t.TempDir(), DatabaseFile: "test.db"}
	store, err := NewStore(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestCollectionRoundTrip(t *testing.T) {
	store := newTestStore(t)

	folders := []model.ProjectFolder{
		{ID: "a", Name: "House"},
		{ID: "b", Name: "Work"},
	}
	require.NoError(t, SaveCollection(store, KeyFolders, folders))

	loaded, err := LoadCollection[model.ProjectFolder](store, KeyFolders)
	require.NoError(t, err)
	assert.Equal(t, folders, loaded)
}

func TestCollectionAbsentKeyIsEmpty(t *testing.T) {
	store := newTestStore(t)

	loaded, err := LoadCollection[model.Memory](store, KeyMemories)
	require.NoError(t, err)
	assert.Empty(t, loaded)
	assert.NotNil(t, loaded)
}

func TestCollectionReplacesWholesale(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, SaveCollection(store, KeyFolders, []model.ProjectFolder{{ID: "a", Name: "First"}}))
	require.NoError(t, SaveCollection(store, KeyFolders, []model.ProjectFolder{{ID: "b", Name: "Second"}}))

	loaded, err := LoadCollection[model.ProjectFolder](store, KeyFolders)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "b", loaded[0].ID)
}

func TestCorruptCollectionTreatedAsEmpty(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveRaw(KeyMemories, []byte("{not json")))

	loaded, err := LoadCollection[model.Memory](store, KeyMemories)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestScalarStringRoundTrip(t *testing.T) {
	store := newTestStore(t)

	value, err := store.LoadString(KeyExportPath)
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, store.SaveString(KeyExportPath, "/tmp/exports"))
	value, err = store.LoadString(KeyExportPath)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/exports", value)
}

func TestPlanKeyScoping(t *testing.T) {
	assert.Equal(t, "dailyPlans_guest", PlanKey(""))
	assert.Equal(t, "dailyPlans_abc", PlanKey("abc"))
}

func TestLoadRawReportsPresence(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.LoadRaw(KeyCategories)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SaveRaw(KeyCategories, []byte("[]")))
	raw, ok, err := store.LoadRaw(KeyCategories)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(raw))
}
