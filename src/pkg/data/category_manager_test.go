package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"daybook/local-app/src/pkg/model"
	"daybook/local-app/src/pkg/storage"
)

func TestCategorySeedOnFirstRun(t *testing.T) {
	store := newTestStore(t)

	cm, err := NewCategoryManager(store, zap.NewNop())
	require.NoError(t, err)

	groups, err := cm.List()
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "personal", groups[0].ID)
	assert.Contains(t, groups[0].Subcategories, "Growth")
}

func TestCategoryEmptyCollectionNotReseeded(t *testing.T) {
	store := newTestStore(t)

	cm, err := NewCategoryManager(store, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, cm.Replace([]model.CategoryGroup{}))

	// A fresh manager over the same store must respect the emptied taxonomy
	cm2, err := NewCategoryManager(store, zap.NewNop())
	require.NoError(t, err)
	groups, err := cm2.List()
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestCategoryCorruptCollectionNotReseeded(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveRaw(storage.KeyCategories, []byte("{broken")))

	cm, err := NewCategoryManager(store, zap.NewNop())
	require.NoError(t, err)
	groups, err := cm.List()
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestCategoryAddGroupAndSubcategories(t *testing.T) {
	store := newTestStore(t)
	cm, err := NewCategoryManager(store, zap.NewNop())
	require.NoError(t, err)

	group, err := cm.AddGroup("Creative work")
	require.NoError(t, err)
	assert.NotEmpty(t, group.ID)

	require.NoError(t, cm.AddSubcategory(group.ID, "Writing"))
	assert.Error(t, cm.AddSubcategory(group.ID, "Writing"), "duplicate subcategory")
	assert.Error(t, cm.AddSubcategory("missing", "x"))

	groups, err := cm.List()
	require.NoError(t, err)
	require.Len(t, groups, 4)
	assert.Equal(t, []string{"Writing"}, groups[3].Subcategories)

	require.NoError(t, cm.RemoveSubcategory(group.ID, "Writing"))
	assert.Error(t, cm.RemoveSubcategory(group.ID, "Writing"))
}
