package data

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"daybook/local-app/src/pkg/model"
	"daybook/local-app/src/pkg/storage"
)

// defaultCategoryGroups is the taxonomy seeded at first run.
var defaultCategoryGroups = []model.CategoryGroup{
	{ID: "personal", Name: "Personal", Subcategories: []string{"Growth", "Health", "Learning", "Hobbies"}},
	{ID: "social", Name: "People & Relationships", Subcategories: []string{"Family", "Friends", "Colleagues", "Social events"}},
	{ID: "world", Name: "Exploring the World", Subcategories: []string{"Work projects", "Tech research", "Travel", "Observations"}},
}

// CategoryManager handles the user-editable category taxonomy.
type CategoryManager struct {
	store  *storage.Store
	logger *zap.Logger
}

// NewCategoryManager creates a new CategoryManager and seeds the default
// taxonomy if the collection has never been written.
func NewCategoryManager(store *storage.Store, logger *zap.Logger) (*CategoryManager, error) {
	if store == nil {
		return nil, fmt.Errorf("store not initialized")
	}
	cm := &CategoryManager{store: store, logger: logger}

	// Seed only on a truly absent key; an empty collection is a user choice.
	_, ok, err := store.LoadRaw(storage.KeyCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to check category taxonomy: %w", err)
	}
	if !ok {
		if err := storage.SaveCollection(store, storage.KeyCategories, defaultCategoryGroups); err != nil {
			return nil, fmt.Errorf("failed to seed category taxonomy: %w", err)
		}
		logger.Info("Seeded default category taxonomy")
	}

	return cm, nil
}

// List returns all category groups.
func (cm *CategoryManager) List() ([]model.CategoryGroup, error) {
	return storage.LoadCollection[model.CategoryGroup](cm.store, storage.KeyCategories)
}

// Replace overwrites the whole taxonomy. The settings surface edits groups
// wholesale rather than per-field.
func (cm *CategoryManager) Replace(groups []model.CategoryGroup) error {
	for i := range groups {
		if groups[i].ID == "" {
			groups[i].ID = uuid.NewString()
		}
	}
	if err := storage.SaveCollection(cm.store, storage.KeyCategories, groups); err != nil {
		return fmt.Errorf("failed to save category taxonomy: %w", err)
	}
	cm.logger.Info("Category taxonomy replaced", zap.Int("groups", len(groups)))
	return nil
}

// AddGroup appends a new empty category group.
func (cm *CategoryManager) AddGroup(name string) (*model.CategoryGroup, error) {
	if name == "" {
		return nil, fmt.Errorf("group name is required")
	}
	groups, err := cm.List()
	if err != nil {
		return nil, err
	}
	group := model.CategoryGroup{ID: uuid.NewString(), Name: name, Subcategories: []string{}}
	groups = append(groups, group)
	if err := cm.Replace(groups); err != nil {
		return nil, err
	}
	return &group, nil
}

// AddSubcategory appends a subcategory to the named group.
func (cm *CategoryManager) AddSubcategory(groupID, sub string) error {
	if sub == "" {
		return fmt.Errorf("subcategory name is required")
	}
	groups, err := cm.List()
	if err != nil {
		return err
	}
	for i := range groups {
		if groups[i].ID != groupID {
			continue
		}
		for _, existing := range groups[i].Subcategories {
			if existing == sub {
				return fmt.Errorf("subcategory '%s' already exists", sub)
			}
		}
		groups[i].Subcategories = append(groups[i].Subcategories, sub)
		return cm.Replace(groups)
	}
	return fmt.Errorf("category group '%s' not found", groupID)
}

// RemoveSubcategory removes a subcategory from the named group.
func (cm *CategoryManager) RemoveSubcategory(groupID, sub string) error {
	groups, err := cm.List()
	if err != nil {
		return err
	}
	for i := range groups {
		if groups[i].ID != groupID {
			continue
		}
		for j, existing := range groups[i].Subcategories {
			if existing == sub {
				groups[i].Subcategories = append(groups[i].Subcategories[:j], groups[i].Subcategories[j+1:]...)
				return cm.Replace(groups)
			}
		}
		return fmt.Errorf("subcategory '%s' not found", sub)
	}
	return fmt.Errorf("category group '%s' not found", groupID)
}
