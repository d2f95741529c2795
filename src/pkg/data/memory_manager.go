package data

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"daybook/local-app/src/pkg/model"
	"daybook/local-app/src/pkg/storage"
	"daybook/local-app/src/pkg/validation"
)

// DateLayout is the calendar-day format used by memories and daily plans.
const DateLayout = "2006-01-02"

// MemoryManager handles journal entries. Memories are kept newest-first and
// are never deleted; edits restamp LastModified only.
type MemoryManager struct {
	store  *storage.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewMemoryManager creates a new MemoryManager instance.
func NewMemoryManager(store *storage.Store, logger *zap.Logger) (*MemoryManager, error) {
	if store == nil {
		return nil, fmt.Errorf("store not initialized")
	}
	return &MemoryManager{store: store, logger: logger, now: time.Now}, nil
}

// Add stamps and persists a new memory. The entry is prepended so the
// collection stays newest-first.
func (mm *MemoryManager) Add(draft model.MemoryDraft) (*model.Memory, error) {
	if draft.Importance == 0 {
		draft.Importance = 3
	}
	if err := validation.ValidateStruct(draft); err != nil {
		return nil, err
	}

	memories, err := storage.LoadCollection[model.Memory](mm.store, storage.KeyMemories)
	if err != nil {
		return nil, fmt.Errorf("failed to load memories: %w", err)
	}

	now := mm.now()
	memory := model.Memory{
		ID:           uuid.NewString(),
		Title:        draft.Title,
		Content:      draft.Content,
		MainCategory: draft.MainCategory,
		SubCategory:  draft.SubCategory,
		Date:         draft.Date,
		Importance:   draft.Importance,
		Tags:         draft.Tags,
		Emotions:     draft.Emotions,
		CreatedAt:    now,
		LastModified: now,
	}

	memories = append([]model.Memory{memory}, memories...)
	if err := storage.SaveCollection(mm.store, storage.KeyMemories, memories); err != nil {
		return nil, fmt.Errorf("failed to save memories: %w", err)
	}

	mm.logger.Info("Memory added", zap.String("memoryID", memory.ID))
	return &memory, nil
}

// Update merges the patch into the memory with the given id, field by field,
// and restamps LastModified.
func (mm *MemoryManager) Update(id string, patch model.MemoryPatch) error {
	memories, err := storage.LoadCollection[model.Memory](mm.store, storage.KeyMemories)
	if err != nil {
		return fmt.Errorf("failed to load memories: %w", err)
	}

	for i := range memories {
		if memories[i].ID != id {
			continue
		}
		m := &memories[i]
		if patch.Title != nil {
			m.Title = *patch.Title
		}
		if patch.Content != nil {
			m.Content = *patch.Content
		}
		if patch.MainCategory != nil {
			m.MainCategory = *patch.MainCategory
		}
		if patch.SubCategory != nil {
			m.SubCategory = *patch.SubCategory
		}
		if patch.Date != nil {
			m.Date = *patch.Date
		}
		if patch.Importance != nil {
			m.Importance = *patch.Importance
		}
		if patch.Tags != nil {
			m.Tags = *patch.Tags
		}
		if patch.Emotions != nil {
			m.Emotions = *patch.Emotions
		}
		m.LastModified = mm.now()

		if err := storage.SaveCollection(mm.store, storage.KeyMemories, memories); err != nil {
			return fmt.Errorf("failed to save memories: %w", err)
		}
		mm.logger.Info("Memory updated", zap.String("memoryID", id))
		return nil
	}

	return fmt.Errorf("memory '%s' not found", id)
}

// List returns all memories, newest first.
func (mm *MemoryManager) List() ([]model.Memory, error) {
	return storage.LoadCollection[model.Memory](mm.store, storage.KeyMemories)
}

// Search returns memories whose title, content or tags contain the term.
// An empty mainCategory matches every category.
func (mm *MemoryManager) Search(term, mainCategory string) ([]model.Memory, error) {
	memories, err := mm.List()
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(term)
	var matches []model.Memory
	for _, m := range memories {
		if mainCategory != "" && m.MainCategory != mainCategory {
			continue
		}
		if term != "" && !memoryMatches(m, term) {
			continue
		}
		matches = append(matches, m)
	}
	return matches, nil
}

func memoryMatches(m model.Memory, term string) bool {
	if strings.Contains(strings.ToLower(m.Title), term) ||
		strings.Contains(strings.ToLower(m.Content), term) {
		return true
	}
	for _, tag := range m.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// EditableToday reports whether the memory may still be edited under the
// same-calendar-day policy. Advisory only: Update does not enforce it.
func (mm *MemoryManager) EditableToday(m model.Memory) bool {
	return m.Date == mm.now().Format(DateLayout)
}
