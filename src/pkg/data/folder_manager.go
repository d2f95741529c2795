package data

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"daybook/local-app/src/pkg/event"
	"daybook/local-app/src/pkg/model"
	"daybook/local-app/src/pkg/storage"
)

// FolderManager handles project folders. Folders are the only entity family
// with a delete operation; deletion unfiles member projects via the
// FolderDeleted event rather than touching the project collection directly.
type FolderManager struct {
	store        *storage.Store
	eventManager *event.EventManager
	logger       *zap.Logger
}

// NewFolderManager creates a new FolderManager instance.
func NewFolderManager(store *storage.Store, eventManager *event.EventManager, logger *zap.Logger) (*FolderManager, error) {
	if store == nil {
		return nil, fmt.Errorf("store not initialized")
	}
	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	return &FolderManager{store: store, eventManager: eventManager, logger: logger}, nil
}

// Add creates a new folder. Folders are appended, not prepended: the sidebar
// shows them in creation order.
func (fm *FolderManager) Add(name string) (*model.ProjectFolder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("folder name is required")
	}

	folders, err := storage.LoadCollection[model.ProjectFolder](fm.store, storage.KeyFolders)
	if err != nil {
		return nil, fmt.Errorf("failed to load folders: %w", err)
	}

	folder := model.ProjectFolder{ID: uuid.NewString(), Name: name}
	folders = append(folders, folder)
	if err := storage.SaveCollection(fm.store, storage.KeyFolders, folders); err != nil {
		return nil, fmt.Errorf("failed to save folders: %w", err)
	}

	fm.logger.Info("Folder added", zap.String("folderID", folder.ID))
	return &folder, nil
}

// Rename changes a folder's name.
func (fm *FolderManager) Rename(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("folder name is required")
	}

	folders, err := storage.LoadCollection[model.ProjectFolder](fm.store, storage.KeyFolders)
	if err != nil {
		return fmt.Errorf("failed to load folders: %w", err)
	}

	for i := range folders {
		if folders[i].ID == id {
			folders[i].Name = name
			if err := storage.SaveCollection(fm.store, storage.KeyFolders, folders); err != nil {
				return fmt.Errorf("failed to save folders: %w", err)
			}
			fm.logger.Info("Folder renamed", zap.String("folderID", id))
			return nil
		}
	}
	return fmt.Errorf("folder '%s' not found", id)
}

// Delete removes the folder and publishes FolderDeleted so member projects
// are unfiled. Projects are never deleted by this cascade.
func (fm *FolderManager) Delete(id string) error {
	folders, err := storage.LoadCollection[model.ProjectFolder](fm.store, storage.KeyFolders)
	if err != nil {
		return fmt.Errorf("failed to load folders: %w", err)
	}

	idx := -1
	for i := range folders {
		if folders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("folder '%s' not found", id)
	}

	folders = append(folders[:idx], folders[idx+1:]...)
	if err := storage.SaveCollection(fm.store, storage.KeyFolders, folders); err != nil {
		return fmt.Errorf("failed to save folders: %w", err)
	}

	fm.eventManager.Publish(event.Event{Type: event.FolderDeleted, Data: id})
	fm.logger.Info("Folder deleted", zap.String("folderID", id))
	return nil
}

// List returns all folders in creation order.
func (fm *FolderManager) List() ([]model.ProjectFolder, error) {
	return storage.LoadCollection[model.ProjectFolder](fm.store, storage.KeyFolders)
}
