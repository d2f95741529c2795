// Package data provides data management functionality for the Daybook application.
// It coordinates operations between the account, memory, plan, project, folder
// and category managers.
package data

import (
	"fmt"

	"go.uber.org/zap"

	"daybook/local-app/src/pkg/event"
	"daybook/local-app/src/pkg/model"
	"daybook/local-app/src/pkg/storage"
)

// DataManager is the main struct that coordinates all data operations
type DataManager struct {
	AccountManager  *AccountManager
	MemoryManager   *MemoryManager
	PlanManager     *PlanManager
	ProjectManager  *ProjectManager
	FolderManager   *FolderManager
	CategoryManager *CategoryManager
	EventManager    *event.EventManager
	Config          *model.Config
	Logger          *zap.Logger

	store *storage.Store
}

// Snapshot is the in-memory view of the domain collections handed to the
// export formatter.
type Snapshot struct {
	Memories []model.Memory
	Plans    []model.DailyPlan
	Projects []model.Project
	Folders  []model.ProjectFolder
}

// NewDataManager creates a new DataManager instance and wires the cross-manager
// event cascades.
func NewDataManager(store *storage.Store, cfg *model.Config, logger *zap.Logger) (*DataManager, error) {
	eventManager := event.NewEventManager(logger)
	m := &DataManager{
		EventManager: eventManager,
		Config:       cfg,
		Logger:       logger,
		store:        store,
	}

	var err error
	m.AccountManager, err = NewAccountManager(storage.NewAccountStorage(store), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create AccountManager: %w", err)
	}

	m.MemoryManager, err = NewMemoryManager(store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create MemoryManager: %w", err)
	}

	m.PlanManager, err = NewPlanManager(store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create PlanManager: %w", err)
	}

	m.ProjectManager, err = NewProjectManager(store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ProjectManager: %w", err)
	}

	m.FolderManager, err = NewFolderManager(store, eventManager, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create FolderManager: %w", err)
	}

	m.CategoryManager, err = NewCategoryManager(store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create CategoryManager: %w", err)
	}

	// Deleting a folder unfiles its projects
	eventManager.Subscribe(event.FolderDeleted, m.ProjectManager.handleFolderDeleted)

	// Auth transitions switch the daily plan scope
	eventManager.Subscribe(event.SessionChanged, m.PlanManager.handleSessionChanged)

	return m, nil
}

// Snapshot gathers the domain collections for export.
func (m *DataManager) Snapshot() (*Snapshot, error) {
	memories, err := m.MemoryManager.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load memories: %w", err)
	}
	plans, err := m.PlanManager.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load daily plans: %w", err)
	}
	projects, err := m.ProjectManager.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	folders, err := m.FolderManager.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load folders: %w", err)
	}
	return &Snapshot{Memories: memories, Plans: plans, Projects: projects, Folders: folders}, nil
}

// ExportPath returns the persisted export directory setting, falling back to
// the configured default when unset.
func (m *DataManager) ExportPath() (string, error) {
	path, err := m.store.LoadString(storage.KeyExportPath)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = m.Config.ExportDir
	}
	return path, nil
}

// SetExportPath persists the export directory setting.
func (m *DataManager) SetExportPath(path string) error {
	return m.store.SaveString(storage.KeyExportPath, path)
}
