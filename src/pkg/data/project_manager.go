package data

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"daybook/local-app/src/pkg/event"
	"daybook/local-app/src/pkg/model"
	"daybook/local-app/src/pkg/storage"
	"daybook/local-app/src/pkg/validation"
)

// ProjectManager handles projects, their stages and challenges. Projects are
// never deleted; folder membership is a weak reference cleared by the
// FolderDeleted cascade.
type ProjectManager struct {
	store  *storage.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewProjectManager creates a new ProjectManager instance.
func NewProjectManager(store *storage.Store, logger *zap.Logger) (*ProjectManager, error) {
	if store == nil {
		return nil, fmt.Errorf("store not initialized")
	}
	return &ProjectManager{store: store, logger: logger, now: time.Now}, nil
}

// Add stamps and persists a new project, newest first. Stages and challenges
// supplied with the draft are stamped on the way in.
func (pm *ProjectManager) Add(draft model.ProjectDraft) (*model.Project, error) {
	if draft.Status == "" {
		draft.Status = model.ProjectPlanning
	}
	if err := validation.ValidateStruct(draft); err != nil {
		return nil, err
	}

	projects, err := storage.LoadCollection[model.Project](pm.store, storage.KeyProjects)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	now := pm.now()
	startDate := draft.StartDate
	if startDate == "" {
		startDate = now.Format(DateLayout)
	}

	project := model.Project{
		ID:        uuid.NewString(),
		Name:      draft.Name,
		Purpose:   draft.Purpose,
		Status:    draft.Status,
		StartDate: startDate,
		Stages:    pm.stampStages(draft.Stages),
		FolderID:  draft.FolderID,
		CreatedAt: now,
	}

	projects = append([]model.Project{project}, projects...)
	if err := storage.SaveCollection(pm.store, storage.KeyProjects, projects); err != nil {
		return nil, fmt.Errorf("failed to save projects: %w", err)
	}

	pm.logger.Info("Project added", zap.String("projectID", project.ID))
	return &project, nil
}

// Update merges the patch into the project with the given id, field by field.
func (pm *ProjectManager) Update(id string, patch model.ProjectPatch) error {
	if err := validation.ValidateStruct(patch); err != nil {
		return err
	}

	projects, err := storage.LoadCollection[model.Project](pm.store, storage.KeyProjects)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		p := &projects[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Purpose != nil {
			p.Purpose = *patch.Purpose
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.StartDate != nil {
			p.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			p.EndDate = *patch.EndDate
		}
		if patch.Stages != nil {
			p.Stages = pm.stampStages(*patch.Stages)
		}
		if patch.FolderID != nil {
			p.FolderID = *patch.FolderID
		}

		if err := storage.SaveCollection(pm.store, storage.KeyProjects, projects); err != nil {
			return fmt.Errorf("failed to save projects: %w", err)
		}
		pm.logger.Info("Project updated", zap.String("projectID", id))
		return nil
	}

	return fmt.Errorf("project '%s' not found", id)
}

// List returns all projects, newest first.
func (pm *ProjectManager) List() ([]model.Project, error) {
	return storage.LoadCollection[model.Project](pm.store, storage.KeyProjects)
}

// ByFolder partitions projects by folder membership: an empty folderID selects
// the unfiled projects, otherwise the projects filed under that folder.
func (pm *ProjectManager) ByFolder(folderID string) ([]model.Project, error) {
	projects, err := pm.List()
	if err != nil {
		return nil, err
	}
	var filtered []model.Project
	for _, p := range projects {
		if p.FolderID == folderID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// AddStage appends a stamped stage to the project with the given id.
func (pm *ProjectManager) AddStage(projectID string, draft model.StageDraft) (*model.ProjectStage, error) {
	if draft.Status == "" {
		draft.Status = model.StagePending
	}
	if err := validation.ValidateStruct(draft); err != nil {
		return nil, err
	}

	stage := model.ProjectStage{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Challenges:  []model.Challenge{},
		Status:      draft.Status,
		StartDate:   draft.StartDate,
		CreatedAt:   pm.now(),
	}

	err := pm.mutateProject(projectID, func(p *model.Project) {
		p.Stages = append(p.Stages, stage)
	})
	if err != nil {
		return nil, err
	}
	pm.logger.Info("Stage added", zap.String("projectID", projectID), zap.String("stageID", stage.ID))
	return &stage, nil
}

// AddChallenge appends a stamped challenge to the given stage of a project.
func (pm *ProjectManager) AddChallenge(projectID, stageID string, draft model.ChallengeDraft) (*model.Challenge, error) {
	if draft.Status == "" {
		draft.Status = model.ChallengeUnsolved
	}
	if err := validation.ValidateStruct(draft); err != nil {
		return nil, err
	}

	challenge := model.Challenge{
		ID:             uuid.NewString(),
		Problem:        draft.Problem,
		Solution:       draft.Solution,
		PracticeEffect: draft.PracticeEffect,
		Status:         draft.Status,
		CreatedAt:      pm.now(),
	}

	found := false
	err := pm.mutateProject(projectID, func(p *model.Project) {
		for i := range p.Stages {
			if p.Stages[i].ID == stageID {
				p.Stages[i].Challenges = append(p.Stages[i].Challenges, challenge)
				found = true
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("stage '%s' not found in project '%s'", stageID, projectID)
	}
	pm.logger.Info("Challenge added", zap.String("projectID", projectID), zap.String("stageID", stageID))
	return &challenge, nil
}

// handleFolderDeleted clears the weak folder reference of every project filed
// under the removed folder. The projects themselves are untouched.
func (pm *ProjectManager) handleFolderDeleted(e event.Event) {
	folderID, _ := e.Data.(string)
	if folderID == "" {
		return
	}

	projects, err := storage.LoadCollection[model.Project](pm.store, storage.KeyProjects)
	if err != nil {
		pm.logger.Error("Failed to load projects for folder cascade", zap.Error(err))
		return
	}

	changed := false
	for i := range projects {
		if projects[i].FolderID == folderID {
			projects[i].FolderID = ""
			changed = true
		}
	}
	if !changed {
		return
	}

	if err := storage.SaveCollection(pm.store, storage.KeyProjects, projects); err != nil {
		pm.logger.Error("Failed to persist folder cascade", zap.Error(err))
		return
	}
	pm.logger.Info("Unfiled projects of deleted folder", zap.String("folderID", folderID))
}

// mutateProject loads the collection, applies fn to the matching project and
// persists the whole collection.
func (pm *ProjectManager) mutateProject(projectID string, fn func(*model.Project)) error {
	projects, err := storage.LoadCollection[model.Project](pm.store, storage.KeyProjects)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	for i := range projects {
		if projects[i].ID == projectID {
			fn(&projects[i])
			if err := storage.SaveCollection(pm.store, storage.KeyProjects, projects); err != nil {
				return fmt.Errorf("failed to save projects: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("project '%s' not found", projectID)
}

// stampStages fills in ids and creation stamps for stages and nested
// challenges that lack them.
func (pm *ProjectManager) stampStages(stages []model.ProjectStage) []model.ProjectStage {
	now := pm.now()
	for i := range stages {
		if stages[i].ID == "" {
			stages[i].ID = uuid.NewString()
		}
		if stages[i].Status == "" {
			stages[i].Status = model.StagePending
		}
		if stages[i].CreatedAt.IsZero() {
			stages[i].CreatedAt = now
		}
		if stages[i].Challenges == nil {
			stages[i].Challenges = []model.Challenge{}
		}
		for j := range stages[i].Challenges {
			if stages[i].Challenges[j].ID == "" {
				stages[i].Challenges[j].ID = uuid.NewString()
			}
			if stages[i].Challenges[j].Status == "" {
				stages[i].Challenges[j].Status = model.ChallengeUnsolved
			}
			if stages[i].Challenges[j].CreatedAt.IsZero() {
				stages[i].Challenges[j].CreatedAt = now
			}
		}
	}
	if stages == nil {
		stages = []model.ProjectStage{}
	}
	return stages
}
