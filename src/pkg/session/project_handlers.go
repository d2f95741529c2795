package session

import (
	"errors"
	"fmt"
	"strings"

	"daybook/local-app/src/pkg/model"
)

// initProjectCommandHandlers initializes project command handlers
func initProjectCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":       handleProjectAdd,
		"update":    handleProjectUpdate,
		"list":      handleProjectList,
		"stage":     handleProjectStage,
		"challenge": handleProjectChallenge,
	}
}

// handleProjectAdd handles the project add command
func handleProjectAdd(sm *SessionManager, cmd model.Command) (interface{}, error) {
	positional, extras := parseExtras(cmd.Args)
	if len(positional) < 1 {
		return nil, errors.New("usage: project add <name> [purpose] [status:<planning|active|paused|completed|cancelled>] [start:<yyyy-mm-dd>] [folder:<folder-id>]")
	}

	draft := model.ProjectDraft{Name: positional[0]}
	if len(positional) > 1 {
		draft.Purpose = strings.Join(positional[1:], " ")
	}
	if v, ok := extras["status"]; ok {
		draft.Status = v
	}
	if v, ok := extras["start"]; ok {
		draft.StartDate = v
	}
	if v, ok := extras["folder"]; ok {
		draft.FolderID = v
	}

	project, err := sm.dataManager.ProjectManager.Add(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to add project: %w", err)
	}
	return fmt.Sprintf("project '%s' added (%s)", project.Name, project.ID), nil
}

// handleProjectUpdate handles the project update command. folder: accepts a
// folder id or "none" to unfile the project.
func handleProjectUpdate(sm *SessionManager, cmd model.Command) (interface{}, error) {
	positional, extras := parseExtras(cmd.Args)
	if len(positional) < 1 || len(extras) == 0 {
		return nil, errors.New("usage: project update <id> [name:<n>] [purpose:<p>] [status:<s>] [start:<date>] [end:<date>] [folder:<folder-id|none>]")
	}

	patch := model.ProjectPatch{}
	if v, ok := extras["name"]; ok {
		patch.Name = &v
	}
	if v, ok := extras["purpose"]; ok {
		patch.Purpose = &v
	}
	if v, ok := extras["status"]; ok {
		patch.Status = &v
	}
	if v, ok := extras["start"]; ok {
		patch.StartDate = &v
	}
	if v, ok := extras["end"]; ok {
		patch.EndDate = &v
	}
	if v, ok := extras["folder"]; ok {
		if v == "none" {
			v = ""
		}
		patch.FolderID = &v
	}

	if err := sm.dataManager.ProjectManager.Update(positional[0], patch); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return "project updated", nil
}

// handleProjectList handles the project list command; folder: narrows the
// listing to one folder ("none" selects unfiled projects).
func handleProjectList(sm *SessionManager, cmd model.Command) (interface{}, error) {
	_, extras := parseExtras(cmd.Args)

	var projects []model.Project
	var err error
	if v, ok := extras["folder"]; ok {
		if v == "none" {
			v = ""
		}
		projects, err = sm.dataManager.ProjectManager.ByFolder(v)
	} else {
		projects, err = sm.dataManager.ProjectManager.List()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		return "no projects", nil
	}

	folders, err := sm.dataManager.FolderManager.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load folders: %w", err)
	}
	folderNames := make(map[string]string, len(folders))
	for _, f := range folders {
		folderNames[f.ID] = f.Name
	}

	var b strings.Builder
	for _, p := range projects {
		folder := folderNames[p.FolderID]
		if folder == "" {
			folder = "-"
		}
		fmt.Fprintf(&b, "%-10s  %s  [%s]  %s\n", p.Status, p.Name, folder, p.ID)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// handleProjectStage handles the project stage command
func handleProjectStage(sm *SessionManager, cmd model.Command) (interface{}, error) {
	positional, extras := parseExtras(cmd.Args)
	if len(positional) < 2 {
		return nil, errors.New("usage: project stage <project-id> <title> [description] [status:<pending|active|completed>] [start:<yyyy-mm-dd>]")
	}

	draft := model.StageDraft{Title: positional[1]}
	if len(positional) > 2 {
		draft.Description = strings.Join(positional[2:], " ")
	}
	if v, ok := extras["status"]; ok {
		draft.Status = v
	}
	if v, ok := extras["start"]; ok {
		draft.StartDate = v
	}

	stage, err := sm.dataManager.ProjectManager.AddStage(positional[0], draft)
	if err != nil {
		return nil, fmt.Errorf("failed to add stage: %w", err)
	}
	return fmt.Sprintf("stage '%s' added (%s)", stage.Title, stage.ID), nil
}

// handleProjectChallenge handles the project challenge command
func handleProjectChallenge(sm *SessionManager, cmd model.Command) (interface{}, error) {
	positional, extras := parseExtras(cmd.Args)
	if len(positional) < 3 {
		return nil, errors.New("usage: project challenge <project-id> <stage-id> <problem> [solution:<text>] [effect:<text>] [status:<unsolved|solved>]")
	}

	draft := model.ChallengeDraft{Problem: strings.Join(positional[2:], " ")}
	if v, ok := extras["solution"]; ok {
		draft.Solution = v
	}
	if v, ok := extras["effect"]; ok {
		draft.PracticeEffect = v
	}
	if v, ok := extras["status"]; ok {
		draft.Status = v
	}

	challenge, err := sm.dataManager.ProjectManager.AddChallenge(positional[0], positional[1], draft)
	if err != nil {
		return nil, fmt.Errorf("failed to add challenge: %w", err)
	}
	return fmt.Sprintf("challenge added (%s)", challenge.ID), nil
}
