package session

import (
	"errors"
	"fmt"
	"strings"

	"daybook/local-app/src/pkg/model"
)

// initFolderCommandHandlers initializes folder command handlers
func initFolderCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":    handleFolderAdd,
		"rename": handleFolderRename,
		"delete": handleFolderDelete,
		"list":   handleFolderList,
	}
}

// handleFolderAdd handles the folder add command
func handleFolderAdd(sm *SessionManager, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) < 1 {
		return nil, errors.New("usage: folder add <name>")
	}

	folder, err := sm.dataManager.FolderManager.Add(strings.Join(cmd.Args, " "))
	if err != nil {
		return nil, fmt.Errorf("failed to add folder: %w", err)
	}
	return fmt.Sprintf("folder '%s' added (%s)", folder.Name, folder.ID), nil
}

// handleFolderRename handles the folder rename command
func handleFolderRename(sm *SessionManager, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) < 2 {
		return nil, errors.New("usage: folder rename <id> <name>")
	}

	if err := sm.dataManager.FolderManager.Rename(cmd.Args[0], strings.Join(cmd.Args[1:], " ")); err != nil {
		return nil, fmt.Errorf("failed to rename folder: %w", err)
	}
	return "folder renamed", nil
}

// handleFolderDelete handles the folder delete command. Projects filed under
// the folder are unfiled, never deleted.
func handleFolderDelete(sm *SessionManager, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) != 1 {
		return nil, errors.New("usage: folder delete <id>")
	}

	if err := sm.dataManager.FolderManager.Delete(cmd.Args[0]); err != nil {
		return nil, fmt.Errorf("failed to delete folder: %w", err)
	}
	return "folder deleted, member projects unfiled", nil
}

// handleFolderList handles the folder list command
func handleFolderList(sm *SessionManager, cmd model.Command) (interface{}, error) {
	folders, err := sm.dataManager.FolderManager.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	if len(folders) == 0 {
		return "no folders", nil
	}

	var b strings.Builder
	for _, f := range folders {
		fmt.Fprintf(&b, "%s  %s\n", f.Name, f.ID)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
