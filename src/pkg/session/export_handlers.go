package session

import (
	"errors"
	"fmt"
	"time"

	"daybook/local-app/src/pkg/export"
	"daybook/local-app/src/pkg/model"
)

// initExportCommandHandlers initializes export command handlers
func initExportCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"run":  handleExportRun,
		"path": handleExportPath,
	}
}

// handleExportRun handles the export run command
func handleExportRun(sm *SessionManager, cmd model.Command) (interface{}, error) {
	snapshot, err := sm.dataManager.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to gather data for export: %w", err)
	}

	dir, err := sm.dataManager.ExportPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve export path: %w", err)
	}

	now := time.Now()
	path, err := export.Write(dir, export.Format(snapshot, now), now)
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("exported to %s", path), nil
}

// handleExportPath handles the export path command: with no argument it shows
// the current export directory, with one it persists a new one.
func handleExportPath(sm *SessionManager, cmd model.Command) (interface{}, error) {
	switch len(cmd.Args) {
	case 0:
		dir, err := sm.dataManager.ExportPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve export path: %w", err)
		}
		return dir, nil
	case 1:
		if err := sm.dataManager.SetExportPath(cmd.Args[0]); err != nil {
			return nil, fmt.Errorf("failed to set export path: %w", err)
		}
		return fmt.Sprintf("export path set to %s", cmd.Args[0]), nil
	default:
		return nil, errors.New("usage: export path [directory]")
	}
}
