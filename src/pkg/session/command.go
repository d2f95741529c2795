package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"daybook/local-app/src/pkg/data"
	"daybook/local-app/src/pkg/model"
)

// ErrLoginRequired is returned when a command needs an authenticated session.
var ErrLoginRequired = errors.New("login required")

// initCommandHandlers initializes the command handlers map
func (sm *SessionManager) initCommandHandlers() {
	sm.commandHandlers = map[string]map[string]CommandHandler{
		"auth":     initAuthCommandHandlers(),
		"memory":   initMemoryCommandHandlers(),
		"plan":     initPlanCommandHandlers(),
		"project":  initProjectCommandHandlers(),
		"folder":   initFolderCommandHandlers(),
		"category": initCategoryCommandHandlers(),
		"export":   initExportCommandHandlers(),
	}
}

// CommandRun executes a command against the current session. Every scope
// except auth requires an authenticated session.
func (sm *SessionManager) CommandRun(cmd model.Command) (interface{}, error) {
	sm.logger.Info("Running command",
		zap.String("scope", cmd.Scope),
		zap.String("operation", cmd.Operation))

	scopeHandlers, ok := sm.commandHandlers[cmd.Scope]
	if !ok {
		return nil, fmt.Errorf("invalid command scope '%s'", cmd.Scope)
	}

	handler, ok := scopeHandlers[cmd.Operation]
	if !ok {
		return nil, fmt.Errorf("invalid operation '%s' for scope '%s'", cmd.Operation, cmd.Scope)
	}

	if cmd.Scope != "auth" && !sm.IsAuthenticated() {
		return nil, ErrLoginRequired
	}

	result, err := handler(sm, cmd)
	if err != nil {
		sm.logger.Error("Command failed",
			zap.String("scope", cmd.Scope),
			zap.String("operation", cmd.Operation),
			zap.Error(err))
	}
	return result, err
}

// parseExtras splits trailing "label:value" arguments into a map and returns
// the leading positional arguments separately.
func parseExtras(args []string) ([]string, map[string]string) {
	var positional []string
	extras := make(map[string]string)
	for _, arg := range args {
		if label, value, ok := strings.Cut(arg, ":"); ok && label != "" {
			extras[strings.ToLower(label)] = value
			continue
		}
		positional = append(positional, arg)
	}
	return positional, extras
}

// today returns the current calendar day in the collection date format.
func (sm *SessionManager) today() string {
	return time.Now().Format(data.DateLayout)
}

// splitList splits a comma-separated extra value into its items.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}
