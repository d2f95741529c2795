package session

import (
	"errors"
	"fmt"
	"strings"

	"daybook/local-app/src/pkg/model"
)

// initCategoryCommandHandlers initializes category command handlers
func initCategoryCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"list":   handleCategoryList,
		"add":    handleCategoryAdd,
		"addsub": handleCategoryAddSub,
		"rmsub":  handleCategoryRemoveSub,
	}
}

// handleCategoryList handles the category list command
func handleCategoryList(sm *SessionManager, cmd model.Command) (interface{}, error) {
	groups, err := sm.dataManager.CategoryManager.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(groups) == 0 {
		return "no category groups", nil
	}

	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "%s (%s): %s\n", g.Name, g.ID, strings.Join(g.Subcategories, ", "))
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// handleCategoryAdd handles the category add command
func handleCategoryAdd(sm *SessionManager, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) < 1 {
		return nil, errors.New("usage: category add <group-name>")
	}

	group, err := sm.dataManager.CategoryManager.AddGroup(strings.Join(cmd.Args, " "))
	if err != nil {
		return nil, fmt.Errorf("failed to add category group: %w", err)
	}
	return fmt.Sprintf("category group '%s' added (%s)", group.Name, group.ID), nil
}

// handleCategoryAddSub handles the category addsub command
func handleCategoryAddSub(sm *SessionManager, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) < 2 {
		return nil, errors.New("usage: category addsub <group-id> <subcategory>")
	}

	if err := sm.dataManager.CategoryManager.AddSubcategory(cmd.Args[0], strings.Join(cmd.Args[1:], " ")); err != nil {
		return nil, fmt.Errorf("failed to add subcategory: %w", err)
	}
	return "subcategory added", nil
}

// handleCategoryRemoveSub handles the category rmsub command
func handleCategoryRemoveSub(sm *SessionManager, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) < 2 {
		return nil, errors.New("usage: category rmsub <group-id> <subcategory>")
	}

	if err := sm.dataManager.CategoryManager.RemoveSubcategory(cmd.Args[0], strings.Join(cmd.Args[1:], " ")); err != nil {
		return nil, fmt.Errorf("failed to remove subcategory: %w", err)
	}
	return "subcategory removed", nil
}
