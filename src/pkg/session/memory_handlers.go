package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"daybook/local-app/src/pkg/model"
)

// initMemoryCommandHandlers initializes memory command handlers
func initMemoryCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":    handleMemoryAdd,
		"edit":   handleMemoryEdit,
		"list":   handleMemoryList,
		"search": handleMemorySearch,
	}
}

// handleMemoryAdd handles the memory add command
func handleMemoryAdd(sm *SessionManager, cmd model.Command) (interface{}, error) {
	positional, extras := parseExtras(cmd.Args)
	if len(positional) < 1 {
		return nil, errors.New("usage: memory add <title> [content] [date:<yyyy-mm-dd>] [category:<main/sub>] [importance:<1-5>] [tags:<a,b>] [emotions:<a,b>]")
	}

	draft := model.MemoryDraft{
		Title: positional[0],
		Date:  sm.today(),
	}
	if len(positional) > 1 {
		draft.Content = strings.Join(positional[1:], " ")
	}
	if v, ok := extras["date"]; ok {
		draft.Date = v
	}
	if v, ok := extras["category"]; ok {
		main, sub, _ := strings.Cut(v, "/")
		draft.MainCategory = main
		draft.SubCategory = sub
	}
	if v, ok := extras["importance"]; ok {
		importance, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid importance '%s'", v)
		}
		draft.Importance = importance
	}
	if v, ok := extras["tags"]; ok {
		draft.Tags = splitList(v)
	}
	if v, ok := extras["emotions"]; ok {
		draft.Emotions = splitList(v)
	}

	memory, err := sm.dataManager.MemoryManager.Add(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to add memory: %w", err)
	}
	return fmt.Sprintf("memory '%s' added (%s)", memory.Title, memory.ID), nil
}

// handleMemoryEdit handles the memory edit command. The same-day edit policy
// is enforced here at the UI boundary; the manager itself does not enforce it.
func handleMemoryEdit(sm *SessionManager, cmd model.Command) (interface{}, error) {
	positional, extras := parseExtras(cmd.Args)
	if len(positional) < 1 {
		return nil, errors.New("usage: memory edit <id> [title:<t>] [content:<c>] [category:<main/sub>] [importance:<1-5>] [tags:<a,b>] [emotions:<a,b>]")
	}
	id := positional[0]

	memories, err := sm.dataManager.MemoryManager.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load memories: %w", err)
	}
	var target *model.Memory
	for i := range memories {
		if memories[i].ID == id {
			target = &memories[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("memory '%s' not found", id)
	}
	if !sm.dataManager.MemoryManager.EditableToday(*target) {
		return nil, errors.New("memories can only be edited on the day they were written")
	}

	patch := model.MemoryPatch{}
	if v, ok := extras["title"]; ok {
		patch.Title = &v
	}
	if v, ok := extras["content"]; ok {
		patch.Content = &v
	}
	if v, ok := extras["category"]; ok {
		main, sub, _ := strings.Cut(v, "/")
		patch.MainCategory = &main
		patch.SubCategory = &sub
	}
	if v, ok := extras["importance"]; ok {
		importance, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid importance '%s'", v)
		}
		patch.Importance = &importance
	}
	if v, ok := extras["tags"]; ok {
		tags := splitList(v)
		patch.Tags = &tags
	}
	if v, ok := extras["emotions"]; ok {
		emotions := splitList(v)
		patch.Emotions = &emotions
	}

	if err := sm.dataManager.MemoryManager.Update(id, patch); err != nil {
		return nil, fmt.Errorf("failed to edit memory: %w", err)
	}
	return "memory updated", nil
}

// handleMemoryList handles the memory list command
func handleMemoryList(sm *SessionManager, cmd model.Command) (interface{}, error) {
	memories, err := sm.dataManager.MemoryManager.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}
	if len(memories) == 0 {
		return "no memories yet", nil
	}

	var b strings.Builder
	for _, m := range memories {
		fmt.Fprintf(&b, "%s  %s  [%s/%s]  %s\n", m.Date, m.Title, m.MainCategory, m.SubCategory, m.ID)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// handleMemorySearch handles the memory search command
func handleMemorySearch(sm *SessionManager, cmd model.Command) (interface{}, error) {
	positional, extras := parseExtras(cmd.Args)
	if len(positional) < 1 && len(extras) == 0 {
		return nil, errors.New("usage: memory search <term> [category:<main>]")
	}

	term := strings.Join(positional, " ")
	matches, err := sm.dataManager.MemoryManager.Search(term, extras["category"])
	if err != nil {
		return nil, fmt.Errorf("failed to search memories: %w", err)
	}
	if len(matches) == 0 {
		return "no matches", nil
	}

	var b strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&b, "%s  %s  %s\n", m.Date, m.Title, m.ID)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
