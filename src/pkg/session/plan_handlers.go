package session

import (
	"errors"
	"fmt"
	"strings"

	"daybook/local-app/src/pkg/model"
)

// initPlanCommandHandlers initializes plan command handlers
func initPlanCommandHandlers() map[string]CommandHandler {
	return map[string]CommandHandler{
		"add":    handlePlanAdd,
		"update": handlePlanUpdate,
		"check":  handlePlanCheck,
		"list":   handlePlanList,
		"today":  handlePlanToday,
	}
}

// handlePlanAdd handles the plan add command
func handlePlanAdd(sm *SessionManager, cmd model.Command) (interface{}, error) {
	_, extras := parseExtras(cmd.Args)

	draft := model.PlanDraft{Date: sm.today()}
	if v, ok := extras["date"]; ok {
		draft.Date = v
	}
	if v, ok := extras["tasks"]; ok {
		for _, title := range splitList(v) {
			draft.Tasks = append(draft.Tasks, model.Task{Title: title})
		}
	}
	if v, ok := extras["reflections"]; ok {
		draft.Reflections = v
	}
	if v, ok := extras["tomorrow"]; ok {
		draft.TomorrowPlans = splitList(v)
	}
	if v, ok := extras["reminders"]; ok {
		draft.TomorrowReminders = splitList(v)
	}

	existing, err := sm.dataManager.PlanManager.ForDate(draft.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check daily plans: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("a plan for %s already exists (%s)", draft.Date, existing.ID)
	}

	plan, err := sm.dataManager.PlanManager.Add(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to add daily plan: %w", err)
	}
	return fmt.Sprintf("plan for %s added (%s)", plan.Date, plan.ID), nil
}

// handlePlanUpdate handles the plan update command
func handlePlanUpdate(sm *SessionManager, cmd model.Command) (interface{}, error) {
	positional, extras := parseExtras(cmd.Args)
	if len(positional) < 1 || len(extras) == 0 {
		return nil, errors.New("usage: plan update <id> [tasks:<a,b>] [reflections:<text>] [tomorrow:<text>] [reminders:<a,b>]")
	}

	patch := model.PlanPatch{}
	if v, ok := extras["tasks"]; ok {
		var tasks []model.Task
		for _, title := range splitList(v) {
			tasks = append(tasks, model.Task{Title: title})
		}
		patch.Tasks = &tasks
	}
	if v, ok := extras["reflections"]; ok {
		patch.Reflections = &v
	}
	if v, ok := extras["tomorrow"]; ok {
		tomorrow := splitList(v)
		patch.TomorrowPlans = &tomorrow
	}
	if v, ok := extras["reminders"]; ok {
		reminders := splitList(v)
		patch.TomorrowReminders = &reminders
	}

	if err := sm.dataManager.PlanManager.Update(positional[0], patch); err != nil {
		return nil, fmt.Errorf("failed to update daily plan: %w", err)
	}
	return "plan updated", nil
}

// handlePlanCheck handles the plan check command, toggling a task's completion.
func handlePlanCheck(sm *SessionManager, cmd model.Command) (interface{}, error) {
	if len(cmd.Args) != 2 {
		return nil, errors.New("usage: plan check <plan-id> <task-id>")
	}
	planID, taskID := cmd.Args[0], cmd.Args[1]

	plans, err := sm.dataManager.PlanManager.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load daily plans: %w", err)
	}

	for i := range plans {
		if plans[i].ID != planID {
			continue
		}
		tasks := plans[i].Tasks
		for j := range tasks {
			if tasks[j].ID != taskID {
				continue
			}
			tasks[j].Completed = !tasks[j].Completed
			if err := sm.dataManager.PlanManager.Update(planID, model.PlanPatch{Tasks: &tasks}); err != nil {
				return nil, fmt.Errorf("failed to update daily plan: %w", err)
			}
			if tasks[j].Completed {
				return fmt.Sprintf("task '%s' completed", tasks[j].Title), nil
			}
			return fmt.Sprintf("task '%s' reopened", tasks[j].Title), nil
		}
		return nil, fmt.Errorf("task '%s' not found in plan '%s'", taskID, planID)
	}
	return nil, fmt.Errorf("daily plan '%s' not found", planID)
}

// handlePlanList handles the plan list command
func handlePlanList(sm *SessionManager, cmd model.Command) (interface{}, error) {
	plans, err := sm.dataManager.PlanManager.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list daily plans: %w", err)
	}
	if len(plans) == 0 {
		return "no daily plans yet", nil
	}

	var b strings.Builder
	for _, p := range plans {
		done := 0
		for _, t := range p.Tasks {
			if t.Completed {
				done++
			}
		}
		fmt.Fprintf(&b, "%s  %d/%d tasks  %s\n", p.Date, done, len(p.Tasks), p.ID)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// handlePlanToday handles the plan today command
func handlePlanToday(sm *SessionManager, cmd model.Command) (interface{}, error) {
	plan, err := sm.dataManager.PlanManager.ForDate(sm.today())
	if err != nil {
		return nil, fmt.Errorf("failed to load daily plans: %w", err)
	}
	if plan == nil {
		return "no plan for today", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "plan for %s (%s)\n", plan.Date, plan.ID)
	for _, t := range plan.Tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "  [%s] %s (%s)  %s\n", mark, t.Title, t.Priority, t.ID)
	}
	if plan.Reflections != "" {
		fmt.Fprintf(&b, "  reflections: %s\n", plan.Reflections)
	}
	for _, tp := range plan.TomorrowPlans {
		fmt.Fprintf(&b, "  tomorrow: %s\n", tp)
	}
	for _, r := range plan.TomorrowReminders {
		fmt.Fprintf(&b, "  reminder: %s\n", r)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
