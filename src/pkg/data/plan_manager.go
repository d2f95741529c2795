package data

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"daybook/local-app/src/pkg/event"
	"daybook/local-app/src/pkg/model"
	"daybook/local-app/src/pkg/storage"
	"daybook/local-app/src/pkg/validation"
)

// PlanManager handles daily plans. Unlike the other entity families, plans
// are scoped per account: the collection key embeds the current account id
// (or "guest" when anonymous), tracked via SessionChanged events.
type PlanManager struct {
	store  *storage.Store
	logger *zap.Logger
	now    func() time.Time

	mu     sync.RWMutex
	userID string
}

// NewPlanManager creates a new PlanManager instance.
func NewPlanManager(store *storage.Store, logger *zap.Logger) (*PlanManager, error) {
	if store == nil {
		return nil, fmt.Errorf("store not initialized")
	}
	return &PlanManager{store: store, logger: logger, now: time.Now}, nil
}

// handleSessionChanged switches the plan scope to the account carried by the event.
func (pm *PlanManager) handleSessionChanged(e event.Event) {
	userID, _ := e.Data.(string)
	pm.mu.Lock()
	pm.userID = userID
	pm.mu.Unlock()
	pm.logger.Debug("Plan scope changed", zap.String("planKey", storage.PlanKey(userID)))
}

func (pm *PlanManager) key() string {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return storage.PlanKey(pm.userID)
}

// Add stamps and persists a new daily plan for the current scope, newest first.
// Tasks without an id are stamped on the way in.
func (pm *PlanManager) Add(draft model.PlanDraft) (*model.DailyPlan, error) {
	if err := validation.ValidateStruct(draft); err != nil {
		return nil, err
	}

	key := pm.key()
	plans, err := storage.LoadCollection[model.DailyPlan](pm.store, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily plans: %w", err)
	}

	plan := model.DailyPlan{
		ID:                uuid.NewString(),
		Date:              draft.Date,
		Tasks:             stampTasks(draft.Tasks),
		Reflections:       draft.Reflections,
		TomorrowPlans:     draft.TomorrowPlans,
		TomorrowReminders: draft.TomorrowReminders,
		CreatedAt:         pm.now(),
	}

	plans = append([]model.DailyPlan{plan}, plans...)
	if err := storage.SaveCollection(pm.store, key, plans); err != nil {
		return nil, fmt.Errorf("failed to save daily plans: %w", err)
	}

	pm.logger.Info("Daily plan added", zap.String("planID", plan.ID), zap.String("date", plan.Date))
	return &plan, nil
}

// Update merges the patch into the plan with the given id, field by field.
// Plans carry no modification stamp.
func (pm *PlanManager) Update(id string, patch model.PlanPatch) error {
	key := pm.key()
	plans, err := storage.LoadCollection[model.DailyPlan](pm.store, key)
	if err != nil {
		return fmt.Errorf("failed to load daily plans: %w", err)
	}

	for i := range plans {
		if plans[i].ID != id {
			continue
		}
		p := &plans[i]
		if patch.Tasks != nil {
			p.Tasks = stampTasks(*patch.Tasks)
		}
		if patch.Reflections != nil {
			p.Reflections = *patch.Reflections
		}
		if patch.TomorrowPlans != nil {
			p.TomorrowPlans = *patch.TomorrowPlans
		}
		if patch.TomorrowReminders != nil {
			p.TomorrowReminders = *patch.TomorrowReminders
		}

		if err := storage.SaveCollection(pm.store, key, plans); err != nil {
			return fmt.Errorf("failed to save daily plans: %w", err)
		}
		pm.logger.Info("Daily plan updated", zap.String("planID", id))
		return nil
	}

	return fmt.Errorf("daily plan '%s' not found", id)
}

// List returns the current scope's plans, newest first.
func (pm *PlanManager) List() ([]model.DailyPlan, error) {
	return storage.LoadCollection[model.DailyPlan](pm.store, pm.key())
}

// ForDate returns the plan for the given calendar day, or nil if none exists.
// Date uniqueness is a convention, not a constraint; the newest match wins.
func (pm *PlanManager) ForDate(date string) (*model.DailyPlan, error) {
	plans, err := pm.List()
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].Date == date {
			return &plans[i], nil
		}
	}
	return nil, nil
}

// stampTasks fills in ids and default priorities for tasks that lack them.
func stampTasks(tasks []model.Task) []model.Task {
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.NewString()
		}
		if tasks[i].Priority == "" {
			tasks[i].Priority = model.PriorityMedium
		}
	}
	return tasks
}
