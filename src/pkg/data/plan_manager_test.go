package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"daybook/local-app/src/pkg/event"
	"daybook/local-app/src/pkg/model"
)

func newTestPlanManager(t *testing.T) *PlanManager {
	t.Helper()
	pm, err := NewPlanManager(newTestStore(t), zap.NewNop())
	require.NoError(t, err)
	return pm
}

func TestPlanAddStampsTasks(t *testing.T) {
	pm := newTestPlanManager(t)

	plan, err := pm.Add(model.PlanDraft{
		Date:  "2026-08-28",
		Tasks: []model.Task{{Title: "Write report"}, {Title: "Call dentist", Priority: model.PriorityHigh}},
	})
	require.NoError(t, err)

	require.Len(t, plan.Tasks, 2)
	assert.NotEmpty(t, plan.Tasks[0].ID)
	assert.Equal(t, model.PriorityMedium, plan.Tasks[0].Priority)
	assert.Equal(t, model.PriorityHigh, plan.Tasks[1].Priority)
	assert.False(t, plan.CreatedAt.IsZero())
}

func TestPlanScopeFollowsSession(t *testing.T) {
	pm := newTestPlanManager(t)

	// Anonymous writes land in the guest scope
	_, err := pm.Add(model.PlanDraft{Date: "2026-08-27"})
	require.NoError(t, err)

	pm.handleSessionChanged(event.Event{Type: event.SessionChanged, Data: "user-1"})
	_, err = pm.Add(model.PlanDraft{Date: "2026-08-28"})
	require.NoError(t, err)

	plans, err := pm.List()
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "2026-08-28", plans[0].Date)

	// Back to guest, the original plan is still there
	pm.handleSessionChanged(event.Event{Type: event.SessionChanged, Data: ""})
	plans, err = pm.List()
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "2026-08-27", plans[0].Date)
}

func TestPlanForDate(t *testing.T) {
	pm := newTestPlanManager(t)

	created, err := pm.Add(model.PlanDraft{Date: "2026-08-28"})
	require.NoError(t, err)

	plan, err := pm.ForDate("2026-08-28")
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, created.ID, plan.ID)

	plan, err = pm.ForDate("2026-08-29")
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestPlanUpdateReplacesFields(t *testing.T) {
	pm := newTestPlanManager(t)

	created, err := pm.Add(model.PlanDraft{
		Date:  "2026-08-28",
		Tasks: []model.Task{{Title: "Old task"}},
	})
	require.NoError(t, err)

	tasks := []model.Task{{Title: "New task", Completed: true}}
	reflections := "Got it all done."
	require.NoError(t, pm.Update(created.ID, model.PlanPatch{Tasks: &tasks, Reflections: &reflections}))

	plans, err := pm.List()
	require.NoError(t, err)
	require.Len(t, plans, 1)
	require.Len(t, plans[0].Tasks, 1)
	assert.Equal(t, "New task", plans[0].Tasks[0].Title)
	assert.True(t, plans[0].Tasks[0].Completed)
	assert.NotEmpty(t, plans[0].Tasks[0].ID)
	assert.Equal(t, "Got it all done.", plans[0].Reflections)
}

func TestPlanUpdateUnknownID(t *testing.T) {
	pm := newTestPlanManager(t)

	reflections := "nothing"
	err := pm.Update("missing", model.PlanPatch{Reflections: &reflections})
	assert.Error(t, err)
}
