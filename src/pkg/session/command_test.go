package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybook/local-app/src/pkg/model"
)

func TestParseExtras(t *testing.T) {
	positional, extras := parseExtras([]string{"My title", "some content", "tags:a,b", "importance:4"})

	assert.Equal(t, []string{"My title", "some content"}, positional)
	assert.Equal(t, map[string]string{"tags": "a,b", "importance": "4"}, extras)
}

func TestParseExtrasLabelCaseInsensitive(t *testing.T) {
	_, extras := parseExtras([]string{"Tags:x"})
	assert.Equal(t, "x", extras["tags"])
}

func TestParseExtrasValueMayContainColon(t *testing.T) {
	_, extras := parseExtras([]string{"tomorrow:pack at 08:30"})
	assert.Equal(t, "pack at 08:30", extras["tomorrow"])
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList("a, b"))
	assert.Equal(t, []string{"a"}, splitList("a,,"))
	assert.Empty(t, splitList(""))
}

func TestMemoryAddCommand(t *testing.T) {
	env := newTestEnv(t)
	register(t, env.sm)

	_, err := env.sm.CommandRun(model.Command{
		Scope:     "memory",
		Operation: "add",
		Args:      []string{"Lake trip", "Swam all afternoon", "category:personal/Hobbies", "importance:4", "tags:summer,lake"},
	})
	require.NoError(t, err)

	memories, err := env.dm.MemoryManager.List()
	require.NoError(t, err)
	require.Len(t, memories, 1)
	assert.Equal(t, "Lake trip", memories[0].Title)
	assert.Equal(t, "Swam all afternoon", memories[0].Content)
	assert.Equal(t, "personal", memories[0].MainCategory)
	assert.Equal(t, "Hobbies", memories[0].SubCategory)
	assert.Equal(t, 4, memories[0].Importance)
	assert.Equal(t, []string{"summer", "lake"}, memories[0].Tags)
}

func TestMemoryEditCommandRejectsOldEntries(t *testing.T) {
	env := newTestEnv(t)
	register(t, env.sm)

	created, err := env.dm.MemoryManager.Add(model.MemoryDraft{Title: "Old entry", Date: "2001-01-01"})
	require.NoError(t, err)

	_, err = env.sm.CommandRun(model.Command{
		Scope:     "memory",
		Operation: "edit",
		Args:      []string{created.ID, "title:Changed"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day they were written")
}

func TestPlanAddCommandRejectsSecondPlanForDay(t *testing.T) {
	env := newTestEnv(t)
	register(t, env.sm)

	_, err := env.sm.CommandRun(model.Command{
		Scope:     "plan",
		Operation: "add",
		Args:      []string{"tasks:Write report,Call dentist"},
	})
	require.NoError(t, err)

	_, err = env.sm.CommandRun(model.Command{Scope: "plan", Operation: "add"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestPlanCheckCommandTogglesTask(t *testing.T) {
	env := newTestEnv(t)
	register(t, env.sm)

	plan, err := env.dm.PlanManager.Add(model.PlanDraft{
		Date:  "2026-08-28",
		Tasks: []model.Task{{Title: "Write report"}},
	})
	require.NoError(t, err)
	taskID := plan.Tasks[0].ID

	_, err = env.sm.CommandRun(model.Command{
		Scope:     "plan",
		Operation: "check",
		Args:      []string{plan.ID, taskID},
	})
	require.NoError(t, err)

	plans, err := env.dm.PlanManager.List()
	require.NoError(t, err)
	assert.True(t, plans[0].Tasks[0].Completed)
}

func TestProjectUpdateCommandUnfilesWithNone(t *testing.T) {
	env := newTestEnv(t)
	register(t, env.sm)

	folder, err := env.dm.FolderManager.Add("House")
	require.NoError(t, err)
	project, err := env.dm.ProjectManager.Add(model.ProjectDraft{Name: "Shed", FolderID: folder.ID})
	require.NoError(t, err)

	_, err = env.sm.CommandRun(model.Command{
		Scope:     "project",
		Operation: "update",
		Args:      []string{project.ID, "folder:none"},
	})
	require.NoError(t, err)

	projects, err := env.dm.ProjectManager.List()
	require.NoError(t, err)
	assert.Empty(t, projects[0].FolderID)
}

func TestExportPathCommand(t *testing.T) {
	env := newTestEnv(t)
	register(t, env.sm)

	// default comes from config
	result, err := env.sm.CommandRun(model.Command{Scope: "export", Operation: "path"})
	require.NoError(t, err)
	assert.Equal(t, env.cfg.ExportDir, result)

	newDir := t.TempDir()
	_, err = env.sm.CommandRun(model.Command{Scope: "export", Operation: "path", Args: []string{newDir}})
	require.NoError(t, err)

	result, err = env.sm.CommandRun(model.Command{Scope: "export", Operation: "path"})
	require.NoError(t, err)
	assert.Equal(t, newDir, result)
}
