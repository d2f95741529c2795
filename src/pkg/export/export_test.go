package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daybook/local-app/src/pkg/data"
	"daybook/local-app/src/pkg/model"
)

var exportTime = time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

func sampleSnapshot() *data.Snapshot {
	return &data.Snapshot{
		Memories: []model.Memory{{
			ID: "m1", Title: "Lake trip", Content: "Swam all afternoon",
			MainCategory: "personal", SubCategory: "Hobbies",
			Date: "2026-08-20", Importance: 4,
			Tags: []string{"summer", "lake"}, Emotions: []string{"joy"},
			CreatedAt: exportTime,
		}},
		Plans: []model.DailyPlan{{
			ID: "p1", Date: "2026-08-28",
			Tasks:             []model.Task{{ID: "t1", Title: "Write report", Completed: true, Priority: model.PriorityHigh}},
			Reflections:       "Productive day.",
			TomorrowPlans:     []string{"Start the slides"},
			TomorrowReminders: []string{"Buy milk"},
			CreatedAt:         exportTime,
		}},
		Projects: []model.Project{{
			ID: "pr1", Name: "Garden shed", Purpose: "Build before autumn",
			Status: model.ProjectActive, StartDate: "2026-08-01", FolderID: "f1",
			Stages: []model.ProjectStage{{
				ID: "s1", Title: "Foundation", Status: model.StageActive,
				Challenges: []model.Challenge{{
					ID: "c1", Problem: "Sloping ground", Solution: "Retaining edge",
					Status: model.ChallengeSolved, CreatedAt: exportTime,
				}},
				CreatedAt: exportTime,
			}},
			CreatedAt: exportTime,
		}},
		Folders: []model.ProjectFolder{{ID: "f1", Name: "House projects"}},
	}
}

func TestFormatSections(t *testing.T) {
	report := Format(sampleSnapshot(), exportTime)

	assert.True(t, strings.HasPrefix(report, strings.Repeat("=", 60)+"\nDaybook - Data Export"))
	assert.Contains(t, report, "Exported: 2026-08-28 09:30:00")
	assert.Contains(t, report, "📚 Memories")
	assert.Contains(t, report, "1. Lake trip")
	assert.Contains(t, report, "   Category: personal / Hobbies")
	assert.Contains(t, report, "   Importance: ★★★★☆")
	assert.Contains(t, report, "   Tags: summer, lake")
	assert.Contains(t, report, "🗓️ Daily Plans")
	assert.Contains(t, report, "☑ Write report (high)")
	assert.Contains(t, report, "   Reflections: Productive day.")
	assert.Contains(t, report, "🚀 Projects")
	assert.Contains(t, report, "   Folder: House projects")
	assert.Contains(t, report, "   Stage: Foundation (active)")
	assert.Contains(t, report, "     • [solved] Sloping ground")
	assert.True(t, strings.HasSuffix(report, "Export complete\n"+strings.Repeat("=", 60)))
}

func TestFormatSkipsEmptySections(t *testing.T) {
	report := Format(&data.Snapshot{}, exportTime)

	assert.NotContains(t, report, "📚 Memories")
	assert.NotContains(t, report, "🗓️ Daily Plans")
	assert.NotContains(t, report, "🚀 Projects")
	assert.Contains(t, report, "Export complete")
}

func TestFormatImportanceClampsToDefault(t *testing.T) {
	snapshot := &data.Snapshot{Memories: []model.Memory{{Title: "x", Date: "2026-08-28"}}}
	report := Format(snapshot, exportTime)
	assert.Contains(t, report, "★★★☆☆")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "daybook-export-2026-08-28T09-30-00.txt", Filename(exportTime))
}

func TestWriteCreatesDirectoryAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")

	path, err := Write(dir, "report body", exportTime)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, Filename(exportTime)), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "report body", string(content))
}
