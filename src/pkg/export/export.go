// Package export renders the domain collections into a plain-text report and
// writes it into the configured export directory.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"daybook/local-app/src/pkg/data"
)

const (
	headerRule  = 60
	sectionRule = 40
	stampLayout = "2006-01-02 15:04:05"
)

// Format renders the snapshot as the full-text export report.
func Format(snapshot *data.Snapshot, now time.Time) string {
	var lines []string

	lines = append(lines,
		strings.Repeat("=", headerRule),
		"Daybook - Data Export",
		fmt.Sprintf("Exported: %s", now.Format(stampLayout)),
		strings.Repeat("=", headerRule),
		"")

	if len(snapshot.Memories) > 0 {
		lines = append(lines, "📚 Memories", strings.Repeat("-", sectionRule))
		for i, m := range snapshot.Memories {
			lines = append(lines,
				fmt.Sprintf("%d. %s", i+1, m.Title),
				fmt.Sprintf("   Date: %s", m.Date),
				fmt.Sprintf("   Category: %s / %s", m.MainCategory, m.SubCategory),
				fmt.Sprintf("   Importance: %s", stars(m.Importance)))
			if len(m.Tags) > 0 {
				lines = append(lines, fmt.Sprintf("   Tags: %s", strings.Join(m.Tags, ", ")))
			}
			if len(m.Emotions) > 0 {
				lines = append(lines, fmt.Sprintf("   Emotions: %s", strings.Join(m.Emotions, ", ")))
			}
			lines = append(lines,
				fmt.Sprintf("   Content: %s", m.Content),
				fmt.Sprintf("   Created: %s", m.CreatedAt.Format(stampLayout)),
				"")
		}
		lines = append(lines, "")
	}

	if len(snapshot.Plans) > 0 {
		lines = append(lines, "🗓️ Daily Plans", strings.Repeat("-", sectionRule))
		for i, p := range snapshot.Plans {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, p.Date))
			if len(p.Tasks) > 0 {
				lines = append(lines, "   Tasks:")
				for _, t := range p.Tasks {
					mark := "☐"
					if t.Completed {
						mark = "☑"
					}
					lines = append(lines, fmt.Sprintf("     %s %s (%s)", mark, t.Title, t.Priority))
				}
			}
			if p.Reflections != "" {
				lines = append(lines, fmt.Sprintf("   Reflections: %s", p.Reflections))
			}
			if len(p.TomorrowPlans) > 0 {
				lines = append(lines, fmt.Sprintf("   Tomorrow: %s", strings.Join(p.TomorrowPlans, "; ")))
			}
			if len(p.TomorrowReminders) > 0 {
				lines = append(lines, "   Reminders:")
				for _, r := range p.TomorrowReminders {
					lines = append(lines, fmt.Sprintf("     • %s", r))
				}
			}
			lines = append(lines,
				fmt.Sprintf("   Created: %s", p.CreatedAt.Format(stampLayout)),
				"")
		}
		lines = append(lines, "")
	}

	if len(snapshot.Projects) > 0 {
		folderNames := make(map[string]string, len(snapshot.Folders))
		for _, f := range snapshot.Folders {
			folderNames[f.ID] = f.Name
		}

		lines = append(lines, "🚀 Projects", strings.Repeat("-", sectionRule))
		for i, p := range snapshot.Projects {
			lines = append(lines,
				fmt.Sprintf("%d. %s", i+1, p.Name),
				fmt.Sprintf("   Status: %s", p.Status),
				fmt.Sprintf("   Started: %s", p.StartDate))
			if p.EndDate != "" {
				lines = append(lines, fmt.Sprintf("   Ended: %s", p.EndDate))
			}
			if name, ok := folderNames[p.FolderID]; ok && p.FolderID != "" {
				lines = append(lines, fmt.Sprintf("   Folder: %s", name))
			}
			if p.Purpose != "" {
				lines = append(lines, fmt.Sprintf("   Purpose: %s", p.Purpose))
			}
			for _, s := range p.Stages {
				lines = append(lines, fmt.Sprintf("   Stage: %s (%s)", s.Title, s.Status))
				if s.Description != "" {
					lines = append(lines, fmt.Sprintf("     %s", s.Description))
				}
				for _, c := range s.Challenges {
					lines = append(lines, fmt.Sprintf("     • [%s] %s", c.Status, c.Problem))
					if c.Solution != "" {
						lines = append(lines, fmt.Sprintf("       Solution: %s", c.Solution))
					}
					if c.PracticeEffect != "" {
						lines = append(lines, fmt.Sprintf("       Effect: %s", c.PracticeEffect))
					}
				}
			}
			lines = append(lines,
				fmt.Sprintf("   Created: %s", p.CreatedAt.Format(stampLayout)),
				"")
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		strings.Repeat("=", headerRule),
		"Export complete",
		strings.Repeat("=", headerRule))

	return strings.Join(lines, "\n")
}

// Filename builds the timestamped export filename.
func Filename(now time.Time) string {
	return fmt.Sprintf("daybook-export-%s.txt", now.Format("2006-01-02T15-04-05"))
}

// Write persists the report into dir, creating the directory if needed, and
// returns the full path of the written file.
func Write(dir, content string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, Filename(now))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}

// stars renders importance as a five-star gauge, clamped to 1..5 with the
// same default the entry form uses.
func stars(importance int) string {
	if importance < 1 || importance > 5 {
		importance = 3
	}
	return strings.Repeat("★", importance) + strings.Repeat("☆", 5-importance)
}
