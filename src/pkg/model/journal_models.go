package model

import "time"

// Memory is a single journal entry. Date is the calendar day the memory
// belongs to ("2006-01-02"); CreatedAt and LastModified are stamped by the
// manager, never by callers.
type Memory struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	MainCategory string    `json:"mainCategory"`
	SubCategory  string    `json:"subCategory"`
	Date         string    `json:"date"`
	Importance   int       `json:"importance"`
	Tags         []string  `json:"tags"`
	Emotions     []string  `json:"emotions"`
	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

// MemoryDraft holds the caller-supplied fields of a new memory.
type MemoryDraft struct {
	Title        string `validate:"required"`
	Content      string
	MainCategory string
	SubCategory  string
	Date         string `validate:"required"`
	Importance   int    `validate:"min=1,max=5"`
	Tags         []string
	Emotions     []string
}

// MemoryPatch lists every mutable memory field. Nil means unchanged.
type MemoryPatch struct {
	Title        *string
	Content      *string
	MainCategory *string
	SubCategory  *string
	Date         *string
	Importance   *int
	Tags         *[]string
	Emotions     *[]string
}

// Task is one checklist item inside a daily plan.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
	Notes     string `json:"notes,omitempty"`
}

// Task priority levels.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// DailyPlan is the plan record for one calendar day. Date uniqueness is a
// convention of the UI flow, not a storage constraint.
type DailyPlan struct {
	ID                string    `json:"id"`
	Date              string    `json:"date"`
	Tasks             []Task    `json:"tasks"`
	Reflections       string    `json:"reflections"`
	TomorrowPlans     []string  `json:"tomorrowPlans"`
	TomorrowReminders []string  `json:"tomorrowReminders"`
	CreatedAt         time.Time `json:"createdAt"`
}

// PlanDraft holds the caller-supplied fields of a new daily plan.
type PlanDraft struct {
	Date              string `validate:"required"`
	Tasks             []Task
	Reflections       string
	TomorrowPlans     []string
	TomorrowReminders []string
}

// PlanPatch lists every mutable plan field. Nil means unchanged.
type PlanPatch struct {
	Tasks             *[]Task
	Reflections       *string
	TomorrowPlans     *[]string
	TomorrowReminders *[]string
}
