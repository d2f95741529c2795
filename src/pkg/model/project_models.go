package model

import "time"

// Project statuses.
const (
	ProjectPlanning  = "planning"
	ProjectActive    = "active"
	ProjectPaused    = "paused"
	ProjectCompleted = "completed"
	ProjectCancelled = "cancelled"
)

// Stage statuses.
const (
	StagePending   = "pending"
	StageActive    = "active"
	StageCompleted = "completed"
)

// Challenge statuses.
const (
	ChallengeUnsolved = "unsolved"
	ChallengeSolved   = "solved"
)

// Project is a tracked undertaking with ordered stages. FolderID is a weak
// reference: empty means unfiled, and a dangling id never invalidates the project.
type Project struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Purpose   string         `json:"purpose"`
	Status    string         `json:"status"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate,omitempty"`
	Stages    []ProjectStage `json:"stages"`
	FolderID  string         `json:"folderId,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ProjectStage is one phase of a project with its recorded challenges.
type ProjectStage struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Challenges  []Challenge `json:"challenges"`
	Status      string      `json:"status"`
	Archived    bool        `json:"archived"`
	StartDate   string      `json:"startDate,omitempty"`
	EndDate     string      `json:"endDate,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Challenge is a problem encountered within a stage and its resolution notes.
type Challenge struct {
	ID             string    `json:"id"`
	Problem        string    `json:"problem"`
	Solution       string    `json:"solution"`
	PracticeEffect string    `json:"practiceEffect"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ProjectFolder groups projects. Deleting a folder unfiles its projects,
// it never deletes them.
type ProjectFolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectDraft holds the caller-supplied fields of a new project.
type ProjectDraft struct {
	Name      string `validate:"required"`
	Purpose   string
	Status    string `validate:"omitempty,oneof=planning active paused completed cancelled"`
	StartDate string
	Stages    []ProjectStage
	FolderID  string
}

// ProjectPatch lists every mutable project field. Nil means unchanged.
// FolderID uses a pointer-to-string so the patch can distinguish "unfile"
// (pointer to empty string) from "leave alone" (nil).
type ProjectPatch struct {
	Name      *string
	Purpose   *string
	Status    *string `validate:"omitempty,oneof=planning active paused completed cancelled"`
	StartDate *string
	EndDate   *string
	Stages    *[]ProjectStage
	FolderID  *string
}

// StageDraft holds the caller-supplied fields of a new project stage.
type StageDraft struct {
	Title       string `validate:"required"`
	Description string
	Status      string `validate:"omitempty,oneof=pending active completed"`
	StartDate   string
}

// ChallengeDraft holds the caller-supplied fields of a new challenge.
type ChallengeDraft struct {
	Problem        string `validate:"required"`
	Solution       string
	PracticeEffect string
	Status         string `validate:"omitempty,oneof=unsolved solved"`
}
