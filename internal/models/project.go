package models

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

// AllProjectStatuses lists the project statuses in display order.
var AllProjectStatuses = []ProjectStatus{
	ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted, ProjectArchived,
}

// Project is a tracked job. Spent is not constrained to stay within
// Budget; over-budget is a valid, flagged state.
type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Client    string        `json:"client"`
	Address   string        `json:"address"`
	Status    ProjectStatus `json:"status"`
	Type      string        `json:"type"`
	SqFootage float64       `json:"sqFootage"`
	StartDate string        `json:"startDate"` // YYYY-MM-DD
	EndDate   string        `json:"endDate,omitempty"`
	Budget    float64       `json:"budget"`
	Spent     float64       `json:"spent"`
	Notes     string        `json:"notes"`
	CreatedAt string        `json:"createdAt"` // RFC3339
	UpdatedAt string        `json:"updatedAt"`
}
