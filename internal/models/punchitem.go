package models

type PunchStatus string

const (
	PunchOpen       PunchStatus = "open"
	PunchInProgress PunchStatus = "in-progress"
	PunchResolved   PunchStatus = "resolved"
	PunchVerified   PunchStatus = "verified"
)

// AllPunchStatuses lists the punch statuses in workflow order.
var AllPunchStatuses = []PunchStatus{
	PunchOpen, PunchInProgress, PunchResolved, PunchVerified,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var AllPriorities = []Priority{
	PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent,
}

var punchStatusLabels = map[PunchStatus]string{
	PunchOpen:       "Open",
	PunchInProgress: "In Progress",
	PunchResolved:   "Resolved",
	PunchVerified:   "Verified",
}

func (s PunchStatus) Label() string {
	if l, ok := punchStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// PunchItem is a tracked deficiency tied to a project. ProjectID and
// AssignedTo are loose references; dangling values are tolerated and
// resolved to placeholder labels at display time.
type PunchItem struct {
	ID          string      `json:"id"`
	ProjectID   string      `json:"projectId"`
	Unit        string      `json:"unit"`
	Area        string      `json:"area"`
	Description string      `json:"description"`
	Status      PunchStatus `json:"status"`
	Priority    Priority    `json:"priority"`
	Trade       Trade       `json:"trade"`
	AssignedTo  string      `json:"assignedTo"`        // sub id, empty = unassigned
	DueDate     string      `json:"dueDate,omitempty"` // YYYY-MM-DD, empty = none
	Photos      []string    `json:"photos"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
}
