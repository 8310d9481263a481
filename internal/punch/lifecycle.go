// Package punch holds the punch-item lifecycle rules: the status
// workflow, overdue detection, urgency ranking and list filtering.
// Everything here is a pure function over in-memory items; persistence
// stays with the caller.
package punch

import (
	"sort"
	"strings"
	"time"

	"github.com/rzacher/sitebook/internal/constants"
	"github.com/rzacher/sitebook/internal/models"
)

// nextStatus maps each status to its successor. Verified is terminal.
var nextStatus = map[models.PunchStatus]models.PunchStatus{
	models.PunchOpen:       models.PunchInProgress,
	models.PunchInProgress: models.PunchResolved,
	models.PunchResolved:   models.PunchVerified,
}

// NextStatus returns the status that follows s in the workflow, or
// ok=false when s is terminal (or unknown). The workflow only ever
// moves forward one step at a time; there is no reverse transition
// here. SetStatus is the unrestricted escape hatch.
func NextStatus(s models.PunchStatus) (models.PunchStatus, bool) {
	next, ok := nextStatus[s]
	return next, ok
}

// Advance returns a copy of item moved one step forward in the
// workflow, with UpdatedAt refreshed. Advancing a terminal item is a
// no-op, not an error. The caller persists the result.
func Advance(item models.PunchItem) models.PunchItem {
	next, ok := NextStatus(item.Status)
	if !ok {
		return item
	}
	item.Status = next
	item.UpdatedAt = time.Now().Format(time.RFC3339)
	return item
}

// SetStatus returns a copy of item with the status set directly,
// bypassing the workflow. Unlike Advance it can skip or reverse steps;
// it exists so the edit flow can correct a mistaken status.
func SetStatus(item models.PunchItem, s models.PunchStatus) models.PunchItem {
	item.Status = s
	item.UpdatedAt = time.Now().Format(time.RFC3339)
	return item
}

// IsOverdue reports whether an item with the given due date and status
// is past due today. Items without a due date and items already
// resolved or verified are never overdue.
func IsOverdue(dueDate string, status models.PunchStatus) bool {
	return IsOverdueAt(dueDate, status, time.Now())
}

// IsOverdueAt is IsOverdue evaluated against an arbitrary clock. The
// comparison is calendar-date at local midnight, strictly before today;
// an item due today is not overdue.
func IsOverdueAt(dueDate string, status models.PunchStatus, now time.Time) bool {
	if dueDate == "" {
		return false
	}
	if status == models.PunchResolved || status == models.PunchVerified {
		return false
	}
	due, err := time.ParseInLocation(constants.DateLayout, dueDate, now.Location())
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return due.Before(today)
}

// priorityRank orders priorities for sorting. Unknown or malformed
// priorities rank after low.
var priorityRank = map[models.Priority]int{
	models.PriorityUrgent: 0,
	models.PriorityHigh:   1,
	models.PriorityMedium: 2,
	models.PriorityLow:    3,
}

const unknownPriorityRank = 4

// Rank returns the sort rank of a priority; lower sorts first.
func Rank(p models.Priority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return unknownPriorityRank
}

// Less is the canonical display order for punch items: priority first
// (urgent before high before medium before low), then due date
// ascending with undated items last. Equal items keep their collection
// order when used with a stable sort.
func Less(a, b models.PunchItem) bool {
	ra, rb := Rank(a.Priority), Rank(b.Priority)
	if ra != rb {
		return ra < rb
	}
	if a.DueDate != "" && b.DueDate != "" {
		return a.DueDate < b.DueDate
	}
	if a.DueDate != "" {
		return true
	}
	if b.DueDate != "" {
		return false
	}
	return false
}

// Sort returns a new slice in canonical display order. The input is
// not modified and ties preserve input order.
func Sort(items []models.PunchItem) []models.PunchItem {
	sorted := make([]models.PunchItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j])
	})
	return sorted
}

// Filter is a conjunction of optional predicates. Zero values mean
// "no constraint" for that dimension.
type Filter struct {
	ProjectID string
	Status    models.PunchStatus
	Priority  models.Priority
	Trade     models.Trade
	Search    string // case-insensitive substring over description, unit, area
}

// Matches reports whether item satisfies every set dimension of f.
func Matches(item models.PunchItem, f Filter) bool {
	if f.ProjectID != "" && item.ProjectID != f.ProjectID {
		return false
	}
	if f.Status != "" && item.Status != f.Status {
		return false
	}
	if f.Priority != "" && item.Priority != f.Priority {
		return false
	}
	if f.Trade != "" && item.Trade != f.Trade {
		return false
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		q = strings.ToLower(q)
		if !strings.Contains(strings.ToLower(item.Description), q) &&
			!strings.Contains(strings.ToLower(item.Unit), q) &&
			!strings.Contains(strings.ToLower(item.Area), q) {
			return false
		}
	}
	return true
}

// Apply filters items by f and returns them in canonical order.
func Apply(items []models.PunchItem, f Filter) []models.PunchItem {
	var matched []models.PunchItem
	for _, item := range items {
		if Matches(item, f) {
			matched = append(matched, item)
		}
	}
	return Sort(matched)
}

// AttentionSet selects the items most in need of review: not yet
// resolved or verified, and either high/urgent priority or overdue.
// Results come back in canonical order, capped at limit. A limit <= 0
// means no cap.
func AttentionSet(items []models.PunchItem, limit int) []models.PunchItem {
	return AttentionSetAt(items, limit, time.Now())
}

// AttentionSetAt is AttentionSet evaluated against an arbitrary clock.
func AttentionSetAt(items []models.PunchItem, limit int, now time.Time) []models.PunchItem {
	var needs []models.PunchItem
	for _, item := range items {
		if item.Status == models.PunchResolved || item.Status == models.PunchVerified {
			continue
		}
		if item.Priority == models.PriorityUrgent || item.Priority == models.PriorityHigh ||
			IsOverdueAt(item.DueDate, item.Status, now) {
			needs = append(needs, item)
		}
	}
	needs = Sort(needs)
	if limit > 0 && len(needs) > limit {
		needs = needs[:limit]
	}
	return needs
}
