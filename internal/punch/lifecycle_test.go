package punch

import (
	"testing"
	"time"

	"github.com/rzacher/sitebook/internal/models"
)

func TestNextStatus_WalksTheFullWorkflow(t *testing.T) {
	status := models.PunchOpen
	want := []models.PunchStatus{models.PunchInProgress, models.PunchResolved, models.PunchVerified}

	for _, expected := range want {
		next, ok := NextStatus(status)
		if !ok {
			t.Fatalf("NextStatus(%s) reported terminal, want %s", status, expected)
		}
		if next != expected {
			t.Fatalf("NextStatus(%s) = %s, want %s", status, next, expected)
		}
		status = next
	}

	if _, ok := NextStatus(status); ok {
		t.Errorf("NextStatus(%s) should report terminal", status)
	}
}

func TestNextStatus_UnknownStatusIsTerminal(t *testing.T) {
	if _, ok := NextStatus(models.PunchStatus("bogus")); ok {
		t.Error("unknown status should not advance")
	}
}

func TestAdvance_TerminalItemIsNoOp(t *testing.T) {
	item := models.PunchItem{Status: models.PunchVerified, UpdatedAt: "2025-01-01T00:00:00Z"}

	got := Advance(item)

	if got.Status != models.PunchVerified {
		t.Errorf("Advance changed a terminal status to %s", got.Status)
	}
	if got.UpdatedAt != item.UpdatedAt {
		t.Error("Advance on a terminal item should not touch UpdatedAt")
	}
}

func TestAdvance_RefreshesUpdatedAt(t *testing.T) {
	item := models.PunchItem{Status: models.PunchOpen, UpdatedAt: "2025-01-01T00:00:00Z"}

	got := Advance(item)

	if got.Status != models.PunchInProgress {
		t.Fatalf("Advance(open) = %s, want in-progress", got.Status)
	}
	if got.UpdatedAt == item.UpdatedAt {
		t.Error("Advance should refresh UpdatedAt")
	}
}

func TestSetStatus_CanReverseTheWorkflow(t *testing.T) {
	item := models.PunchItem{Status: models.PunchVerified}

	got := SetStatus(item, models.PunchOpen)

	if got.Status != models.PunchOpen {
		t.Errorf("SetStatus = %s, want open", got.Status)
	}
}

func TestIsOverdueAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)

	tests := []struct {
		name    string
		dueDate string
		status  models.PunchStatus
		want    bool
	}{
		{"past due date", "2025-06-14", models.PunchOpen, true},
		{"due today is not overdue", "2025-06-15", models.PunchOpen, false},
		{"future due date", "2025-06-16", models.PunchOpen, false},
		{"no due date", "", models.PunchOpen, false},
		{"resolved is never overdue", "2025-06-01", models.PunchResolved, false},
		{"verified is never overdue", "2025-06-01", models.PunchVerified, false},
		{"in-progress can be overdue", "2025-06-01", models.PunchInProgress, true},
		{"malformed date", "June 1st", models.PunchOpen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdueAt(tt.dueDate, tt.status, now); got != tt.want {
				t.Errorf("IsOverdueAt(%q, %s) = %v, want %v", tt.dueDate, tt.status, got, tt.want)
			}
		})
	}
}

func TestRank_UnknownPriorityRanksLast(t *testing.T) {
	if Rank(models.PriorityUrgent) >= Rank(models.PriorityHigh) {
		t.Error("urgent should rank before high")
	}
	if Rank(models.PriorityLow) >= Rank(models.Priority("whatever")) {
		t.Error("unknown priority should rank after low")
	}
}

func TestSort_CanonicalOrder(t *testing.T) {
	items := []models.PunchItem{
		{ID: "low-dated", Priority: models.PriorityLow, DueDate: "2025-01-01"},
		{ID: "urgent-undated", Priority: models.PriorityUrgent},
		{ID: "urgent-late", Priority: models.PriorityUrgent, DueDate: "2025-03-01"},
		{ID: "urgent-early", Priority: models.PriorityUrgent, DueDate: "2025-02-01"},
		{ID: "high", Priority: models.PriorityHigh},
		{ID: "weird", Priority: models.Priority("nope")},
	}

	sorted := Sort(items)

	want := []string{"urgent-early", "urgent-late", "urgent-undated", "high", "low-dated", "weird"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("position %d: got %s, want %s (full order: %v)", i, sorted[i].ID, id, ids(sorted))
		}
	}

	// Input must not be modified.
	if items[0].ID != "low-dated" {
		t.Error("Sort modified its input")
	}
}

func TestSort_TiesKeepInputOrder(t *testing.T) {
	items := []models.PunchItem{
		{ID: "first", Priority: models.PriorityMedium},
		{ID: "second", Priority: models.PriorityMedium},
		{ID: "third", Priority: models.PriorityMedium},
	}

	sorted := Sort(items)

	for i, id := range []string{"first", "second", "third"} {
		if sorted[i].ID != id {
			t.Fatalf("stable sort broke tie order: %v", ids(sorted))
		}
	}
}

func TestMatches(t *testing.T) {
	item := models.PunchItem{
		ProjectID:   "proj-1",
		Status:      models.PunchOpen,
		Priority:    models.PriorityHigh,
		Trade:       models.TradeElectrical,
		Description: "Replace outlet cover",
		Unit:        "Unit 204",
		Area:        "Kitchen",
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"empty filter matches", Filter{}, true},
		{"project match", Filter{ProjectID: "proj-1"}, true},
		{"project mismatch", Filter{ProjectID: "proj-2"}, false},
		{"status and trade", Filter{Status: models.PunchOpen, Trade: models.TradeElectrical}, true},
		{"search description case-insensitive", Filter{Search: "OUTLET"}, true},
		{"search matches unit", Filter{Search: "204"}, true},
		{"search matches area", Filter{Search: "kitchen"}, true},
		{"search miss", Filter{Search: "plumbing"}, false},
		{"all dims, one off", Filter{ProjectID: "proj-1", Priority: models.PriorityLow}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(item, tt.filter); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttentionSetAt_SelectsAndCaps(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, time.Local)

	items := []models.PunchItem{
		{ID: "resolved-urgent", Priority: models.PriorityUrgent, Status: models.PunchResolved},
		{ID: "overdue-low", Priority: models.PriorityLow, Status: models.PunchOpen, DueDate: "2025-06-01"},
		{ID: "urgent", Priority: models.PriorityUrgent, Status: models.PunchOpen},
		{ID: "high", Priority: models.PriorityHigh, Status: models.PunchInProgress},
		{ID: "medium-future", Priority: models.PriorityMedium, Status: models.PunchOpen, DueDate: "2026-01-01"},
	}

	got := AttentionSetAt(items, 0, now)

	want := []string{"urgent", "high", "overdue-low"}
	if len(got) != len(want) {
		t.Fatalf("AttentionSet returned %v, want %v", ids(got), want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}

	capped := AttentionSetAt(items, 2, now)
	if len(capped) != 2 || capped[0].ID != "urgent" || capped[1].ID != "high" {
		t.Errorf("limit 2 should keep the two most urgent, got %v", ids(capped))
	}
}

func ids(items []models.PunchItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
