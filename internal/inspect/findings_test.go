package inspect

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/rzacher/sitebook/internal/models"
)

func TestGenerate_CountsStayInRange(t *testing.T) {
	g := NewWithSource(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		f := g.Generate("Unit 3", "Kitchen", nil)

		if len(f.CorrectItems) < 2 || len(f.CorrectItems) > 4 {
			t.Fatalf("correct items = %d, want 2-4", len(f.CorrectItems))
		}
		if len(f.Issues) < 1 || len(f.Issues) > 3 {
			t.Fatalf("issues = %d, want 1-3", len(f.Issues))
		}
		if !f.Trade.Valid() {
			t.Fatalf("generated invalid trade %q", f.Trade)
		}
	}
}

func TestGenerate_FindingsComeFromTradePools(t *testing.T) {
	g := NewWithSource(rand.NewSource(7))

	f := g.Generate("", "", nil)

	pool := make(map[string]bool)
	for _, s := range correctByTrade[f.Trade] {
		pool[s] = true
	}
	for _, s := range f.CorrectItems {
		if !pool[s] {
			t.Errorf("correct item %q is not in the %s pool", s, f.Trade)
		}
	}

	seen := make(map[string]bool)
	for _, s := range f.Issues {
		if seen[s] {
			t.Errorf("duplicate issue %q", s)
		}
		seen[s] = true
	}
}

func TestGenerate_NotesSubstituteEveryPlaceholder(t *testing.T) {
	g := NewWithSource(rand.NewSource(3))

	for i := 0; i < 20; i++ {
		f := g.Generate("Unit 7B", "Master Bath", nil)
		if strings.Contains(f.Notes, "{") || strings.Contains(f.Notes, "}") {
			t.Fatalf("unsubstituted placeholder in notes: %q", f.Notes)
		}
	}
}

func TestGenerate_SuggestsFirstMatchingSub(t *testing.T) {
	g := NewWithSource(rand.NewSource(9))

	var trade models.Trade
	// Find out which trade this seed picks first.
	probe := NewWithSource(rand.NewSource(9)).Generate("", "", nil)
	trade = probe.Trade

	subs := []models.SubContractor{
		{ID: "s1", Name: "First Match", Company: "Alpha Co", Trade: trade},
		{ID: "s2", Name: "Second Match", Company: "Beta Co", Trade: trade},
	}

	f := g.Generate("", "", subs)
	if f.SuggestedSub != "First Match (Alpha Co)" {
		t.Errorf("SuggestedSub = %q, want the first matching sub", f.SuggestedSub)
	}
}

func TestGenerate_NoMatchingSubFallsBack(t *testing.T) {
	g := NewWithSource(rand.NewSource(5))

	f := g.Generate("", "", nil)

	want := "No " + f.Trade.Label() + " subcontractor on file"
	if f.SuggestedSub != want {
		t.Errorf("SuggestedSub = %q, want %q", f.SuggestedSub, want)
	}
}

func TestAnalyze_DefaultsUnitAndArea(t *testing.T) {
	g := NewWithSource(rand.NewSource(2))

	a := g.Analyze("proj-1", "", "", nil)

	if a.Unit != "Unspecified" {
		t.Errorf("Unit = %q, want Unspecified", a.Unit)
	}
	if a.Area != "General" {
		t.Errorf("Area = %q, want General", a.Area)
	}
	if a.ProjectID != "proj-1" {
		t.Errorf("ProjectID = %q", a.ProjectID)
	}
	if a.ID == "" || a.CreatedAt == "" {
		t.Error("Analyze should assign an ID and timestamp")
	}
}

func TestPoolsCoverEveryInspectionTrade(t *testing.T) {
	for _, trade := range inspectionTrades {
		if len(correctByTrade[trade]) < 4 {
			t.Errorf("trade %s has too few correct findings (%d)", trade, len(correctByTrade[trade]))
		}
		if len(issuesByTrade[trade]) < 3 {
			t.Errorf("trade %s has too few issue findings (%d)", trade, len(issuesByTrade[trade]))
		}
	}
}
