package report

import (
	"strings"
	"testing"

	"github.com/rzacher/sitebook/internal/models"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{45, "$45"},
		{1234.5, "$1,234.5"},
		{99.99, "$99.99"},
		{-250.75, "-$250.75"},
	}

	for _, tt := range tests {
		if got := Currency(tt.in); got != tt.want {
			t.Errorf("Currency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEstimateDocument_TotalsMatchPricing(t *testing.T) {
	est := models.Estimate{
		ClientName:  "TechStart",
		ProjectType: "Commercial Build-Out",
		Status:      models.EstimateSent,
		LineItems: []models.EstimateLineItem{
			{Description: "Electrical work", Trade: models.TradeElectrical,
				ManHours: 10, LaborRate: 85, MaterialCost: 150, Quantity: 1},
		},
	}

	doc := EstimateDocument(est, models.DefaultSettings())

	if !strings.Contains(doc, "TechStart") {
		t.Error("document should name the client")
	}
	if !strings.Contains(doc, "$1,000") {
		t.Errorf("document should show the grand total, got:\n%s", doc)
	}
	if !strings.Contains(doc, "Signature:") {
		t.Error("an unsigned estimate should show a signature block")
	}
}

func TestEstimateDocument_SignedShowsTimestamp(t *testing.T) {
	est := models.Estimate{
		ClientName: "Signed Client",
		SignedAt:   "2025-06-01T09:00:00Z",
	}

	doc := EstimateDocument(est, models.DefaultSettings())

	if !strings.Contains(doc, "Signed 2025-06-01T09:00:00Z") {
		t.Error("a signed estimate should show when it was signed")
	}
	if strings.Contains(doc, "Signature: ___") {
		t.Error("a signed estimate should not show a blank signature line")
	}
}

func TestFinancialSummary_FlagsOverBudget(t *testing.T) {
	projects := []models.Project{
		{Name: "Under", Status: models.ProjectActive, Budget: 1000, Spent: 400},
		{Name: "Over", Status: models.ProjectActive, Budget: 1000, Spent: 1500},
	}

	out := FinancialSummary(projects)

	if !strings.Contains(out, "over budget") {
		t.Error("summary should flag the over-budget project")
	}
	if !strings.Contains(out, "$2,000") {
		t.Errorf("total budget missing from:\n%s", out)
	}
}
