// Package inspect is a simulation of photo-based inspection analysis.
// It produces random template-substituted findings, not real inference,
// and is isolated behind Generator so a real inference service could
// replace it without touching the lifecycle or pricing engines.
package inspect

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rzacher/sitebook/internal/models"
)

// Generator produces mock findings. The rand source is injectable so
// tests can seed it.
type Generator struct {
	rng *rand.Rand
}

func New() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewWithSource builds a generator over a fixed source, for tests.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Findings is the simulated inspection result for one photo.
type Findings struct {
	Trade        models.Trade
	CorrectItems []string
	Issues       []string
	Notes        string
	SuggestedSub string
}

// Generate fabricates findings for a photo of the given unit/area and
// suggests the first subcontractor on file for the chosen trade.
func (g *Generator) Generate(unit, area string, subs []models.SubContractor) Findings {
	trade := inspectionTrades[g.rng.Intn(len(inspectionTrades))]
	correctCount := 2 + g.rng.Intn(3) // 2-4
	issueCount := 1 + g.rng.Intn(3)   // 1-3

	f := Findings{
		Trade:        trade,
		CorrectItems: g.pick(correctByTrade[trade], correctCount),
		Issues:       g.pick(issuesByTrade[trade], issueCount),
	}

	f.SuggestedSub = fmt.Sprintf("No %s subcontractor on file", trade.Label())
	for _, sub := range subs {
		if sub.Trade == trade {
			f.SuggestedSub = fmt.Sprintf("%s (%s)", sub.Name, sub.Company)
			break
		}
	}

	f.Notes = g.notes(unit, area, trade, len(f.Issues))
	return f
}

// Analyze runs Generate and wraps the result as a persistable record.
func (g *Generator) Analyze(projectID, unit, area string, subs []models.SubContractor) models.PhotoAnalysis {
	f := g.Generate(unit, area, subs)
	if unit == "" {
		unit = "Unspecified"
	}
	if area == "" {
		area = "General"
	}
	return models.PhotoAnalysis{
		ID:           uuid.New().String(),
		ProjectID:    projectID,
		Unit:         unit,
		Area:         area,
		AINotes:      f.Notes,
		IssuesFound:  f.Issues,
		CorrectItems: f.CorrectItems,
		SuggestedSub: f.SuggestedSub,
		Trade:        f.Trade,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
}

// pick returns count distinct entries from pool in shuffled order.
func (g *Generator) pick(pool []string, count int) []string {
	idx := g.rng.Perm(len(pool))
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]string, 0, count)
	for _, i := range idx[:count] {
		out = append(out, pool[i])
	}
	return out
}

func (g *Generator) notes(unit, area string, trade models.Trade, issueCount int) string {
	if area == "" {
		area = "work area"
	}
	if unit == "" {
		unit = "unit"
	}

	issueSummary := fmt.Sprintf("%d issues were identified that require attention.", issueCount)
	if issueCount == 1 {
		issueSummary = "1 issue was identified that requires attention."
	}

	tpl := noteTemplates[g.rng.Intn(len(noteTemplates))]
	r := strings.NewReplacer(
		"{area}", area,
		"{unit}", unit,
		"{condition}", conditions[g.rng.Intn(len(conditions))],
		"{issue_summary}", issueSummary,
		"{trade}", trade.Label(),
		"{extra}", extras[g.rng.Intn(len(extras))],
	)
	return r.Replace(tpl)
}
