package validation

import (
	"testing"

	"github.com/rzacher/sitebook/internal/models"
)

func conflictTypes(r Result) map[ConflictType]int {
	out := make(map[ConflictType]int)
	for _, c := range r.Conflicts {
		out[c.Type]++
	}
	return out
}

func TestValidateAll_CleanDataHasNoConflicts(t *testing.T) {
	v := New()

	data := Data{
		Projects: []models.Project{
			{ID: "p1", Name: "Job", Status: models.ProjectActive, Budget: 1000, StartDate: "2025-03-01"},
		},
		PunchItems: []models.PunchItem{
			{ID: "i1", ProjectID: "p1", Description: "Fix", Status: models.PunchOpen,
				Priority: models.PriorityHigh, Trade: models.TradeElectrical, DueDate: "2025-04-01"},
		},
		Subs: []models.SubContractor{
			{ID: "s1", Name: "Sub", Trade: models.TradePlumbing, Rate: 80},
		},
		Estimates: []models.Estimate{
			{ID: "e1", ProjectID: "p1", ClientName: "Client", LineItems: []models.EstimateLineItem{
				{Description: "Work", ManHours: 8, LaborRate: 85, Quantity: 1},
			}},
		},
		Signatures: []models.Signature{
			{ID: "g1", EstimateID: "e1", SignerName: "Client"},
		},
	}

	result := v.ValidateAll(data)
	if result.HasConflicts() {
		t.Errorf("clean data produced conflicts: %v", result.Conflicts)
	}
}

func TestValidateAll_FlagsDanglingReferences(t *testing.T) {
	v := New()

	data := Data{
		PunchItems: []models.PunchItem{
			{ID: "i1", ProjectID: "missing-project", AssignedTo: "missing-sub",
				Status: models.PunchOpen, Trade: models.TradeGeneral},
		},
		Estimates: []models.Estimate{
			{ID: "e1", ProjectID: "missing-project"},
		},
		Signatures: []models.Signature{
			{ID: "g1", EstimateID: "missing-estimate"},
		},
	}

	types := conflictTypes(v.ValidateAll(data))

	if types[ConflictDanglingProject] != 2 {
		t.Errorf("dangling project conflicts = %d, want 2", types[ConflictDanglingProject])
	}
	if types[ConflictDanglingSub] != 1 {
		t.Errorf("dangling sub conflicts = %d, want 1", types[ConflictDanglingSub])
	}
	if types[ConflictDanglingEstimate] != 1 {
		t.Errorf("dangling estimate conflicts = %d, want 1", types[ConflictDanglingEstimate])
	}
}

func TestValidateAll_UnassignedIsNotDangling(t *testing.T) {
	v := New()

	data := Data{
		PunchItems: []models.PunchItem{
			{ID: "i1", Status: models.PunchOpen, Trade: models.TradeGeneral, AssignedTo: ""},
		},
	}

	types := conflictTypes(v.ValidateAll(data))
	if types[ConflictDanglingSub] != 0 {
		t.Error("an unassigned punch item should not be flagged")
	}
}

func TestValidateAll_FlagsBadValues(t *testing.T) {
	v := New()

	data := Data{
		Projects: []models.Project{
			{ID: "p1", Name: "Broke", Budget: -5, StartDate: "not-a-date"},
		},
		PunchItems: []models.PunchItem{
			{ID: "i1", ProjectID: "p1", Status: models.PunchStatus("limbo"),
				Trade: models.Trade("welding"), DueDate: "04/01/2025"},
		},
		Subs: []models.SubContractor{
			{ID: "s1", Name: "Cheap", Trade: models.TradeGeneral, Rate: -1},
		},
		Estimates: []models.Estimate{
			{ID: "e1", ProjectID: "p1", LineItems: []models.EstimateLineItem{
				{Description: "Bad", ManHours: -1, Quantity: 0},
			}},
		},
	}

	types := conflictTypes(v.ValidateAll(data))

	if types[ConflictNegativeAmount] != 3 {
		t.Errorf("negative amount conflicts = %d, want 3", types[ConflictNegativeAmount])
	}
	if types[ConflictUnknownTrade] != 1 {
		t.Errorf("unknown trade conflicts = %d, want 1", types[ConflictUnknownTrade])
	}
	if types[ConflictUnknownStatus] != 1 {
		t.Errorf("unknown status conflicts = %d, want 1", types[ConflictUnknownStatus])
	}
	if types[ConflictBadDate] != 2 {
		t.Errorf("bad date conflicts = %d, want 2", types[ConflictBadDate])
	}
	if types[ConflictBadQuantity] != 1 {
		t.Errorf("bad quantity conflicts = %d, want 1", types[ConflictBadQuantity])
	}
}

func TestValidateAll_FlagsDuplicateSignatures(t *testing.T) {
	v := New()

	data := Data{
		Estimates: []models.Estimate{{ID: "e1"}},
		Signatures: []models.Signature{
			{ID: "g1", EstimateID: "e1"},
			{ID: "g2", EstimateID: "e1"},
		},
	}

	types := conflictTypes(v.ValidateAll(data))
	if types[ConflictDuplicateSignature] != 1 {
		t.Errorf("duplicate signature conflicts = %d, want 1", types[ConflictDuplicateSignature])
	}
}
