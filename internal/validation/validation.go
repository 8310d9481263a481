// Package validation runs data diagnostics over the persisted
// collections. Loose references and odd values are tolerated at
// runtime (display degrades to placeholders); these checks exist so
// the doctor command can surface them to the user.
package validation

import (
	"fmt"
	"time"

	"github.com/rzacher/sitebook/internal/constants"
	"github.com/rzacher/sitebook/internal/models"
)

type ConflictType string

const (
	ConflictDanglingProject    ConflictType = "dangling_project_ref"
	ConflictDanglingSub        ConflictType = "dangling_sub_ref"
	ConflictDanglingEstimate   ConflictType = "dangling_estimate_ref"
	ConflictDuplicateSignature ConflictType = "duplicate_signature"
	ConflictNegativeAmount     ConflictType = "negative_amount"
	ConflictUnknownTrade       ConflictType = "unknown_trade"
	ConflictUnknownStatus      ConflictType = "unknown_status"
	ConflictBadDate            ConflictType = "bad_date"
	ConflictBadQuantity        ConflictType = "bad_quantity"
)

type Conflict struct {
	Type    ConflictType
	Message string
}

type Result struct {
	Conflicts []Conflict
}

func (r Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Data bundles the collections a full validation pass covers.
type Data struct {
	Projects   []models.Project
	PunchItems []models.PunchItem
	Subs       []models.SubContractor
	Estimates  []models.Estimate
	Signatures []models.Signature
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateAll runs every check over the supplied collections.
func (v *Validator) ValidateAll(data Data) Result {
	var result Result

	projectIDs := make(map[string]bool, len(data.Projects))
	for _, p := range data.Projects {
		projectIDs[p.ID] = true
	}
	subIDs := make(map[string]bool, len(data.Subs))
	for _, s := range data.Subs {
		subIDs[s.ID] = true
	}
	estimateIDs := make(map[string]bool, len(data.Estimates))
	for _, e := range data.Estimates {
		estimateIDs[e.ID] = true
	}

	result.Conflicts = append(result.Conflicts, v.checkProjects(data.Projects)...)
	result.Conflicts = append(result.Conflicts, v.checkPunchItems(data.PunchItems, projectIDs, subIDs)...)
	result.Conflicts = append(result.Conflicts, v.checkSubs(data.Subs)...)
	result.Conflicts = append(result.Conflicts, v.checkEstimates(data.Estimates, projectIDs)...)
	result.Conflicts = append(result.Conflicts, v.checkSignatures(data.Signatures, estimateIDs)...)

	return result
}

func (v *Validator) checkProjects(projects []models.Project) []Conflict {
	var conflicts []Conflict
	for _, p := range projects {
		if p.Budget < 0 || p.Spent < 0 {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictNegativeAmount,
				Message: fmt.Sprintf("project %q has a negative budget or spent amount", p.Name),
			})
		}
		if p.StartDate != "" && !validDate(p.StartDate) {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictBadDate,
				Message: fmt.Sprintf("project %q has an unparseable start date %q", p.Name, p.StartDate),
			})
		}
	}
	return conflicts
}

func (v *Validator) checkPunchItems(items []models.PunchItem, projectIDs, subIDs map[string]bool) []Conflict {
	var conflicts []Conflict
	for _, item := range items {
		if item.ProjectID != "" && !projectIDs[item.ProjectID] {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictDanglingProject,
				Message: fmt.Sprintf("punch item %q references missing project %s", item.Description, item.ProjectID),
			})
		}
		if item.AssignedTo != "" && !subIDs[item.AssignedTo] {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictDanglingSub,
				Message: fmt.Sprintf("punch item %q is assigned to missing sub %s", item.Description, item.AssignedTo),
			})
		}
		if !item.Trade.Valid() {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictUnknownTrade,
				Message: fmt.Sprintf("punch item %q has unknown trade %q", item.Description, item.Trade),
			})
		}
		if !validPunchStatus(item.Status) {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictUnknownStatus,
				Message: fmt.Sprintf("punch item %q has unknown status %q", item.Description, item.Status),
			})
		}
		if item.DueDate != "" && !validDate(item.DueDate) {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictBadDate,
				Message: fmt.Sprintf("punch item %q has an unparseable due date %q", item.Description, item.DueDate),
			})
		}
	}
	return conflicts
}

func (v *Validator) checkSubs(subs []models.SubContractor) []Conflict {
	var conflicts []Conflict
	for _, sub := range subs {
		if sub.Rate < 0 {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictNegativeAmount,
				Message: fmt.Sprintf("sub %q has a negative hourly rate", sub.Name),
			})
		}
		if !sub.Trade.Valid() {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictUnknownTrade,
				Message: fmt.Sprintf("sub %q has unknown trade %q", sub.Name, sub.Trade),
			})
		}
	}
	return conflicts
}

func (v *Validator) checkEstimates(estimates []models.Estimate, projectIDs map[string]bool) []Conflict {
	var conflicts []Conflict
	for _, e := range estimates {
		if e.ProjectID != "" && !projectIDs[e.ProjectID] {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictDanglingProject,
				Message: fmt.Sprintf("estimate for %q references missing project %s", e.ClientName, e.ProjectID),
			})
		}
		for _, li := range e.LineItems {
			if li.ManHours < 0 || li.LaborRate < 0 || li.MaterialCost < 0 {
				conflicts = append(conflicts, Conflict{
					Type:    ConflictNegativeAmount,
					Message: fmt.Sprintf("estimate line %q has a negative amount", li.Description),
				})
			}
			if li.Quantity < 1 {
				conflicts = append(conflicts, Conflict{
					Type:    ConflictBadQuantity,
					Message: fmt.Sprintf("estimate line %q has quantity below 1", li.Description),
				})
			}
		}
	}
	return conflicts
}

func (v *Validator) checkSignatures(signatures []models.Signature, estimateIDs map[string]bool) []Conflict {
	var conflicts []Conflict
	seen := make(map[string]bool, len(signatures))
	for _, sig := range signatures {
		if sig.EstimateID != "" && !estimateIDs[sig.EstimateID] {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictDanglingEstimate,
				Message: fmt.Sprintf("signature by %q references missing estimate %s", sig.SignerName, sig.EstimateID),
			})
		}
		if seen[sig.EstimateID] {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictDuplicateSignature,
				Message: fmt.Sprintf("estimate %s has more than one signature", sig.EstimateID),
			})
		}
		seen[sig.EstimateID] = true
	}
	return conflicts
}

func validDate(s string) bool {
	_, err := time.Parse(constants.DateLayout, s)
	return err == nil
}

func validPunchStatus(s models.PunchStatus) bool {
	switch s {
	case models.PunchOpen, models.PunchInProgress, models.PunchResolved, models.PunchVerified:
		return true
	}
	return false
}
