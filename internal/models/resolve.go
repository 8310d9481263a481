package models

import "github.com/rzacher/sitebook/internal/constants"

// Foreign keys are plain string IDs with no referential integrity.
// These helpers are the single place where a missing reference turns
// into a placeholder label; every display surface goes through them.

// ProjectName resolves a project id to its name, or "Unknown Project".
func ProjectName(id string, projects []Project) string {
	for _, p := range projects {
		if p.ID == id {
			return p.Name
		}
	}
	return constants.UnknownProject
}

// SubName resolves a sub id to its name. Empty means unassigned.
func SubName(id string, subs []SubContractor) string {
	if id == "" {
		return constants.Unassigned
	}
	for _, s := range subs {
		if s.ID == id {
			return s.Name
		}
	}
	return constants.UnknownSub
}

// EstimateName resolves an estimate id to its client name, or
// "Unknown Estimate".
func EstimateName(id string, estimates []Estimate) string {
	for _, e := range estimates {
		if e.ID == id {
			return e.ClientName
		}
	}
	return constants.UnknownEstimate
}

// FindProject returns the project with the given id, if present.
func FindProject(id string, projects []Project) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// FindSub returns the sub with the given id, if present.
func FindSub(id string, subs []SubContractor) (SubContractor, bool) {
	for _, s := range subs {
		if s.ID == id {
			return s, true
		}
	}
	return SubContractor{}, false
}

// FindEstimate returns the estimate with the given id, if present.
func FindEstimate(id string, estimates []Estimate) (Estimate, bool) {
	for _, e := range estimates {
		if e.ID == id {
			return e, true
		}
	}
	return Estimate{}, false
}
