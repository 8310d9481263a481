package models

// PhotoAnalysis is the stored result of a simulated photo inspection.
// The findings are template-generated, not real inference; see the
// inspect package.
type PhotoAnalysis struct {
	ID           string   `json:"id"`
	ProjectID    string   `json:"projectId"`
	Unit         string   `json:"unit"`
	Area         string   `json:"area"`
	PhotoURL     string   `json:"photoUrl"`
	AINotes      string   `json:"aiNotes"`
	IssuesFound  []string `json:"issuesFound"`
	CorrectItems []string `json:"correctItems"`
	SuggestedSub string   `json:"suggestedSub"`
	Trade        Trade    `json:"trade"`
	CreatedAt    string   `json:"createdAt"`
}
