package cli

import (
	"fmt"
	"strings"

	"github.com/rzacher/sitebook/internal/models"
)

type AnalyzeCmd struct {
	Project string `arg:"" help:"Project ID (or unique prefix)."`
	Unit    string `short:"u" help:"Unit or room identifier."`
	Area    string `short:"a" help:"Area within the unit."`
	Photo   string `short:"p" help:"Photo path or URL to record alongside the findings."`
}

func (c *AnalyzeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	projects, err := ctx.Store.GetProjects()
	if err != nil {
		return err
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	projectID, err := matchID(c.Project, ids)
	if err != nil {
		return err
	}

	subs, err := ctx.Store.GetSubs()
	if err != nil {
		return err
	}

	analysis := ctx.Inspector.Analyze(projectID, c.Unit, c.Area, subs)
	analysis.PhotoURL = c.Photo

	analyses, err := ctx.Store.GetAnalyses()
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveAnalyses(append(analyses, analysis)); err != nil {
		return err
	}

	fmt.Printf("Inspection of %s / %s (%s)\n\n",
		analysis.Unit, analysis.Area, models.ProjectName(projectID, projects))
	fmt.Printf("Trade: %s\n\n", analysis.Trade.Label())
	fmt.Println("Looks correct:")
	for _, item := range analysis.CorrectItems {
		fmt.Printf("  ✓ %s\n", item)
	}
	fmt.Println("\nIssues found:")
	for _, issue := range analysis.IssuesFound {
		fmt.Printf("  ⚠ %s\n", issue)
	}
	fmt.Printf("\nNotes: %s\n", analysis.AINotes)
	fmt.Printf("Suggested sub: %s\n", analysis.SuggestedSub)
	fmt.Printf("\nSaved analysis %s\n", shortID(analysis.ID))
	return nil
}

type AnalysisListCmd struct {
	Project string `short:"p" help:"Filter by project ID (or unique prefix)."`
}

func (c *AnalysisListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	analyses, err := ctx.Store.GetAnalyses()
	if err != nil {
		return err
	}
	projects, err := ctx.Store.GetProjects()
	if err != nil {
		return err
	}

	var projectID string
	if c.Project != "" {
		ids := make([]string, len(projects))
		for i, p := range projects {
			ids[i] = p.ID
		}
		if projectID, err = matchID(c.Project, ids); err != nil {
			return err
		}
	}

	shown := 0
	for _, a := range analyses {
		if projectID != "" && a.ProjectID != projectID {
			continue
		}
		shown++
		loc := strings.TrimSpace(a.Unit + " / " + a.Area)
		fmt.Printf("%s  %-24s %-14s %d issues  %s\n",
			shortID(a.ID), loc, a.Trade.Label(), len(a.IssuesFound),
			models.ProjectName(a.ProjectID, projects))
	}
	if shown == 0 {
		fmt.Println("No analyses found")
	}
	return nil
}
