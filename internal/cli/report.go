package cli

import (
	"fmt"

	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/punch"
	"github.com/rzacher/sitebook/internal/report"
)

type ReportCmd struct {
	Financial ReportFinancialCmd `cmd:"" help:"Budget vs. spent across all projects."`
	Punch     ReportPunchCmd     `cmd:"" help:"Punch item counts by status and trade."`
	Estimates ReportEstimatesCmd `cmd:"" help:"Estimate conversion by status."`
	Projects  ReportProjectsCmd  `cmd:"" help:"Project counts per status."`
}

type ReportFinancialCmd struct{}

func (c *ReportFinancialCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	projects, err := ctx.Store.GetProjects()
	if err != nil {
		return err
	}
	fmt.Println(report.FinancialSummary(projects))
	return nil
}

type ReportPunchCmd struct{}

func (c *ReportPunchCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	items, err := ctx.Store.GetPunchItems()
	if err != nil {
		return err
	}
	fmt.Println(report.PunchSummary(items))
	return nil
}

type ReportEstimatesCmd struct{}

func (c *ReportEstimatesCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	estimates, err := ctx.Store.GetEstimates()
	if err != nil {
		return err
	}
	fmt.Println(report.EstimateConversion(estimates))
	return nil
}

type ReportProjectsCmd struct{}

func (c *ReportProjectsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	projects, err := ctx.Store.GetProjects()
	if err != nil {
		return err
	}
	fmt.Println(report.ProjectStatusOverview(projects))
	return nil
}

// PrintCmd renders printable documents to stdout.
type PrintCmd struct {
	Estimate  PrintEstimateCmd  `cmd:"" help:"Printable estimate proposal."`
	Punchlist PrintPunchlistCmd `cmd:"" help:"Printable punch list grouped by project."`
}

type PrintEstimateCmd struct {
	ID string `arg:"" help:"Estimate ID (or unique prefix)."`
}

func (c *PrintEstimateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	estimates, err := ctx.Store.GetEstimates()
	if err != nil {
		return err
	}
	est, err := findEstimate(c.ID, estimates)
	if err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	fmt.Println(report.EstimateDocument(*est, settings))
	return nil
}

type PrintPunchlistCmd struct {
	Project string `short:"p" help:"Limit to one project ID (or unique prefix)."`
	Open    bool   `help:"Only open and in-progress items."`
}

func (c *PrintPunchlistCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	items, err := ctx.Store.GetPunchItems()
	if err != nil {
		return err
	}
	projects, err := ctx.Store.GetProjects()
	if err != nil {
		return err
	}
	subs, err := ctx.Store.GetSubs()
	if err != nil {
		return err
	}

	filter := punch.Filter{}
	if c.Project != "" {
		ids := make([]string, len(projects))
		for i, p := range projects {
			ids[i] = p.ID
		}
		projectID, err := matchID(c.Project, ids)
		if err != nil {
			return err
		}
		filter.ProjectID = projectID
	}
	items = punch.Apply(items, filter)
	if c.Open {
		kept := items[:0]
		for _, item := range items {
			if item.Status == models.PunchOpen || item.Status == models.PunchInProgress {
				kept = append(kept, item)
			}
		}
		items = kept
	}

	fmt.Println(report.PunchListDocument(items, projects, subs))
	return nil
}
