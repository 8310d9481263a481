package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/rzacher/sitebook/internal/cli"
	"github.com/rzacher/sitebook/internal/inspect"
	"github.com/rzacher/sitebook/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path." type:"path" default:"~/.config/sitebook/sitebook.db"`

	Init cli.InitCmd `cmd:"" help:"Initialize sitebook storage."`
	Tui  cli.TuiCmd  `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Seed cli.SeedCmd `cmd:"" help:"Load sample data into an empty store."`

	Project struct {
		Add    cli.ProjectAddCmd    `cmd:"" help:"Add a project."`
		List   cli.ProjectListCmd   `cmd:"" help:"List projects."`
		Edit   cli.ProjectEditCmd   `cmd:"" help:"Edit a project."`
		Delete cli.ProjectDeleteCmd `cmd:"" help:"Delete a project."`
	} `cmd:"" help:"Manage projects."`

	Punch struct {
		Add       cli.PunchAddCmd       `cmd:"" help:"Add a punch item."`
		List      cli.PunchListCmd      `cmd:"" help:"List punch items."`
		Advance   cli.PunchAdvanceCmd   `cmd:"" help:"Advance a punch item one status step."`
		Edit      cli.PunchEditCmd      `cmd:"" help:"Edit a punch item."`
		Delete    cli.PunchDeleteCmd    `cmd:"" help:"Delete a punch item."`
		Attention cli.PunchAttentionCmd `cmd:"" help:"Show the items most needing attention."`
	} `cmd:"" help:"Manage the punch list."`

	Sub struct {
		Add    cli.SubAddCmd    `cmd:"" help:"Add a subcontractor."`
		List   cli.SubListCmd   `cmd:"" help:"List subcontractors."`
		Edit   cli.SubEditCmd   `cmd:"" help:"Edit a subcontractor."`
		Delete cli.SubDeleteCmd `cmd:"" help:"Delete a subcontractor."`
	} `cmd:"" help:"Manage subcontractors."`

	Estimate struct {
		Add    cli.EstimateAddCmd    `cmd:"" help:"Create an estimate."`
		List   cli.EstimateListCmd   `cmd:"" help:"List estimates."`
		Show   cli.EstimateShowCmd   `cmd:"" help:"Show one estimate in full."`
		Status cli.EstimateStatusCmd `cmd:"" help:"Set an estimate's status."`
		Edit   cli.EstimateEditCmd   `cmd:"" help:"Edit estimate details."`
		Delete cli.EstimateDeleteCmd `cmd:"" help:"Delete an estimate."`
		Item   struct {
			Add    cli.ItemAddCmd    `cmd:"" help:"Add a line item."`
			Edit   cli.ItemEditCmd   `cmd:"" help:"Edit a line item."`
			Delete cli.ItemDeleteCmd `cmd:"" help:"Remove a line item."`
		} `cmd:"" help:"Manage estimate line items."`
	} `cmd:"" help:"Manage estimates."`

	Quick cli.QuickCmd `cmd:"" help:"Ballpark estimate from square footage and trades."`

	Sign struct {
		Queue cli.SignQueueCmd `cmd:"" help:"List estimates waiting for signature."`
		Apply cli.SignCmd      `cmd:"" name:"apply" help:"Record a client signature."`
		List  cli.SignListCmd  `cmd:"" help:"List recorded signatures."`
	} `cmd:"" help:"Client sign-off on estimates."`

	Analyze  cli.AnalyzeCmd      `cmd:"" help:"Run a simulated photo inspection."`
	Analyses cli.AnalysisListCmd `cmd:"" help:"List saved photo analyses."`

	Report cli.ReportCmd `cmd:"" help:"Summaries over the whole store."`
	Print  cli.PrintCmd  `cmd:"" help:"Printable documents."`

	Settings cli.SettingsCmd `cmd:"" help:"Company profile and default rates."`

	Export cli.ExportCmd `cmd:"" help:"Export everything to a snapshot file."`
	Import cli.ImportCmd `cmd:"" help:"Replace the store from a snapshot file."`
	Clear  cli.ClearCmd  `cmd:"" help:"Delete every record."`

	Backup   cli.BackupCmd   `cmd:"" help:"Store backups."`
	Validate cli.ValidateCmd `cmd:"" help:"Check the store for data conflicts."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sitebook"),
		kong.Description("Construction business record keeper: projects, punch lists, subs, estimates"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.0"},
	)

	// Storage provider follows the file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:     store,
		Inspector: inspect.New(),
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
