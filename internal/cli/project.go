package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/report"
)

type ProjectAddCmd struct {
	Name      string  `arg:"" help:"Project name."`
	Client    string  `short:"c" help:"Client name."`
	Address   string  `short:"a" help:"Site address."`
	Type      string  `short:"t" help:"Project type (e.g. Renovation, Remodel)." default:"Renovation"`
	SqFootage float64 `short:"f" help:"Square footage." default:"0"`
	StartDate string  `short:"s" help:"Start date (YYYY-MM-DD)."`
	Budget    float64 `short:"b" help:"Budget in dollars." default:"0"`
	Notes     string  `short:"n" help:"Free-form notes."`
}

func (c *ProjectAddCmd) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("project name is required")
	}
	return validateDate(c.StartDate)
}

func (c *ProjectAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	projects, err := ctx.Store.GetProjects()
	if err != nil {
		return err
	}

	now := nowStamp()
	project := models.Project{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Client:    c.Client,
		Address:   c.Address,
		Status:    models.ProjectPlanning,
		Type:      c.Type,
		SqFootage: c.SqFootage,
		StartDate: c.StartDate,
		Budget:    c.Budget,
		Notes:     c.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ctx.Store.SaveProjects(append(projects, project)); err != nil {
		return err
	}

	fmt.Printf("Added project: %s (ID: %s)\n", project.Name, shortID(project.ID))
	return nil
}

type ProjectListCmd struct {
	Status string `short:"s" help:"Filter by status (planning|active|on-hold|completed|archived)."`
}

func (c *ProjectListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	projects, err := ctx.Store.GetProjects()
	if err != nil {
		return err
	}

	var filter models.ProjectStatus
	if c.Status != "" {
		filter, err = parseProjectStatus(c.Status)
		if err != nil {
			return err
		}
	}

	shown := 0
	for _, p := range projects {
		if filter != "" && p.Status != filter {
			continue
		}
		shown++
		fmt.Printf("%s  [%-9s] %-36s %s\n", shortID(p.ID), p.Status, p.Name, p.Client)
		fmt.Printf("          %s of %s spent", report.Currency(p.Spent), report.Currency(p.Budget))
		if p.Spent > p.Budget {
			fmt.Print("  (over budget)")
		}
		fmt.Println()
	}
	if shown == 0 {
		fmt.Println("No projects found")
	}
	return nil
}

type ProjectEditCmd struct {
	ID     string   `arg:"" help:"Project ID (or unique prefix)."`
	Name   *string  `help:"New name."`
	Client *string  `help:"New client."`
	Status *string  `help:"New status (planning|active|on-hold|completed|archived)."`
	Budget *float64 `help:"New budget."`
	Spent  *float64 `help:"New spent amount."`
	End    *string  `help:"End date (YYYY-MM-DD)."`
	Notes  *string  `help:"New notes."`
}

func (c *ProjectEditCmd) Run(ctx *Context) error {
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
	id, err := matchID(c.ID, ids)
	if err != nil {
		return err
	}

	for i := range projects {
		if projects[i].ID != id {
			continue
		}
		if c.Name != nil {
			projects[i].Name = *c.Name
		}
		if c.Client != nil {
			projects[i].Client = *c.Client
		}
		if c.Status != nil {
			status, err := parseProjectStatus(*c.Status)
			if err != nil {
				return err
			}
			projects[i].Status = status
		}
		if c.Budget != nil {
			projects[i].Budget = *c.Budget
		}
		if c.Spent != nil {
			projects[i].Spent = *c.Spent
		}
		if c.End != nil {
			if err := validateDate(*c.End); err != nil {
				return err
			}
			projects[i].EndDate = *c.End
		}
		if c.Notes != nil {
			projects[i].Notes = *c.Notes
		}
		projects[i].UpdatedAt = nowStamp()

		if err := ctx.Store.SaveProjects(projects); err != nil {
			return err
		}
		fmt.Printf("Updated project: %s\n", projects[i].Name)
		return nil
	}

	return fmt.Errorf("project not found: %s", id)
}

type ProjectDeleteCmd struct {
	ID    string `arg:"" help:"Project ID (or unique prefix)."`
	Force bool   `short:"f" help:"Skip confirmation."`
}

// Run deletes the project record only. Punch items and estimates that
// reference it are left in place; their displays fall back to
// "Unknown Project".
func (c *ProjectDeleteCmd) Run(ctx *Context) error {
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
	id, err := matchID(c.ID, ids)
	if err != nil {
		return err
	}

	name := models.ProjectName(id, projects)
	if !c.Force {
		ok, err := confirm(fmt.Sprintf("Delete project %q? This cannot be undone.", name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if err := ctx.Store.SaveProjects(kept); err != nil {
		return err
	}

	fmt.Printf("Deleted project: %s\n", name)
	return nil
}
