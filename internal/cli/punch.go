package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rzacher/sitebook/internal/constants"
	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/punch"
)

type PunchAddCmd struct {
	Description string `arg:"" help:"What needs fixing."`
	Project     string `short:"p" help:"Project ID (or unique prefix)." required:""`
	Unit        string `short:"u" help:"Unit label (e.g. 'Unit 4B')."`
	Area        string `short:"a" help:"Area label (e.g. 'Kitchen')."`
	Priority    string `short:"P" help:"Priority (low|medium|high|urgent)." default:"medium"`
	Trade       string `short:"t" help:"Trade." default:"general"`
	AssignTo    string `short:"s" help:"Sub ID (or unique prefix) to assign."`
	Due         string `short:"d" help:"Due date (YYYY-MM-DD)."`
}

func (c *PunchAddCmd) Validate() error {
	return validateDate(c.Due)
}

func (c *PunchAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	priority, err := parsePriority(c.Priority)
	if err != nil {
		return err
	}
	trade, err := parseTrade(c.Trade)
	if err != nil {
		return err
	}

	projects, err := ctx.Store.GetProjects()
	if err != nil {
		return err
	}
	projectIDs := make([]string, len(projects))
	for i, p := range projects {
		projectIDs[i] = p.ID
	}
	projectID, err := matchID(c.Project, projectIDs)
	if err != nil {
		return err
	}

	assignedTo := ""
	if c.AssignTo != "" {
		subs, err := ctx.Store.GetSubs()
		if err != nil {
			return err
		}
		subIDs := make([]string, len(subs))
		for i, s := range subs {
			subIDs[i] = s.ID
		}
		assignedTo, err = matchID(c.AssignTo, subIDs)
		if err != nil {
			return err
		}
	}

	items, err := ctx.Store.GetPunchItems()
	if err != nil {
		return err
	}

	now := nowStamp()
	item := models.PunchItem{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Unit:        c.Unit,
		Area:        c.Area,
		Description: c.Description,
		Status:      models.PunchOpen,
		Priority:    priority,
		Trade:       trade,
		AssignedTo:  assignedTo,
		DueDate:     c.Due,
		Photos:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := ctx.Store.SavePunchItems(append(items, item)); err != nil {
		return err
	}

	fmt.Printf("Added punch item: %s (ID: %s)\n", item.Description, shortID(item.ID))
	return nil
}

type PunchListCmd struct {
	Project  string `short:"p" help:"Filter by project ID (or unique prefix)."`
	Status   string `short:"s" help:"Filter by status (open|in-progress|resolved|verified)."`
	Priority string `short:"P" help:"Filter by priority (low|medium|high|urgent)."`
	Trade    string `short:"t" help:"Filter by trade."`
	Search   string `short:"q" help:"Search description, unit and area."`
}

func (c *PunchListCmd) Run(ctx *Context) error {
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

	var f punch.Filter
	if c.Project != "" {
		ids := make([]string, len(projects))
		for i, p := range projects {
			ids[i] = p.ID
		}
		f.ProjectID, err = matchID(c.Project, ids)
		if err != nil {
			return err
		}
	}
	if c.Status != "" {
		if f.Status, err = parsePunchStatus(c.Status); err != nil {
			return err
		}
	}
	if c.Priority != "" {
		if f.Priority, err = parsePriority(c.Priority); err != nil {
			return err
		}
	}
	if c.Trade != "" {
		if f.Trade, err = parseTrade(c.Trade); err != nil {
			return err
		}
	}
	f.Search = c.Search

	filtered := punch.Apply(items, f)
	if len(filtered) == 0 {
		fmt.Println("No punch items found")
		return nil
	}

	for _, item := range filtered {
		overdueMark := ""
		if punch.IsOverdue(item.DueDate, item.Status) {
			overdueMark = "  OVERDUE"
		}
		fmt.Printf("%s  [%-11s] %-7s %s%s\n", shortID(item.ID), item.Status, item.Priority, item.Description, overdueMark)
		detail := models.ProjectName(item.ProjectID, projects)
		if item.Unit != "" || item.Area != "" {
			detail += "  " + item.Unit + " " + item.Area
		}
		if item.DueDate != "" {
			detail += "  due " + item.DueDate
		}
		detail += "  " + models.SubName(item.AssignedTo, subs)
		fmt.Printf("          %s\n", detail)
	}
	return nil
}

type PunchAdvanceCmd struct {
	ID string `arg:"" help:"Punch item ID (or unique prefix)."`
}

// Run moves an item one step forward in the workflow. Advancing a
// verified item reports the terminal state rather than erroring.
func (c *PunchAdvanceCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	items, err := ctx.Store.GetPunchItems()
	if err != nil {
		return err
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	id, err := matchID(c.ID, ids)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		if _, ok := punch.NextStatus(items[i].Status); !ok {
			fmt.Printf("Punch item is already %s (terminal)\n", items[i].Status.Label())
			return nil
		}
		items[i] = punch.Advance(items[i])
		if err := ctx.Store.SavePunchItems(items); err != nil {
			return err
		}
		fmt.Printf("Advanced to %s: %s\n", items[i].Status.Label(), items[i].Description)
		return nil
	}

	return fmt.Errorf("punch item not found: %s", id)
}

type PunchEditCmd struct {
	ID          string  `arg:"" help:"Punch item ID (or unique prefix)."`
	Description *string `help:"New description."`
	Status      *string `help:"Set status directly (open|in-progress|resolved|verified). Bypasses the workflow."`
	Priority    *string `help:"New priority."`
	Trade       *string `help:"New trade."`
	AssignTo    *string `help:"Sub ID, empty string to unassign."`
	Due         *string `help:"New due date (YYYY-MM-DD), empty string to clear."`
	Unit        *string `help:"New unit label."`
	Area        *string `help:"New area label."`
}

func (c *PunchEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	items, err := ctx.Store.GetPunchItems()
	if err != nil {
		return err
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	id, err := matchID(c.ID, ids)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		if c.Description != nil {
			items[i].Description = *c.Description
		}
		if c.Status != nil {
			status, err := parsePunchStatus(*c.Status)
			if err != nil {
				return err
			}
			// Direct set, not Advance: the edit path may skip or
			// reverse workflow steps on purpose.
			items[i] = punch.SetStatus(items[i], status)
		}
		if c.Priority != nil {
			priority, err := parsePriority(*c.Priority)
			if err != nil {
				return err
			}
			items[i].Priority = priority
		}
		if c.Trade != nil {
			trade, err := parseTrade(*c.Trade)
			if err != nil {
				return err
			}
			items[i].Trade = trade
		}
		if c.AssignTo != nil {
			items[i].AssignedTo = *c.AssignTo
		}
		if c.Due != nil {
			if err := validateDate(*c.Due); err != nil {
				return err
			}
			items[i].DueDate = *c.Due
		}
		if c.Unit != nil {
			items[i].Unit = *c.Unit
		}
		if c.Area != nil {
			items[i].Area = *c.Area
		}
		items[i].UpdatedAt = nowStamp()

		if err := ctx.Store.SavePunchItems(items); err != nil {
			return err
		}
		fmt.Printf("Updated punch item: %s\n", items[i].Description)
		return nil
	}

	return fmt.Errorf("punch item not found: %s", id)
}

type PunchDeleteCmd struct {
	ID    string `arg:"" help:"Punch item ID (or unique prefix)."`
	Force bool   `short:"f" help:"Skip confirmation."`
}

func (c *PunchDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	items, err := ctx.Store.GetPunchItems()
	if err != nil {
		return err
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	id, err := matchID(c.ID, ids)
	if err != nil {
		return err
	}

	var desc string
	kept := items[:0]
	for _, item := range items {
		if item.ID == id {
			desc = item.Description
			continue
		}
		kept = append(kept, item)
	}

	if !c.Force {
		ok, err := confirm(fmt.Sprintf("Delete punch item %q?", desc))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Store.SavePunchItems(kept); err != nil {
		return err
	}

	fmt.Printf("Deleted punch item: %s\n", desc)
	return nil
}

type PunchAttentionCmd struct {
	Limit int `short:"n" help:"Maximum items to show." default:"5"`
}

func (c *PunchAttentionCmd) Run(ctx *Context) error {
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

	limit := c.Limit
	if limit == 0 {
		limit = constants.AttentionLimit
	}

	needs := punch.AttentionSet(items, limit)
	if len(needs) == 0 {
		fmt.Println("Nothing needs attention")
		return nil
	}

	fmt.Println("Needs attention:")
	for _, item := range needs {
		reason := string(item.Priority)
		if punch.IsOverdue(item.DueDate, item.Status) {
			reason += ", overdue"
		}
		fmt.Printf("  %s  %-40s %s (%s)\n", shortID(item.ID),
			item.Description, models.ProjectName(item.ProjectID, projects), reason)
	}
	return nil
}
