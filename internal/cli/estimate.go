package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/pricing"
	"github.com/rzacher/sitebook/internal/report"
)

type EstimateAddCmd struct {
	Client  string   `arg:"" help:"Client name."`
	Email   string   `short:"e" help:"Client email."`
	Project string   `short:"p" help:"Project ID (or unique prefix) to link."`
	Type    string   `short:"t" help:"Project type." default:"Renovation"`
	Sqft    float64  `help:"Square footage." default:"0"`
	Scope   []string `help:"Scope items (repeatable)."`
	Notes   string   `short:"n" help:"Free-form notes."`
}

func (c *EstimateAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var projectID string
	if c.Project != "" {
		projects, err := ctx.Store.GetProjects()
		if err != nil {
			return err
		}
		ids := make([]string, len(projects))
		for i, p := range projects {
			ids[i] = p.ID
		}
		if projectID, err = matchID(c.Project, ids); err != nil {
			return err
		}
	}

	estimates, err := ctx.Store.GetEstimates()
	if err != nil {
		return err
	}

	now := nowStamp()
	est := models.Estimate{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		ClientName:  c.Client,
		ClientEmail: c.Email,
		ProjectType: c.Type,
		SqFootage:   c.Sqft,
		ScopeItems:  c.Scope,
		LineItems:   []models.EstimateLineItem{},
		Notes:       c.Notes,
		Status:      models.EstimateDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := ctx.Store.SaveEstimates(append(estimates, est)); err != nil {
		return err
	}

	fmt.Printf("Added estimate for %s (ID: %s)\n", est.ClientName, shortID(est.ID))
	return nil
}

type EstimateListCmd struct {
	Status string `short:"s" help:"Filter by status (draft|sent|approved|rejected)."`
}

func (c *EstimateListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	estimates, err := ctx.Store.GetEstimates()
	if err != nil {
		return err
	}
	projects, err := ctx.Store.GetProjects()
	if err != nil {
		return err
	}

	var filter models.EstimateStatus
	if c.Status != "" {
		if filter, err = parseEstimateStatus(c.Status); err != nil {
			return err
		}
	}

	shown := 0
	for _, e := range estimates {
		if filter != "" && e.Status != filter {
			continue
		}
		shown++
		project := ""
		if e.ProjectID != "" {
			project = models.ProjectName(e.ProjectID, projects)
		}
		fmt.Printf("%s  %-20s %-10s %12s  %s\n",
			shortID(e.ID), e.ClientName, e.Status,
			report.Currency(pricing.GrandTotal(e.LineItems)), project)
	}
	if shown == 0 {
		fmt.Println("No estimates found")
	}
	return nil
}

type EstimateShowCmd struct {
	ID string `arg:"" help:"Estimate ID (or unique prefix)."`
}

func (c *EstimateShowCmd) Run(ctx *Context) error {
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

type EstimateStatusCmd struct {
	ID     string `arg:"" help:"Estimate ID (or unique prefix)."`
	Status string `arg:"" help:"New status (draft|sent|approved|rejected)."`
}

func (c *EstimateStatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	status, err := parseEstimateStatus(c.Status)
	if err != nil {
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

	est.Status = status
	est.UpdatedAt = nowStamp()

	if err := ctx.Store.SaveEstimates(estimates); err != nil {
		return err
	}

	fmt.Printf("Estimate for %s is now %s\n", est.ClientName, status)
	return nil
}

type EstimateEditCmd struct {
	ID     string   `arg:"" help:"Estimate ID (or unique prefix)."`
	Client *string  `help:"New client name."`
	Email  *string  `help:"New client email."`
	Type   *string  `help:"New project type."`
	Sqft   *float64 `help:"New square footage."`
	Scope  []string `help:"Replace scope items (repeatable)."`
	Notes  *string  `help:"New notes."`
}

func (c *EstimateEditCmd) Run(ctx *Context) error {
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

	if c.Client != nil {
		est.ClientName = *c.Client
	}
	if c.Email != nil {
		est.ClientEmail = *c.Email
	}
	if c.Type != nil {
		est.ProjectType = *c.Type
	}
	if c.Sqft != nil {
		est.SqFootage = *c.Sqft
	}
	if len(c.Scope) > 0 {
		est.ScopeItems = c.Scope
	}
	if c.Notes != nil {
		est.Notes = *c.Notes
	}
	est.UpdatedAt = nowStamp()

	if err := ctx.Store.SaveEstimates(estimates); err != nil {
		return err
	}

	fmt.Printf("Updated estimate for %s\n", est.ClientName)
	return nil
}

type EstimateDeleteCmd struct {
	ID    string `arg:"" help:"Estimate ID (or unique prefix)."`
	Force bool   `short:"f" help:"Skip confirmation."`
}

func (c *EstimateDeleteCmd) Run(ctx *Context) error {
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

	if !c.Force {
		ok, err := confirm(fmt.Sprintf("Delete estimate for %q? Signature records are kept.", est.ClientName))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	kept := estimates[:0]
	for _, e := range estimates {
		if e.ID != est.ID {
			kept = append(kept, e)
		}
	}
	if err := ctx.Store.SaveEstimates(kept); err != nil {
		return err
	}

	fmt.Printf("Deleted estimate for %s\n", est.ClientName)
	return nil
}

type ItemAddCmd struct {
	Estimate    string  `arg:"" help:"Estimate ID (or unique prefix)."`
	Trade       string  `arg:"" help:"Trade for the new line item."`
	Description string  `short:"d" help:"Line item description (defaults to trade name)."`
	Hours       float64 `help:"Man-hours." default:"-1"`
	Rate        float64 `help:"Labor rate in dollars per hour." default:"-1"`
	Material    float64 `short:"m" help:"Material unit cost." default:"0"`
	Quantity    float64 `short:"q" help:"Quantity." default:"1"`
}

func (c *ItemAddCmd) Validate() error {
	if c.Quantity <= 0 {
		return fmt.Errorf("quantity must be greater than zero")
	}
	return nil
}

func (c *ItemAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	trade, err := parseTrade(c.Trade)
	if err != nil {
		return err
	}

	estimates, err := ctx.Store.GetEstimates()
	if err != nil {
		return err
	}

	est, err := findEstimate(c.Estimate, estimates)
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	li := pricing.NewLineItem(uuid.New().String(), trade, settings.DefaultLaborRates)
	if c.Description != "" {
		li.Description = c.Description
	}
	if c.Hours >= 0 {
		li.ManHours = c.Hours
	}
	if c.Rate >= 0 {
		li.LaborRate = c.Rate
	}
	li.MaterialCost = c.Material
	li.Quantity = c.Quantity

	est.LineItems = append(est.LineItems, li)
	est.UpdatedAt = nowStamp()

	if err := ctx.Store.SaveEstimates(estimates); err != nil {
		return err
	}

	fmt.Printf("Added line item %s (%s)\n", li.Description, report.Currency(pricing.LineTotal(li)))
	fmt.Printf("Estimate total: %s\n", report.Currency(pricing.GrandTotal(est.LineItems)))
	return nil
}

type ItemEditCmd struct {
	Estimate    string   `arg:"" help:"Estimate ID (or unique prefix)."`
	Item        string   `arg:"" help:"Line item ID (or unique prefix)."`
	Description *string  `help:"New description."`
	Trade       *string  `help:"New trade. Resets the labor rate to the trade default."`
	Hours       *float64 `help:"New man-hours."`
	Rate        *float64 `help:"New labor rate."`
	Material    *float64 `help:"New material unit cost."`
	Quantity    *float64 `help:"New quantity."`
}

func (c *ItemEditCmd) Validate() error {
	if c.Quantity != nil && *c.Quantity <= 0 {
		return fmt.Errorf("quantity must be greater than zero")
	}
	return nil
}

func (c *ItemEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	estimates, err := ctx.Store.GetEstimates()
	if err != nil {
		return err
	}

	est, err := findEstimate(c.Estimate, estimates)
	if err != nil {
		return err
	}

	ids := make([]string, len(est.LineItems))
	for i, li := range est.LineItems {
		ids[i] = li.ID
	}
	itemID, err := matchID(c.Item, ids)
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	for i := range est.LineItems {
		if est.LineItems[i].ID != itemID {
			continue
		}
		if c.Description != nil {
			est.LineItems[i].Description = *c.Description
		}
		if c.Trade != nil {
			trade, err := parseTrade(*c.Trade)
			if err != nil {
				return err
			}
			// Changing trade resets the rate; an explicit --rate
			// in the same invocation wins below.
			est.LineItems[i] = pricing.SetTrade(est.LineItems[i], trade, settings.DefaultLaborRates)
		}
		if c.Hours != nil {
			est.LineItems[i].ManHours = *c.Hours
		}
		if c.Rate != nil {
			est.LineItems[i].LaborRate = *c.Rate
		}
		if c.Material != nil {
			est.LineItems[i].MaterialCost = *c.Material
		}
		if c.Quantity != nil {
			est.LineItems[i].Quantity = *c.Quantity
		}
		est.UpdatedAt = nowStamp()

		if err := ctx.Store.SaveEstimates(estimates); err != nil {
			return err
		}
		fmt.Printf("Updated line item %s (%s)\n",
			est.LineItems[i].Description, report.Currency(pricing.LineTotal(est.LineItems[i])))
		fmt.Printf("Estimate total: %s\n", report.Currency(pricing.GrandTotal(est.LineItems)))
		return nil
	}

	return fmt.Errorf("line item not found: %s", itemID)
}

type ItemDeleteCmd struct {
	Estimate string `arg:"" help:"Estimate ID (or unique prefix)."`
	Item     string `arg:"" help:"Line item ID (or unique prefix)."`
}

func (c *ItemDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	estimates, err := ctx.Store.GetEstimates()
	if err != nil {
		return err
	}

	est, err := findEstimate(c.Estimate, estimates)
	if err != nil {
		return err
	}

	ids := make([]string, len(est.LineItems))
	for i, li := range est.LineItems {
		ids[i] = li.ID
	}
	itemID, err := matchID(c.Item, ids)
	if err != nil {
		return err
	}

	kept := est.LineItems[:0]
	var removed string
	for _, li := range est.LineItems {
		if li.ID == itemID {
			removed = li.Description
			continue
		}
		kept = append(kept, li)
	}
	est.LineItems = kept
	est.UpdatedAt = nowStamp()

	if err := ctx.Store.SaveEstimates(estimates); err != nil {
		return err
	}

	fmt.Printf("Removed line item %s\n", removed)
	fmt.Printf("Estimate total: %s\n", report.Currency(pricing.GrandTotal(est.LineItems)))
	return nil
}

// findEstimate resolves an ID or unique prefix to a pointer into the
// slice so edits write back in place.
func findEstimate(arg string, estimates []models.Estimate) (*models.Estimate, error) {
	ids := make([]string, len(estimates))
	for i, e := range estimates {
		ids[i] = e.ID
	}
	id, err := matchID(arg, ids)
	if err != nil {
		return nil, err
	}
	for i := range estimates {
		if estimates[i].ID == id {
			return &estimates[i], nil
		}
	}
	return nil, fmt.Errorf("estimate not found: %s", id)
}
