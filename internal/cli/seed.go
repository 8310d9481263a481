package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rzacher/sitebook/internal/models"
)

type SeedCmd struct{}

// Run loads sample data so a fresh install has something to look at.
// It refuses to touch a store that already has projects.
func (c *SeedCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	existing, err := ctx.Store.GetProjects()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("store already has %d projects, refusing to seed", len(existing))
	}

	now := nowStamp()

	subs := []models.SubContractor{
		{ID: uuid.New().String(), Name: "Mike Torres", Company: "Torres Electric", Trade: models.TradeElectrical, Phone: "(555) 234-5678", Email: "mike@torreselectric.com", Rate: 85, Rating: 4.8, CompletedJobs: 23, AvgResponseTime: "2h", Notes: "Very reliable, licensed master electrician"},
		{ID: uuid.New().String(), Name: "Dave Plumbing", Company: "Dave's Plumbing Co", Trade: models.TradePlumbing, Phone: "(555) 345-6789", Email: "dave@davesplumbing.com", Rate: 80, Rating: 4.5, CompletedJobs: 18, AvgResponseTime: "4h", Notes: "Good work, sometimes runs late"},
		{ID: uuid.New().String(), Name: "Sarah Kim", Company: "Kim HVAC Solutions", Trade: models.TradeHVAC, Phone: "(555) 456-7890", Email: "sarah@kimhvac.com", Rate: 90, Rating: 4.9, CompletedJobs: 31, AvgResponseTime: "1h", Notes: "Top tier, handles commercial and residential"},
		{ID: uuid.New().String(), Name: "Carlos Vega", Company: "Vega Drywall", Trade: models.TradeDrywall, Phone: "(555) 567-8901", Email: "carlos@vegadrywall.com", Rate: 50, Rating: 4.3, CompletedJobs: 42, AvgResponseTime: "3h", Notes: "Fast, clean finishes"},
		{ID: uuid.New().String(), Name: "Jim Lawson", Company: "Lawson Painting", Trade: models.TradePainting, Phone: "(555) 678-9012", Email: "jim@lawsonpainting.com", Rate: 45, Rating: 4.6, CompletedJobs: 35, AvgResponseTime: "2h", Notes: "Great color matching, detail oriented"},
	}
	if err := ctx.Store.SaveSubs(subs); err != nil {
		return err
	}

	projects := []models.Project{
		{ID: uuid.New().String(), Name: "Riverside Apartments Renovation", Client: "Riverside Property Group", Address: "450 River Rd, Suite 200", Status: models.ProjectActive, Type: "Renovation", SqFootage: 12000, StartDate: "2026-01-15", Budget: 285000, Spent: 142000, Notes: "24-unit complex, Phase 1 of 3", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Oak Street Kitchen Remodel", Client: "Jennifer & Mark Thompson", Address: "822 Oak Street", Status: models.ProjectActive, Type: "Remodel", SqFootage: 350, StartDate: "2026-02-01", Budget: 45000, Spent: 18000, Notes: "Full kitchen gut and rebuild, client wants modern farmhouse style", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Downtown Office Build-Out", Client: "TechStart Inc", Address: "100 Main St, 3rd Floor", Status: models.ProjectPlanning, Type: "Commercial Build-Out", SqFootage: 5000, StartDate: "2026-03-01", Budget: 180000, Spent: 0, Notes: "Open floor plan with 4 private offices, server room needs dedicated HVAC", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Maple Heights Bathroom", Client: "Robert Chen", Address: "1544 Maple Heights Dr", Status: models.ProjectCompleted, Type: "Remodel", SqFootage: 120, StartDate: "2025-11-01", EndDate: "2026-01-10", Budget: 22000, Spent: 21200, Notes: "Master bath remodel, walk-in shower conversion", CreatedAt: now, UpdatedAt: now},
	}
	if err := ctx.Store.SaveProjects(projects); err != nil {
		return err
	}

	punchItems := []models.PunchItem{
		{ID: uuid.New().String(), ProjectID: projects[0].ID, Unit: "Unit 4B", Area: "Kitchen", Description: "Cabinet doors not aligned properly", Status: models.PunchOpen, Priority: models.PriorityMedium, Trade: models.TradeGeneral, AssignedTo: subs[3].ID, DueDate: "2026-02-20", Photos: []string{}, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), ProjectID: projects[0].ID, Unit: "Unit 4B", Area: "Bathroom", Description: "Shower valve leaking behind wall", Status: models.PunchInProgress, Priority: models.PriorityUrgent, Trade: models.TradePlumbing, AssignedTo: subs[1].ID, DueDate: "2026-02-16", Photos: []string{}, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), ProjectID: projects[0].ID, Unit: "Unit 5A", Area: "Living Room", Description: "Outlet not wired, no power on east wall", Status: models.PunchOpen, Priority: models.PriorityHigh, Trade: models.TradeElectrical, AssignedTo: subs[0].ID, DueDate: "2026-02-18", Photos: []string{}, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), ProjectID: projects[1].ID, Unit: "Main", Area: "Kitchen", Description: "Backsplash grout cracking near window", Status: models.PunchOpen, Priority: models.PriorityMedium, Trade: models.TradeGeneral, DueDate: "2026-02-25", Photos: []string{}, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), ProjectID: projects[0].ID, Unit: "Unit 3A", Area: "Hallway", Description: "Paint touch-up needed at drywall seams", Status: models.PunchResolved, Priority: models.PriorityLow, Trade: models.TradePainting, AssignedTo: subs[4].ID, DueDate: "2026-02-15", Photos: []string{}, CreatedAt: now, UpdatedAt: now},
	}
	if err := ctx.Store.SavePunchItems(punchItems); err != nil {
		return err
	}

	estimates := []models.Estimate{
		{
			ID: uuid.New().String(), ClientName: "TechStart Inc", ClientEmail: "cfo@techstart.com", ProjectType: "Commercial Build-Out", SqFootage: 5000,
			ScopeItems: []string{"Framing", "Electrical", "HVAC", "Drywall", "Painting", "Flooring"},
			LineItems: []models.EstimateLineItem{
				{ID: uuid.New().String(), Description: "Metal stud framing", Trade: models.TradeFraming, ManHours: 120, LaborRate: 65, MaterialCost: 8500, Quantity: 1},
				{ID: uuid.New().String(), Description: "Electrical rough-in & finish", Trade: models.TradeElectrical, ManHours: 80, LaborRate: 85, MaterialCost: 12000, Quantity: 1},
				{ID: uuid.New().String(), Description: "HVAC ductwork & units", Trade: models.TradeHVAC, ManHours: 60, LaborRate: 90, MaterialCost: 25000, Quantity: 1},
				{ID: uuid.New().String(), Description: "Drywall & finishing", Trade: models.TradeDrywall, ManHours: 100, LaborRate: 50, MaterialCost: 6000, Quantity: 1},
				{ID: uuid.New().String(), Description: "Interior painting", Trade: models.TradePainting, ManHours: 60, LaborRate: 45, MaterialCost: 3500, Quantity: 1},
				{ID: uuid.New().String(), Description: "Commercial flooring", Trade: models.TradeFlooring, ManHours: 40, LaborRate: 60, MaterialCost: 15000, Quantity: 1},
			},
			Notes:  "Estimate for full 3rd floor build-out. Does not include furniture or IT infrastructure.",
			Status: models.EstimateSent, CreatedAt: now, UpdatedAt: now,
		},
	}
	if err := ctx.Store.SaveEstimates(estimates); err != nil {
		return err
	}

	fmt.Printf("Seeded %d subs, %d projects, %d punch items, %d estimates\n",
		len(subs), len(projects), len(punchItems), len(estimates))
	return nil
}
