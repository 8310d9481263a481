package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/report"
)

type SubAddCmd struct {
	Name    string  `arg:"" help:"Contact name."`
	Company string  `short:"c" help:"Company name."`
	Trade   string  `short:"t" help:"Trade." required:""`
	Phone   string  `short:"p" help:"Phone number."`
	Email   string  `short:"e" help:"Email address."`
	Rate    float64 `short:"r" help:"Hourly rate in dollars." default:"0"`
	Notes   string  `short:"n" help:"Free-form notes."`
}

func (c *SubAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	trade, err := parseTrade(c.Trade)
	if err != nil {
		return err
	}

	subs, err := ctx.Store.GetSubs()
	if err != nil {
		return err
	}

	sub := models.SubContractor{
		ID:      uuid.New().String(),
		Name:    c.Name,
		Company: c.Company,
		Trade:   trade,
		Phone:   c.Phone,
		Email:   c.Email,
		Rate:    c.Rate,
		Notes:   c.Notes,
	}

	if err := ctx.Store.SaveSubs(append(subs, sub)); err != nil {
		return err
	}

	fmt.Printf("Added sub: %s (ID: %s)\n", sub.Name, shortID(sub.ID))
	return nil
}

type SubListCmd struct {
	Trade string `short:"t" help:"Filter by trade."`
}

func (c *SubListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	subs, err := ctx.Store.GetSubs()
	if err != nil {
		return err
	}

	var filter models.Trade
	if c.Trade != "" {
		if filter, err = parseTrade(c.Trade); err != nil {
			return err
		}
	}

	shown := 0
	for _, sub := range subs {
		if filter != "" && sub.Trade != filter {
			continue
		}
		shown++
		fmt.Printf("%s  %-20s %-24s %-12s %s/hr  %.1f★  %d jobs\n",
			shortID(sub.ID), sub.Name, sub.Company, sub.Trade.Label(),
			report.Currency(sub.Rate), sub.Rating, sub.CompletedJobs)
	}
	if shown == 0 {
		fmt.Println("No subs found")
	}
	return nil
}

type SubEditCmd struct {
	ID      string   `arg:"" help:"Sub ID (or unique prefix)."`
	Name    *string  `help:"New contact name."`
	Company *string  `help:"New company name."`
	Trade   *string  `help:"New trade."`
	Phone   *string  `help:"New phone number."`
	Email   *string  `help:"New email."`
	Rate    *float64 `help:"New hourly rate."`
	Rating  *float64 `help:"New rating (0-5)."`
	Jobs    *int     `help:"Completed jobs counter."`
	Notes   *string  `help:"New notes."`
}

func (c *SubEditCmd) Validate() error {
	if c.Rating != nil && (*c.Rating < 0 || *c.Rating > 5) {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	return nil
}

func (c *SubEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	subs, err := ctx.Store.GetSubs()
	if err != nil {
		return err
	}

	ids := make([]string, len(subs))
	for i, s := range subs {
		ids[i] = s.ID
	}
	id, err := matchID(c.ID, ids)
	if err != nil {
		return err
	}

	for i := range subs {
		if subs[i].ID != id {
			continue
		}
		if c.Name != nil {
			subs[i].Name = *c.Name
		}
		if c.Company != nil {
			subs[i].Company = *c.Company
		}
		if c.Trade != nil {
			trade, err := parseTrade(*c.Trade)
			if err != nil {
				return err
			}
			subs[i].Trade = trade
		}
		if c.Phone != nil {
			subs[i].Phone = *c.Phone
		}
		if c.Email != nil {
			subs[i].Email = *c.Email
		}
		if c.Rate != nil {
			subs[i].Rate = *c.Rate
		}
		if c.Rating != nil {
			subs[i].Rating = *c.Rating
		}
		if c.Jobs != nil {
			subs[i].CompletedJobs = *c.Jobs
		}
		if c.Notes != nil {
			subs[i].Notes = *c.Notes
		}

		if err := ctx.Store.SaveSubs(subs); err != nil {
			return err
		}
		fmt.Printf("Updated sub: %s\n", subs[i].Name)
		return nil
	}

	return fmt.Errorf("sub not found: %s", id)
}

type SubDeleteCmd struct {
	ID    string `arg:"" help:"Sub ID (or unique prefix)."`
	Force bool   `short:"f" help:"Skip confirmation."`
}

func (c *SubDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	subs, err := ctx.Store.GetSubs()
	if err != nil {
		return err
	}

	ids := make([]string, len(subs))
	for i, s := range subs {
		ids[i] = s.ID
	}
	id, err := matchID(c.ID, ids)
	if err != nil {
		return err
	}

	name := models.SubName(id, subs)
	if !c.Force {
		ok, err := confirm(fmt.Sprintf("Delete sub %q? Assigned punch items become unassigned in display only.", name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	kept := subs[:0]
	for _, s := range subs {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if err := ctx.Store.SaveSubs(kept); err != nil {
		return err
	}

	fmt.Printf("Deleted sub: %s\n", name)
	return nil
}
