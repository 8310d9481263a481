package cli

import (
	"fmt"

	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/report"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" default:"1" help:"Show the company profile."`
	Set  SettingsSetCmd  `cmd:"" help:"Update company profile fields."`
	Rate SettingsRateCmd `cmd:"" help:"Set the default labor rate for a trade."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("Company: %s\n", settings.CompanyName)
	fmt.Printf("Owner:   %s\n", settings.OwnerName)
	fmt.Printf("Phone:   %s\n", settings.Phone)
	fmt.Printf("Email:   %s\n", settings.Email)
	fmt.Printf("Address: %s\n", settings.Address)
	fmt.Printf("Theme:   %s\n\n", settings.Theme)

	fmt.Println("Default labor rates:")
	for _, t := range models.AllTrades {
		rate, ok := settings.DefaultLaborRates[t]
		if !ok {
			rate = models.DefaultLaborRates[t]
		}
		fmt.Printf("  %-14s %s/hr\n", t.Label(), report.Currency(rate))
	}
	return nil
}

type SettingsSetCmd struct {
	Company *string `help:"Company name."`
	Owner   *string `help:"Owner name."`
	Phone   *string `help:"Phone number."`
	Email   *string `help:"Email address."`
	Address *string `help:"Mailing address."`
	Theme   *string `help:"Theme (light|dark|system)."`
}

func (c *SettingsSetCmd) Validate() error {
	if c.Theme != nil {
		switch *c.Theme {
		case "light", "dark", "system":
		default:
			return fmt.Errorf("invalid theme %q (light|dark|system)", *c.Theme)
		}
	}
	return nil
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.Company != nil {
		settings.CompanyName = *c.Company
	}
	if c.Owner != nil {
		settings.OwnerName = *c.Owner
	}
	if c.Phone != nil {
		settings.Phone = *c.Phone
	}
	if c.Email != nil {
		settings.Email = *c.Email
	}
	if c.Address != nil {
		settings.Address = *c.Address
	}
	if c.Theme != nil {
		settings.Theme = *c.Theme
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Println("Settings updated")
	return nil
}

type SettingsRateCmd struct {
	Trade string  `arg:"" help:"Trade."`
	Rate  float64 `arg:"" help:"Hourly rate in dollars."`
}

func (c *SettingsRateCmd) Validate() error {
	if c.Rate < 0 {
		return fmt.Errorf("rate cannot be negative")
	}
	return nil
}

func (c *SettingsRateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	trade, err := parseTrade(c.Trade)
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if settings.DefaultLaborRates == nil {
		settings.DefaultLaborRates = make(map[models.Trade]float64)
	}
	settings.DefaultLaborRates[trade] = c.Rate

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Default %s rate is now %s/hr\n", trade.Label(), report.Currency(c.Rate))
	fmt.Println("Existing line items keep their rates; new items use the new default.")
	return nil
}
