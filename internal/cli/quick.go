package cli

import (
	"fmt"

	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/pricing"
	"github.com/rzacher/sitebook/internal/report"
)

type QuickCmd struct {
	Sqft   float64  `arg:"" help:"Square footage."`
	Trades []string `arg:"" help:"Trades to include."`
}

func (c *QuickCmd) Run(ctx *Context) error {
	trades := make([]models.Trade, 0, len(c.Trades))
	for _, s := range c.Trades {
		t, err := parseTrade(s)
		if err != nil {
			return err
		}
		trades = append(trades, t)
	}

	fmt.Printf("Quick estimate for %.0f sq ft\n\n", c.Sqft)
	for _, t := range trades {
		per := models.QuickRateFactors[t]
		fmt.Printf("%-14s %6s/sqft  %12s\n", t.Label(),
			report.Currency(per), report.Currency(per*c.Sqft))
	}
	fmt.Printf("\nBallpark total: %s\n", report.Currency(pricing.QuickEstimate(c.Sqft, trades)))
	fmt.Println("Rough figure only; build a full estimate before quoting.")
	return nil
}
