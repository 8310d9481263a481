package pricing

import "github.com/rzacher/sitebook/internal/models"

// QuickEstimate produces a rough ballpark number for a square footage
// and a set of trades, using the fixed per-square-foot factor table.
// Purely advisory; nothing is persisted and no line items are built.
func QuickEstimate(sqFootage float64, trades []models.Trade) float64 {
	if sqFootage <= 0 || len(trades) == 0 {
		return 0
	}
	var total float64
	for _, t := range trades {
		total += sqFootage * models.QuickRateFactors[t]
	}
	return total
}
