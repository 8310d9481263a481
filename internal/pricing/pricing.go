// Package pricing computes estimate totals. Every surface that shows a
// total (editor, signing flow, print view, reports) goes through these
// functions so the same data always yields the same number. Amounts are
// summed first and rounded only at display formatting.
package pricing

import "github.com/rzacher/sitebook/internal/models"

// LineTotal is (manHours × laborRate + materialCost) × quantity.
func LineTotal(li models.EstimateLineItem) float64 {
	return (li.ManHours*li.LaborRate + li.MaterialCost) * li.Quantity
}

// LaborSubtotal sums the labor portion of every line item.
func LaborSubtotal(items []models.EstimateLineItem) float64 {
	var sum float64
	for _, li := range items {
		sum += li.ManHours * li.LaborRate * li.Quantity
	}
	return sum
}

// MaterialSubtotal sums the material portion of every line item.
func MaterialSubtotal(items []models.EstimateLineItem) float64 {
	var sum float64
	for _, li := range items {
		sum += li.MaterialCost * li.Quantity
	}
	return sum
}

// GrandTotal is LaborSubtotal + MaterialSubtotal, and equals the sum of
// LineTotal over all items. Empty input yields 0, never an error.
func GrandTotal(items []models.EstimateLineItem) float64 {
	return LaborSubtotal(items) + MaterialSubtotal(items)
}

// DefaultRate looks up the configured hourly rate for a trade, falling
// back to the built-in table when the settings table has no entry.
func DefaultRate(trade models.Trade, rateTable map[models.Trade]float64) float64 {
	if rate, ok := rateTable[trade]; ok {
		return rate
	}
	return models.DefaultLaborRates[trade]
}

// SetTrade returns a copy of li with the trade changed and the labor
// rate reset to the new trade's default. Switching trade always resets
// the rate, overwriting any custom value; that is deliberate.
func SetTrade(li models.EstimateLineItem, trade models.Trade, rateTable map[models.Trade]float64) models.EstimateLineItem {
	li.Trade = trade
	li.LaborRate = DefaultRate(trade, rateTable)
	return li
}

// NewLineItem builds a fresh line item for a trade with the standard
// starting values: 8 man-hours at the trade's default rate, no
// materials, quantity 1.
func NewLineItem(id string, trade models.Trade, rateTable map[models.Trade]float64) models.EstimateLineItem {
	return models.EstimateLineItem{
		ID:          id,
		Description: trade.Label() + " work",
		Trade:       trade,
		ManHours:    8,
		LaborRate:   DefaultRate(trade, rateTable),
		Quantity:    1,
	}
}
