package pricing

import (
	"math"
	"testing"

	"github.com/rzacher/sitebook/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name string
		item models.EstimateLineItem
		want float64
	}{
		{
			"labor plus material times quantity",
			models.EstimateLineItem{ManHours: 10, LaborRate: 85, MaterialCost: 150, Quantity: 2},
			2000,
		},
		{
			"quantity one",
			models.EstimateLineItem{ManHours: 8, LaborRate: 50, MaterialCost: 0, Quantity: 1},
			400,
		},
		{
			"material only",
			models.EstimateLineItem{MaterialCost: 99.5, Quantity: 4},
			398,
		},
		{
			"zero quantity zeroes the line",
			models.EstimateLineItem{ManHours: 8, LaborRate: 50, MaterialCost: 100, Quantity: 0},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineTotal(tt.item); !almostEqual(got, tt.want) {
				t.Errorf("LineTotal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGrandTotal_SplitsIntoLaborAndMaterial(t *testing.T) {
	items := []models.EstimateLineItem{
		{ManHours: 10, LaborRate: 80, MaterialCost: 50, Quantity: 1},
		{ManHours: 4, LaborRate: 50, MaterialCost: 25, Quantity: 2},
	}

	labor := LaborSubtotal(items)
	material := MaterialSubtotal(items)
	grand := GrandTotal(items)

	if !almostEqual(labor, 1200) {
		t.Errorf("LaborSubtotal = %v, want 1200", labor)
	}
	if !almostEqual(material, 100) {
		t.Errorf("MaterialSubtotal = %v, want 100", material)
	}
	if !almostEqual(grand, labor+material) {
		t.Errorf("GrandTotal = %v, want labor+material = %v", grand, labor+material)
	}

	var lineSum float64
	for _, li := range items {
		lineSum += LineTotal(li)
	}
	if !almostEqual(grand, lineSum) {
		t.Errorf("GrandTotal = %v should equal the sum of line totals %v", grand, lineSum)
	}
}

func TestGrandTotal_EmptyIsZero(t *testing.T) {
	if got := GrandTotal(nil); got != 0 {
		t.Errorf("GrandTotal(nil) = %v, want 0", got)
	}
}

func TestDefaultRate_FallsBackToBuiltinTable(t *testing.T) {
	custom := map[models.Trade]float64{models.TradeElectrical: 95}

	if got := DefaultRate(models.TradeElectrical, custom); got != 95 {
		t.Errorf("configured rate = %v, want 95", got)
	}
	if got := DefaultRate(models.TradePlumbing, custom); got != models.DefaultLaborRates[models.TradePlumbing] {
		t.Errorf("fallback rate = %v, want builtin %v", got, models.DefaultLaborRates[models.TradePlumbing])
	}
	if got := DefaultRate(models.TradeHVAC, nil); got != 90 {
		t.Errorf("nil table should use the builtin rate, got %v", got)
	}
}

func TestSetTrade_ResetsRateEvenWhenCustomized(t *testing.T) {
	li := models.EstimateLineItem{Trade: models.TradeElectrical, LaborRate: 120}

	got := SetTrade(li, models.TradePainting, nil)

	if got.Trade != models.TradePainting {
		t.Fatalf("trade = %s, want painting", got.Trade)
	}
	if got.LaborRate != models.DefaultLaborRates[models.TradePainting] {
		t.Errorf("rate = %v, want the painting default %v", got.LaborRate, models.DefaultLaborRates[models.TradePainting])
	}
}

func TestNewLineItem_StartingValues(t *testing.T) {
	li := NewLineItem("li-1", models.TradeDrywall, nil)

	if li.ID != "li-1" {
		t.Errorf("ID = %s", li.ID)
	}
	if li.Description != "Drywall work" {
		t.Errorf("Description = %q, want \"Drywall work\"", li.Description)
	}
	if li.ManHours != 8 || li.Quantity != 1 || li.MaterialCost != 0 {
		t.Errorf("starting values = %v hours, %v qty, %v material", li.ManHours, li.Quantity, li.MaterialCost)
	}
	if li.LaborRate != models.DefaultLaborRates[models.TradeDrywall] {
		t.Errorf("rate = %v, want drywall default", li.LaborRate)
	}
}

func TestQuickEstimate(t *testing.T) {
	tests := []struct {
		name   string
		sqft   float64
		trades []models.Trade
		want   float64
	}{
		{"single trade", 1000, []models.Trade{models.TradeElectrical}, 6000},
		{"two trades sum", 1000, []models.Trade{models.TradeElectrical, models.TradePainting}, 8500},
		{"zero square footage", 0, []models.Trade{models.TradeElectrical}, 0},
		{"negative square footage", -50, []models.Trade{models.TradeElectrical}, 0},
		{"no trades", 1000, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuickEstimate(tt.sqft, tt.trades); !almostEqual(got, tt.want) {
				t.Errorf("QuickEstimate(%v, %v) = %v, want %v", tt.sqft, tt.trades, got, tt.want)
			}
		})
	}
}
