package models

// Trade is one of the fixed construction disciplines used to classify
// punch items, line items, rates and subcontractor assignments.
type Trade string

const (
	TradeGeneral     Trade = "general"
	TradeElectrical  Trade = "electrical"
	TradePlumbing    Trade = "plumbing"
	TradeHVAC        Trade = "hvac"
	TradeDrywall     Trade = "drywall"
	TradePainting    Trade = "painting"
	TradeFlooring    Trade = "flooring"
	TradeRoofing     Trade = "roofing"
	TradeFraming     Trade = "framing"
	TradeConcrete    Trade = "concrete"
	TradeLandscaping Trade = "landscaping"
)

// AllTrades lists every trade in display order.
var AllTrades = []Trade{
	TradeGeneral, TradeElectrical, TradePlumbing, TradeHVAC, TradeDrywall,
	TradePainting, TradeFlooring, TradeRoofing, TradeFraming, TradeConcrete,
	TradeLandscaping,
}

var tradeLabels = map[Trade]string{
	TradeGeneral:     "General",
	TradeElectrical:  "Electrical",
	TradePlumbing:    "Plumbing",
	TradeHVAC:        "HVAC",
	TradeDrywall:     "Drywall",
	TradePainting:    "Painting",
	TradeFlooring:    "Flooring",
	TradeRoofing:     "Roofing",
	TradeFraming:     "Framing",
	TradeConcrete:    "Concrete",
	TradeLandscaping: "Landscaping",
}

// Label returns the display name for a trade, falling back to the raw
// value for anything not in the fixed set.
func (t Trade) Label() string {
	if l, ok := tradeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Valid reports whether t is one of the fixed trades.
func (t Trade) Valid() bool {
	_, ok := tradeLabels[t]
	return ok
}

// ParseTrade maps a raw string to a Trade.
func ParseTrade(s string) (Trade, bool) {
	t := Trade(s)
	return t, t.Valid()
}

// DefaultLaborRates holds the built-in hourly labor rate per trade, in
// dollars. Settings may override these per company.
var DefaultLaborRates = map[Trade]float64{
	TradeGeneral:     55,
	TradeElectrical:  85,
	TradePlumbing:    80,
	TradeHVAC:        90,
	TradeDrywall:     50,
	TradePainting:    45,
	TradeFlooring:    60,
	TradeRoofing:     70,
	TradeFraming:     65,
	TradeConcrete:    75,
	TradeLandscaping: 50,
}

// QuickRateFactors is the dollars-per-square-foot factor table used by
// the ballpark estimator. Distinct from hourly labor rates.
var QuickRateFactors = map[Trade]float64{
	TradeGeneral:     3.5,
	TradeElectrical:  6.0,
	TradePlumbing:    5.5,
	TradeHVAC:        7.0,
	TradeDrywall:     3.0,
	TradePainting:    2.5,
	TradeFlooring:    4.5,
	TradeRoofing:     5.0,
	TradeFraming:     4.0,
	TradeConcrete:    5.5,
	TradeLandscaping: 3.0,
}
