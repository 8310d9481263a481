package inspect

import "github.com/rzacher/sitebook/internal/models"

// Canned inspection observations per trade. The generator samples from
// these pools; they carry no meaning beyond plausible report text.

var correctByTrade = map[models.Trade][]string{
	models.TradeGeneral: {
		"Framing aligned and plumb within tolerance",
		"Fire blocking installed per code at all penetrations",
		"Proper fastener spacing on structural connections",
		"Access panels installed where required",
		"Work area clean and debris removed",
		"Safety signage posted at entry points",
	},
	models.TradeElectrical: {
		"Electrical boxes properly recessed to finished wall plane",
		"Wire gauge matches circuit breaker amperage rating",
		"GFCI outlets installed within 6 feet of water sources",
		"Junction boxes covered and accessible",
		"Panel directory labeling complete and accurate",
		"Conduit straps fastened at correct intervals",
	},
	models.TradePlumbing: {
		"Supply lines properly supported with hangers at 4-foot intervals",
		"Drain slope verified at 1/4 inch per foot minimum",
		"Shut-off valves accessible and operational",
		"P-traps installed on all drain connections",
		"Water heater T&P valve discharge pipe routed correctly",
		"Pipe insulation applied on hot water lines in unconditioned spaces",
	},
	models.TradeHVAC: {
		"Ductwork sealed at all joints with mastic",
		"Thermostat wiring connected and tested",
		"Condensate drain line routed to proper termination",
		"Return air grilles properly sized for room volume",
		"Refrigerant line insulation intact and sealed",
		"Equipment clearance meets manufacturer spec",
	},
	models.TradeDrywall: {
		"Drywall tape joints properly finished to Level 4",
		"Corner bead installed straight with no visible waviness",
		"Screw pattern at 12 inches on center on field, 8 on edges",
		"Moisture-resistant board used in wet areas",
		"Joints staggered from framing joints properly",
		"No visible nail pops or fastener dimples unfilled",
	},
	models.TradePainting: {
		"Paint coverage even and consistent across all surfaces",
		"Cut lines clean at ceiling-wall transitions",
		"Primer applied on all new drywall before finish coat",
		"Caulk lines smooth at trim-to-wall junctions",
		"No visible brush marks or roller texture inconsistencies",
		"Correct sheen applied per specification (eggshell walls, semi-gloss trim)",
	},
	models.TradeFlooring: {
		"Subfloor leveled within 3/16 inch over 10 feet",
		"Expansion gaps maintained at perimeter walls",
		"Transition strips installed flush at doorways",
		"Underlayment moisture barrier correctly overlapped",
		"Plank stagger pattern meets minimum 6-inch offset",
		"Floor registers cut cleanly and fitted tight",
	},
	models.TradeRoofing: {
		"Shingle courses aligned and properly offset",
		"Flashing installed at all wall-roof intersections",
		"Ridge vent continuous and properly capped",
		"Drip edge installed at eaves and rakes",
		"Ice and water shield applied in valleys and at eaves",
		"Nail placement in the manufacturer nailing zone",
	},
	models.TradeFraming: {
		"Studs plumb within 1/8 inch per 8 feet",
		"Header sizes correct for span per engineering",
		"Double top plates lapped at corners and intersections",
		"Cripple studs installed at window and door openings",
		"Hold-down anchors bolted per structural plans",
		"Blocking installed for future fixture mounting",
	},
	models.TradeConcrete: {
		"Rebar placement matches structural drawings",
		"Concrete surface finished to specified texture",
		"Control joints cut at proper spacing and depth",
		"Anchor bolts set plumb and at correct embedment",
		"Curing compound applied within specified timeframe",
		"Grade and slope direct water away from foundation",
	},
	models.TradeLandscaping: {
		"Grade slopes away from building at 6 inches in 10 feet minimum",
		"Irrigation heads provide full coverage with no dry spots",
		"Mulch depth at 3 inches and kept 6 inches from siding",
		"Root ball depth correct, crown at grade level",
		"Edging installed between lawn and planting beds",
		"Drainage swales direct runoff to designated areas",
	},
}

var issuesByTrade = map[models.Trade][]string{
	models.TradeGeneral: {
		"Fire caulk missing at electrical penetration through rated wall",
		"Debris and construction waste not cleared from work area",
		"Temporary shoring still in place, verify before removal",
		"Access panel label missing on utility chase cover",
		"Safety railing on second floor opening not installed",
		"Permit card not posted at main entrance",
	},
	models.TradeElectrical: {
		"Outlet cover plate missing on south wall",
		"Wire splice found outside junction box in ceiling cavity",
		"Dedicated circuit for kitchen dishwasher not pulled",
		"Ground wire not bonded to metal box at panel",
		"Romex not stapled within 12 inches of box entry",
		"Arc-fault breaker missing on bedroom circuit per 2023 NEC",
	},
	models.TradePlumbing: {
		"Slow drain detected at kitchen sink, possible venting issue",
		"Supply line fitting dripping at hot water angle stop",
		"Cleanout access blocked by framing member",
		"Pressure test shows 2 PSI drop over 15 minutes",
		"Toilet flange set too low, will need extension ring",
		"Hose bibb missing vacuum breaker per code",
	},
	models.TradeHVAC: {
		"Return air duct pulling from garage, code violation",
		"Condensate pan rusted and needs replacement",
		"Filter access door does not seal properly",
		"Airflow at master bedroom register below designed CFM",
		"Refrigerant line kinked at 90-degree bend near condenser",
		"Thermostat placed on exterior wall causing ghost readings",
	},
	models.TradeDrywall: {
		"Visible seam ridge on living room north wall at eye level",
		"Screw pop on ceiling near light fixture location",
		"Gap between drywall and door frame exceeds 1/4 inch",
		"Moisture damage detected on lower 8 inches of wall",
		"Inside corner tape bubbling on hallway intersection",
		"Electrical box cutout oversized, gap visible around outlet",
	},
	models.TradePainting: {
		"Paint drip on window frame casing, needs sanding and recoat",
		"Color mismatch between north wall and adjacent hallway",
		"Holidays visible on ceiling second coat, missed spots",
		"Caulk cracking at baseboard on west wall",
		"Overspray on hardwood floor near baseboard",
		"Primer bleed-through at drywall repair patch",
	},
	models.TradeFlooring: {
		"Gap between baseboard and floor exceeds 1/4 inch",
		"Plank click joint not fully engaged, visible seam row 3",
		"Transition strip height change is a trip hazard",
		"Scratch marks on new LVP from construction traffic",
		"Tile lippage exceeds 1/32 inch at shower floor",
		"Grout line width inconsistent, varies from 1/8 to 1/4 inch",
	},
	models.TradeRoofing: {
		"Exposed nail head on third course, seal or re-nail",
		"Step flashing overlapped in wrong direction at chimney",
		"Shingle overhang at eave exceeds 3/4 inch",
		"Boot flashing cracked around plumbing vent",
		"Ridge cap shingle not sealed, lifting in wind",
		"Gutter downspout not connected to underground drain",
	},
	models.TradeFraming: {
		"Stud bowed more than 1/4 inch, replace before drywall",
		"Missing cripple stud under window rough opening",
		"Top plate splice does not fall over a stud",
		"Notch in load-bearing stud exceeds 25% of depth",
		"Joist hanger nail count short by 2 nails",
		"Shear wall nailing pattern at 4 inches instead of specified 3",
	},
	models.TradeConcrete: {
		"Surface scaling on north side of foundation wall",
		"Control joint not cut, random cracking has started",
		"Anchor bolt off-layout by 1 inch, conflicts with sill plate",
		"Honeycombing visible on form-stripped wall face",
		"Insufficient slope on garage slab, water pooling at center",
		"Vapor barrier punctured during pour, patch required",
	},
	models.TradeLandscaping: {
		"Irrigation overspray hitting building siding",
		"Negative grade at southwest corner directing water to foundation",
		"Compacted soil in planting bed, roots cannot establish",
		"Mulch piled against wood siding, moisture concern",
		"Downspout splash block directing water toward sidewalk",
		"Tree planted too close to foundation, minimum 10 feet required",
	},
}

var noteTemplates = []string{
	"Overall the {area} in {unit} is in {condition} condition. {issue_summary} Recommended trade for follow-up: {trade}. {extra}",
	"Inspection of the {area} ({unit}) reveals {condition} workmanship. {issue_summary} The {trade} scope should be reviewed. {extra}",
	"Site walk of {unit}, {area}: {condition} progress noted. {issue_summary} Suggest assigning {trade} crew for corrections. {extra}",
	"{area} inspection complete for {unit}. Work is {condition}. {issue_summary} Primary trade involved: {trade}. {extra}",
}

var conditions = []string{
	"satisfactory", "good", "mostly acceptable", "fair", "above average",
}

var extras = []string{
	"No safety concerns observed.",
	"Recommend re-inspection in 48 hours.",
	"Client walkthrough can proceed for this area.",
	"Minor touch-ups expected before final sign-off.",
	"Area is near completion, punch list items should be minimal.",
	"Consider scheduling this area for final cleaning.",
}

// inspectionTrades are the trades the generator picks from; landscaping
// is excluded because interior photo walks don't cover it.
var inspectionTrades = []models.Trade{
	models.TradeElectrical, models.TradePlumbing, models.TradeHVAC,
	models.TradeDrywall, models.TradePainting, models.TradeFlooring,
	models.TradeRoofing, models.TradeFraming, models.TradeConcrete,
	models.TradeGeneral,
}
