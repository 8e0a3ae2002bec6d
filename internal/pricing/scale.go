package pricing

import "math"

// ScaleInput carries the per-quote parameters for the scale-cost layer.
// WastePct and MarkupPct are advisory: ComputeAllScales overrides both by
// product type, matching the costing spreadsheet.
type ScaleInput struct {
	Scales         []int
	Tracks         int
	WidthMM        float64
	AdvanceMM      float64
	AdvanceTotalMM float64
	WasteMM        float64 // waste of the selected mount option
	MachineSpeed   float64 // m/min; zero means the Params default
	MarkupPct      float64
	AreaMM2        float64
	WastePct       float64
}

// ScaleResult is the full cost breakdown for one production quantity.
type ScaleResult struct {
	Scale             int     `json:"scale" bson:"scale"`
	UnitValue         float64 `json:"unit_value" bson:"unit_value"`
	MMValue           float64 `json:"mm_value" bson:"mm_value"` // run value in millions
	Meters            float64 `json:"meters" bson:"meters"`
	Hours             float64 `json:"hours" bson:"hours"`
	MountingCost      float64 `json:"mounting_cost" bson:"mounting_cost"`
	LaborMachineCost  float64 `json:"labor_machine_cost" bson:"labor_machine_cost"`
	InkCost           float64 `json:"ink_cost" bson:"ink_cost"`
	PaperLaminateCost float64 `json:"paper_laminate_cost" bson:"paper_laminate_cost"`
	WasteCost         float64 `json:"waste_cost" bson:"waste_cost"`
	NumInks           int     `json:"num_inks" bson:"num_inks"`
	WidthMM           float64 `json:"width_mm" bson:"width_mm"`
}

// ScaleCalculator produces the final cost breakdown per production quantity.
type ScaleCalculator struct {
	params Params
	sleeve bool
}

// NewScaleCalculator builds a calculator for the given product type.
func NewScaleCalculator(params Params, sleeve bool) *ScaleCalculator {
	return &ScaleCalculator{params: params, sleeve: sleeve}
}

// TotalPrintableWidth reproduces the costing sheet's own width formula:
// ROUNDUP(IF(inks=0, tracks*(w+3)-3+10, tracks*(w+3)-3+20), -1).
//
// Deliberately kept independent from the lithography variant; the two carry
// different margin constants and must both survive until validated against
// stored quotes.
func (c *ScaleCalculator) TotalPrintableWidth(numInks, tracks int, widthMM float64) (float64, error) {
	gap := c.params.TrackGapMM
	base := float64(tracks)*(widthMM+gap) - gap
	margin := 10.0
	if numInks > 0 {
		margin = 20
	}
	total := ceilToMultiple(base+margin, 10)
	if total > c.params.MaxMachineWidthMM {
		suggested := int(math.Floor((c.params.MaxMachineWidthMM - margin + gap) / (widthMM + gap)))
		return total, &WidthExceededError{
			ComputedMM:         total,
			MaxMM:              c.params.MaxMachineWidthMM,
			SuggestedMaxTracks: suggested,
		}
	}
	return total, nil
}

// MetersPerRun is the linear material consumed by one scale:
// (scale/tracks) * ((advanceTotal + gap + mountWaste)/1000).
func (c *ScaleCalculator) MetersPerRun(scale int, in ScaleInput) float64 {
	gap := c.params.AdvanceGapMM
	if c.sleeve {
		gap = 0
	}
	advance := in.AdvanceTotalMM + gap
	return (float64(scale) / float64(in.Tracks)) * ((advance + in.WasteMM) / 1000)
}

// Hours converts meters to press hours at the given speed.
func (c *ScaleCalculator) Hours(meters, machineSpeed float64) float64 {
	if machineSpeed <= 0 {
		machineSpeed = c.params.MachineSpeed
	}
	return meters / machineSpeed / 60
}

// MountingCost is the plate-mounting labor: one rate per ink.
func (c *ScaleCalculator) MountingCost(numInks int) float64 {
	return float64(numInks) * c.params.MountingRate
}

// LaborMachineCost bills press time. Runs under an hour pay the flat
// minimum; longer runs scale linearly. Sleeves add sealing and cutting on
// top of the base rate.
func (c *ScaleCalculator) LaborMachineCost(hours float64, numInks int) float64 {
	base := c.params.DieCutRate
	if numInks > 0 {
		base = c.params.PrintingRate
	}
	if c.sleeve {
		base += c.params.SealingRate + c.params.CuttingRate
	}
	if hours < 1 {
		return base
	}
	return base * hours
}

// InkCost covers the run's ink consumption plus a fixed per-ink charge:
// 0.000008*inks*area*scale + 100*inks*gramRate.
func (c *ScaleCalculator) InkCost(scale, numInks int, labelAreaMM2 float64) float64 {
	perUnit := c.params.InkRatePerMM2 * float64(numInks) * labelAreaMM2
	return c.InkCostFromUnit(scale, numInks, perUnit)
}

// InkCostFromUnit bills the run's ink from a precomputed per-unit ink value.
// Manual overrides of the lithography ink value flow through here.
func (c *ScaleCalculator) InkCostFromUnit(scale, numInks int, inkValuePerUnit float64) float64 {
	return inkValuePerUnit*float64(scale) + c.params.InkFixedGrams*float64(numInks)*c.params.InkGramRate
}

// PaperLaminateCost is the substrate plus finish cost for the run.
func (c *ScaleCalculator) PaperLaminateCost(scale int, labelAreaMM2, materialCost, finishCost float64) float64 {
	return float64(scale) * ((labelAreaMM2*materialCost + labelAreaMM2*finishCost) / 1000000)
}

// WasteCost sums the setup waste (web burned while registering each ink) and
// a percentage of the substrate cost.
func (c *ScaleCalculator) WasteCost(numInks int, widthMM float64, paperLaminateCost, materialCost float64, tracks int, wastePct float64) float64 {
	var inkDriven float64
	if numInks > 0 {
		trackGap := 0.0
		if !c.sleeve && tracks > 1 {
			trackGap = c.params.TrackGapMM
		}
		gapAdjustedWidth := c.params.WasteGapMM + (widthMM+trackGap)*float64(tracks) + trackGap
		mmTotal := c.params.MMPerColor * float64(numInks)
		inkDriven = mmTotal * gapAdjustedWidth * materialCost / 1000000
	}
	return inkDriven + paperLaminateCost*wastePct
}

// UnitPrice applies the profitability margin to the variable costs, adds the
// fixed plate and die costs, and divides by the quantity.
//
// A non-positive scale yields 0 rather than an error: the degenerate row is
// recoverable and downstream code treats it as "not quoted".
func (c *ScaleCalculator) UnitPrice(variableCosts, markupPct float64, scale int, plateCost, dieCost float64) (float64, error) {
	if markupPct >= 100 {
		return 0, &InvalidMarkupError{MarkupPct: markupPct}
	}
	if scale <= 0 {
		return 0, nil
	}
	factor := (100 - markupPct) / 100
	indirect := variableCosts / factor
	fixed := plateCost + dieCost
	return (indirect + fixed) / float64(scale), nil
}

// MMValue expresses the run total in millions: unitValue*scale/1e6.
func (c *ScaleCalculator) MMValue(unitValue float64, scale int) float64 {
	return unitValue * float64(scale) / 1000000
}

// ComputeAllScales runs the full breakdown for every requested quantity.
//
// Waste percentage and markup are forced by product type (0.30/45 for
// sleeves, 0.10/40 for labels) regardless of the caller's input; the policy
// comes straight from the costing sheet. The result list always has the same
// length and order as in.Scales. Any failure aborts the batch and is wrapped
// in a CostCalculationError.
func (c *ScaleCalculator) ComputeAllScales(in ScaleInput, numInks int, inkValuePerUnit, plateValue, dieValue, materialCost, finishCost float64) ([]ScaleResult, error) {
	if in.Tracks <= 0 {
		return nil, &InvalidInputError{Field: "tracks", Value: float64(in.Tracks), Reason: "must be greater than zero"}
	}

	wastePct := c.params.WastePctLabel
	markup := c.params.MarkupPctLabel
	if c.sleeve {
		wastePct = c.params.WastePctSleeve
		markup = c.params.MarkupPctSleeve
	}
	in.WastePct = wastePct
	in.MarkupPct = markup

	results := make([]ScaleResult, 0, len(in.Scales))
	for _, scale := range in.Scales {
		meters := c.MetersPerRun(scale, in)
		// The press burns the waste fraction on top of the nominal run.
		metersWithWaste := meters * (1 + wastePct)
		hours := c.Hours(metersWithWaste, in.MachineSpeed)

		mounting := c.MountingCost(numInks)
		labor := c.LaborMachineCost(hours, numInks)
		ink := c.InkCostFromUnit(scale, numInks, inkValuePerUnit)
		paperLam := c.PaperLaminateCost(scale, in.AreaMM2, materialCost, finishCost)
		waste := c.WasteCost(numInks, in.WidthMM, paperLam, materialCost, in.Tracks, wastePct)

		variable := mounting + labor + ink + paperLam + waste
		unitValue, err := c.UnitPrice(variable, markup, scale, plateValue, dieValue)
		if err != nil {
			return nil, &CostCalculationError{Scale: scale, Err: err}
		}

		results = append(results, ScaleResult{
			Scale:             scale,
			UnitValue:         unitValue,
			MMValue:           c.MMValue(unitValue, scale),
			Meters:            metersWithWaste,
			Hours:             hours,
			MountingCost:      mounting,
			LaborMachineCost:  labor,
			InkCost:           ink,
			PaperLaminateCost: paperLam,
			WasteCost:         waste,
			NumInks:           numInks,
			WidthMM:           in.WidthMM,
		})
	}
	return results, nil
}
