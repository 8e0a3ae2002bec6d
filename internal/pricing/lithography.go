package pricing

import "math"

// LithoInput carries the physical job parameters for the lithography layer.
type LithoInput struct {
	WidthMM        float64
	AdvanceMM      float64
	Tracks         int
	PlatesSeparate bool // plates quoted apart from the unit price
	IncludeDie     bool
	DieExists      bool // customer already owns the cutting die
	GravingTypeID  int  // sleeves only
}

// PlateDetail records the intermediate values of a plate price calculation.
type PlateDetail struct {
	RatePerMM          float64 `json:"rate_per_mm"`
	FixedGapMM         float64 `json:"fixed_gap_mm"`
	FixedAdvanceMM     float64 `json:"fixed_advance_mm"`
	MountMeasurementMM float64 `json:"mount_measurement_mm"`
	GapAdjustedWidthMM float64 `json:"gap_adjusted_width_mm"` // fixed gap + total printable width
	AdvanceLengthMM    float64 `json:"advance_length_mm"`     // mount measurement + fixed advance
	NumInks            int     `json:"num_inks"`
	SeparateValue      float64 `json:"separate_value,omitempty"` // rounded price when plates quoted apart
}

// DieDetail records the intermediate values of a die valuation.
type DieDetail struct {
	PerimeterMM    float64 `json:"perimeter_mm"`
	BaseValue      float64 `json:"base_value"`
	FlooredValue   float64 `json:"floored_value"`
	DivisionFactor float64 `json:"division_factor"`
}

// AreaDetail records the intermediate values of a label-area calculation.
type AreaDetail struct {
	WidthTermMM   float64 `json:"width_term_mm"`   // q3 or s3, depending on ink count
	AdvanceTermMM float64 `json:"advance_term_mm"` // mount measurement / repetitions
}

// LithoReport aggregates the priced building blocks for one job. It is a
// tagged result: when a step fails, Err is set and the fields computed before
// the failure remain populated for inspection.
type LithoReport struct {
	TotalWidthMM    float64       `json:"total_width_mm"`
	MountTeeth      float64       `json:"mount_teeth"`
	Best            WasteOption   `json:"best_option"`
	Options         []WasteOption `json:"options"`
	PlatePrice      float64       `json:"plate_price"`
	PlateDetail     PlateDetail   `json:"plate_detail"`
	DieValue        float64       `json:"die_value"`
	DieDetail       DieDetail     `json:"die_detail"`
	LabelAreaMM2    float64       `json:"label_area_mm2"`
	AreaDetail      AreaDetail    `json:"area_detail"`
	InkValuePerUnit float64       `json:"ink_value_per_unit"`
	Err             error         `json:"-"`
}

// LithoCalculator converts physical job parameters into the priced building
// blocks consumed by the scale-cost layer.
type LithoCalculator struct {
	params Params
	sleeve bool
	waste  *WasteCalculator
}

// NewLithoCalculator builds a calculator for the given product type.
func NewLithoCalculator(params Params, sleeve bool) *LithoCalculator {
	return &LithoCalculator{
		params: params,
		sleeve: sleeve,
		waste:  NewWasteCalculator(params, sleeve),
	}
}

// Waste exposes the underlying waste calculator.
func (c *LithoCalculator) Waste() *WasteCalculator { return c.waste }

func ceilToMultiple(v, m float64) float64 {
	return math.Ceil(v/m) * m
}

func (c *LithoCalculator) validate(in LithoInput) error {
	if in.WidthMM <= 0 {
		return &InvalidInputError{Field: "width", Value: in.WidthMM, Reason: "must be greater than zero"}
	}
	if in.AdvanceMM <= 0 {
		return &InvalidInputError{Field: "advance", Value: in.AdvanceMM, Reason: "must be greater than zero"}
	}
	if in.Tracks <= 0 {
		return &InvalidInputError{Field: "tracks", Value: float64(in.Tracks), Reason: "must be greater than zero"}
	}
	return nil
}

// TotalPrintableWidth computes the web width the job occupies.
//
// Sleeves wrap the full circumference: ceil5(width*2 + 20). Labels tile
// tracks with gaps plus a margin that depends on whether the job prints:
// ceil10(tracks*(width+gap) - gap + margin), margin 20 with inks else 10.
func (c *LithoCalculator) TotalPrintableWidth(tracks int, widthMM float64, numInks int) (float64, error) {
	if c.sleeve {
		total := ceilToMultiple(widthMM*2+20, 5)
		if total > c.params.MaxMachineWidthMM {
			return total, &WidthExceededError{ComputedMM: total, MaxMM: c.params.MaxMachineWidthMM}
		}
		return total, nil
	}

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

// PlatePrice prices the printing plates for the job.
//
// price = rate * s3 * s4 * inks, with s3 the gap-adjusted printable width and
// s4 the mount measurement plus the fixed advance. Zero inks means zero
// plates. When plates are quoted separately the detail carries the rounded
// stand-alone value and the returned price is excluded from unit costing by
// the caller.
func (c *LithoCalculator) PlatePrice(in LithoInput, numInks int, mount WasteOption) (float64, PlateDetail, error) {
	if err := c.validate(in); err != nil {
		return 0, PlateDetail{}, err
	}

	rate := c.params.PlateRateLabelPerMM
	fixedGap := c.params.PlateGapLabelMM
	if c.sleeve {
		rate = c.params.PlateRateSleevePerMM
		fixedGap = c.params.PlateGapSleeveMM
	}

	totalWidth, err := c.TotalPrintableWidth(in.Tracks, in.WidthMM, numInks)
	if err != nil {
		return 0, PlateDetail{}, err
	}

	gapAdjustedWidth := fixedGap + totalWidth
	advanceLength := mount.MeasurementMM + c.params.PlateAdvanceMM
	price := rate * gapAdjustedWidth * advanceLength * float64(numInks)

	detail := PlateDetail{
		RatePerMM:          rate,
		FixedGapMM:         fixedGap,
		FixedAdvanceMM:     c.params.PlateAdvanceMM,
		MountMeasurementMM: mount.MeasurementMM,
		GapAdjustedWidthMM: gapAdjustedWidth,
		AdvanceLengthMM:    advanceLength,
		NumInks:            numInks,
	}
	if in.PlatesSeparate && price > 0 {
		// Stand-alone plate quotes absorb the margin and round up to the next
		// ten thousand.
		detail.SeparateValue = math.Ceil(price/c.params.PlateSeparateFactor/10000) * 10000
	}
	return price, detail, nil
}

// DieValue prices the cutting die.
//
// The perimeter-driven value is floored at DieMinimum, the DieBase additive
// applied, and the total halved when the customer already owns the die. For
// sleeves the factor depends on the graving type instead.
func (c *LithoCalculator) DieValue(in LithoInput, repetitions int) (float64, DieDetail, error) {
	if err := c.validate(in); err != nil {
		return 0, DieDetail{}, err
	}
	if repetitions <= 0 {
		return 0, DieDetail{}, &InvalidInputError{Field: "repetitions", Value: float64(repetitions), Reason: "must be greater than zero"}
	}

	perimeter := (in.WidthMM + in.AdvanceMM) * 2
	base := perimeter * float64(in.Tracks) * float64(repetitions) * c.params.DieRatePerMM
	floored := math.Max(base, c.params.DieMinimum)

	factor := 1.0
	if c.sleeve {
		if in.GravingTypeID != c.params.SleeveGravingDirectID {
			factor = 2
		}
	} else if in.DieExists {
		factor = 2
	}

	value := (c.params.DieBase + floored) / factor
	return value, DieDetail{
		PerimeterMM:    perimeter,
		BaseValue:      base,
		FlooredValue:   floored,
		DivisionFactor: factor,
	}, nil
}

// labelQ3 is the gap-adjusted tiled width: (width+gap)*tracks + gap for
// labels, width*tracks for sleeves.
func (c *LithoCalculator) labelQ3(widthMM float64, tracks int) float64 {
	if c.sleeve {
		return widthMM * float64(tracks)
	}
	gap := c.params.TrackGapMM
	return (widthMM+gap)*float64(tracks) + gap
}

// LabelArea computes the billable area of one unit from the mount geometry.
func (c *LithoCalculator) LabelArea(in LithoInput, numInks int, mount WasteOption) (float64, AreaDetail, error) {
	if err := c.validate(in); err != nil {
		return 0, AreaDetail{}, err
	}
	if mount.Repetitions <= 0 {
		return 0, AreaDetail{}, &InvalidInputError{Field: "repetitions", Value: float64(mount.Repetitions), Reason: "must be greater than zero"}
	}

	advanceTerm := mount.MeasurementMM / float64(mount.Repetitions)
	q3 := c.labelQ3(in.WidthMM, in.Tracks)

	var widthTerm float64
	if numInks == 0 {
		widthTerm = q3 / float64(in.Tracks)
	} else if c.sleeve {
		widthTerm = (c.params.PlateGapSleeveMM + q3) / float64(in.Tracks)
	} else {
		totalWidth, err := c.TotalPrintableWidth(in.Tracks, in.WidthMM, numInks)
		if err != nil {
			return 0, AreaDetail{}, err
		}
		widthTerm = (c.params.PlateGapLabelMM + totalWidth) / float64(in.Tracks)
	}

	area := widthTerm * advanceTerm
	return area, AreaDetail{WidthTermMM: widthTerm, AdvanceTermMM: advanceTerm}, nil
}

// InkValuePerUnit is the ink cost of one unit: inks * $/mm² * area, with the
// rate derived from a fixed 8 g/m² laydown.
func (c *LithoCalculator) InkValuePerUnit(areaMM2 float64, numInks int) float64 {
	return float64(numInks) * c.params.InkRatePerMM2 * areaMM2
}

// FullReport runs the whole lithography pipeline. It never returns a Go
// error: failures land in the report's Err field with all previously
// computed values intact, so callers can inspect partial results before
// deciding to abort.
func (c *LithoCalculator) FullReport(in LithoInput, numInks int) LithoReport {
	var report LithoReport

	if err := c.validate(in); err != nil {
		report.Err = err
		return report
	}

	totalWidth, err := c.TotalPrintableWidth(in.Tracks, in.WidthMM, numInks)
	report.TotalWidthMM = totalWidth
	if err != nil {
		report.Err = err
		return report
	}

	options, err := c.waste.EnumerateOptions(in.AdvanceMM)
	if err != nil {
		report.Err = err
		return report
	}
	report.Options = options
	if len(options) == 0 {
		report.Err = &NoFeasibleOptionError{AdvanceMM: in.AdvanceMM}
		return report
	}
	report.Best = options[0]
	report.MountTeeth = options[0].Teeth

	price, plateDetail, err := c.PlatePrice(in, numInks, report.Best)
	if err != nil {
		report.Err = err
		return report
	}
	report.PlatePrice = price
	report.PlateDetail = plateDetail

	if in.IncludeDie {
		value, dieDetail, err := c.DieValue(in, report.Best.Repetitions)
		if err != nil {
			report.Err = err
			return report
		}
		report.DieValue = value
		report.DieDetail = dieDetail
	}

	area, areaDetail, err := c.LabelArea(in, numInks, report.Best)
	if err != nil {
		report.Err = err
		return report
	}
	report.LabelAreaMM2 = area
	report.AreaDetail = areaDetail

	if numInks > 0 {
		report.InkValuePerUnit = c.InkValuePerUnit(area, numInks)
	}

	return report
}
