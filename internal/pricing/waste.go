package pricing

import (
	"math"
	"sort"
)

// Cylinder is one physically available print-cylinder size. The table is
// fixed: teeth count times 1/8" per tooth gives the circumference, converted
// at 25.4 mm per inch.
type Cylinder struct {
	Teeth          float64 `json:"teeth"`
	InchesPerTooth float64 `json:"inches_per_tooth"`
	TotalInches    float64 `json:"total_inches"`
	MMPerInch      float64 `json:"mm_per_inch"`
	TotalMM        float64 `json:"total_mm"`
}

// cylinderTable lists the twelve cylinders mounted on the press, in the
// workshop's historical order.
var cylinderTable = []Cylinder{
	{Teeth: 80, InchesPerTooth: 0.125, TotalInches: 10.0000, MMPerInch: 25.4, TotalMM: 254.0000},
	{Teeth: 84, InchesPerTooth: 0.125, TotalInches: 10.5000, MMPerInch: 25.4, TotalMM: 266.7000},
	{Teeth: 88, InchesPerTooth: 0.125, TotalInches: 11.0000, MMPerInch: 25.4, TotalMM: 279.4000},
	{Teeth: 96, InchesPerTooth: 0.125, TotalInches: 12.0000, MMPerInch: 25.4, TotalMM: 304.8000},
	{Teeth: 102, InchesPerTooth: 0.125, TotalInches: 12.7500, MMPerInch: 25.4, TotalMM: 323.8500},
	{Teeth: 108, InchesPerTooth: 0.125, TotalInches: 13.5000, MMPerInch: 25.4, TotalMM: 342.9000},
	{Teeth: 112, InchesPerTooth: 0.125, TotalInches: 14.0000, MMPerInch: 25.4, TotalMM: 355.6000},
	{Teeth: 120, InchesPerTooth: 0.125, TotalInches: 15.0000, MMPerInch: 25.4, TotalMM: 381.0000},
	{Teeth: 64, InchesPerTooth: 0.125, TotalInches: 8.0000, MMPerInch: 25.4, TotalMM: 203.2000},
	{Teeth: 128, InchesPerTooth: 0.125, TotalInches: 16.0000, MMPerInch: 25.4, TotalMM: 406.4000},
	{Teeth: 140, InchesPerTooth: 0.125, TotalInches: 17.5000, MMPerInch: 25.4, TotalMM: 444.5000},
	{Teeth: 165, InchesPerTooth: 0.125, TotalInches: 20.6250, MMPerInch: 25.4, TotalMM: 523.8750},
}

// Cylinders returns a copy of the cylinder table.
func Cylinders() []Cylinder {
	out := make([]Cylinder, len(cylinderTable))
	copy(out, cylinderTable)
	return out
}

// WasteOption is one feasible way of wrapping the requested advance around a
// cylinder. WasteMM is the leftover circumference per repetition.
type WasteOption struct {
	Teeth         float64 `json:"teeth" bson:"teeth"`
	MeasurementMM float64 `json:"measurement_mm" bson:"measurement_mm"`
	WasteMM       float64 `json:"waste_mm" bson:"waste_mm"`
	Repetitions   int     `json:"repetitions" bson:"repetitions"`
	TotalWidthMM  float64 `json:"total_width_mm" bson:"total_width_mm"`
}

// WasteCalculator enumerates cylinder/repetition combinations for an advance
// length and ranks them by waste.
type WasteCalculator struct {
	params       Params
	sleeve       bool
	trackGapMM   float64
	advanceGapMM float64
}

// NewWasteCalculator builds a calculator for the given product type. Sleeves
// print without inter-track or advance gaps.
func NewWasteCalculator(params Params, sleeve bool) *WasteCalculator {
	c := &WasteCalculator{params: params, sleeve: sleeve}
	if !sleeve {
		c.trackGapMM = params.TrackGapMM
		c.advanceGapMM = params.AdvanceGapMM
	}
	return c
}

// totalWidth is the web consumed by reps repetitions of the advance,
// including the gaps between them.
func (c *WasteCalculator) totalWidth(advanceMM float64, reps int) float64 {
	return advanceMM*float64(reps) + c.trackGapMM*float64(reps-1)
}

// validateAdvance rejects non-numeric, non-positive or over-width advances.
func (c *WasteCalculator) validateAdvance(advanceMM float64) error {
	if math.IsNaN(advanceMM) || math.IsInf(advanceMM, 0) {
		return &InvalidInputError{Field: "advance", Value: advanceMM, Reason: "must be a finite number"}
	}
	if advanceMM <= 0 {
		return &InvalidInputError{Field: "advance", Value: advanceMM, Reason: "must be greater than zero"}
	}
	if advanceMM > c.params.MaxMachineWidthMM {
		return &InvalidInputError{Field: "advance", Value: advanceMM, Reason: "exceeds machine width"}
	}
	return nil
}

// EnumerateOptions returns every feasible combination for the advance, sorted
// ascending by waste. Sleeves re-rank by (|waste|, teeth): closest to zero
// first, smallest cylinder as tiebreaker. The list may be empty; callers
// decide how to surface the no-solution case.
func (c *WasteCalculator) EnumerateOptions(advanceMM float64) ([]WasteOption, error) {
	if err := c.validateAdvance(advanceMM); err != nil {
		return nil, err
	}

	advanceWithGap := advanceMM + c.advanceGapMM
	options := make([]WasteOption, 0, 32)

	for _, cyl := range cylinderTable {
		for reps := 1; reps <= c.params.MaxRepetitions; reps++ {
			width := c.totalWidth(advanceMM, reps)
			if width > c.params.MaxMachineWidthMM {
				continue
			}
			// Cylinder too small to hold this many repetitions.
			if cyl.TotalMM < advanceWithGap*float64(reps) {
				continue
			}
			waste := math.Abs(cyl.TotalMM-advanceWithGap*float64(reps)) / float64(reps)
			options = append(options, WasteOption{
				Teeth:         cyl.Teeth,
				MeasurementMM: cyl.TotalMM,
				WasteMM:       waste,
				Repetitions:   reps,
				TotalWidthMM:  width,
			})
		}
	}

	if c.sleeve {
		sort.SliceStable(options, func(i, j int) bool {
			wi, wj := math.Abs(options[i].WasteMM), math.Abs(options[j].WasteMM)
			if wi != wj {
				return wi < wj
			}
			return options[i].Teeth < options[j].Teeth
		})
	} else {
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].WasteMM < options[j].WasteMM
		})
	}

	return options, nil
}

// BestOption returns the lowest-waste option for the advance, or a
// NoFeasibleOptionError when nothing fits.
func (c *WasteCalculator) BestOption(advanceMM float64) (WasteOption, error) {
	options, err := c.EnumerateOptions(advanceMM)
	if err != nil {
		return WasteOption{}, err
	}
	if len(options) == 0 {
		return WasteOption{}, &NoFeasibleOptionError{AdvanceMM: advanceMM}
	}
	return options[0], nil
}
