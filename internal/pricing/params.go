// Package pricing implements the flexographic cost engine: waste-option
// enumeration over the available print cylinders, the lithography building
// blocks (plate, die, label area, ink) and the per-scale cost breakdown.
//
// Everything in this package is pure computation on value types. Calculators
// hold only their Params and a product-type flag, so a single instance is
// safe for concurrent use.
package pricing

// Params collects every business constant used by the engine. Values were
// historically scattered through the costing spreadsheet; keeping them in one
// struct makes regional variants a configuration change instead of a code
// edit.
type Params struct {
	// Machine geometry.
	MaxMachineWidthMM float64 // widest web the press accepts
	TrackGapMM        float64 // gap between tracks, labels only
	AdvanceGapMM      float64 // gap added to the advance, labels only
	MaxRepetitions    int     // repetition counts tried per cylinder

	// Plate pricing.
	PlateRateLabelPerMM  float64
	PlateRateSleevePerMM float64
	PlateGapLabelMM      float64 // fixed width additive (labels)
	PlateGapSleeveMM     float64 // fixed width additive (sleeves)
	PlateAdvanceMM       float64 // fixed advance additive, shared
	PlateSeparateFactor  float64 // divisor applied when plates are quoted apart

	// Die pricing.
	DieRatePerMM float64
	DieMinimum   float64 // floor for the perimeter-driven value
	DieBase      float64 // fixed additive before the division factor

	// Ink.
	InkRatePerMM2 float64 // $/mm² per ink, derived from 8 g/m²
	InkFixedGrams float64 // grams charged per ink regardless of run length

	// Scale costing.
	MachineSpeed    float64 // m/min
	MountingRate    float64
	PrintingRate    float64
	DieCutRate      float64
	SealingRate     float64 // sleeves only
	CuttingRate     float64 // sleeves only
	InkGramRate     float64 // $/g
	MMPerColor      float64 // web consumed per ink during setup
	WasteGapMM      float64 // fixed additive in the setup-waste width
	WastePctLabel   float64
	WastePctSleeve  float64
	MarkupPctLabel  float64
	MarkupPctSleeve float64

	SleeveGravingDirectID int // graving type that skips the die division
}

// DefaultParams returns the production constants.
func DefaultParams() Params {
	return Params{
		MaxMachineWidthMM: 335,
		TrackGapMM:        3,
		AdvanceGapMM:      2.6,
		MaxRepetitions:    20,

		PlateRateLabelPerMM:  100,
		PlateRateSleevePerMM: 120,
		PlateGapLabelMM:      40,
		PlateGapSleeveMM:     50,
		PlateAdvanceMM:       30,
		PlateSeparateFactor:  0.7,

		DieRatePerMM: 100,
		DieMinimum:   700000,
		DieBase:      125000,

		InkRatePerMM2: 0.000008,
		InkFixedGrams: 100,

		MachineSpeed:    20,
		MountingRate:    5000,
		PrintingRate:    50000,
		DieCutRate:      50000,
		SealingRate:     50000,
		CuttingRate:     50000,
		InkGramRate:     30,
		MMPerColor:      30000,
		WasteGapMM:      50,
		WastePctLabel:   0.10,
		WastePctSleeve:  0.30,
		MarkupPctLabel:  40,
		MarkupPctSleeve: 45,

		SleeveGravingDirectID: 4,
	}
}
