package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litoflex/quote-service/internal/domain/model"
	"github.com/litoflex/quote-service/internal/pricing"
)

func testQuote() *model.Quote {
	return &model.Quote{
		QuoteNumber: "CT-2026-00042",
		Input: model.QuoteInput{
			ClientName:   "Acme Labels",
			Description:  "Juice bottle label",
			ProductType:  model.ProductLabel,
			WidthMM:      100,
			AdvanceMM:    100,
			Tracks:       2,
			NumInks:      3,
			MaterialCode: "BOPP-BL",
			FinishCode:   "LAM-MATE",
		},
		Litho: model.LithoSnapshot{
			TotalWidthMM:    230,
			MountTeeth:      104,
			Best:            pricing.WasteOption{Teeth: 104, Repetitions: 3, WasteMM: 10, MeasurementMM: 330.2},
			PlatePrice:      125000,
			DieValue:        825000,
			LabelAreaMM2:    14850,
			InkValuePerUnit: 0.3564,
		},
		Results: []pricing.ScaleResult{
			{Scale: 1000, UnitValue: 250, MMValue: 0.25, Meters: 118.7, Hours: 0.1},
			{Scale: 5000, UnitValue: 120, MMValue: 0.6, Meters: 593.7, Hours: 0.5},
		},
		CreatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestGenerator_Technical(t *testing.T) {
	g := NewGenerator()
	material := &model.Material{Code: "BOPP-BL", Name: "BOPP Blanco", ValuePerM2: 1800}
	finish := &model.Material{Code: "LAM-MATE", Name: "Laminado Mate", ValuePerM2: 600}

	quote := testQuote()
	quote.Input.IncludeDie = true
	md := g.Technical(quote, material, finish)

	assert.Contains(t, md, "## Technical Quote Report")
	assert.Contains(t, md, "CT-2026-00042")
	assert.Contains(t, md, "Acme Labels")
	assert.Contains(t, md, "2026-08-20")

	assert.Contains(t, md, "### Print Parameters")
	assert.Contains(t, md, "**Cylinder (Z teeth)**: 104")
	assert.Contains(t, md, "**Repetitions**: 3")

	assert.Contains(t, md, "### Materials")
	assert.Contains(t, md, "BOPP-BL - BOPP Blanco")
	assert.Contains(t, md, "LAM-MATE - Laminado Mate")

	assert.Contains(t, md, "### Base Costs")
	assert.Contains(t, md, "**Substrate Value**: $1800.00/m²")
	assert.Contains(t, md, "**Die Value**: $825000.00")

	assert.Contains(t, md, "### Cost per Scale")
	assert.Contains(t, md, "| 1000 | $250.00 |")
	assert.Contains(t, md, "| 5000 | $120.00 |")
}

func TestGenerator_Technical_SleeveAndFallbacks(t *testing.T) {
	g := NewGenerator()

	t.Run("sleeve finish shown as not applicable", func(t *testing.T) {
		quote := testQuote()
		quote.Input.ProductType = model.ProductSleeve
		md := g.Technical(quote, nil, nil)
		assert.Contains(t, md, "**Finish**: N/A (sleeve)")
	})

	t.Run("missing catalog entries fall back to codes", func(t *testing.T) {
		quote := testQuote()
		md := g.Technical(quote, nil, nil)
		assert.Contains(t, md, "**Substrate**: BOPP-BL")
		assert.NotContains(t, md, "Substrate Value")
	})

	t.Run("separate plate billing section", func(t *testing.T) {
		quote := testQuote()
		quote.Input.PlatesSeparate = true
		quote.Litho.PlateSeparateValue = 179000
		md := g.Technical(quote, nil, nil)
		require.Contains(t, md, "### Separate Plate Billing")
		assert.Contains(t, md, "$179000.00")
	})

	t.Run("no die section when not included", func(t *testing.T) {
		md := g.Technical(testQuote(), nil, nil)
		assert.NotContains(t, md, "**Die Value**")
	})
}
