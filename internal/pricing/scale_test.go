package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelScaleInput() ScaleInput {
	return ScaleInput{
		Scales:         []int{1000, 2000, 3000, 5000},
		Tracks:         1,
		WidthMM:        100,
		AdvanceMM:      100,
		AdvanceTotalMM: 100,
		WasteMM:        5.35,
		AreaMM2:        17272,
	}
}

func TestScaleCalculator_TotalPrintableWidth(t *testing.T) {
	calc := NewScaleCalculator(DefaultParams(), false)

	tests := []struct {
		name    string
		numInks int
		tracks  int
		width   float64
		want    float64
	}{
		{name: "with inks", numInks: 4, tracks: 1, width: 100, want: 120},
		{name: "without inks", numInks: 0, tracks: 1, width: 100, want: 110},
		{name: "two tracks", numInks: 4, tracks: 2, width: 100, want: 230},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.TotalPrintableWidth(tt.numInks, tt.tracks, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("overflow suggests a track count", func(t *testing.T) {
		_, err := calc.TotalPrintableWidth(4, 4, 100)
		var exceeded *WidthExceededError
		require.ErrorAs(t, err, &exceeded)
		assert.Equal(t, 3, exceeded.SuggestedMaxTracks)
	})
}

func TestScaleCalculator_MetersPerRun(t *testing.T) {
	in := labelScaleInput()

	t.Run("label adds the advance gap", func(t *testing.T) {
		calc := NewScaleCalculator(DefaultParams(), false)
		// (1000/1) * ((100+2.6+5.35)/1000)
		assert.InDelta(t, 107.95, calc.MetersPerRun(1000, in), 1e-9)
	})

	t.Run("sleeve runs gapless", func(t *testing.T) {
		calc := NewScaleCalculator(DefaultParams(), true)
		assert.InDelta(t, 105.35, calc.MetersPerRun(1000, in), 1e-9)
	})
}

func TestScaleCalculator_Hours(t *testing.T) {
	calc := NewScaleCalculator(DefaultParams(), false)

	assert.InDelta(t, 1.0, calc.Hours(1200, 20), 1e-9)
	// Zero speed falls back to the configured default.
	assert.InDelta(t, 1.0, calc.Hours(1200, 0), 1e-9)
}

func TestScaleCalculator_LaborMachineCost(t *testing.T) {
	tests := []struct {
		name    string
		sleeve  bool
		hours   float64
		numInks int
		want    float64
	}{
		{name: "short printed run bills flat minimum", hours: 0.5, numInks: 4, want: 50000},
		{name: "short unprinted run bills die-cut minimum", hours: 0.5, numInks: 0, want: 50000},
		{name: "long run scales linearly", hours: 2.5, numInks: 4, want: 125000},
		{name: "sleeve adds sealing and cutting", sleeve: true, hours: 0.5, numInks: 4, want: 150000},
		{name: "sleeve long run scales the full total", sleeve: true, hours: 2, numInks: 4, want: 300000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewScaleCalculator(DefaultParams(), tt.sleeve)
			assert.InDelta(t, tt.want, calc.LaborMachineCost(tt.hours, tt.numInks), 1e-9)
		})
	}
}

func TestScaleCalculator_CostComponents(t *testing.T) {
	calc := NewScaleCalculator(DefaultParams(), false)

	t.Run("mounting", func(t *testing.T) {
		assert.Equal(t, 20000.0, calc.MountingCost(4))
		assert.Zero(t, calc.MountingCost(0))
	})

	t.Run("ink", func(t *testing.T) {
		// 0.000008*4*17272*1000 + 100*4*30
		assert.InDelta(t, 12552.704, calc.InkCost(1000, 4, 17272), 1e-6)
	})

	t.Run("paper and laminate", func(t *testing.T) {
		// 1000 * (17272*1800 + 17272*0)/1e6
		assert.InDelta(t, 31089.6, calc.PaperLaminateCost(1000, 17272, 1800, 0), 1e-6)
	})

	t.Run("waste combines setup and percentage parts", func(t *testing.T) {
		paperLam := 31089.6
		// setup: 30000*4 * (50+100) * 1800/1e6 = 32400; pct: 3108.96
		got := calc.WasteCost(4, 100, paperLam, 1800, 1, 0.10)
		assert.InDelta(t, 35508.96, got, 1e-6)
	})

	t.Run("waste with zero inks is percentage only", func(t *testing.T) {
		got := calc.WasteCost(0, 100, 1000, 1800, 1, 0.10)
		assert.InDelta(t, 100, got, 1e-9)
	})

	t.Run("multi-track label waste includes the track gap", func(t *testing.T) {
		// s3 = 50 + (100+3)*2 + 3 = 259
		got := calc.WasteCost(1, 100, 0, 1000, 2, 0.10)
		assert.InDelta(t, 30000*259*1000/1e6, got, 1e-6)
	})
}

func TestScaleCalculator_UnitPrice(t *testing.T) {
	calc := NewScaleCalculator(DefaultParams(), false)

	t.Run("applies margin and amortizes fixed costs", func(t *testing.T) {
		got, err := calc.UnitPrice(60000, 40, 1000, 100000, 50000)
		require.NoError(t, err)
		// 60000/0.6 = 100000; +150000 fixed; /1000
		assert.InDelta(t, 250, got, 1e-9)
	})

	t.Run("markup at 100 is rejected", func(t *testing.T) {
		_, err := calc.UnitPrice(60000, 100, 1000, 0, 0)
		var invalid *InvalidMarkupError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("markup just below 100 yields a large finite price", func(t *testing.T) {
		got, err := calc.UnitPrice(60000, 99.999, 1000, 0, 0)
		require.NoError(t, err)
		assert.False(t, math.IsInf(got, 0))
		assert.Greater(t, got, 1000.0)
	})

	t.Run("non-positive scale is a recoverable zero", func(t *testing.T) {
		got, err := calc.UnitPrice(60000, 40, 0, 100000, 50000)
		require.NoError(t, err)
		assert.Zero(t, got)
	})
}

func TestScaleCalculator_ComputeAllScales(t *testing.T) {
	t.Run("label quote: one row per scale, unit value strictly decreasing", func(t *testing.T) {
		calc := NewScaleCalculator(DefaultParams(), false)
		in := labelScaleInput()

		results, err := calc.ComputeAllScales(in, 4, 0.552704, 22646400, 825000, 1800, 0)
		require.NoError(t, err)
		require.Len(t, results, len(in.Scales))

		for i, res := range results {
			assert.Equal(t, in.Scales[i], res.Scale)
			assert.Greater(t, res.UnitValue, 0.0)
			assert.Equal(t, 4, res.NumInks)
			assert.Equal(t, 100.0, res.WidthMM)
			assert.InDelta(t, res.UnitValue*float64(res.Scale)/1e6, res.MMValue, 1e-9)
			if i > 0 {
				assert.Less(t, res.UnitValue, results[i-1].UnitValue,
					"fixed costs must amortize over larger runs")
			}
		}
	})

	t.Run("the supplied ink value drives the ink cost", func(t *testing.T) {
		calc := NewScaleCalculator(DefaultParams(), false)
		in := labelScaleInput()

		// An adjusted per-unit ink value, not the one derived from the area.
		results, err := calc.ComputeAllScales(in, 4, 1.105408, 0, 0, 1800, 0)
		require.NoError(t, err)
		// 1.105408*1000 + 100*4*30
		assert.InDelta(t, 13105.408, results[0].InkCost, 1e-6)
	})

	t.Run("meters carry the waste fraction", func(t *testing.T) {
		calc := NewScaleCalculator(DefaultParams(), false)
		in := labelScaleInput()

		results, err := calc.ComputeAllScales(in, 4, 0.552704, 0, 0, 1800, 0)
		require.NoError(t, err)
		// 107.95 nominal meters * 1.10 label waste
		assert.InDelta(t, 118.745, results[0].Meters, 1e-9)
		assert.InDelta(t, results[0].Meters/20/60, results[0].Hours, 1e-9)
	})

	t.Run("sleeve overrides waste percentage and markup", func(t *testing.T) {
		label := NewScaleCalculator(DefaultParams(), false)
		sleeve := NewScaleCalculator(DefaultParams(), true)
		in := labelScaleInput()
		// Caller-supplied values are ignored by policy.
		in.WastePct = 0.99
		in.MarkupPct = 99

		labelResults, err := label.ComputeAllScales(in, 0, 0, 0, 0, 1800, 0)
		require.NoError(t, err)
		sleeveResults, err := sleeve.ComputeAllScales(in, 0, 0, 0, 0, 1800, 0)
		require.NoError(t, err)

		// Label meters ×1.10, sleeve meters ×1.30 on a gapless advance.
		assert.InDelta(t, 107.95*1.10, labelResults[0].Meters, 1e-9)
		assert.InDelta(t, 105.35*1.30, sleeveResults[0].Meters, 1e-9)
	})

	t.Run("zero scale row is quoted as zero, batch survives", func(t *testing.T) {
		calc := NewScaleCalculator(DefaultParams(), false)
		in := labelScaleInput()
		in.Scales = []int{0, 1000}

		results, err := calc.ComputeAllScales(in, 4, 0.552704, 0, 0, 1800, 0)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Zero(t, results[0].UnitValue)
		assert.Greater(t, results[1].UnitValue, 0.0)
	})

	t.Run("invalid tracks fail before the loop", func(t *testing.T) {
		calc := NewScaleCalculator(DefaultParams(), false)
		in := labelScaleInput()
		in.Tracks = 0

		_, err := calc.ComputeAllScales(in, 4, 0, 0, 0, 1800, 0)
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("markup failure is wrapped with its cause", func(t *testing.T) {
		params := DefaultParams()
		params.MarkupPctLabel = 100
		calc := NewScaleCalculator(params, false)
		in := labelScaleInput()

		_, err := calc.ComputeAllScales(in, 4, 0, 0, 0, 1800, 0)
		var wrapped *CostCalculationError
		require.ErrorAs(t, err, &wrapped)
		assert.Equal(t, 1000, wrapped.Scale)

		var invalid *InvalidMarkupError
		assert.True(t, errors.As(err, &invalid))
	})
}
