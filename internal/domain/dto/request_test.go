package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litoflex/quote-service/internal/domain/model"
)

func validQuoteRequest() QuoteRequest {
	return QuoteRequest{
		ClientName:   "Acme Labels",
		ProductType:  "label",
		WidthMM:      100,
		AdvanceMM:    100,
		Tracks:       2,
		NumInks:      3,
		MaterialCode: "BOPP-BL",
		Scales:       []int{1000, 5000},
	}
}

func TestQuoteRequest_ParseScales(t *testing.T) {
	tests := []struct {
		name     string
		scales   []int
		raw      string
		expected []int
		wantErr  bool
	}{
		{
			name:     "array form",
			scales:   []int{1000, 2000},
			expected: []int{1000, 2000},
		},
		{
			name:     "comma separated form",
			raw:      "1000, 2000,5000",
			expected: []int{1000, 2000, 5000},
		},
		{
			name:     "raw form wins over array",
			scales:   []int{1000},
			raw:      "3000",
			expected: []int{3000},
		},
		{
			name:     "blank entries skipped",
			raw:      "1000,,2000,",
			expected: []int{1000, 2000},
		},
		{
			name:    "non-numeric entry",
			raw:     "1000,abc",
			wantErr: true,
		},
		{
			name:    "negative entry",
			raw:     "1000,-5",
			wantErr: true,
		},
		{
			name:     "empty",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := QuoteRequest{Scales: tt.scales, ScalesRaw: tt.raw}
			scales, err := req.ParseScales()
			if tt.wantErr {
				require.Error(t, err)
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, scales)
		})
	}
}

func TestQuoteRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QuoteRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(r *QuoteRequest) {},
		},
		{
			name:   "empty scales allowed",
			mutate: func(r *QuoteRequest) { r.Scales = nil },
		},
		{
			name:    "bad product type",
			mutate:  func(r *QuoteRequest) { r.ProductType = "banner" },
			wantErr: "product_type",
		},
		{
			name:    "zero width",
			mutate:  func(r *QuoteRequest) { r.WidthMM = 0 },
			wantErr: "width_mm",
		},
		{
			name:    "negative advance",
			mutate:  func(r *QuoteRequest) { r.AdvanceMM = -10 },
			wantErr: "advance_mm",
		},
		{
			name:    "zero tracks",
			mutate:  func(r *QuoteRequest) { r.Tracks = 0 },
			wantErr: "tracks",
		},
		{
			name:    "negative inks",
			mutate:  func(r *QuoteRequest) { r.NumInks = -1 },
			wantErr: "num_inks",
		},
		{
			name:    "missing material",
			mutate:  func(r *QuoteRequest) { r.MaterialCode = "" },
			wantErr: "material_code",
		},
		{
			name:    "zero scale quantity",
			mutate:  func(r *QuoteRequest) { r.Scales = []int{1000, 0} },
			wantErr: "scales",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validQuoteRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestQuoteRequest_ToInput(t *testing.T) {
	req := validQuoteRequest()
	req.FinishCode = "LAM-MATE"
	req.ScalesRaw = "500,1500"
	req.PlatesSeparate = true
	req.IncludeDie = true
	req.GravingTypeID = 4

	in, err := req.ToInput()
	require.NoError(t, err)

	assert.Equal(t, model.ProductLabel, in.ProductType)
	assert.Equal(t, "Acme Labels", in.ClientName)
	assert.Equal(t, 100.0, in.WidthMM)
	assert.Equal(t, []int{500, 1500}, in.Scales)
	assert.Equal(t, "LAM-MATE", in.FinishCode)
	assert.True(t, in.PlatesSeparate)
	assert.True(t, in.IncludeDie)
	assert.Equal(t, 4, in.GravingTypeID)
}
