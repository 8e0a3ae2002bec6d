// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strconv"
	"strings"

	"github.com/litoflex/quote-service/internal/domain/model"
)

// QuoteRequest represents the JSON request body for the quote endpoints.
//
// Scales may be given either as a JSON array or as a comma-separated string
// in ScalesRaw; the string form wins when both are present. Validation is
// performed using gin's binding tags plus Validate.
type QuoteRequest struct {
	// ClientName identifies the customer the quote is for.
	ClientName string `json:"client_name"`
	// Description is a free-form job description.
	Description string `json:"description"`
	// ProductType is "label" or "sleeve".
	ProductType string `json:"product_type" binding:"required,oneof=label sleeve"`
	// WidthMM is the label width or flattened sleeve width in millimeters.
	WidthMM float64 `json:"width_mm" binding:"required,gt=0"`
	// AdvanceMM is the repeat length in millimeters.
	AdvanceMM float64 `json:"advance_mm" binding:"required,gt=0"`
	// Tracks is the number of lanes across the web.
	Tracks int `json:"tracks" binding:"required,gt=0"`
	// NumInks is the ink count; zero means an unprinted job.
	NumInks int `json:"num_inks" binding:"gte=0"`
	// MaterialCode selects the substrate from the catalog.
	MaterialCode string `json:"material_code" binding:"required"`
	// FinishCode optionally selects a finish from the catalog.
	FinishCode string `json:"finish_code"`
	// Scales is the list of quantities to quote.
	Scales []int `json:"scales"`
	// ScalesRaw is a comma-separated alternative to Scales, e.g. "1000,2000,5000".
	ScalesRaw string `json:"scales_raw"`
	// PlatesSeparate quotes the plates apart from the unit price.
	PlatesSeparate bool `json:"plates_separate"`
	// IncludeDie prices a cutting die into the quote.
	IncludeDie bool `json:"include_die"`
	// DieExists marks that the customer already owns the die.
	DieExists bool `json:"die_exists"`
	// GravingTypeID is the sleeve graving type; ignored for labels.
	GravingTypeID int `json:"graving_type_id"`
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseScales resolves the effective scale list, preferring the
// comma-separated form. Blank entries are skipped.
func (r *QuoteRequest) ParseScales() ([]int, error) {
	if r.ScalesRaw == "" {
		return r.Scales, nil
	}
	parts := strings.Split(r.ScalesRaw, ",")
	scales := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil || v <= 0 {
			return nil, &ValidationError{Field: "scales_raw", Message: "must be a comma-separated list of positive integers"}
		}
		scales = append(scales, v)
	}
	return scales, nil
}

// Validate performs custom validation on the request.
// Returns an error if validation fails, nil otherwise.
func (r *QuoteRequest) Validate() error {
	if r.ProductType != model.ProductLabel && r.ProductType != model.ProductSleeve {
		return &ValidationError{Field: "product_type", Message: "must be \"label\" or \"sleeve\""}
	}
	if r.WidthMM <= 0 {
		return &ValidationError{Field: "width_mm", Message: "must be a positive number"}
	}
	if r.AdvanceMM <= 0 {
		return &ValidationError{Field: "advance_mm", Message: "must be a positive number"}
	}
	if r.Tracks <= 0 {
		return &ValidationError{Field: "tracks", Message: "must be a positive integer"}
	}
	if r.NumInks < 0 {
		return &ValidationError{Field: "num_inks", Message: "must be zero or a positive integer"}
	}
	if r.MaterialCode == "" {
		return &ValidationError{Field: "material_code", Message: "is required"}
	}
	// An empty scale list is allowed; the service quotes its configured
	// default quantities instead.
	scales, err := r.ParseScales()
	if err != nil {
		return err
	}
	for _, s := range scales {
		if s <= 0 {
			return &ValidationError{Field: "scales", Message: "quantities must be positive integers"}
		}
	}
	return nil
}

// ToInput converts a validated request into the domain input.
func (r *QuoteRequest) ToInput() (model.QuoteInput, error) {
	scales, err := r.ParseScales()
	if err != nil {
		return model.QuoteInput{}, err
	}
	return model.QuoteInput{
		ClientName:     r.ClientName,
		Description:    r.Description,
		ProductType:    r.ProductType,
		WidthMM:        r.WidthMM,
		AdvanceMM:      r.AdvanceMM,
		Tracks:         r.Tracks,
		NumInks:        r.NumInks,
		MaterialCode:   r.MaterialCode,
		FinishCode:     r.FinishCode,
		Scales:         scales,
		PlatesSeparate: r.PlatesSeparate,
		IncludeDie:     r.IncludeDie,
		DieExists:      r.DieExists,
		GravingTypeID:  r.GravingTypeID,
	}, nil
}

// UpdateMaterialRequest represents the JSON request body for updating a
// catalog price.
type UpdateMaterialRequest struct {
	// ValuePerM2 is the new cost per square meter.
	ValuePerM2 float64 `json:"value_per_m2" binding:"required,gt=0"`
}
