// Package model defines the core domain entities for the quote service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/litoflex/quote-service/internal/pricing"
)

// Product types accepted by the quoting pipeline.
const (
	ProductLabel  = "label"
	ProductSleeve = "sleeve"
)

// QuoteInput captures everything the customer-facing form collects for one
// quotation. It is embedded verbatim in the stored Quote so a quote can be
// recalculated later against a newer price list.
type QuoteInput struct {
	ClientName     string  `json:"client_name" bson:"client_name"`
	Description    string  `json:"description" bson:"description"`
	ProductType    string  `json:"product_type" bson:"product_type"`
	WidthMM        float64 `json:"width_mm" bson:"width_mm"`
	AdvanceMM      float64 `json:"advance_mm" bson:"advance_mm"`
	Tracks         int     `json:"tracks" bson:"tracks"`
	NumInks        int     `json:"num_inks" bson:"num_inks"`
	MaterialCode   string  `json:"material_code" bson:"material_code"`
	FinishCode     string  `json:"finish_code,omitempty" bson:"finish_code,omitempty"`
	Scales         []int   `json:"scales" bson:"scales"`
	PlatesSeparate bool    `json:"plates_separate" bson:"plates_separate"`
	IncludeDie     bool    `json:"include_die" bson:"include_die"`
	DieExists      bool    `json:"die_exists" bson:"die_exists"`
	GravingTypeID  int     `json:"graving_type_id,omitempty" bson:"graving_type_id,omitempty"`
}

// IsSleeve reports whether the input describes a sleeve job.
func (in QuoteInput) IsSleeve() bool {
	return in.ProductType == ProductSleeve
}

// LithoSnapshot is the persisted subset of a lithography report: the priced
// building blocks a stored quote was computed from.
type LithoSnapshot struct {
	TotalWidthMM       float64               `json:"total_width_mm" bson:"total_width_mm"`
	MountTeeth         float64               `json:"mount_teeth" bson:"mount_teeth"`
	Best               pricing.WasteOption   `json:"best_option" bson:"best_option"`
	Options            []pricing.WasteOption `json:"options,omitempty" bson:"options,omitempty"`
	PlatePrice         float64               `json:"plate_price" bson:"plate_price"`
	PlateSeparateValue float64               `json:"plate_separate_value,omitempty" bson:"plate_separate_value,omitempty"`
	DieValue           float64               `json:"die_value" bson:"die_value"`
	LabelAreaMM2       float64               `json:"label_area_mm2" bson:"label_area_mm2"`
	InkValuePerUnit    float64               `json:"ink_value_per_unit" bson:"ink_value_per_unit"`
}

// Quote is a stored quotation document.
type Quote struct {
	ID          primitive.ObjectID    `json:"id" bson:"_id,omitempty"`
	QuoteNumber string                `json:"quote_number" bson:"quote_number"`
	Input       QuoteInput            `json:"input" bson:"input"`
	Litho       LithoSnapshot         `json:"litho" bson:"litho"`
	Results     []pricing.ScaleResult `json:"results" bson:"results"`
	CreatedBy   string                `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt   time.Time             `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at" bson:"updated_at"`
}
