// Package service contains the application services that sit between the
// HTTP layer and the pricing engine and repositories.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/litoflex/quote-service/config"
	"github.com/litoflex/quote-service/internal/domain/model"
	"github.com/litoflex/quote-service/internal/pricing"
	"github.com/litoflex/quote-service/internal/repository"
)

var (
	// ErrMaterialNotFound is returned when a requested catalog code does not exist.
	ErrMaterialNotFound = errors.New("material not found")
	// ErrQuoteNotFound is returned when a stored quote does not exist.
	ErrQuoteNotFound = errors.New("quote not found")
	// ErrInvalidQuoteID is returned when the quote ID is not a valid ObjectID.
	ErrInvalidQuoteID = errors.New("invalid quote id")
)

// QuoteComputation is the result of pricing one job: the lithography
// snapshot, the per-scale breakdown, and the catalog entries used.
type QuoteComputation struct {
	Litho    model.LithoSnapshot   `json:"litho"`
	Results  []pricing.ScaleResult `json:"results"`
	Material model.Material        `json:"material"`
	Finish   *model.Material       `json:"finish,omitempty"`
}

// QuoteService defines quote calculation and persistence operations.
type QuoteService interface {
	// Preview prices a job without persisting anything.
	Preview(ctx context.Context, in model.QuoteInput) (*QuoteComputation, error)
	// Save prices a job and stores the resulting quote.
	Save(ctx context.Context, in model.QuoteInput, createdBy string) (*model.Quote, error)
	// Get returns a stored quote by its hex ID.
	Get(ctx context.Context, id string) (*model.Quote, error)
	// List returns stored quotes, optionally filtered by client name.
	List(ctx context.Context, clientName string, limit int) ([]model.Quote, error)
	// Delete removes a stored quote by its hex ID.
	Delete(ctx context.Context, id string) error
}

// defaultQuoteScales are the quantities quoted when a request does not name
// its own.
var defaultQuoteScales = []int{1000, 2000, 3000, 5000, 10000}

// QuoteServiceImpl implements QuoteService on top of the pricing engine.
type QuoteServiceImpl struct {
	quotes        repository.QuotesRepositoryInterface
	materials     repository.MaterialsRepositoryInterface
	params        pricing.Params
	defaultScales []int
}

// NewQuoteService creates a quote service. Engine overrides from the
// configuration are applied on top of the built-in parameters; zero values
// leave the defaults untouched.
func NewQuoteService(
	quotes repository.QuotesRepositoryInterface,
	materials repository.MaterialsRepositoryInterface,
	engineCfg config.EngineConfig,
) *QuoteServiceImpl {
	params := pricing.DefaultParams()
	if engineCfg.MaxMachineWidthMM > 0 {
		params.MaxMachineWidthMM = engineCfg.MaxMachineWidthMM
	}
	if engineCfg.MachineSpeed > 0 {
		params.MachineSpeed = engineCfg.MachineSpeed
	}
	defaultScales := engineCfg.DefaultScales
	if len(defaultScales) == 0 {
		defaultScales = defaultQuoteScales
	}
	return &QuoteServiceImpl{
		quotes:        quotes,
		materials:     materials,
		params:        params,
		defaultScales: defaultScales,
	}
}

// resolveMaterials loads the substrate and the optional finish.
func (s *QuoteServiceImpl) resolveMaterials(ctx context.Context, in model.QuoteInput) (*model.Material, *model.Material, error) {
	material, err := s.materials.GetByCode(ctx, in.MaterialCode)
	if err != nil {
		return nil, nil, fmt.Errorf("load material %q: %w", in.MaterialCode, err)
	}
	if material == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrMaterialNotFound, in.MaterialCode)
	}

	var finish *model.Material
	if in.FinishCode != "" {
		finish, err = s.materials.GetByCode(ctx, in.FinishCode)
		if err != nil {
			return nil, nil, fmt.Errorf("load finish %q: %w", in.FinishCode, err)
		}
		if finish == nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrMaterialNotFound, in.FinishCode)
		}
	}
	return material, finish, nil
}

// compute runs the full pricing pipeline for one job.
func (s *QuoteServiceImpl) compute(ctx context.Context, in model.QuoteInput) (*QuoteComputation, error) {
	material, finish, err := s.resolveMaterials(ctx, in)
	if err != nil {
		return nil, err
	}

	sleeve := in.IsSleeve()
	litho := pricing.NewLithoCalculator(s.params, sleeve)
	report := litho.FullReport(pricing.LithoInput{
		WidthMM:        in.WidthMM,
		AdvanceMM:      in.AdvanceMM,
		Tracks:         in.Tracks,
		PlatesSeparate: in.PlatesSeparate,
		IncludeDie:     in.IncludeDie,
		DieExists:      in.DieExists,
		GravingTypeID:  in.GravingTypeID,
	}, in.NumInks)
	if report.Err != nil {
		return nil, report.Err
	}

	// Separately quoted plates are excluded from unit costing; the rounded
	// stand-alone value travels in the snapshot instead.
	plateForCosting := report.PlatePrice
	if in.PlatesSeparate {
		plateForCosting = 0
	}
	dieValue := 0.0
	if in.IncludeDie {
		dieValue = report.DieValue
	}
	finishValue := 0.0
	if finish != nil {
		finishValue = finish.ValuePerM2
	}

	scales := in.Scales
	if len(scales) == 0 {
		scales = s.defaultScales
	}

	scaleCalc := pricing.NewScaleCalculator(s.params, sleeve)
	results, err := scaleCalc.ComputeAllScales(pricing.ScaleInput{
		Scales:         scales,
		Tracks:         in.Tracks,
		WidthMM:        in.WidthMM,
		AdvanceMM:      in.AdvanceMM,
		AdvanceTotalMM: in.AdvanceMM,
		WasteMM:        report.Best.WasteMM,
		AreaMM2:        report.LabelAreaMM2,
	}, in.NumInks, report.InkValuePerUnit, plateForCosting, dieValue, material.ValuePerM2, finishValue)
	if err != nil {
		return nil, err
	}

	return &QuoteComputation{
		Litho: model.LithoSnapshot{
			TotalWidthMM:       report.TotalWidthMM,
			MountTeeth:         report.MountTeeth,
			Best:               report.Best,
			Options:            report.Options,
			PlatePrice:         report.PlatePrice,
			PlateSeparateValue: report.PlateDetail.SeparateValue,
			DieValue:           dieValue,
			LabelAreaMM2:       report.LabelAreaMM2,
			InkValuePerUnit:    report.InkValuePerUnit,
		},
		Results:  results,
		Material: *material,
		Finish:   finish,
	}, nil
}

// Preview prices a job without persisting anything.
func (s *QuoteServiceImpl) Preview(ctx context.Context, in model.QuoteInput) (*QuoteComputation, error) {
	return s.compute(ctx, in)
}

// Save prices a job and stores the resulting quote.
func (s *QuoteServiceImpl) Save(ctx context.Context, in model.QuoteInput, createdBy string) (*model.Quote, error) {
	computation, err := s.compute(ctx, in)
	if err != nil {
		return nil, err
	}

	quote := &model.Quote{
		Input:     in,
		Litho:     computation.Litho,
		Results:   computation.Results,
		CreatedBy: createdBy,
	}
	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("store quote: %w", err)
	}
	return quote, nil
}

// Get returns a stored quote by its hex ID.
func (s *QuoteServiceImpl) Get(ctx context.Context, id string) (*model.Quote, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidQuoteID
	}
	quote, err := s.quotes.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, ErrQuoteNotFound
	}
	return quote, nil
}

// List returns stored quotes, optionally filtered by client name.
func (s *QuoteServiceImpl) List(ctx context.Context, clientName string, limit int) ([]model.Quote, error) {
	return s.quotes.List(ctx, clientName, limit)
}

// Delete removes a stored quote by its hex ID.
func (s *QuoteServiceImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidQuoteID
	}
	deleted, err := s.quotes.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrQuoteNotFound
	}
	return nil
}
