package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/litoflex/quote-service/config"
	"github.com/litoflex/quote-service/internal/domain/model"
	"github.com/litoflex/quote-service/internal/mocks"
	"github.com/litoflex/quote-service/internal/pricing"
	"github.com/litoflex/quote-service/internal/repository"
)

func newTestService() *QuoteServiceImpl {
	return NewQuoteService(
		repository.NewMemoryQuotesRepository(),
		repository.NewMemoryMaterialsRepository(),
		config.EngineConfig{},
	)
}

func labelInput() model.QuoteInput {
	return model.QuoteInput{
		ClientName:   "Acme Labels",
		ProductType:  model.ProductLabel,
		WidthMM:      100,
		AdvanceMM:    100,
		Tracks:       1,
		NumInks:      2,
		MaterialCode: "BOPP-BL",
		Scales:       []int{1000, 2000},
	}
}

func TestQuoteService_Preview(t *testing.T) {
	ctx := context.Background()

	t.Run("label quote with finish", func(t *testing.T) {
		svc := newTestService()
		in := labelInput()
		in.FinishCode = "LAM-MATE"

		computation, err := svc.Preview(ctx, in)
		require.NoError(t, err)
		require.Len(t, computation.Results, 2)

		assert.Equal(t, 1000, computation.Results[0].Scale)
		assert.Equal(t, 2000, computation.Results[1].Scale)
		assert.Greater(t, computation.Results[0].UnitValue, 0.0)
		// Fixed costs amortize across larger runs
		assert.Greater(t, computation.Results[0].UnitValue, computation.Results[1].UnitValue)

		assert.Greater(t, computation.Litho.MountTeeth, 0.0)
		assert.Greater(t, computation.Litho.PlatePrice, 0.0)
		assert.Greater(t, computation.Litho.LabelAreaMM2, 0.0)
		assert.Equal(t, "BOPP-BL", computation.Material.Code)
		require.NotNil(t, computation.Finish)
		assert.Equal(t, "LAM-MATE", computation.Finish.Code)
	})

	t.Run("sleeve quote", func(t *testing.T) {
		svc := newTestService()
		in := labelInput()
		in.ProductType = model.ProductSleeve
		in.MaterialCode = "PET-MG"
		in.FinishCode = ""

		computation, err := svc.Preview(ctx, in)
		require.NoError(t, err)
		require.Len(t, computation.Results, 2)
		assert.Greater(t, computation.Results[0].UnitValue, 0.0)
		assert.Nil(t, computation.Finish)
	})

	t.Run("empty scales fall back to defaults", func(t *testing.T) {
		svc := newTestService()
		in := labelInput()
		in.Scales = nil

		computation, err := svc.Preview(ctx, in)
		require.NoError(t, err)
		require.Len(t, computation.Results, len(defaultQuoteScales))
		assert.Equal(t, defaultQuoteScales[0], computation.Results[0].Scale)
	})

	t.Run("configured default scales win", func(t *testing.T) {
		svc := NewQuoteService(
			repository.NewMemoryQuotesRepository(),
			repository.NewMemoryMaterialsRepository(),
			config.EngineConfig{DefaultScales: []int{500}},
		)
		in := labelInput()
		in.Scales = nil

		computation, err := svc.Preview(ctx, in)
		require.NoError(t, err)
		require.Len(t, computation.Results, 1)
		assert.Equal(t, 500, computation.Results[0].Scale)
	})

	t.Run("unknown material", func(t *testing.T) {
		svc := newTestService()
		in := labelInput()
		in.MaterialCode = "NOPE"

		_, err := svc.Preview(ctx, in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMaterialNotFound)
	})

	t.Run("unknown finish", func(t *testing.T) {
		svc := newTestService()
		in := labelInput()
		in.FinishCode = "NOPE"

		_, err := svc.Preview(ctx, in)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMaterialNotFound)
	})

	t.Run("width exceeded carries suggested tracks", func(t *testing.T) {
		svc := newTestService()
		in := labelInput()
		in.WidthMM = 200
		in.Tracks = 2

		_, err := svc.Preview(ctx, in)
		require.Error(t, err)

		var widthErr *pricing.WidthExceededError
		require.ErrorAs(t, err, &widthErr)
		assert.Equal(t, 1, widthErr.SuggestedMaxTracks)
	})

	t.Run("machine width override admits wider jobs", func(t *testing.T) {
		svc := NewQuoteService(
			repository.NewMemoryQuotesRepository(),
			repository.NewMemoryMaterialsRepository(),
			config.EngineConfig{MaxMachineWidthMM: 1000},
		)
		in := labelInput()
		in.WidthMM = 200
		in.Tracks = 2

		_, err := svc.Preview(ctx, in)
		require.NoError(t, err)
	})

	t.Run("die priced only when included", func(t *testing.T) {
		svc := newTestService()
		in := labelInput()

		without, err := svc.Preview(ctx, in)
		require.NoError(t, err)
		assert.Zero(t, without.Litho.DieValue)

		in.IncludeDie = true
		with, err := svc.Preview(ctx, in)
		require.NoError(t, err)
		assert.Greater(t, with.Litho.DieValue, 0.0)
		assert.Greater(t, with.Results[0].UnitValue, without.Results[0].UnitValue)
	})

	t.Run("separate plates leave unit price and carry rounded value", func(t *testing.T) {
		svc := newTestService()
		in := labelInput()

		combined, err := svc.Preview(ctx, in)
		require.NoError(t, err)
		assert.Zero(t, combined.Litho.PlateSeparateValue)

		in.PlatesSeparate = true
		separate, err := svc.Preview(ctx, in)
		require.NoError(t, err)
		assert.Greater(t, separate.Litho.PlateSeparateValue, 0.0)
		assert.Less(t, separate.Results[0].UnitValue, combined.Results[0].UnitValue)
	})
}

func TestQuoteService_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	quote, err := svc.Save(ctx, labelInput(), "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, quote.QuoteNumber)
	assert.Contains(t, quote.QuoteNumber, "CT-")
	assert.Equal(t, "admin", quote.CreatedBy)
	assert.False(t, quote.CreatedAt.IsZero())

	loaded, err := svc.Get(ctx, quote.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, quote.QuoteNumber, loaded.QuoteNumber)
	assert.Equal(t, quote.Input.ClientName, loaded.Input.ClientName)

	quotes, err := svc.List(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
}

func TestQuoteService_Get_Errors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Get(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrInvalidQuoteID)

	_, err = svc.Get(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrQuoteNotFound)
}

func TestQuoteService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	quote, err := svc.Save(ctx, labelInput(), "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, quote.ID.Hex()))
	assert.ErrorIs(t, svc.Delete(ctx, quote.ID.Hex()), ErrQuoteNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "nope"), ErrInvalidQuoteID)
}

func TestQuoteService_RepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("material lookup failure", func(t *testing.T) {
		materialsRepo := new(mocks.MockMaterialsRepositoryInterface)
		materialsRepo.On("GetByCode", mock.Anything, "BOPP-BL").Return(nil, errors.New("connection reset"))

		svc := NewQuoteService(new(mocks.MockQuotesRepositoryInterface), materialsRepo, config.EngineConfig{})
		_, err := svc.Preview(ctx, labelInput())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
		materialsRepo.AssertExpectations(t)
	})

	t.Run("quote store failure", func(t *testing.T) {
		quotesRepo := new(mocks.MockQuotesRepositoryInterface)
		quotesRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("write concern error"))

		svc := NewQuoteService(quotesRepo, repository.NewMemoryMaterialsRepository(), config.EngineConfig{})
		_, err := svc.Save(ctx, labelInput(), "admin")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store quote")
		quotesRepo.AssertExpectations(t)
	})
}
