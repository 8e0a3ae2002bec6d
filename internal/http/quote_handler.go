package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/litoflex/quote-service/internal/domain/dto"
	"github.com/litoflex/quote-service/internal/domain/model"
	"github.com/litoflex/quote-service/internal/i18n"
	"github.com/litoflex/quote-service/internal/metrics"
	"github.com/litoflex/quote-service/internal/middleware"
	"github.com/litoflex/quote-service/internal/pricing"
	"github.com/litoflex/quote-service/internal/report"
	"github.com/litoflex/quote-service/internal/repository"
	"github.com/litoflex/quote-service/internal/service"
)

const defaultListLimit = 50

// Handler provides HTTP handlers for quote and catalog routes.
type Handler struct {
	quotes    service.QuoteService
	materials repository.MaterialsRepositoryInterface
	reports   *report.Generator
}

// NewHandler creates a new Handler instance.
func NewHandler(quotes service.QuoteService, materials repository.MaterialsRepositoryInterface) *Handler {
	return &Handler{
		quotes:    quotes,
		materials: materials,
		reports:   report.NewGenerator(),
	}
}

// loggingFromContext returns the logging service stored by the router, if any.
func loggingFromContext(c *gin.Context) service.LoggingService {
	if v, exists := c.Get("logging_service"); exists {
		if ls, ok := v.(service.LoggingService); ok {
			return ls
		}
	}
	return nil
}

// bindQuoteRequest binds and validates the quote request body, writing the
// error response itself on failure.
func bindQuoteRequest(c *gin.Context, builder *ResponseBuilder) (*dto.QuoteRequest, bool) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			metrics.RecordQuoteCalculation(req.ProductType, 0, "validation_error")
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return nil, false
	}
	return &req, true
}

// respondComputeError maps pricing and service errors to HTTP responses.
func respondComputeError(builder *ResponseBuilder, err error) {
	var (
		widthErr     *pricing.WidthExceededError
		noOptionErr  *pricing.NoFeasibleOptionError
		costErr      *pricing.CostCalculationError
		markupErr    *pricing.InvalidMarkupError
		invalidInput *pricing.InvalidInputError
	)

	switch {
	case errors.As(err, &widthErr):
		details := map[string]string{
			"computed_width_mm": strconv.FormatFloat(widthErr.ComputedMM, 'f', -1, 64),
			"max_width_mm":      strconv.FormatFloat(widthErr.MaxMM, 'f', -1, 64),
		}
		if widthErr.SuggestedMaxTracks > 0 {
			details["suggested_max_tracks"] = strconv.Itoa(widthErr.SuggestedMaxTracks)
		}
		builder.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeWidthExceeded, i18n.ErrKeyWidthExceeded, err, details)
	case errors.As(err, &noOptionErr):
		builder.ErrorWithCode(http.StatusUnprocessableEntity, dto.ErrCodeNoFeasibleOption, i18n.ErrKeyNoFeasibleOption, err, nil)
	// A cost error may wrap a markup error, so it is matched first.
	case errors.As(err, &costErr):
		builder.ErrorWithCode(http.StatusInternalServerError, dto.ErrCodeCostCalculation, i18n.ErrKeyCostCalculation, err, nil)
	case errors.As(err, &markupErr):
		builder.ErrorWithCode(http.StatusBadRequest, dto.ErrCodeInvalidMarkup, i18n.ErrKeyInvalidMarkup, err, nil)
	case errors.As(err, &invalidInput):
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrMaterialNotFound):
		builder.ErrorWithCode(http.StatusNotFound, dto.ErrCodeNotFound, i18n.ErrKeyMaterialNotFound, err, nil)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// PreviewQuote handles POST /api/quotes/preview requests.
// It prices a job and returns the full breakdown without persisting anything.
func (h *Handler) PreviewQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindQuoteRequest(c, builder)
	if !ok {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	middleware.AuditLog(c, loggingFromContext(c), "quote_preview", "Quote preview requested", map[string]interface{}{
		"product_type": in.ProductType,
		"client_name":  in.ClientName,
		"tracks":       in.Tracks,
		"num_inks":     in.NumInks,
	})

	start := time.Now()
	computation, err := h.quotes.Preview(c.Request.Context(), in)
	if err != nil {
		metrics.RecordQuoteCalculation(in.ProductType, time.Since(start), "error")
		respondComputeError(builder, err)
		return
	}

	metrics.RecordQuoteCalculation(in.ProductType, time.Since(start), "success")
	builder.SuccessOK(computation)
}

// CreateQuote handles POST /api/quotes requests.
// It prices a job and stores the resulting quote with a business number.
func (h *Handler) CreateQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindQuoteRequest(c, builder)
	if !ok {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		return
	}

	start := time.Now()
	quote, err := h.quotes.Save(c.Request.Context(), in, middleware.GetUser(c))
	if err != nil {
		metrics.RecordQuoteCalculation(in.ProductType, time.Since(start), "error")
		respondComputeError(builder, err)
		return
	}

	metrics.RecordQuoteCalculation(in.ProductType, time.Since(start), "success")
	metrics.RecordQuoteSaved(in.ProductType)

	middleware.AuditLog(c, loggingFromContext(c), "quote_saved", "Quote saved", map[string]interface{}{
		"quote_number": quote.QuoteNumber,
		"product_type": in.ProductType,
		"client_name":  in.ClientName,
	})

	builder.SuccessCreated(quote)
}

// GetQuote handles GET /api/quotes/:id requests.
func (h *Handler) GetQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	quote, err := h.quotes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondQuoteLookupError(builder, err)
		return
	}
	builder.SuccessOK(quote)
}

// ListQuotes handles GET /api/quotes requests.
// Supports filtering by client_name and a limit query parameter.
func (h *Handler) ListQuotes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			builder.ErrorWithMessage(http.StatusBadRequest, "limit: must be a positive integer", err)
			return
		}
		limit = v
	}

	quotes, err := h.quotes.List(c.Request.Context(), c.Query("client_name"), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(quotes)
}

// DeleteQuote handles DELETE /api/quotes/:id requests.
func (h *Handler) DeleteQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id := c.Param("id")
	if err := h.quotes.Delete(c.Request.Context(), id); err != nil {
		h.respondQuoteLookupError(builder, err)
		return
	}

	middleware.AuditLog(c, loggingFromContext(c), "quote_deleted", "Quote deleted", map[string]interface{}{
		"quote_id": id,
	})

	builder.SuccessOK(map[string]string{"message": "Quote deleted"})
}

// GetQuoteReport handles GET /api/quotes/:id/report requests.
// It renders the stored quote as a technical markdown document.
func (h *Handler) GetQuoteReport(c *gin.Context) {
	builder := NewResponseBuilder(c)

	quote, err := h.quotes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondQuoteLookupError(builder, err)
		return
	}

	// Catalog lookups are best effort here; the report falls back to the
	// stored codes when an entry has since been removed.
	material, _ := h.materials.GetByCode(c.Request.Context(), quote.Input.MaterialCode)
	var finish *model.Material
	if quote.Input.FinishCode != "" {
		finish, _ = h.materials.GetByCode(c.Request.Context(), quote.Input.FinishCode)
	}

	md := h.reports.Technical(quote, material, finish)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
}

// respondQuoteLookupError maps quote lookup errors to HTTP responses.
func (h *Handler) respondQuoteLookupError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidQuoteID):
		builder.ErrorWithMessage(http.StatusBadRequest, "id: must be a valid quote id", err)
	case errors.Is(err, service.ErrQuoteNotFound):
		builder.ErrorWithCode(http.StatusNotFound, dto.ErrCodeNotFound, i18n.ErrKeyQuoteNotFound, err, nil)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// ListMaterials handles GET /api/materials requests.
// Supports filtering by kind ("substrate" or "finish").
func (h *Handler) ListMaterials(c *gin.Context) {
	builder := NewResponseBuilder(c)

	materials, err := h.materials.List(c.Request.Context(), c.Query("kind"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(materials)
}

// UpdateMaterial handles PUT /api/materials/:code requests.
// It updates the per-square-meter price of a catalog entry.
func (h *Handler) UpdateMaterial(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	code := c.Param("code")
	material, err := h.materials.UpdateValue(c.Request.Context(), code, req.ValuePerM2)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if material == nil {
		builder.ErrorWithCode(http.StatusNotFound, dto.ErrCodeNotFound, i18n.ErrKeyMaterialNotFound, nil, nil)
		return
	}

	middleware.AuditLog(c, loggingFromContext(c), "material_updated", "Material price updated", map[string]interface{}{
		"code":         code,
		"value_per_m2": req.ValuePerM2,
	})

	builder.SuccessOK(material)
}
