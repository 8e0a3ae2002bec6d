// Package i18n provides internationalization support for the quote service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyWidthExceeded indicates the job exceeds the machine width.
	ErrKeyWidthExceeded = "error.width_exceeded"
	// ErrKeyNoFeasibleOption indicates no cylinder combination fits.
	ErrKeyNoFeasibleOption = "error.no_feasible_option"
	// ErrKeyInvalidMarkup indicates an out-of-range profitability margin.
	ErrKeyInvalidMarkup = "error.invalid_markup"
	// ErrKeyCostCalculation indicates a scale-cost failure.
	ErrKeyCostCalculation = "error.cost_calculation"
	// ErrKeyQuoteNotFound indicates a missing stored quote.
	ErrKeyQuoteNotFound = "error.quote_not_found"
	// ErrKeyMaterialNotFound indicates a missing material.
	ErrKeyMaterialNotFound = "error.material_not_found"
)

// Success message translation keys.
const (
	// SuccessKeyQuoteCalculated indicates a successful quote calculation.
	SuccessKeyQuoteCalculated = "success.quote_calculated"
	// SuccessKeyQuoteSaved indicates a successfully persisted quote.
	SuccessKeyQuoteSaved = "success.quote_saved"
)
