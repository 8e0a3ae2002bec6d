// Package i18n provides internationalization support for the quote service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "es-CO,es;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "es" from "es-CO")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "Invalid username or password",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.width_exceeded":       "The job is wider than the machine",
			"error.no_feasible_option":   "No cylinder and repetition combination fits this advance",
			"error.invalid_markup":       "Profitability margin must be below 100",
			"error.cost_calculation":     "Cost calculation failed",
			"error.quote_not_found":      "Quote not found",
			"error.material_not_found":   "Material not found",

			// Success messages
			"success.quote_calculated": "Quote calculation completed successfully",
			"success.quote_saved":      "Quote saved successfully",
		},
		"es": {
			// Error messages
			"error.invalid_request":      "Solicitud inválida",
			"error.invalid_request_body": "Cuerpo de la solicitud inválido",
			"error.internal_error":       "Ocurrió un error inesperado",
			"error.unauthorized":         "No autorizado",
			"error.invalid_credentials":  "Usuario o contraseña inválidos",
			"error.api_key_required":     "Se requiere una clave de API",
			"error.invalid_api_key":      "Clave de API inválida",
			"error.forbidden":            "Prohibido",
			"error.not_found":            "No encontrado",
			"error.rate_limit_exceeded":  "Demasiadas solicitudes, intente de nuevo más tarde",
			"error.invalid_token":        "Token inválido o expirado",
			"error.token_required":       "Se requiere un token de autenticación",
			"error.width_exceeded":       "El trabajo es más ancho que la máquina",
			"error.no_feasible_option":   "Ninguna combinación de cilindro y repeticiones se ajusta a este avance",
			"error.invalid_markup":       "La rentabilidad debe ser menor que 100",
			"error.cost_calculation":     "Falló el cálculo de costos",
			"error.quote_not_found":      "Cotización no encontrada",
			"error.material_not_found":   "Material no encontrado",

			// Success messages
			"success.quote_calculated": "Cálculo de cotización completado con éxito",
			"success.quote_saved":      "Cotización guardada con éxito",
		},
	}
}
