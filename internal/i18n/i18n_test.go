package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	translator1 := GetTranslator()
	translator2 := GetTranslator()
	assert.NotNil(t, translator1)
	assert.Equal(t, translator1, translator2)
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english message",
			key:      "error.invalid_request",
			locale:   "en",
			expected: "Invalid request",
		},
		{
			name:     "spanish message",
			key:      "error.invalid_request",
			locale:   "es",
			expected: "Solicitud inválida",
		},
		{
			name:     "spanish domain message",
			key:      ErrKeyNoFeasibleOption,
			locale:   "es",
			expected: "Ninguna combinación de cilindro y repeticiones se ajusta a este avance",
		},
		{
			name:     "empty locale defaults to english",
			key:      "error.invalid_request",
			locale:   "",
			expected: "Invalid request",
		},
		{
			name:     "unsupported locale falls back to english",
			key:      "error.invalid_request",
			locale:   "fr",
			expected: "Invalid request",
		},
		{
			name:     "unknown key returns key",
			key:      "error.does_not_exist",
			locale:   "en",
			expected: "error.does_not_exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "no header",
			header:   "",
			expected: "en",
		},
		{
			name:     "simple spanish",
			header:   "es",
			expected: "es",
		},
		{
			name:     "regional variant with quality values",
			header:   "es-CO,es;q=0.9,en;q=0.8",
			expected: "es",
		},
		{
			name:     "uppercase normalized",
			header:   "ES",
			expected: "es",
		},
		{
			name:     "unsupported language falls back",
			header:   "de-DE,de;q=0.9",
			expected: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.header)
			}
			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}
