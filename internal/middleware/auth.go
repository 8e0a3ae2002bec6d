package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litoflex/quote-service/internal/domain/dto"
	"github.com/litoflex/quote-service/internal/i18n"
)

// APIKeyAuth returns a middleware that validates API keys.
// The key is read from the X-API-Key header or the api_key query parameter.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			apiKey = c.Query("api_key")
		}

		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		if apiKey == "" {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(i18n.ErrKeyAPIKeyRequired, locale)).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		if !validKeys[apiKey] {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(i18n.ErrKeyInvalidAPIKey, locale)).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		c.Next()
	}
}
