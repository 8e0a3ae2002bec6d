package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litoflex/quote-service/internal/domain/dto"
	"github.com/litoflex/quote-service/internal/i18n"
	"github.com/litoflex/quote-service/internal/middleware"
	"github.com/litoflex/quote-service/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/auth/login requests.
// It verifies the configured admin credentials and issues a JWT access token.
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	token, expiresIn, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			middleware.AuditLogError(c, loggingFromContext(c), "login_failed", "Failed login attempt", err)
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, err)
		case errors.Is(err, service.ErrAuthNotConfigured):
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	c.Set(middleware.UserContextKey, req.Username)
	middleware.AuditLog(c, loggingFromContext(c), "login", "User logged in", nil)

	builder.SuccessOK(dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Username:  req.Username,
	})
}
