package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("liveness", func(t *testing.T) {
		router := gin.New()
		NewHealthHandler().Register(router)

		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("readiness without checkers", func(t *testing.T) {
		router := gin.New()
		NewHealthHandler().Register(router)

		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("readiness with healthy checker", func(t *testing.T) {
		router := gin.New()
		handler := NewHealthHandler()
		handler.RegisterChecker("mongodb", HealthCheckFunc(func() error { return nil }))
		handler.Register(router)

		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
	})

	t.Run("readiness with failing checker", func(t *testing.T) {
		router := gin.New()
		handler := NewHealthHandler()
		handler.RegisterChecker("mongodb", HealthCheckFunc(func() error { return errors.New("connection refused") }))
		handler.Register(router)

		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "degraded")
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}
