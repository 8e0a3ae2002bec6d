package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/litoflex/quote-service/internal/domain/model"
	"github.com/litoflex/quote-service/internal/service"
)

// AuditLog records a domain action (quote calculated, quote saved, material
// updated) to the logs store. Best effort, runs off the request goroutine.
func AuditLog(c *gin.Context, loggingService service.LoggingService, actionType, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      "info",
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		User:       GetUser(c),
		ActionType: actionType,
		Fields:     fields,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// AuditLogError records a failed domain action.
func AuditLogError(c *gin.Context, loggingService service.LoggingService, actionType, message string, err error) {
	if loggingService == nil {
		return
	}

	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      "error",
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		User:       GetUser(c),
		ActionType: actionType,
		Fields:     map[string]interface{}{"error": err.Error()},
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
