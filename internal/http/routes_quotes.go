package http

import (
	"github.com/gin-gonic/gin"
)

// QuoteRoutes handles quote and catalog route registration.
type QuoteRoutes struct {
	handler *Handler
}

// NewQuoteRoutes creates a new QuoteRoutes instance.
func NewQuoteRoutes(handler *Handler) *QuoteRoutes {
	return &QuoteRoutes{handler: handler}
}

// RegisterRoutes registers the quote and catalog endpoints on the given group.
// The same set is used for both public and JWT-protected deployments; the
// caller decides which group the routes land on.
func (r *QuoteRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	{
		quotes.POST("/preview", r.handler.PreviewQuote)
		quotes.POST("", r.handler.CreateQuote)
		quotes.GET("", r.handler.ListQuotes)
		quotes.GET("/:id", r.handler.GetQuote)
		quotes.GET("/:id/report", r.handler.GetQuoteReport)
		quotes.DELETE("/:id", r.handler.DeleteQuote)
	}

	materials := rg.Group("/materials")
	{
		materials.GET("", r.handler.ListMaterials)
		materials.PUT("/:code", r.handler.UpdateMaterial)
	}
}
