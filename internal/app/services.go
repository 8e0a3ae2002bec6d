// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/litoflex/quote-service/config"
	"github.com/litoflex/quote-service/internal/repository"
	"github.com/litoflex/quote-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Quotes    service.QuoteService
	Materials repository.MaterialsRepositoryInterface
	Auth      service.AuthService
}

// InitializeServices initializes business logic services. Without a database
// the service degrades to in-memory repositories: quoting keeps working
// against the default catalog but nothing survives a restart.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	var quotesRepo repository.QuotesRepositoryInterface
	var materialsRepo repository.MaterialsRepositoryInterface
	if db != nil {
		quotesRepo = db.QuotesRepo
		materialsRepo = db.MaterialsRepo
	} else {
		log.Warn().Msg("Database unavailable, using in-memory repositories")
		quotesRepo = repository.NewMemoryQuotesRepository()
		materialsRepo = repository.NewMemoryMaterialsRepository()
	}

	quoteService := service.NewQuoteService(quotesRepo, materialsRepo, cfg.Engine)

	var authService service.AuthService
	if cfg.Auth.Enabled && cfg.Auth.AdminPassHash != "" {
		authService = service.NewAuthService(cfg.Auth)
	}

	return &ServiceComponents{
		Quotes:    quoteService,
		Materials: materialsRepo,
		Auth:      authService,
	}
}
