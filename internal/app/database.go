// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/litoflex/quote-service/config"
	"github.com/litoflex/quote-service/internal/repository"
	"github.com/litoflex/quote-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	QuotesRepo     repository.QuotesRepositoryInterface
	MaterialsRepo  repository.MaterialsRepositoryInterface
	LoggingService service.LoggingService
}

// InitializeDatabase initializes the MongoDB connection and creates the
// repositories and the logging service.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	logsRepo := repository.NewLogsRepository(db)
	loggingService := service.NewLoggingService(logsRepo)

	quotesRepo := repository.NewQuotesRepository(db)
	materialsRepo := repository.NewMaterialsRepository(db)

	// Seed the materials catalog on first run
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := materialsRepo.Seed(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to seed materials catalog")
	}

	return &DatabaseComponents{
		DB:             db,
		QuotesRepo:     quotesRepo,
		MaterialsRepo:  materialsRepo,
		LoggingService: loggingService,
	}
}
