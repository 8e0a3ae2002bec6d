// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/litoflex/quote-service/internal/domain/model"
)

// QuotesRepositoryInterface defines the interface for quote persistence.
type QuotesRepositoryInterface interface {
	Create(ctx context.Context, quote *model.Quote) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Quote, error)
	GetByNumber(ctx context.Context, number string) (*model.Quote, error)
	List(ctx context.Context, clientName string, limit int) ([]model.Quote, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// MaterialsRepositoryInterface defines the interface for catalog operations.
type MaterialsRepositoryInterface interface {
	Seed(ctx context.Context) error
	GetByCode(ctx context.Context, code string) (*model.Material, error)
	List(ctx context.Context, kind string) ([]model.Material, error)
	UpdateValue(ctx context.Context, code string, valuePerM2 float64) (*model.Material, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}
