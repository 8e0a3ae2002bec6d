package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/litoflex/quote-service/internal/domain/model"
)

// MemoryQuotesRepository is an in-memory QuotesRepositoryInterface used when
// the service runs without a database, and in tests.
type MemoryQuotesRepository struct {
	mu     sync.RWMutex
	quotes map[primitive.ObjectID]*model.Quote
	seq    int
}

// NewMemoryQuotesRepository creates an empty in-memory quotes repository.
func NewMemoryQuotesRepository() *MemoryQuotesRepository {
	return &MemoryQuotesRepository{
		quotes: make(map[primitive.ObjectID]*model.Quote),
	}
}

// Create stores the quote, assigning an ID, business number and timestamps.
func (r *MemoryQuotesRepository) Create(_ context.Context, quote *model.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	now := time.Now()
	quote.ID = primitive.NewObjectID()
	quote.QuoteNumber = fmt.Sprintf("CT-%d-%05d", now.Year(), r.seq)
	quote.CreatedAt = now
	quote.UpdatedAt = now

	stored := *quote
	r.quotes[quote.ID] = &stored
	return nil
}

// GetByID returns the stored quote, or nil when not found.
func (r *MemoryQuotesRepository) GetByID(_ context.Context, id primitive.ObjectID) (*model.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quote, ok := r.quotes[id]
	if !ok {
		return nil, nil
	}
	copied := *quote
	return &copied, nil
}

// GetByNumber returns the quote with the given business number, or nil.
func (r *MemoryQuotesRepository) GetByNumber(_ context.Context, number string) (*model.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, quote := range r.quotes {
		if quote.QuoteNumber == number {
			copied := *quote
			return &copied, nil
		}
	}
	return nil, nil
}

// List returns stored quotes sorted by creation time descending.
func (r *MemoryQuotesRepository) List(_ context.Context, clientName string, limit int) ([]model.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quotes := make([]model.Quote, 0, len(r.quotes))
	for _, quote := range r.quotes {
		if clientName != "" && !strings.EqualFold(quote.Input.ClientName, clientName) {
			continue
		}
		quotes = append(quotes, *quote)
	}
	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	if limit > 0 && len(quotes) > limit {
		quotes = quotes[:limit]
	}
	return quotes, nil
}

// Delete removes a quote, reporting whether it existed.
func (r *MemoryQuotesRepository) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.quotes[id]; !ok {
		return false, nil
	}
	delete(r.quotes, id)
	return true, nil
}

// MemoryMaterialsRepository is an in-memory MaterialsRepositoryInterface
// holding the default catalog. Used without a database, and in tests.
type MemoryMaterialsRepository struct {
	mu        sync.RWMutex
	materials map[string]model.Material
}

// NewMemoryMaterialsRepository creates an in-memory catalog preloaded with
// the default materials.
func NewMemoryMaterialsRepository() *MemoryMaterialsRepository {
	r := &MemoryMaterialsRepository{
		materials: make(map[string]model.Material),
	}
	now := time.Now()
	for _, m := range DefaultCatalog() {
		m.ID = primitive.NewObjectID()
		m.UpdatedAt = now
		r.materials[m.Code] = m
	}
	return r
}

// Seed is a no-op; the catalog is preloaded at construction.
func (r *MemoryMaterialsRepository) Seed(_ context.Context) error {
	return nil
}

// GetByCode returns the material with the given code, or nil when not found.
func (r *MemoryMaterialsRepository) GetByCode(_ context.Context, code string) (*model.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	material, ok := r.materials[code]
	if !ok {
		return nil, nil
	}
	return &material, nil
}

// List returns the catalog sorted by code, optionally filtered by kind.
func (r *MemoryMaterialsRepository) List(_ context.Context, kind string) ([]model.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	materials := make([]model.Material, 0, len(r.materials))
	for _, m := range r.materials {
		if kind != "" && m.Kind != kind {
			continue
		}
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool {
		return materials[i].Code < materials[j].Code
	})
	return materials, nil
}

// UpdateValue updates a catalog price, returning nil when the code is unknown.
func (r *MemoryMaterialsRepository) UpdateValue(_ context.Context, code string, valuePerM2 float64) (*model.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	material, ok := r.materials[code]
	if !ok {
		return nil, nil
	}
	material.ValuePerM2 = valuePerM2
	material.UpdatedAt = time.Now()
	r.materials[code] = material
	return &material, nil
}
