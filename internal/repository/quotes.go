// Package repository provides data access for stored quotes.
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/litoflex/quote-service/internal/domain/model"
)

// QuotesRepository provides methods for quote persistence.
type QuotesRepository struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

// NewQuotesRepository creates a new quotes repository.
func NewQuotesRepository(db *MongoDB) *QuotesRepository {
	return &QuotesRepository{
		collection: db.Quotes,
		counters:   db.Counters,
	}
}

// nextQuoteNumber atomically increments the quote counter and formats the
// business number, e.g. "CT-2026-00042".
func (r *QuotesRepository) nextQuoteNumber(ctx context.Context) (string, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(
		ctx,
		bson.M{"_id": "quotes"},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CT-%d-%05d", time.Now().Year(), counter.Seq), nil
}

// Create persists a new quote, assigning its ID and quote number.
func (r *QuotesRepository) Create(ctx context.Context, quote *model.Quote) error {
	number, err := r.nextQuoteNumber(ctx)
	if err != nil {
		return err
	}

	quote.ID = primitive.NewObjectID()
	quote.QuoteNumber = number
	now := time.Now()
	quote.CreatedAt = now
	quote.UpdatedAt = now

	_, err = r.collection.InsertOne(ctx, quote)
	return err
}

// GetByID returns the quote with the given ID, or nil when not found.
func (r *QuotesRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Quote, error) {
	var quote model.Quote
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&quote)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// GetByNumber returns the quote with the given business number, or nil when
// not found.
func (r *QuotesRepository) GetByNumber(ctx context.Context, number string) (*model.Quote, error) {
	var quote model.Quote
	err := r.collection.FindOne(ctx, bson.M{"quote_number": number}).Decode(&quote)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// List returns quotes ordered by creation time descending, optionally
// filtered by client name.
func (r *QuotesRepository) List(ctx context.Context, clientName string, limit int) ([]model.Quote, error) {
	filter := bson.M{}
	if clientName != "" {
		filter["input.client_name"] = clientName
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var quotes []model.Quote
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// Delete removes a stored quote. Returns true when a document was deleted.
func (r *QuotesRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
