// Package repository provides data access for the materials catalog.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/litoflex/quote-service/internal/domain/model"
)

// MaterialsRepository provides methods for catalog operations.
type MaterialsRepository struct {
	collection *mongo.Collection
}

// NewMaterialsRepository creates a new materials repository.
func NewMaterialsRepository(db *MongoDB) *MaterialsRepository {
	return &MaterialsRepository{
		collection: db.Materials,
	}
}

// DefaultCatalog returns the seed catalog used when the collection is empty.
// Values are COP per square meter.
func DefaultCatalog() []model.Material {
	return []model.Material{
		{Code: "BOPP-BL", Name: "BOPP Blanco", Kind: model.KindSubstrate, ValuePerM2: 1800},
		{Code: "BOPP-TR", Name: "BOPP Transparente", Kind: model.KindSubstrate, ValuePerM2: 1700},
		{Code: "BOPP-MET", Name: "BOPP Metalizado", Kind: model.KindSubstrate, ValuePerM2: 2100},
		{Code: "PAP-ADH", Name: "Papel Adhesivo", Kind: model.KindSubstrate, ValuePerM2: 1500},
		{Code: "PET-MG", Name: "PETG Manga", Kind: model.KindSubstrate, ValuePerM2: 2400},
		{Code: "LAM-MATE", Name: "Laminado Mate", Kind: model.KindFinish, ValuePerM2: 600},
		{Code: "LAM-BRILL", Name: "Laminado Brillante", Kind: model.KindFinish, ValuePerM2: 550},
		{Code: "BARNIZ-UV", Name: "Barniz UV", Kind: model.KindFinish, ValuePerM2: 400},
	}
}

// Seed inserts the default catalog when no materials exist yet.
func (r *MaterialsRepository) Seed(ctx context.Context) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catalog := DefaultCatalog()
	docs := make([]interface{}, len(catalog))
	now := time.Now()
	for i := range catalog {
		catalog[i].ID = primitive.NewObjectID()
		catalog[i].UpdatedAt = now
		docs[i] = catalog[i]
	}
	_, err = r.collection.InsertMany(ctx, docs)
	return err
}

// GetByCode returns the material with the given code, or nil when not found.
func (r *MaterialsRepository) GetByCode(ctx context.Context, code string) (*model.Material, error) {
	var material model.Material
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&material)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// List returns the catalog, optionally filtered by kind.
func (r *MaterialsRepository) List(ctx context.Context, kind string) ([]model.Material, error) {
	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"code": 1}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var materials []model.Material
	if err := cursor.All(ctx, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// UpdateValue updates the price of a catalog entry. Returns the updated
// material, or nil when the code does not exist.
func (r *MaterialsRepository) UpdateValue(ctx context.Context, code string, valuePerM2 float64) (*model.Material, error) {
	var material model.Material
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"code": code},
		bson.M{"$set": bson.M{"value_per_m2": valuePerM2, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&material)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &material, nil
}
