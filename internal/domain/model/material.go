package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Material kinds.
const (
	KindSubstrate = "substrate"
	KindFinish    = "finish"
)

// Material is a priced substrate or finish from the materials catalog.
// ValuePerM2 is the purchase cost per square meter in COP.
type Material struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code       string             `json:"code" bson:"code"`
	Name       string             `json:"name" bson:"name"`
	Kind       string             `json:"kind" bson:"kind"`
	ValuePerM2 float64            `json:"value_per_m2" bson:"value_per_m2"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}
