package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag represents a tag document. The tag side owns the tag/article
// relationship: Articles holds the referenced article ids with set
// semantics enforced by $addToSet/$pull at the update layer.
type Tag struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name      string               `json:"name" bson:"name"`
	Articles  []primitive.ObjectID `json:"articles" bson:"articles"`
	DeletedAt *time.Time           `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}
