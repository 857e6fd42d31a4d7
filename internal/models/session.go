package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session tracks an issued login token. ExpiredAt mirrors the token's own
// expiry claim; DeletedAt invalidates the session eagerly when the token
// fails verification.
type Session struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Token     string             `json:"token" bson:"token"`
	ExpiredAt time.Time          `json:"expiredAt" bson:"expiredAt"`
	DeletedAt *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
