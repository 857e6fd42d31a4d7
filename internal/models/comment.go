package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a reader comment on an article
type Comment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ArticleID primitive.ObjectID `json:"article_id" bson:"article_id"`
	Username  string             `json:"username" bson:"username"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	Context   string             `json:"context" bson:"context"`
	DeletedAt *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
