package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article represents a blog article document
type Article struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Begins      string             `json:"begins" bson:"begins"`
	Content     string             `json:"content" bson:"content"`
	URL         string             `json:"url" bson:"url"`
	CoverImages []string           `json:"coverImages" bson:"coverImages"`
	PublishedAt *time.Time         `json:"publishedAt,omitempty" bson:"publishedAt,omitempty"`
	DeletedAt   *time.Time         `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Published reports whether the article is visible on the blog
func (a *Article) Published() bool {
	return a.PublishedAt != nil
}

// ArticleSummary is the reduced projection returned by article listings
type ArticleSummary struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	URL         string             `json:"url" bson:"url"`
	Title       string             `json:"title" bson:"title"`
	Begins      string             `json:"begins" bson:"begins"`
	CoverImages []string           `json:"coverImages" bson:"coverImages"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
