package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blog-backend-api/internal/database"
	"github.com/blog-backend-api/internal/locale"
	"github.com/blog-backend-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// sessionRepo is the concrete implementation of SessionRepository
type sessionRepo struct {
	coll *mongo.Collection
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *database.DB) SessionRepository {
	return &sessionRepo{coll: db.Collection(database.CollectionSessions)}
}

// Create inserts a new session document
func (r *sessionRepo) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	if session == nil || session.Token == "" {
		return nil, locale.Coded("session", "model", "1000")
	}

	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	result, err := r.coll.InsertOne(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = result.InsertedID.(primitive.ObjectID)
	return session, nil
}

// FindByToken returns the live session holding the token or nil
func (r *sessionRepo) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, locale.Coded("session", "model", "1001")
	}

	var session models.Session
	err := r.coll.FindOne(ctx, bson.M{"token": token, "deletedAt": notDeleted()}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// SoftDeleteByToken marks the session invalid, forcing a logout
func (r *sessionRepo) SoftDeleteByToken(ctx context.Context, token string) error {
	if token == "" {
		return locale.Coded("session", "model", "1001")
	}

	now := time.Now()
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"token": token},
		bson.M{"$set": bson.M{"deletedAt": now, "updatedAt": now}},
	)
	return err
}
