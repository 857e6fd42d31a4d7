package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blog-backend-api/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used across the repositories
const (
	CollectionArticles = "articles"
	CollectionTags     = "tags"
	CollectionComments = "comments"
	CollectionSessions = "sessions"
)

// DB wraps the mongo client with additional functionality
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger
}

// New creates a new MongoDB connection
func New(cfg *config.DatabaseConfig, log zerolog.Logger) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	wrapper := &DB{
		client: client,
		db:     client.Database(cfg.Name),
		log:    log.With().Str("component", "database").Logger(),
	}

	wrapper.log.Info().
		Str("database", cfg.Name).
		Uint64("max_pool_size", cfg.MaxPoolSize).
		Msg("Database connection established")

	return wrapper, nil
}

// Collection returns a handle to the named collection
func (db *DB) Collection(name string) *mongo.Collection {
	return db.db.Collection(name)
}

// RunMigrations executes all pending migrations using golang-migrate.
// Migrations create the collection indexes (unique live article url,
// unique session token, session TTL).
func (db *DB) RunMigrations(migrationsPath string) error {
	db.log.Info().Str("path", migrationsPath).Msg("Running database migrations")

	driver, err := mongodb.WithInstance(db.client, &mongodb.Config{DatabaseName: db.db.Name()})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		db.db.Name(),
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	db.log.Info().
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Migrations completed")

	return nil
}

// HealthCheck verifies the database connection is healthy
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client
func (db *DB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.client.Disconnect(ctx)
}
