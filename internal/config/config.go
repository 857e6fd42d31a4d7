package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Authentication configuration
	Auth AuthConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds MongoDB connection settings
type DatabaseConfig struct {
	URI            string
	Name           string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

// AuthConfig holds the login credentials and token settings. It is built
// once at startup and injected; nothing reads these secrets from the
// environment at call time.
type AuthConfig struct {
	Username     string
	PasswordHash string
	Salt         string
	JWTSecret    string
	Issuer       string
	TokenTTL     time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			URI:            getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
			Name:           getEnv("MONGODB_NAME", "blog"),
			ConnectTimeout: getDurationEnv("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
			MaxPoolSize:    uint64(getIntEnv("MONGODB_MAX_POOL_SIZE", 100)),
		},
		Auth: AuthConfig{
			Username:     os.Getenv("AUTH_USERNAME"),
			PasswordHash: os.Getenv("AUTH_PASSWORD_HASH"),
			Salt:         os.Getenv("AUTH_SALT"),
			JWTSecret:    os.Getenv("JWT_SECRET"),
			Issuer:       getEnv("JWT_ISSUER", "rukeith"),
			TokenTTL:     getDurationEnv("TOKEN_TTL", 30*time.Minute),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.URI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("MONGODB_NAME is required")
	}
	if c.Auth.Username == "" {
		return fmt.Errorf("AUTH_USERNAME is required")
	}
	if c.Auth.PasswordHash == "" {
		return fmt.Errorf("AUTH_PASSWORD_HASH is required")
	}
	if c.Auth.Salt == "" {
		return fmt.Errorf("AUTH_SALT is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
