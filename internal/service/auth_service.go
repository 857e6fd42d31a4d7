package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/blog-backend-api/internal/config"
	"github.com/blog-backend-api/internal/locale"
	"github.com/blog-backend-api/internal/models"
	"github.com/blog-backend-api/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// authService implements AuthService: credential verification, token
// issuance and per-request session authentication.
type authService struct {
	sessions repository.SessionRepository
	cfg      *config.AuthConfig
	log      zerolog.Logger
}

func newAuthService(sessions repository.SessionRepository, cfg *config.AuthConfig, log zerolog.Logger) *authService {
	return &authService{
		sessions: sessions,
		cfg:      cfg,
		log:      log.With().Str("service", "auth").Logger(),
	}
}

// encryptPassword recomputes the keyed hash the stored password hash was
// derived from.
func encryptPassword(password, salt string) string {
	mac := hmac.New(sha512.New, []byte(salt))
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}

// verifyPassword compares a submitted password against the configured
// hash. The salt is appended to the candidate before hashing, matching
// how the stored hash was produced.
func (s *authService) verifyPassword(candidate string) (bool, error) {
	if candidate == "" {
		return false, locale.Coded("auth", "controller", "1000")
	}
	computed := encryptPassword(candidate+s.cfg.Salt, s.cfg.Salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(s.cfg.PasswordHash)) == 1, nil
}

// TokenResult is the outcome of a token verification. Err holds the
// verification failure; verification never panics.
type TokenResult struct {
	Valid  bool
	Claims jwt.MapClaims
	Err    error
}

// verifyToken checks a bearer token's signature and expiry claims
func (s *authService) verifyToken(token string) TokenResult {
	if token == "" {
		return TokenResult{Valid: false}
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithIssuer(s.cfg.Issuer))
	if err != nil || !parsed.Valid {
		return TokenResult{Valid: false, Err: err}
	}
	return TokenResult{Valid: true, Claims: claims}
}

// Login verifies the credentials and issues a signed session token.
// Mismatched username and mismatched password are indistinguishable to
// the caller.
func (s *authService) Login(ctx context.Context, username, password, ip string) (string, error) {
	if username != s.cfg.Username {
		return "", ErrInvalidCredentials
	}
	ok, err := s.verifyPassword(password)
	if err != nil || !ok {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	expiredAt := now.Add(s.cfg.TokenTTL)
	claims := jwt.MapClaims{
		"ip":  ip,
		"iss": s.cfg.Issuer,
		"iat": now.Unix(),
		"exp": expiredAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	if _, err := s.sessions.Create(ctx, &models.Session{Token: token, ExpiredAt: expiredAt}); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	s.log.Info().Str("ip", ip).Time("expired_at", expiredAt).Msg("Session created")
	return token, nil
}

// Authenticate validates the session token carried by a request. A token
// whose session exists but whose verification fails gets its session
// soft-deleted, forcing a fresh login.
func (s *authService) Authenticate(ctx context.Context, token string) error {
	if token == "" {
		return ErrSessionNotFound
	}
	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	result := s.verifyToken(token)
	if !result.Valid {
		if err := s.sessions.SoftDeleteByToken(ctx, token); err != nil {
			s.log.Error().Err(err).Msg("Failed to invalidate session")
		}
		cause := result.Err
		if cause == nil {
			cause = ErrSessionNotFound
		}
		return &TokenInvalidError{Cause: cause}
	}
	return nil
}
