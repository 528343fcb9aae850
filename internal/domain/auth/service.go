package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shopledger/internal/core/apperror"
	appctx "shopledger/internal/core/context"
	"shopledger/pkg/logger"
)

// ServiceConfig holds auth service configuration.
type ServiceConfig struct {
	// Username of the single till operator
	Username string

	// PasswordHash is a bcrypt hash. Empty disables authentication.
	PasswordHash string

	MaxLoginAttempts int
	LockDuration     time.Duration
}

// DefaultServiceConfig returns default lockout settings for the operator.
func DefaultServiceConfig(username, passwordHash string) ServiceConfig {
	return ServiceConfig{
		Username:         username,
		PasswordHash:     passwordHash,
		MaxLoginAttempts: 5,
		LockDuration:     15 * time.Minute,
	}
}

// Credentials is a login request.
type Credentials struct {
	Username string
	Password string
}

// Token is an issued access token.
type Token struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Service checks operator credentials and validates access tokens.
type Service struct {
	config     ServiceConfig
	jwtService *JWTService
	now        func() time.Time

	mu          sync.Mutex
	failures    int
	lockedUntil time.Time
}

// NewService creates a new auth service.
func NewService(config ServiceConfig, jwtService *JWTService) *Service {
	return &Service{
		config:     config,
		jwtService: jwtService,
		now:        time.Now,
	}
}

// Enabled reports whether requests must carry an access token.
func (s *Service) Enabled() bool {
	return s.config.PasswordHash != ""
}

// Login verifies creds and issues an access token. Too many consecutive
// failures lock the operator out for LockDuration.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Token, error) {
	if !s.Enabled() {
		return nil, apperror.NewValidation("authentication is disabled")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Before(s.lockedUntil) {
		return nil, apperror.NewUnauthorized("operator is temporarily locked").
			WithDetail("lockedUntil", s.lockedUntil.UTC().Format(time.RFC3339))
	}

	userOK := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(s.config.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.config.PasswordHash), []byte(creds.Password))
	if !userOK || passErr != nil {
		s.recordFailure(ctx, now)
		return nil, apperror.NewUnauthorized("invalid credentials")
	}
	s.failures = 0

	token, expiresAt, err := s.jwtService.GenerateAccessToken(s.config.Username)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("generate token: %w", err))
	}

	logger.Info(ctx, "operator logged in", "username", s.config.Username)

	return &Token{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Authenticate validates an access token and returns the operator it names.
func (s *Service) Authenticate(token string) (*appctx.OperatorContext, error) {
	op, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid or expired token").WithCause(err)
	}
	return op, nil
}

// HashPassword returns a bcrypt hash suitable for OPERATOR_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *Service) recordFailure(ctx context.Context, now time.Time) {
	s.failures++
	if s.config.MaxLoginAttempts > 0 && s.failures >= s.config.MaxLoginAttempts {
		s.lockedUntil = now.Add(s.config.LockDuration)
		s.failures = 0
		logger.Warn(ctx, "operator locked after failed logins", "until", s.lockedUntil)
	}
}
