package auth

import (
	"time"

	apperrors "project-tracker-backend/internal/errors"
)

// Config holds the secrets and lifetimes used for sessions and tokens
type Config struct {
	SessionSecret string
	JWTSecret     string
	TokenTTL      time.Duration
	SecureCookies bool
	Issuer        string
}

// ValidateConfig validates the authentication configuration
func (c *Config) ValidateConfig() error {
	if c.SessionSecret == "" {
		return apperrors.NewConfigurationError("session secret is required")
	}
	if c.JWTSecret == "" {
		return apperrors.NewConfigurationError("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return apperrors.NewConfigurationError("token TTL must be positive")
	}
	return nil
}
