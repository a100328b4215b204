package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "tracker",
		DatabasePassword: "secret",
		DatabaseHost:     "db",
		DatabasePort:     "5433",
		DatabaseName:     "tracker_db",
		DatabaseSSLMode:  "require",
	}

	assert.Equal(t, "postgres://tracker:secret@db:5433/tracker_db?sslmode=require", buildDatabaseURL(cfg))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		config      Config
		expectError bool
		errorMsg    string
	}{
		{
			name:   "development with defaults",
			config: Config{Environment: "development", DatabaseName: "db", SessionSecret: defaultSessionSecret, JWTSecret: defaultJWTSecret, TokenTTLMinutes: 60},
		},
		{
			name:        "production with default session secret",
			config:      Config{Environment: "production", DatabaseName: "db", SessionSecret: defaultSessionSecret, JWTSecret: "x", TokenTTLMinutes: 60},
			expectError: true,
			errorMsg:    "SESSION_SECRET",
		},
		{
			name:        "production with default jwt secret",
			config:      Config{Environment: "production", DatabaseName: "db", SessionSecret: "x", JWTSecret: defaultJWTSecret, TokenTTLMinutes: 60},
			expectError: true,
			errorMsg:    "JWT_SECRET",
		},
		{
			name:        "missing database name",
			config:      Config{Environment: "development", TokenTTLMinutes: 60},
			expectError: true,
			errorMsg:    "database name",
		},
		{
			name:        "non positive token ttl",
			config:      Config{Environment: "development", DatabaseName: "db"},
			expectError: true,
			errorMsg:    "TOKEN_TTL_MINUTES",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(&tc.config)
			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	assert.True(t, (&Config{Environment: "development"}).IsDevelopment())
	assert.True(t, (&Config{Environment: "production"}).IsProduction())
	assert.False(t, (&Config{Environment: "staging"}).IsProduction())
}
