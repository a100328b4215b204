package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultIssuer = "project-tracker-backend"

// SessionClaims represents JWT token claims
type SessionClaims struct {
	UserID   string `json:"user_id" example:"7b0c5bd2-5c6e-4a8b-8f9d-1f1f2b3c4d5e"`
	RoleTier int    `json:"role_tier" example:"1"`
	TeamID   string `json:"team_id,omitempty" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	jwt.RegisteredClaims
}

// TokenIssuer issues and validates bearer tokens carrying a Session
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewTokenIssuer creates a token issuer from the auth configuration
func NewTokenIssuer(config *Config) *TokenIssuer {
	issuer := config.Issuer
	if issuer == "" {
		issuer = defaultIssuer
	}
	return &TokenIssuer{
		secret: []byte(config.JWTSecret),
		ttl:    config.TokenTTL,
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue signs a token for the session and returns it with its expiry
func (t *TokenIssuer) Issue(sess *Session) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)

	claims := &SessionClaims{
		UserID:   sess.UserID.String(),
		RoleTier: sess.RoleTier,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    t.issuer,
			Subject:   sess.UserID.String(),
			ID:        uuid.NewString(),
		},
	}
	if sess.TeamID != nil {
		claims.TeamID = sess.TeamID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Validate parses a token and returns the session it carries
func (t *TokenIssuer) Validate(tokenString string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithIssuer(t.issuer), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token: %w", err)
	}

	sess := &Session{UserID: userID, RoleTier: claims.RoleTier}
	if claims.TeamID != "" {
		teamID, err := uuid.Parse(claims.TeamID)
		if err != nil {
			return nil, fmt.Errorf("invalid team id in token: %w", err)
		}
		sess.TeamID = &teamID
	}
	return sess, nil
}
