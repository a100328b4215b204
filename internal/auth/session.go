package auth

import (
	"context"

	"project-tracker-backend/internal/logger"

	"github.com/google/uuid"
)

type contextKey string

const sessionContextKey contextKey = "session"

// Session is the authenticated state of the current request
type Session struct {
	UserID    uuid.UUID  `json:"user_id"`
	RoleTier  int        `json:"role_tier"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
	CSRFToken string     `json:"csrf_token,omitempty"`
}

// CanMutate reports whether the session may change an entity owned by ownerID.
// Owners may always change their own entities, everybody else needs requiredTier.
func CanMutate(ownerID uuid.UUID, sess *Session, requiredTier int) bool {
	if sess == nil {
		return false
	}
	return ownerID == sess.UserID || sess.RoleTier >= requiredTier
}

// HasTier reports whether the session carries at least the given role tier
func HasTier(sess *Session, tier int) bool {
	return sess != nil && sess.RoleTier >= tier
}

// WithSession stores the session in ctx
func WithSession(ctx context.Context, sess *Session) context.Context {
	ctx = context.WithValue(ctx, sessionContextKey, sess)
	if sess != nil {
		ctx = logger.WithUser(ctx, sess.UserID.String())
	}
	return ctx
}

// FromContext returns the session stored in ctx, if any
func FromContext(ctx context.Context) (*Session, bool) {
	if ctx == nil {
		return nil, false
	}
	sess, ok := ctx.Value(sessionContextKey).(*Session)
	return sess, ok && sess != nil
}
