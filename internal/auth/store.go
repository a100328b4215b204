package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"

	apperrors "project-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// SessionName is the name of the session cookie
const SessionName = "tracker-session"

// Session value keys
const (
	sessionKeyUserID   = "user_id"
	sessionKeyRoleTier = "role_tier"
	sessionKeyTeamID   = "team_id"
	sessionKeyCSRF     = "csrf_token"
)

// SessionStore keeps the Session in a signed cookie
type SessionStore struct {
	store *sessions.CookieStore
}

// NewSessionStore creates a cookie backed session store.
// The secret is SHA-256 hashed to derive a 32-byte signing key.
func NewSessionStore(secret string, maxAge int, secure bool) *SessionStore {
	key := sha256.Sum256([]byte(secret))

	store := sessions.NewCookieStore(key[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
	return &SessionStore{store: store}
}

// Load reads the session from the request cookie.
// Returns ErrNotAuthenticated when the cookie is missing, invalid or anonymous.
func (s *SessionStore) Load(r *http.Request) (*Session, error) {
	raw, err := s.store.Get(r, SessionName)
	if err != nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	userID, ok := raw.Values[sessionKeyUserID].(string)
	if !ok || userID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	sess := &Session{UserID: id}
	sess.RoleTier, _ = raw.Values[sessionKeyRoleTier].(int)
	sess.CSRFToken, _ = raw.Values[sessionKeyCSRF].(string)
	if teamID, ok := raw.Values[sessionKeyTeamID].(string); ok && teamID != "" {
		if tid, err := uuid.Parse(teamID); err == nil {
			sess.TeamID = &tid
		}
	}
	return sess, nil
}

// Save writes the session cookie. A CSRF token is generated when sess has none.
func (s *SessionStore) Save(w http.ResponseWriter, r *http.Request, sess *Session) error {
	if sess.CSRFToken == "" {
		token, err := generateRandomString(32)
		if err != nil {
			return err
		}
		sess.CSRFToken = token
	}

	raw, _ := s.store.Get(r, SessionName)
	raw.Values[sessionKeyUserID] = sess.UserID.String()
	raw.Values[sessionKeyRoleTier] = sess.RoleTier
	raw.Values[sessionKeyCSRF] = sess.CSRFToken
	if sess.TeamID != nil {
		raw.Values[sessionKeyTeamID] = sess.TeamID.String()
	} else {
		delete(raw.Values, sessionKeyTeamID)
	}

	if err := raw.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear expires the session cookie
func (s *SessionStore) Clear(w http.ResponseWriter, r *http.Request) error {
	raw, _ := s.store.Get(r, SessionName)
	raw.Values = map[interface{}]interface{}{}
	raw.Options.MaxAge = -1
	if err := raw.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// generateRandomString generates a random base64 encoded string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
