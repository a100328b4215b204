package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	apperrors "project-tracker-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// CSRFHeader carries the session's CSRF token on mutating cookie requests
const CSRFHeader = "X-CSRF-Token"

const ginSessionKey = "session"

// Middleware builds the Session for each request from a bearer token or the session cookie
type Middleware struct {
	store  *SessionStore
	tokens *TokenIssuer
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(store *SessionStore, tokens *TokenIssuer) *Middleware {
	return &Middleware{store: store, tokens: tokens}
}

// RequireSession rejects requests without a valid session and sets the session context
func (m *Middleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, fromCookie, err := m.resolve(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		// Bearer tokens are not sent automatically by browsers, cookies are
		if fromCookie && isMutating(c.Request.Method) {
			header := c.GetHeader(CSRFHeader)
			if header == "" || subtle.ConstantTimeCompare([]byte(header), []byte(sess.CSRFToken)) != 1 {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrInvalidCSRFToken.Error()})
				return
			}
		}

		setSession(c, sess)
		c.Next()
	}
}

// OptionalSession sets the session context when one is present but doesn't require it
func (m *Middleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, _, err := m.resolve(c); err == nil {
			setSession(c, sess)
		}
		c.Next()
	}
}

func (m *Middleware) resolve(c *gin.Context) (*Session, bool, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return nil, false, apperrors.NewAuthenticationError("invalid authorization header format")
		}
		sess, err := m.tokens.Validate(tokenString)
		if err != nil {
			return nil, false, apperrors.NewAuthenticationError("invalid token")
		}
		return sess, false, nil
	}

	sess, err := m.store.Load(c.Request)
	if err != nil {
		return nil, true, err
	}
	return sess, true, nil
}

func setSession(c *gin.Context, sess *Session) {
	c.Set(ginSessionKey, sess)
	c.Request = c.Request.WithContext(WithSession(c.Request.Context(), sess))
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// GetSession is a helper function to extract the session from the gin context
func GetSession(c *gin.Context) (*Session, bool) {
	value, exists := c.Get(ginSessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := value.(*Session)
	return sess, ok && sess != nil
}
