package handlers

import (
	"net/http"
	"time"

	"project-tracker-backend/internal/auth"
	"project-tracker-backend/internal/logger"
	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles login, logout and self registration
type AuthHandler struct {
	userService service.UserServiceInterface
	store       *auth.SessionStore
	tokens      *auth.TokenIssuer
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(userService service.UserServiceInterface, store *auth.SessionStore, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		store:       store,
		tokens:      tokens,
	}
}

// LoginRequest represents the login credentials
type LoginRequest struct {
	Username string `json:"username" example:"jdoe1"`
	Password string `json:"password" example:"secret"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	CSRFToken string     `json:"csrf_token"`
	UserID    uuid.UUID  `json:"user_id"`
	FullName  string     `json:"full_name"`
	RoleTier  int        `json:"role_tier"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Check credentials, set the session cookie and return a bearer token.
// @Description Cookie clients must send csrf_token in the X-CSRF-Token header on mutating requests.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Login failed"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	sess := &auth.Session{
		UserID:   result.UserID,
		RoleTier: result.RoleTier,
		TeamID:   result.TeamID,
	}
	if err := h.store.Save(c.Writer, c.Request, sess); err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := h.tokens.Issue(sess)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.WithContext(auth.WithSession(c.Request.Context(), sess)).Info("user logged in")

	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		CSRFToken: sess.CSRFToken,
		UserID:    result.UserID,
		FullName:  result.FullName,
		RoleTier:  result.RoleTier,
		TeamID:    result.TeamID,
	})
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Description Expire the session cookie. Bearer tokens stay valid until they expire.
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.store.Clear(c.Writer, c.Request); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

// Register handles POST /auth/register
// @Summary Register a new user
// @Description Create an account with the lowest role
// @Tags auth
// @Accept json
// @Produce json
// @Param user body service.RegisterRequest true "User data"
// @Success 201 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
