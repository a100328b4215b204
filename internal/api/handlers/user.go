package handlers

import (
	"fmt"
	"io"
	"net/http"

	"project-tracker-backend/internal/auth"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// profileImageField is the multipart field carrying an uploaded profile image
const profileImageField = "image"

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser handles POST /users
// @Summary Create a new user
// @Description Create a user with any role, admins only
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.UserRequest true "User data"
// @Success 201 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "Role not found"
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.UserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetCurrentUser handles GET /users/me
// @Summary Get the logged in user
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	sess, ok := auth.GetSession(c)
	if !ok {
		respondError(c, apperrors.ErrNotAuthenticated)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), sess.UserID.String())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser handles GET /users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserName handles GET /users/:id/name
// @Summary Get a user's full name
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/name [get]
func (h *UserHandler) GetUserName(c *gin.Context) {
	name, err := h.userService.GetFullName(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"full_name": name})
}

// ListUsers handles GET /users
// @Summary List users
// @Description List all users, the members of one team, or the user with a username
// @Tags users
// @Produce json
// @Param team_id query string false "Team ID (UUID)"
// @Param username query string false "Username"
// @Success 200 {array} service.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 404 {object} ErrorResponse "Team or user not found"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	if username, ok := c.GetQuery("username"); ok {
		user, err := h.userService.GetByUsername(ctx, username)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, []service.UserResponse{*user})
		return
	}

	var (
		users []service.UserResponse
		err   error
	)
	if teamID, ok := c.GetQuery("team_id"); ok {
		users, err = h.userService.GetAllByTeam(ctx, teamID)
	} else {
		users, err = h.userService.GetAll(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser handles PUT /users/:id
// @Summary Update user
// @Description Users may update themselves, changing a role needs an admin
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param user body service.UserRequest true "Updated user data"
// @Success 200 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "User or role not found"
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req service.UserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadProfileImage handles PUT /users/:id/image
// @Summary Upload a profile image
// @Description Replace the user's profile image. JPEG, PNG or GIF below 1000KB.
// @Tags users
// @Accept mpfd
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param image formData file true "Image file"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Missing, oversized or unsupported image"
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id}/image [put]
func (h *UserHandler) UploadProfileImage(c *gin.Context) {
	fileHeader, err := c.FormFile(profileImageField)
	if err != nil {
		respondError(c, apperrors.NewEmptyValueError(profileImageField))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, fmt.Errorf("failed to open uploaded image: %w", err))
		return
	}
	defer file.Close()

	// one byte over the limit is enough for the service to reject it
	data, err := io.ReadAll(io.LimitReader(file, service.MaxProfileImageSize+1))
	if err != nil {
		respondError(c, fmt.Errorf("failed to read uploaded image: %w", err))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.userService.UpdateProfileImage(c.Request.Context(), c.Param("id"), contentType, data); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "profile image updated"})
}

// GetProfileImage handles GET /users/:id/image
// @Summary Get a profile image
// @Tags users
// @Produce jpeg,png,gif
// @Param id path string true "User ID (UUID)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User or image not found"
// @Security BearerAuth
// @Router /users/{id}/image [get]
func (h *UserHandler) GetProfileImage(c *gin.Context) {
	data, contentType, err := h.userService.GetProfileImage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, contentType, data)
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete user
// @Tags users
// @Param id path string true "User ID (UUID)"
// @Success 204
// @Failure 403 {object} ErrorResponse "Not enough permissions"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
