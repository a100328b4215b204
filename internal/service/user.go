package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"project-tracker-backend/internal/auth"
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/logger"
	"project-tracker-backend/internal/repository"
	"project-tracker-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxProfileImageSize is the exclusive upper bound for profile images in bytes
const MaxProfileImageSize = 1000 * 1024

var profileImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// UserService handles business logic for users and login
type UserService struct {
	repo      repository.UserRepositoryInterface
	roleRepo  repository.LookupRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	hasher    auth.PasswordHasher
	validator *validator.Validate

	decoyOnce sync.Once
	decoyHash string
}

// NewUserService creates a new user service
func NewUserService(
	repo repository.UserRepositoryInterface,
	roleRepo repository.LookupRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	hasher auth.PasswordHasher,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		repo:      repo,
		roleRepo:  roleRepo,
		teamRepo:  teamRepo,
		hasher:    hasher,
		validator: validator,
	}
}

// UserRequest represents the request to create or update a user
type UserRequest struct {
	Username  string `json:"username" validate:"required,min=5,max=100" example:"jdoe1"`
	Password  string `json:"password" validate:"required,min=5,max=100"`
	FirstName string `json:"first_name" validate:"required,max=100" example:"John"`
	LastName  string `json:"last_name" validate:"required,max=100" example:"Doe"`
	Email     string `json:"email" validate:"required,email,max=100" example:"john.doe@mail.com"`
	RoleID    int    `json:"role_id" validate:"required,min=1,max=3" example:"1"`
}

// RegisterRequest represents a self registration, the role is always the base tier
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=5,max=100" example:"jdoe1"`
	Password  string `json:"password" validate:"required,min=5,max=100"`
	FirstName string `json:"first_name" validate:"required,max=100" example:"John"`
	LastName  string `json:"last_name" validate:"required,max=100" example:"Doe"`
	Email     string `json:"email" validate:"required,email,max=100" example:"john.doe@mail.com"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID              uuid.UUID  `json:"id"`
	Username        string     `json:"username"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	FullName        string     `json:"full_name"`
	Email           string     `json:"email"`
	RoleID          int        `json:"role_id"`
	RoleName        string     `json:"role_name,omitempty"`
	TeamID          *uuid.UUID `json:"team_id,omitempty"`
	HasProfileImage bool       `json:"has_profile_image"`
	CreatedAt       string     `json:"created_at"`
	UpdatedAt       string     `json:"updated_at"`
}

// LoginResult is what a successful login reveals about the user
type LoginResult struct {
	UserID   uuid.UUID  `json:"user_id"`
	FullName string     `json:"full_name"`
	RoleTier int        `json:"role_tier"`
	TeamID   *uuid.UUID `json:"team_id,omitempty"`
}

// Create creates a user with any role, admins only
func (s *UserService) Create(ctx context.Context, req *UserRequest) (*UserResponse, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	role, err := s.roleRepo.GetByID(req.RoleID)
	if err != nil {
		return nil, err
	}
	if _, err := requireTier(ctx, userEditTier); err != nil {
		return nil, err
	}
	return s.create(ctx, req, role)
}

// Register creates a base tier user for an anonymous caller
func (s *UserService) Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	role, err := s.roleRepo.GetByID(models.RoleTierUser)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, &UserRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		RoleID:    role.ID,
	}, role)
}

func (s *UserService) create(ctx context.Context, req *UserRequest, role *models.LookupModel) (*UserResponse, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to hash password")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user := &models.User{
		Username:     strings.ToLower(req.Username),
		RoleID:       role.ID,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
	}
	if err := s.repo.Create(user); err != nil {
		logStorage(ctx, err, "failed to create user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.Role = &models.Role{LookupModel: *role}

	logger.WithContext(ctx).WithField("username", user.Username).Info("user created")
	return toUserResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id string) (*UserResponse, error) {
	userID, err := parseID("user_id", id)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.GetByID(userID)
	if err != nil {
		logStorage(ctx, err, "failed to get user")
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByUsername retrieves a user by username, case insensitive
func (s *UserService) GetByUsername(ctx context.Context, username string) (*UserResponse, error) {
	if username == "" {
		return nil, apperrors.NewEmptyValueError("username")
	}
	user, err := s.repo.GetByUsername(strings.ToLower(username))
	if err != nil {
		logStorage(ctx, err, "failed to get user by username")
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetFullName returns "first last" of a user
func (s *UserService) GetFullName(ctx context.Context, id string) (string, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.FullName, nil
}

// GetAll retrieves all users
func (s *UserService) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		logStorage(ctx, err, "failed to get users")
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return toUserResponses(users), nil
}

// GetAllByTeam retrieves the members of a team
func (s *UserService) GetAllByTeam(ctx context.Context, teamID string) ([]UserResponse, error) {
	id, err := parseID("team_id", teamID)
	if err != nil {
		return nil, err
	}
	if _, err := s.teamRepo.GetByID(id); err != nil {
		return nil, err
	}
	users, err := s.repo.GetByTeamID(id)
	if err != nil {
		logStorage(ctx, err, "failed to get users by team")
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return toUserResponses(users), nil
}

// Update replaces the mutable fields of a user. Changing the role needs the admin tier.
func (s *UserService) Update(ctx context.Context, id string, req *UserRequest) (*UserResponse, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	userID, err := parseID("user_id", id)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	role, err := s.roleRepo.GetByID(req.RoleID)
	if err != nil {
		return nil, err
	}
	if _, err := authorize(ctx, user.ID, userEditTier); err != nil {
		return nil, err
	}
	if role.ID != user.RoleID {
		if _, err := requireTier(ctx, userEditTier); err != nil {
			return nil, err
		}
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("failed to hash password")
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user.Username = strings.ToLower(req.Username)
	user.PasswordHash = hash
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.RoleID = role.ID
	user.Role = nil
	if err := s.repo.Update(user); err != nil {
		logStorage(ctx, err, "failed to update user")
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	user.Role = &models.Role{LookupModel: *role}

	return toUserResponse(user), nil
}

// UpdateProfileImage stores a jpeg, png or gif image below MaxProfileImageSize
func (s *UserService) UpdateProfileImage(ctx context.Context, id, contentType string, data []byte) error {
	if len(data) == 0 {
		return apperrors.NewEmptyValueError("image")
	}
	userID, err := parseID("user_id", id)
	if err != nil {
		return err
	}
	if !profileImageTypes[contentType] {
		return apperrors.NewInvalidInputError("image", "file type is not jpeg, png or gif")
	}
	if len(data) >= MaxProfileImageSize {
		return apperrors.NewInvalidInputError("image", "file is too large")
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if _, err := authorize(ctx, user.ID, userEditTier); err != nil {
		return err
	}
	if err := s.repo.UpdateProfileImage(user.ID, contentType, data); err != nil {
		logStorage(ctx, err, "failed to update profile image")
		return fmt.Errorf("failed to update profile image: %w", err)
	}
	return nil
}

// GetProfileImage returns the stored image and its content type
func (s *UserService) GetProfileImage(ctx context.Context, id string) ([]byte, string, error) {
	userID, err := parseID("user_id", id)
	if err != nil {
		return nil, "", err
	}
	user, err := s.repo.GetByID(userID)
	if err != nil {
		logStorage(ctx, err, "failed to get profile image")
		return nil, "", err
	}
	if len(user.ProfileImageData) == 0 {
		return nil, "", apperrors.ErrImageNotFound
	}
	return user.ProfileImageData, user.ProfileImageType, nil
}

// Delete deletes a user
func (s *UserService) Delete(ctx context.Context, id string) error {
	userID, err := parseID("user_id", id)
	if err != nil {
		return err
	}
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if _, err := authorize(ctx, user.ID, userEditTier); err != nil {
		return err
	}
	if err := s.repo.Delete(userID); err != nil {
		logStorage(ctx, err, "failed to delete user")
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// decoy returns a hash to compare against when the username is unknown,
// so that both failed login paths pay for one password comparison.
func (s *UserService) decoy(ctx context.Context) string {
	s.decoyOnce.Do(func() {
		hash, err := s.hasher.Hash(uuid.NewString())
		if err != nil {
			logger.WithContext(ctx).WithError(err).Warn("failed to prepare decoy password hash")
			return
		}
		s.decoyHash = hash
	})
	return s.decoyHash
}

// Login checks the credentials. Unknown users and wrong passwords both yield ErrLoginFailed.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, apperrors.ErrLoginFailed
	}
	user, err := s.repo.GetByUsername(strings.ToLower(username))
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.hasher.Compare(s.decoy(ctx), password)
			return nil, apperrors.ErrLoginFailed
		}
		logStorage(ctx, err, "failed to get user for login")
		return nil, fmt.Errorf("failed to login: %w", err)
	}
	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, apperrors.ErrLoginFailed
	}

	return &LoginResult{
		UserID:   user.ID,
		FullName: user.FullName(),
		RoleTier: user.RoleID,
		TeamID:   user.TeamID,
	}, nil
}

func toUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return responses
}

func toUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		FullName:        user.FullName(),
		Email:           user.Email,
		RoleID:          user.RoleID,
		TeamID:          user.TeamID,
		HasProfileImage: user.ProfileImageType != "",
		CreatedAt:       user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       user.UpdatedAt.Format(time.RFC3339),
	}
	if user.Role != nil {
		resp.RoleName = user.Role.Name
	}
	return resp
}
