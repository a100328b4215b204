package repository

import (
	"strings"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// withTeam selects the user's team id from the membership table
func withTeam(db *gorm.DB) *gorm.DB {
	return db.Select("users.*, team_memberships.team_id AS team_id").
		Joins("LEFT JOIN team_memberships ON team_memberships.user_id = users.id")
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	user.Username = strings.ToLower(user.Username)
	err := r.db.Omit(clause.Associations).Create(user).Error
	if isUniqueViolation(err, constraintUsername) {
		return apperrors.ErrUsernameTaken
	}
	return translate(err, nil, "while saving new user")
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Scopes(withTeam).Preload("Role").First(&user, "users.id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrUserNotFound, "while getting user")
	}
	return &user, nil
}

// GetByUsername retrieves a user by the lower-cased username
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Scopes(withTeam).First(&user, "users.username = ?", strings.ToLower(username)).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrUserNotFound, "while getting user by username")
	}
	return &user, nil
}

// GetAll retrieves all users ordered by name
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Scopes(withTeam).Preload("Role").
		Order("users.last_name, users.first_name").
		Find(&users).Error
	if err != nil {
		return nil, translate(err, nil, "while getting users")
	}
	return users, nil
}

// GetByTeamID retrieves the members of a team
func (r *UserRepository) GetByTeamID(teamID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Scopes(withTeam).Preload("Role").
		Where("team_memberships.team_id = ?", teamID).
		Order("users.last_name, users.first_name").
		Find(&users).Error
	if err != nil {
		return nil, translate(err, nil, "while getting team members")
	}
	return users, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	user.Username = strings.ToLower(user.Username)
	err := r.db.Omit(clause.Associations).Save(user).Error
	if isUniqueViolation(err, constraintUsername) {
		return apperrors.ErrUsernameTaken
	}
	return translate(err, nil, "while updating user")
}

// UpdateProfileImage replaces the user's profile image
func (r *UserRepository) UpdateProfileImage(id uuid.UUID, contentType string, data []byte) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"profile_image_type": contentType,
		"profile_image_data": data,
	})
	if result.Error != nil {
		return translate(result.Error, nil, "while updating profile image")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return translate(r.db.Delete(&models.User{}, "id = ?", id).Error, nil, "while deleting user")
}
