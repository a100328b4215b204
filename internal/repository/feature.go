package repository

import (
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FeatureRepository handles database operations for features
type FeatureRepository struct {
	db *gorm.DB
}

// NewFeatureRepository creates a new feature repository
func NewFeatureRepository(db *gorm.DB) *FeatureRepository {
	return &FeatureRepository{db: db}
}

// withFeatureRelations preloads the rows a feature's display names come from
func withFeatureRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Project").Preload("Owner").Preload("Status").Preload("Type")
}

// Create creates a new feature
func (r *FeatureRepository) Create(feature *models.Feature) error {
	return translate(r.db.Omit(clause.Associations).Create(feature).Error, nil, "while saving new feature")
}

// GetByID retrieves a feature by ID
func (r *FeatureRepository) GetByID(id uuid.UUID) (*models.Feature, error) {
	var feature models.Feature
	err := r.db.Scopes(withFeatureRelations).First(&feature, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrFeatureNotFound, "while getting feature")
	}
	return &feature, nil
}

// GetAll retrieves all features, highest priority first
func (r *FeatureRepository) GetAll() ([]models.Feature, error) {
	var features []models.Feature
	err := r.db.Scopes(withFeatureRelations).Order("priority DESC, created_at").Find(&features).Error
	if err != nil {
		return nil, translate(err, nil, "while getting features")
	}
	return features, nil
}

// GetByProjectID retrieves the features of a project
func (r *FeatureRepository) GetByProjectID(projectID uuid.UUID) ([]models.Feature, error) {
	var features []models.Feature
	err := r.db.Scopes(withFeatureRelations).
		Where("project_id = ?", projectID).
		Order("priority DESC, created_at").
		Find(&features).Error
	if err != nil {
		return nil, translate(err, nil, "while getting features by project")
	}
	return features, nil
}

// GetByOwnerID retrieves the features owned by a user
func (r *FeatureRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.Feature, error) {
	var features []models.Feature
	err := r.db.Scopes(withFeatureRelations).
		Where("owner_id = ?", ownerID).
		Order("priority DESC, created_at").
		Find(&features).Error
	if err != nil {
		return nil, translate(err, nil, "while getting features by owner")
	}
	return features, nil
}

// Update updates a feature
func (r *FeatureRepository) Update(feature *models.Feature) error {
	return translate(r.db.Omit(clause.Associations).Save(feature).Error, nil, "while updating feature")
}

// Delete deletes a feature
func (r *FeatureRepository) Delete(id uuid.UUID) error {
	return translate(r.db.Delete(&models.Feature{}, "id = ?", id).Error, nil, "while deleting feature")
}
