package repository

import (
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return translate(r.db.Omit(clause.Associations).Create(project).Error, nil, "while saving new project")
}

// GetByID retrieves a project by ID with its owner
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Owner").First(&project, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrProjectNotFound, "while getting project")
	}
	return &project, nil
}

// GetAll retrieves all projects, newest first
func (r *ProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Preload("Owner").Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, translate(err, nil, "while getting projects")
	}
	return projects, nil
}

// GetByOwnerID retrieves the projects owned by a user
func (r *ProjectRepository) GetByOwnerID(ownerID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Owner").Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, translate(err, nil, "while getting projects by owner")
	}
	return projects, nil
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return translate(r.db.Omit(clause.Associations).Save(project).Error, nil, "while updating project")
}

// Delete deletes a project
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	return translate(r.db.Delete(&models.Project{}, "id = ?", id).Error, nil, "while deleting project")
}
