package repository

import (
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func withTaskRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Feature").Preload("Assignee").Preload("Status").Preload("Type")
}

// Create creates a new task
func (r *TaskRepository) Create(task *models.Task) error {
	return translate(r.db.Omit(clause.Associations).Create(task).Error, nil, "while saving new task")
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.Scopes(withTaskRelations).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound, "while getting task")
	}
	return &task, nil
}

// GetAll retrieves all tasks, highest priority first
func (r *TaskRepository) GetAll() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Scopes(withTaskRelations).Order("priority DESC, created_at").Find(&tasks).Error
	if err != nil {
		return nil, translate(err, nil, "while getting tasks")
	}
	return tasks, nil
}

// GetByFeatureID retrieves the tasks of a feature
func (r *TaskRepository) GetByFeatureID(featureID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Scopes(withTaskRelations).
		Where("feature_id = ?", featureID).
		Order("priority DESC, created_at").
		Find(&tasks).Error
	if err != nil {
		return nil, translate(err, nil, "while getting tasks by feature")
	}
	return tasks, nil
}

// GetByAssigneeID retrieves the tasks assigned to a user
func (r *TaskRepository) GetByAssigneeID(assigneeID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Scopes(withTaskRelations).
		Where("assignee_id = ?", assigneeID).
		Order("priority DESC, created_at").
		Find(&tasks).Error
	if err != nil {
		return nil, translate(err, nil, "while getting tasks by assignee")
	}
	return tasks, nil
}

// Update updates a task
func (r *TaskRepository) Update(task *models.Task) error {
	return translate(r.db.Omit(clause.Associations).Save(task).Error, nil, "while updating task")
}

// Delete deletes a task
func (r *TaskRepository) Delete(id uuid.UUID) error {
	return translate(r.db.Delete(&models.Task{}, "id = ?", id).Error, nil, "while deleting task")
}
