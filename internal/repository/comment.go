package repository

import (
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func withCommentRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Assignee").Preload("Feature").Preload("Task")
}

// Create creates a new comment
func (r *CommentRepository) Create(comment *models.Comment) error {
	return translate(r.db.Omit(clause.Associations).Create(comment).Error, nil, "while saving new comment")
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Scopes(withCommentRelations).First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrCommentNotFound, "while getting comment")
	}
	return &comment, nil
}

// GetByFeatureID retrieves the comments on a feature, oldest first
func (r *CommentRepository) GetByFeatureID(featureID uuid.UUID) ([]models.Comment, error) {
	return r.findBy("feature_id = ?", featureID, "while getting comments by feature")
}

// GetByTaskID retrieves the comments on a task, oldest first
func (r *CommentRepository) GetByTaskID(taskID uuid.UUID) ([]models.Comment, error) {
	return r.findBy("task_id = ?", taskID, "while getting comments by task")
}

// GetByAssigneeID retrieves the comments written by a user
func (r *CommentRepository) GetByAssigneeID(assigneeID uuid.UUID) ([]models.Comment, error) {
	return r.findBy("assignee_id = ?", assigneeID, "while getting comments by assignee")
}

func (r *CommentRepository) findBy(condition string, id uuid.UUID, op string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Scopes(withCommentRelations).Where(condition, id).Order("created_at").Find(&comments).Error
	if err != nil {
		return nil, translate(err, nil, op)
	}
	return comments, nil
}

// Update updates a comment
func (r *CommentRepository) Update(comment *models.Comment) error {
	return translate(r.db.Omit(clause.Associations).Save(comment).Error, nil, "while updating comment")
}

// Delete deletes a comment
func (r *CommentRepository) Delete(id uuid.UUID) error {
	return translate(r.db.Delete(&models.Comment{}, "id = ?", id).Error, nil, "while deleting comment")
}
