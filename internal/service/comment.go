package service

import (
	"context"
	"fmt"
	"time"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/repository"
	"project-tracker-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CommentService handles business logic for comments
type CommentService struct {
	repo        repository.CommentRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	featureRepo repository.FeatureRepositoryInterface
	taskRepo    repository.TaskRepositoryInterface
	validator   *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(
	repo repository.CommentRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	featureRepo repository.FeatureRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	validator *validator.Validate,
) *CommentService {
	return &CommentService{
		repo:        repo,
		userRepo:    userRepo,
		featureRepo: featureRepo,
		taskRepo:    taskRepo,
		validator:   validator,
	}
}

// CommentRequest represents the request to create or update a comment.
// Exactly one of FeatureID and TaskID must be given.
type CommentRequest struct {
	AssigneeID string  `json:"assignee_id" validate:"required,uuid4_rfc4122"`
	Text       string  `json:"text" validate:"required"`
	TimeSpent  string  `json:"time_spent" example:"1.5"`
	FeatureID  *string `json:"feature_id,omitempty"`
	TaskID     *string `json:"task_id,omitempty"`
}

// CommentResponse represents the response for comment operations
type CommentResponse struct {
	ID           uuid.UUID  `json:"id"`
	AssigneeID   uuid.UUID  `json:"assignee_id"`
	AssigneeName string     `json:"assignee_name"`
	Text         string     `json:"text"`
	TimeSpent    float64    `json:"time_spent"`
	FeatureID    *uuid.UUID `json:"feature_id,omitempty"`
	FeatureName  string     `json:"feature_name,omitempty"`
	TaskID       *uuid.UUID `json:"task_id,omitempty"`
	TaskName     string     `json:"task_name,omitempty"`
	CreatedAt    string     `json:"created_at"`
	UpdatedAt    string     `json:"updated_at"`
}

// commentInput is a checked and parsed CommentRequest
type commentInput struct {
	assigneeID uuid.UUID
	timeSpent  float64
	featureID  *uuid.UUID
	taskID     *uuid.UUID
}

type commentRefs struct {
	assignee *models.User
	feature  *models.Feature
	task     *models.Task
}

func given(value *string) bool {
	return value != nil && *value != ""
}

// checkRequest runs the emptiness and format checks in that order
func (s *CommentService) checkRequest(req *CommentRequest) (*commentInput, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	hasFeature, hasTask := given(req.FeatureID), given(req.TaskID)
	if !hasFeature && !hasTask {
		return nil, apperrors.ErrParentRequired
	}
	if hasFeature && hasTask {
		return nil, apperrors.NewInvalidInputError("parent", "give either feature or task id, not both")
	}

	in := &commentInput{assigneeID: uuid.MustParse(req.AssigneeID)}
	var err error
	if in.featureID, err = parseOptionalID("feature_id", req.FeatureID); err != nil {
		return nil, err
	}
	if in.taskID, err = parseOptionalID("task_id", req.TaskID); err != nil {
		return nil, err
	}
	if in.timeSpent, err = parseTimeSpent(req.TimeSpent); err != nil {
		return nil, err
	}
	return in, nil
}

// resolve looks up the assignee and the single parent
func (s *CommentService) resolve(in *commentInput) (*commentRefs, error) {
	refs := &commentRefs{}
	var err error
	if refs.assignee, err = s.userRepo.GetByID(in.assigneeID); err != nil {
		return nil, err
	}
	if in.featureID != nil {
		if refs.feature, err = s.featureRepo.GetByID(*in.featureID); err != nil {
			return nil, err
		}
	} else {
		if refs.task, err = s.taskRepo.GetByID(*in.taskID); err != nil {
			return nil, err
		}
	}
	return refs, nil
}

// Create creates a new comment on a feature or a task
func (s *CommentService) Create(ctx context.Context, req *CommentRequest) (*CommentResponse, error) {
	in, err := s.checkRequest(req)
	if err != nil {
		return nil, err
	}
	refs, err := s.resolve(in)
	if err != nil {
		return nil, err
	}
	if _, err := authorize(ctx, in.assigneeID, commentEditTier); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		AssigneeID: in.assigneeID,
		Text:       req.Text,
		TimeSpent:  in.timeSpent,
		FeatureID:  in.featureID,
		TaskID:     in.taskID,
	}
	if err := s.repo.Create(comment); err != nil {
		logStorage(ctx, err, "failed to create comment")
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	attachCommentRefs(comment, refs)

	return s.toResponse(comment), nil
}

// GetByID retrieves a comment by ID
func (s *CommentService) GetByID(ctx context.Context, id string) (*CommentResponse, error) {
	commentID, err := parseID("comment_id", id)
	if err != nil {
		return nil, err
	}
	comment, err := s.repo.GetByID(commentID)
	if err != nil {
		logStorage(ctx, err, "failed to get comment")
		return nil, err
	}
	return s.toResponse(comment), nil
}

// GetByFeature retrieves the comments on a feature
func (s *CommentService) GetByFeature(ctx context.Context, featureID string) ([]CommentResponse, error) {
	id, err := parseID("feature_id", featureID)
	if err != nil {
		return nil, err
	}
	if _, err := s.featureRepo.GetByID(id); err != nil {
		return nil, err
	}
	comments, err := s.repo.GetByFeatureID(id)
	if err != nil {
		logStorage(ctx, err, "failed to get comments by feature")
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return s.toResponses(comments), nil
}

// GetByTask retrieves the comments on a task
func (s *CommentService) GetByTask(ctx context.Context, taskID string) ([]CommentResponse, error) {
	id, err := parseID("task_id", taskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.taskRepo.GetByID(id); err != nil {
		return nil, err
	}
	comments, err := s.repo.GetByTaskID(id)
	if err != nil {
		logStorage(ctx, err, "failed to get comments by task")
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return s.toResponses(comments), nil
}

// GetByAssignee retrieves the comments written by a user
func (s *CommentService) GetByAssignee(ctx context.Context, assigneeID string) ([]CommentResponse, error) {
	id, err := parseID("assignee_id", assigneeID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(id); err != nil {
		return nil, err
	}
	comments, err := s.repo.GetByAssigneeID(id)
	if err != nil {
		logStorage(ctx, err, "failed to get comments by assignee")
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	return s.toResponses(comments), nil
}

// Update replaces the mutable fields of a comment, the parent may move
func (s *CommentService) Update(ctx context.Context, id string, req *CommentRequest) (*CommentResponse, error) {
	in, err := s.checkRequest(req)
	if err != nil {
		return nil, err
	}
	commentID, err := parseID("comment_id", id)
	if err != nil {
		return nil, err
	}

	comment, err := s.repo.GetByID(commentID)
	if err != nil {
		return nil, err
	}
	refs, err := s.resolve(in)
	if err != nil {
		return nil, err
	}
	if err := authorizeTransfer(ctx, comment.AssigneeID, in.assigneeID, commentEditTier); err != nil {
		return nil, err
	}

	comment.AssigneeID = in.assigneeID
	comment.Text = req.Text
	comment.TimeSpent = in.timeSpent
	comment.FeatureID = in.featureID
	comment.TaskID = in.taskID
	comment.Assignee, comment.Feature, comment.Task = nil, nil, nil
	if err := s.repo.Update(comment); err != nil {
		logStorage(ctx, err, "failed to update comment")
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	attachCommentRefs(comment, refs)

	return s.toResponse(comment), nil
}

// Delete deletes a comment
func (s *CommentService) Delete(ctx context.Context, id string) error {
	commentID, err := parseID("comment_id", id)
	if err != nil {
		return err
	}
	comment, err := s.repo.GetByID(commentID)
	if err != nil {
		return err
	}
	if _, err := authorize(ctx, comment.AssigneeID, commentEditTier); err != nil {
		return err
	}
	if err := s.repo.Delete(commentID); err != nil {
		logStorage(ctx, err, "failed to delete comment")
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func attachCommentRefs(comment *models.Comment, refs *commentRefs) {
	comment.Assignee = refs.assignee
	comment.Feature = refs.feature
	comment.Task = refs.task
}

func (s *CommentService) toResponses(comments []models.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = *s.toResponse(&comments[i])
	}
	return responses
}

func (s *CommentService) toResponse(comment *models.Comment) *CommentResponse {
	resp := &CommentResponse{
		ID:           comment.ID,
		AssigneeID:   comment.AssigneeID,
		AssigneeName: fullName(comment.Assignee),
		Text:         comment.Text,
		TimeSpent:    comment.TimeSpent,
		FeatureID:    comment.FeatureID,
		TaskID:       comment.TaskID,
		CreatedAt:    comment.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    comment.UpdatedAt.Format(time.RFC3339),
	}
	if comment.Feature != nil {
		resp.FeatureName = comment.Feature.Name
	}
	if comment.Task != nil {
		resp.TaskName = comment.Task.Name
	}
	return resp
}
