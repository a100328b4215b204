package service

import (
	"context"
	"fmt"
	"time"

	"project-tracker-backend/internal/database/models"
	"project-tracker-backend/internal/repository"
	"project-tracker-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TaskService handles business logic for tasks
type TaskService struct {
	repo        repository.TaskRepositoryInterface
	featureRepo repository.FeatureRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	statusRepo  repository.LookupRepositoryInterface
	typeRepo    repository.LookupRepositoryInterface
	validator   *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(
	repo repository.TaskRepositoryInterface,
	featureRepo repository.FeatureRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	statusRepo repository.LookupRepositoryInterface,
	typeRepo repository.LookupRepositoryInterface,
	validator *validator.Validate,
) *TaskService {
	return &TaskService{
		repo:        repo,
		featureRepo: featureRepo,
		userRepo:    userRepo,
		statusRepo:  statusRepo,
		typeRepo:    typeRepo,
		validator:   validator,
	}
}

// TaskRequest represents the request to create or update a task
type TaskRequest struct {
	FeatureID   string `json:"feature_id" validate:"required,uuid4_rfc4122"`
	AssigneeID  string `json:"assignee_id" validate:"required,uuid4_rfc4122"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	StatusID    int    `json:"status_id" validate:"required"`
	TypeID      int    `json:"type_id" validate:"required"`
	Priority    string `json:"priority" validate:"required" example:"3"`
	Flags       string `json:"flags" validate:"flags" example:"frontend;"`
}

// TaskResponse represents the response for task operations
type TaskResponse struct {
	ID           uuid.UUID `json:"id"`
	FeatureID    uuid.UUID `json:"feature_id"`
	FeatureName  string    `json:"feature_name"`
	AssigneeID   uuid.UUID `json:"assignee_id"`
	AssigneeName string    `json:"assignee_name"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StatusID     int       `json:"status_id"`
	StatusName   string    `json:"status_name"`
	TypeID       int       `json:"type_id"`
	TypeName     string    `json:"type_name"`
	Priority     int       `json:"priority"`
	Flags        []string  `json:"flags"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

type taskRefs struct {
	feature  *models.Feature
	assignee *models.User
	status   *models.LookupModel
	kind     *models.LookupModel
}

func (s *TaskService) checkRequest(req *TaskRequest) (int, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return 0, err
	}
	return parsePriority(req.Priority)
}

func (s *TaskService) resolve(req *TaskRequest) (*taskRefs, error) {
	refs := &taskRefs{}
	var err error
	if refs.feature, err = s.featureRepo.GetByID(uuid.MustParse(req.FeatureID)); err != nil {
		return nil, err
	}
	if refs.assignee, err = s.userRepo.GetByID(uuid.MustParse(req.AssigneeID)); err != nil {
		return nil, err
	}
	if refs.status, err = s.statusRepo.GetByID(req.StatusID); err != nil {
		return nil, err
	}
	if refs.kind, err = s.typeRepo.GetByID(req.TypeID); err != nil {
		return nil, err
	}
	return refs, nil
}

// Create creates a new task
func (s *TaskService) Create(ctx context.Context, req *TaskRequest) (*TaskResponse, error) {
	priority, err := s.checkRequest(req)
	if err != nil {
		return nil, err
	}
	refs, err := s.resolve(req)
	if err != nil {
		return nil, err
	}
	if _, err := authorize(ctx, refs.assignee.ID, taskEditTier); err != nil {
		return nil, err
	}

	task := &models.Task{
		FeatureID:   refs.feature.ID,
		AssigneeID:  refs.assignee.ID,
		Name:        req.Name,
		Description: req.Description,
		StatusID:    req.StatusID,
		TypeID:      req.TypeID,
		Priority:    priority,
		Flags:       models.ParseFlags(req.Flags),
	}
	if err := s.repo.Create(task); err != nil {
		logStorage(ctx, err, "failed to create task")
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	attachTaskRefs(task, refs)

	return s.toResponse(task), nil
}

// GetByID retrieves a task by ID
func (s *TaskService) GetByID(ctx context.Context, id string) (*TaskResponse, error) {
	taskID, err := parseID("task_id", id)
	if err != nil {
		return nil, err
	}
	task, err := s.repo.GetByID(taskID)
	if err != nil {
		logStorage(ctx, err, "failed to get task")
		return nil, err
	}
	return s.toResponse(task), nil
}

// GetAll retrieves all tasks
func (s *TaskService) GetAll(ctx context.Context) ([]TaskResponse, error) {
	tasks, err := s.repo.GetAll()
	if err != nil {
		logStorage(ctx, err, "failed to get tasks")
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return s.toResponses(tasks), nil
}

// GetAllByFeature retrieves the tasks of a feature
func (s *TaskService) GetAllByFeature(ctx context.Context, featureID string) ([]TaskResponse, error) {
	id, err := parseID("feature_id", featureID)
	if err != nil {
		return nil, err
	}
	if _, err := s.featureRepo.GetByID(id); err != nil {
		return nil, err
	}
	tasks, err := s.repo.GetByFeatureID(id)
	if err != nil {
		logStorage(ctx, err, "failed to get tasks by feature")
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return s.toResponses(tasks), nil
}

// GetAllByAssignee retrieves the tasks assigned to a user
func (s *TaskService) GetAllByAssignee(ctx context.Context, assigneeID string) ([]TaskResponse, error) {
	id, err := parseID("assignee_id", assigneeID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(id); err != nil {
		return nil, err
	}
	tasks, err := s.repo.GetByAssigneeID(id)
	if err != nil {
		logStorage(ctx, err, "failed to get tasks by assignee")
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return s.toResponses(tasks), nil
}

// Update replaces the mutable fields of a task
func (s *TaskService) Update(ctx context.Context, id string, req *TaskRequest) (*TaskResponse, error) {
	priority, err := s.checkRequest(req)
	if err != nil {
		return nil, err
	}
	taskID, err := parseID("task_id", id)
	if err != nil {
		return nil, err
	}

	task, err := s.repo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	refs, err := s.resolve(req)
	if err != nil {
		return nil, err
	}
	if err := authorizeTransfer(ctx, task.AssigneeID, refs.assignee.ID, taskEditTier); err != nil {
		return nil, err
	}

	task.FeatureID = refs.feature.ID
	task.AssigneeID = refs.assignee.ID
	task.Name = req.Name
	task.Description = req.Description
	task.StatusID = req.StatusID
	task.TypeID = req.TypeID
	task.Priority = priority
	task.Flags = models.ParseFlags(req.Flags)
	if err := s.repo.Update(task); err != nil {
		logStorage(ctx, err, "failed to update task")
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	attachTaskRefs(task, refs)

	return s.toResponse(task), nil
}

// Delete deletes a task
func (s *TaskService) Delete(ctx context.Context, id string) error {
	taskID, err := parseID("task_id", id)
	if err != nil {
		return err
	}
	task, err := s.repo.GetByID(taskID)
	if err != nil {
		return err
	}
	if _, err := authorize(ctx, task.AssigneeID, taskEditTier); err != nil {
		return err
	}
	if err := s.repo.Delete(taskID); err != nil {
		logStorage(ctx, err, "failed to delete task")
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func attachTaskRefs(task *models.Task, refs *taskRefs) {
	task.Feature = refs.feature
	task.Assignee = refs.assignee
	task.Status = &models.Status{LookupModel: *refs.status}
	task.Type = &models.Type{LookupModel: *refs.kind}
}

func (s *TaskService) toResponses(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *s.toResponse(&tasks[i])
	}
	return responses
}

func (s *TaskService) toResponse(task *models.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:           task.ID,
		FeatureID:    task.FeatureID,
		AssigneeID:   task.AssigneeID,
		AssigneeName: fullName(task.Assignee),
		Name:         task.Name,
		Description:  task.Description,
		StatusID:     task.StatusID,
		TypeID:       task.TypeID,
		Priority:     task.Priority,
		Flags:        nonNilFlags(task.Flags),
		CreatedAt:    task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    task.UpdatedAt.Format(time.RFC3339),
	}
	if task.Feature != nil {
		resp.FeatureName = task.Feature.Name
	}
	if task.Status != nil {
		resp.StatusName = task.Status.Name
	}
	if task.Type != nil {
		resp.TypeName = task.Type.Name
	}
	return resp
}
