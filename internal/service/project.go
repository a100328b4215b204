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

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// ProjectRequest represents the request to create or update a project
type ProjectRequest struct {
	OwnerID     string `json:"owner_id" validate:"required,uuid4_rfc4122" example:"7b0c5bd2-5c6e-4a8b-8f9d-1f1f2b3c4d5e"`
	Name        string `json:"name" validate:"required,max=100" example:"Tracker"`
	Description string `json:"description" validate:"required" example:"Project tracking application"`
	Flags       string `json:"flags" validate:"flags" example:"backend;urgent;"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Flags       []string  `json:"flags"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// Create creates a new project
func (s *ProjectService) Create(ctx context.Context, req *ProjectRequest) (*ProjectResponse, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	ownerID := uuid.MustParse(req.OwnerID)

	owner, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}

	if _, err := authorize(ctx, ownerID, projectEditTier); err != nil {
		return nil, err
	}

	project := &models.Project{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Flags:       models.ParseFlags(req.Flags),
	}
	if err := s.repo.Create(project); err != nil {
		logStorage(ctx, err, "failed to create project")
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	project.Owner = owner

	return s.toResponse(project), nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(ctx context.Context, id string) (*ProjectResponse, error) {
	projectID, err := parseID("project_id", id)
	if err != nil {
		return nil, err
	}
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		logStorage(ctx, err, "failed to get project")
		return nil, err
	}
	return s.toResponse(project), nil
}

// GetAll retrieves all projects
func (s *ProjectService) GetAll(ctx context.Context) ([]ProjectResponse, error) {
	projects, err := s.repo.GetAll()
	if err != nil {
		logStorage(ctx, err, "failed to get projects")
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return s.toResponses(projects), nil
}

// GetAllByOwner retrieves the projects owned by a user
func (s *ProjectService) GetAllByOwner(ctx context.Context, ownerID string) ([]ProjectResponse, error) {
	id, err := parseID("owner_id", ownerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(id); err != nil {
		return nil, err
	}
	projects, err := s.repo.GetByOwnerID(id)
	if err != nil {
		logStorage(ctx, err, "failed to get projects by owner")
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return s.toResponses(projects), nil
}

// Update replaces the mutable fields of a project
func (s *ProjectService) Update(ctx context.Context, id string, req *ProjectRequest) (*ProjectResponse, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	projectID, err := parseID("project_id", id)
	if err != nil {
		return nil, err
	}
	ownerID := uuid.MustParse(req.OwnerID)

	project, err := s.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	owner, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}

	if err := authorizeTransfer(ctx, project.OwnerID, owner.ID, projectEditTier); err != nil {
		return nil, err
	}

	project.OwnerID = ownerID
	project.Name = req.Name
	project.Description = req.Description
	project.Flags = models.ParseFlags(req.Flags)
	if err := s.repo.Update(project); err != nil {
		logStorage(ctx, err, "failed to update project")
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	project.Owner = owner

	return s.toResponse(project), nil
}

// Delete deletes a project
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	projectID, err := parseID("project_id", id)
	if err != nil {
		return err
	}
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		return err
	}
	if _, err := authorize(ctx, project.OwnerID, projectEditTier); err != nil {
		return err
	}
	if err := s.repo.Delete(projectID); err != nil {
		logStorage(ctx, err, "failed to delete project")
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) toResponses(projects []models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *s.toResponse(&projects[i])
	}
	return responses
}

// toResponse converts a project model to response
func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:          project.ID,
		OwnerID:     project.OwnerID,
		OwnerName:   fullName(project.Owner),
		Name:        project.Name,
		Description: project.Description,
		Flags:       nonNilFlags(project.Flags),
		CreatedAt:   project.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   project.UpdatedAt.Format(time.RFC3339),
	}
}
