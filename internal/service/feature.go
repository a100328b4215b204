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

// FeatureService handles business logic for features
type FeatureService struct {
	repo        repository.FeatureRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	statusRepo  repository.LookupRepositoryInterface
	typeRepo    repository.LookupRepositoryInterface
	validator   *validator.Validate
}

// NewFeatureService creates a new feature service
func NewFeatureService(
	repo repository.FeatureRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	statusRepo repository.LookupRepositoryInterface,
	typeRepo repository.LookupRepositoryInterface,
	validator *validator.Validate,
) *FeatureService {
	return &FeatureService{
		repo:        repo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		statusRepo:  statusRepo,
		typeRepo:    typeRepo,
		validator:   validator,
	}
}

// FeatureRequest represents the request to create or update a feature
type FeatureRequest struct {
	ProjectID   string `json:"project_id" validate:"required,uuid4_rfc4122"`
	OwnerID     string `json:"owner_id" validate:"required,uuid4_rfc4122"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`
	StatusID    int    `json:"status_id" validate:"required"`
	TypeID      int    `json:"type_id" validate:"required"`
	Priority    string `json:"priority" validate:"required" example:"2"`
	Flags       string `json:"flags" validate:"flags" example:"backend;"`
}

// FeatureResponse represents the response for feature operations
type FeatureResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	ProjectName string    `json:"project_name"`
	OwnerID     uuid.UUID `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StatusID    int       `json:"status_id"`
	StatusName  string    `json:"status_name"`
	TypeID      int       `json:"type_id"`
	TypeName    string    `json:"type_name"`
	Priority    int       `json:"priority"`
	Flags       []string  `json:"flags"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// featureRefs are the rows a feature request points at
type featureRefs struct {
	project *models.Project
	owner   *models.User
	status  *models.LookupModel
	kind    *models.LookupModel
}

// checkRequest runs the emptiness and format checks and parses the priority
func (s *FeatureService) checkRequest(req *FeatureRequest) (int, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return 0, err
	}
	return parsePriority(req.Priority)
}

// resolve looks up every row the request references
func (s *FeatureService) resolve(req *FeatureRequest) (*featureRefs, error) {
	refs := &featureRefs{}
	var err error
	if refs.project, err = s.projectRepo.GetByID(uuid.MustParse(req.ProjectID)); err != nil {
		return nil, err
	}
	if refs.owner, err = s.userRepo.GetByID(uuid.MustParse(req.OwnerID)); err != nil {
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

// Create creates a new feature
func (s *FeatureService) Create(ctx context.Context, req *FeatureRequest) (*FeatureResponse, error) {
	priority, err := s.checkRequest(req)
	if err != nil {
		return nil, err
	}
	refs, err := s.resolve(req)
	if err != nil {
		return nil, err
	}
	if _, err := authorize(ctx, refs.owner.ID, featureEditTier); err != nil {
		return nil, err
	}

	feature := &models.Feature{
		ProjectID:   refs.project.ID,
		OwnerID:     refs.owner.ID,
		Name:        req.Name,
		Description: req.Description,
		StatusID:    req.StatusID,
		TypeID:      req.TypeID,
		Priority:    priority,
		Flags:       models.ParseFlags(req.Flags),
	}
	if err := s.repo.Create(feature); err != nil {
		logStorage(ctx, err, "failed to create feature")
		return nil, fmt.Errorf("failed to create feature: %w", err)
	}
	attachFeatureRefs(feature, refs)

	return s.toResponse(feature), nil
}

// GetByID retrieves a feature by ID
func (s *FeatureService) GetByID(ctx context.Context, id string) (*FeatureResponse, error) {
	featureID, err := parseID("feature_id", id)
	if err != nil {
		return nil, err
	}
	feature, err := s.repo.GetByID(featureID)
	if err != nil {
		logStorage(ctx, err, "failed to get feature")
		return nil, err
	}
	return s.toResponse(feature), nil
}

// GetName returns the name of a feature
func (s *FeatureService) GetName(ctx context.Context, id string) (string, error) {
	feature, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return feature.Name, nil
}

// GetAll retrieves all features
func (s *FeatureService) GetAll(ctx context.Context) ([]FeatureResponse, error) {
	features, err := s.repo.GetAll()
	if err != nil {
		logStorage(ctx, err, "failed to get features")
		return nil, fmt.Errorf("failed to get features: %w", err)
	}
	return s.toResponses(features), nil
}

// GetAllByProject retrieves the features of a project
func (s *FeatureService) GetAllByProject(ctx context.Context, projectID string) ([]FeatureResponse, error) {
	id, err := parseID("project_id", projectID)
	if err != nil {
		return nil, err
	}
	if _, err := s.projectRepo.GetByID(id); err != nil {
		return nil, err
	}
	features, err := s.repo.GetByProjectID(id)
	if err != nil {
		logStorage(ctx, err, "failed to get features by project")
		return nil, fmt.Errorf("failed to get features: %w", err)
	}
	return s.toResponses(features), nil
}

// GetAllByOwner retrieves the features owned by a user
func (s *FeatureService) GetAllByOwner(ctx context.Context, ownerID string) ([]FeatureResponse, error) {
	id, err := parseID("owner_id", ownerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(id); err != nil {
		return nil, err
	}
	features, err := s.repo.GetByOwnerID(id)
	if err != nil {
		logStorage(ctx, err, "failed to get features by owner")
		return nil, fmt.Errorf("failed to get features: %w", err)
	}
	return s.toResponses(features), nil
}

// Update replaces the mutable fields of a feature
func (s *FeatureService) Update(ctx context.Context, id string, req *FeatureRequest) (*FeatureResponse, error) {
	priority, err := s.checkRequest(req)
	if err != nil {
		return nil, err
	}
	featureID, err := parseID("feature_id", id)
	if err != nil {
		return nil, err
	}

	feature, err := s.repo.GetByID(featureID)
	if err != nil {
		return nil, err
	}
	refs, err := s.resolve(req)
	if err != nil {
		return nil, err
	}
	if err := authorizeTransfer(ctx, feature.OwnerID, refs.owner.ID, featureEditTier); err != nil {
		return nil, err
	}

	feature.ProjectID = refs.project.ID
	feature.OwnerID = refs.owner.ID
	feature.Name = req.Name
	feature.Description = req.Description
	feature.StatusID = req.StatusID
	feature.TypeID = req.TypeID
	feature.Priority = priority
	feature.Flags = models.ParseFlags(req.Flags)
	if err := s.repo.Update(feature); err != nil {
		logStorage(ctx, err, "failed to update feature")
		return nil, fmt.Errorf("failed to update feature: %w", err)
	}
	attachFeatureRefs(feature, refs)

	return s.toResponse(feature), nil
}

// Delete deletes a feature
func (s *FeatureService) Delete(ctx context.Context, id string) error {
	featureID, err := parseID("feature_id", id)
	if err != nil {
		return err
	}
	feature, err := s.repo.GetByID(featureID)
	if err != nil {
		return err
	}
	if _, err := authorize(ctx, feature.OwnerID, featureEditTier); err != nil {
		return err
	}
	if err := s.repo.Delete(featureID); err != nil {
		logStorage(ctx, err, "failed to delete feature")
		return fmt.Errorf("failed to delete feature: %w", err)
	}
	return nil
}

func attachFeatureRefs(feature *models.Feature, refs *featureRefs) {
	feature.Project = refs.project
	feature.Owner = refs.owner
	feature.Status = &models.Status{LookupModel: *refs.status}
	feature.Type = &models.Type{LookupModel: *refs.kind}
}

func (s *FeatureService) toResponses(features []models.Feature) []FeatureResponse {
	responses := make([]FeatureResponse, len(features))
	for i := range features {
		responses[i] = *s.toResponse(&features[i])
	}
	return responses
}

// toResponse converts a feature model to response, names come from the preloaded relations
func (s *FeatureService) toResponse(feature *models.Feature) *FeatureResponse {
	resp := &FeatureResponse{
		ID:          feature.ID,
		ProjectID:   feature.ProjectID,
		OwnerID:     feature.OwnerID,
		OwnerName:   fullName(feature.Owner),
		Name:        feature.Name,
		Description: feature.Description,
		StatusID:    feature.StatusID,
		TypeID:      feature.TypeID,
		Priority:    feature.Priority,
		Flags:       nonNilFlags(feature.Flags),
		CreatedAt:   feature.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   feature.UpdatedAt.Format(time.RFC3339),
	}
	if feature.Project != nil {
		resp.ProjectName = feature.Project.Name
	}
	if feature.Status != nil {
		resp.StatusName = feature.Status.Name
	}
	if feature.Type != nil {
		resp.TypeName = feature.Type.Name
	}
	return resp
}
