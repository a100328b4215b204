package service

import (
	"context"
	"fmt"
	"strconv"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/repository"
	"project-tracker-backend/internal/validation"

	"github.com/go-playground/validator/v10"
)

// LookupService handles one of the id/name tables. Roles, statuses and types share it.
type LookupService struct {
	repo      repository.LookupRepositoryInterface
	entity    string
	validator *validator.Validate
	// fixedRows means rows can be renamed but never added or removed
	fixedRows bool
}

// NewRoleService creates a service for roles. A role id doubles as the permission
// tier, so the set of roles is fixed to the seeded tiers and only names can change.
func NewRoleService(repo repository.LookupRepositoryInterface, validator *validator.Validate) *LookupService {
	return &LookupService{repo: repo, entity: "role", validator: validator, fixedRows: true}
}

// NewStatusService creates a service for statuses
func NewStatusService(repo repository.LookupRepositoryInterface, validator *validator.Validate) *LookupService {
	return &LookupService{repo: repo, entity: "status", validator: validator}
}

// NewTypeService creates a service for types
func NewTypeService(repo repository.LookupRepositoryInterface, validator *validator.Validate) *LookupService {
	return &LookupService{repo: repo, entity: "type", validator: validator}
}

// LookupRequest represents the request to create or rename a lookup row
type LookupRequest struct {
	Name string `json:"name" validate:"required,max=100" example:"in progress"`
}

// LookupResponse represents a role, status or type
type LookupResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// parseLookupID parses the integer key of a lookup row
func parseLookupID(value string) (int, error) {
	if value == "" {
		return 0, apperrors.NewEmptyValueError("id")
	}
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidInputError("id", "id is not a positive number")
	}
	return id, nil
}

func (s *LookupService) errFixedRows() error {
	return apperrors.NewInvalidInputError(s.entity, "the "+s.entity+" list is fixed, only names can be changed")
}

// Create adds a row, admins only
func (s *LookupService) Create(ctx context.Context, req *LookupRequest) (*LookupResponse, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	if s.fixedRows {
		return nil, s.errFixedRows()
	}
	if _, err := requireTier(ctx, lookupEditTier); err != nil {
		return nil, err
	}

	item := &models.LookupModel{Name: req.Name}
	if err := s.repo.Create(item); err != nil {
		logStorage(ctx, err, "failed to create "+s.entity)
		return nil, fmt.Errorf("failed to create %s: %w", s.entity, err)
	}
	return toLookupResponse(item), nil
}

// GetByID retrieves a row by its id
func (s *LookupService) GetByID(ctx context.Context, id string) (*LookupResponse, error) {
	itemID, err := parseLookupID(id)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.GetByID(itemID)
	if err != nil {
		logStorage(ctx, err, "failed to get "+s.entity)
		return nil, err
	}
	return toLookupResponse(item), nil
}

// GetName returns the name of a row
func (s *LookupService) GetName(ctx context.Context, id string) (string, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return item.Name, nil
}

// GetAll retrieves all rows ordered by id
func (s *LookupService) GetAll(ctx context.Context) ([]LookupResponse, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		logStorage(ctx, err, "failed to get "+s.entity+" list")
		return nil, fmt.Errorf("failed to get %s list: %w", s.entity, err)
	}
	responses := make([]LookupResponse, len(items))
	for i := range items {
		responses[i] = *toLookupResponse(&items[i])
	}
	return responses, nil
}

// Update renames a row, admins only
func (s *LookupService) Update(ctx context.Context, id string, req *LookupRequest) (*LookupResponse, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	itemID, err := parseLookupID(id)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if _, err := requireTier(ctx, lookupEditTier); err != nil {
		return nil, err
	}

	item.Name = req.Name
	if err := s.repo.Update(item); err != nil {
		logStorage(ctx, err, "failed to update "+s.entity)
		return nil, fmt.Errorf("failed to update %s: %w", s.entity, err)
	}
	return toLookupResponse(item), nil
}

// Delete removes a row, admins only. Rows still in use are kept by the database.
func (s *LookupService) Delete(ctx context.Context, id string) error {
	itemID, err := parseLookupID(id)
	if err != nil {
		return err
	}
	if _, err := s.repo.GetByID(itemID); err != nil {
		return err
	}
	if s.fixedRows {
		return s.errFixedRows()
	}
	if _, err := requireTier(ctx, lookupEditTier); err != nil {
		return err
	}
	if err := s.repo.Delete(itemID); err != nil {
		logStorage(ctx, err, "failed to delete "+s.entity)
		return fmt.Errorf("failed to delete %s: %w", s.entity, err)
	}
	return nil
}

func toLookupResponse(item *models.LookupModel) *LookupResponse {
	return &LookupResponse{ID: item.ID, Name: item.Name}
}
