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

// TeamService handles business logic for teams and their memberships
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// TeamRequest represents the request to create or update a team
type TeamRequest struct {
	Name        string `json:"name" validate:"required,max=100" example:"Backend"`
	Description string `json:"description" validate:"required" example:"Owns the API"`
	LeaderID    string `json:"leader_id" validate:"required,uuid4_rfc4122"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LeaderID    uuid.UUID `json:"leader_id"`
	LeaderName  string    `json:"leader_name"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// getLeader resolves a leader id, a missing user is reported as a missing leader
func (s *TeamService) getLeader(id uuid.UUID) (*models.User, error) {
	leader, err := s.userRepo.GetByID(id)
	if apperrors.IsNotFound(err) {
		return nil, apperrors.ErrLeaderNotFound
	}
	return leader, err
}

// Create creates a team and makes its leader the first member.
// A leader that already belongs to a team yields ErrUserAlreadyInTeam and nothing is stored.
func (s *TeamService) Create(ctx context.Context, req *TeamRequest) (*TeamResponse, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	leader, err := s.getLeader(uuid.MustParse(req.LeaderID))
	if err != nil {
		return nil, err
	}
	if _, err := requireTier(ctx, teamCreateTier); err != nil {
		return nil, err
	}
	if _, err := authorize(ctx, leader.ID, teamEditTier); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
		LeaderID:    leader.ID,
	}
	if err := s.repo.CreateWithLeader(team); err != nil {
		logStorage(ctx, err, "failed to create team")
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	team.Leader = leader

	return s.toResponse(team), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(ctx context.Context, id string) (*TeamResponse, error) {
	teamID, err := parseID("team_id", id)
	if err != nil {
		return nil, err
	}
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		logStorage(ctx, err, "failed to get team")
		return nil, err
	}
	return s.toResponse(team), nil
}

// GetName returns the name of a team
func (s *TeamService) GetName(ctx context.Context, id string) (string, error) {
	team, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return team.Name, nil
}

// GetAll retrieves all teams
func (s *TeamService) GetAll(ctx context.Context) ([]TeamResponse, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		logStorage(ctx, err, "failed to get teams")
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	return s.toResponses(teams), nil
}

// GetAllByLeader retrieves the teams led by a user
func (s *TeamService) GetAllByLeader(ctx context.Context, leaderID string) ([]TeamResponse, error) {
	id, err := parseID("leader_id", leaderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.getLeader(id); err != nil {
		return nil, err
	}
	teams, err := s.repo.GetByLeaderID(id)
	if err != nil {
		logStorage(ctx, err, "failed to get teams by leader")
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	return s.toResponses(teams), nil
}

// GetMembers retrieves the users belonging to a team
func (s *TeamService) GetMembers(ctx context.Context, id string) ([]UserResponse, error) {
	teamID, err := parseID("team_id", id)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(teamID); err != nil {
		return nil, err
	}
	users, err := s.userRepo.GetByTeamID(teamID)
	if err != nil {
		logStorage(ctx, err, "failed to get team members")
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	return toUserResponses(users), nil
}

// Update replaces the mutable fields of a team, a new leader joins the team
func (s *TeamService) Update(ctx context.Context, id string, req *TeamRequest) (*TeamResponse, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	teamID, err := parseID("team_id", id)
	if err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(teamID)
	if err != nil {
		return nil, err
	}
	leader, err := s.getLeader(uuid.MustParse(req.LeaderID))
	if err != nil {
		return nil, err
	}
	if err := authorizeTransfer(ctx, team.LeaderID, leader.ID, teamEditTier); err != nil {
		return nil, err
	}

	team.Name = req.Name
	team.Description = req.Description
	team.LeaderID = leader.ID
	team.Leader = nil
	if err := s.repo.UpdateWithLeader(team); err != nil {
		logStorage(ctx, err, "failed to update team")
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	team.Leader = leader

	return s.toResponse(team), nil
}

// AddMember adds a user to a team. A user can be in one team only.
func (s *TeamService) AddMember(ctx context.Context, teamID, userID string) error {
	team, user, err := s.resolveMembership(teamID, userID)
	if err != nil {
		return err
	}
	if _, err := authorize(ctx, team.LeaderID, teamEditTier); err != nil {
		return err
	}
	if err := s.repo.AddMember(team.ID, user.ID); err != nil {
		logStorage(ctx, err, "failed to add team member")
		return fmt.Errorf("failed to add team member: %w", err)
	}
	return nil
}

// RemoveMember removes a user from a team
func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID string) error {
	team, user, err := s.resolveMembership(teamID, userID)
	if err != nil {
		return err
	}
	// a team always contains its leader, hand the team over with Update first
	if team.LeaderID == user.ID {
		return apperrors.NewInvalidInputError("user_id", "the team leader can not leave the team")
	}
	if _, err := authorize(ctx, team.LeaderID, teamEditTier); err != nil {
		return err
	}
	if err := s.repo.RemoveMember(team.ID, user.ID); err != nil {
		logStorage(ctx, err, "failed to remove team member")
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	return nil
}

// resolveMembership checks both ids and that the team and the user exist
func (s *TeamService) resolveMembership(teamID, userID string) (*models.Team, *models.User, error) {
	tid, err := parseID("team_id", teamID)
	if err != nil {
		return nil, nil, err
	}
	uid, err := parseID("user_id", userID)
	if err != nil {
		return nil, nil, err
	}
	team, err := s.repo.GetByID(tid)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.userRepo.GetByID(uid)
	if err != nil {
		return nil, nil, err
	}
	return team, user, nil
}

// Delete deletes a team and its memberships
func (s *TeamService) Delete(ctx context.Context, id string) error {
	teamID, err := parseID("team_id", id)
	if err != nil {
		return err
	}
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		return err
	}
	if _, err := authorize(ctx, team.LeaderID, teamEditTier); err != nil {
		return err
	}
	if err := s.repo.Delete(teamID); err != nil {
		logStorage(ctx, err, "failed to delete team")
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func (s *TeamService) toResponses(teams []models.Team) []TeamResponse {
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i])
	}
	return responses
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		LeaderID:    team.LeaderID,
		LeaderName:  fullName(team.Leader),
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   team.UpdatedAt.Format(time.RFC3339),
	}
}
