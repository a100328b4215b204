package repository

import (
	"errors"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams and their memberships
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithLeader inserts the team and its leader's membership in one transaction.
// If the leader already belongs to a team nothing is persisted and ErrUserAlreadyInTeam is returned.
func (r *TeamRepository) CreateWithLeader(team *models.Team) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(team).Error; err != nil {
			return err
		}
		return tx.Create(&models.TeamMembership{TeamID: team.ID, UserID: team.LeaderID}).Error
	})
	return translateMembership(err, "while saving new team")
}

// GetByID retrieves a team by ID with its leader
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Leader").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, apperrors.ErrTeamNotFound, "while getting team")
	}
	return &team, nil
}

// GetAll retrieves all teams
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.Preload("Leader").Order("name").Find(&teams).Error; err != nil {
		return nil, translate(err, nil, "while getting teams")
	}
	return teams, nil
}

// GetByLeaderID retrieves the teams led by a user
func (r *TeamRepository) GetByLeaderID(leaderID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Leader").Where("leader_id = ?", leaderID).Order("name").Find(&teams).Error
	if err != nil {
		return nil, translate(err, nil, "while getting teams by leader")
	}
	return teams, nil
}

// UpdateWithLeader saves the team and makes sure its leader is a member of it
func (r *TeamRepository) UpdateWithLeader(team *models.Team) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(team).Error; err != nil {
			return err
		}

		var membership models.TeamMembership
		err := tx.First(&membership, "user_id = ?", team.LeaderID).Error
		switch {
		case err == nil && membership.TeamID == team.ID:
			return nil
		case err == nil:
			return apperrors.ErrUserAlreadyInTeam
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.TeamMembership{TeamID: team.ID, UserID: team.LeaderID}).Error
		default:
			return err
		}
	})
	return translateMembership(err, "while updating team")
}

// AddMember adds a user to a team
func (r *TeamRepository) AddMember(teamID, userID uuid.UUID) error {
	err := r.db.Create(&models.TeamMembership{TeamID: teamID, UserID: userID}).Error
	return translateMembership(err, "while adding team member")
}

// RemoveMember removes a user from a team
func (r *TeamRepository) RemoveMember(teamID, userID uuid.UUID) error {
	result := r.db.Delete(&models.TeamMembership{}, "team_id = ? AND user_id = ?", teamID, userID)
	if result.Error != nil {
		return translate(result.Error, nil, "while removing team member")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

// Delete deletes a team, memberships cascade
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return translate(r.db.Delete(&models.Team{}, "id = ?", id).Error, nil, "while deleting team")
}
