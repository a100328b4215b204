package repository

import (
	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll() ([]models.User, error)
	GetByTeamID(teamID uuid.UUID) ([]models.User, error)
	Update(user *models.User) error
	UpdateProfileImage(id uuid.UUID, contentType string, data []byte) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	CreateWithLeader(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetAll() ([]models.Team, error)
	GetByLeaderID(leaderID uuid.UUID) ([]models.Team, error)
	UpdateWithLeader(team *models.Team) error
	AddMember(teamID, userID uuid.UUID) error
	RemoveMember(teamID, userID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetAll() ([]models.Project, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// FeatureRepositoryInterface defines the interface for feature repository operations
type FeatureRepositoryInterface interface {
	Create(feature *models.Feature) error
	GetByID(id uuid.UUID) (*models.Feature, error)
	GetAll() ([]models.Feature, error)
	GetByProjectID(projectID uuid.UUID) ([]models.Feature, error)
	GetByOwnerID(ownerID uuid.UUID) ([]models.Feature, error)
	Update(feature *models.Feature) error
	Delete(id uuid.UUID) error
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	GetAll() ([]models.Task, error)
	GetByFeatureID(featureID uuid.UUID) ([]models.Task, error)
	GetByAssigneeID(assigneeID uuid.UUID) ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id uuid.UUID) error
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	GetByID(id uuid.UUID) (*models.Comment, error)
	GetByFeatureID(featureID uuid.UUID) ([]models.Comment, error)
	GetByTaskID(taskID uuid.UUID) ([]models.Comment, error)
	GetByAssigneeID(assigneeID uuid.UUID) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uuid.UUID) error
}

// LookupRepositoryInterface defines the interface shared by the role, status and type repositories
type LookupRepositoryInterface interface {
	Create(item *models.LookupModel) error
	GetByID(id int) (*models.LookupModel, error)
	GetAll() ([]models.LookupModel, error)
	Update(item *models.LookupModel) error
	Delete(id int) error
}

// StatisticsRepositoryInterface defines the interface for aggregate queries
type StatisticsRepositoryInterface interface {
	TimeSpentByTask(taskID uuid.UUID) (float64, error)
	TimeSpentByFeature(featureID uuid.UUID) (float64, error)
	TimeSpentByUser(userID uuid.UUID) (float64, error)
	Ping() error
}

var (
	_ UserRepositoryInterface       = (*UserRepository)(nil)
	_ TeamRepositoryInterface       = (*TeamRepository)(nil)
	_ ProjectRepositoryInterface    = (*ProjectRepository)(nil)
	_ FeatureRepositoryInterface    = (*FeatureRepository)(nil)
	_ TaskRepositoryInterface       = (*TaskRepository)(nil)
	_ CommentRepositoryInterface    = (*CommentRepository)(nil)
	_ LookupRepositoryInterface     = (*LookupRepository)(nil)
	_ StatisticsRepositoryInterface = (*StatisticsRepository)(nil)
)
