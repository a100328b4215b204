package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(ctx context.Context, req *UserRequest) (*UserResponse, error)
	Register(ctx context.Context, req *RegisterRequest) (*UserResponse, error)
	GetByID(ctx context.Context, id string) (*UserResponse, error)
	GetByUsername(ctx context.Context, username string) (*UserResponse, error)
	GetFullName(ctx context.Context, id string) (string, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetAllByTeam(ctx context.Context, teamID string) ([]UserResponse, error)
	Update(ctx context.Context, id string, req *UserRequest) (*UserResponse, error)
	UpdateProfileImage(ctx context.Context, id, contentType string, data []byte) error
	GetProfileImage(ctx context.Context, id string) ([]byte, string, error)
	Delete(ctx context.Context, id string) error
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, req *TeamRequest) (*TeamResponse, error)
	GetByID(ctx context.Context, id string) (*TeamResponse, error)
	GetName(ctx context.Context, id string) (string, error)
	GetAll(ctx context.Context) ([]TeamResponse, error)
	GetAllByLeader(ctx context.Context, leaderID string) ([]TeamResponse, error)
	GetMembers(ctx context.Context, id string) ([]UserResponse, error)
	Update(ctx context.Context, id string, req *TeamRequest) (*TeamResponse, error)
	AddMember(ctx context.Context, teamID, userID string) error
	RemoveMember(ctx context.Context, teamID, userID string) error
	Delete(ctx context.Context, id string) error
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(ctx context.Context, req *ProjectRequest) (*ProjectResponse, error)
	GetByID(ctx context.Context, id string) (*ProjectResponse, error)
	GetAll(ctx context.Context) ([]ProjectResponse, error)
	GetAllByOwner(ctx context.Context, ownerID string) ([]ProjectResponse, error)
	Update(ctx context.Context, id string, req *ProjectRequest) (*ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}

// FeatureServiceInterface defines the interface for feature service
type FeatureServiceInterface interface {
	Create(ctx context.Context, req *FeatureRequest) (*FeatureResponse, error)
	GetByID(ctx context.Context, id string) (*FeatureResponse, error)
	GetName(ctx context.Context, id string) (string, error)
	GetAll(ctx context.Context) ([]FeatureResponse, error)
	GetAllByProject(ctx context.Context, projectID string) ([]FeatureResponse, error)
	GetAllByOwner(ctx context.Context, ownerID string) ([]FeatureResponse, error)
	Update(ctx context.Context, id string, req *FeatureRequest) (*FeatureResponse, error)
	Delete(ctx context.Context, id string) error
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	Create(ctx context.Context, req *TaskRequest) (*TaskResponse, error)
	GetByID(ctx context.Context, id string) (*TaskResponse, error)
	GetAll(ctx context.Context) ([]TaskResponse, error)
	GetAllByFeature(ctx context.Context, featureID string) ([]TaskResponse, error)
	GetAllByAssignee(ctx context.Context, assigneeID string) ([]TaskResponse, error)
	Update(ctx context.Context, id string, req *TaskRequest) (*TaskResponse, error)
	Delete(ctx context.Context, id string) error
}

// CommentServiceInterface defines the interface for comment service
type CommentServiceInterface interface {
	Create(ctx context.Context, req *CommentRequest) (*CommentResponse, error)
	GetByID(ctx context.Context, id string) (*CommentResponse, error)
	GetByFeature(ctx context.Context, featureID string) ([]CommentResponse, error)
	GetByTask(ctx context.Context, taskID string) ([]CommentResponse, error)
	GetByAssignee(ctx context.Context, assigneeID string) ([]CommentResponse, error)
	Update(ctx context.Context, id string, req *CommentRequest) (*CommentResponse, error)
	Delete(ctx context.Context, id string) error
}

// LookupServiceInterface defines the interface shared by the role, status and type services
type LookupServiceInterface interface {
	Create(ctx context.Context, req *LookupRequest) (*LookupResponse, error)
	GetByID(ctx context.Context, id string) (*LookupResponse, error)
	GetName(ctx context.Context, id string) (string, error)
	GetAll(ctx context.Context) ([]LookupResponse, error)
	Update(ctx context.Context, id string, req *LookupRequest) (*LookupResponse, error)
	Delete(ctx context.Context, id string) error
}

// StatisticsServiceInterface defines the interface for statistics service
type StatisticsServiceInterface interface {
	TimeSpentByTask(ctx context.Context, taskID string) (*TimeSpentResponse, error)
	TimeSpentByFeature(ctx context.Context, featureID string) (*TimeSpentResponse, error)
	TimeSpentByUser(ctx context.Context, userID string) (*TimeSpentResponse, error)
	Ping(ctx context.Context) error
}

var (
	_ UserServiceInterface       = (*UserService)(nil)
	_ TeamServiceInterface       = (*TeamService)(nil)
	_ ProjectServiceInterface    = (*ProjectService)(nil)
	_ FeatureServiceInterface    = (*FeatureService)(nil)
	_ TaskServiceInterface       = (*TaskService)(nil)
	_ CommentServiceInterface    = (*CommentService)(nil)
	_ LookupServiceInterface     = (*LookupService)(nil)
	_ StatisticsServiceInterface = (*StatisticsService)(nil)
)
