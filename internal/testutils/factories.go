package testutils

import (
	"time"

	"project-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique username
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "user" + id.String()[:8],
		RoleID:       models.RoleTierUser,
		PasswordHash: "$2a$10$invalidhashfortestsonly",
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john.doe@test.com",
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// WithRole sets a custom role tier
func (f *UserFactory) WithRole(roleID int) *models.User {
	user := f.Create()
	user.RoleID = roleID
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team led by a random id, set LeaderID before saving
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Team",
		Description: "A test team for testing purposes",
		LeaderID:    uuid.New(),
	}
}

// WithLeader sets the team leader
func (f *TeamFactory) WithLeader(leaderID uuid.UUID) *models.Team {
	team := f.Create()
	team.LeaderID = leaderID
	return team
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OwnerID:     uuid.New(),
		Name:        "Test Project",
		Description: "A test project for testing purposes",
		Flags:       models.Flags{"backend", "urgent"},
	}
}

// WithOwner sets the project owner
func (f *ProjectFactory) WithOwner(ownerID uuid.UUID) *models.Project {
	project := f.Create()
	project.OwnerID = ownerID
	return project
}

// FeatureFactory provides methods to create test Feature data
type FeatureFactory struct{}

// NewFeatureFactory creates a new FeatureFactory
func NewFeatureFactory() *FeatureFactory {
	return &FeatureFactory{}
}

// Create creates a test Feature with status and type 1
func (f *FeatureFactory) Create() *models.Feature {
	return &models.Feature{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:   uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Test Feature",
		Description: "A test feature for testing purposes",
		StatusID:    1,
		TypeID:      1,
		Priority:    models.PriorityLow,
		Flags:       models.Flags{},
	}
}

// WithProject sets the project and owner of the feature
func (f *FeatureFactory) WithProject(projectID, ownerID uuid.UUID) *models.Feature {
	feature := f.Create()
	feature.ProjectID = projectID
	feature.OwnerID = ownerID
	return feature
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with status and type 1
func (f *TaskFactory) Create() *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FeatureID:   uuid.New(),
		AssigneeID:  uuid.New(),
		Name:        "Test Task",
		Description: "A test task for testing purposes",
		StatusID:    1,
		TypeID:      1,
		Priority:    models.PriorityHigh,
		Flags:       models.Flags{"frontend"},
	}
}

// WithFeature sets the feature and assignee of the task
func (f *TaskFactory) WithFeature(featureID, assigneeID uuid.UUID) *models.Task {
	task := f.Create()
	task.FeatureID = featureID
	task.AssigneeID = assigneeID
	return task
}

// CommentFactory provides methods to create test Comment data
type CommentFactory struct{}

// NewCommentFactory creates a new CommentFactory
func NewCommentFactory() *CommentFactory {
	return &CommentFactory{}
}

// Create creates a test Comment without a parent, set FeatureID or TaskID before saving
func (f *CommentFactory) Create() *models.Comment {
	return &models.Comment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AssigneeID: uuid.New(),
		Text:       "Worked on it",
		TimeSpent:  1.5,
	}
}

// OnFeature creates a comment on a feature
func (f *CommentFactory) OnFeature(featureID, assigneeID uuid.UUID, timeSpent float64) *models.Comment {
	comment := f.Create()
	comment.FeatureID = &featureID
	comment.AssigneeID = assigneeID
	comment.TimeSpent = timeSpent
	return comment
}

// OnTask creates a comment on a task
func (f *CommentFactory) OnTask(taskID, assigneeID uuid.UUID, timeSpent float64) *models.Comment {
	comment := f.Create()
	comment.TaskID = &taskID
	comment.AssigneeID = assigneeID
	comment.TimeSpent = timeSpent
	return comment
}

// FactorySet provides access to all factories
type FactorySet struct {
	User    *UserFactory
	Team    *TeamFactory
	Project *ProjectFactory
	Feature *FeatureFactory
	Task    *TaskFactory
	Comment *CommentFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		Team:    NewTeamFactory(),
		Project: NewProjectFactory(),
		Feature: NewFeatureFactory(),
		Task:    NewTaskFactory(),
		Comment: NewCommentFactory(),
	}
}

// Hierarchy is a consistent set of persisted-ready rows, owner first
type Hierarchy struct {
	Owner   *models.User
	Project *models.Project
	Feature *models.Feature
	Task    *models.Task
}

// CreateHierarchy builds an owner with a project, a feature and a task wired together.
// Lookup rows with id 1 must exist before the feature and task are saved.
func (fs *FactorySet) CreateHierarchy() *Hierarchy {
	owner := fs.User.Create()
	project := fs.Project.WithOwner(owner.ID)
	feature := fs.Feature.WithProject(project.ID, owner.ID)
	task := fs.Task.WithFeature(feature.ID, owner.ID)
	return &Hierarchy{Owner: owner, Project: project, Feature: feature, Task: task}
}
