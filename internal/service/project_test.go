package service_test

import (
	"context"
	"errors"
	"testing"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/service"
	"project-tracker-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockProjectRepositoryInterface
	mockUserRepo   *mocks.MockUserRepositoryInterface
	projectService *service.ProjectService
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.projectService = service.NewProjectService(suite.mockRepo, suite.mockUserRepo, validation.New())
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectServiceTestSuite) validRequest(ownerID uuid.UUID) *service.ProjectRequest {
	return &service.ProjectRequest{
		OwnerID:     ownerID.String(),
		Name:        "Tracker",
		Description: "Project tracking application",
		Flags:       "backend;urgent;",
	}
}

// TestCreate_Success tests creating a project owned by the session user
func (suite *ProjectServiceTestSuite) TestCreate_Success() {
	owner := newUser("Jane", "Doe")
	ctx := sessionContext(owner.ID, models.RoleTierUser)

	suite.mockUserRepo.EXPECT().GetByID(owner.ID).Return(owner, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Project) error {
		suite.Equal(owner.ID, p.OwnerID)
		suite.Equal(models.Flags{"backend", "urgent"}, p.Flags)
		p.ID = uuid.New()
		return nil
	})

	resp, err := suite.projectService.Create(ctx, suite.validRequest(owner.ID))

	suite.Require().NoError(err)
	suite.Equal("Tracker", resp.Name)
	suite.Equal("Jane Doe", resp.OwnerName)
	suite.Equal([]string{"backend", "urgent"}, resp.Flags)
}

// TestCreate_EmptyFields tests that blank required fields fail before any lookup
func (suite *ProjectServiceTestSuite) TestCreate_EmptyFields() {
	testCases := []struct {
		name    string
		request *service.ProjectRequest
		field   string
	}{
		{name: "empty owner", request: &service.ProjectRequest{Name: "n", Description: "d"}, field: "owner_id"},
		{name: "empty name", request: &service.ProjectRequest{OwnerID: uuid.NewString(), Description: "d"}, field: "name"},
		{name: "empty description", request: &service.ProjectRequest{OwnerID: uuid.NewString(), Name: "n"}, field: "description"},
		{name: "everything empty", request: &service.ProjectRequest{}, field: ""},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			_, err := suite.projectService.Create(adminContext(), tc.request)
			assert.True(t, apperrors.IsEmptyValue(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

// TestCreate_InvalidFormat tests malformed owner ids and flags
func (suite *ProjectServiceTestSuite) TestCreate_InvalidFormat() {
	req := suite.validRequest(uuid.New())
	req.OwnerID = "12345"
	_, err := suite.projectService.Create(adminContext(), req)
	suite.True(apperrors.IsInvalidInput(err))

	req = suite.validRequest(uuid.New())
	req.Flags = "a;b"
	_, err = suite.projectService.Create(adminContext(), req)
	suite.True(apperrors.IsInvalidInput(err))
	suite.Contains(err.Error(), "flags")
}

// TestCreate_OwnerNotFound tests that a missing owner is reported and nothing is stored
func (suite *ProjectServiceTestSuite) TestCreate_OwnerNotFound() {
	ownerID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(ownerID).Return(nil, apperrors.ErrUserNotFound)

	_, err := suite.projectService.Create(adminContext(), suite.validRequest(ownerID))

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestCreate_Forbidden tests that a base user cannot create a project for somebody else
func (suite *ProjectServiceTestSuite) TestCreate_Forbidden() {
	owner := newUser("Jane", "Doe")
	ctx := sessionContext(uuid.New(), models.RoleTierLeader)
	suite.mockUserRepo.EXPECT().GetByID(owner.ID).Return(owner, nil)

	_, err := suite.projectService.Create(ctx, suite.validRequest(owner.ID))

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestCreate_NoSession tests that mutations need a session
func (suite *ProjectServiceTestSuite) TestCreate_NoSession() {
	owner := newUser("Jane", "Doe")
	suite.mockUserRepo.EXPECT().GetByID(owner.ID).Return(owner, nil)

	_, err := suite.projectService.Create(context.Background(), suite.validRequest(owner.ID))

	suite.ErrorIs(err, apperrors.ErrNotAuthenticated)
}

// TestCreate_StorageFailure tests that persistence errors keep their kind
func (suite *ProjectServiceTestSuite) TestCreate_StorageFailure() {
	owner := newUser("Jane", "Doe")
	suite.mockUserRepo.EXPECT().GetByID(owner.ID).Return(owner, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(apperrors.NewStorageError("while saving new project", errors.New("connection refused")))

	_, err := suite.projectService.Create(adminContext(), suite.validRequest(owner.ID))

	suite.True(apperrors.IsStorage(err))
}

// TestGetByID tests retrieving a project
func (suite *ProjectServiceTestSuite) TestGetByID() {
	project := &models.Project{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Tracker", Owner: newUser("Jane", "Doe")}
	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil)

	resp, err := suite.projectService.GetByID(context.Background(), project.ID.String())

	suite.Require().NoError(err)
	suite.Equal("Jane Doe", resp.OwnerName)
	suite.Equal([]string{}, resp.Flags)
}

// TestGetByID_InvalidID tests id checks before the lookup
func (suite *ProjectServiceTestSuite) TestGetByID_InvalidID() {
	_, err := suite.projectService.GetByID(context.Background(), "")
	suite.True(apperrors.IsEmptyValue(err))

	_, err = suite.projectService.GetByID(context.Background(), "not-a-uuid")
	suite.True(apperrors.IsInvalidInput(err))
}

// TestGetAllByOwner tests listing the projects of an owner
func (suite *ProjectServiceTestSuite) TestGetAllByOwner() {
	owner := newUser("Jane", "Doe")
	suite.mockUserRepo.EXPECT().GetByID(owner.ID).Return(owner, nil)
	suite.mockRepo.EXPECT().GetByOwnerID(owner.ID).Return([]models.Project{{Name: "a"}, {Name: "b"}}, nil)

	resp, err := suite.projectService.GetAllByOwner(context.Background(), owner.ID.String())

	suite.Require().NoError(err)
	suite.Len(resp, 2)
}

// TestUpdate_OwnerMayEdit tests that the owner can update without the admin tier
func (suite *ProjectServiceTestSuite) TestUpdate_OwnerMayEdit() {
	owner := newUser("Jane", "Doe")
	project := &models.Project{BaseModel: models.BaseModel{ID: uuid.New()}, OwnerID: owner.ID, Name: "Old"}
	ctx := sessionContext(owner.ID, models.RoleTierUser)

	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockUserRepo.EXPECT().GetByID(owner.ID).Return(owner, nil)
	suite.mockRepo.EXPECT().Update(project).Return(nil)

	resp, err := suite.projectService.Update(ctx, project.ID.String(), suite.validRequest(owner.ID))

	suite.Require().NoError(err)
	suite.Equal("Tracker", resp.Name)
}

// TestUpdate_Forbidden tests that a leader cannot update somebody else's project
func (suite *ProjectServiceTestSuite) TestUpdate_Forbidden() {
	owner := newUser("Jane", "Doe")
	project := &models.Project{BaseModel: models.BaseModel{ID: uuid.New()}, OwnerID: owner.ID}
	ctx := sessionContext(uuid.New(), models.RoleTierLeader)

	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockUserRepo.EXPECT().GetByID(owner.ID).Return(owner, nil)

	_, err := suite.projectService.Update(ctx, project.ID.String(), suite.validRequest(owner.ID))

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestUpdate_OwnerMayNotHandOver tests that giving a project away needs the admin tier
func (suite *ProjectServiceTestSuite) TestUpdate_OwnerMayNotHandOver() {
	owner := newUser("Jane", "Doe")
	other := newUser("Max", "Other")
	project := &models.Project{BaseModel: models.BaseModel{ID: uuid.New()}, OwnerID: owner.ID}
	ctx := sessionContext(owner.ID, models.RoleTierLeader)

	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockUserRepo.EXPECT().GetByID(other.ID).Return(other, nil)

	_, err := suite.projectService.Update(ctx, project.ID.String(), suite.validRequest(other.ID))

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Equal(owner.ID, project.OwnerID)
}

// TestDelete tests deleting as an admin and deleting a missing project
func (suite *ProjectServiceTestSuite) TestDelete() {
	project := &models.Project{BaseModel: models.BaseModel{ID: uuid.New()}, OwnerID: uuid.New()}
	suite.mockRepo.EXPECT().GetByID(project.ID).Return(project, nil)
	suite.mockRepo.EXPECT().Delete(project.ID).Return(nil)
	suite.NoError(suite.projectService.Delete(adminContext(), project.ID.String()))

	missing := uuid.New()
	suite.mockRepo.EXPECT().GetByID(missing).Return(nil, apperrors.ErrProjectNotFound)
	suite.ErrorIs(suite.projectService.Delete(adminContext(), missing.String()), apperrors.ErrProjectNotFound)
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
