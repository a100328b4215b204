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
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockTaskRepositoryInterface
	mockFeatureRepo *mocks.MockFeatureRepositoryInterface
	mockUserRepo    *mocks.MockUserRepositoryInterface
	mockStatusRepo  *mocks.MockLookupRepositoryInterface
	mockTypeRepo    *mocks.MockLookupRepositoryInterface
	taskService     *service.TaskService

	feature  *models.Feature
	assignee *models.User
}

// SetupTest sets up the test suite
func (suite *TaskServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.mockFeatureRepo = mocks.NewMockFeatureRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockStatusRepo = mocks.NewMockLookupRepositoryInterface(suite.ctrl)
	suite.mockTypeRepo = mocks.NewMockLookupRepositoryInterface(suite.ctrl)
	suite.taskService = service.NewTaskService(
		suite.mockRepo,
		suite.mockFeatureRepo,
		suite.mockUserRepo,
		suite.mockStatusRepo,
		suite.mockTypeRepo,
		validation.New(),
	)

	suite.assignee = newUser("John", "Smith")
	suite.feature = &models.Feature{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Login page"}
}

// TearDownTest cleans up after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskServiceTestSuite) validRequest() *service.TaskRequest {
	return &service.TaskRequest{
		FeatureID:   suite.feature.ID.String(),
		AssigneeID:  suite.assignee.ID.String(),
		Name:        "Form validation",
		Description: "Validate the login form",
		StatusID:    2,
		TypeID:      2,
		Priority:    "1",
	}
}

func (suite *TaskServiceTestSuite) expectRefs() {
	suite.mockFeatureRepo.EXPECT().GetByID(suite.feature.ID).Return(suite.feature, nil)
	suite.mockUserRepo.EXPECT().GetByID(suite.assignee.ID).Return(suite.assignee, nil)
	suite.mockStatusRepo.EXPECT().GetByID(2).Return(lookup(2, "in progress"), nil)
	suite.mockTypeRepo.EXPECT().GetByID(2).Return(lookup(2, "bug fix"), nil)
}

// TestCreate_Success tests creating a task for yourself
func (suite *TaskServiceTestSuite) TestCreate_Success() {
	suite.expectRefs()
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.taskService.Create(sessionContext(suite.assignee.ID, models.RoleTierUser), suite.validRequest())

	suite.Require().NoError(err)
	suite.Equal("Login page", resp.FeatureName)
	suite.Equal("John Smith", resp.AssigneeName)
	suite.Equal("in progress", resp.StatusName)
	suite.Equal("bug fix", resp.TypeName)
	suite.Equal(1, resp.Priority)
	suite.Equal([]string{}, resp.Flags)
}

// TestCreate_EmptyAssignee tests that emptiness is reported before format
func (suite *TaskServiceTestSuite) TestCreate_EmptyAssignee() {
	req := suite.validRequest()
	req.AssigneeID = ""
	req.Priority = "9"

	_, err := suite.taskService.Create(adminContext(), req)

	suite.True(apperrors.IsEmptyValue(err))
	suite.Contains(err.Error(), "assignee_id")
}

// TestCreate_InvalidPriority tests priority outside 1-3
func (suite *TaskServiceTestSuite) TestCreate_InvalidPriority() {
	req := suite.validRequest()
	req.Priority = "4"

	_, err := suite.taskService.Create(adminContext(), req)

	suite.True(apperrors.IsInvalidInput(err))
}

// TestCreate_FeatureNotFound tests that a missing feature stops creation
func (suite *TaskServiceTestSuite) TestCreate_FeatureNotFound() {
	suite.mockFeatureRepo.EXPECT().GetByID(suite.feature.ID).Return(nil, apperrors.ErrFeatureNotFound)

	_, err := suite.taskService.Create(adminContext(), suite.validRequest())

	suite.ErrorIs(err, apperrors.ErrFeatureNotFound)
}

// TestCreate_AssigneeNotFound tests that a missing assignee stops creation
func (suite *TaskServiceTestSuite) TestCreate_AssigneeNotFound() {
	suite.mockFeatureRepo.EXPECT().GetByID(suite.feature.ID).Return(suite.feature, nil)
	suite.mockUserRepo.EXPECT().GetByID(suite.assignee.ID).Return(nil, apperrors.ErrUserNotFound)

	_, err := suite.taskService.Create(adminContext(), suite.validRequest())

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestGetAllByAssignee tests listing the tasks of a user
func (suite *TaskServiceTestSuite) TestGetAllByAssignee() {
	suite.mockUserRepo.EXPECT().GetByID(suite.assignee.ID).Return(suite.assignee, nil)
	suite.mockRepo.EXPECT().GetByAssigneeID(suite.assignee.ID).Return([]models.Task{{Name: "a", Assignee: suite.assignee}}, nil)

	resp, err := suite.taskService.GetAllByAssignee(context.Background(), suite.assignee.ID.String())

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.Equal("John Smith", resp[0].AssigneeName)
}

// TestGetAll_StorageFailure tests that list failures are wrapped
func (suite *TaskServiceTestSuite) TestGetAll_StorageFailure() {
	suite.mockRepo.EXPECT().GetAll().Return(nil, apperrors.NewStorageError("while getting tasks", errors.New("timeout")))

	_, err := suite.taskService.GetAll(context.Background())

	suite.True(apperrors.IsStorage(err))
	suite.Contains(err.Error(), "failed to get tasks")
}

// TestUpdate_LeaderMayEdit tests that leaders edit tasks of other users
func (suite *TaskServiceTestSuite) TestUpdate_LeaderMayEdit() {
	task := &models.Task{BaseModel: models.BaseModel{ID: uuid.New()}, AssigneeID: suite.assignee.ID}
	suite.mockRepo.EXPECT().GetByID(task.ID).Return(task, nil)
	suite.expectRefs()
	suite.mockRepo.EXPECT().Update(task).Return(nil)

	_, err := suite.taskService.Update(sessionContext(uuid.New(), models.RoleTierLeader), task.ID.String(), suite.validRequest())

	suite.NoError(err)
}

// TestDelete tests deleting a task as its assignee
func (suite *TaskServiceTestSuite) TestDelete() {
	task := &models.Task{BaseModel: models.BaseModel{ID: uuid.New()}, AssigneeID: suite.assignee.ID}
	suite.mockRepo.EXPECT().GetByID(task.ID).Return(task, nil)
	suite.mockRepo.EXPECT().Delete(task.ID).Return(nil)

	suite.NoError(suite.taskService.Delete(sessionContext(suite.assignee.ID, models.RoleTierUser), task.ID.String()))
}

// TestUpdate_RejectsBadInputBeforeRepository tests that update validation runs before any lookup
func (suite *TaskServiceTestSuite) TestUpdate_RejectsBadInputBeforeRepository() {
	testCases := []struct {
		name   string
		modify func(*service.TaskRequest)
		check  func(error) bool
	}{
		{name: "empty name", modify: func(r *service.TaskRequest) { r.Name = "" }, check: apperrors.IsEmptyValue},
		{name: "empty feature", modify: func(r *service.TaskRequest) { r.FeatureID = "" }, check: apperrors.IsEmptyValue},
		{name: "empty description", modify: func(r *service.TaskRequest) { r.Description = "" }, check: apperrors.IsEmptyValue},
		{name: "priority above scale", modify: func(r *service.TaskRequest) { r.Priority = "4" }, check: apperrors.IsInvalidInput},
		{name: "priority not a number", modify: func(r *service.TaskRequest) { r.Priority = "abc" }, check: apperrors.IsInvalidInput},
		{name: "malformed assignee id", modify: func(r *service.TaskRequest) { r.AssigneeID = "not-a-uuid" }, check: apperrors.IsInvalidInput},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := suite.validRequest()
			tc.modify(req)

			_, err := suite.taskService.Update(adminContext(), uuid.NewString(), req)

			suite.True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

// TestUpdate_AssigneeMayNotHandOverToOthers tests that reassigning is checked like creating for others
func (suite *TaskServiceTestSuite) TestUpdate_AssigneeMayNotHandOverToOthers() {
	other := newUser("Max", "Other")
	task := &models.Task{BaseModel: models.BaseModel{ID: uuid.New()}, AssigneeID: suite.assignee.ID}
	suite.mockRepo.EXPECT().GetByID(task.ID).Return(task, nil)
	suite.mockFeatureRepo.EXPECT().GetByID(suite.feature.ID).Return(suite.feature, nil)
	suite.mockUserRepo.EXPECT().GetByID(other.ID).Return(other, nil)
	suite.mockStatusRepo.EXPECT().GetByID(2).Return(lookup(2, "in progress"), nil)
	suite.mockTypeRepo.EXPECT().GetByID(2).Return(lookup(2, "bug fix"), nil)

	req := suite.validRequest()
	req.AssigneeID = other.ID.String()
	_, err := suite.taskService.Update(sessionContext(suite.assignee.ID, models.RoleTierUser), task.ID.String(), req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestTaskServiceTestSuite runs the test suite
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
