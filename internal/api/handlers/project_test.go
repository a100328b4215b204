package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-tracker-backend/internal/api/handlers"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	handler     *handlers.ProjectHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.handler = handlers.NewProjectHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.POST("/projects", suite.handler.CreateProject)
	suite.router.GET("/projects", suite.handler.ListProjects)
	suite.router.GET("/projects/:id", suite.handler.GetProject)
	suite.router.PUT("/projects/:id", suite.handler.UpdateProject)
	suite.router.DELETE("/projects/:id", suite.handler.DeleteProject)
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectHandlerTestSuite) do(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if raw, ok := body.(string); ok {
		reader = bytes.NewBufferString(raw)
	} else if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	suite.T().Run("Invalid JSON", func(t *testing.T) {
		w := suite.do(http.MethodPost, "/projects", "invalid json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	suite.T().Run("Success", func(t *testing.T) {
		req := service.ProjectRequest{OwnerID: uuid.NewString(), Name: "Tracker", Description: "d", Flags: "a;"}
		expected := &service.ProjectResponse{ID: uuid.New(), Name: "Tracker", Flags: []string{"a"}}

		suite.mockService.EXPECT().
			Create(gomock.Any(), &req).
			Return(expected, nil).
			Times(1)

		w := suite.do(http.MethodPost, "/projects", req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response service.ProjectResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, expected.ID, response.ID)
		assert.Equal(t, []string{"a"}, response.Flags)
	})
}

func (suite *ProjectHandlerTestSuite) TestErrorMapping() {
	testCases := []struct {
		name     string
		err      error
		status   int
		contains string
	}{
		{name: "empty value", err: apperrors.NewEmptyValueError("name"), status: http.StatusBadRequest, contains: "name can not be empty"},
		{name: "too short", err: apperrors.NewValueTooShortError("username", 5), status: http.StatusBadRequest, contains: "shorter"},
		{name: "invalid input", err: apperrors.NewInvalidInputError("id", "unvalid formatting of uuid4"), status: http.StatusBadRequest, contains: "id"},
		{name: "not authenticated", err: apperrors.ErrNotAuthenticated, status: http.StatusUnauthorized, contains: "authentication required"},
		{name: "forbidden", err: apperrors.ErrForbidden, status: http.StatusForbidden, contains: "not enough permissions"},
		{name: "not found", err: apperrors.ErrProjectNotFound, status: http.StatusNotFound, contains: "Project not found"},
		{name: "already exists", err: apperrors.ErrUsernameTaken, status: http.StatusConflict, contains: "already"},
		{name: "storage", err: fmt.Errorf("failed to get project: %w", apperrors.NewStorageError("reading project", errors.New("conn reset"))), status: http.StatusServiceUnavailable, contains: "something went wrong"},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, contains: "something went wrong"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			id := uuid.NewString()
			suite.mockService.EXPECT().GetByID(gomock.Any(), id).Return(nil, tc.err)

			w := suite.do(http.MethodGet, "/projects/"+id, nil)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.contains)
			assert.NotContains(t, w.Body.String(), "conn reset")
		})
	}
}

func (suite *ProjectHandlerTestSuite) TestListProjects() {
	suite.T().Run("All", func(t *testing.T) {
		suite.mockService.EXPECT().GetAll(gomock.Any()).Return([]service.ProjectResponse{{Name: "a"}, {Name: "b"}}, nil)

		w := suite.do(http.MethodGet, "/projects", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var response []service.ProjectResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response, 2)
	})

	suite.T().Run("By owner", func(t *testing.T) {
		ownerID := uuid.NewString()
		suite.mockService.EXPECT().GetAllByOwner(gomock.Any(), ownerID).Return([]service.ProjectResponse{}, nil)

		w := suite.do(http.MethodGet, "/projects?owner_id="+ownerID, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	suite.T().Run("Owner not found", func(t *testing.T) {
		ownerID := uuid.NewString()
		suite.mockService.EXPECT().GetAllByOwner(gomock.Any(), ownerID).Return(nil, apperrors.ErrUserNotFound)

		w := suite.do(http.MethodGet, "/projects?owner_id="+ownerID, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject() {
	id := uuid.NewString()
	req := service.ProjectRequest{OwnerID: uuid.NewString(), Name: "Renamed", Description: "d"}

	suite.mockService.EXPECT().
		Update(gomock.Any(), id, &req).
		Return(&service.ProjectResponse{Name: "Renamed"}, nil)

	w := suite.do(http.MethodPut, "/projects/"+id, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Renamed")
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.NewString()
		suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(nil)

		w := suite.do(http.MethodDelete, "/projects/"+id, nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	suite.T().Run("Forbidden", func(t *testing.T) {
		id := uuid.NewString()
		suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrForbidden)

		w := suite.do(http.MethodDelete, "/projects/"+id, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
