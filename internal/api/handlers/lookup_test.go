package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"project-tracker-backend/internal/api/handlers"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/service"
	"project-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LookupHandlerTestSuite covers the lookup, statistics and health handlers
type LookupHandlerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	lookups    *mocks.MockLookupServiceInterface
	statistics *mocks.MockStatisticsServiceInterface
	http       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *LookupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.lookups = mocks.NewMockLookupServiceInterface(suite.ctrl)
	suite.statistics = mocks.NewMockStatisticsServiceInterface(suite.ctrl)

	lookupHandler := handlers.NewLookupHandler(suite.lookups)
	statisticsHandler := handlers.NewStatisticsHandler(suite.statistics)
	healthHandler := handlers.NewHealthHandler(suite.statistics)

	suite.http = testutils.SetupHTTPTest()
	router := suite.http.Router
	router.POST("/statuses", lookupHandler.Create)
	router.GET("/statuses", lookupHandler.List)
	router.GET("/statuses/:id", lookupHandler.Get)
	router.PUT("/statuses/:id", lookupHandler.Update)
	router.DELETE("/statuses/:id", lookupHandler.Delete)

	router.GET("/statistics/tasks/:id", statisticsHandler.TaskTimeSpent)
	router.GET("/statistics/features/:id", statisticsHandler.FeatureTimeSpent)
	router.GET("/statistics/users/:id", statisticsHandler.UserTimeSpent)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
}

// TearDownTest cleans up after each test
func (suite *LookupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LookupHandlerTestSuite) TestLookups() {
	suite.T().Run("Create", func(t *testing.T) {
		req := service.LookupRequest{Name: "Blocked"}
		suite.lookups.EXPECT().Create(gomock.Any(), &req).Return(&service.LookupResponse{ID: 4, Name: "Blocked"}, nil)

		recorder := suite.http.MakeRequest(http.MethodPost, "/statuses", req)

		var response service.LookupResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, 4, response.ID)
	})

	suite.T().Run("Create needs admin", func(t *testing.T) {
		req := service.LookupRequest{Name: "Blocked"}
		suite.lookups.EXPECT().Create(gomock.Any(), &req).Return(nil, apperrors.ErrForbidden)

		recorder := suite.http.MakeRequest(http.MethodPost, "/statuses", req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("Non numeric id", func(t *testing.T) {
		suite.lookups.EXPECT().GetByID(gomock.Any(), "abc").Return(nil, apperrors.NewInvalidInputError("id", "not a number"))

		recorder := suite.http.MakeRequest(http.MethodGet, "/statuses/abc", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("List", func(t *testing.T) {
		suite.lookups.EXPECT().GetAll(gomock.Any()).Return([]service.LookupResponse{{ID: 1, Name: "Open"}}, nil)

		recorder := suite.http.MakeRequest(http.MethodGet, "/statuses", nil)

		assert.JSONEq(t, `[{"id":1,"name":"Open"}]`, recorder.Body.String())
	})

	suite.T().Run("Update and delete", func(t *testing.T) {
		req := service.LookupRequest{Name: "Closed"}
		suite.lookups.EXPECT().Update(gomock.Any(), "2", &req).Return(&service.LookupResponse{ID: 2, Name: "Closed"}, nil)
		suite.lookups.EXPECT().Delete(gomock.Any(), "2").Return(apperrors.ErrStatusNotFound)

		assert.Equal(t, http.StatusOK, suite.http.MakeRequest(http.MethodPut, "/statuses/2", req).Code)
		assert.Equal(t, http.StatusNotFound, suite.http.MakeRequest(http.MethodDelete, "/statuses/2", nil).Code)
	})
}

func (suite *LookupHandlerTestSuite) TestStatistics() {
	id := uuid.New()

	suite.statistics.EXPECT().TimeSpentByTask(gomock.Any(), id.String()).Return(&service.TimeSpentResponse{ID: id, TimeSpent: 2.5}, nil)
	suite.statistics.EXPECT().TimeSpentByFeature(gomock.Any(), id.String()).Return(nil, apperrors.ErrFeatureNotFound)
	suite.statistics.EXPECT().TimeSpentByUser(gomock.Any(), id.String()).Return(&service.TimeSpentResponse{ID: id}, nil)

	var response service.TimeSpentResponse
	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/statistics/tasks/"+id.String(), nil), http.StatusOK, &response)
	assert.Equal(suite.T(), 2.5, response.TimeSpent)

	assert.Equal(suite.T(), http.StatusNotFound, suite.http.MakeRequest(http.MethodGet, "/statistics/features/"+id.String(), nil).Code)

	testutils.AssertJSONResponse(suite.T(), suite.http.MakeRequest(http.MethodGet, "/statistics/users/"+id.String(), nil), http.StatusOK, &response)
	assert.Equal(suite.T(), 0.0, response.TimeSpent)
}

func (suite *LookupHandlerTestSuite) TestHealth() {
	suite.T().Run("Healthy", func(t *testing.T) {
		suite.statistics.EXPECT().Ping(gomock.Any()).Return(nil)

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, suite.http.MakeRequest(http.MethodGet, "/health", nil), http.StatusOK, &response)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "healthy", response.Services["database"])
	})

	suite.T().Run("Database down", func(t *testing.T) {
		suite.statistics.EXPECT().Ping(gomock.Any()).Return(errors.New("database unavailable"))

		recorder := suite.http.MakeRequest(http.MethodGet, "/health/ready", nil)

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"ready":false`)
		assert.NotContains(t, recorder.Body.String(), "database unavailable")
	})

	suite.T().Run("Live", func(t *testing.T) {
		recorder := suite.http.MakeRequest(http.MethodGet, "/health/live", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"alive":true`)
	})
}

func TestLookupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LookupHandlerTestSuite))
}
