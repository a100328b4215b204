package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"project-tracker-backend/internal/api/handlers"
	"project-tracker-backend/internal/auth"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/service"
	"project-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite covers the user and auth handlers, which share the user service
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	tokens      *auth.TokenIssuer
	http        *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)

	store := auth.NewSessionStore("test-session-secret", 3600, false)
	suite.tokens = auth.NewTokenIssuer(&auth.Config{JWTSecret: "test-jwt-secret", TokenTTL: time.Hour})
	mw := auth.NewMiddleware(store, suite.tokens)

	userHandler := handlers.NewUserHandler(suite.mockService)
	authHandler := handlers.NewAuthHandler(suite.mockService, store, suite.tokens)

	suite.http = testutils.SetupHTTPTest()
	router := suite.http.Router
	router.POST("/auth/login", authHandler.Login)
	router.POST("/auth/logout", authHandler.Logout)
	router.POST("/auth/register", authHandler.Register)

	users := router.Group("/users", mw.RequireSession())
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.ListUsers)
	users.GET("/me", userHandler.GetCurrentUser)
	users.GET("/:id", userHandler.GetUser)
	users.GET("/:id/name", userHandler.GetUserName)
	users.PUT("/:id", userHandler.UpdateUser)
	users.PUT("/:id/image", userHandler.UploadProfileImage)
	users.GET("/:id/image", userHandler.GetProfileImage)
	users.DELETE("/:id", userHandler.DeleteUser)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) bearer(userID uuid.UUID, tier int) map[string]string {
	return testutils.BearerHeaders(suite.T(), suite.tokens, &auth.Session{UserID: userID, RoleTier: tier})
}

func (suite *UserHandlerTestSuite) TestLogin() {
	suite.T().Run("Success sets cookie and returns token", func(t *testing.T) {
		teamID := uuid.New()
		result := &service.LoginResult{UserID: uuid.New(), FullName: "Jane Doe", RoleTier: 2, TeamID: &teamID}
		suite.mockService.EXPECT().Login(gomock.Any(), "jdoe1", "secret").Return(result, nil)

		recorder := suite.http.MakeRequest(http.MethodPost, "/auth/login", handlers.LoginRequest{Username: "jdoe1", Password: "secret"})

		var response handlers.LoginResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, result.UserID, response.UserID)
		assert.Equal(t, 2, response.RoleTier)
		assert.NotEmpty(t, response.CSRFToken)
		assert.Contains(t, recorder.Header().Get("Set-Cookie"), auth.SessionName)

		sess, err := suite.tokens.Validate(response.Token)
		require.NoError(t, err)
		assert.Equal(t, result.UserID, sess.UserID)
		require.NotNil(t, sess.TeamID)
		assert.Equal(t, teamID, *sess.TeamID)
	})

	suite.T().Run("Failure does not disclose the cause", func(t *testing.T) {
		suite.mockService.EXPECT().Login(gomock.Any(), "jdoe1", "wrong").Return(nil, apperrors.ErrLoginFailed)

		recorder := suite.http.MakeRequest(http.MethodPost, "/auth/login", handlers.LoginRequest{Username: "jdoe1", Password: "wrong"})

		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "login failed")
		assert.Empty(t, recorder.Header().Get("Set-Cookie"))
	})
}

func (suite *UserHandlerTestSuite) TestLogoutAndRegister() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/auth/logout", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Header().Get("Set-Cookie"), "Max-Age=0")

	req := service.RegisterRequest{Username: "newbie", Password: "secret", FirstName: "New", LastName: "Bie", Email: "n@b.io"}
	suite.mockService.EXPECT().Register(gomock.Any(), &req).Return(nil, apperrors.ErrUsernameTaken)

	recorder = suite.http.MakeRequest(http.MethodPost, "/auth/register", req)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "username")
}

func (suite *UserHandlerTestSuite) TestRequiresSession() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/users", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

func (suite *UserHandlerTestSuite) TestGetCurrentUser() {
	userID := uuid.New()
	suite.mockService.EXPECT().GetByID(gomock.Any(), userID.String()).Return(&service.UserResponse{ID: userID, Username: "jdoe1"}, nil)

	recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/users/me", nil, suite.bearer(userID, 1))

	var response service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), userID, response.ID)
}

func (suite *UserHandlerTestSuite) TestListUsers() {
	headers := suite.bearer(uuid.New(), 1)

	suite.T().Run("By username", func(t *testing.T) {
		suite.mockService.EXPECT().GetByUsername(gomock.Any(), "jdoe1").Return(&service.UserResponse{Username: "jdoe1"}, nil)

		recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/users?username=jdoe1", nil, headers)

		var response []service.UserResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		require.Len(t, response, 1)
		assert.Equal(t, "jdoe1", response[0].Username)
	})

	suite.T().Run("By team", func(t *testing.T) {
		teamID := uuid.NewString()
		suite.mockService.EXPECT().GetAllByTeam(gomock.Any(), teamID).Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/users?team_id="+teamID, nil, headers)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Team not found")
	})

	suite.T().Run("Full name", func(t *testing.T) {
		id := uuid.NewString()
		suite.mockService.EXPECT().GetFullName(gomock.Any(), id).Return("Jane Doe", nil)

		recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/users/"+id+"/name", nil, headers)

		var response map[string]string
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Jane Doe", response["full_name"])
	})
}

func (suite *UserHandlerTestSuite) TestCreateUpdateDelete() {
	headers := suite.bearer(uuid.New(), 3)
	req := service.UserRequest{Username: "jdoe1", Password: "secret", FirstName: "Jane", LastName: "Doe", Email: "j@d.io", RoleID: 2}

	suite.mockService.EXPECT().Create(gomock.Any(), &req).Return(&service.UserResponse{Username: "jdoe1"}, nil)
	recorder := suite.http.MakeRequestWithHeaders(http.MethodPost, "/users", req, headers)
	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusCreated)

	id := uuid.NewString()
	suite.mockService.EXPECT().Update(gomock.Any(), id, &req).Return(nil, apperrors.NewValueTooShortError("password", 5))
	recorder = suite.http.MakeRequestWithHeaders(http.MethodPut, "/users/"+id, req, headers)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "shorter than 5")

	suite.mockService.EXPECT().Delete(gomock.Any(), id).Return(nil)
	recorder = suite.http.MakeRequestWithHeaders(http.MethodDelete, "/users/"+id, nil, headers)
	testutils.StatusOnly(suite.T(), recorder, http.StatusNoContent)
}

func (suite *UserHandlerTestSuite) upload(id string, contentType string, data []byte, headers map[string]string) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if data != nil {
		partHeader := textproto.MIMEHeader{}
		partHeader.Set("Content-Disposition", `form-data; name="image"; filename="avatar"`)
		partHeader.Set("Content-Type", contentType)
		part, err := writer.CreatePart(partHeader)
		suite.Require().NoError(err)
		_, err = part.Write(data)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/users/"+id+"/image", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	suite.http.Router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *UserHandlerTestSuite) TestProfileImage() {
	userID := uuid.New()
	id := userID.String()
	headers := suite.bearer(userID, 1)

	suite.T().Run("Upload", func(t *testing.T) {
		data := []byte{0x89, 'P', 'N', 'G'}
		suite.mockService.EXPECT().UpdateProfileImage(gomock.Any(), id, "image/png", data).Return(nil)

		recorder := suite.upload(id, "image/png", data, headers)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Missing file", func(t *testing.T) {
		recorder := suite.upload(id, "", nil, headers)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "image can not be empty")
	})

	suite.T().Run("Unsupported type", func(t *testing.T) {
		data := []byte("%PDF")
		suite.mockService.EXPECT().
			UpdateProfileImage(gomock.Any(), id, "application/pdf", data).
			Return(apperrors.NewInvalidInputError("image", "unsupported image type"))

		recorder := suite.upload(id, "application/pdf", data, headers)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "unsupported")
	})

	suite.T().Run("Download", func(t *testing.T) {
		suite.mockService.EXPECT().GetProfileImage(gomock.Any(), id).Return([]byte("GIF89a"), "image/gif", nil)

		recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/users/"+id+"/image", nil, headers)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "image/gif", recorder.Header().Get("Content-Type"))
		assert.Equal(t, "GIF89a", recorder.Body.String())
	})

	suite.T().Run("Download without image", func(t *testing.T) {
		suite.mockService.EXPECT().GetProfileImage(gomock.Any(), id).Return(nil, "", apperrors.ErrImageNotFound)

		recorder := suite.http.MakeRequestWithHeaders(http.MethodGet, "/users/"+id+"/image", nil, headers)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Profile image not found")
	})
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
