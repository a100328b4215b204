package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"project-tracker-backend/internal/auth"
	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/mocks"
	"project-tracker-backend/internal/service"
	"project-tracker-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// countingHasher records how often passwords are compared
type countingHasher struct {
	*auth.BcryptHasher
	compares int
}

func (h *countingHasher) Compare(hash, password string) bool {
	h.compares++
	return h.BcryptHasher.Compare(hash, password)
}

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockUserRepositoryInterface
	mockRoleRepo *mocks.MockLookupRepositoryInterface
	mockTeamRepo *mocks.MockTeamRepositoryInterface
	hasher       *auth.BcryptHasher
	userService  *service.UserService
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRoleRepo = mocks.NewMockLookupRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.hasher = &auth.BcryptHasher{Cost: bcrypt.MinCost}
	suite.userService = service.NewUserService(suite.mockRepo, suite.mockRoleRepo, suite.mockTeamRepo, suite.hasher, validation.New())
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validUserRequest() *service.UserRequest {
	return &service.UserRequest{
		Username:  "JDoe1",
		Password:  "secret1",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@mail.com",
		RoleID:    models.RoleTierLeader,
	}
}

// TestCreate_Success tests that admins create users with a lower-cased username and a hashed password
func (suite *UserServiceTestSuite) TestCreate_Success() {
	suite.mockRoleRepo.EXPECT().GetByID(models.RoleTierLeader).Return(lookup(2, "leader"), nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		suite.Equal("jdoe1", u.Username)
		suite.NotEqual("secret1", u.PasswordHash)
		suite.True(suite.hasher.Compare(u.PasswordHash, "secret1"))
		return nil
	})

	resp, err := suite.userService.Create(adminContext(), validUserRequest())

	suite.Require().NoError(err)
	suite.Equal("jdoe1", resp.Username)
	suite.Equal("John Doe", resp.FullName)
	suite.Equal("leader", resp.RoleName)
}

// TestCreate_Validation tests the field rules
func (suite *UserServiceTestSuite) TestCreate_Validation() {
	testCases := []struct {
		name   string
		modify func(r *service.UserRequest)
		check  func(err error) bool
	}{
		{name: "empty username", modify: func(r *service.UserRequest) { r.Username = "" }, check: apperrors.IsEmptyValue},
		{name: "short username", modify: func(r *service.UserRequest) { r.Username = "abcd" }, check: apperrors.IsValueTooShort},
		{name: "empty password", modify: func(r *service.UserRequest) { r.Password = "" }, check: apperrors.IsEmptyValue},
		{name: "short password", modify: func(r *service.UserRequest) { r.Password = "1234" }, check: apperrors.IsValueTooShort},
		{name: "empty first name", modify: func(r *service.UserRequest) { r.FirstName = "" }, check: apperrors.IsEmptyValue},
		{name: "empty last name", modify: func(r *service.UserRequest) { r.LastName = "" }, check: apperrors.IsEmptyValue},
		{name: "long last name", modify: func(r *service.UserRequest) { r.LastName = strings.Repeat("x", 101) }, check: apperrors.IsInvalidInput},
		{name: "bad email", modify: func(r *service.UserRequest) { r.Email = "not-an-email" }, check: apperrors.IsInvalidInput},
		{name: "missing role", modify: func(r *service.UserRequest) { r.RoleID = 0 }, check: apperrors.IsEmptyValue},
		{name: "role above admin", modify: func(r *service.UserRequest) { r.RoleID = 4 }, check: apperrors.IsInvalidInput},
		{name: "negative role", modify: func(r *service.UserRequest) { r.RoleID = -1 }, check: apperrors.IsInvalidInput},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := validUserRequest()
			tc.modify(req)
			_, err := suite.userService.Create(adminContext(), req)
			assert.Error(t, err)
			assert.True(t, tc.check(err), err.Error())
		})
	}
}

// TestCreate_RoleNotFound tests that the role must exist
func (suite *UserServiceTestSuite) TestCreate_RoleNotFound() {
	suite.mockRoleRepo.EXPECT().GetByID(models.RoleTierLeader).Return(nil, apperrors.ErrRoleNotFound)

	_, err := suite.userService.Create(adminContext(), validUserRequest())

	suite.ErrorIs(err, apperrors.ErrRoleNotFound)
}

// TestCreate_NeedsAdmin tests that leaders cannot create users
func (suite *UserServiceTestSuite) TestCreate_NeedsAdmin() {
	suite.mockRoleRepo.EXPECT().GetByID(models.RoleTierLeader).Return(lookup(2, "leader"), nil)

	_, err := suite.userService.Create(sessionContext(uuid.New(), models.RoleTierLeader), validUserRequest())

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestCreate_UsernameTaken tests the duplicate username signal
func (suite *UserServiceTestSuite) TestCreate_UsernameTaken() {
	suite.mockRoleRepo.EXPECT().GetByID(models.RoleTierLeader).Return(lookup(2, "leader"), nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(apperrors.ErrUsernameTaken)

	_, err := suite.userService.Create(adminContext(), validUserRequest())

	suite.ErrorIs(err, apperrors.ErrUsernameTaken)
}

// TestRegister tests that self registration always gets the base role
func (suite *UserServiceTestSuite) TestRegister() {
	suite.mockRoleRepo.EXPECT().GetByID(models.RoleTierUser).Return(lookup(1, "user"), nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		suite.Equal(models.RoleTierUser, u.RoleID)
		return nil
	})

	resp, err := suite.userService.Register(context.Background(), &service.RegisterRequest{
		Username:  "newbie",
		Password:  "secret1",
		FirstName: "New",
		LastName:  "Bie",
		Email:     "new@mail.com",
	})

	suite.Require().NoError(err)
	suite.Equal(models.RoleTierUser, resp.RoleID)
}

// TestRegister_LongPassword tests that passwords past the bcrypt input limit register and log in
func (suite *UserServiceTestSuite) TestRegister_LongPassword() {
	password := strings.Repeat("p", 80)
	var stored *models.User
	suite.mockRoleRepo.EXPECT().GetByID(models.RoleTierUser).Return(lookup(1, "user"), nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		stored = u
		return nil
	})

	_, err := suite.userService.Register(context.Background(), &service.RegisterRequest{
		Username:  "longpass",
		Password:  password,
		FirstName: "Long",
		LastName:  "Pass",
		Email:     "long@mail.com",
	})
	suite.Require().NoError(err)

	suite.mockRepo.EXPECT().GetByUsername("longpass").Return(stored, nil).Times(2)
	_, err = suite.userService.Login(context.Background(), "longpass", password)
	suite.NoError(err)
	_, err = suite.userService.Login(context.Background(), "longpass", strings.Repeat("p", 72)+"qqqqqqqq")
	suite.Equal(apperrors.ErrLoginFailed, err)
}

// TestLogin_Success tests a matching password
func (suite *UserServiceTestSuite) TestLogin_Success() {
	hash, err := suite.hasher.Hash("secret1")
	suite.Require().NoError(err)
	teamID := uuid.New()
	user := newUser("John", "Doe")
	user.PasswordHash = hash
	user.RoleID = models.RoleTierLeader
	user.TeamID = &teamID

	suite.mockRepo.EXPECT().GetByUsername("jdoe1").Return(user, nil)

	result, err := suite.userService.Login(context.Background(), "JDoe1", "secret1")

	suite.Require().NoError(err)
	suite.Equal(user.ID, result.UserID)
	suite.Equal("John Doe", result.FullName)
	suite.Equal(models.RoleTierLeader, result.RoleTier)
	suite.Equal(&teamID, result.TeamID)
}

// TestLogin_NonDisclosure tests that unknown users and wrong passwords look the same
func (suite *UserServiceTestSuite) TestLogin_NonDisclosure() {
	hash, err := suite.hasher.Hash("right_password")
	suite.Require().NoError(err)
	user := newUser("Real", "User")
	user.PasswordHash = hash

	suite.mockRepo.EXPECT().GetByUsername("ghost_user").Return(nil, apperrors.ErrUserNotFound)
	suite.mockRepo.EXPECT().GetByUsername("real_user").Return(user, nil)

	_, unknownErr := suite.userService.Login(context.Background(), "ghost_user", "anything")
	_, wrongErr := suite.userService.Login(context.Background(), "real_user", "wrong_password")

	suite.Equal(apperrors.ErrLoginFailed, unknownErr)
	suite.Equal(apperrors.ErrLoginFailed, wrongErr)
	suite.Equal(unknownErr.Error(), wrongErr.Error())
}

// TestLogin_UnknownUserStillComparesPassword tests that both failed login paths do one comparison
func (suite *UserServiceTestSuite) TestLogin_UnknownUserStillComparesPassword() {
	hasher := &countingHasher{BcryptHasher: suite.hasher}
	userService := service.NewUserService(suite.mockRepo, suite.mockRoleRepo, suite.mockTeamRepo, hasher, validation.New())
	hash, err := suite.hasher.Hash("right_password")
	suite.Require().NoError(err)
	user := newUser("Real", "User")
	user.PasswordHash = hash

	suite.mockRepo.EXPECT().GetByUsername("ghost_user").Return(nil, apperrors.ErrUserNotFound).Times(2)
	suite.mockRepo.EXPECT().GetByUsername("real_user").Return(user, nil)

	_, err = userService.Login(context.Background(), "ghost_user", "anything")
	suite.Equal(apperrors.ErrLoginFailed, err)
	suite.Equal(1, hasher.compares)

	_, err = userService.Login(context.Background(), "real_user", "wrong_password")
	suite.Equal(apperrors.ErrLoginFailed, err)
	suite.Equal(2, hasher.compares)

	_, err = userService.Login(context.Background(), "ghost_user", "right_password")
	suite.Equal(apperrors.ErrLoginFailed, err)
	suite.Equal(3, hasher.compares)
}

// TestLogin_StorageFailure tests that outages are not reported as bad credentials
func (suite *UserServiceTestSuite) TestLogin_StorageFailure() {
	suite.mockRepo.EXPECT().GetByUsername("someone").Return(nil, apperrors.NewStorageError("while getting user by username", errors.New("down")))

	_, err := suite.userService.Login(context.Background(), "someone", "secret1")

	suite.True(apperrors.IsStorage(err))
}

// TestUpdate_SelfWithoutRoleChange tests that users may edit themselves
func (suite *UserServiceTestSuite) TestUpdate_SelfWithoutRoleChange() {
	user := newUser("John", "Doe")
	user.RoleID = models.RoleTierLeader
	suite.mockRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockRoleRepo.EXPECT().GetByID(models.RoleTierLeader).Return(lookup(2, "leader"), nil)
	suite.mockRepo.EXPECT().Update(user).Return(nil)

	resp, err := suite.userService.Update(sessionContext(user.ID, models.RoleTierLeader), user.ID.String(), validUserRequest())

	suite.Require().NoError(err)
	suite.Equal("jdoe1", resp.Username)
}

// TestUpdate_SelfPromotion tests that changing your own role needs the admin tier
func (suite *UserServiceTestSuite) TestUpdate_SelfPromotion() {
	user := newUser("John", "Doe")
	suite.mockRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockRoleRepo.EXPECT().GetByID(models.RoleTierLeader).Return(lookup(2, "leader"), nil)

	_, err := suite.userService.Update(sessionContext(user.ID, models.RoleTierUser), user.ID.String(), validUserRequest())

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestUpdateProfileImage tests the accepted image types and sizes
func (suite *UserServiceTestSuite) TestUpdateProfileImage() {
	user := newUser("John", "Doe")
	ctx := sessionContext(user.ID, models.RoleTierUser)

	err := suite.userService.UpdateProfileImage(ctx, user.ID.String(), "image/png", nil)
	suite.True(apperrors.IsEmptyValue(err))

	err = suite.userService.UpdateProfileImage(ctx, user.ID.String(), "image/bmp", []byte{1})
	suite.True(apperrors.IsInvalidInput(err))

	err = suite.userService.UpdateProfileImage(ctx, user.ID.String(), "image/png", make([]byte, service.MaxProfileImageSize))
	suite.True(apperrors.IsInvalidInput(err))

	suite.mockRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockRepo.EXPECT().UpdateProfileImage(user.ID, "image/png", []byte{1, 2, 3}).Return(nil)
	suite.NoError(suite.userService.UpdateProfileImage(ctx, user.ID.String(), "image/png", []byte{1, 2, 3}))
}

// TestGetProfileImage_Missing tests reading an image that was never uploaded
func (suite *UserServiceTestSuite) TestGetProfileImage_Missing() {
	user := newUser("John", "Doe")
	suite.mockRepo.EXPECT().GetByID(user.ID).Return(user, nil)

	_, _, err := suite.userService.GetProfileImage(context.Background(), user.ID.String())

	suite.ErrorIs(err, apperrors.ErrImageNotFound)
}

// TestGetAllByTeam_TeamNotFound tests listing members of a missing team
func (suite *UserServiceTestSuite) TestGetAllByTeam_TeamNotFound() {
	teamID := uuid.New()
	suite.mockTeamRepo.EXPECT().GetByID(teamID).Return(nil, apperrors.ErrTeamNotFound)

	_, err := suite.userService.GetAllByTeam(context.Background(), teamID.String())

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestGetFullName tests the display name of a user
func (suite *UserServiceTestSuite) TestGetFullName() {
	user := newUser("John", "Doe")
	suite.mockRepo.EXPECT().GetByID(user.ID).Return(user, nil)

	name, err := suite.userService.GetFullName(context.Background(), user.ID.String())

	suite.NoError(err)
	suite.Equal("John Doe", name)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
