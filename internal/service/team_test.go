package service_test

import (
	"context"
	"fmt"
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

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockTeamRepositoryInterface
	mockUserRepo *mocks.MockUserRepositoryInterface
	teamService  *service.TeamService

	leader *models.User
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockRepo, suite.mockUserRepo, validation.New())
	suite.leader = newUser("Lena", "Lead")
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) request(name string) *service.TeamRequest {
	return &service.TeamRequest{Name: name, Description: "team " + name, LeaderID: suite.leader.ID.String()}
}

func (suite *TeamServiceTestSuite) leaderContext() context.Context {
	return sessionContext(suite.leader.ID, models.RoleTierLeader)
}

// TestCreate_Success tests creating a team led by the session user
func (suite *TeamServiceTestSuite) TestCreate_Success() {
	suite.mockUserRepo.EXPECT().GetByID(suite.leader.ID).Return(suite.leader, nil)
	suite.mockRepo.EXPECT().CreateWithLeader(gomock.Any()).DoAndReturn(func(t *models.Team) error {
		suite.Equal(suite.leader.ID, t.LeaderID)
		t.ID = uuid.New()
		return nil
	})

	resp, err := suite.teamService.Create(suite.leaderContext(), suite.request("Backend"))

	suite.Require().NoError(err)
	suite.Equal("Backend", resp.Name)
	suite.Equal("Lena Lead", resp.LeaderName)
}

// TestCreate_SecondTeamWithSameLeader tests that a leader cannot be put in a second team
func (suite *TeamServiceTestSuite) TestCreate_SecondTeamWithSameLeader() {
	suite.mockUserRepo.EXPECT().GetByID(suite.leader.ID).Return(suite.leader, nil).Times(2)
	gomock.InOrder(
		suite.mockRepo.EXPECT().CreateWithLeader(gomock.Any()).Return(nil),
		suite.mockRepo.EXPECT().CreateWithLeader(gomock.Any()).Return(apperrors.ErrUserAlreadyInTeam),
	)

	_, err := suite.teamService.Create(suite.leaderContext(), suite.request("A"))
	suite.Require().NoError(err)

	_, err = suite.teamService.Create(suite.leaderContext(), suite.request("B"))
	suite.ErrorIs(err, apperrors.ErrUserAlreadyInTeam)
	suite.True(apperrors.IsAlreadyExists(err))
	suite.False(apperrors.IsStorage(err))
}

// TestCreate_LeaderNotFound tests a team with an unknown leader
func (suite *TeamServiceTestSuite) TestCreate_LeaderNotFound() {
	suite.mockUserRepo.EXPECT().GetByID(suite.leader.ID).Return(nil, apperrors.ErrUserNotFound)

	_, err := suite.teamService.Create(suite.leaderContext(), suite.request("A"))

	suite.ErrorIs(err, apperrors.ErrLeaderNotFound)
}

// TestCreate_BaseUserCannotCreate tests the tier needed to create teams
func (suite *TeamServiceTestSuite) TestCreate_BaseUserCannotCreate() {
	suite.mockUserRepo.EXPECT().GetByID(suite.leader.ID).Return(suite.leader, nil)

	_, err := suite.teamService.Create(sessionContext(suite.leader.ID, models.RoleTierUser), suite.request("A"))

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestCreate_LeaderCannotCreateForOthers tests that only admins pick another leader
func (suite *TeamServiceTestSuite) TestCreate_LeaderCannotCreateForOthers() {
	suite.mockUserRepo.EXPECT().GetByID(suite.leader.ID).Return(suite.leader, nil)

	_, err := suite.teamService.Create(sessionContext(uuid.New(), models.RoleTierLeader), suite.request("A"))

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestCreate_EmptyName tests validation before lookups
func (suite *TeamServiceTestSuite) TestCreate_EmptyName() {
	_, err := suite.teamService.Create(adminContext(), suite.request(""))

	suite.True(apperrors.IsEmptyValue(err))
}

// TestAddMember tests adding a user to a team
func (suite *TeamServiceTestSuite) TestAddMember() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, LeaderID: suite.leader.ID}
	member := newUser("Mia", "Member")

	suite.mockRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(member.ID).Return(member, nil)
	suite.mockRepo.EXPECT().AddMember(team.ID, member.ID).Return(nil)

	suite.NoError(suite.teamService.AddMember(suite.leaderContext(), team.ID.String(), member.ID.String()))
}

// TestAddMember_AlreadyInTeam tests that a user can join only one team
func (suite *TeamServiceTestSuite) TestAddMember_AlreadyInTeam() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, LeaderID: suite.leader.ID}
	member := newUser("Mia", "Member")

	suite.mockRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(member.ID).Return(member, nil)
	suite.mockRepo.EXPECT().AddMember(team.ID, member.ID).Return(apperrors.ErrUserAlreadyInTeam)

	err := suite.teamService.AddMember(suite.leaderContext(), team.ID.String(), member.ID.String())

	suite.ErrorIs(err, apperrors.ErrUserAlreadyInTeam)
}

// TestAddMember_Lookups tests that both the team and the user must exist
func (suite *TeamServiceTestSuite) TestAddMember_Lookups() {
	teamID, userID := uuid.New(), uuid.New()

	suite.mockRepo.EXPECT().GetByID(teamID).Return(nil, apperrors.ErrTeamNotFound)
	err := suite.teamService.AddMember(adminContext(), teamID.String(), userID.String())
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)

	suite.mockRepo.EXPECT().GetByID(teamID).Return(&models.Team{BaseModel: models.BaseModel{ID: teamID}}, nil)
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(nil, apperrors.ErrUserNotFound)
	err = suite.teamService.AddMember(adminContext(), teamID.String(), userID.String())
	suite.ErrorIs(err, apperrors.ErrUserNotFound)

	err = suite.teamService.AddMember(adminContext(), teamID.String(), "")
	suite.True(apperrors.IsEmptyValue(err))
}

// TestRemoveMember tests removing a user who is not a member
func (suite *TeamServiceTestSuite) TestRemoveMember() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, LeaderID: suite.leader.ID}
	member := newUser("Mia", "Member")

	suite.mockRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(member.ID).Return(member, nil)
	suite.mockRepo.EXPECT().RemoveMember(team.ID, member.ID).Return(apperrors.ErrMemberNotFound)

	err := suite.teamService.RemoveMember(suite.leaderContext(), team.ID.String(), member.ID.String())

	suite.ErrorIs(err, apperrors.ErrMemberNotFound)
}

// TestUpdate_LeaderMayNotHandOver tests that passing leadership on needs the admin tier
func (suite *TeamServiceTestSuite) TestUpdate_LeaderMayNotHandOver() {
	successor := newUser("Sam", "Successor")
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, LeaderID: suite.leader.ID}
	suite.mockRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(successor.ID).Return(successor, nil)

	req := suite.request("Backend")
	req.LeaderID = successor.ID.String()
	_, err := suite.teamService.Update(suite.leaderContext(), team.ID.String(), req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Equal(suite.leader.ID, team.LeaderID)
}

// TestRemoveMember_LeaderStays tests that the leader can not be removed from their own team
func (suite *TeamServiceTestSuite) TestRemoveMember_LeaderStays() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, LeaderID: suite.leader.ID}

	suite.mockRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(suite.leader.ID).Return(suite.leader, nil)

	err := suite.teamService.RemoveMember(adminContext(), team.ID.String(), suite.leader.ID.String())

	suite.True(apperrors.IsInvalidInput(err), "unexpected error: %v", err)
}

// TestGetMembers tests listing the members of a team
func (suite *TeamServiceTestSuite) TestGetMembers() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, LeaderID: suite.leader.ID}
	suite.mockRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByTeamID(team.ID).Return([]models.User{*suite.leader, *newUser("Mia", "Member")}, nil)

	members, err := suite.teamService.GetMembers(context.Background(), team.ID.String())

	suite.Require().NoError(err)
	suite.Len(members, 2)
	suite.Equal("Lena Lead", members[0].FullName)
}

// TestUpdate_NewLeaderAlreadyInOtherTeam tests that the membership rule holds on update
func (suite *TeamServiceTestSuite) TestUpdate_NewLeaderAlreadyInOtherTeam() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, LeaderID: uuid.New()}
	suite.mockRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockUserRepo.EXPECT().GetByID(suite.leader.ID).Return(suite.leader, nil)
	suite.mockRepo.EXPECT().UpdateWithLeader(team).Return(apperrors.ErrUserAlreadyInTeam)

	_, err := suite.teamService.Update(adminContext(), team.ID.String(), suite.request("Renamed"))

	suite.ErrorIs(err, apperrors.ErrUserAlreadyInTeam)
}

// TestDelete tests that only the leader or an admin deletes a team
func (suite *TeamServiceTestSuite) TestDelete() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, LeaderID: suite.leader.ID}

	suite.mockRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	err := suite.teamService.Delete(sessionContext(uuid.New(), models.RoleTierLeader), team.ID.String())
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.mockRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockRepo.EXPECT().Delete(team.ID).Return(fmt.Errorf("wrapped: %w", apperrors.NewStorageError("while deleting team", nil)))
	err = suite.teamService.Delete(suite.leaderContext(), team.ID.String())
	suite.True(apperrors.IsStorage(err))
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
