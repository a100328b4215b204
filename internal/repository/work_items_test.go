//go:build integration
// +build integration

package repository

import (
	"testing"

	"project-tracker-backend/internal/database/models"
	apperrors "project-tracker-backend/internal/errors"
	"project-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// WorkItemRepositoryTestSuite tests projects, features, tasks, comments, lookups and statistics
type WorkItemRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	users         *UserRepository
	projects      *ProjectRepository
	features      *FeatureRepository
	tasks         *TaskRepository
	comments      *CommentRepository
	statuses      *LookupRepository
	statistics    *StatisticsRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *WorkItemRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.users = NewUserRepository(db)
	suite.projects = NewProjectRepository(db)
	suite.features = NewFeatureRepository(db)
	suite.tasks = NewTaskRepository(db)
	suite.comments = NewCommentRepository(db)
	suite.statuses = NewStatusRepository(db)
	suite.statistics = NewStatisticsRepository(db)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkItemRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkItemRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.Require().NoError(suite.baseTestSuite.SeedLookups())
}

// TearDownTest runs after each test
func (suite *WorkItemRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *WorkItemRepositoryTestSuite) createHierarchy() *testutils.Hierarchy {
	h := suite.factories.CreateHierarchy()
	suite.Require().NoError(suite.users.Create(h.Owner))
	suite.Require().NoError(suite.projects.Create(h.Project))
	suite.Require().NoError(suite.features.Create(h.Feature))
	suite.Require().NoError(suite.tasks.Create(h.Task))
	return h
}

// TestDisplayNamesAreResolvedOnRead tests that related names come from joins
func (suite *WorkItemRepositoryTestSuite) TestDisplayNamesAreResolvedOnRead() {
	h := suite.createHierarchy()

	feature, err := suite.features.GetByID(h.Feature.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(feature.Project)
	suite.Equal(h.Project.Name, feature.Project.Name)
	suite.Require().NotNil(feature.Status)
	suite.Equal("not started", feature.Status.Name)

	h.Project.Name = "Renamed"
	suite.Require().NoError(suite.projects.Update(h.Project))

	feature, err = suite.features.GetByID(h.Feature.ID)
	suite.Require().NoError(err)
	suite.Equal("Renamed", feature.Project.Name)
}

// TestFlagsRoundTrip tests that flags keep their order
func (suite *WorkItemRepositoryTestSuite) TestFlagsRoundTrip() {
	h := suite.createHierarchy()

	project, err := suite.projects.GetByID(h.Project.ID)
	suite.Require().NoError(err)
	suite.Equal(models.Flags{"backend", "urgent"}, project.Flags)

	byOwner, err := suite.projects.GetByOwnerID(h.Owner.ID)
	suite.Require().NoError(err)
	suite.Len(byOwner, 1)
}

// TestPriorityCheckConstraint tests the database side priority bounds
func (suite *WorkItemRepositoryTestSuite) TestPriorityCheckConstraint() {
	h := suite.createHierarchy()

	task := suite.factories.Task.WithFeature(h.Feature.ID, h.Owner.ID)
	task.Priority = 4
	suite.True(apperrors.IsStorage(suite.tasks.Create(task)))
}

// TestCommentParentConstraint tests that a comment needs exactly one parent
func (suite *WorkItemRepositoryTestSuite) TestCommentParentConstraint() {
	h := suite.createHierarchy()

	orphan := suite.factories.Comment.Create()
	orphan.AssigneeID = h.Owner.ID
	suite.True(apperrors.IsStorage(suite.comments.Create(orphan)))

	both := suite.factories.Comment.OnFeature(h.Feature.ID, h.Owner.ID, 1)
	both.TaskID = &h.Task.ID
	suite.True(apperrors.IsStorage(suite.comments.Create(both)))
}

// TestTimeSpentStatistics tests the sums, including zero when nothing was recorded
func (suite *WorkItemRepositoryTestSuite) TestTimeSpentStatistics() {
	h := suite.createHierarchy()

	total, err := suite.statistics.TimeSpentByTask(h.Task.ID)
	suite.Require().NoError(err)
	suite.Equal(0.0, total)

	suite.Require().NoError(suite.comments.Create(suite.factories.Comment.OnTask(h.Task.ID, h.Owner.ID, 1.5)))
	suite.Require().NoError(suite.comments.Create(suite.factories.Comment.OnTask(h.Task.ID, h.Owner.ID, 2)))
	suite.Require().NoError(suite.comments.Create(suite.factories.Comment.OnFeature(h.Feature.ID, h.Owner.ID, 0.5)))

	total, err = suite.statistics.TimeSpentByTask(h.Task.ID)
	suite.Require().NoError(err)
	suite.InDelta(3.5, total, 1e-9)

	total, err = suite.statistics.TimeSpentByFeature(h.Feature.ID)
	suite.Require().NoError(err)
	suite.InDelta(0.5, total, 1e-9)

	total, err = suite.statistics.TimeSpentByUser(h.Owner.ID)
	suite.Require().NoError(err)
	suite.InDelta(4.0, total, 1e-9)

	comments, err := suite.comments.GetByTaskID(h.Task.ID)
	suite.Require().NoError(err)
	suite.Len(comments, 2)

	suite.NoError(suite.statistics.Ping())
}

// TestDeletingFeatureCascades tests that tasks and comments go with their feature
func (suite *WorkItemRepositoryTestSuite) TestDeletingFeatureCascades() {
	h := suite.createHierarchy()
	comment := suite.factories.Comment.OnTask(h.Task.ID, h.Owner.ID, 1)
	suite.Require().NoError(suite.comments.Create(comment))

	suite.Require().NoError(suite.features.Delete(h.Feature.ID))

	_, err := suite.tasks.GetByID(h.Task.ID)
	suite.ErrorIs(err, apperrors.ErrTaskNotFound)
	_, err = suite.comments.GetByID(comment.ID)
	suite.ErrorIs(err, apperrors.ErrCommentNotFound)
}

// TestLookups tests the lookup repository and its sequence after seeding
func (suite *WorkItemRepositoryTestSuite) TestLookups() {
	item := &models.LookupModel{Name: "blocked"}
	suite.Require().NoError(suite.statuses.Create(item))
	suite.Greater(item.ID, 3)

	item.Name = "on hold"
	suite.Require().NoError(suite.statuses.Update(item))
	found, err := suite.statuses.GetByID(item.ID)
	suite.Require().NoError(err)
	suite.Equal("on hold", found.Name)

	suite.ErrorIs(suite.statuses.Update(&models.LookupModel{ID: 999, Name: "x"}), apperrors.ErrStatusNotFound)

	h := suite.createHierarchy()
	suite.True(apperrors.IsStorage(suite.statuses.Delete(h.Feature.StatusID)))

	_, err = suite.features.GetByID(uuid.New())
	suite.ErrorIs(err, apperrors.ErrFeatureNotFound)
}

// TestWorkItemRepositoryTestSuite runs the test suite
func TestWorkItemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkItemRepositoryTestSuite))
}
