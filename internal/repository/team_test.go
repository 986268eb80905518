package repository

import (
	"testing"
	"time"

	"papermark-backend/internal/database/models"
	"papermark-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TeamRepositoryTestSuite) createTeamWithOwner() (*models.Team, *models.User) {
	owner := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(owner))
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.CreateWithOwner(team, owner.ID))
	return team, owner
}

// TestCreateWithOwner tests that the creator becomes the first admin
func (suite *TeamRepositoryTestSuite) TestCreateWithOwner() {
	team, owner := suite.createTeamWithOwner()

	suite.NotEqual(uuid.Nil, team.ID)
	membership, err := suite.repo.GetMembership(team.ID, owner.ID)
	suite.NoError(err)
	suite.Equal(models.RoleAdmin, membership.Role)
	suite.Equal(models.MemberStatusActive, membership.Status)

	admins, err := suite.repo.CountAdmins(team.ID)
	suite.NoError(err)
	suite.Equal(int64(1), admins)
}

// TestListForUser tests that only teams of the user are returned
func (suite *TeamRepositoryTestSuite) TestListForUser() {
	team, owner := suite.createTeamWithOwner()
	suite.createTeamWithOwner()

	teams, err := suite.repo.ListForUser(owner.ID)
	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(team.ID, teams[0].ID)
}

// TestMembers tests adding, updating and removing members
func (suite *TeamRepositoryTestSuite) TestMembers() {
	team, _ := suite.createTeamWithOwner()
	member := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(member))

	suite.NoError(suite.repo.AddMember(&models.UserTeam{
		UserID: member.ID, TeamID: team.ID, Role: models.RoleMember, Status: models.MemberStatusActive,
	}))

	count, err := suite.repo.CountMembers(team.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	members, err := suite.repo.ListMembers(team.ID)
	suite.NoError(err)
	suite.Len(members, 2)
	suite.NotNil(members[1].User)

	suite.NoError(suite.repo.UpdateMemberRole(team.ID, member.ID, models.RoleAdmin))
	admins, err := suite.repo.ListAdmins(team.ID)
	suite.NoError(err)
	suite.Len(admins, 2)

	suite.NoError(suite.repo.RemoveMember(team.ID, member.ID))
	suite.ErrorIs(suite.repo.RemoveMember(team.ID, member.ID), gorm.ErrRecordNotFound)
}

// TestListSubscriptionsEndingBetween tests the renewal window query
func (suite *TeamRepositoryTestSuite) TestListSubscriptionsEndingBetween() {
	now := time.Now()
	soon := now.Add(3 * 24 * time.Hour)
	later := now.Add(30 * 24 * time.Hour)

	renewing := suite.factories.Team.WithPlan(models.PlanPro)
	renewing.SubscriptionEndsAt = &soon
	other := suite.factories.Team.WithPlan(models.PlanBusiness)
	other.SubscriptionEndsAt = &later

	owner := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(owner))
	suite.Require().NoError(suite.repo.CreateWithOwner(renewing, owner.ID))
	suite.Require().NoError(suite.repo.CreateWithOwner(other, owner.ID))

	teams, err := suite.repo.ListSubscriptionsEndingBetween(now, now.Add(7*24*time.Hour))
	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(renewing.ID, teams[0].ID)
}

// TestDeleteCascades tests that deleting a team removes its content
func (suite *TeamRepositoryTestSuite) TestDeleteCascades() {
	team, owner := suite.createTeamWithOwner()
	doc := suite.factories.Document.Create(team.ID)
	docRepo := NewDocumentRepository(suite.baseTestSuite.DB)
	suite.Require().NoError(docRepo.CreateWithVersion(doc, suite.factories.Document.PrimaryVersion(doc)))

	suite.NoError(suite.repo.Delete(team.ID))

	_, err := suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = suite.repo.GetMembership(team.ID, owner.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = docRepo.GetByID(team.ID, doc.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserUpsert tests that users are matched case-insensitively
func (suite *TeamRepositoryTestSuite) TestUserUpsert() {
	first, err := suite.userRepo.Upsert("Alice@Example.com", "Alice", "")
	suite.NoError(err)
	second, err := suite.userRepo.Upsert("alice@example.com", "Other", "https://img")
	suite.NoError(err)

	suite.Equal(first.ID, second.ID)
	suite.Equal("alice@example.com", second.Email)
	suite.Equal("Alice", second.Name)
	suite.Equal("https://img", second.Image)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
