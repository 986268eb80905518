package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/mocks"
	"papermark-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockInvitationRepo *mocks.MockInvitationRepositoryInterface
	mockNotifier       *mocks.MockNotificationServiceInterface
	mockMailer         *mocks.MockSender
	teamService        *service.TeamService

	teamID uuid.UUID
	userID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockInvitationRepo = mocks.NewMockInvitationRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.mockMailer = mocks.NewMockSender(suite.ctrl)

	suite.teamService = service.NewTeamService(suite.mockTeamRepo, suite.mockUserRepo, suite.mockInvitationRepo,
		suite.mockNotifier, suite.mockMailer, "https://app.example.com", validator.New())

	suite.teamID = uuid.New()
	suite.userID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) expectRole(userID uuid.UUID, role models.Role) {
	suite.mockTeamRepo.EXPECT().GetMembership(suite.teamID, userID).Return(membership(suite.teamID, userID, role), nil)
}

// TestCreateTeam tests team creation on the free plan
func (suite *TeamServiceTestSuite) TestCreateTeam() {
	suite.mockTeamRepo.EXPECT().
		CreateWithOwner(gomock.Any(), suite.userID).
		DoAndReturn(func(t *models.Team, _ uuid.UUID) error {
			t.ID = suite.teamID
			return nil
		})

	resp, err := suite.teamService.CreateTeam(suite.userID, &service.CreateTeamRequest{Name: "Acme"})

	suite.Require().NoError(err)
	suite.Equal(suite.teamID, resp.ID)
	suite.Equal(models.PlanFree, resp.Plan)
	suite.Equal(1, resp.Limits.Users)
	suite.Equal(50, resp.Limits.Documents)
}

// TestCreateTeamValidation tests the validation of the create request
func (suite *TeamServiceTestSuite) TestCreateTeamValidation() {
	_, err := suite.teamService.CreateTeam(suite.userID, &service.CreateTeamRequest{Name: ""})
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

// TestAuthorize tests membership and role checks
func (suite *TeamServiceTestSuite) TestAuthorize() {
	suite.T().Run("Member without role restriction", func(t *testing.T) {
		suite.expectRole(suite.userID, models.RoleMember)
		m, err := suite.teamService.Authorize(suite.teamID, suite.userID)
		assert.NoError(t, err)
		assert.Equal(t, models.RoleMember, m.Role)
	})

	suite.T().Run("Insufficient role", func(t *testing.T) {
		suite.expectRole(suite.userID, models.RoleMember)
		_, err := suite.teamService.Authorize(suite.teamID, suite.userID, models.RoleAdmin)
		assert.Equal(t, apperrors.ErrInsufficientRole, err)
	})

	suite.T().Run("Not a member", func(t *testing.T) {
		suite.mockTeamRepo.EXPECT().GetMembership(suite.teamID, suite.userID).Return(nil, gorm.ErrRecordNotFound)
		_, err := suite.teamService.Authorize(suite.teamID, suite.userID)
		assert.Equal(t, apperrors.ErrNotTeamMember, err)
	})

	suite.T().Run("Inactive member", func(t *testing.T) {
		m := membership(suite.teamID, suite.userID, models.RoleAdmin)
		m.Status = models.MemberStatusBlocked
		suite.mockTeamRepo.EXPECT().GetMembership(suite.teamID, suite.userID).Return(m, nil)
		_, err := suite.teamService.Authorize(suite.teamID, suite.userID)
		assert.Equal(t, apperrors.ErrNotTeamMember, err)
	})
}

// TestDeleteTeam tests that teams with a subscription are kept
func (suite *TeamServiceTestSuite) TestDeleteTeam() {
	suite.T().Run("Active subscription", func(t *testing.T) {
		suite.expectRole(suite.userID, models.RoleAdmin)
		tm := team(suite.teamID, models.PlanPro)
		tm.StripeSubscriptionID = strPtr("sub_123")
		suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(tm, nil)

		err := suite.teamService.DeleteTeam(suite.teamID, suite.userID)
		assert.Equal(t, apperrors.ErrActiveSubscription, err)
	})

	suite.T().Run("Success", func(t *testing.T) {
		suite.expectRole(suite.userID, models.RoleAdmin)
		suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanFree), nil)
		suite.mockTeamRepo.EXPECT().Delete(suite.teamID).Return(nil)

		assert.NoError(t, suite.teamService.DeleteTeam(suite.teamID, suite.userID))
	})

	suite.T().Run("Manager cannot delete", func(t *testing.T) {
		suite.expectRole(suite.userID, models.RoleManager)
		err := suite.teamService.DeleteTeam(suite.teamID, suite.userID)
		assert.Equal(t, apperrors.ErrInsufficientRole, err)
	})
}

// TestChangeMemberRole tests that the last admin cannot be demoted
func (suite *TeamServiceTestSuite) TestChangeMemberRole() {
	memberID := uuid.New()

	suite.T().Run("Last admin", func(t *testing.T) {
		suite.expectRole(suite.userID, models.RoleAdmin)
		suite.mockTeamRepo.EXPECT().GetMembership(suite.teamID, memberID).Return(membership(suite.teamID, memberID, models.RoleAdmin), nil)
		suite.mockTeamRepo.EXPECT().CountAdmins(suite.teamID).Return(int64(1), nil)

		_, err := suite.teamService.ChangeMemberRole(suite.teamID, suite.userID, memberID, &service.ChangeRoleRequest{Role: models.RoleMember})
		assert.Equal(t, apperrors.ErrLastAdmin, err)
	})

	suite.T().Run("Promote member", func(t *testing.T) {
		suite.expectRole(suite.userID, models.RoleAdmin)
		m := membership(suite.teamID, memberID, models.RoleMember)
		m.User = &models.User{Email: "bob@example.com", Name: "Bob"}
		suite.mockTeamRepo.EXPECT().GetMembership(suite.teamID, memberID).Return(m, nil)
		suite.mockTeamRepo.EXPECT().UpdateMemberRole(suite.teamID, memberID, models.RoleManager).Return(nil)

		resp, err := suite.teamService.ChangeMemberRole(suite.teamID, suite.userID, memberID, &service.ChangeRoleRequest{Role: models.RoleManager})
		assert.NoError(t, err)
		assert.Equal(t, models.RoleManager, resp.Role)
		assert.Equal(t, "bob@example.com", resp.Email)
	})

	suite.T().Run("Invalid role", func(t *testing.T) {
		_, err := suite.teamService.ChangeMemberRole(suite.teamID, suite.userID, memberID, &service.ChangeRoleRequest{Role: "OWNER"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

// TestRemoveMember tests leaving and removing members
func (suite *TeamServiceTestSuite) TestRemoveMember() {
	suite.T().Run("Member leaves", func(t *testing.T) {
		suite.expectRole(suite.userID, models.RoleMember)
		suite.expectRole(suite.userID, models.RoleMember)
		suite.mockTeamRepo.EXPECT().RemoveMember(suite.teamID, suite.userID).Return(nil)

		assert.NoError(t, suite.teamService.RemoveMember(suite.teamID, suite.userID, suite.userID))
	})

	suite.T().Run("Member cannot remove others", func(t *testing.T) {
		suite.expectRole(suite.userID, models.RoleMember)
		err := suite.teamService.RemoveMember(suite.teamID, suite.userID, uuid.New())
		assert.Equal(t, apperrors.ErrInsufficientRole, err)
	})

	suite.T().Run("Last admin cannot leave", func(t *testing.T) {
		suite.expectRole(suite.userID, models.RoleAdmin)
		suite.expectRole(suite.userID, models.RoleAdmin)
		suite.mockTeamRepo.EXPECT().CountAdmins(suite.teamID).Return(int64(1), nil)

		err := suite.teamService.RemoveMember(suite.teamID, suite.userID, suite.userID)
		assert.Equal(t, apperrors.ErrLastAdmin, err)
	})
}

// TestInviteMember tests invitations, including the user limit of the plan
func (suite *TeamServiceTestSuite) TestInviteMember() {
	ctx := context.Background()

	suite.T().Run("Success", func(t *testing.T) {
		suite.expectRole(suite.userID, models.RoleAdmin)
		tm := team(suite.teamID, models.PlanPro)
		suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(tm, nil).Times(2)
		suite.mockInvitationRepo.EXPECT().GetByTeamAndEmail(suite.teamID, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
		suite.mockUserRepo.EXPECT().GetByEmail("new@example.com").Return(nil, gorm.ErrRecordNotFound).Times(2)
		suite.mockTeamRepo.EXPECT().CountMembers(suite.teamID).Return(int64(1), nil)
		suite.mockInvitationRepo.EXPECT().CountPending(suite.teamID, gomock.Any()).Return(int64(0), nil)
		suite.mockInvitationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(inv *models.Invitation) error {
			assert.Equal(t, "new@example.com", inv.Email)
			assert.NotEmpty(t, inv.Token)
			assert.WithinDuration(t, time.Now().Add(service.InvitationTTL), inv.ExpiresAt, time.Minute)
			inv.ID = uuid.New()
			return nil
		})
		suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(&models.User{Email: "admin@example.com", Name: "Ada"}, nil)
		suite.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := suite.teamService.InviteMember(ctx, suite.teamID, suite.userID, &service.InviteMemberRequest{Email: " New@Example.com "})
		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", resp.Email)
	})

	suite.T().Run("Free plan user limit", func(t *testing.T) {
		suite.expectRole(suite.userID, models.RoleAdmin)
		suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanFree), nil).Times(2)
		suite.mockInvitationRepo.EXPECT().GetByTeamAndEmail(suite.teamID, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
		suite.mockUserRepo.EXPECT().GetByEmail("new@example.com").Return(nil, gorm.ErrRecordNotFound)
		suite.mockTeamRepo.EXPECT().CountMembers(suite.teamID).Return(int64(1), nil)
		suite.mockInvitationRepo.EXPECT().CountPending(suite.teamID, gomock.Any()).Return(int64(0), nil)

		_, err := suite.teamService.InviteMember(ctx, suite.teamID, suite.userID, &service.InviteMemberRequest{Email: "new@example.com"})
		assert.True(t, apperrors.IsLimitExceeded(err))
	})

	suite.T().Run("Pending invitation", func(t *testing.T) {
		suite.expectRole(suite.userID, models.RoleManager)
		suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanPro), nil)
		suite.mockInvitationRepo.EXPECT().GetByTeamAndEmail(suite.teamID, "new@example.com").
			Return(&models.Invitation{ExpiresAt: time.Now().Add(time.Hour)}, nil)

		_, err := suite.teamService.InviteMember(ctx, suite.teamID, suite.userID, &service.InviteMemberRequest{Email: "new@example.com"})
		assert.Equal(t, apperrors.ErrInvitationExists, err)
	})
}

// TestAcceptInvitation tests accepting invitations
func (suite *TeamServiceTestSuite) TestAcceptInvitation() {
	invitation := &models.Invitation{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    suite.teamID,
		Email:     "bob@example.com",
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockInvitationRepo.EXPECT().GetByToken("tok").Return(invitation, nil)
		suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(&models.User{Email: "Bob@example.com"}, nil)
		suite.mockTeamRepo.EXPECT().GetMembership(suite.teamID, suite.userID).Return(nil, gorm.ErrRecordNotFound)
		suite.mockTeamRepo.EXPECT().AddMember(gomock.Any()).DoAndReturn(func(m *models.UserTeam) error {
			assert.Equal(t, models.RoleMember, m.Role)
			return nil
		})
		suite.mockInvitationRepo.EXPECT().Delete(invitation.ID).Return(nil)
		suite.mockTeamRepo.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanPro), nil)

		resp, err := suite.teamService.AcceptInvitation(suite.userID, &service.AcceptInvitationRequest{Token: "tok"})
		assert.NoError(t, err)
		assert.Equal(t, suite.teamID, resp.ID)
	})

	suite.T().Run("Email mismatch", func(t *testing.T) {
		suite.mockInvitationRepo.EXPECT().GetByToken("tok").Return(invitation, nil)
		suite.mockUserRepo.EXPECT().GetByID(suite.userID).Return(&models.User{Email: "eve@example.com"}, nil)

		_, err := suite.teamService.AcceptInvitation(suite.userID, &service.AcceptInvitationRequest{Token: "tok"})
		assert.Equal(t, apperrors.ErrInvitationEmailMismatch, err)
	})

	suite.T().Run("Expired", func(t *testing.T) {
		expired := *invitation
		expired.ExpiresAt = time.Now().Add(-time.Minute)
		suite.mockInvitationRepo.EXPECT().GetByToken("tok").Return(&expired, nil)

		_, err := suite.teamService.AcceptInvitation(suite.userID, &service.AcceptInvitationRequest{Token: "tok"})
		assert.Equal(t, apperrors.ErrInvitationExpired, err)
	})

	suite.T().Run("Unknown token", func(t *testing.T) {
		suite.mockInvitationRepo.EXPECT().GetByToken("tok").Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.teamService.AcceptInvitation(suite.userID, &service.AcceptInvitationRequest{Token: "tok"})
		assert.Equal(t, apperrors.ErrInvitationNotFound, err)
	})
}

// TestCleanupExpiredInvitations tests the cleanup job
func (suite *TeamServiceTestSuite) TestCleanupExpiredInvitations() {
	suite.mockInvitationRepo.EXPECT().DeleteExpired(gomock.Any()).Return(int64(3), nil)
	removed, err := suite.teamService.CleanupExpiredInvitations()
	suite.NoError(err)
	suite.Equal(int64(3), removed)

	suite.mockInvitationRepo.EXPECT().DeleteExpired(gomock.Any()).Return(int64(0), errors.New("db down"))
	_, err = suite.teamService.CleanupExpiredInvitations()
	suite.Error(err)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
