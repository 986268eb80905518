package service_test

import (
	"context"
	"testing"
	"time"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/mocks"
	"papermark-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LinkServiceTestSuite defines the test suite for LinkService
type LinkServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockLinkRepositoryInterface
	mockDocuments  *mocks.MockDocumentRepositoryInterface
	mockDatarooms  *mocks.MockDataroomRepositoryInterface
	mockViews      *mocks.MockViewRepositoryInterface
	mockTeams      *mocks.MockTeamRepositoryInterface
	mockDispatcher *mocks.MockEventDispatcher
	linkService    *service.LinkService

	teamID     uuid.UUID
	userID     uuid.UUID
	documentID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *LinkServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockLinkRepositoryInterface(suite.ctrl)
	suite.mockDocuments = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.mockDatarooms = mocks.NewMockDataroomRepositoryInterface(suite.ctrl)
	suite.mockViews = mocks.NewMockViewRepositoryInterface(suite.ctrl)
	suite.mockTeams = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockDispatcher = mocks.NewMockEventDispatcher(suite.ctrl)

	suite.linkService = service.NewLinkService(suite.mockRepo, suite.mockDocuments, suite.mockDatarooms,
		suite.mockViews, suite.mockTeams, suite.mockDispatcher, "https://papermark.test/", validator.New())

	suite.teamID = uuid.New()
	suite.userID = uuid.New()
	suite.documentID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *LinkServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LinkServiceTestSuite) document() *models.Document {
	return &models.Document{
		BaseModel: models.BaseModel{ID: suite.documentID},
		TeamID:    suite.teamID,
		Name:      "Pitch deck",
		Type:      models.DocumentTypePDF,
		NumPages:  12,
	}
}

func (suite *LinkServiceTestSuite) expectWithinLimit() {
	suite.mockRepo.EXPECT().Count(suite.teamID).Return(int64(3), nil)
	suite.mockTeams.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanFree), nil)
}

// TestCreate tests link creation
func (suite *LinkServiceTestSuite) TestCreate() {
	ctx := context.Background()

	suite.T().Run("Document link with defaults", func(t *testing.T) {
		suite.mockDocuments.EXPECT().GetByID(suite.teamID, suite.documentID).Return(suite.document(), nil)
		suite.expectWithinLimit()
		suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(link *models.Link) error {
			link.ID = uuid.New()
			return nil
		})
		suite.mockDispatcher.EXPECT().Dispatch(ctx, suite.teamID, models.EventLinkCreated, gomock.Any())

		resp, err := suite.linkService.Create(ctx, suite.teamID, suite.userID, &service.CreateLinkRequest{DocumentID: &suite.documentID})
		require.NoError(t, err)
		assert.Equal(t, models.LinkTypeDocument, resp.LinkType)
		assert.Equal(t, "Pitch deck", resp.Name)
		assert.True(t, resp.EmailProtected)
		assert.True(t, resp.EnableNotification)
		assert.False(t, resp.HasPassword)
		assert.Equal(t, "https://papermark.test/view/"+resp.ID.String(), resp.URL)
		assert.Empty(t, resp.AllowList)
		assert.NotNil(t, resp.AllowList)
	})

	suite.T().Run("Password is hashed and welcome message sanitized", func(t *testing.T) {
		suite.mockDocuments.EXPECT().GetByID(suite.teamID, suite.documentID).Return(suite.document(), nil)
		suite.expectWithinLimit()
		suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(link *models.Link) error {
			assert.NotEqual(t, "hunter2", link.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(link.PasswordHash), []byte("hunter2")))
			assert.NotContains(t, link.WelcomeMessage, "<script>")
			assert.Contains(t, link.WelcomeMessage, "<b>Welcome</b>")
			assert.Equal(t, []string{"ceo@acme.com", "@investor.com"}, link.AllowList)
			return nil
		})
		suite.mockDispatcher.EXPECT().Dispatch(ctx, suite.teamID, models.EventLinkCreated, gomock.Any())

		resp, err := suite.linkService.Create(ctx, suite.teamID, suite.userID, &service.CreateLinkRequest{
			DocumentID:     &suite.documentID,
			Password:       "hunter2",
			WelcomeMessage: `<b>Welcome</b><script>alert(1)</script>`,
			AllowList:      []string{" CEO@acme.com", "@investor.com", "ceo@acme.com"},
		})
		require.NoError(t, err)
		assert.True(t, resp.HasPassword)
	})

	suite.T().Run("Custom domain slug", func(t *testing.T) {
		suite.mockDocuments.EXPECT().GetByID(suite.teamID, suite.documentID).Return(suite.document(), nil)
		suite.mockRepo.EXPECT().SlugTaken("docs.acme.com", "q3-deck", gomock.Nil()).Return(false, nil)
		suite.expectWithinLimit()
		suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
		suite.mockDispatcher.EXPECT().Dispatch(ctx, suite.teamID, models.EventLinkCreated, gomock.Any())

		resp, err := suite.linkService.Create(ctx, suite.teamID, suite.userID, &service.CreateLinkRequest{
			DocumentID: &suite.documentID,
			Domain:     "Docs.Acme.com",
			Slug:       strPtr("Q3-Deck"),
		})
		require.NoError(t, err)
		assert.Equal(t, "https://docs.acme.com/q3-deck", resp.URL)
	})

	suite.T().Run("Slug already taken", func(t *testing.T) {
		suite.mockDocuments.EXPECT().GetByID(suite.teamID, suite.documentID).Return(suite.document(), nil)
		suite.mockRepo.EXPECT().SlugTaken("", "deck", gomock.Nil()).Return(true, nil)

		_, err := suite.linkService.Create(ctx, suite.teamID, suite.userID, &service.CreateLinkRequest{
			DocumentID: &suite.documentID,
			Slug:       strPtr("deck"),
		})
		assert.ErrorIs(t, err, apperrors.ErrSlugExists)
	})

	suite.T().Run("Invalid slug characters", func(t *testing.T) {
		suite.mockDocuments.EXPECT().GetByID(suite.teamID, suite.documentID).Return(suite.document(), nil)

		_, err := suite.linkService.Create(ctx, suite.teamID, suite.userID, &service.CreateLinkRequest{
			DocumentID: &suite.documentID,
			Slug:       strPtr("my deck!"),
		})
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Requires exactly one target", func(t *testing.T) {
		dataroomID := uuid.New()

		_, err := suite.linkService.Create(ctx, suite.teamID, suite.userID, &service.CreateLinkRequest{})
		assert.ErrorIs(t, err, apperrors.ErrLinkTargetInvalid)

		_, err = suite.linkService.Create(ctx, suite.teamID, suite.userID, &service.CreateLinkRequest{
			DocumentID: &suite.documentID,
			DataroomID: &dataroomID,
		})
		assert.ErrorIs(t, err, apperrors.ErrLinkTargetInvalid)
	})

	suite.T().Run("Dataroom target", func(t *testing.T) {
		dataroomID := uuid.New()
		suite.mockDatarooms.EXPECT().GetByID(suite.teamID, dataroomID).
			Return(&models.Dataroom{BaseModel: models.BaseModel{ID: dataroomID}, TeamID: suite.teamID, Name: "Series A"}, nil)
		suite.expectWithinLimit()
		suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)
		suite.mockDispatcher.EXPECT().Dispatch(ctx, suite.teamID, models.EventLinkCreated, gomock.Any())

		resp, err := suite.linkService.Create(ctx, suite.teamID, suite.userID, &service.CreateLinkRequest{DataroomID: &dataroomID})
		require.NoError(t, err)
		assert.Equal(t, models.LinkTypeDataroom, resp.LinkType)
		assert.Equal(t, "Series A", resp.Name)
	})

	suite.T().Run("Document of another team", func(t *testing.T) {
		suite.mockDocuments.EXPECT().GetByID(suite.teamID, suite.documentID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.linkService.Create(ctx, suite.teamID, suite.userID, &service.CreateLinkRequest{DocumentID: &suite.documentID})
		assert.ErrorIs(t, err, apperrors.ErrDocumentNotFound)
	})

	suite.T().Run("Link limit reached", func(t *testing.T) {
		suite.mockDocuments.EXPECT().GetByID(suite.teamID, suite.documentID).Return(suite.document(), nil)
		suite.mockRepo.EXPECT().Count(suite.teamID).Return(int64(50), nil)
		suite.mockTeams.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanFree), nil)

		_, err := suite.linkService.Create(ctx, suite.teamID, suite.userID, &service.CreateLinkRequest{DocumentID: &suite.documentID})
		assert.True(t, apperrors.IsLimitExceeded(err))
	})
}

// TestUpdate tests partial link updates
func (suite *LinkServiceTestSuite) TestUpdate() {
	linkID := uuid.New()
	existing := func() *models.Link {
		return &models.Link{
			BaseModel:      models.BaseModel{ID: linkID},
			TeamID:         suite.teamID,
			LinkType:       models.LinkTypeDocument,
			DocumentID:     &suite.documentID,
			Name:           "Deck",
			PasswordHash:   "$2a$10$existing",
			EmailProtected: true,
			ExpiresAt:      timePtr(time.Now().Add(time.Hour)),
		}
	}

	suite.T().Run("Removes password and expiry", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByTeam(suite.teamID, linkID).Return(existing(), nil)
		suite.mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(link *models.Link) error {
			assert.Empty(t, link.PasswordHash)
			assert.Nil(t, link.ExpiresAt)
			assert.Equal(t, "Deck v2", link.Name)
			assert.True(t, link.EmailProtected)
			return nil
		})
		suite.mockViews.EXPECT().CountByLinks([]uuid.UUID{linkID}).Return(map[uuid.UUID]int64{linkID: 4}, nil)

		resp, err := suite.linkService.Update(suite.teamID, linkID, &service.UpdateLinkRequest{
			Name:        strPtr(" Deck v2 "),
			Password:    strPtr(""),
			ClearExpiry: true,
		})
		require.NoError(t, err)
		assert.False(t, resp.HasPassword)
		assert.Equal(t, int64(4), resp.ViewCount)
	})

	suite.T().Run("Slug check excludes the link itself", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByTeam(suite.teamID, linkID).Return(existing(), nil)
		suite.mockRepo.EXPECT().SlugTaken("", "deck", &linkID).Return(false, nil)
		suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)
		suite.mockViews.EXPECT().CountByLinks([]uuid.UUID{linkID}).Return(map[uuid.UUID]int64{}, nil)

		resp, err := suite.linkService.Update(suite.teamID, linkID, &service.UpdateLinkRequest{Slug: strPtr("deck")})
		require.NoError(t, err)
		require.NotNil(t, resp.Slug)
		assert.Equal(t, "deck", *resp.Slug)
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByTeam(suite.teamID, linkID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.linkService.Update(suite.teamID, linkID, &service.UpdateLinkRequest{})
		assert.ErrorIs(t, err, apperrors.ErrLinkNotFound)
	})
}

// TestArchiveAndDelete tests archiving and deleting links
func (suite *LinkServiceTestSuite) TestArchiveAndDelete() {
	linkID := uuid.New()
	link := func() *models.Link {
		return &models.Link{BaseModel: models.BaseModel{ID: linkID}, TeamID: suite.teamID, DocumentID: &suite.documentID}
	}

	suite.T().Run("Archive", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByTeam(suite.teamID, linkID).Return(link(), nil)
		suite.mockRepo.EXPECT().SetArchived(linkID, true).Return(nil)
		suite.mockViews.EXPECT().CountByLinks([]uuid.UUID{linkID}).Return(map[uuid.UUID]int64{linkID: 2}, nil)

		resp, err := suite.linkService.Archive(suite.teamID, linkID, true)
		require.NoError(t, err)
		assert.True(t, resp.IsArchived)
		assert.Equal(t, int64(2), resp.ViewCount)
	})

	suite.T().Run("Get reports the same count as listings", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByTeam(suite.teamID, linkID).Return(link(), nil)
		suite.mockViews.EXPECT().CountByLinks([]uuid.UUID{linkID}).Return(map[uuid.UUID]int64{linkID: 3}, nil)

		resp, err := suite.linkService.Get(suite.teamID, linkID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.ViewCount)
	})

	suite.T().Run("Delete of viewed link archives it", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByTeam(suite.teamID, linkID).Return(link(), nil)
		suite.mockViews.EXPECT().CountByLink(linkID).Return(int64(1), nil)
		suite.mockRepo.EXPECT().SetArchived(linkID, true).Return(nil)

		assert.NoError(t, suite.linkService.Delete(suite.teamID, linkID))
	})

	suite.T().Run("Delete of unviewed link removes it", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByTeam(suite.teamID, linkID).Return(link(), nil)
		suite.mockViews.EXPECT().CountByLink(linkID).Return(int64(0), nil)
		suite.mockRepo.EXPECT().Delete(linkID).Return(nil)

		assert.NoError(t, suite.linkService.Delete(suite.teamID, linkID))
	})
}

// TestListByDocument tests listing links with view counts
func (suite *LinkServiceTestSuite) TestListByDocument() {
	first, second := uuid.New(), uuid.New()
	suite.mockDocuments.EXPECT().GetByID(suite.teamID, suite.documentID).Return(suite.document(), nil)
	suite.mockRepo.EXPECT().ListByDocument(suite.teamID, suite.documentID, false).Return([]models.Link{
		{BaseModel: models.BaseModel{ID: first}, TeamID: suite.teamID},
		{BaseModel: models.BaseModel{ID: second}, TeamID: suite.teamID},
	}, nil)
	suite.mockViews.EXPECT().CountByLinks([]uuid.UUID{first, second}).Return(map[uuid.UUID]int64{first: 7}, nil)

	links, err := suite.linkService.ListByDocument(suite.teamID, suite.documentID, false)
	suite.Require().NoError(err)
	suite.Require().Len(links, 2)
	suite.Equal(int64(7), links[0].ViewCount)
	suite.Equal(int64(0), links[1].ViewCount)
}

// TestGetPublic tests the visitor-facing link lookup
func (suite *LinkServiceTestSuite) TestGetPublic() {
	linkID := uuid.New()

	suite.T().Run("Active document link", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(linkID).Return(&models.Link{
			BaseModel:          models.BaseModel{ID: linkID},
			LinkType:           models.LinkTypeDocument,
			DocumentID:         &suite.documentID,
			PasswordHash:       "hash",
			EmailAuthenticated: true,
		}, nil)
		suite.mockDocuments.EXPECT().GetByIDAnyTeam(suite.documentID).Return(suite.document(), nil)

		resp, err := suite.linkService.GetPublic(linkID)
		require.NoError(t, err)
		assert.True(t, resp.RequiresPassword)
		assert.True(t, resp.RequiresEmail)
		assert.True(t, resp.RequiresVerification)
		require.NotNil(t, resp.Document)
		assert.Equal(t, 12, resp.Document.NumPages)
		assert.Nil(t, resp.Dataroom)
	})

	suite.T().Run("Archived link", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(linkID).Return(&models.Link{BaseModel: models.BaseModel{ID: linkID}, IsArchived: true}, nil)

		_, err := suite.linkService.GetPublic(linkID)
		assert.ErrorIs(t, err, apperrors.ErrLinkArchived)
	})

	suite.T().Run("Expired link", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByID(linkID).Return(&models.Link{
			BaseModel: models.BaseModel{ID: linkID},
			ExpiresAt: timePtr(time.Now().Add(-time.Minute)),
		}, nil)

		_, err := suite.linkService.GetPublic(linkID)
		assert.ErrorIs(t, err, apperrors.ErrLinkExpired)
	})

	suite.T().Run("By domain and slug", func(t *testing.T) {
		suite.mockRepo.EXPECT().GetByDomainSlug("docs.acme.com", "deck").Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.linkService.GetPublicBySlug("Docs.Acme.com", "Deck")
		assert.ErrorIs(t, err, apperrors.ErrLinkNotFound)
	})
}

func TestLinkServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LinkServiceTestSuite))
}
