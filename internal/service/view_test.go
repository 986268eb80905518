package service_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/jobs"
	"papermark-backend/internal/mocks"
	"papermark-backend/internal/repository"
	"papermark-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ViewServiceTestSuite defines the test suite for ViewService
type ViewServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockViews      *mocks.MockViewRepositoryInterface
	mockViewers    *mocks.MockViewerRepositoryInterface
	mockLinks      *mocks.MockLinkRepositoryInterface
	mockDocuments  *mocks.MockDocumentRepositoryInterface
	mockDatarooms  *mocks.MockDataroomRepositoryInterface
	mockVerifier   *mocks.MockVerificationServiceInterface
	mockStorage    *mocks.MockStorage
	mockPDF        *mocks.MockProcessor
	mockDispatcher *mocks.MockEventDispatcher
	mockQueue      *mocks.MockQueue
	viewService    *service.ViewService

	teamID     uuid.UUID
	linkID     uuid.UUID
	documentID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ViewServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockViews = mocks.NewMockViewRepositoryInterface(suite.ctrl)
	suite.mockViewers = mocks.NewMockViewerRepositoryInterface(suite.ctrl)
	suite.mockLinks = mocks.NewMockLinkRepositoryInterface(suite.ctrl)
	suite.mockDocuments = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.mockDatarooms = mocks.NewMockDataroomRepositoryInterface(suite.ctrl)
	suite.mockVerifier = mocks.NewMockVerificationServiceInterface(suite.ctrl)
	suite.mockStorage = mocks.NewMockStorage(suite.ctrl)
	suite.mockPDF = mocks.NewMockProcessor(suite.ctrl)
	suite.mockDispatcher = mocks.NewMockEventDispatcher(suite.ctrl)
	suite.mockQueue = mocks.NewMockQueue(suite.ctrl)

	suite.viewService = service.NewViewService(service.ViewDependencies{
		Views:      suite.mockViews,
		Viewers:    suite.mockViewers,
		Links:      suite.mockLinks,
		Documents:  suite.mockDocuments,
		Datarooms:  suite.mockDatarooms,
		Verifier:   suite.mockVerifier,
		Storage:    suite.mockStorage,
		PDF:        suite.mockPDF,
		Dispatcher: suite.mockDispatcher,
		Queue:      suite.mockQueue,
	}, 15*time.Minute, validator.New())

	suite.teamID = uuid.New()
	suite.linkID = uuid.New()
	suite.documentID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ViewServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ViewServiceTestSuite) documentLink() *models.Link {
	return &models.Link{
		BaseModel:          models.BaseModel{ID: suite.linkID},
		TeamID:             suite.teamID,
		Name:               "Investors",
		LinkType:           models.LinkTypeDocument,
		DocumentID:         &suite.documentID,
		EmailProtected:     true,
		EnableNotification: true,
	}
}

func (suite *ViewServiceTestSuite) document() *models.Document {
	return &models.Document{
		BaseModel:   models.BaseModel{ID: suite.documentID},
		TeamID:      suite.teamID,
		Name:        "Pitch deck",
		File:        "teams/acme/deck.pdf",
		Type:        models.DocumentTypePDF,
		ContentType: "application/pdf",
		NumPages:    10,
	}
}

// TestRecordView tests recording a visit to a link
func (suite *ViewServiceTestSuite) TestRecordView() {
	ctx := context.Background()

	suite.T().Run("Document view notifies the owner", func(t *testing.T) {
		viewID := uuid.New()
		viewerID := uuid.New()
		suite.mockLinks.EXPECT().GetByID(suite.linkID).Return(suite.documentLink(), nil)
		suite.mockDocuments.EXPECT().GetByIDAnyTeam(suite.documentID).Return(suite.document(), nil)
		suite.mockViewers.EXPECT().Upsert(suite.teamID, "jane@acme.com", false, gomock.Nil()).
			Return(&models.Viewer{BaseModel: models.BaseModel{ID: viewerID}}, nil)
		suite.mockViews.EXPECT().Create(gomock.Any()).DoAndReturn(func(view *models.View) error {
			assert.Equal(t, models.ViewTypeDocument, view.ViewType)
			assert.Equal(t, &viewerID, view.ViewerID)
			assert.Equal(t, "Mozilla/5.0", view.UserAgent)
			view.ID = viewID
			return nil
		})
		suite.mockStorage.EXPECT().PresignGet(ctx, "teams/acme/deck.pdf", 15*time.Minute).Return("https://s3.test/deck.pdf", nil)
		suite.mockDispatcher.EXPECT().Dispatch(ctx, suite.teamID, models.EventLinkViewed, gomock.Any())
		suite.mockQueue.EXPECT().Enqueue(jobs.JobTypeViewNotification, viewID.String()).Return(nil)

		resp, err := suite.viewService.RecordView(ctx, suite.linkID, &service.RecordViewRequest{
			Email:     " Jane@Acme.com ",
			UserAgent: "Mozilla/5.0",
		})
		require.NoError(t, err)
		assert.Equal(t, viewID, resp.ViewID)
		assert.Equal(t, "https://s3.test/deck.pdf", resp.URL)
		assert.Equal(t, 10, resp.NumPages)
		assert.False(t, resp.Verified)
	})

	suite.T().Run("Email gate rejects anonymous visitors", func(t *testing.T) {
		suite.mockLinks.EXPECT().GetByID(suite.linkID).Return(suite.documentLink(), nil)

		_, err := suite.viewService.RecordView(ctx, suite.linkID, &service.RecordViewRequest{})
		assert.ErrorIs(t, err, apperrors.ErrEmailRequired)
	})

	suite.T().Run("Verified link consumes the code", func(t *testing.T) {
		link := suite.documentLink()
		link.EmailAuthenticated = true
		link.EnableNotification = false
		suite.mockLinks.EXPECT().GetByID(suite.linkID).Return(link, nil)
		suite.mockVerifier.EXPECT().VerifyOTP(suite.linkID, "jane@acme.com", "123456").Return(nil)
		suite.mockDocuments.EXPECT().GetByIDAnyTeam(suite.documentID).Return(suite.document(), nil)
		suite.mockViewers.EXPECT().Upsert(suite.teamID, "jane@acme.com", true, gomock.Nil()).
			Return(&models.Viewer{BaseModel: models.BaseModel{ID: uuid.New()}}, nil)
		suite.mockViews.EXPECT().Create(gomock.Any()).Return(nil)
		suite.mockStorage.EXPECT().PresignGet(ctx, gomock.Any(), gomock.Any()).Return("https://s3.test/deck.pdf", nil)
		suite.mockDispatcher.EXPECT().Dispatch(ctx, suite.teamID, models.EventLinkViewed, gomock.Any())

		resp, err := suite.viewService.RecordView(ctx, suite.linkID, &service.RecordViewRequest{Email: "jane@acme.com", Code: "123456"})
		require.NoError(t, err)
		assert.True(t, resp.Verified)
	})

	suite.T().Run("Wrong code", func(t *testing.T) {
		link := suite.documentLink()
		link.EmailAuthenticated = true
		suite.mockLinks.EXPECT().GetByID(suite.linkID).Return(link, nil)
		suite.mockVerifier.EXPECT().VerifyOTP(suite.linkID, "jane@acme.com", "999999").Return(apperrors.ErrInvalidCode)

		_, err := suite.viewService.RecordView(ctx, suite.linkID, &service.RecordViewRequest{Email: "jane@acme.com", Code: "999999"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCode)
	})

	suite.T().Run("Dataroom view without document", func(t *testing.T) {
		dataroomID := uuid.New()
		link := &models.Link{
			BaseModel:  models.BaseModel{ID: suite.linkID},
			TeamID:     suite.teamID,
			LinkType:   models.LinkTypeDataroom,
			DataroomID: &dataroomID,
		}
		suite.mockLinks.EXPECT().GetByID(suite.linkID).Return(link, nil)
		suite.mockViews.EXPECT().Create(gomock.Any()).DoAndReturn(func(view *models.View) error {
			assert.Equal(t, models.ViewTypeDataroom, view.ViewType)
			assert.Nil(t, view.DocumentID)
			assert.Nil(t, view.ViewerID)
			return nil
		})
		suite.mockDispatcher.EXPECT().Dispatch(ctx, suite.teamID, models.EventLinkViewed, gomock.Any())

		resp, err := suite.viewService.RecordView(ctx, suite.linkID, &service.RecordViewRequest{})
		require.NoError(t, err)
		assert.Equal(t, &dataroomID, resp.DataroomID)
		assert.Empty(t, resp.URL)
	})

	suite.T().Run("Dataroom document outside the dataroom", func(t *testing.T) {
		dataroomID := uuid.New()
		link := &models.Link{
			BaseModel:  models.BaseModel{ID: suite.linkID},
			TeamID:     suite.teamID,
			LinkType:   models.LinkTypeDataroom,
			DataroomID: &dataroomID,
		}
		suite.mockLinks.EXPECT().GetByID(suite.linkID).Return(link, nil)
		suite.mockDatarooms.EXPECT().GetDocumentByDocumentID(dataroomID, suite.documentID).Return(nil, gorm.ErrRecordNotFound)

		_, err := suite.viewService.RecordView(ctx, suite.linkID, &service.RecordViewRequest{DocumentID: &suite.documentID})
		assert.ErrorIs(t, err, apperrors.ErrDataroomDocumentNotFound)
	})
}

// TestRecordPageView tests page duration tracking
func (suite *ViewServiceTestSuite) TestRecordPageView() {
	viewID := uuid.New()

	suite.T().Run("Clamps duration and defaults version", func(t *testing.T) {
		suite.mockViews.EXPECT().GetByID(viewID).Return(&models.View{BaseModel: models.BaseModel{ID: viewID}, DocumentID: &suite.documentID}, nil)
		suite.mockViews.EXPECT().CreatePageView(gomock.Any()).DoAndReturn(func(pv *models.PageView) error {
			assert.Equal(t, time.Hour.Milliseconds(), pv.DurationMs)
			assert.Equal(t, 1, pv.VersionNumber)
			assert.Equal(t, 3, pv.PageNumber)
			return nil
		})

		err := suite.viewService.RecordPageView(viewID, &service.RecordPageViewRequest{PageNumber: 3, DurationMs: 10 * time.Hour.Milliseconds()})
		assert.NoError(t, err)
	})

	suite.T().Run("Dataroom view without document", func(t *testing.T) {
		suite.mockViews.EXPECT().GetByID(viewID).Return(&models.View{BaseModel: models.BaseModel{ID: viewID}}, nil)

		err := suite.viewService.RecordPageView(viewID, &service.RecordPageViewRequest{PageNumber: 1})
		assert.True(t, apperrors.IsValidation(err))
	})

	suite.T().Run("Page number required", func(t *testing.T) {
		err := suite.viewService.RecordPageView(viewID, &service.RecordPageViewRequest{})
		assert.Error(t, err)
	})
}

// TestDownload tests downloads through a view
func (suite *ViewServiceTestSuite) TestDownload() {
	ctx := context.Background()
	viewID := uuid.New()
	view := func() *models.View {
		return &models.View{
			BaseModel:   models.BaseModel{ID: viewID},
			LinkID:      suite.linkID,
			DocumentID:  &suite.documentID,
			ViewerEmail: "jane@acme.com",
			IPAddress:   "10.0.0.1",
		}
	}

	suite.T().Run("Presigned download", func(t *testing.T) {
		link := suite.documentLink()
		link.AllowDownload = true
		suite.mockViews.EXPECT().GetByID(viewID).Return(view(), nil)
		suite.mockLinks.EXPECT().GetByID(suite.linkID).Return(link, nil)
		suite.mockDocuments.EXPECT().GetByIDAnyTeam(suite.documentID).Return(suite.document(), nil)
		suite.mockViews.EXPECT().MarkDownloaded(viewID, gomock.Any()).Return(nil)
		suite.mockStorage.EXPECT().PresignGet(ctx, "teams/acme/deck.pdf", 15*time.Minute).Return("https://s3.test/deck.pdf", nil)

		result, err := suite.viewService.Download(ctx, viewID, &service.DownloadRequest{})
		require.NoError(t, err)
		assert.Equal(t, "https://s3.test/deck.pdf", result.URL)
		assert.Equal(t, "Pitch deck.pdf", result.Filename)
		assert.Nil(t, result.Content)
	})

	suite.T().Run("Watermarked download", func(t *testing.T) {
		link := suite.documentLink()
		link.AllowDownload = true
		link.EnableWatermark = true
		link.WatermarkText = "{{email}} from {{ipAddress}}"
		suite.mockViews.EXPECT().GetByID(viewID).Return(view(), nil)
		suite.mockLinks.EXPECT().GetByID(suite.linkID).Return(link, nil)
		suite.mockDocuments.EXPECT().GetByIDAnyTeam(suite.documentID).Return(suite.document(), nil)
		suite.mockViews.EXPECT().MarkDownloaded(viewID, gomock.Any()).Return(nil)
		suite.mockStorage.EXPECT().Download(ctx, "teams/acme/deck.pdf").Return(io.NopCloser(strings.NewReader("%PDF-1.7")), nil)
		suite.mockPDF.EXPECT().Watermark(gomock.Any(), gomock.Any(), "jane@acme.com from 192.168.1.9").
			DoAndReturn(func(_ io.ReadSeeker, w io.Writer, _ string) error {
				_, err := w.Write([]byte("%PDF-stamped"))
				return err
			})

		result, err := suite.viewService.Download(ctx, viewID, &service.DownloadRequest{IPAddress: "192.168.1.9"})
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-stamped"), result.Content)
		assert.Equal(t, "application/pdf", result.ContentType)
		assert.Empty(t, result.URL)
	})

	suite.T().Run("Downloads disabled", func(t *testing.T) {
		suite.mockViews.EXPECT().GetByID(viewID).Return(view(), nil)
		suite.mockLinks.EXPECT().GetByID(suite.linkID).Return(suite.documentLink(), nil)

		_, err := suite.viewService.Download(ctx, viewID, nil)
		assert.ErrorIs(t, err, apperrors.ErrDownloadNotAllowed)
	})

	suite.T().Run("Link archived since the view", func(t *testing.T) {
		link := suite.documentLink()
		link.AllowDownload = true
		link.IsArchived = true
		suite.mockViews.EXPECT().GetByID(viewID).Return(view(), nil)
		suite.mockLinks.EXPECT().GetByID(suite.linkID).Return(link, nil)

		_, err := suite.viewService.Download(ctx, viewID, nil)
		assert.ErrorIs(t, err, apperrors.ErrLinkArchived)
	})
}

// TestAnalytics tests the team-facing analytics
func (suite *ViewServiceTestSuite) TestAnalytics() {
	suite.T().Run("Document views with completion rate", func(t *testing.T) {
		first, second := uuid.New(), uuid.New()
		suite.mockDocuments.EXPECT().GetByID(suite.teamID, suite.documentID).Return(suite.document(), nil)
		suite.mockViews.EXPECT().ListByDocument(suite.teamID, suite.documentID, 20, 0).Return([]models.View{
			{BaseModel: models.BaseModel{ID: first}, DocumentID: &suite.documentID, ViewedAt: time.Now()},
			{BaseModel: models.BaseModel{ID: second}, DocumentID: &suite.documentID, ViewedAt: time.Now()},
		}, int64(2), nil)
		suite.mockViews.EXPECT().AggregateByViews([]uuid.UUID{first, second}).Return(map[uuid.UUID]repository.ViewAggregate{
			first:  {ViewID: first, TotalDurationMs: 42000, PagesViewed: 5},
			second: {ViewID: second, TotalDurationMs: 1000, PagesViewed: 12},
		}, nil)

		resp, err := suite.viewService.ListDocumentViews(suite.teamID, suite.documentID, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.Total)
		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 20, resp.PageSize)
		assert.InDelta(t, 0.5, resp.Views[0].CompletionRate, 0.0001)
		assert.Equal(t, 1.0, resp.Views[1].CompletionRate)
		assert.Equal(t, int64(42000), resp.Views[0].TotalDurationMs)
	})

	suite.T().Run("Document stats", func(t *testing.T) {
		suite.mockDocuments.EXPECT().GetByID(suite.teamID, suite.documentID).Return(suite.document(), nil)
		suite.mockViews.EXPECT().DocumentTotals(suite.documentID).Return(&repository.DocumentViewTotals{
			TotalViews: 4, UniqueViewers: 3, TotalDownloads: 1, TotalDurationMs: 8000,
		}, nil)
		suite.mockViews.EXPECT().AggregateByPage(suite.documentID).Return([]repository.PageAggregate{
			{PageNumber: 1, AvgDurationMs: 1500, Views: 4},
		}, nil)

		stats, err := suite.viewService.DocumentStats(suite.teamID, suite.documentID)
		require.NoError(t, err)
		assert.Equal(t, 2000.0, stats.AvgDurationMs)
		require.Len(t, stats.Pages, 1)
		assert.Equal(t, int64(4), stats.Pages[0].Views)
	})

	suite.T().Run("Archive view of another team", func(t *testing.T) {
		viewID := uuid.New()
		suite.mockViews.EXPECT().GetByTeam(suite.teamID, viewID).Return(nil, gorm.ErrRecordNotFound)

		err := suite.viewService.ArchiveView(suite.teamID, viewID, true)
		assert.ErrorIs(t, err, apperrors.ErrViewNotFound)
	})
}

func TestViewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ViewServiceTestSuite))
}
