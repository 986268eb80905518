package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"papermark-backend/internal/database/models"
	"papermark-backend/internal/email"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/mocks"
	"papermark-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestHubPublishAndUnsubscribe(t *testing.T) {
	hub := service.NewHub(2)
	userID := uuid.New()

	first, unsubscribeFirst := hub.Subscribe(userID)
	second, unsubscribeSecond := hub.Subscribe(userID)
	assert.Equal(t, 2, hub.Subscribers(userID))

	delivered := hub.Publish(userID, service.NotificationResponse{Message: "hello"})
	assert.Equal(t, 2, delivered)
	assert.Equal(t, "hello", (<-first).Message)
	assert.Equal(t, "hello", (<-second).Message)

	assert.Equal(t, 0, hub.Publish(uuid.New(), service.NotificationResponse{}))

	unsubscribeFirst()
	unsubscribeFirst()
	_, open := <-first
	assert.False(t, open)
	assert.Equal(t, 1, hub.Subscribers(userID))

	unsubscribeSecond()
	assert.Equal(t, 0, hub.Subscribers(userID))
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	hub := service.NewHub(1)
	userID := uuid.New()
	ch, unsubscribe := hub.Subscribe(userID)
	defer unsubscribe()

	assert.Equal(t, 1, hub.Publish(userID, service.NotificationResponse{Message: "first"}))
	assert.Equal(t, 0, hub.Publish(userID, service.NotificationResponse{Message: "second"}))
	assert.Equal(t, "first", (<-ch).Message)
}

func TestHubConcurrentPublish(t *testing.T) {
	hub := service.NewHub(100)
	userID := uuid.New()
	ch, unsubscribe := hub.Subscribe(userID)
	defer unsubscribe()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Publish(userID, service.NotificationResponse{Message: "tick"})
		}()
	}
	wg.Wait()
	assert.Len(t, ch, 50)
}

// NotificationServiceTestSuite defines the test suite for NotificationService
type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockNotifications *mocks.MockNotificationRepositoryInterface
	mockViews         *mocks.MockViewRepositoryInterface
	mockLinks         *mocks.MockLinkRepositoryInterface
	mockDocuments     *mocks.MockDocumentRepositoryInterface
	mockDatarooms     *mocks.MockDataroomRepositoryInterface
	mockTeams         *mocks.MockTeamRepositoryInterface
	mockUsers         *mocks.MockUserRepositoryInterface
	mockMailer        *mocks.MockSender
	hub               *service.Hub
	service           *service.NotificationService

	teamID uuid.UUID
	viewID uuid.UUID
	linkID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockNotifications = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.mockViews = mocks.NewMockViewRepositoryInterface(suite.ctrl)
	suite.mockLinks = mocks.NewMockLinkRepositoryInterface(suite.ctrl)
	suite.mockDocuments = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.mockDatarooms = mocks.NewMockDataroomRepositoryInterface(suite.ctrl)
	suite.mockTeams = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockMailer = mocks.NewMockSender(suite.ctrl)
	suite.hub = service.NewHub(4)

	suite.service = service.NewNotificationService(service.NotificationDependencies{
		Notifications: suite.mockNotifications,
		Views:         suite.mockViews,
		Links:         suite.mockLinks,
		Documents:     suite.mockDocuments,
		Datarooms:     suite.mockDatarooms,
		Teams:         suite.mockTeams,
		Users:         suite.mockUsers,
		Mailer:        suite.mockMailer,
		Hub:           suite.hub,
	}, "https://app.papermark.test")

	suite.teamID = uuid.New()
	suite.viewID = uuid.New()
	suite.linkID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *NotificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationServiceTestSuite) expectLink() {
	suite.mockLinks.EXPECT().GetByID(suite.linkID).
		Return(&models.Link{BaseModel: models.BaseModel{ID: suite.linkID}, TeamID: suite.teamID, Name: "Investors"}, nil)
}

// TestNotifyView tests view notifications
func (suite *NotificationServiceTestSuite) TestNotifyView() {
	ctx := context.Background()

	suite.T().Run("Document owner is notified in-app and by email", func(t *testing.T) {
		documentID, ownerID := uuid.New(), uuid.New()
		stream, unsubscribe := suite.hub.Subscribe(ownerID)
		defer unsubscribe()

		suite.mockViews.EXPECT().GetByID(suite.viewID).Return(&models.View{
			BaseModel:   models.BaseModel{ID: suite.viewID},
			LinkID:      suite.linkID,
			ViewType:    models.ViewTypeDocument,
			DocumentID:  &documentID,
			ViewerEmail: "jane@acme.com",
		}, nil)
		suite.expectLink()
		suite.mockDocuments.EXPECT().GetByIDAnyTeam(documentID).
			Return(&models.Document{BaseModel: models.BaseModel{ID: documentID}, Name: "Pitch deck", OwnerID: &ownerID}, nil)
		suite.mockUsers.EXPECT().GetByID(ownerID).
			Return(&models.User{BaseModel: models.BaseModel{ID: ownerID}, Email: "owner@acme.com"}, nil)
		suite.mockNotifications.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
			assert.Equal(t, ownerID, n.UserID)
			assert.Equal(t, models.NotificationTypeDocumentView, n.Type)
			assert.Equal(t, "jane@acme.com viewed Pitch deck", n.Message)
			return nil
		})
		suite.mockMailer.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg *email.Message) error {
			assert.Equal(t, "owner@acme.com", msg.To)
			assert.Contains(t, msg.HTML, "https://app.papermark.test/documents/"+documentID.String())
			return nil
		})

		require.NoError(t, suite.service.NotifyView(ctx, suite.viewID))
		select {
		case n := <-stream:
			assert.Equal(t, "jane@acme.com viewed Pitch deck", n.Message)
		default:
			t.Fatal("expected a live notification")
		}
	})

	suite.T().Run("Dataroom views go to every admin", func(t *testing.T) {
		dataroomID := uuid.New()
		suite.mockViews.EXPECT().GetByID(suite.viewID).Return(&models.View{
			BaseModel:  models.BaseModel{ID: suite.viewID},
			LinkID:     suite.linkID,
			ViewType:   models.ViewTypeDataroom,
			DataroomID: &dataroomID,
		}, nil)
		suite.expectLink()
		suite.mockDatarooms.EXPECT().GetByIDAnyTeam(dataroomID).
			Return(&models.Dataroom{BaseModel: models.BaseModel{ID: dataroomID}, Name: "Series A"}, nil)
		suite.mockTeams.EXPECT().ListAdmins(suite.teamID).Return([]models.User{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "a@acme.com"},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "b@acme.com"},
		}, nil)
		suite.mockNotifications.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *models.Notification) error {
			assert.Equal(t, models.NotificationTypeDataroomView, n.Type)
			assert.Equal(t, "Someone viewed Series A", n.Message)
			return nil
		}).Times(2)
		suite.mockMailer.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("smtp down")).Times(2)

		assert.NoError(t, suite.service.NotifyView(ctx, suite.viewID))
	})

	suite.T().Run("A failed notification does not stop the remaining recipients", func(t *testing.T) {
		dataroomID := uuid.New()
		suite.mockViews.EXPECT().GetByID(suite.viewID).Return(&models.View{
			BaseModel:  models.BaseModel{ID: suite.viewID},
			LinkID:     suite.linkID,
			ViewType:   models.ViewTypeDataroom,
			DataroomID: &dataroomID,
		}, nil)
		suite.expectLink()
		suite.mockDatarooms.EXPECT().GetByIDAnyTeam(dataroomID).
			Return(&models.Dataroom{BaseModel: models.BaseModel{ID: dataroomID}, Name: "Series A"}, nil)
		suite.mockTeams.EXPECT().ListAdmins(suite.teamID).Return([]models.User{
			{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "a@acme.com"},
			{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "b@acme.com"},
		}, nil)
		gomock.InOrder(
			suite.mockNotifications.EXPECT().Create(gomock.Any()).Return(errors.New("db down")),
			suite.mockNotifications.EXPECT().Create(gomock.Any()).Return(nil),
		)
		suite.mockMailer.EXPECT().Send(ctx, gomock.Any()).Return(nil).Times(2)

		assert.NoError(t, suite.service.NotifyView(ctx, suite.viewID))
	})

	suite.T().Run("Missing owner falls back to admins", func(t *testing.T) {
		documentID, ownerID := uuid.New(), uuid.New()
		suite.mockViews.EXPECT().GetByID(suite.viewID).Return(&models.View{
			BaseModel:  models.BaseModel{ID: suite.viewID},
			LinkID:     suite.linkID,
			ViewType:   models.ViewTypeDocument,
			DocumentID: &documentID,
		}, nil)
		suite.expectLink()
		suite.mockDocuments.EXPECT().GetByIDAnyTeam(documentID).
			Return(&models.Document{BaseModel: models.BaseModel{ID: documentID}, Name: "Deck", OwnerID: &ownerID}, nil)
		suite.mockUsers.EXPECT().GetByID(ownerID).Return(nil, gorm.ErrRecordNotFound)
		suite.mockTeams.EXPECT().ListAdmins(suite.teamID).Return([]models.User{}, nil)

		assert.NoError(t, suite.service.NotifyView(ctx, suite.viewID))
	})

	suite.T().Run("Unknown view", func(t *testing.T) {
		suite.mockViews.EXPECT().GetByID(suite.viewID).Return(nil, gorm.ErrRecordNotFound)

		assert.ErrorIs(t, suite.service.NotifyView(ctx, suite.viewID), apperrors.ErrViewNotFound)
	})
}

// TestReadState tests listing and reading notifications
func (suite *NotificationServiceTestSuite) TestReadState() {
	userID := uuid.New()

	suite.T().Run("List unread", func(t *testing.T) {
		suite.mockNotifications.EXPECT().ListForUser(userID, true, 20, 20).
			Return([]models.Notification{{Message: "jane@acme.com viewed Deck"}}, int64(21), nil)

		resp, err := suite.service.List(userID, true, 2, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(21), resp.Total)
		assert.Len(t, resp.Notifications, 1)
	})

	suite.T().Run("Mark read of another user", func(t *testing.T) {
		id := uuid.New()
		suite.mockNotifications.EXPECT().MarkRead(userID, id, gomock.Any()).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, suite.service.MarkRead(userID, id), apperrors.ErrNotificationNotFound)
	})

	suite.T().Run("Mark all read", func(t *testing.T) {
		suite.mockNotifications.EXPECT().MarkAllRead(userID, gomock.Any()).Return(int64(3), nil)

		updated, err := suite.service.MarkAllRead(userID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), updated)
	})
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
