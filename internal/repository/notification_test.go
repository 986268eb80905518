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

// NotificationRepositoryTestSuite tests the NotificationRepository
type NotificationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NotificationRepository
	teamID        uuid.UUID
	userID        uuid.UUID
}

func (suite *NotificationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewNotificationRepository(suite.baseTestSuite.DB)
}

func (suite *NotificationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *NotificationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.teamID = uuid.New()
	suite.userID = uuid.New()
}

func (suite *NotificationRepositoryTestSuite) notify(userID uuid.UUID, message string) *models.Notification {
	notification := &models.Notification{
		TeamID:  suite.teamID,
		UserID:  userID,
		Type:    models.NotificationTypeDocumentView,
		Message: message,
	}
	suite.Require().NoError(suite.repo.Create(notification))
	return notification
}

// TestReadLifecycle tests listing, marking one and marking all as read
func (suite *NotificationRepositoryTestSuite) TestReadLifecycle() {
	first := suite.notify(suite.userID, "first")
	suite.notify(suite.userID, "second")
	suite.notify(suite.userID, "third")
	suite.notify(uuid.New(), "someone else")

	all, total, err := suite.repo.ListForUser(suite.userID, false, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(all, 3)

	suite.Require().NoError(suite.repo.MarkRead(suite.userID, first.ID, time.Now()))

	unread, total, err := suite.repo.ListForUser(suite.userID, true, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	for _, n := range unread {
		suite.NotEqual(first.ID, n.ID)
	}

	updated, err := suite.repo.MarkAllRead(suite.userID, time.Now())
	suite.NoError(err)
	suite.Equal(int64(2), updated)

	_, total, err = suite.repo.ListForUser(suite.userID, true, 10, 0)
	suite.NoError(err)
	suite.Zero(total)
}

// TestMarkReadOtherUser tests that a user cannot mark someone else's notification
func (suite *NotificationRepositoryTestSuite) TestMarkReadOtherUser() {
	notification := suite.notify(uuid.New(), "not yours")

	err := suite.repo.MarkRead(suite.userID, notification.ID, time.Now())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestPagination tests limit and offset
func (suite *NotificationRepositoryTestSuite) TestPagination() {
	for i := 0; i < 5; i++ {
		suite.notify(suite.userID, "n")
	}

	page, total, err := suite.repo.ListForUser(suite.userID, false, 2, 4)
	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(page, 1)
}

func TestNotificationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryTestSuite))
}
