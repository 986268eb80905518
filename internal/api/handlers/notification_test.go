package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"papermark-backend/internal/api/handlers"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/mocks"
	"papermark-backend/internal/service"
	"papermark-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// closeNotifyingRecorder lets gin's Stream run against a recorder
type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool {
	return r.closed
}

// NotificationHandlerTestSuite defines the test suite for NotificationHandler
type NotificationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNotificationServiceInterface
	handler     *handlers.NotificationHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *NotificationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewNotificationHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()

	notifications := suite.httpSuite.Router.Group("/api/v1/notifications", authenticateAs(suite.userID))
	{
		notifications.GET("", suite.handler.List)
		notifications.GET("/stream", suite.handler.Stream)
		notifications.POST("/read-all", suite.handler.MarkAllRead)
		notifications.POST("/:id/read", suite.handler.MarkRead)
	}
}

// TearDownTest cleans up after each test
func (suite *NotificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestList tests the List handler
func (suite *NotificationHandlerTestSuite) TestList() {
	suite.T().Run("Unread page", func(t *testing.T) {
		suite.mockService.EXPECT().List(suite.userID, true, 2, 10).
			Return(&service.NotificationListResponse{Total: 11, Page: 2, PageSize: 10}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/notifications?unread=true&page=2&page_size=10", nil)

		var response service.NotificationListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(11), response.Total)
	})

	suite.T().Run("Defaults", func(t *testing.T) {
		suite.mockService.EXPECT().List(suite.userID, false, 1, 20).Return(&service.NotificationListResponse{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/notifications?page_size=500", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestMarkRead tests the read handlers
func (suite *NotificationHandlerTestSuite) TestMarkRead() {
	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().MarkRead(suite.userID, id).Return(apperrors.ErrNotificationNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/notifications/"+id.String()+"/read", nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("Mark all", func(t *testing.T) {
		suite.mockService.EXPECT().MarkAllRead(suite.userID).Return(int64(4), nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/notifications/read-all", nil)

		var response handlers.MarkAllReadResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(4), response.Updated)
	})
}

// TestStream tests server-sent notifications
func (suite *NotificationHandlerTestSuite) TestStream() {
	events := make(chan service.NotificationResponse, 1)
	events <- service.NotificationResponse{Message: "jane@acme.com viewed Pitch deck"}
	close(events)

	unsubscribed := false
	suite.mockService.EXPECT().Subscribe(suite.userID).
		Return((<-chan service.NotificationResponse)(events), func() { unsubscribed = true })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications/stream", nil)
	recorder := &closeNotifyingRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("text/event-stream", recorder.Header().Get("Content-Type"))
	suite.Contains(recorder.Body.String(), "event:notification")
	suite.Contains(recorder.Body.String(), "jane@acme.com viewed Pitch deck")
	suite.True(unsubscribed)
}

func TestNotificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}
