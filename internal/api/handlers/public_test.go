package handlers_test

import (
	"context"
	"fmt"
	"net/http"
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

// PublicHandlerTestSuite defines the test suite for PublicHandler
type PublicHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockLinks        *mocks.MockLinkServiceInterface
	mockVerification *mocks.MockVerificationServiceInterface
	mockViews        *mocks.MockViewServiceInterface
	handler          *handlers.PublicHandler
	httpSuite        *testutils.HTTPTestSuite
	linkID           uuid.UUID
}

// SetupTest sets up the test suite
func (suite *PublicHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockLinks = mocks.NewMockLinkServiceInterface(suite.ctrl)
	suite.mockVerification = mocks.NewMockVerificationServiceInterface(suite.ctrl)
	suite.mockViews = mocks.NewMockViewServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPublicHandler(suite.mockLinks, suite.mockVerification, suite.mockViews)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.linkID = uuid.New()

	api := suite.httpSuite.Router.Group("/api")
	{
		api.GET("/links/:id", suite.handler.GetLink)
		api.GET("/links/domains/:domain/:slug", suite.handler.GetLinkBySlug)
		api.POST("/links/:id/otp", suite.handler.RequestOTP)
		api.POST("/links/:id/views", suite.handler.RecordView)
		api.POST("/views/:viewId/pages", suite.handler.RecordPageView)
		api.GET("/views/:viewId/download", suite.handler.Download)
	}
}

// TearDownTest cleans up after each test
func (suite *PublicHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetLink tests the public link lookups
func (suite *PublicHandlerTestSuite) TestGetLink() {
	suite.T().Run("Gates are reported", func(t *testing.T) {
		suite.mockLinks.EXPECT().GetPublic(suite.linkID).
			Return(&service.PublicLinkResponse{ID: suite.linkID, RequiresEmail: true, RequiresPassword: true}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/links/"+suite.linkID.String(), nil)

		var response service.PublicLinkResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.RequiresEmail)
		assert.True(t, response.RequiresPassword)
	})

	suite.T().Run("Expired link answers 410 with a code", func(t *testing.T) {
		suite.mockLinks.EXPECT().GetPublic(suite.linkID).Return(nil, apperrors.ErrLinkExpired)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/links/"+suite.linkID.String(), nil)

		var response handlers.ErrorResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusGone, &response)
		assert.Equal(t, "LINK_EXPIRED", response.Code)
	})

	suite.T().Run("Custom domain", func(t *testing.T) {
		suite.mockLinks.EXPECT().GetPublicBySlug("docs.acme.com", "deck").Return(&service.PublicLinkResponse{ID: suite.linkID}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/links/domains/docs.acme.com/deck", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestRequestOTP tests the RequestOTP handler
func (suite *PublicHandlerTestSuite) TestRequestOTP() {
	otpURL := fmt.Sprintf("/api/links/%s/otp", suite.linkID)

	suite.T().Run("Sent", func(t *testing.T) {
		suite.mockVerification.EXPECT().RequestOTP(gomock.Any(), suite.linkID, &service.RequestOTPRequest{Email: "jane@acme.com"}).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, otpURL, map[string]interface{}{"email": "jane@acme.com"})

		var response handlers.MessageResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "Verification code sent", response.Message)
	})

	suite.T().Run("Throttled", func(t *testing.T) {
		suite.mockVerification.EXPECT().RequestOTP(gomock.Any(), suite.linkID, gomock.Any()).Return(apperrors.ErrOTPThrottled)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, otpURL, map[string]interface{}{"email": "jane@acme.com"})
		assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	})
}

// TestRecordView tests the RecordView handler
func (suite *PublicHandlerTestSuite) TestRecordView() {
	viewsURL := fmt.Sprintf("/api/links/%s/views", suite.linkID)

	suite.T().Run("Client details come from the request", func(t *testing.T) {
		viewID := uuid.New()
		suite.mockViews.EXPECT().RecordView(gomock.Any(), suite.linkID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.RecordViewRequest) (*service.RecordViewResponse, error) {
				assert.Equal(t, "jane@acme.com", req.Email)
				assert.Equal(t, "Mozilla/5.0", req.UserAgent)
				assert.Equal(t, "DE", req.Country)
				return &service.RecordViewResponse{ViewID: viewID, URL: "https://s3.test/deck.pdf"}, nil
			})

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, viewsURL,
			map[string]interface{}{"email": "jane@acme.com", "user_agent": "spoofed"},
			map[string]string{"User-Agent": "Mozilla/5.0", "CF-IPCountry": "DE"})

		var response service.RecordViewResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, viewID, response.ViewID)
	})

	gates := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"Email required", apperrors.ErrEmailRequired, http.StatusUnauthorized, "EMAIL_REQUIRED"},
		{"Email denied", apperrors.ErrEmailDenied, http.StatusForbidden, "EMAIL_DENIED"},
		{"Wrong password", apperrors.ErrInvalidPassword, http.StatusUnauthorized, "INVALID_PASSWORD"},
		{"Code required", apperrors.ErrVerificationRequired, http.StatusUnauthorized, "VERIFICATION_REQUIRED"},
		{"Archived", apperrors.ErrLinkArchived, http.StatusGone, "LINK_ARCHIVED"},
	}
	for _, gate := range gates {
		suite.T().Run(gate.name, func(t *testing.T) {
			suite.mockViews.EXPECT().RecordView(gomock.Any(), suite.linkID, gomock.Any()).Return(nil, gate.err)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, viewsURL, map[string]interface{}{})

			var response handlers.ErrorResponse
			testutils.AssertJSONResponse(t, recorder, gate.status, &response)
			assert.Equal(t, gate.code, response.Code)
		})
	}
}

// TestRecordPageView tests the RecordPageView handler
func (suite *PublicHandlerTestSuite) TestRecordPageView() {
	viewID := uuid.New()
	suite.mockViews.EXPECT().RecordPageView(viewID, &service.RecordPageViewRequest{PageNumber: 2, DurationMs: 1500}).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, fmt.Sprintf("/api/views/%s/pages", viewID),
		map[string]interface{}{"page_number": 2, "duration_ms": 1500})
	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestDownload tests the Download handler
func (suite *PublicHandlerTestSuite) TestDownload() {
	viewID := uuid.New()
	downloadURL := fmt.Sprintf("/api/views/%s/download", viewID)

	suite.T().Run("Redirects to presigned URL", func(t *testing.T) {
		suite.mockViews.EXPECT().Download(gomock.Any(), viewID, gomock.Any()).
			Return(&service.DownloadResult{URL: "https://s3.test/deck.pdf"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, downloadURL, nil)
		assert.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, "https://s3.test/deck.pdf", recorder.Header().Get("Location"))
	})

	suite.T().Run("Streams watermarked file", func(t *testing.T) {
		suite.mockViews.EXPECT().Download(gomock.Any(), viewID, gomock.Any()).
			Return(&service.DownloadResult{Content: []byte("%PDF-1.7"), Filename: "Pitch deck.pdf", ContentType: "application/pdf"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, downloadURL, nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="Pitch deck.pdf"`, recorder.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF-1.7", recorder.Body.String())
	})

	suite.T().Run("Downloads disabled", func(t *testing.T) {
		suite.mockViews.EXPECT().Download(gomock.Any(), viewID, gomock.Any()).Return(nil, apperrors.ErrDownloadNotAllowed)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, downloadURL, nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestPublicHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PublicHandlerTestSuite))
}
