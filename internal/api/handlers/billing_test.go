package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"papermark-backend/internal/api/handlers"
	"papermark-backend/internal/database/models"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/mocks"
	"papermark-backend/internal/service"
	"papermark-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BillingHandlerTestSuite defines the test suite for BillingHandler
type BillingHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBillingServiceInterface
	handler     *handlers.BillingHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
	teamID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *BillingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBillingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewBillingHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.userID = uuid.New()
	suite.teamID = uuid.New()

	suite.httpSuite.Router.POST("/api/stripe/webhook", suite.handler.StripeWebhook)
	billing := suite.httpSuite.Router.Group("/api/v1/teams/:teamId/billing", authenticateAs(suite.userID))
	{
		billing.GET("", suite.handler.Status)
		billing.POST("/checkout", suite.handler.Checkout)
		billing.POST("/portal", suite.handler.Portal)
	}
}

// TearDownTest cleans up after each test
func (suite *BillingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BillingHandlerTestSuite) billingURL(suffix string) string {
	return fmt.Sprintf("/api/v1/teams/%s/billing%s", suite.teamID, suffix)
}

// TestStatus tests the Status handler
func (suite *BillingHandlerTestSuite) TestStatus() {
	suite.mockService.EXPECT().Status(suite.teamID).Return(&service.BillingStatusResponse{
		Plan:  models.PlanPro,
		Usage: service.UsageResponse{Documents: 7},
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, suite.billingURL(""), nil)

	var response service.BillingStatusResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(models.PlanPro, response.Plan)
	suite.Equal(int64(7), response.Usage.Documents)
}

// TestCheckout tests the Checkout handler
func (suite *BillingHandlerTestSuite) TestCheckout() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Checkout(gomock.Any(), suite.teamID, suite.userID, &service.CheckoutRequest{Plan: models.PlanBusiness}).
			Return(&service.SessionResponse{URL: "https://checkout.stripe.test/s/1"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.billingURL("/checkout"), map[string]interface{}{"plan": "business"})

		var response service.SessionResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "https://checkout.stripe.test/s/1", response.URL)
	})

	suite.T().Run("Stripe not configured", func(t *testing.T) {
		suite.mockService.EXPECT().
			Checkout(gomock.Any(), suite.teamID, suite.userID, gomock.Any()).
			Return(nil, apperrors.ErrBillingNotConfigured)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.billingURL("/checkout"), map[string]interface{}{"plan": "pro"})
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})
}

// TestPortal tests the Portal handler
func (suite *BillingHandlerTestSuite) TestPortal() {
	suite.mockService.EXPECT().Portal(gomock.Any(), suite.teamID, suite.userID).Return(nil, apperrors.ErrNoBillingCustomer)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, suite.billingURL("/portal"), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "no billing customer")
}

// TestStripeWebhook tests the StripeWebhook handler
func (suite *BillingHandlerTestSuite) TestStripeWebhook() {
	payload := []byte(`{"id":"evt_1","type":"customer.subscription.updated"}`)

	send := func() *httptest.ResponseRecorder {
		return suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/stripe/webhook", payload,
			map[string]string{"Stripe-Signature": "t=1,v1=abc"})
	}

	suite.T().Run("Raw body and signature are forwarded", func(t *testing.T) {
		suite.mockService.EXPECT().HandleWebhook(gomock.Any(), payload, "t=1,v1=abc").Return(nil)

		recorder := send()
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid signature", func(t *testing.T) {
		suite.mockService.EXPECT().HandleWebhook(gomock.Any(), payload, "t=1,v1=abc").
			Return(fmt.Errorf("%w: bad", apperrors.ErrWebhookSignature))

		recorder := send()
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestBillingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BillingHandlerTestSuite))
}
