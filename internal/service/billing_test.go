package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"papermark-backend/internal/database/models"
	"papermark-backend/internal/email"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/mocks"
	"papermark-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v81"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// BillingServiceTestSuite defines the test suite for BillingService
type BillingServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTeams      *mocks.MockTeamRepositoryInterface
	mockUsers      *mocks.MockUserRepositoryInterface
	mockDocuments  *mocks.MockDocumentRepositoryInterface
	mockLinks      *mocks.MockLinkRepositoryInterface
	mockDatarooms  *mocks.MockDataroomRepositoryInterface
	mockGateway    *mocks.MockStripeGateway
	mockMailer     *mocks.MockSender
	mockReminders  *mocks.MockThrottle
	billingService *service.BillingService

	teamID uuid.UUID
	userID uuid.UUID
}

var testPrices = map[models.Plan]string{
	models.PlanPro:       "price_pro",
	models.PlanBusiness:  "price_business",
	models.PlanDatarooms: "price_datarooms",
}

// SetupTest sets up the test suite
func (suite *BillingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeams = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockDocuments = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.mockLinks = mocks.NewMockLinkRepositoryInterface(suite.ctrl)
	suite.mockDatarooms = mocks.NewMockDataroomRepositoryInterface(suite.ctrl)
	suite.mockGateway = mocks.NewMockStripeGateway(suite.ctrl)
	suite.mockMailer = mocks.NewMockSender(suite.ctrl)
	suite.mockReminders = mocks.NewMockThrottle(suite.ctrl)

	suite.billingService = suite.newService(suite.mockGateway)
	suite.teamID = uuid.New()
	suite.userID = uuid.New()
}

func (suite *BillingServiceTestSuite) newService(gateway service.StripeGateway) *service.BillingService {
	return service.NewBillingService(service.BillingDependencies{
		Teams:     suite.mockTeams,
		Users:     suite.mockUsers,
		Documents: suite.mockDocuments,
		Links:     suite.mockLinks,
		Datarooms: suite.mockDatarooms,
		Gateway:   gateway,
		Mailer:    suite.mockMailer,
		Reminders: suite.mockReminders,
	}, testPrices, "https://app.papermark.test", validator.New())
}

// TearDownTest cleans up after each test
func (suite *BillingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func stripeEvent(t *testing.T, eventType string, object interface{}) stripe.Event {
	raw, err := json.Marshal(object)
	require.NoError(t, err)
	return stripe.Event{ID: "evt_test", Type: stripe.EventType(eventType), Data: &stripe.EventData{Raw: raw}}
}

// TestStatus tests plan, limits and usage reporting
func (suite *BillingServiceTestSuite) TestStatus() {
	customer := "cus_123"
	current := team(suite.teamID, models.PlanBusiness)
	current.StripeCustomerID = &customer
	suite.mockTeams.EXPECT().GetByID(suite.teamID).Return(current, nil)
	suite.mockTeams.EXPECT().CountMembers(suite.teamID).Return(int64(4), nil)
	suite.mockDocuments.EXPECT().Count(suite.teamID).Return(int64(120), nil)
	suite.mockLinks.EXPECT().Count(suite.teamID).Return(int64(33), nil)
	suite.mockDatarooms.EXPECT().Count(suite.teamID).Return(int64(1), nil)

	status, err := suite.billingService.Status(suite.teamID)
	suite.Require().NoError(err)
	suite.Equal(models.PlanBusiness, status.Plan)
	suite.Equal(10, status.Limits.Users)
	suite.Equal(service.Unlimited, status.Limits.Documents)
	suite.Equal(int64(120), status.Usage.Documents)
	suite.True(status.HasCustomer)
	suite.True(status.BillingEnabled)
}

// TestCheckout tests opening Stripe Checkout
func (suite *BillingServiceTestSuite) TestCheckout() {
	ctx := context.Background()

	suite.T().Run("Admin opens checkout with their email", func(t *testing.T) {
		suite.mockTeams.EXPECT().GetMembership(suite.teamID, suite.userID).Return(membership(suite.teamID, suite.userID, models.RoleAdmin), nil)
		suite.mockTeams.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanFree), nil)
		suite.mockUsers.EXPECT().GetByID(suite.userID).Return(&models.User{BaseModel: models.BaseModel{ID: suite.userID}, Email: "admin@acme.com"}, nil)
		suite.mockGateway.EXPECT().CreateCheckoutSession(ctx, service.CheckoutSessionInput{
			TeamID:        suite.teamID,
			Plan:          models.PlanPro,
			PriceID:       "price_pro",
			CustomerEmail: "admin@acme.com",
			SuccessURL:    "https://app.papermark.test/settings/billing?success=true",
			CancelURL:     "https://app.papermark.test/settings/billing?cancel=true",
		}).Return("https://checkout.stripe.test/s/1", nil)

		resp, err := suite.billingService.Checkout(ctx, suite.teamID, suite.userID, &service.CheckoutRequest{Plan: models.PlanPro})
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.stripe.test/s/1", resp.URL)
	})

	suite.T().Run("Members cannot open checkout", func(t *testing.T) {
		suite.mockTeams.EXPECT().GetMembership(suite.teamID, suite.userID).Return(membership(suite.teamID, suite.userID, models.RoleMember), nil)

		_, err := suite.billingService.Checkout(ctx, suite.teamID, suite.userID, &service.CheckoutRequest{Plan: models.PlanPro})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientRole)
	})

	suite.T().Run("Free is not a checkout plan", func(t *testing.T) {
		_, err := suite.billingService.Checkout(ctx, suite.teamID, suite.userID, &service.CheckoutRequest{Plan: models.PlanFree})
		assert.Error(t, err)
	})

	suite.T().Run("Billing disabled", func(t *testing.T) {
		disabled := suite.newService(nil)
		suite.mockTeams.EXPECT().GetMembership(suite.teamID, suite.userID).Return(membership(suite.teamID, suite.userID, models.RoleAdmin), nil)

		_, err := disabled.Checkout(ctx, suite.teamID, suite.userID, &service.CheckoutRequest{Plan: models.PlanPro})
		assert.ErrorIs(t, err, apperrors.ErrBillingNotConfigured)
	})
}

// TestPortal tests opening the billing portal
func (suite *BillingServiceTestSuite) TestPortal() {
	ctx := context.Background()

	suite.T().Run("Team without customer", func(t *testing.T) {
		suite.mockTeams.EXPECT().GetMembership(suite.teamID, suite.userID).Return(membership(suite.teamID, suite.userID, models.RoleAdmin), nil)
		suite.mockTeams.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanFree), nil)

		_, err := suite.billingService.Portal(ctx, suite.teamID, suite.userID)
		assert.ErrorIs(t, err, apperrors.ErrNoBillingCustomer)
	})

	suite.T().Run("Opens the portal", func(t *testing.T) {
		customer := "cus_123"
		withCustomer := team(suite.teamID, models.PlanPro)
		withCustomer.StripeCustomerID = &customer
		suite.mockTeams.EXPECT().GetMembership(suite.teamID, suite.userID).Return(membership(suite.teamID, suite.userID, models.RoleAdmin), nil)
		suite.mockTeams.EXPECT().GetByID(suite.teamID).Return(withCustomer, nil)
		suite.mockGateway.EXPECT().CreatePortalSession(ctx, "cus_123", "https://app.papermark.test/settings/billing").Return("https://billing.stripe.test/p/1", nil)

		resp, err := suite.billingService.Portal(ctx, suite.teamID, suite.userID)
		require.NoError(t, err)
		assert.Equal(t, "https://billing.stripe.test/p/1", resp.URL)
	})
}

// TestHandleWebhook tests applying Stripe events to teams
func (suite *BillingServiceTestSuite) TestHandleWebhook() {
	ctx := context.Background()
	payload := []byte(`{}`)

	suite.T().Run("Invalid signature", func(t *testing.T) {
		suite.mockGateway.EXPECT().ConstructEvent(payload, "bad").Return(stripe.Event{}, errors.New("no signatures found"))

		err := suite.billingService.HandleWebhook(ctx, payload, "bad")
		assert.ErrorIs(t, err, apperrors.ErrWebhookSignature)
	})

	suite.T().Run("Checkout completed upgrades the team", func(t *testing.T) {
		event := stripeEvent(t, "checkout.session.completed", map[string]interface{}{
			"id":                  "cs_1",
			"client_reference_id": suite.teamID.String(),
			"customer":            "cus_new",
			"subscription":        "sub_new",
			"metadata":            map[string]string{"plan": "business"},
		})
		suite.mockGateway.EXPECT().ConstructEvent(payload, "sig").Return(event, nil)
		suite.mockTeams.EXPECT().GetByID(suite.teamID).Return(team(suite.teamID, models.PlanFree), nil)
		suite.mockTeams.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Team) error {
			assert.Equal(t, models.PlanBusiness, updated.Plan)
			require.NotNil(t, updated.StripeCustomerID)
			assert.Equal(t, "cus_new", *updated.StripeCustomerID)
			require.NotNil(t, updated.StripeSubscriptionID)
			assert.Equal(t, "sub_new", *updated.StripeSubscriptionID)
			return nil
		})

		assert.NoError(t, suite.billingService.HandleWebhook(ctx, payload, "sig"))
	})

	suite.T().Run("Subscription updated maps the price to a plan", func(t *testing.T) {
		periodEnd := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
		event := stripeEvent(t, "customer.subscription.updated", map[string]interface{}{
			"id":                 "sub_1",
			"customer":           "cus_123",
			"current_period_end": periodEnd.Unix(),
			"items": map[string]interface{}{
				"data": []map[string]interface{}{{"id": "si_1", "price": map[string]interface{}{"id": "price_datarooms"}}},
			},
		})
		suite.mockGateway.EXPECT().ConstructEvent(payload, "sig").Return(event, nil)
		suite.mockTeams.EXPECT().GetByStripeCustomerID("cus_123").Return(team(suite.teamID, models.PlanBusiness), nil)
		suite.mockTeams.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Team) error {
			assert.Equal(t, models.PlanDatarooms, updated.Plan)
			require.NotNil(t, updated.SubscriptionEndsAt)
			assert.True(t, periodEnd.Equal(*updated.SubscriptionEndsAt))
			return nil
		})

		assert.NoError(t, suite.billingService.HandleWebhook(ctx, payload, "sig"))
	})

	suite.T().Run("Subscription deleted downgrades to free", func(t *testing.T) {
		subscription := "sub_1"
		event := stripeEvent(t, "customer.subscription.deleted", map[string]interface{}{
			"id":       "sub_1",
			"customer": "cus_gone",
			"metadata": map[string]string{"team_id": suite.teamID.String()},
		})
		current := team(suite.teamID, models.PlanPro)
		current.StripeSubscriptionID = &subscription
		suite.mockGateway.EXPECT().ConstructEvent(payload, "sig").Return(event, nil)
		suite.mockTeams.EXPECT().GetByStripeCustomerID("cus_gone").Return(nil, gorm.ErrRecordNotFound)
		suite.mockTeams.EXPECT().GetByID(suite.teamID).Return(current, nil)
		suite.mockTeams.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Team) error {
			assert.Equal(t, models.PlanFree, updated.Plan)
			assert.Nil(t, updated.StripeSubscriptionID)
			return nil
		})

		assert.NoError(t, suite.billingService.HandleWebhook(ctx, payload, "sig"))
	})

	suite.T().Run("Unknown team is acknowledged", func(t *testing.T) {
		event := stripeEvent(t, "checkout.session.completed", map[string]interface{}{"id": "cs_2", "client_reference_id": "not-a-team"})
		suite.mockGateway.EXPECT().ConstructEvent(payload, "sig").Return(event, nil)

		assert.NoError(t, suite.billingService.HandleWebhook(ctx, payload, "sig"))
	})

	suite.T().Run("Other events are ignored", func(t *testing.T) {
		suite.mockGateway.EXPECT().ConstructEvent(payload, "sig").Return(stripeEvent(t, "invoice.paid", map[string]string{}), nil)

		assert.NoError(t, suite.billingService.HandleWebhook(ctx, payload, "sig"))
	})
}

// TestSendRenewalReminders tests the renewal reminder sweep
func (suite *BillingServiceTestSuite) TestSendRenewalReminders() {
	ctx := context.Background()
	now := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)
	endsAt := now.Add(3 * 24 * time.Hour)

	renewing := *team(suite.teamID, models.PlanPro)
	renewing.SubscriptionEndsAt = &endsAt
	alreadyReminded := *team(uuid.New(), models.PlanBusiness)
	alreadyReminded.SubscriptionEndsAt = &endsAt

	suite.mockTeams.EXPECT().ListSubscriptionsEndingBetween(now, now.Add(7*24*time.Hour)).
		Return([]models.Team{renewing, alreadyReminded}, nil)
	suite.mockReminders.EXPECT().Acquire(ctx, fmt.Sprintf("renewal:%s:%d", renewing.ID, endsAt.Unix()), 8*24*time.Hour).Return(true, nil)
	suite.mockReminders.EXPECT().Acquire(ctx, fmt.Sprintf("renewal:%s:%d", alreadyReminded.ID, endsAt.Unix()), gomock.Any()).Return(false, nil)
	suite.mockTeams.EXPECT().ListAdmins(renewing.ID).Return([]models.User{{Email: "admin@acme.com"}}, nil)
	suite.mockMailer.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg *email.Message) error {
		suite.Equal("admin@acme.com", msg.To)
		suite.Contains(msg.HTML, "November 4, 2026")
		return nil
	})

	reminded, err := suite.billingService.SendRenewalReminders(ctx, now)
	suite.NoError(err)
	suite.Equal(1, reminded)
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}
