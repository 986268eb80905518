package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"papermark-backend/internal/database/models"
	"papermark-backend/internal/email"
	apperrors "papermark-backend/internal/errors"
	"papermark-backend/internal/logger"
	"papermark-backend/internal/ratelimit"
	"papermark-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
	"gorm.io/gorm"
)

const (
	renewalWindow = 7 * 24 * time.Hour
	renewalMarker = 8 * 24 * time.Hour
)

// Stripe event types handled by the billing webhook
const (
	stripeCheckoutCompleted    = "checkout.session.completed"
	stripeSubscriptionUpdated  = "customer.subscription.updated"
	stripeSubscriptionDeleted  = "customer.subscription.deleted"
	stripeMetadataTeamID       = "team_id"
	stripeMetadataPlan         = "plan"
	checkoutSuccessPathPattern = "%s/settings/billing?success=true"
	checkoutCancelPathPattern  = "%s/settings/billing?cancel=true"
)

//go:generate mockgen -source=billing.go -destination=../mocks/stripe_mocks.go -package=mocks

// CheckoutSessionInput describes a subscription checkout
type CheckoutSessionInput struct {
	TeamID        uuid.UUID
	Plan          models.Plan
	PriceID       string
	CustomerID    string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// StripeGateway is the subset of the Stripe API used for billing
type StripeGateway interface {
	CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (string, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
	ConstructEvent(payload []byte, signature string) (stripe.Event, error)
}

// BillingService manages plans, Stripe subscriptions and usage limits of teams
type BillingService struct {
	teamRepo     repository.TeamRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	documentRepo repository.DocumentRepositoryInterface
	linkRepo     repository.LinkRepositoryInterface
	dataroomRepo repository.DataroomRepositoryInterface
	gateway      StripeGateway
	mailer       email.Sender
	reminders    ratelimit.Throttle
	prices       map[models.Plan]string
	guard        teamGuard
	baseURL      string
	validator    *validator.Validate
}

// Ensure BillingService implements BillingServiceInterface
var _ BillingServiceInterface = (*BillingService)(nil)

// BillingDependencies groups the collaborators of the billing service
type BillingDependencies struct {
	Teams     repository.TeamRepositoryInterface
	Users     repository.UserRepositoryInterface
	Documents repository.DocumentRepositoryInterface
	Links     repository.LinkRepositoryInterface
	Datarooms repository.DataroomRepositoryInterface
	Gateway   StripeGateway
	Mailer    email.Sender
	Reminders ratelimit.Throttle
}

// NewBillingService creates a new billing service. A nil gateway disables checkout, portal and webhooks.
func NewBillingService(deps BillingDependencies, prices map[models.Plan]string, baseURL string, validator *validator.Validate) *BillingService {
	return &BillingService{
		teamRepo:     deps.Teams,
		userRepo:     deps.Users,
		documentRepo: deps.Documents,
		linkRepo:     deps.Links,
		dataroomRepo: deps.Datarooms,
		gateway:      deps.Gateway,
		mailer:       deps.Mailer,
		reminders:    deps.Reminders,
		prices:       prices,
		guard:        teamGuard{teamRepo: deps.Teams},
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		validator:    validator,
	}
}

// CheckoutRequest selects the plan to subscribe to
type CheckoutRequest struct {
	Plan models.Plan `json:"plan" validate:"required,oneof=pro business datarooms"`
}

// SessionResponse carries the URL of a hosted Stripe page
type SessionResponse struct {
	URL string `json:"url"`
}

// UsageResponse counts the limited resources of a team
type UsageResponse struct {
	Users     int64 `json:"users"`
	Documents int64 `json:"documents"`
	Links     int64 `json:"links"`
	Datarooms int64 `json:"datarooms"`
}

// BillingStatusResponse describes the plan, limits and usage of a team
type BillingStatusResponse struct {
	Plan               models.Plan       `json:"plan"`
	Limits             models.PlanLimits `json:"limits"`
	Usage              UsageResponse     `json:"usage"`
	SubscriptionEndsAt *string           `json:"subscription_ends_at,omitempty"`
	HasCustomer        bool              `json:"has_customer"`
	BillingEnabled     bool              `json:"billing_enabled"`
}

// Status returns the plan, limits and current usage of a team
func (s *BillingService) Status(teamID uuid.UUID) (*BillingStatusResponse, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrTeamNotFound, "get team")
	}

	var usage UsageResponse
	counters := []struct {
		target *int64
		count  func(uuid.UUID) (int64, error)
		name   string
	}{
		{&usage.Users, s.teamRepo.CountMembers, "members"},
		{&usage.Documents, s.documentRepo.Count, "documents"},
		{&usage.Links, s.linkRepo.Count, "links"},
		{&usage.Datarooms, s.dataroomRepo.Count, "datarooms"},
	}
	for _, c := range counters {
		n, err := c.count(teamID)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.name, err)
		}
		*c.target = n
	}

	return &BillingStatusResponse{
		Plan:               team.Plan,
		Limits:             LimitsFor(team),
		Usage:              usage,
		SubscriptionEndsAt: formatTimePtr(team.SubscriptionEndsAt),
		HasCustomer:        team.StripeCustomerID != nil && *team.StripeCustomerID != "",
		BillingEnabled:     s.gateway != nil,
	}, nil
}

// Checkout opens a Stripe Checkout session subscribing the team to a plan. Admins only.
func (s *BillingService) Checkout(ctx context.Context, teamID, userID uuid.UUID, req *CheckoutRequest) (*SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.guard.require(teamID, userID, models.RoleAdmin); err != nil {
		return nil, err
	}
	if s.gateway == nil {
		return nil, apperrors.ErrBillingNotConfigured
	}
	price := s.prices[req.Plan]
	if price == "" {
		return nil, apperrors.ErrUnknownPlan
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrTeamNotFound, "get team")
	}
	input := CheckoutSessionInput{
		TeamID:     teamID,
		Plan:       req.Plan,
		PriceID:    price,
		SuccessURL: fmt.Sprintf(checkoutSuccessPathPattern, s.baseURL),
		CancelURL:  fmt.Sprintf(checkoutCancelPathPattern, s.baseURL),
	}
	if team.StripeCustomerID != nil && *team.StripeCustomerID != "" {
		input.CustomerID = *team.StripeCustomerID
	} else if user, err := s.userRepo.GetByID(userID); err == nil {
		input.CustomerEmail = user.Email
	}

	url, err := s.gateway.CreateCheckoutSession(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return &SessionResponse{URL: url}, nil
}

// Portal opens the Stripe billing portal of the team. Admins only.
func (s *BillingService) Portal(ctx context.Context, teamID, userID uuid.UUID) (*SessionResponse, error) {
	if _, err := s.guard.require(teamID, userID, models.RoleAdmin); err != nil {
		return nil, err
	}
	if s.gateway == nil {
		return nil, apperrors.ErrBillingNotConfigured
	}
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrTeamNotFound, "get team")
	}
	if team.StripeCustomerID == nil || *team.StripeCustomerID == "" {
		return nil, apperrors.ErrNoBillingCustomer
	}

	url, err := s.gateway.CreatePortalSession(ctx, *team.StripeCustomerID, s.baseURL+"/settings/billing")
	if err != nil {
		return nil, fmt.Errorf("failed to create portal session: %w", err)
	}
	return &SessionResponse{URL: url}, nil
}

// HandleWebhook verifies a Stripe event and applies subscription changes to the team
func (s *BillingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.gateway == nil {
		return apperrors.ErrBillingNotConfigured
	}
	event, err := s.gateway.ConstructEvent(payload, signature)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrWebhookSignature, err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"stripe_event": event.ID,
		"type":         event.Type,
	})

	var handleErr error
	switch string(event.Type) {
	case stripeCheckoutCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return fmt.Errorf("failed to parse checkout session: %w", err)
		}
		handleErr = s.applyCheckout(&session)
	case stripeSubscriptionUpdated:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("failed to parse subscription: %w", err)
		}
		handleErr = s.applySubscription(&sub)
	case stripeSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("failed to parse subscription: %w", err)
		}
		handleErr = s.cancelSubscription(&sub)
	default:
		log.Debug("Ignoring stripe event")
		return nil
	}

	if apperrors.IsNotFound(handleErr) {
		log.WithError(handleErr).Warn("Stripe event for unknown team acknowledged")
		return nil
	}
	return handleErr
}

func (s *BillingService) applyCheckout(session *stripe.CheckoutSession) error {
	teamRef := session.ClientReferenceID
	if teamRef == "" {
		teamRef = session.Metadata[stripeMetadataTeamID]
	}
	teamID, err := uuid.Parse(teamRef)
	if err != nil {
		return apperrors.ErrTeamNotFound
	}
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return lookup(err, apperrors.ErrTeamNotFound, "get team")
	}

	if session.Customer != nil && session.Customer.ID != "" {
		id := session.Customer.ID
		team.StripeCustomerID = &id
	}
	if session.Subscription != nil && session.Subscription.ID != "" {
		id := session.Subscription.ID
		team.StripeSubscriptionID = &id
	}
	if plan := models.Plan(session.Metadata[stripeMetadataPlan]); plan.IsValid() {
		team.Plan = plan
	}

	if err := s.teamRepo.Update(team); err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}
	return nil
}

func (s *BillingService) applySubscription(sub *stripe.Subscription) error {
	team, err := s.teamForSubscription(sub)
	if err != nil {
		return err
	}

	subID := sub.ID
	team.StripeSubscriptionID = &subID
	if plan, ok := s.planForSubscription(sub); ok {
		team.Plan = plan
	}
	if sub.CurrentPeriodEnd > 0 {
		endsAt := time.Unix(sub.CurrentPeriodEnd, 0).UTC()
		team.SubscriptionEndsAt = &endsAt
	}

	if err := s.teamRepo.Update(team); err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}
	return nil
}

func (s *BillingService) cancelSubscription(sub *stripe.Subscription) error {
	team, err := s.teamForSubscription(sub)
	if err != nil {
		return err
	}

	team.Plan = models.PlanFree
	team.StripeSubscriptionID = nil
	team.SubscriptionEndsAt = nil
	if err := s.teamRepo.Update(team); err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}
	return nil
}

// teamForSubscription finds the team by Stripe customer, then by the team_id metadata
func (s *BillingService) teamForSubscription(sub *stripe.Subscription) (*models.Team, error) {
	if sub.Customer != nil && sub.Customer.ID != "" {
		team, err := s.teamRepo.GetByStripeCustomerID(sub.Customer.ID)
		if err == nil {
			return team, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get team by customer: %w", err)
		}
	}
	teamID, err := uuid.Parse(sub.Metadata[stripeMetadataTeamID])
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrTeamNotFound, "get team")
	}
	return team, nil
}

// planForSubscription maps the price of the first subscription item back to a plan
func (s *BillingService) planForSubscription(sub *stripe.Subscription) (models.Plan, bool) {
	if plan := models.Plan(sub.Metadata[stripeMetadataPlan]); plan.IsValid() {
		return plan, true
	}
	if sub.Items == nil {
		return "", false
	}
	for _, item := range sub.Items.Data {
		if item == nil || item.Price == nil {
			continue
		}
		for plan, price := range s.prices {
			if price != "" && price == item.Price.ID {
				return plan, true
			}
		}
	}
	return "", false
}

// SendRenewalReminders emails the admins of teams whose subscription ends within a week.
// Each team is reminded once per billing period.
func (s *BillingService) SendRenewalReminders(ctx context.Context, now time.Time) (int, error) {
	teams, err := s.teamRepo.ListSubscriptionsEndingBetween(now, now.Add(renewalWindow))
	if err != nil {
		return 0, fmt.Errorf("failed to list renewing subscriptions: %w", err)
	}

	reminded := 0
	for i := range teams {
		team := &teams[i]
		if team.SubscriptionEndsAt == nil {
			continue
		}
		log := logger.WithContext(ctx).WithField("team_id", team.ID)

		key := fmt.Sprintf("renewal:%s:%d", team.ID, team.SubscriptionEndsAt.Unix())
		first, err := s.reminders.Acquire(ctx, key, renewalMarker)
		if err != nil {
			log.WithError(err).Warn("Failed to check renewal reminder marker")
			continue
		}
		if !first {
			continue
		}

		admins, err := s.teamRepo.ListAdmins(team.ID)
		if err != nil {
			log.WithError(err).Warn("Failed to list admins for renewal reminder")
			continue
		}
		renewsOn := team.SubscriptionEndsAt.UTC().Format("January 2, 2006")
		for _, admin := range admins {
			msg, err := email.RenewalReminder(admin.Email, team.Name, string(team.Plan), renewsOn)
			if err != nil {
				log.WithError(err).Warn("Failed to render renewal reminder")
				continue
			}
			if err := s.mailer.Send(ctx, msg); err != nil {
				log.WithError(err).WithField("recipient", admin.Email).Warn("Failed to send renewal reminder")
			}
		}
		reminded++
	}
	return reminded, nil
}
