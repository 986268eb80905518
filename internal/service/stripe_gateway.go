package service

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	portalsession "github.com/stripe/stripe-go/v81/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"
)

// StripeClient implements StripeGateway with the Stripe API
type StripeClient struct {
	webhookSecret string
}

// Ensure StripeClient implements StripeGateway
var _ StripeGateway = (*StripeClient)(nil)

// NewStripeClient configures the Stripe API key and returns a gateway
func NewStripeClient(secretKey, webhookSecret string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{webhookSecret: webhookSecret}
}

// CreateCheckoutSession creates a subscription Checkout session and returns its URL
func (c *StripeClient) CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(input.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(input.SuccessURL),
		CancelURL:         stripe.String(input.CancelURL),
		ClientReferenceID: stripe.String(input.TeamID.String()),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				stripeMetadataTeamID: input.TeamID.String(),
				stripeMetadataPlan:   string(input.Plan),
			},
		},
	}
	params.Context = ctx
	if input.CustomerID != "" {
		params.Customer = stripe.String(input.CustomerID)
	} else if input.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(input.CustomerEmail)
	}
	params.AddMetadata(stripeMetadataTeamID, input.TeamID.String())
	params.AddMetadata(stripeMetadataPlan, string(input.Plan))

	session, err := checkoutsession.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe checkout: %w", err)
	}
	return session.URL, nil
}

// CreatePortalSession creates a billing portal session and returns its URL
func (c *StripeClient) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	session, err := portalsession.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe billing portal: %w", err)
	}
	return session.URL, nil
}

// ConstructEvent verifies the Stripe-Signature header and decodes the event
func (c *StripeClient) ConstructEvent(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}
