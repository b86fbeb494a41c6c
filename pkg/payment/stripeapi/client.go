// Package stripeapi provides a payment.Client implementation backed by the
// Stripe REST API.
package stripeapi

import (
	"context"
	"cordely/pkg/domain"
	"cordely/pkg/payment"
	"cordely/pkg/serrors"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	stripeclient "github.com/stripe/stripe-go/v82/client"
)

// subscriptionPageLimit caps how many subscriptions are fetched per customer.
// Entitlement only needs the most recent handful; customers never accumulate
// anywhere near this many live records.
const subscriptionPageLimit = 10

// Client talks to the Stripe REST API and fulfills the payment.Client
// interface. It is safe for concurrent use.
type Client struct {
	api *stripeclient.API // api is the Stripe SDK client bound to the account key
}

// wrapErr converts SDK failures into semantic errors: responses Stripe itself
// produced become ErrProvider, anything else (network, context) becomes
// ErrUnavailable.
func wrapErr(err error, msgFmt string, args ...any) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return serrors.Wrap(serrors.ErrProvider, err, msgFmt, args...)
	}

	return serrors.Wrap(serrors.ErrUnavailable, err, msgFmt, args...)
}

// Subscriptions lists the most recent subscriptions of the given customer
// across all statuses and maps them into domain records.
func (c *Client) Subscriptions(ctx context.Context, customerID string) ([]domain.SubscriptionRecord, error) {
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(subscriptionPageLimit)

	var out []domain.SubscriptionRecord
	iter := c.api.Subscriptions.List(params)
	for iter.Next() {
		sub := iter.Subscription()

		record := domain.SubscriptionRecord{
			ID:                sub.ID,
			Status:            domain.SubscriptionStatus(sub.Status),
			CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		}
		if sub.Customer != nil {
			record.CustomerID = sub.Customer.ID
		}

		out = append(out, record)
	}
	if err := iter.Err(); err != nil {
		return nil, wrapErr(err, "could not list subscriptions")
	}

	return out, nil
}

// CreateCheckoutSession opens a hosted checkout session in subscription mode.
// The session is bound to an existing customer when params.CustomerID is set;
// otherwise the provider creates a customer from params.OwnerEmail.
func (c *Client) CreateCheckoutSession(ctx context.Context, params payment.CheckoutParams) (*domain.CheckoutSession, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(params.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	sessionParams.Context = ctx
	sessionParams.AddMetadata("siteKey", params.SiteKey)

	if params.CustomerID != "" {
		sessionParams.Customer = stripe.String(params.CustomerID)
	} else {
		sessionParams.CustomerEmail = stripe.String(params.OwnerEmail)
	}

	session, err := c.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return nil, wrapErr(err, "could not create checkout session")
	}
	if session.URL == "" {
		return nil, serrors.With(serrors.ErrProvider, "provider returned empty checkout URL")
	}

	return sessionToDomain(session), nil
}

// CheckoutSession retrieves a previously opened checkout session by its ID.
// Returns ErrNotFound when the provider does not know the session.
func (c *Client) CheckoutSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := c.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "checkout session %q not found", sessionID)
		}

		return nil, wrapErr(err, "could not fetch checkout session %q", sessionID)
	}

	return sessionToDomain(session), nil
}

func sessionToDomain(session *stripe.CheckoutSession) *domain.CheckoutSession {
	out := &domain.CheckoutSession{
		ID:      session.ID,
		URL:     session.URL,
		SiteKey: session.Metadata["siteKey"],
	}
	if session.Customer != nil {
		out.CustomerID = session.Customer.ID
	}

	return out
}

// Ensure Client conforms to the payment.Client interface at compile time.
var _ payment.Client = (*Client)(nil)

// New constructs a Client bound to the provided Stripe secret key.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("stripe api key is required")
	}

	return &Client{
		api: stripeclient.New(apiKey, nil),
	}, nil
}
