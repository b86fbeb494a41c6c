// Package payment defines interfaces and data types used to read subscription
// state from and open checkout sessions against a backing payment provider.
package payment

import (
	"context"
	"cordely/pkg/domain"
)

// CheckoutParams carries everything needed to open a hosted checkout session.
type CheckoutParams struct {
	// SiteKey is attached to the session metadata so the session can be traced
	// back to the site it was opened for.
	SiteKey string
	// PriceID is the provider price the subscription is created against.
	PriceID string
	// CustomerID binds the session to an existing provider customer. Leave
	// empty to let the provider create a customer from OwnerEmail instead.
	CustomerID string
	// OwnerEmail seeds the customer record when no CustomerID is set.
	OwnerEmail string
	// SuccessURL is where the customer lands after completing checkout.
	SuccessURL string
	// CancelURL is where the customer lands after abandoning checkout.
	CancelURL string
}

// Client is the abstraction for payment providers. Implementations list the
// subscriptions of a customer and manage hosted checkout sessions.
//
//go:generate mockgen -package mockpayment -source=interface.go -destination=mock/mockpayment.go *
type Client interface {
	// Subscriptions returns the most recent subscriptions of the given provider
	// customer, regardless of their status.
	Subscriptions(ctx context.Context, customerID string) ([]domain.SubscriptionRecord, error)
	// CreateCheckoutSession opens a new hosted checkout session in subscription
	// mode and returns it, including the redirect URL.
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*domain.CheckoutSession, error)
	// CheckoutSession retrieves a previously opened session by its ID.
	CheckoutSession(ctx context.Context, sessionID string) (*domain.CheckoutSession, error)
}
