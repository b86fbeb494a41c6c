// Package billing implements the entitlement core: deriving a site's access
// status from the payment provider's live subscription records, opening
// checkout sessions, verifying them on return, and settling the storefront's
// access gate decision.
package billing

import (
	"context"
	"cordely/internal/config"
	"cordely/pkg/domain"
	"cordely/pkg/logger"
	"cordely/pkg/payment"
	"cordely/pkg/serrors"
	"cordely/pkg/storage"
	"fmt"

	"go.uber.org/zap"
)

// Options configure how checkout sessions are built. These settings are
// derived from application configuration.
type Options struct {
	// PriceID is the provider price checkout subscribes the customer to.
	PriceID string
	// AppBaseURL is the public base URL the provider redirects back to after
	// checkout completes or is abandoned.
	AppBaseURL string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PriceID:    cfg.Stripe.PriceID,
		AppBaseURL: cfg.Stripe.AppBaseURL,
	}
}

// billing is the concrete implementation of the Biller interface. It
// coordinates the storage layer with the payment provider client.
type billing struct {
	// options holds runtime configuration for checkout session construction.
	options Options
	// storage is the persistence layer holding site billing profiles.
	storage storage.Storage
	// payments is the provider client subscriptions and sessions come from.
	payments payment.Client
}

// profileByKey loads a site's billing profile, translating absence into a
// semantic not-found error.
func (b billing) profileByKey(ctx context.Context, siteKey string) (*domain.SiteBillingProfile, error) {
	if siteKey == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "siteKey is required")
	}

	profile, err := b.storage.SiteByKey(ctx, siteKey)
	if err != nil {
		return nil, fmt.Errorf("could not get site profile: %w", err)
	}
	if profile == nil {
		return nil, serrors.With(serrors.ErrNotFound, "site %q not found", siteKey)
	}

	return profile, nil
}

// statusFor derives the entitlement for a loaded profile. Provider failures
// are logged and reported as none: the status is a render decision, and an
// unreachable provider must never open access.
func (b billing) statusFor(ctx context.Context, profile *domain.SiteBillingProfile) domain.EntitlementStatus {
	// setup mode, free plan and missing linkage settle without a provider call
	if profile.SetupMode || profile.IsFreePlan || !profile.HasCustomer() {
		return Derive(*profile, nil)
	}

	records, err := b.payments.Subscriptions(ctx, profile.StripeCustomerID)
	if err != nil {
		logger.Warn(ctx, "Could not list subscriptions, failing closed",
			zap.String("siteKey", profile.SiteKey),
			zap.Error(err))

		return domain.EntitlementNone
	}

	return Derive(*profile, records)
}

// Status derives the current entitlement of a site. It never fails on
// provider errors; those degrade to the none status.
func (b billing) Status(ctx context.Context, siteKey string) (domain.EntitlementStatus, error) {
	profile, err := b.profileByKey(ctx, siteKey)
	if err != nil {
		return "", err
	}

	return b.statusFor(ctx, profile), nil
}

// Checkout opens a hosted checkout session for the site, binding it to the
// site's provider customer when one exists or to the owner email otherwise.
// When the customer already holds a live subscription no session is opened and
// the existing subscription ID is returned instead.
func (b billing) Checkout(ctx context.Context, siteKey string) (*domain.CheckoutRedirect, error) {
	profile, err := b.profileByKey(ctx, siteKey)
	if err != nil {
		return nil, err
	}

	if b.options.PriceID == "" || b.options.AppBaseURL == "" {
		return nil, serrors.With(serrors.ErrMisconfigured, "checkout price or base URL not configured")
	}

	// a profile with neither customer nor owner email gives the provider
	// nothing to bind the session to; fail before calling out
	if !profile.HasCustomer() && profile.OwnerEmail == "" {
		return nil, serrors.With(serrors.ErrIdentityMissing,
			"site %q has no customer linkage and no owner email", siteKey)
	}

	if profile.HasCustomer() {
		records, err := b.payments.Subscriptions(ctx, profile.StripeCustomerID)
		if err != nil {
			return nil, fmt.Errorf("could not check existing subscriptions: %w", err)
		}
		for _, record := range records {
			// only an untainted live subscription blocks a new session; one that
			// is pending cancellation must stay re-subscribable
			if live(record) && !record.CancelAtPeriodEnd {
				// already subscribed, opening another session would double-charge
				return &domain.CheckoutRedirect{SubscriptionID: record.ID}, nil
			}
		}
	}

	session, err := b.payments.CreateCheckoutSession(ctx, payment.CheckoutParams{
		SiteKey:    siteKey,
		PriceID:    b.options.PriceID,
		CustomerID: profile.StripeCustomerID,
		OwnerEmail: profile.OwnerEmail,
		SuccessURL: b.options.AppBaseURL + "/?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  b.options.AppBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create checkout session: %w", err)
	}

	return &domain.CheckoutRedirect{URL: session.URL}, nil
}

// Verify confirms a checkout session with the provider, persists the customer
// linkage the session established, and derives the resulting entitlement.
func (b billing) Verify(ctx context.Context, sessionID string) (*Verification, error) {
	if sessionID == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "session_id is required")
	}

	session, err := b.payments.CheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("could not verify checkout session: %w", err)
	}

	// record the linkage so future status checks reach the right customer.
	// best effort: a failed write degrades the next check, not this one
	if session.SiteKey != "" && session.CustomerID != "" {
		if err := b.storage.LinkCustomer(ctx, session.SiteKey, session.CustomerID); err != nil {
			logger.Warn(ctx, "Could not persist customer linkage",
				zap.String("siteKey", session.SiteKey),
				zap.Error(err))
		}
	}

	verification := &Verification{SiteKey: session.SiteKey, Status: domain.EntitlementNone}
	if session.CustomerID == "" {
		return verification, nil
	}

	profile := domain.SiteBillingProfile{
		SiteKey:          session.SiteKey,
		StripeCustomerID: session.CustomerID,
	}
	if session.SiteKey != "" {
		if stored, err := b.storage.SiteByKey(ctx, session.SiteKey); err != nil {
			return nil, fmt.Errorf("could not get site profile: %w", err)
		} else if stored != nil {
			profile = *stored
			profile.StripeCustomerID = session.CustomerID
		}
	}

	records, err := b.payments.Subscriptions(ctx, session.CustomerID)
	if err != nil {
		logger.Warn(ctx, "Could not list subscriptions after verification, failing closed",
			zap.String("sessionID", sessionID),
			zap.Error(err))

		return verification, nil
	}

	verification.Status = Derive(profile, records)

	return verification, nil
}

// New creates a new Biller backed by the provided storage and payment
// provider client, configured with the given options.
func New(storage storage.Storage, payments payment.Client, options Options) Biller {
	return &billing{
		options:  options,
		storage:  storage,
		payments: payments,
	}
}
