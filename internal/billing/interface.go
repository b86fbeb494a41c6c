package billing

import (
	"context"
	"cordely/pkg/domain"
)

// Verification is the outcome of verifying a checkout session after the
// customer returns from the provider-hosted payment page.
type Verification struct {
	// SiteKey is the site the session was opened for, when the session carries
	// that metadata.
	SiteKey string `json:"siteKey,omitempty"`
	// Status is the entitlement derived from the session's customer right after
	// verification.
	Status domain.EntitlementStatus `json:"status"`
}

//go:generate mockgen -package mockbilling -source=interface.go -destination=mock/mockbilling.go *
type Biller interface {
	// Status derives the current entitlement of a site from its billing profile
	// and the provider's live subscription records.
	Status(ctx context.Context, siteKey string) (domain.EntitlementStatus, error)
	// Checkout opens a hosted checkout session for a site, or reports the
	// already-active subscription when no new session is needed.
	Checkout(ctx context.Context, siteKey string) (*domain.CheckoutRedirect, error)
	// Verify confirms a checkout session with the provider and derives the
	// resulting entitlement.
	Verify(ctx context.Context, sessionID string) (*Verification, error)
	// Access joins the site's profile flags with its derived entitlement into a
	// single render decision. A non-empty sessionID routes the status side
	// through session verification.
	Access(ctx context.Context, siteKey string, sessionID string) (*domain.AccessDecision, error)
}
