package domain

// EntitlementStatus is the derived access decision for a site's paid features.
// It is always recomputed on demand from the billing profile and the payment
// provider's live subscription records; it is never persisted.
type EntitlementStatus string

const (
	// EntitlementSetupMode indicates the site is being prepared by an operator
	// and is exempt from billing checks.
	EntitlementSetupMode EntitlementStatus = "setup_mode"
	// EntitlementNone indicates no relevant subscription exists. This is also
	// the fail-closed fallback when the status cannot be determined.
	EntitlementNone EntitlementStatus = "none"
	// EntitlementActive indicates a currently-renewing subscription.
	EntitlementActive EntitlementStatus = "active"
	// EntitlementPendingCancel indicates an active subscription already
	// scheduled to lapse at period end.
	EntitlementPendingCancel EntitlementStatus = "pending_cancel"
	// EntitlementCanceled indicates only canceled subscriptions were found.
	EntitlementCanceled EntitlementStatus = "canceled"
)

// SubscriptionStatus is the lifecycle state of a single provider subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive     SubscriptionStatus = "active"
	SubscriptionStatusTrialing   SubscriptionStatus = "trialing"
	SubscriptionStatusCanceled   SubscriptionStatus = "canceled"
	SubscriptionStatusIncomplete SubscriptionStatus = "incomplete"
)

// SubscriptionRecord is a live snapshot of one payment-provider subscription.
// Records are sourced from the provider on every decision and never stored.
type SubscriptionRecord struct {
	// ID is the provider's subscription identifier.
	ID string `json:"id"`
	// Status is the provider-reported lifecycle state.
	Status SubscriptionStatus `json:"status"`
	// CancelAtPeriodEnd is true when the subscription is still running but
	// already scheduled to end at the current period boundary.
	CancelAtPeriodEnd bool `json:"cancelAtPeriodEnd"`
	// CustomerID is the provider customer the subscription belongs to.
	CustomerID string `json:"customerId"`
}

// CheckoutSession is a provider-hosted payment flow. It is created, consumed
// once via the success redirect, and then discarded.
type CheckoutSession struct {
	// ID is the provider session identifier carried back on the redirect URL.
	ID string `json:"id"`
	// URL is the provider-hosted page the client should be redirected to.
	URL string `json:"url"`
	// CustomerID is the provider customer bound to the session, when known.
	CustomerID string `json:"customerId,omitempty"`
	// SiteKey is carried in the session metadata to correlate the redirect
	// back to a site.
	SiteKey string `json:"siteKey,omitempty"`
}

// CheckoutRedirect is the outcome of a checkout request. Exactly one of URL or
// SubscriptionID is set: URL when a new session was created, SubscriptionID
// when the site already holds an active subscription and no session is needed.
type CheckoutRedirect struct {
	// URL is the checkout page for client-side redirect.
	URL string `json:"url,omitempty"`
	// SubscriptionID identifies the already-active subscription.
	SubscriptionID string `json:"subscriptionId,omitempty"`
}

// AlreadyActive reports whether the checkout collapsed into a no-op because an
// active subscription already exists.
func (c CheckoutRedirect) AlreadyActive() bool { return c.SubscriptionID != "" }

// AccessState is the final state the access gate settles into after joining
// the profile flags with the derived entitlement status.
type AccessState string

const (
	AccessStateFree          AccessState = "free"
	AccessStateSetup         AccessState = "setup"
	AccessStateActive        AccessState = "active"
	AccessStatePendingCancel AccessState = "pending_cancel"
	AccessStateCanceled      AccessState = "canceled"
	AccessStateNone          AccessState = "none"
)

// AccessDecision is the gate's render decision for a site.
type AccessDecision struct {
	// State is the settled gate state.
	State AccessState `json:"state"`
	// Open is true when the site may use the paid product.
	Open bool `json:"open"`
	// Overlay is true when the blocking overlay should be shown. It is always
	// the negation of Open; it is carried explicitly for client convenience.
	Overlay bool `json:"overlay"`
}
