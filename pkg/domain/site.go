package domain

import "github.com/google/uuid"

// OwnerID identifies the authenticated console owner, taken from the token
// subject.
type OwnerID uuid.UUID

// SiteBillingProfile links a site to its plan flags and payment-provider
// customer identity. One profile exists per site; it is mutated only through
// the operator path, never by the billing core.
type SiteBillingProfile struct {
	// SiteKey is the unique key of the site.
	SiteKey string `json:"siteKey"`
	// SiteName is the display name shown on the storefront.
	SiteName string `json:"siteName"`
	// LogoURL is the optional branding logo; empty means no logo uploaded.
	LogoURL string `json:"logoUrl,omitempty"`
	// IsFreePlan marks sites that are never gated, regardless of any other field.
	IsFreePlan bool `json:"isFreePlan"`
	// SetupMode marks sites still being prepared; it dominates every other flag.
	SetupMode bool `json:"setupMode"`
	// StripeCustomerID is the provider customer the site is linked to, if any.
	StripeCustomerID string `json:"stripeCustomerId,omitempty"`
	// OwnerEmail is used to let the provider create the customer record when
	// no customer linkage exists yet.
	OwnerEmail string `json:"ownerEmail,omitempty"`
}

// HasCustomer reports whether the profile is linked to a provider customer.
func (p SiteBillingProfile) HasCustomer() bool { return p.StripeCustomerID != "" }
