package storage

import (
	"context"
	"cordely/pkg/domain"
)

// SiteBrandingUpdates describes the set of optional branding fields that can be
// applied to a site's settings. Only non-nil fields will be updated.
type SiteBrandingUpdates struct {
	// SiteName, when provided, replaces the display name of the site.
	SiteName *string
	// LogoURL, when provided, replaces the logo URL. An empty string value
	// indicates the logo should be cleared (set to NULL).
	LogoURL *string
}

// SiteStorage defines persistence operations for site settings and the billing
// profile fields embedded in them.
type SiteStorage interface {
	// SiteByKey fetches a site's billing profile by its site key. Returns nil
	// when the site does not exist.
	SiteByKey(ctx context.Context, siteKey string) (*domain.SiteBillingProfile, error)
	// StoreSite inserts a new site settings row and returns the stored record as
	// it exists in the database.
	StoreSite(ctx context.Context, site domain.SiteBillingProfile) (*domain.SiteBillingProfile, error)
	// UpdateSiteBranding applies the provided branding updates to a site and
	// returns the updated record, or nil when the site was not found.
	UpdateSiteBranding(ctx context.Context, siteKey string, updates SiteBrandingUpdates) (*domain.SiteBillingProfile, error)
	// LinkCustomer records the payment provider customer ID on a site that does
	// not have one yet. Sites that already carry a customer ID are left
	// untouched so an established billing linkage is never overwritten.
	LinkCustomer(ctx context.Context, siteKey string, customerID string) error
}
