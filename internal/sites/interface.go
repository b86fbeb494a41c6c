package sites

import (
	"context"
	"cordely/pkg/domain"
	"cordely/pkg/storage"
)

//go:generate mockgen -package mocksites -source=interface.go -destination=mock/mocksites.go *
type Sites interface {
	// Site returns a site's settings and billing profile.
	Site(ctx context.Context, siteKey string) (*domain.SiteBillingProfile, error)
	// Create stores a new site.
	Create(ctx context.Context, site domain.SiteBillingProfile) (*domain.SiteBillingProfile, error)
	// UpdateBranding applies a partial branding update to a site.
	UpdateBranding(ctx context.Context,
		siteKey string,
		updates storage.SiteBrandingUpdates) (*domain.SiteBillingProfile, error)
}
