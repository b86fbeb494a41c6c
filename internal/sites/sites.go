// Package sites manages site settings: the storefront branding fields owners
// can edit and the billing profile flags the rest of the system reads.
package sites

import (
	"context"
	"cordely/pkg/domain"
	"cordely/pkg/serrors"
	"cordely/pkg/storage"
	"fmt"
)

// sites is the concrete implementation of the Sites interface.
type sites struct {
	// storage is the persistence layer holding site settings.
	storage storage.Storage
}

// Site returns a site's settings and billing profile. It returns a not-found
// error when no site matches.
func (s sites) Site(ctx context.Context, siteKey string) (*domain.SiteBillingProfile, error) {
	if siteKey == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "siteKey is required")
	}

	site, err := s.storage.SiteByKey(ctx, siteKey)
	if err != nil {
		return nil, fmt.Errorf("could not get site: %w", err)
	}
	if site == nil {
		return nil, serrors.With(serrors.ErrNotFound, "site %q not found", siteKey)
	}

	return site, nil
}

// Create stores a new site. The site key must be unique; creating an existing
// key is a conflict.
func (s sites) Create(ctx context.Context, site domain.SiteBillingProfile) (*domain.SiteBillingProfile, error) {
	if site.SiteKey == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "siteKey is required")
	}
	if site.SiteName == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "siteName is required")
	}

	existing, err := s.storage.SiteByKey(ctx, site.SiteKey)
	if err != nil {
		return nil, fmt.Errorf("could not check site key: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "site %q already exists", site.SiteKey)
	}

	stored, err := s.storage.StoreSite(ctx, site)
	if err != nil {
		return nil, fmt.Errorf("could not store site: %w", err)
	}

	return stored, nil
}

// UpdateBranding applies a partial branding update to a site.
func (s sites) UpdateBranding(ctx context.Context,
	siteKey string,
	updates storage.SiteBrandingUpdates) (*domain.SiteBillingProfile, error) {
	if updates.SiteName != nil && *updates.SiteName == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "siteName must not be empty")
	}

	site, err := s.storage.UpdateSiteBranding(ctx, siteKey, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update site branding: %w", err)
	}
	if site == nil {
		return nil, serrors.With(serrors.ErrNotFound, "site %q not found", siteKey)
	}

	return site, nil
}

// New creates a new Sites service backed by the provided storage.
func New(storage storage.Storage) Sites {
	return &sites{storage: storage}
}
