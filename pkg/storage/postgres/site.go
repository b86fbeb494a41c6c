package postgres

import (
	"context"
	"cordely/pkg/domain"
	"cordely/pkg/storage"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	sitesTable = "site_settings"
)

// SiteByKey returns the billing profile stored for a site key, or nil when the
// site does not exist.
func (p *PgSQL) SiteByKey(ctx context.Context, siteKey string) (*domain.SiteBillingProfile, error) {
	var row PgSite
	found, err := p.Builder.From(sitesTable).
		Where(goqu.I("site_key").Eq(siteKey)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch site by key: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreSite inserts a new site settings row and returns the stored record.
func (p *PgSQL) StoreSite(ctx context.Context, site domain.SiteBillingProfile) (*domain.SiteBillingProfile, error) {
	var pgSite PgSite
	pgSite.FromDomain(site)

	var result PgSite
	found, err := p.Builder.Insert(sitesTable).
		Rows(pgSite).
		Returning(&PgSite{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store site into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return result.ToDomain(), nil
}

// UpdateSiteBranding applies the provided branding updates to a site.
// Only non-nil fields from updates are set and updated_at is set automatically.
func (p *PgSQL) UpdateSiteBranding(ctx context.Context,
	siteKey string,
	updates storage.SiteBrandingUpdates) (*domain.SiteBillingProfile, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.SiteName != nil {
		rec["site_name"] = *updates.SiteName
	}
	if updates.LogoURL != nil {
		if *updates.LogoURL == "" {
			// set to NULL when empty string provided
			rec["logo_url"] = goqu.L("NULL")
		} else {
			rec["logo_url"] = *updates.LogoURL
		}
	}

	var row PgSite
	found, err := p.Builder.Update(sitesTable).
		Set(rec).
		Where(goqu.I("site_key").Eq(siteKey)).
		Returning(&PgSite{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update site branding in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// LinkCustomer records the payment provider customer ID on a site that has no
// linkage yet. Rows that already carry a customer ID are not touched.
func (p *PgSQL) LinkCustomer(ctx context.Context, siteKey string, customerID string) error {
	_, err := p.Builder.Update(sitesTable).
		Set(goqu.Record{
			"stripe_customer_id": customerID,
			"updated_at":         goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("site_key").Eq(siteKey),
		goqu.I("stripe_customer_id").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not link customer in pg: %w", err)
	}

	return nil
}
