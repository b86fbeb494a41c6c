package v1handler

import (
	"cordely/pkg/domain"
	"cordely/pkg/storage"
	"net/http"
)

// siteResponse is the public shape of a site: branding only, never the
// billing linkage.
type siteResponse struct {
	SiteKey    string `json:"siteKey"`
	SiteName   string `json:"siteName"`
	LogoURL    string `json:"logoUrl,omitempty"`
	IsFreePlan bool   `json:"isFreePlan"`
}

func newSiteResponse(site *domain.SiteBillingProfile) siteResponse {
	return siteResponse{
		SiteKey:    site.SiteKey,
		SiteName:   site.SiteName,
		LogoURL:    site.LogoURL,
		IsFreePlan: site.IsFreePlan,
	}
}

// GetSite returns a site's branding for the storefront.
func (h Handler) GetSite(w http.ResponseWriter, r *http.Request) {
	site, err := h.deps.Sites.Site(r.Context(), r.PathValue("siteKey"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newSiteResponse(site))
}

// CreateSite stores a new site.
func (h Handler) CreateSite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SiteKey    string `json:"siteKey"`
		SiteName   string `json:"siteName"`
		LogoURL    string `json:"logoUrl"`
		IsFreePlan bool   `json:"isFreePlan"`
		SetupMode  bool   `json:"setupMode"`
		OwnerEmail string `json:"ownerEmail"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	site, err := h.deps.Sites.Create(r.Context(), domain.SiteBillingProfile{
		SiteKey:    req.SiteKey,
		SiteName:   req.SiteName,
		LogoURL:    req.LogoURL,
		IsFreePlan: req.IsFreePlan,
		SetupMode:  req.SetupMode,
		OwnerEmail: req.OwnerEmail,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, newSiteResponse(site))
}

// UpdateSiteBranding applies a partial branding update to a site. An explicit
// empty logoUrl clears the logo.
func (h Handler) UpdateSiteBranding(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SiteName *string `json:"siteName"`
		LogoURL  *string `json:"logoUrl"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	site, err := h.deps.Sites.UpdateBranding(r.Context(), r.PathValue("siteKey"), storage.SiteBrandingUpdates{
		SiteName: req.SiteName,
		LogoURL:  req.LogoURL,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, newSiteResponse(site))
}
