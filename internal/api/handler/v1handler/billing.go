package v1handler

import (
	"net/http"
)

// BillingStatus returns the derived entitlement status of a site.
func (h Handler) BillingStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.deps.Biller.Status(r.Context(), r.URL.Query().Get("siteKey"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": status})
}

// BillingCheckout opens a checkout session for a site, or reports the
// already-active subscription.
func (h Handler) BillingCheckout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SiteKey string `json:"siteKey"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	redirect, err := h.deps.Biller.Checkout(r.Context(), req.SiteKey)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if redirect.AlreadyActive() {
		writeJSON(w, http.StatusOK, map[string]any{
			"message":        "already active",
			"subscriptionId": redirect.SubscriptionID,
		})

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"url": redirect.URL})
}

// BillingVerify confirms a checkout session and returns the resulting status.
func (h Handler) BillingVerify(w http.ResponseWriter, r *http.Request) {
	verification, err := h.deps.Biller.Verify(r.Context(), r.URL.Query().Get("session_id"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, verification)
}

// BillingAccess returns the access gate decision for a site.
func (h Handler) BillingAccess(w http.ResponseWriter, r *http.Request) {
	decision, err := h.deps.Biller.Access(r.Context(),
		r.URL.Query().Get("siteKey"),
		r.URL.Query().Get("session_id"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, decision)
}
