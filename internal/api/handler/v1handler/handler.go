// Package v1handler implements the v1 HTTP endpoints: public billing and
// storefront reads, the customer order flow, and the JWT-protected owner
// console operations.
package v1handler

import (
	"context"
	"cordely/internal/billing"
	"cordely/internal/catalog"
	"cordely/internal/orders"
	"cordely/internal/sites"
	"cordely/pkg/logger"
	"cordely/pkg/serrors"
	"encoding/json"
	"errors"
	"net/http"
)

// DefaultLimit is the page size used when a listing request does not provide one.
const DefaultLimit = 20

// Deps bundles the services the v1 endpoints are backed by.
type Deps struct {
	// Biller serves entitlement status, checkout and the access gate.
	Biller billing.Biller
	// Catalog serves products and sections.
	Catalog catalog.Catalog
	// Orders serves the order lifecycle.
	Orders orders.Orders
	// Sites serves site settings and branding.
	Sites sites.Sites
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	// Code is the machine-readable error category.
	Code string `json:"code"`
	// Message is a human-readable description safe to show to clients.
	Message string `json:"message"`
}

// ErrorStatus pairs an HTTP status code with its response body.
type ErrorStatus struct {
	StatusCode int
	Response   ErrorResponse
}

// NewError maps an error to its HTTP representation. Semantic kinds translate
// to their status codes; anything else is a 500 with a generic body so
// internal details never leak to clients.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatus {
	logger.Error(ctx, err.Error())

	internal := &ErrorStatus{
		StatusCode: http.StatusInternalServerError,
		Response: ErrorResponse{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		},
	}

	var serr *serrors.Error
	if !errors.As(err, &serr) || serr.Kind() == nil {
		// bare Kind sentinels map the same way as wrapped ones
		var k serrors.Kind
		if !errors.As(err, &k) {
			return internal
		}
		serr = serrors.KindOnly(k)
	}

	var status int
	var fallback string
	switch serr.Kind() {
	case serrors.ErrBadRequest:
		status, fallback = http.StatusBadRequest, "invalid request"
	case serrors.ErrUnauthorized:
		status, fallback = http.StatusUnauthorized, "unauthorized"
	case serrors.ErrNotFound:
		status, fallback = http.StatusNotFound, "resource not found"
	case serrors.ErrConflict:
		status, fallback = http.StatusConflict, "conflict"
	case serrors.ErrIdentityMissing:
		status, fallback = http.StatusUnprocessableEntity, "no billing identity on file"
	case serrors.ErrMisconfigured:
		// operator-fatal; the message stays in the logs, never in the response
		return &ErrorStatus{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrMisconfigured.Error(),
				Message: "server misconfigured",
			},
		}
	case serrors.ErrProvider:
		status, fallback = http.StatusBadGateway, "payment provider error"
	case serrors.ErrUnavailable:
		status, fallback = http.StatusServiceUnavailable, "upstream unavailable"
	default:
		return internal
	}

	message := serr.Message()
	if message == "" {
		message = fallback
	}

	return &ErrorStatus{
		StatusCode: status,
		Response: ErrorResponse{
			Code:    serr.Kind().Error(),
			Message: message,
		},
	}
}

// writeError renders err through NewError.
func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v, rejecting unknown fields so
// client typos surface as errors instead of silently dropped settings.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// Routes builds the v1 route table. Owner-console endpoints are wrapped with
// the provided auth middleware; storefront and billing endpoints stay public.
func (h *Handler) Routes(auth func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	// billing (public: the storefront polls these before any login exists)
	mux.HandleFunc("GET /v1/billing/status", h.BillingStatus)
	mux.HandleFunc("POST /v1/billing/checkout", h.BillingCheckout)
	mux.HandleFunc("GET /v1/billing/verify", h.BillingVerify)
	mux.HandleFunc("GET /v1/billing/access", h.BillingAccess)

	// storefront reads and the customer order flow (public)
	mux.HandleFunc("GET /v1/sites/{siteKey}", h.GetSite)
	mux.HandleFunc("GET /v1/sites/{siteKey}/products", h.ListProducts)
	mux.HandleFunc("GET /v1/sites/{siteKey}/sections", h.ListSections)
	mux.HandleFunc("POST /v1/sites/{siteKey}/orders", h.PlaceOrder)

	// owner console
	protected := func(pattern string, handler http.HandlerFunc) {
		mux.Handle(pattern, auth(handler))
	}
	protected("POST /v1/sites", h.CreateSite)
	protected("PATCH /v1/sites/{siteKey}", h.UpdateSiteBranding)
	protected("POST /v1/sites/{siteKey}/products", h.CreateProduct)
	protected("PATCH /v1/sites/{siteKey}/products/{id}", h.UpdateProduct)
	protected("DELETE /v1/sites/{siteKey}/products/{id}", h.DeleteProduct)
	protected("POST /v1/sites/{siteKey}/products/reorder", h.ReorderProducts)
	protected("POST /v1/sites/{siteKey}/products/describe", h.DescribeProduct)
	protected("POST /v1/sites/{siteKey}/sections", h.CreateSection)
	protected("DELETE /v1/sites/{siteKey}/sections/{id}", h.DeleteSection)
	protected("POST /v1/sites/{siteKey}/sections/reorder", h.ReorderSections)
	protected("GET /v1/sites/{siteKey}/orders", h.ListOrders)
	protected("GET /v1/sites/{siteKey}/orders/{id}", h.GetOrder)
	protected("POST /v1/sites/{siteKey}/orders/{id}/complete", h.CompleteOrder)

	return mux
}
