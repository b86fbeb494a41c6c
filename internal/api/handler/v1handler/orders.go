package v1handler

import (
	"cordely/internal/orders"
	"cordely/pkg/domain"
	"cordely/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// PlaceOrder stores a new customer order priced from the current menu.
func (h Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Items []struct {
			ProductNo int `json:"productNo"`
			Quantity  int `json:"quantity"`
		} `json:"items"`
		PushToken string `json:"pushToken"`
	}
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	lines := make([]orders.LineDraft, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, orders.LineDraft{ProductNo: item.ProductNo, Quantity: item.Quantity})
	}

	order, err := h.deps.Orders.Place(r.Context(), r.PathValue("siteKey"), lines, req.PushToken)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// ListOrders returns a page of the site's orders, newest first.
func (h Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var completed *bool
	if raw := query.Get("completed"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid completed filter"))

			return
		}
		completed = &value
	}

	limit := uint(DefaultLimit)
	if raw := query.Get("limit"); raw != "" {
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit"))

			return
		}
		limit = uint(value)
	}

	page, nextCursor, err := h.deps.Orders.SiteOrders(r.Context(),
		r.PathValue("siteKey"),
		completed,
		query.Get("cursor"),
		limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	resp := map[string]any{"items": page}
	if nextCursor != "" {
		resp["nextCursor"] = nextCursor
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetOrder returns a single order.
func (h Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid order id"))

		return
	}

	order, err := h.deps.Orders.Order(r.Context(), r.PathValue("siteKey"), domain.OrderID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, order)
}

// CompleteOrder marks an order done. The first completion queues the customer
// push; repeating it just returns the order unchanged.
func (h Handler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid order id"))

		return
	}

	order, err := h.deps.Orders.Complete(r.Context(), r.PathValue("siteKey"), domain.OrderID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, order)
}
