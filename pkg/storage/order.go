package storage

import (
	"context"
	"cordely/pkg/domain"
	"time"
)

// OrderCursor marks a position in the created_at DESC, id DESC listing order.
// The id breaks ties between orders sharing a creation timestamp, so a page
// boundary inside such a group does not skip rows.
type OrderCursor struct {
	// CreatedAt is the creation time of the last row of the previous page.
	CreatedAt time.Time
	// ID is the id of the last row of the previous page.
	ID domain.OrderID
}

// IsZero reports whether the cursor marks no position (first page).
func (c OrderCursor) IsZero() bool {
	return c.CreatedAt.IsZero()
}

// SiteOrders groups a page of orders returned for a site together with an
// optional NextCursor used for pagination.
type SiteOrders struct {
	// Orders contains the current page of order records.
	Orders []domain.Order
	// NextCursor marks the position to resume the next page from. It is nil
	// when there is no next page.
	NextCursor *OrderCursor
}

// OrderStorage defines persistence and query operations for customer orders.
type OrderStorage interface {
	// StoreOrder inserts a new order, assigning the next per-site order number,
	// and returns the stored row as it exists in the database.
	StoreOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	// SiteOrders returns a page of orders for a site positioned after the
	// optional cursor, limited by the given limit. If completed is non-nil,
	// results are filtered by completion state.
	SiteOrders(ctx context.Context,
		siteKey string,
		completed *bool,
		cursor OrderCursor,
		limit uint) (SiteOrders, error)
	// OrderByID fetches an order by its ID for the given site. Returns nil when
	// not found.
	OrderByID(ctx context.Context, siteKey string, id domain.OrderID) (*domain.Order, error)
	// CompleteOrder marks an order completed. The update only applies to orders
	// that are not yet completed, so the transition happens at most once; it
	// returns the updated row when the transition happened, or nil when the
	// order was missing or already completed.
	CompleteOrder(ctx context.Context, siteKey string, id domain.OrderID) (*domain.Order, error)
}
