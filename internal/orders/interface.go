package orders

import (
	"context"
	"cordely/pkg/domain"
)

// LineDraft is one requested line of a new order, identified by the short
// product number customers see on the storefront.
type LineDraft struct {
	// ProductNo is the short per-site numeric code of the product.
	ProductNo int
	// Quantity is the requested amount; must be positive.
	Quantity int
}

//go:generate mockgen -package mockorders -source=interface.go -destination=mock/mockorders.go *
type Orders interface {
	// Place stores a new order for the site, pricing each line from the current
	// catalog and assigning the next per-site order number.
	Place(ctx context.Context, siteKey string, lines []LineDraft, pushToken string) (*domain.Order, error)
	// SiteOrders returns a page of the site's orders, newest first, optionally
	// filtered by completion state. The cursor is the opaque string returned
	// with the previous page.
	SiteOrders(ctx context.Context,
		siteKey string,
		completed *bool,
		cursor string,
		limit uint) ([]domain.Order, string, error)
	// Order fetches a single order by ID.
	Order(ctx context.Context, siteKey string, id domain.OrderID) (*domain.Order, error)
	// Complete marks an order done. The first completion enqueues the customer
	// push notification; repeating it is a no-op.
	Complete(ctx context.Context, siteKey string, id domain.OrderID) (*domain.Order, error)
}
