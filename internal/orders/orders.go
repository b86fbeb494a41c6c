// Package orders handles the order lifecycle: placing customer orders against
// the current catalog, listing them on the owner console, and the completion
// transition that notifies the waiting customer.
package orders

import (
	"context"
	"cordely/internal/config"
	"cordely/pkg/domain"
	"cordely/pkg/serrors"
	"cordely/pkg/storage"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Options configure order listing and the completion push job.
type Options struct {
	// PageSize is the listing page size used when the caller does not provide one.
	PageSize uint
	// PushMaxAttempts caps retries of the order-completed push job.
	PushMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PageSize:        cfg.Orders.PageSize,
		PushMaxAttempts: cfg.Orders.PushMaxAttempts,
	}
}

// orders is the concrete implementation of the Orders interface.
type orders struct {
	// options holds runtime configuration for listing and job enqueueing.
	options Options
	// storage is the persistence layer holding orders and the catalog they
	// price against.
	storage storage.Storage
}

// Place stores a new order. Lines are priced from the live catalog inside the
// same transaction that stores the order, so a concurrent price change cannot
// split an order between old and new prices.
func (o orders) Place(ctx context.Context, siteKey string, lines []LineDraft, pushToken string) (*domain.Order, error) {
	if siteKey == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "siteKey is required")
	}
	if len(lines) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "order must contain at least one line")
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, serrors.With(serrors.ErrBadRequest, "quantity must be positive")
		}
	}

	var order *domain.Order
	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		products, err := tx.SiteProducts(ctx, siteKey)
		if err != nil {
			return fmt.Errorf("could not get site products: %w", err)
		}

		byNo := make(map[int]domain.Product, len(products))
		for _, p := range products {
			byNo[p.ProductNo] = p
		}

		items := make([]domain.OrderItem, 0, len(lines))
		totalItems := 0
		var totalPrice int64
		for _, line := range lines {
			product, ok := byNo[line.ProductNo]
			if !ok {
				return serrors.With(serrors.ErrBadRequest, "product %d is not on the menu", line.ProductNo)
			}
			if product.SoldOut {
				return serrors.With(serrors.ErrConflict, "product %d is sold out", line.ProductNo)
			}

			subtotal := product.InclusivePrice() * int64(line.Quantity)
			items = append(items, domain.OrderItem{
				ProductNo: line.ProductNo,
				Name:      product.Name,
				Quantity:  line.Quantity,
				Subtotal:  subtotal,
			})
			totalItems += line.Quantity
			totalPrice += subtotal
		}

		stored, err := tx.StoreOrder(ctx, domain.Order{
			SiteKey:           siteKey,
			Items:             items,
			TotalItems:        totalItems,
			TotalPrice:        totalPrice,
			CustomerPushToken: pushToken,
		})
		if err != nil {
			return fmt.Errorf("could not store order: %w", err)
		}
		order = stored

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not place order: %w", err)
	}

	return order, nil
}

// parseCursor decodes an opaque listing cursor produced by encodeCursor.
func parseCursor(cursor string) (storage.OrderCursor, error) {
	ts, rawID, found := strings.Cut(cursor, "_")
	if !found {
		return storage.OrderCursor{}, serrors.With(serrors.ErrBadRequest, "invalid cursor")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return storage.OrderCursor{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return storage.OrderCursor{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return storage.OrderCursor{CreatedAt: createdAt, ID: domain.OrderID(id)}, nil
}

// encodeCursor renders a storage cursor as the opaque string handed to
// clients. The timestamp keeps nanoseconds so the resume position compares
// equal to the stored row.
func encodeCursor(cursor storage.OrderCursor) string {
	return cursor.CreatedAt.Format(time.RFC3339Nano) + "_" + uuid.UUID(cursor.ID).String()
}

// SiteOrders returns a page of the site's orders, newest first. It supports
// cursor-based pagination using an opaque cursor string and returns the next
// cursor when more results are available.
func (o orders) SiteOrders(ctx context.Context,
	siteKey string,
	completed *bool,
	cursor string,
	limit uint) ([]domain.Order, string, error) {
	var pos storage.OrderCursor
	if cursor != "" {
		p, err := parseCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		pos = p
	}
	if limit == 0 {
		limit = o.options.PageSize
	}

	page, err := o.storage.SiteOrders(ctx, siteKey, completed, pos, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get site orders: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = encodeCursor(*page.NextCursor)
	}

	return page.Orders, next, nil
}

// Order fetches a single order by ID. It returns a not-found error when no
// matching order exists.
func (o orders) Order(ctx context.Context, siteKey string, id domain.OrderID) (*domain.Order, error) {
	order, err := o.storage.OrderByID(ctx, siteKey, id)
	if err != nil {
		return nil, fmt.Errorf("could not get order: %w", err)
	}
	if order == nil {
		return nil, serrors.With(serrors.ErrNotFound, "order not found")
	}

	return order, nil
}

// Complete marks an order done. The storage layer applies the transition at
// most once; only that first transition enqueues the customer push, in the
// same transaction, so a crash cannot complete the order without queueing the
// notification.
func (o orders) Complete(ctx context.Context, siteKey string, id domain.OrderID) (*domain.Order, error) {
	var order *domain.Order
	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		transitioned, err := tx.CompleteOrder(ctx, siteKey, id)
		if err != nil {
			return fmt.Errorf("could not complete order: %w", err)
		}

		if transitioned == nil {
			// either the order does not exist or it was already completed
			existing, err := tx.OrderByID(ctx, siteKey, id)
			if err != nil {
				return fmt.Errorf("could not get order: %w", err)
			}
			if existing == nil {
				return serrors.With(serrors.ErrNotFound, "order not found")
			}
			order = existing

			return nil
		}
		order = transitioned

		// customers without a registered token never get a push
		if transitioned.CustomerPushToken == "" {
			return nil
		}

		if _, err := tx.AddJob(ctx, OrderCompletedArgs{
			SiteKey:     siteKey,
			OrderID:     uuid.UUID(id).String(),
			maxAttempts: o.options.PushMaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add push job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not complete order: %w", err)
	}

	return order, nil
}

// New creates a new Orders service backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Orders {
	return &orders{
		options: options,
		storage: storage,
	}
}
