package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderID uniquely identifies an order document.
type OrderID uuid.UUID

func (id OrderID) String() string { return uuid.UUID(id).String() }

func (id OrderID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *OrderID) UnmarshalText(data []byte) error {
	u, err := uuid.ParseBytes(data)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = OrderID(u)

	return nil
}

// OrderItem is one line of an order.
type OrderItem struct {
	// ProductNo is the short numeric code of the ordered product.
	ProductNo int `json:"productNo"`
	// Name is the product name at order time.
	Name string `json:"name"`
	// Quantity is the ordered amount.
	Quantity int `json:"quantity"`
	// Subtotal is the line total in minor units.
	Subtotal int64 `json:"subtotal"`
}

// Order is a customer order placed against a site.
type Order struct {
	// ID is the unique identifier of the order.
	ID OrderID `json:"id"`
	// SiteKey is the site the order was placed against.
	SiteKey string `json:"siteKey"`

	// OrderNo is the short per-site number called out to the customer.
	OrderNo int `json:"orderNo"`
	// Items are the order lines.
	Items []OrderItem `json:"items"`
	// TotalItems is the total quantity across all lines.
	TotalItems int `json:"totalItems"`
	// TotalPrice is the order total in minor units.
	TotalPrice int64 `json:"totalPrice"`

	// Completed is the completion flag. Its false→true transition triggers the
	// customer push notification; the transition happens at most once per order.
	Completed bool `json:"isComp"`
	// CustomerPushToken is the push token the ordering customer registered, if
	// any. Consumed by the order-completed notifier.
	CustomerPushToken string `json:"-"`

	// CreatedAt is when the order was placed.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the order was last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}
