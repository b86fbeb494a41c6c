package storage

import (
	"context"
	"cordely/pkg/domain"
)

// ProductUpdates describes a set of optional fields that can be applied to an
// existing product during an update. Only non-nil fields will be updated.
type ProductUpdates struct {
	// Name, when provided, replaces the product name.
	Name *string
	// Price, when provided, replaces the price in minor units.
	Price *int64
	// TaxIncluded, when provided, switches the tax treatment of the price.
	TaxIncluded *bool
	// ImageURI, when provided, replaces the product image. An empty string value
	// indicates the image should be cleared (set to NULL).
	ImageURI *string
	// Description, when provided, replaces the product description.
	Description *string
	// SoldOut, when provided, toggles the sold-out flag.
	SoldOut *bool
	// SortIndex, when provided, moves the product within its menu ordering.
	SortIndex *int
	// SectionID, when provided, moves the product into another section. A zero
	// value detaches the product from any section.
	SectionID *domain.SectionID
}

// SectionUpdates describes a set of optional fields that can be applied to an
// existing section during an update. Only non-nil fields will be updated.
type SectionUpdates struct {
	// Name, when provided, replaces the section heading.
	Name *string
	// SortIndex, when provided, moves the section within the storefront layout.
	SortIndex *int
}

// CatalogStorage defines CRUD and query operations for the per-site product
// catalog (products and the sections grouping them). Implementations should
// handle soft-deletes so removed items disappear from menus without losing
// order history references.
type CatalogStorage interface {
	// StoreProducts inserts one or more products and returns the stored rows as
	// they exist in the database (including generated fields). A product with
	// no number is assigned the next per-site product number and a sort index
	// placing it at the end of the menu.
	StoreProducts(ctx context.Context, products ...domain.Product) ([]domain.Product, error)
	// SiteProducts returns all live products of a site ordered by their sort
	// index. Soft-deleted products are excluded.
	SiteProducts(ctx context.Context, siteKey string) ([]domain.Product, error)
	// UpdateProductByID updates a single product identified by its ID and
	// returns the updated row, or nil when not found. Soft-deleted rows are
	// ignored and updated_at is set automatically.
	UpdateProductByID(ctx context.Context, siteKey string, id domain.ProductID, updates ProductUpdates) (*domain.Product, error)
	// DeleteProduct performs a soft delete for the given product and returns the
	// deleted row, or nil if it was not found.
	DeleteProduct(ctx context.Context, siteKey string, id domain.ProductID) (*domain.Product, error)

	// StoreSections inserts one or more sections and returns the stored rows.
	StoreSections(ctx context.Context, sections ...domain.Section) ([]domain.Section, error)
	// SiteSections returns all live sections of a site ordered by sort index.
	SiteSections(ctx context.Context, siteKey string) ([]domain.Section, error)
	// UpdateSectionByID updates a single section identified by its ID and
	// returns the updated row, or nil when not found.
	UpdateSectionByID(ctx context.Context, siteKey string, id domain.SectionID, updates SectionUpdates) (*domain.Section, error)
	// DeleteSection soft deletes a section and detaches its live products, so
	// they fall back to the unsectioned part of the menu. Returns the deleted
	// section, or nil if it was not found.
	DeleteSection(ctx context.Context, siteKey string, id domain.SectionID) (*domain.Section, error)
}
