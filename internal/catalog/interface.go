package catalog

import (
	"context"
	"cordely/pkg/domain"
	"cordely/pkg/storage"
)

// ProductDraft carries the owner-provided fields of a new product. Numbering
// and sort position are assigned by the storage layer.
type ProductDraft struct {
	// Name is the display name; required.
	Name string
	// Price is the price in minor units.
	Price int64
	// TaxIncluded is true when Price already contains consumption tax.
	TaxIncluded bool
	// ImageURI points at the uploaded product image; may be empty.
	ImageURI string
	// Description is the optional storefront description text.
	Description string
	// SectionID groups the product under a section; zero means unsectioned.
	SectionID domain.SectionID
}

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	// CreateProduct stores a new product, assigning the next per-site product
	// number and placing it at the end of the menu.
	CreateProduct(ctx context.Context, siteKey string, draft ProductDraft) (*domain.Product, error)
	// Products returns the site's live products in menu order.
	Products(ctx context.Context, siteKey string) ([]domain.Product, error)
	// UpdateProduct applies a partial update to a product.
	UpdateProduct(ctx context.Context,
		siteKey string,
		id domain.ProductID,
		updates storage.ProductUpdates) (*domain.Product, error)
	// DeleteProduct removes a product from the menu.
	DeleteProduct(ctx context.Context, siteKey string, id domain.ProductID) error
	// DescribeProduct generates single-sentence menu copy for a product from
	// its title and keywords.
	DescribeProduct(ctx context.Context, title string, keywords []string) (string, error)
	// CreateSection stores a new section at the end of the layout.
	CreateSection(ctx context.Context, siteKey string, name string) (*domain.Section, error)
	// Sections returns the site's live sections in layout order.
	Sections(ctx context.Context, siteKey string) ([]domain.Section, error)
	// DeleteSection removes a section; its products fall back to the
	// unsectioned part of the menu.
	DeleteSection(ctx context.Context, siteKey string, id domain.SectionID) error
	// ReorderProducts persists a drag-reorder: each product gets the sort index
	// of its position in ids.
	ReorderProducts(ctx context.Context, siteKey string, ids []domain.ProductID) error
	// ReorderSections persists a drag-reorder of the section layout.
	ReorderSections(ctx context.Context, siteKey string, ids []domain.SectionID) error
}
