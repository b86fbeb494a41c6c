// Package catalog manages the per-site product catalog shown on the
// storefront: products, the sections grouping them, and the persisted
// drag-reorder of both.
package catalog

import (
	"context"
	"cordely/pkg/describe"
	"cordely/pkg/domain"
	"cordely/pkg/serrors"
	"cordely/pkg/storage"
	"fmt"
)

// catalog is the concrete implementation of the Catalog interface.
type catalog struct {
	// storage is the persistence layer holding products and sections.
	storage storage.Storage
	// generator writes menu copy for DescribeProduct.
	generator describe.Generator
}

// CreateProduct stores a new product. The storage layer continues the site's
// product number sequence and appends the product to the end of the menu.
func (c catalog) CreateProduct(ctx context.Context, siteKey string, draft ProductDraft) (*domain.Product, error) {
	if siteKey == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "siteKey is required")
	}
	if draft.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "product name is required")
	}
	if draft.Price < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "price must not be negative")
	}

	stored, err := c.storage.StoreProducts(ctx, domain.Product{
		SiteKey:     siteKey,
		Name:        draft.Name,
		Price:       draft.Price,
		TaxIncluded: draft.TaxIncluded,
		ImageURI:    draft.ImageURI,
		Description: draft.Description,
		SectionID:   draft.SectionID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create product: %w", err)
	}

	return &stored[0], nil
}

// DescribeProduct generates menu copy for a product from its title and
// keywords. The generator already keeps the copy to a single short sentence.
func (c catalog) DescribeProduct(ctx context.Context, title string, keywords []string) (string, error) {
	if title == "" {
		return "", serrors.With(serrors.ErrBadRequest, "title is required")
	}
	if len(keywords) == 0 {
		return "", serrors.With(serrors.ErrBadRequest, "at least one keyword is required")
	}

	description, err := c.generator.Describe(ctx, title, keywords)
	if err != nil {
		return "", fmt.Errorf("could not generate description: %w", err)
	}

	return description, nil
}

// Products returns the site's live products in menu order.
func (c catalog) Products(ctx context.Context, siteKey string) ([]domain.Product, error) {
	products, err := c.storage.SiteProducts(ctx, siteKey)
	if err != nil {
		return nil, fmt.Errorf("could not get site products: %w", err)
	}

	return products, nil
}

// UpdateProduct applies a partial update to a product. It returns a not-found
// error when no live product matches.
func (c catalog) UpdateProduct(ctx context.Context,
	siteKey string,
	id domain.ProductID,
	updates storage.ProductUpdates) (*domain.Product, error) {
	if updates.Price != nil && *updates.Price < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "price must not be negative")
	}
	if updates.Name != nil && *updates.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "product name must not be empty")
	}

	product, err := c.storage.UpdateProductByID(ctx, siteKey, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update product: %w", err)
	}
	if product == nil {
		return nil, serrors.With(serrors.ErrNotFound, "product not found")
	}

	return product, nil
}

// DeleteProduct removes a product from the menu. Order history keeps its own
// copy of the line data, so the delete is safe for past orders.
func (c catalog) DeleteProduct(ctx context.Context, siteKey string, id domain.ProductID) error {
	product, err := c.storage.DeleteProduct(ctx, siteKey, id)
	if err != nil {
		return fmt.Errorf("could not delete product: %w", err)
	}
	if product == nil {
		return serrors.With(serrors.ErrNotFound, "product not found")
	}

	return nil
}

// CreateSection stores a new section at the end of the layout.
func (c catalog) CreateSection(ctx context.Context, siteKey string, name string) (*domain.Section, error) {
	if siteKey == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "siteKey is required")
	}
	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "section name is required")
	}

	var section *domain.Section
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.SiteSections(ctx, siteKey)
		if err != nil {
			return fmt.Errorf("could not get site sections: %w", err)
		}

		stored, err := tx.StoreSections(ctx, domain.Section{
			SiteKey:   siteKey,
			Name:      name,
			SortIndex: len(existing),
		})
		if err != nil {
			return fmt.Errorf("could not store section: %w", err)
		}
		section = &stored[0]

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create section: %w", err)
	}

	return section, nil
}

// Sections returns the site's live sections in layout order.
func (c catalog) Sections(ctx context.Context, siteKey string) ([]domain.Section, error) {
	sections, err := c.storage.SiteSections(ctx, siteKey)
	if err != nil {
		return nil, fmt.Errorf("could not get site sections: %w", err)
	}

	return sections, nil
}

// DeleteSection removes a section. The storage layer detaches its products so
// they fall back to the unsectioned part of the menu.
func (c catalog) DeleteSection(ctx context.Context, siteKey string, id domain.SectionID) error {
	section, err := c.storage.DeleteSection(ctx, siteKey, id)
	if err != nil {
		return fmt.Errorf("could not delete section: %w", err)
	}
	if section == nil {
		return serrors.With(serrors.ErrNotFound, "section not found")
	}

	return nil
}

// ReorderProducts persists a drag-reorder. The whole batch is applied in one
// transaction so the menu never shows a half-applied order.
func (c catalog) ReorderProducts(ctx context.Context, siteKey string, ids []domain.ProductID) error {
	if len(ids) == 0 {
		return serrors.With(serrors.ErrBadRequest, "product order is required")
	}

	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for i, id := range ids {
			index := i
			updated, err := tx.UpdateProductByID(ctx, siteKey, id, storage.ProductUpdates{SortIndex: &index})
			if err != nil {
				return fmt.Errorf("could not move product: %w", err)
			}
			if updated == nil {
				return serrors.With(serrors.ErrNotFound, "product not found")
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not reorder products: %w", err)
	}

	return nil
}

// ReorderSections persists a drag-reorder of the section layout.
func (c catalog) ReorderSections(ctx context.Context, siteKey string, ids []domain.SectionID) error {
	if len(ids) == 0 {
		return serrors.With(serrors.ErrBadRequest, "section order is required")
	}

	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for i, id := range ids {
			index := i
			updated, err := tx.UpdateSectionByID(ctx, siteKey, id, storage.SectionUpdates{SortIndex: &index})
			if err != nil {
				return fmt.Errorf("could not move section: %w", err)
			}
			if updated == nil {
				return serrors.With(serrors.ErrNotFound, "section not found")
			}
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not reorder sections: %w", err)
	}

	return nil
}

// New creates a new Catalog backed by the provided storage and description
// generator.
func New(storage storage.Storage, generator describe.Generator) Catalog {
	return &catalog{
		storage:   storage,
		generator: generator,
	}
}
