package postgres

import (
	"context"
	"cordely/pkg/domain"
	"cordely/pkg/storage"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	productsTable = "products"
	sectionsTable = "sections"
)

// StoreProducts inserts one or more products and returns the stored rows.
// A product without a number gets the next per-site product_no and a
// sort_index at the end of the menu, both assigned in SQL so concurrent
// creates cannot pick the same number.
func (p *PgSQL) StoreProducts(ctx context.Context, products ...domain.Product) ([]domain.Product, error) {
	if len(products) == 0 {
		return nil, nil
	}

	rows := make([]interface{}, len(products))
	assigned := 0
	for i := range products {
		var pgProduct PgProduct
		pgProduct.FromDomain(products[i])

		rec := goqu.Record{
			"site_key":     pgProduct.SiteKey,
			"name":         pgProduct.Name,
			"price":        pgProduct.Price,
			"tax_included": pgProduct.TaxIncluded,
			"image_uri":    pgProduct.ImageURI,
			"description":  pgProduct.Description,
			"sold_out":     pgProduct.SoldOut,
			"section_id":   pgProduct.SectionID,
			"product_no":   pgProduct.ProductNo,
			"sort_index":   pgProduct.SortIndex,
		}
		if pgProduct.ProductNo == 0 {
			// subqueries read pre-statement state, the offset keeps rows of a
			// single batch distinct. Numbers count deleted products too so a
			// number is never reused; the sort index only appends to the live menu
			rec["product_no"] = goqu.L(
				"(SELECT COALESCE(MAX(product_no), 0) + 1 + ? FROM products WHERE site_key = ?)",
				assigned, pgProduct.SiteKey)
			rec["sort_index"] = goqu.L(
				"(SELECT COALESCE(MAX(sort_index) + 1, 0) + ? FROM products WHERE site_key = ? AND deleted_at IS NULL)",
				assigned, pgProduct.SiteKey)
			assigned++
		}
		rows[i] = rec
	}

	var result []PgProduct
	if err := p.Builder.Insert(productsTable).
		Rows(rows...).
		Returning(&PgProduct{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store products into pg: %w", err)
	}

	return pgProductsToDomain(result), nil
}

// SiteProducts returns all live products of a site ordered by sort index.
func (p *PgSQL) SiteProducts(ctx context.Context, siteKey string) ([]domain.Product, error) {
	var rows []PgProduct
	if err := p.Builder.From(productsTable).
		Where(
			goqu.I("site_key").Eq(siteKey),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("sort_index").Asc(), goqu.I("product_no").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch site products from pg: %w", err)
	}

	return pgProductsToDomain(rows), nil
}

// UpdateProductByID updates a single product identified by its ID and returns
// the updated row. The update ignores soft-deleted rows and sets updated_at
// automatically. Only provided fields are changed.
func (p *PgSQL) UpdateProductByID(ctx context.Context,
	siteKey string,
	id domain.ProductID,
	updates storage.ProductUpdates) (*domain.Product, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Price != nil {
		rec["price"] = *updates.Price
	}
	if updates.TaxIncluded != nil {
		rec["tax_included"] = *updates.TaxIncluded
	}
	if updates.ImageURI != nil {
		if *updates.ImageURI == "" {
			// set to NULL when empty string provided
			rec["image_uri"] = goqu.L("NULL")
		} else {
			rec["image_uri"] = *updates.ImageURI
		}
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}
	if updates.SoldOut != nil {
		rec["sold_out"] = *updates.SoldOut
	}
	if updates.SortIndex != nil {
		rec["sort_index"] = *updates.SortIndex
	}
	if updates.SectionID != nil {
		if uuid.UUID(*updates.SectionID) == uuid.Nil {
			rec["section_id"] = goqu.L("NULL")
		} else {
			rec["section_id"] = uuid.UUID(*updates.SectionID)
		}
	}

	var row PgProduct
	found, err := p.Builder.Update(productsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("site_key").Eq(siteKey),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgProduct{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update product in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteProduct performs a soft delete by setting deleted_at timestamp for a
// given product id and site, returning the deleted record.
func (p *PgSQL) DeleteProduct(ctx context.Context, siteKey string, id domain.ProductID) (*domain.Product, error) {
	var row PgProduct
	found, err := p.Builder.Update(productsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("site_key").Eq(siteKey),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgProduct{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete product in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// StoreSections inserts one or more sections and returns the stored rows.
func (p *PgSQL) StoreSections(ctx context.Context, sections ...domain.Section) ([]domain.Section, error) {
	if len(sections) == 0 {
		return nil, nil
	}

	pgSections := make([]PgSection, len(sections))
	for i := range pgSections {
		pgSections[i].FromDomain(sections[i])
	}

	var result []PgSection
	if err := p.Builder.Insert(sectionsTable).
		Rows(pgSections).
		Returning(&PgSection{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store sections into pg: %w", err)
	}

	return pgSectionsToDomain(result), nil
}

// SiteSections returns all live sections of a site ordered by sort index.
func (p *PgSQL) SiteSections(ctx context.Context, siteKey string) ([]domain.Section, error) {
	var rows []PgSection
	if err := p.Builder.From(sectionsTable).
		Where(
			goqu.I("site_key").Eq(siteKey),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("sort_index").Asc(), goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch site sections from pg: %w", err)
	}

	return pgSectionsToDomain(rows), nil
}

// UpdateSectionByID updates a single section identified by its ID and returns
// the updated row. Soft-deleted rows are ignored.
func (p *PgSQL) UpdateSectionByID(ctx context.Context,
	siteKey string,
	id domain.SectionID,
	updates storage.SectionUpdates) (*domain.Section, error) {
	rec := goqu.Record{}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.SortIndex != nil {
		rec["sort_index"] = *updates.SortIndex
	}
	if len(rec) == 0 {
		return p.sectionByID(ctx, siteKey, id)
	}

	var row PgSection
	found, err := p.Builder.Update(sectionsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("site_key").Eq(siteKey),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgSection{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update section in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) sectionByID(ctx context.Context, siteKey string, id domain.SectionID) (*domain.Section, error) {
	var row PgSection
	found, err := p.Builder.From(sectionsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("site_key").Eq(siteKey),
			goqu.I("deleted_at").IsNull(),
		).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch section from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteSection soft deletes a section and detaches its live products so they
// fall back to the unsectioned part of the menu.
func (p *PgSQL) DeleteSection(ctx context.Context, siteKey string, id domain.SectionID) (*domain.Section, error) {
	var row PgSection
	found, err := p.Builder.Update(sectionsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("site_key").Eq(siteKey),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgSection{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete section in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	// detach products still pointing at the deleted section
	if _, err := p.Builder.Update(productsTable).
		Set(goqu.Record{
			"section_id": goqu.L("NULL"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("section_id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not detach products of deleted section in pg: %w", err)
	}

	return row.ToDomain(), nil
}
