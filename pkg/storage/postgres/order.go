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
	ordersTable = "orders"
)

// StoreOrder inserts a new order and returns the stored row. The per-site
// order number is assigned in SQL so concurrent inserts against the same site
// cannot pick the same number within a transaction.
func (p *PgSQL) StoreOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	var pgOrder PgOrder
	if err := pgOrder.FromDomain(order); err != nil {
		return nil, err
	}

	rec := goqu.Record{
		"site_key": pgOrder.SiteKey,
		"order_no": goqu.L("(SELECT COALESCE(MAX(order_no), 0) + 1 FROM orders WHERE site_key = ?)",
			pgOrder.SiteKey),
		"items":       []byte(pgOrder.Items),
		"total_items": pgOrder.TotalItems,
		"total_price": pgOrder.TotalPrice,
		"is_comp":     pgOrder.IsComp,
	}
	if pgOrder.PushToken.Valid {
		rec["push_token"] = pgOrder.PushToken.String
	}

	var result PgOrder
	found, err := p.Builder.Insert(ordersTable).
		Rows(rec).
		Returning(&PgOrder{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store order into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return result.ToDomain()
}

// SiteOrders returns a list of orders for a site filtered by optional cursor and limited by limit.
// Results are ordered by created_at DESC, id DESC. Returns a next cursor for pagination.
func (p *PgSQL) SiteOrders(ctx context.Context,
	siteKey string,
	completed *bool,
	cursor storage.OrderCursor,
	limit uint) (storage.SiteOrders, error) {
	w := []goqu.Expression{
		goqu.I("site_key").Eq(siteKey),
	}
	if completed != nil {
		w = append(w, goqu.I("is_comp").Eq(*completed))
	}
	if !cursor.IsZero() {
		// the id tiebreak keeps the page boundary exact when several orders
		// share the cursor timestamp
		w = append(w, goqu.Or(
			goqu.I("created_at").Lt(cursor.CreatedAt),
			goqu.And(
				goqu.I("created_at").Eq(cursor.CreatedAt),
				goqu.I("id").Lt(uuid.UUID(cursor.ID)),
			),
		))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(ordersTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgOrder
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.SiteOrders{}, fmt.Errorf("could not fetch site orders from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *storage.OrderCursor
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		last := trimmed[len(trimmed)-1]
		nextCursor = &storage.OrderCursor{
			CreatedAt: last.CreatedAt,
			ID:        domain.OrderID(last.ID),
		}
		rows = trimmed
	}

	domainRows, err := pgOrdersToDomain(rows)
	if err != nil {
		return storage.SiteOrders{}, err
	}

	return storage.SiteOrders{
		Orders:     domainRows,
		NextCursor: nextCursor,
	}, nil
}

// OrderByID returns an order by its ID for the given site.
func (p *PgSQL) OrderByID(ctx context.Context, siteKey string, id domain.OrderID) (*domain.Order, error) {
	var row PgOrder
	found, err := p.Builder.From(ordersTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("site_key").Eq(siteKey),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch order by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// CompleteOrder flips is_comp to true for an order that is not yet completed.
// The guard on is_comp makes the transition happen at most once: a second call
// matches no row and returns nil.
func (p *PgSQL) CompleteOrder(ctx context.Context, siteKey string, id domain.OrderID) (*domain.Order, error) {
	var row PgOrder
	found, err := p.Builder.Update(ordersTable).
		Set(goqu.Record{
			"is_comp":    true,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("site_key").Eq(siteKey),
		goqu.I("is_comp").IsFalse(),
	).Returning(&PgOrder{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not complete order in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
