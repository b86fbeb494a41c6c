package postgres

import (
	"cordely/pkg/domain"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PgSite struct {
	SiteKey  string `db:"site_key"`
	SiteName string `db:"site_name"`

	LogoURL          sql.NullString `db:"logo_url"`
	IsFreePlan       bool           `db:"is_free_plan"`
	SetupMode        bool           `db:"setup_mode"`
	StripeCustomerID sql.NullString `db:"stripe_customer_id"`
	OwnerEmail       sql.NullString `db:"owner_email"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgSite) ToDomain() *domain.SiteBillingProfile {
	return &domain.SiteBillingProfile{
		SiteKey:          p.SiteKey,
		SiteName:         p.SiteName,
		LogoURL:          p.LogoURL.String,
		IsFreePlan:       p.IsFreePlan,
		SetupMode:        p.SetupMode,
		StripeCustomerID: p.StripeCustomerID.String,
		OwnerEmail:       p.OwnerEmail.String,
	}
}

func (p *PgSite) FromDomain(site domain.SiteBillingProfile) {
	*p = PgSite{
		SiteKey:          site.SiteKey,
		SiteName:         site.SiteName,
		LogoURL:          nullString(site.LogoURL),
		IsFreePlan:       site.IsFreePlan,
		SetupMode:        site.SetupMode,
		StripeCustomerID: nullString(site.StripeCustomerID),
		OwnerEmail:       nullString(site.OwnerEmail),
	}
}

type PgProduct struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	SiteKey string    `db:"site_key"`

	ProductNo   int            `db:"product_no"`
	Name        string         `db:"name"`
	Price       int64          `db:"price"`
	TaxIncluded bool           `db:"tax_included"`
	ImageURI    sql.NullString `db:"image_uri"`
	Description sql.NullString `db:"description"`
	SoldOut     bool           `db:"sold_out"`
	SortIndex   int            `db:"sort_index"`
	SectionID   uuid.NullUUID  `db:"section_id"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgProduct) ToDomain() *domain.Product {
	return &domain.Product{
		ID:          domain.ProductID(p.ID),
		SiteKey:     p.SiteKey,
		ProductNo:   p.ProductNo,
		Name:        p.Name,
		Price:       p.Price,
		TaxIncluded: p.TaxIncluded,
		ImageURI:    p.ImageURI.String,
		Description: p.Description.String,
		SoldOut:     p.SoldOut,
		SortIndex:   p.SortIndex,
		SectionID:   domain.SectionID(p.SectionID.UUID),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgProduct) FromDomain(product domain.Product) {
	*p = PgProduct{
		ID:          uuid.UUID(product.ID),
		SiteKey:     product.SiteKey,
		ProductNo:   product.ProductNo,
		Name:        product.Name,
		Price:       product.Price,
		TaxIncluded: product.TaxIncluded,
		ImageURI:    nullString(product.ImageURI),
		Description: nullString(product.Description),
		SoldOut:     product.SoldOut,
		SortIndex:   product.SortIndex,
		SectionID: uuid.NullUUID{
			UUID:  uuid.UUID(product.SectionID),
			Valid: product.SectionID != domain.SectionID(uuid.Nil),
		},
		CreatedAt: product.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  product.UpdatedAt,
			Valid: !product.UpdatedAt.IsZero(),
		},
	}
}

type PgSection struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	SiteKey string    `db:"site_key"`

	Name      string `db:"name"`
	SortIndex int    `db:"sort_index"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgSection) ToDomain() *domain.Section {
	return &domain.Section{
		ID:        domain.SectionID(p.ID),
		SiteKey:   p.SiteKey,
		Name:      p.Name,
		SortIndex: p.SortIndex,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgSection) FromDomain(section domain.Section) {
	*p = PgSection{
		ID:        uuid.UUID(section.ID),
		SiteKey:   section.SiteKey,
		Name:      section.Name,
		SortIndex: section.SortIndex,
		CreatedAt: section.CreatedAt,
	}
}

type PgOrder struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	SiteKey string    `db:"site_key"`

	OrderNo    int             `db:"order_no" goqu:"skipinsert"`
	Items      json.RawMessage `db:"items"`
	TotalItems int             `db:"total_items"`
	TotalPrice int64           `db:"total_price"`

	IsComp    bool           `db:"is_comp"`
	PushToken sql.NullString `db:"push_token"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgOrder) ToDomain() (*domain.Order, error) {
	var items []domain.OrderItem
	if err := json.Unmarshal(p.Items, &items); err != nil {
		return nil, fmt.Errorf("could not unmarshal order items: %w", err)
	}

	return &domain.Order{
		ID:                domain.OrderID(p.ID),
		SiteKey:           p.SiteKey,
		OrderNo:           p.OrderNo,
		Items:             items,
		TotalItems:        p.TotalItems,
		TotalPrice:        p.TotalPrice,
		Completed:         p.IsComp,
		CustomerPushToken: p.PushToken.String,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt.Time,
	}, nil
}

func (p *PgOrder) FromDomain(order domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("could not marshal order items: %w", err)
	}

	*p = PgOrder{
		ID:         uuid.UUID(order.ID),
		SiteKey:    order.SiteKey,
		OrderNo:    order.OrderNo,
		Items:      items,
		TotalItems: order.TotalItems,
		TotalPrice: order.TotalPrice,
		IsComp:     order.Completed,
		PushToken:  nullString(order.CustomerPushToken),
		CreatedAt:  order.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  order.UpdatedAt,
			Valid: !order.UpdatedAt.IsZero(),
		},
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func pgProductsToDomain(products []PgProduct) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for i := range products {
		out = append(out, *products[i].ToDomain())
	}

	return out
}

func pgSectionsToDomain(sections []PgSection) []domain.Section {
	out := make([]domain.Section, 0, len(sections))
	for i := range sections {
		out = append(out, *sections[i].ToDomain())
	}

	return out
}

func pgOrdersToDomain(orders []PgOrder) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(orders))
	for i := range orders {
		d, err := orders[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
