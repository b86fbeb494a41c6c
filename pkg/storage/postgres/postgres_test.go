package postgres_test

import (
	"context"
	"cordely/pkg/domain"
	"cordely/pkg/storage"
	"cordely/pkg/storage/postgres"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB, migrationsDir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) *postgres.PgSQL {
	t.Helper()
	ctx := context.Background()

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// create postgres instance
	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	// run migrations
	migrationsDir := filepath.Join("..", "..", "..", "migrations")
	err = runMigrations(pgSQL.DB.(*sql.DB), migrationsDir)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	})

	return pgSQL
}

func storeTestSite(t *testing.T, pg *postgres.PgSQL, siteKey string) *domain.SiteBillingProfile {
	t.Helper()

	site, err := pg.StoreSite(context.Background(), domain.SiteBillingProfile{
		SiteKey:    siteKey,
		SiteName:   "Test Shop",
		OwnerEmail: "owner@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, site)

	return site
}

func TestSiteStorage(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	stored := storeTestSite(t, pg, "shopA")
	require.Equal(t, "shopA", stored.SiteKey)
	require.Equal(t, "Test Shop", stored.SiteName)
	require.False(t, stored.HasCustomer())

	// fetch by key
	fetched, err := pg.SiteByKey(ctx, "shopA")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, stored, fetched)

	// unknown key returns nil without error
	missing, err := pg.SiteByKey(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)

	// branding update only touches provided fields
	newName := "Renamed Shop"
	updated, err := pg.UpdateSiteBranding(ctx, "shopA", storage.SiteBrandingUpdates{SiteName: &newName})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Renamed Shop", updated.SiteName)
	require.Equal(t, stored.OwnerEmail, updated.OwnerEmail)

	// customer linkage is written once and never overwritten
	require.NoError(t, pg.LinkCustomer(ctx, "shopA", "cus_123"))
	require.NoError(t, pg.LinkCustomer(ctx, "shopA", "cus_456"))

	fetched, err = pg.SiteByKey(ctx, "shopA")
	require.NoError(t, err)
	require.Equal(t, "cus_123", fetched.StripeCustomerID)
}

func TestCatalogStorage(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	storeTestSite(t, pg, "shopA")

	sections, err := pg.StoreSections(ctx, domain.Section{SiteKey: "shopA", Name: "Drinks", SortIndex: 0})
	require.NoError(t, err)
	require.Len(t, sections, 1)
	section := sections[0]

	products, err := pg.StoreProducts(ctx,
		domain.Product{SiteKey: "shopA", ProductNo: 1, Name: "Coffee", Price: 500, TaxIncluded: true, SortIndex: 1, SectionID: section.ID},
		domain.Product{SiteKey: "shopA", ProductNo: 2, Name: "Tea", Price: 400, SortIndex: 0},
	)
	require.NoError(t, err)
	require.Len(t, products, 2)

	// listing is ordered by sort index
	listed, err := pg.SiteProducts(ctx, "shopA")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, "Tea", listed[0].Name)
	require.Equal(t, "Coffee", listed[1].Name)

	// partial update
	soldOut := true
	updated, err := pg.UpdateProductByID(ctx, "shopA", listed[1].ID, storage.ProductUpdates{SoldOut: &soldOut})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.True(t, updated.SoldOut)
	require.Equal(t, "Coffee", updated.Name)

	// section reorder
	newIndex := 5
	movedSection, err := pg.UpdateSectionByID(ctx, "shopA", section.ID, storage.SectionUpdates{SortIndex: &newIndex})
	require.NoError(t, err)
	require.NotNil(t, movedSection)
	require.Equal(t, 5, movedSection.SortIndex)
	require.Equal(t, "Drinks", movedSection.Name)

	// deleting a section detaches its products
	deletedSection, err := pg.DeleteSection(ctx, "shopA", section.ID)
	require.NoError(t, err)
	require.NotNil(t, deletedSection)

	listed, err = pg.SiteProducts(ctx, "shopA")
	require.NoError(t, err)
	for _, product := range listed {
		require.Zero(t, product.SectionID)
	}

	live, err := pg.SiteSections(ctx, "shopA")
	require.NoError(t, err)
	require.Empty(t, live)

	// soft-deleted products disappear from listings
	deletedProduct, err := pg.DeleteProduct(ctx, "shopA", listed[0].ID)
	require.NoError(t, err)
	require.NotNil(t, deletedProduct)

	listed, err = pg.SiteProducts(ctx, "shopA")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	// repeated delete finds nothing
	again, err := pg.DeleteProduct(ctx, "shopA", deletedProduct.ID)
	require.NoError(t, err)
	require.Nil(t, again)
}

func TestStoreProductsAssignsNumbering(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	storeTestSite(t, pg, "shopA")

	first, err := pg.StoreProducts(ctx, domain.Product{SiteKey: "shopA", Name: "Coffee", Price: 500})
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, 1, first[0].ProductNo)
	require.Equal(t, 0, first[0].SortIndex)

	second, err := pg.StoreProducts(ctx, domain.Product{SiteKey: "shopA", Name: "Tea", Price: 400})
	require.NoError(t, err)
	require.Equal(t, 2, second[0].ProductNo)
	require.Equal(t, 1, second[0].SortIndex)

	// a deleted product keeps its number out of circulation, but its slot in
	// the menu is reused
	_, err = pg.DeleteProduct(ctx, "shopA", second[0].ID)
	require.NoError(t, err)

	third, err := pg.StoreProducts(ctx, domain.Product{SiteKey: "shopA", Name: "Cake", Price: 600})
	require.NoError(t, err)
	require.Equal(t, 3, third[0].ProductNo)
	require.Equal(t, 1, third[0].SortIndex)

	// numbers count per site
	storeTestSite(t, pg, "shopB")
	other, err := pg.StoreProducts(ctx, domain.Product{SiteKey: "shopB", Name: "Coffee", Price: 500})
	require.NoError(t, err)
	require.Equal(t, 1, other[0].ProductNo)
}

func TestOrderStorage(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	storeTestSite(t, pg, "shopA")

	items := []domain.OrderItem{{ProductNo: 1, Name: "Coffee", Quantity: 2, Subtotal: 1000}}

	first, err := pg.StoreOrder(ctx, domain.Order{
		SiteKey: "shopA", Items: items, TotalItems: 2, TotalPrice: 1000,
		CustomerPushToken: "token-1",
	})
	require.NoError(t, err)
	require.NotNil(t, first)
	require.Equal(t, 1, first.OrderNo)
	require.Equal(t, items, first.Items)

	second, err := pg.StoreOrder(ctx, domain.Order{
		SiteKey: "shopA", Items: items, TotalItems: 2, TotalPrice: 1000,
	})
	require.NoError(t, err)
	require.Equal(t, 2, second.OrderNo)

	// order numbers count per site
	storeTestSite(t, pg, "shopB")
	other, err := pg.StoreOrder(ctx, domain.Order{
		SiteKey: "shopB", Items: items, TotalItems: 2, TotalPrice: 1000,
	})
	require.NoError(t, err)
	require.Equal(t, 1, other.OrderNo)

	// completion transitions exactly once
	completed, err := pg.CompleteOrder(ctx, "shopA", first.ID)
	require.NoError(t, err)
	require.NotNil(t, completed)
	require.True(t, completed.Completed)

	repeat, err := pg.CompleteOrder(ctx, "shopA", first.ID)
	require.NoError(t, err)
	require.Nil(t, repeat, "second completion should not transition again")

	// completed filter
	done := true
	page, err := pg.SiteOrders(ctx, "shopA", &done, storage.OrderCursor{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	require.Equal(t, first.ID, page.Orders[0].ID)
	require.Nil(t, page.NextCursor)

	// pagination: page size 1 over two orders yields a next cursor
	page, err = pg.SiteOrders(ctx, "shopA", nil, storage.OrderCursor{}, 1)
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	require.NotNil(t, page.NextCursor)

	page, err = pg.SiteOrders(ctx, "shopA", nil, *page.NextCursor, 1)
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
}

func TestSiteOrdersCursorTiebreak(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	storeTestSite(t, pg, "shopA")

	items := []domain.OrderItem{{ProductNo: 1, Name: "Coffee", Quantity: 1, Subtotal: 500}}

	// CURRENT_TIMESTAMP is fixed for the duration of a transaction, so all
	// three orders land on the same created_at and only the id orders them
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		for range 3 {
			if _, err := s.StoreOrder(ctx, domain.Order{
				SiteKey: "shopA", Items: items, TotalItems: 1, TotalPrice: 500,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	require.NoError(t, err)

	// walking the pages one row at a time must visit every order exactly once
	seen := make(map[domain.OrderID]bool)
	cursor := storage.OrderCursor{}
	for {
		page, err := pg.SiteOrders(ctx, "shopA", nil, cursor, 1)
		require.NoError(t, err)
		require.Len(t, page.Orders, 1)
		require.False(t, seen[page.Orders[0].ID], "order %s returned twice", page.Orders[0].ID)
		seen[page.Orders[0].ID] = true

		if page.NextCursor == nil {
			break
		}
		cursor = *page.NextCursor
	}
	require.Len(t, seen, 3)
}

func TestWithTxRollback(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	storeTestSite(t, pg, "shopA")

	errBoom := errors.New("boom")
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, err := s.StoreOrder(ctx, domain.Order{
			SiteKey: "shopA", Items: []domain.OrderItem{}, TotalItems: 0, TotalPrice: 0,
		})
		require.NoError(t, err)

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	page, err := pg.SiteOrders(ctx, "shopA", nil, storage.OrderCursor{}, 10)
	require.NoError(t, err)
	require.Empty(t, page.Orders, "rolled back order should not be visible")
}
