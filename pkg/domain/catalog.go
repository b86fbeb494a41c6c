package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ProductID uniquely identifies a product document.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ProductID uuid.UUID

// SectionID uniquely identifies a menu section.
type SectionID uuid.UUID

func (id ProductID) String() string { return uuid.UUID(id).String() }

func (id ProductID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *ProductID) UnmarshalText(data []byte) error {
	u, err := uuid.ParseBytes(data)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = ProductID(u)

	return nil
}

func (id SectionID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the zero SectionID as an empty string so unsectioned
// products don't carry a nil UUID in responses.
func (id SectionID) MarshalText() ([]byte, error) {
	if uuid.UUID(id) == uuid.Nil {
		return []byte{}, nil
	}

	return uuid.UUID(id).MarshalText()
}

func (id *SectionID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*id = SectionID{}

		return nil
	}

	u, err := uuid.ParseBytes(data)
	if err != nil {
		return err //nolint: wrapcheck
	}
	*id = SectionID(u)

	return nil
}

// TaxRate is the consumption tax rate applied when converting between
// tax-inclusive and tax-exclusive prices on the owner console.
const TaxRate = 0.10

// Product is a single sellable item on a site's storefront.
type Product struct {
	// ID is the unique identifier of the product document.
	ID ProductID `json:"id"`
	// SiteKey is the site the product belongs to.
	SiteKey string `json:"siteKey"`

	// ProductNo is the short per-site numeric code shown to customers.
	ProductNo int `json:"productNo"`
	// Name is the display name.
	Name string `json:"name"`
	// Price is the price in minor units. Whether it includes tax is
	// determined by TaxIncluded.
	Price int64 `json:"price"`
	// TaxIncluded is true when Price already contains consumption tax.
	TaxIncluded bool `json:"taxIncluded"`
	// ImageURI points at the uploaded product image; may be empty.
	ImageURI string `json:"imageUri,omitempty"`
	// Description is the optional storefront description text.
	Description string `json:"description,omitempty"`
	// SoldOut hides the product from ordering without deleting it.
	SoldOut bool `json:"soldOut"`
	// SortIndex is the position within the storefront grid; persisted on
	// drag-reorder.
	SortIndex int `json:"sortIndex"`
	// SectionID groups the product under a section; zero means unsectioned.
	SectionID SectionID `json:"sectionId,omitempty"`

	// CreatedAt is when the product was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the product was last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}

// InclusivePrice returns the tax-inclusive price regardless of how the
// product's price is stored.
func (p Product) InclusivePrice() int64 {
	if p.TaxIncluded {
		return p.Price
	}

	return int64(math.Round(float64(p.Price) * (1 + TaxRate)))
}

// ExclusivePrice returns the tax-exclusive price regardless of how the
// product's price is stored.
func (p Product) ExclusivePrice() int64 {
	if !p.TaxIncluded {
		return p.Price
	}

	return int64(math.Round(float64(p.Price) / (1 + TaxRate)))
}

// Section is a named group of products with its own position in the
// storefront layout.
type Section struct {
	// ID is the unique identifier of the section.
	ID SectionID `json:"id"`
	// SiteKey is the site the section belongs to.
	SiteKey string `json:"siteKey"`
	// Name is the section heading.
	Name string `json:"name"`
	// SortIndex is the position of the section; persisted on drag-reorder.
	SortIndex int `json:"sortIndex"`

	// CreatedAt is when the section was created.
	CreatedAt time.Time `json:"createdAt"`
}
