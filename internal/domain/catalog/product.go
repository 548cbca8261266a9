package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaxNameLength bounds product and category names
const MaxNameLength = 100

// maxPrice is the largest value a decimal(10,2) column holds
var maxPrice = decimal.RequireFromString("99999999.99")

// Product is a sellable catalog item
type Product struct {
	shared.BaseEntity
	Name        string
	Description string
	Price       decimal.Decimal
	Slug        string
	Image       string // object storage key
	Featured    bool
	CategoryID  *uuid.UUID
	Category    *Category // populated by read paths that join the category
}

// NewProduct creates a new product with its price rounded to cents
func NewProduct(name, description string, price decimal.Decimal, categoryID *uuid.UUID) (*Product, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price.Round(2),
		CategoryID:  categoryID,
	}, nil
}

// AssignSlug sets the slug on first save only
func (p *Product) AssignSlug(slug string) {
	if p.Slug == "" {
		p.Slug = slug
	}
}

// SetFeatured marks the product for the storefront landing list
func (p *Product) SetFeatured(featured bool) {
	p.Featured = featured
	p.Touch()
}

// SetImage sets the object storage key of the product image
func (p *Product) SetImage(key string) {
	p.Image = strings.TrimSpace(key)
	p.Touch()
}

// PriceInCents converts the unit price to the smallest currency unit
func (p *Product) PriceInCents() int64 {
	return p.Price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if price.GreaterThan(maxPrice) {
		return shared.NewDomainError("INVALID_PRICE", "Price exceeds the maximum allowed value")
	}
	return nil
}
