package cart

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaxCodeLength is the longest cart code a client may present
const MaxCodeLength = 11

// Cart is an anonymous shopping cart addressed by a client-generated code
type Cart struct {
	shared.BaseEntity
	Code  string
	Items []CartItem
}

// CartItem is a product line in a cart
type CartItem struct {
	shared.BaseEntity
	CartID    uuid.UUID
	ProductID uuid.UUID
	Product   *catalog.Product // loaded by read paths
	Quantity  int
}

// NewCart creates an empty cart for code
func NewCart(code string) (*Cart, error) {
	code, err := NormalizeCode(code)
	if err != nil {
		return nil, err
	}
	return &Cart{
		BaseEntity: shared.NewBaseEntity(),
		Code:       code,
	}, nil
}

// NormalizeCode trims and validates a cart code
func NormalizeCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", shared.NewDomainError("INVALID_CART_CODE", "Cart code is required")
	}
	if len(code) > MaxCodeLength {
		return "", shared.NewDomainError("INVALID_CART_CODE", "Cart code cannot exceed 11 characters")
	}
	return code, nil
}

// NewCartItem creates a cart line with quantity 1
func NewCartItem(cartID, productID uuid.UUID) *CartItem {
	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		CartID:     cartID,
		ProductID:  productID,
		Quantity:   1,
	}
}

// SetQuantity changes the line quantity
func (i *CartItem) SetQuantity(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	i.Quantity = quantity
	i.Touch()
	return nil
}

// SubTotal is unit price times quantity; zero when the product is not loaded
func (i *CartItem) SubTotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Total sums the line subtotals
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].SubTotal())
	}
	return total
}

// ItemCount sums the line quantities
func (c *Cart) ItemCount() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}
