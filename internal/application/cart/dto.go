package cart

import (
	"github.com/google/uuid"
	catalogapp "github.com/shopline/backend/internal/application/catalog"
	"github.com/shopspring/decimal"
)

// AddItemRequest represents a request to put a product in a cart
type AddItemRequest struct {
	CartCode  string    `json:"cart_code" binding:"required,max=11"`
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// UpdateQuantityRequest represents a request to change a cart line quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartItemResponse represents a cart line in API responses
type CartItemResponse struct {
	ID       uuid.UUID                  `json:"id"`
	Product  catalogapp.ProductResponse `json:"product"`
	Quantity int                        `json:"quantity"`
	SubTotal decimal.Decimal            `json:"sub_total"`
}

// CartResponse represents a cart with its lines and total
type CartResponse struct {
	ID        uuid.UUID          `json:"id"`
	CartCode  string             `json:"cart_code"`
	Items     []CartItemResponse `json:"cartitems"`
	CartTotal decimal.Decimal    `json:"cart_total"`
}

// CartStatResponse summarizes a cart for the header badge
type CartStatResponse struct {
	ID         uuid.UUID `json:"id"`
	CartCode   string    `json:"cart_code"`
	NumOfItems int       `json:"num_of_items"`
}

// ContainsResponse answers product-in-cart checks
type ContainsResponse struct {
	ProductInCart bool `json:"product_in_cart"`
}
