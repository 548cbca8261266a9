package wishlist

import (
	"time"

	"github.com/google/uuid"
	catalogapp "github.com/shopline/backend/internal/application/catalog"
	"github.com/shopline/backend/internal/domain/wishlist"
)

// ToggleRequest represents a request to save or unsave a product
type ToggleRequest struct {
	Email     string    `json:"email" binding:"required,email"`
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// EntryResponse represents a wishlist entry in API responses
type EntryResponse struct {
	ID      uuid.UUID                   `json:"id"`
	UserID  uuid.UUID                   `json:"user_id"`
	Product *catalogapp.ProductResponse `json:"product,omitempty"`
	Created time.Time                   `json:"created"`
}

// ToggleResponse reports the outcome of a toggle
type ToggleResponse struct {
	Action wishlist.Action `json:"action"`
	Entry  *EntryResponse  `json:"entry,omitempty"`
}

// ContainsResponse answers product-in-wishlist checks
type ContainsResponse struct {
	ProductInWishlist bool `json:"product_in_wishlist"`
}
