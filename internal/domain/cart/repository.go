package cart

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines the interface for cart persistence
type CartRepository interface {
	// GetOrCreate returns the cart for code, creating an empty one if absent
	GetOrCreate(ctx context.Context, code string) (*Cart, error)

	// FindByCode finds a cart by code with its items and products loaded
	FindByCode(ctx context.Context, code string) (*Cart, error)

	// Delete removes a cart and all its items
	Delete(ctx context.Context, cartID uuid.UUID) error

	// UpsertItem adds productID to the cart, or resets the existing line
	// to quantity 1. The returned item has its product loaded.
	UpsertItem(ctx context.Context, cartID, productID uuid.UUID) (*CartItem, error)

	// FindItemByID finds a cart line with its product loaded
	FindItemByID(ctx context.Context, id uuid.UUID) (*CartItem, error)

	// SaveItem persists quantity changes on a cart line
	SaveItem(ctx context.Context, item *CartItem) error

	// DeleteItem removes a cart line
	DeleteItem(ctx context.Context, id uuid.UUID) error

	// ContainsProduct reports whether the cart for code holds productID.
	// An unknown cart code yields false.
	ContainsProduct(ctx context.Context, code string, productID uuid.UUID) (bool, error)
}
