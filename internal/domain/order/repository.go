package order

import "context"

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// ExistsByCheckoutID reports whether an order exists for the session
	ExistsByCheckoutID(ctx context.Context, checkoutID string) (bool, error)

	// Create inserts the order with its items; returns
	// shared.ErrAlreadyExists when the session already has an order. That
	// outcome leaves the caller's transaction usable.
	Create(ctx context.Context, order *Order) error

	// FindByEmail lists a customer's orders newest first with items and
	// products loaded
	FindByEmail(ctx context.Context, email string) ([]Order, error)
}
