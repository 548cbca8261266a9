package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRating is the derived review aggregate of a product. It is kept
// equal to the mean and count of the product's current reviews.
type ProductRating struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	AverageRating float64
	TotalReviews  int
}

// RatingRepository defines the interface for product rating persistence
type RatingRepository interface {
	// FindByProduct returns the rating row, or shared.ErrNotFound when the
	// product has never been reviewed
	FindByProduct(ctx context.Context, productID uuid.UUID) (*ProductRating, error)

	// LockProduct holds a row lock on the product until the surrounding
	// transaction ends, so rating recomputes for one product run one at a
	// time. Take it before writing reviews. Returns shared.ErrNotFound for
	// an unknown product.
	LockProduct(ctx context.Context, productID uuid.UUID) error

	// Recompute aggregates the product's reviews and upserts the rating row.
	// Must be called with the context of the transaction that changed the
	// reviews.
	Recompute(ctx context.Context, productID uuid.UUID) (*ProductRating, error)
}
