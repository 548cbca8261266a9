package review

import (
	"context"

	"github.com/google/uuid"
)

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	// FindByID finds a review by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)

	// FindByProduct lists a product's reviews newest first with users loaded
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]Review, error)

	// Create inserts a review; returns shared.ErrAlreadyExists when the
	// user already reviewed the product
	Create(ctx context.Context, review *Review) error

	// Save updates rating and text of an existing review
	Save(ctx context.Context, review *Review) error

	// Delete removes a review
	Delete(ctx context.Context, id uuid.UUID) error
}
