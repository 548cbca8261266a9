package wishlist

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopline/backend/internal/domain/shared"
)

// Entry is a product saved by a user
type Entry struct {
	shared.BaseEntity
	UserID    uuid.UUID
	ProductID uuid.UUID
	Product   *catalog.Product // loaded by read paths
}

// NewEntry creates a new wishlist entry
func NewEntry(userID, productID uuid.UUID) *Entry {
	return &Entry{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		ProductID:  productID,
	}
}

// Action is the outcome of a toggle
type Action string

const (
	ActionCreated Action = "created"
	ActionDeleted Action = "deleted"
)

// Repository defines the interface for wishlist persistence
type Repository interface {
	// Create inserts an entry; returns shared.ErrAlreadyExists when the pair
	// is already saved
	Create(ctx context.Context, entry *Entry) error

	// Delete removes the (user, product) entry and reports whether a row
	// was removed
	Delete(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// FindByUser lists a user's entries newest first with products loaded
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Entry, error)

	// Exists reports whether the user saved productID
	Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error)
}
