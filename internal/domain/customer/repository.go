package customer

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail reports whether a user with email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a user; returns shared.ErrAlreadyExists on duplicate email
	Create(ctx context.Context, user *User) error
}

// AddressRepository defines the interface for address persistence
type AddressRepository interface {
	// Upsert inserts or replaces the address of address.UserID
	Upsert(ctx context.Context, address *Address) (*Address, error)

	// FindByUser finds the address of a user
	FindByUser(ctx context.Context, userID uuid.UUID) (*Address, error)
}
