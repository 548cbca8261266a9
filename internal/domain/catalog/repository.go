package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySlug finds a product by slug with its category loaded
	FindBySlug(ctx context.Context, slug string) (*Product, error)

	// FindFeatured lists featured products; limit <= 0 means no limit
	FindFeatured(ctx context.Context, limit int) ([]Product, error)

	// FindByCategory lists the products of a category, optionally excluding one
	FindByCategory(ctx context.Context, categoryID uuid.UUID, exclude *uuid.UUID) ([]Product, error)

	// Search matches query case-insensitively against product name,
	// description and category name
	Search(ctx context.Context, query string) ([]Product, error)

	// ExistsBySlug reports whether a product already uses slug
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Save(ctx context.Context, category *Category) error
}
