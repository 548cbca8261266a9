package catalog

import (
	"context"

	"github.com/shopline/backend/internal/domain/catalog"
	"go.uber.org/zap"
)

// Presenter converts catalog entities to responses, resolving image keys
// through the image store. Other application services reuse it for the
// products nested in carts, wishlists and orders.
type Presenter struct {
	images ImageStore
	logger *zap.Logger
}

// NewPresenter creates a new Presenter. A nil store leaves image keys as-is.
func NewPresenter(images ImageStore, logger *zap.Logger) *Presenter {
	return &Presenter{images: images, logger: logger}
}

// ImageURL resolves key; failures are logged and yield an empty URL so that
// a storage outage does not break browsing
func (p *Presenter) ImageURL(ctx context.Context, key string) string {
	if key == "" || p.images == nil {
		return key
	}
	url, err := p.images.URL(ctx, key)
	if err != nil {
		p.logger.Warn("Failed to resolve image URL",
			zap.String("key", key),
			zap.Error(err))
		return ""
	}
	return url
}

// Category converts a domain Category to CategoryResponse
func (p *Presenter) Category(ctx context.Context, c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:    c.ID,
		Name:  c.Name,
		Slug:  c.Slug,
		Image: p.ImageURL(ctx, c.Image),
	}
}

// Categories converts a slice of categories
func (p *Presenter) Categories(ctx context.Context, categories []catalog.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = p.Category(ctx, &categories[i])
	}
	return out
}

// Product converts a domain Product to ProductResponse
func (p *Presenter) Product(ctx context.Context, prod *catalog.Product) ProductResponse {
	resp := ProductResponse{
		ID:          prod.ID,
		Name:        prod.Name,
		Slug:        prod.Slug,
		Description: prod.Description,
		Price:       prod.Price,
		Image:       p.ImageURL(ctx, prod.Image),
		Featured:    prod.Featured,
		CreatedAt:   prod.CreatedAt,
	}
	if prod.Category != nil {
		cat := p.Category(ctx, prod.Category)
		resp.Category = &cat
	}
	return resp
}

// Products converts a slice of products
func (p *Presenter) Products(ctx context.Context, products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = p.Product(ctx, &products[i])
	}
	return out
}
