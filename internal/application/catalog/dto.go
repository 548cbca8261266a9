package catalog

import (
	"time"

	"github.com/google/uuid"
	reviewapp "github.com/shopline/backend/internal/application/review"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Image string `json:"image" binding:"max=255"`
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=100"`
	Description string          `json:"description" binding:"max=5000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	Image       string          `json:"image" binding:"max=255"`
	Featured    bool            `json:"featured"`
}

// CategoryResponse represents a category in list responses
type CategoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Image string    `json:"image"`
}

// CategoryDetailResponse is a category with its products
type CategoryDetailResponse struct {
	CategoryResponse
	Products []ProductResponse `json:"products"`
}

// ProductResponse represents a product in list responses
type ProductResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Image       string            `json:"image"`
	Featured    bool              `json:"featured"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ProductDetailResponse is a product with its reviews, rating, related
// products and star breakdown
type ProductDetailResponse struct {
	ProductResponse
	Reviews         []reviewapp.ReviewResponse `json:"reviews"`
	Rating          *reviewapp.RatingResponse  `json:"rating"`
	SimilarProducts []ProductResponse          `json:"similar_products"`
	PoorReview      int                        `json:"poor_review"`
	FairReview      int                        `json:"fair_review"`
	GoodReview      int                        `json:"good_review"`
	VeryGoodReview  int                        `json:"very_good_review"`
	ExcellentReview int                        `json:"excellent_review"`
}
