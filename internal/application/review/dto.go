package review

import (
	"time"

	"github.com/google/uuid"
	customerapp "github.com/shopline/backend/internal/application/customer"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopline/backend/internal/domain/review"
)

// AddReviewRequest represents a request to review a product
type AddReviewRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Review    string    `json:"review" binding:"max=5000"`
}

// UpdateReviewRequest represents a request to edit a review
type UpdateReviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Review string `json:"review" binding:"max=5000"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID        uuid.UUID                 `json:"id"`
	ProductID uuid.UUID                 `json:"product_id"`
	User      *customerapp.UserResponse `json:"user"`
	Rating    int                       `json:"rating"`
	Review    string                    `json:"review"`
	Created   time.Time                 `json:"created"`
	Updated   time.Time                 `json:"updated"`
}

// RatingResponse represents a product rating in API responses
type RatingResponse struct {
	ID            uuid.UUID `json:"id"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int       `json:"total_reviews"`
}

// ToReviewResponse converts a domain Review to ReviewResponse
func ToReviewResponse(r *review.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Review:    r.Text,
		Created:   r.CreatedAt,
		Updated:   r.UpdatedAt,
	}
	if r.User != nil {
		user := customerapp.ToUserResponse(r.User)
		resp.User = &user
	}
	return resp
}

// ToReviewResponses converts a slice of reviews
func ToReviewResponses(reviews []review.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		out[i] = ToReviewResponse(&reviews[i])
	}
	return out
}

// ToRatingResponse converts a ProductRating; nil stays nil
func ToRatingResponse(r *catalog.ProductRating) *RatingResponse {
	if r == nil {
		return nil
	}
	return &RatingResponse{
		ID:            r.ID,
		AverageRating: r.AverageRating,
		TotalReviews:  r.TotalReviews,
	}
}
