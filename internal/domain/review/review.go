package review

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/customer"
	"github.com/shopline/backend/internal/domain/shared"
)

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// Review is one user's rating and text for a product. A user reviews a
// product at most once.
type Review struct {
	shared.BaseEntity
	ProductID uuid.UUID
	UserID    uuid.UUID
	User      *customer.User // loaded by read paths
	Rating    int
	Text      string
}

// NewReview creates a new review
func NewReview(productID, userID uuid.UUID, rating int, text string) (*Review, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}
	return &Review{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		UserID:     userID,
		Rating:     rating,
		Text:       strings.TrimSpace(text),
	}, nil
}

// Edit replaces rating and text
func (r *Review) Edit(rating int, text string) error {
	if err := validateRating(rating); err != nil {
		return err
	}
	r.Rating = rating
	r.Text = strings.TrimSpace(text)
	r.Touch()
	return nil
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	return nil
}

// StarBreakdown counts reviews per star value
type StarBreakdown struct {
	Poor      int // 1 star
	Fair      int // 2 stars
	Good      int // 3 stars
	VeryGood  int // 4 stars
	Excellent int // 5 stars
}

// CountStars builds the star breakdown of reviews
func CountStars(reviews []Review) StarBreakdown {
	var b StarBreakdown
	for _, r := range reviews {
		switch r.Rating {
		case 1:
			b.Poor++
		case 2:
			b.Fair++
		case 3:
			b.Good++
		case 4:
			b.VeryGood++
		case 5:
			b.Excellent++
		}
	}
	return b
}
