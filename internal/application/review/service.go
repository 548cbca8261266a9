package review

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopline/backend/internal/domain/customer"
	"github.com/shopline/backend/internal/domain/review"
	"github.com/shopline/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ErrDuplicateReview is returned when a user reviews the same product twice
var ErrDuplicateReview = shared.AlreadyExists("You already dropped a review for this product")

// ReviewService handles reviews and keeps product ratings in step with them
type ReviewService struct {
	reviewRepo  review.ReviewRepository
	ratingRepo  catalog.RatingRepository
	productRepo catalog.ProductRepository
	userRepo    customer.UserRepository
	txManager   shared.TxManager
	logger      *zap.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	reviewRepo review.ReviewRepository,
	ratingRepo catalog.RatingRepository,
	productRepo catalog.ProductRepository,
	userRepo customer.UserRepository,
	txManager shared.TxManager,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		ratingRepo:  ratingRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Add creates a review and recomputes the product rating in one transaction
func (s *ReviewService) Add(ctx context.Context, req AddReviewRequest) (*ReviewResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("Product not found")
		}
		return nil, err
	}

	email, err := customer.NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("User not found")
		}
		return nil, err
	}

	rv, err := review.NewReview(req.ProductID, user.ID, req.Rating, req.Review)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.ratingRepo.LockProduct(txCtx, rv.ProductID); err != nil {
			return err
		}
		if err := s.reviewRepo.Create(txCtx, rv); err != nil {
			if errors.Is(err, shared.ErrAlreadyExists) {
				return ErrDuplicateReview
			}
			return err
		}
		_, err := s.ratingRepo.Recompute(txCtx, rv.ProductID)
		return err
	})
	if err != nil {
		if !errors.Is(err, shared.ErrAlreadyExists) {
			s.logger.Error("Failed to add review",
				zap.String("product_id", req.ProductID.String()),
				zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("Review added",
		zap.String("review_id", rv.ID.String()),
		zap.String("product_id", rv.ProductID.String()),
		zap.Int("rating", rv.Rating))

	rv.User = user
	resp := ToReviewResponse(rv)
	return &resp, nil
}

// Update edits a review and recomputes the product rating
func (s *ReviewService) Update(ctx context.Context, id uuid.UUID, req UpdateReviewRequest) (*ReviewResponse, error) {
	var rv *review.Review
	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		var err error
		rv, err = s.findReview(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.ratingRepo.LockProduct(txCtx, rv.ProductID); err != nil {
			return err
		}
		if err := rv.Edit(req.Rating, req.Review); err != nil {
			return err
		}
		if err := s.reviewRepo.Save(txCtx, rv); err != nil {
			return err
		}
		_, err = s.ratingRepo.Recompute(txCtx, rv.ProductID)
		return err
	})
	if err != nil {
		return nil, err
	}

	resp := ToReviewResponse(rv)
	return &resp, nil
}

// Delete removes a review and recomputes the product rating
func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		rv, err := s.findReview(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.ratingRepo.LockProduct(txCtx, rv.ProductID); err != nil {
			return err
		}
		if err := s.reviewRepo.Delete(txCtx, id); err != nil {
			return err
		}
		_, err = s.ratingRepo.Recompute(txCtx, rv.ProductID)
		return err
	})
}

func (s *ReviewService) findReview(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	rv, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("Review not found")
		}
		return nil, err
	}
	return rv, nil
}
