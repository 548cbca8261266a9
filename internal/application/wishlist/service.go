package wishlist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	catalogapp "github.com/shopline/backend/internal/application/catalog"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopline/backend/internal/domain/customer"
	"github.com/shopline/backend/internal/domain/shared"
	"github.com/shopline/backend/internal/domain/wishlist"
	"go.uber.org/zap"
)

// WishlistService handles users' saved products
type WishlistService struct {
	repo        wishlist.Repository
	productRepo catalog.ProductRepository
	userRepo    customer.UserRepository
	presenter   *catalogapp.Presenter
	logger      *zap.Logger
}

// NewWishlistService creates a new WishlistService
func NewWishlistService(
	repo wishlist.Repository,
	productRepo catalog.ProductRepository,
	userRepo customer.UserRepository,
	presenter *catalogapp.Presenter,
	logger *zap.Logger,
) *WishlistService {
	return &WishlistService{
		repo:        repo,
		productRepo: productRepo,
		userRepo:    userRepo,
		presenter:   presenter,
		logger:      logger,
	}
}

// Toggle removes the product from the user's wishlist if present, otherwise
// adds it
func (s *WishlistService) Toggle(ctx context.Context, req ToggleRequest) (*ToggleResponse, error) {
	user, err := s.findUser(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("Product not found")
		}
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, user.ID, product.ID)
	if err != nil {
		return nil, err
	}
	if deleted {
		s.logger.Debug("Wishlist entry removed",
			zap.String("user_id", user.ID.String()),
			zap.String("product_id", product.ID.String()))
		return &ToggleResponse{Action: wishlist.ActionDeleted}, nil
	}

	entry := wishlist.NewEntry(user.ID, product.ID)
	if err := s.repo.Create(ctx, entry); err != nil {
		// a concurrent toggle saved the same pair first
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.AlreadyExists("Product is already in the wishlist")
		}
		return nil, err
	}
	entry.Product = product

	resp := s.toEntryResponse(ctx, entry)
	return &ToggleResponse{Action: wishlist.ActionCreated, Entry: &resp}, nil
}

// List returns the user's wishlist newest first
func (s *WishlistService) List(ctx context.Context, email string) ([]EntryResponse, error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	out := make([]EntryResponse, len(entries))
	for i := range entries {
		out[i] = s.toEntryResponse(ctx, &entries[i])
	}
	return out, nil
}

// Contains reports whether the user saved productID
func (s *WishlistService) Contains(ctx context.Context, email string, productID uuid.UUID) (bool, error) {
	user, err := s.findUser(ctx, email)
	if err != nil {
		return false, err
	}
	return s.repo.Exists(ctx, user.ID, productID)
}

func (s *WishlistService) findUser(ctx context.Context, email string) (*customer.User, error) {
	email, err := customer.NormalizeEmail(email)
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
	return user, nil
}

func (s *WishlistService) toEntryResponse(ctx context.Context, e *wishlist.Entry) EntryResponse {
	resp := EntryResponse{
		ID:      e.ID,
		UserID:  e.UserID,
		Created: e.CreatedAt,
	}
	if e.Product != nil {
		p := s.presenter.Product(ctx, e.Product)
		resp.Product = &p
	}
	return resp
}
