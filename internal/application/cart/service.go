package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	catalogapp "github.com/shopline/backend/internal/application/catalog"
	"github.com/shopline/backend/internal/domain/cart"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopline/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Messages returned alongside cart mutations
const (
	MsgItemUpdated = "Cartitem updated successfully!"
	MsgItemDeleted = "Cartitem deleted successfully!"
)

// CartService handles anonymous shopping carts
type CartService struct {
	cartRepo    cart.CartRepository
	productRepo catalog.ProductRepository
	txManager   shared.TxManager
	presenter   *catalogapp.Presenter
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(
	cartRepo cart.CartRepository,
	productRepo catalog.ProductRepository,
	txManager shared.TxManager,
	presenter *catalogapp.Presenter,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		txManager:   txManager,
		presenter:   presenter,
		logger:      logger,
	}
}

// AddItem puts a product in the cart identified by req.CartCode, creating the
// cart on first use. Re-adding a product resets its quantity to 1.
func (s *CartService) AddItem(ctx context.Context, req AddItemRequest) (*CartResponse, error) {
	code, err := cart.NormalizeCode(req.CartCode)
	if err != nil {
		return nil, err
	}
	if err := s.requireProduct(ctx, req.ProductID); err != nil {
		return nil, err
	}

	var c *cart.Cart
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err := s.cartRepo.GetOrCreate(txCtx, code)
		if err != nil {
			return err
		}
		if _, err := s.cartRepo.UpsertItem(txCtx, created.ID, req.ProductID); err != nil {
			return err
		}
		c, err = s.cartRepo.FindByCode(txCtx, code)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to add cart item",
			zap.String("cart_code", code),
			zap.String("product_id", req.ProductID.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("Cart item added",
		zap.String("cart_code", code),
		zap.String("product_id", req.ProductID.String()))

	return s.toCartResponse(ctx, c), nil
}

// UpdateQuantity overwrites the quantity of a cart line
func (s *CartService) UpdateQuantity(ctx context.Context, itemID uuid.UUID, req UpdateQuantityRequest) (*CartItemResponse, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := item.SetQuantity(req.Quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.SaveItem(ctx, item); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("Cart item not found")
		}
		return nil, err
	}

	resp := s.toItemResponse(ctx, item)
	return &resp, nil
}

// DeleteItem removes a cart line
func (s *CartService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if err := s.cartRepo.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("Cart item not found")
		}
		return err
	}
	return nil
}

// GetCart returns the cart view for code
func (s *CartService) GetCart(ctx context.Context, code string) (*CartResponse, error) {
	c, err := s.findCart(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.toCartResponse(ctx, c), nil
}

// Stat returns the number of units in the cart for code
func (s *CartService) Stat(ctx context.Context, code string) (*CartStatResponse, error) {
	c, err := s.findCart(ctx, code)
	if err != nil {
		return nil, err
	}
	return &CartStatResponse{
		ID:         c.ID,
		CartCode:   c.Code,
		NumOfItems: c.ItemCount(),
	}, nil
}

// ContainsProduct reports whether the cart for code holds productID. An
// unknown cart holds nothing; an unknown product is an error.
func (s *CartService) ContainsProduct(ctx context.Context, code string, productID uuid.UUID) (bool, error) {
	if err := s.requireProduct(ctx, productID); err != nil {
		return false, err
	}
	return s.cartRepo.ContainsProduct(ctx, code, productID)
}

func (s *CartService) requireProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("Product not found")
		}
		return err
	}
	return nil
}

func (s *CartService) findCart(ctx context.Context, code string) (*cart.Cart, error) {
	c, err := s.cartRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("Cart not found.")
		}
		return nil, err
	}
	return c, nil
}

func (s *CartService) findItem(ctx context.Context, id uuid.UUID) (*cart.CartItem, error) {
	item, err := s.cartRepo.FindItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("Cart item not found")
		}
		return nil, err
	}
	return item, nil
}

func (s *CartService) toItemResponse(ctx context.Context, item *cart.CartItem) CartItemResponse {
	resp := CartItemResponse{
		ID:       item.ID,
		Quantity: item.Quantity,
		SubTotal: item.SubTotal(),
	}
	if item.Product != nil {
		resp.Product = s.presenter.Product(ctx, item.Product)
	}
	return resp
}

func (s *CartService) toCartResponse(ctx context.Context, c *cart.Cart) *CartResponse {
	items := make([]CartItemResponse, len(c.Items))
	for i := range c.Items {
		items[i] = s.toItemResponse(ctx, &c.Items[i])
	}
	return &CartResponse{
		ID:        c.ID,
		CartCode:  c.Code,
		Items:     items,
		CartTotal: c.Total(),
	}
}
