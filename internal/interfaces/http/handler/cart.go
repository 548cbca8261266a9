package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cartapp "github.com/shopline/backend/internal/application/cart"
	"github.com/shopline/backend/internal/infrastructure/logger"
)

// CartService is the cart use-case surface the handler needs
type CartService interface {
	AddItem(ctx context.Context, req cartapp.AddItemRequest) (*cartapp.CartResponse, error)
	UpdateQuantity(ctx context.Context, itemID uuid.UUID, req cartapp.UpdateQuantityRequest) (*cartapp.CartItemResponse, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	GetCart(ctx context.Context, code string) (*cartapp.CartResponse, error)
	Stat(ctx context.Context, code string) (*cartapp.CartStatResponse, error)
	ContainsProduct(ctx context.Context, code string, productID uuid.UUID) (bool, error)
}

// CartHandler handles cart endpoints
type CartHandler struct {
	BaseHandler
	cartService CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req cartapp.AddItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	ctx := logger.WithCartCode(c.Request.Context(), req.CartCode)

	cart, err := h.cartService.AddItem(ctx, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// UpdateQuantity handles PUT /cart/items/:id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	id, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req cartapp.UpdateQuantityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.cartService.UpdateQuantity(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, http.StatusOK, item, cartapp.MsgItemUpdated)
}

// DeleteItem handles DELETE /cart/items/:id
func (h *CartHandler) DeleteItem(c *gin.Context) {
	id, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cartService.DeleteItem(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, http.StatusOK, nil, cartapp.MsgItemDeleted)
}

// GetCart handles GET /cart/codes/:code
func (h *CartHandler) GetCart(c *gin.Context) {
	ctx := logger.WithCartCode(c.Request.Context(), c.Param("code"))

	cart, err := h.cartService.GetCart(ctx, c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cart)
}

// Stat handles GET /cart/codes/:code/stat
func (h *CartHandler) Stat(c *gin.Context) {
	stat, err := h.cartService.Stat(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stat)
}

// ContainsProduct handles GET /cart/codes/:code/contains?product_id=
func (h *CartHandler) ContainsProduct(c *gin.Context) {
	productID, ok := h.UUIDQuery(c, "product_id")
	if !ok {
		return
	}

	in, err := h.cartService.ContainsProduct(c.Request.Context(), c.Param("code"), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cartapp.ContainsResponse{ProductInCart: in})
}
