package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	wishlistapp "github.com/shopline/backend/internal/application/wishlist"
	"github.com/shopline/backend/internal/domain/wishlist"
)

// WishlistService is the wishlist use-case surface the handler needs
type WishlistService interface {
	Toggle(ctx context.Context, req wishlistapp.ToggleRequest) (*wishlistapp.ToggleResponse, error)
	List(ctx context.Context, email string) ([]wishlistapp.EntryResponse, error)
	Contains(ctx context.Context, email string, productID uuid.UUID) (bool, error)
}

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	BaseHandler
	wishlistService WishlistService
}

// NewWishlistHandler creates a new WishlistHandler
func NewWishlistHandler(wishlistService WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// Toggle handles POST /wishlists/toggle. A created entry answers 201, a
// removed one 200.
func (h *WishlistHandler) Toggle(c *gin.Context) {
	var req wishlistapp.ToggleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.wishlistService.Toggle(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if resp.Action == wishlist.ActionCreated {
		h.Created(c, resp)
		return
	}
	h.Message(c, http.StatusOK, resp, "Wishlist deleted successfully")
}

// List handles GET /wishlists?email=
func (h *WishlistHandler) List(c *gin.Context) {
	entries, err := h.wishlistService.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}

// Contains handles GET /wishlists/contains?email=&product_id=
func (h *WishlistHandler) Contains(c *gin.Context) {
	productID, ok := h.UUIDQuery(c, "product_id")
	if !ok {
		return
	}

	in, err := h.wishlistService.Contains(c.Request.Context(), c.Query("email"), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, wishlistapp.ContainsResponse{ProductInWishlist: in})
}
