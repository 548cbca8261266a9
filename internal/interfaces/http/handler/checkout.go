package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	checkoutapp "github.com/shopline/backend/internal/application/checkout"
	"github.com/shopline/backend/internal/interfaces/http/dto"
)

// maxWebhookPayloadSize caps webhook bodies; payment events are small
const maxWebhookPayloadSize = 65536

// CheckoutService is the checkout use-case surface the handlers need
type CheckoutService interface {
	CreateSession(ctx context.Context, req checkoutapp.CreateSessionRequest) (*checkoutapp.SessionResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*checkoutapp.WebhookResult, error)
	ListOrders(ctx context.Context, email string) ([]checkoutapp.OrderResponse, error)
}

// CheckoutHandler handles checkout sessions and order history
type CheckoutHandler struct {
	BaseHandler
	checkoutService CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// CreateSession handles POST /checkout/sessions
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req checkoutapp.CreateSessionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	session, err := h.checkoutService.CreateSession(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, session)
}

// ListOrders handles GET /orders?email=
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	orders, err := h.checkoutService.ListOrders(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// StripeWebhookHandler receives payment events. The route is
// unauthenticated; every delivery is verified by signature.
type StripeWebhookHandler struct {
	BaseHandler
	checkoutService CheckoutService
}

// NewStripeWebhookHandler creates a new StripeWebhookHandler
func NewStripeWebhookHandler(checkoutService CheckoutService) *StripeWebhookHandler {
	return &StripeWebhookHandler{checkoutService: checkoutService}
}

// Handle handles POST /webhooks/stripe
func (h *StripeWebhookHandler) Handle(c *gin.Context) {
	// the signature covers the raw bytes, so the body is read untouched
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookPayloadSize+1))
	if err != nil {
		h.BadRequest(c, "Failed to read request body")
		return
	}
	if len(payload) > maxWebhookPayloadSize {
		// rejected like any other unverifiable delivery
		h.Error(c, http.StatusBadRequest, dto.ErrCodeRequestTooLarge, "Payload too large")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidSignature, "Missing Stripe-Signature header")
		return
	}

	result, err := h.checkoutService.HandleWebhook(c.Request.Context(), payload, signature)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
