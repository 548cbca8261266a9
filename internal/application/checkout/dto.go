package checkout

import (
	"time"

	"github.com/google/uuid"
	catalogapp "github.com/shopline/backend/internal/application/catalog"
	"github.com/shopline/backend/internal/domain/order"
)

// CreateSessionRequest represents a request to open a hosted checkout
type CreateSessionRequest struct {
	CartCode string `json:"cart_code" binding:"required,max=11"`
	Email    string `json:"email" binding:"required,email"`
}

// SessionResponse carries the hosted checkout page to redirect to
type SessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// WebhookOutcome describes what a webhook delivery led to
type WebhookOutcome string

const (
	OutcomeIgnored   WebhookOutcome = "ignored"
	OutcomeDuplicate WebhookOutcome = "duplicate"
	OutcomeFulfilled WebhookOutcome = "fulfilled"
)

// WebhookResult is the acknowledgement body for a webhook delivery
type WebhookResult struct {
	EventID string         `json:"event_id"`
	Type    string         `json:"type"`
	Outcome WebhookOutcome `json:"outcome"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID       uuid.UUID                   `json:"id"`
	Product  *catalogapp.ProductResponse `json:"product,omitempty"`
	Quantity int                         `json:"quantity"`
}

// OrderResponse represents an order in API responses. Amount is in the
// smallest currency unit.
type OrderResponse struct {
	ID               uuid.UUID           `json:"id"`
	StripeCheckoutID string              `json:"stripe_checkout_id"`
	Amount           int64               `json:"amount"`
	Currency         string              `json:"currency"`
	CustomerEmail    string              `json:"customer_email"`
	Status           order.Status        `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	Items            []OrderItemResponse `json:"items"`
}
