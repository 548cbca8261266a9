package order

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopline/backend/internal/domain/shared"
)

// Status of an order
type Status string

const (
	StatusPending Status = "Pending"
	StatusPaid    Status = "Paid"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusPaid
}

// Order is a fulfilled checkout. Orders are only created from a confirmed
// payment event and are never modified afterwards.
type Order struct {
	shared.BaseEntity
	StripeCheckoutID string
	Amount           int64 // smallest currency unit, as reported by the gateway
	Currency         string
	CustomerEmail    string
	Status           Status
	SessionSnapshot  []byte // raw JSON of the checkout session
	Items            []OrderItem
}

// OrderItem is a product line copied from the cart at fulfillment
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Product   *catalog.Product // loaded by read paths
	Quantity  int
}

// NewPaidOrder creates a paid order for a completed checkout session
func NewPaidOrder(checkoutID string, amount int64, currency, email string, snapshot []byte) (*Order, error) {
	if strings.TrimSpace(checkoutID) == "" {
		return nil, shared.NewDomainError("INVALID_CHECKOUT_ID", "Checkout session ID is required")
	}
	if amount < 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	return &Order{
		BaseEntity:       shared.NewBaseEntity(),
		StripeCheckoutID: checkoutID,
		Amount:           amount,
		Currency:         strings.ToLower(currency),
		CustomerEmail:    strings.TrimSpace(email),
		Status:           StatusPaid,
		SessionSnapshot:  snapshot,
	}, nil
}

// AddItem appends a product line
func (o *Order) AddItem(productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	o.Items = append(o.Items, OrderItem{
		ID:        uuid.New(),
		OrderID:   o.ID,
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}
