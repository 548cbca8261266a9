// Package payment defines the port to the hosted checkout provider.
package payment

import "context"

// Checkout event types that confirm payment
const (
	EventCheckoutCompleted           = "checkout.session.completed"
	EventCheckoutAsyncPaymentSucceed = "checkout.session.async_payment_succeeded"
)

// MetadataCartCode is the session metadata key carrying the cart code
const MetadataCartCode = "cart_code"

// LineItem is one priced line of a checkout session
type LineItem struct {
	Name       string
	UnitAmount int64 // smallest currency unit
	Quantity   int64
}

// CreateSessionInput describes a checkout session to open
type CreateSessionInput struct {
	CustomerEmail string
	Currency      string
	LineItems     []LineItem
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSession is the provider's view of a session
type CheckoutSession struct {
	ID            string
	URL           string
	AmountTotal   int64
	Currency      string
	CustomerEmail string
	Metadata      map[string]string
	Raw           []byte // session JSON as received
}

// CartCode returns the cart code stored in the session metadata
func (s *CheckoutSession) CartCode() string {
	return s.Metadata[MetadataCartCode]
}

// Event is a verified webhook event
type Event struct {
	ID      string
	Type    string
	Session *CheckoutSession // set for checkout.session.* events
}

// ConfirmsPayment reports whether the event should trigger fulfillment
func (e *Event) ConfirmsPayment() bool {
	return (e.Type == EventCheckoutCompleted || e.Type == EventCheckoutAsyncPaymentSucceed) && e.Session != nil
}

// CheckoutGateway is the hosted checkout provider
type CheckoutGateway interface {
	// CreateSession opens a hosted checkout session; failures are wrapped
	// in shared.ErrPaymentGateway
	CreateSession(ctx context.Context, in CreateSessionInput) (*CheckoutSession, error)

	// ParseWebhook verifies the signature header against payload and decodes
	// the event; returns shared.ErrInvalidSignature when verification fails
	ParseWebhook(payload []byte, signature string) (*Event, error)
}
