// Package payment adapts Stripe hosted checkout to the domain's
// payment.CheckoutGateway port.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	domainpayment "github.com/shopline/backend/internal/domain/payment"
	"github.com/shopline/backend/internal/domain/shared"
	"github.com/shopline/backend/internal/infrastructure/config"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"
)

// StripeCheckoutGateway implements payment.CheckoutGateway with Stripe
// Checkout Sessions and signed webhooks
type StripeCheckoutGateway struct {
	sessions      session.Client
	webhookSecret string
	logger        *zap.Logger
}

// Option configures a StripeCheckoutGateway
type Option func(*StripeCheckoutGateway)

// WithBackend replaces the Stripe API backend
func WithBackend(b stripe.Backend) Option {
	return func(g *StripeCheckoutGateway) {
		g.sessions.B = b
	}
}

// NewStripeCheckoutGateway creates a gateway from configuration. The API
// client has a bounded timeout and never retries, so a slow Stripe cannot
// pile up checkout requests.
func NewStripeCheckoutGateway(cfg config.StripeConfig, logger *zap.Logger, opts ...Option) *StripeCheckoutGateway {
	if logger == nil {
		logger = zap.NewNop()
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: cfg.Timeout},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     logger.Named("stripe").Sugar(),
	})

	g := &StripeCheckoutGateway{
		sessions:      session.Client{B: backend, Key: cfg.SecretKey},
		webhookSecret: cfg.WebhookSecret,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CreateSession opens a hosted checkout session in payment mode
func (g *StripeCheckoutGateway) CreateSession(ctx context.Context, in domainpayment.CreateSessionInput) (*domainpayment.CheckoutSession, error) {
	if g.sessions.Key == "" {
		return nil, shared.NewDomainError(shared.ErrPaymentGateway.Code, "Stripe is not configured")
	}

	currency := strings.ToLower(in.Currency)
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(in.SuccessURL),
		CancelURL:          stripe.String(in.CancelURL),
	}
	if in.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(in.CustomerEmail)
	}
	params.Context = ctx

	for _, item := range in.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	g.logger.Debug("Creating Stripe checkout session",
		zap.Int("line_items", len(in.LineItems)),
		zap.String("customer_email", in.CustomerEmail))

	cs, err := g.sessions.New(params)
	if err != nil {
		g.logger.Error("Failed to create Stripe checkout session", zap.Error(err))
		return nil, gatewayError(err)
	}

	g.logger.Info("Created Stripe checkout session", zap.String("session_id", cs.ID))
	return toCheckoutSession(cs, nil), nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes the event
func (g *StripeCheckoutGateway) ParseWebhook(payload []byte, signature string) (*domainpayment.Event, error) {
	if g.webhookSecret == "" || signature == "" {
		return nil, shared.ErrInvalidSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		if isSignatureError(err) {
			return nil, shared.ErrInvalidSignature
		}
		return nil, shared.InvalidInput("Invalid payload")
	}

	out := &domainpayment.Event{ID: event.ID, Type: string(event.Type)}
	if strings.HasPrefix(out.Type, "checkout.session.") && event.Data != nil {
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			return nil, shared.InvalidInput("Invalid payload")
		}
		out.Session = toCheckoutSession(&cs, event.Data.Raw)
	}
	return out, nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}

func toCheckoutSession(cs *stripe.CheckoutSession, raw []byte) *domainpayment.CheckoutSession {
	email := cs.CustomerEmail
	if email == "" && cs.CustomerDetails != nil {
		email = cs.CustomerDetails.Email
	}
	return &domainpayment.CheckoutSession{
		ID:            cs.ID,
		URL:           cs.URL,
		AmountTotal:   cs.AmountTotal,
		Currency:      string(cs.Currency),
		CustomerEmail: email,
		Metadata:      cs.Metadata,
		Raw:           raw,
	}
}

// gatewayError keeps Stripe's human readable message
func gatewayError(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) && se.Msg != "" {
		return shared.NewDomainError(shared.ErrPaymentGateway.Code, se.Msg)
	}
	return shared.NewDomainError(shared.ErrPaymentGateway.Code, fmt.Sprintf("stripe: %v", err))
}

var _ domainpayment.CheckoutGateway = (*StripeCheckoutGateway)(nil)
