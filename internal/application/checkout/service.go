package checkout

import (
	"context"
	"errors"
	"time"

	catalogapp "github.com/shopline/backend/internal/application/catalog"
	"github.com/shopline/backend/internal/domain/cart"
	"github.com/shopline/backend/internal/domain/customer"
	"github.com/shopline/backend/internal/domain/order"
	"github.com/shopline/backend/internal/domain/payment"
	"github.com/shopline/backend/internal/domain/shared"
	"github.com/shopline/backend/internal/infrastructure/logger"
	"github.com/shopline/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// VATFeeName is the label of the flat fee line added to every session
const VATFeeName = "VAT Fee"

// DefaultEventTTL is how long processed webhook event IDs are remembered
const DefaultEventTTL = 72 * time.Hour

// Config holds checkout settings
type Config struct {
	Currency    string
	SuccessURL  string
	CancelURL   string
	VATFeeCents int64
	EventTTL    time.Duration
}

// CheckoutService opens hosted checkout sessions and turns confirmed
// payments into orders
type CheckoutService struct {
	cartRepo    cart.CartRepository
	orderRepo   order.OrderRepository
	gateway     payment.CheckoutGateway
	idempotency shared.IdempotencyStore
	txManager   shared.TxManager
	presenter   *catalogapp.Presenter
	cfg         Config
	logger      *zap.Logger
}

// NewCheckoutService creates a new CheckoutService. idempotency may be nil,
// in which case duplicate deliveries are absorbed by the per-session check
// in Fulfill alone.
func NewCheckoutService(
	cartRepo cart.CartRepository,
	orderRepo order.OrderRepository,
	gateway payment.CheckoutGateway,
	idempotency shared.IdempotencyStore,
	txManager shared.TxManager,
	presenter *catalogapp.Presenter,
	cfg Config,
	logger *zap.Logger,
) *CheckoutService {
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	if cfg.EventTTL <= 0 {
		cfg.EventTTL = DefaultEventTTL
	}
	return &CheckoutService{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		gateway:     gateway,
		idempotency: idempotency,
		txManager:   txManager,
		presenter:   presenter,
		cfg:         cfg,
		logger:      logger,
	}
}

// CreateSession opens a hosted checkout session for the cart. Nothing is
// persisted; the cart code travels in the session metadata.
func (s *CheckoutService) CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "checkout", "create_session")
	defer span.End()

	email, err := customer.NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	code, err := cart.NormalizeCode(req.CartCode)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithCartCode(ctx, code)
	telemetry.SetAttributes(span, telemetry.SpanAttrCartCode, code)

	c, err := s.cartRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("Cart not found.")
		}
		return nil, err
	}

	in := payment.CreateSessionInput{
		CustomerEmail: email,
		Currency:      s.cfg.Currency,
		LineItems:     BuildLineItems(c, s.cfg.VATFeeCents),
		Metadata:      map[string]string{payment.MetadataCartCode: c.Code},
		SuccessURL:    s.cfg.SuccessURL,
		CancelURL:     s.cfg.CancelURL,
	}

	session, err := s.gateway.CreateSession(ctx, in)
	if err != nil {
		telemetry.RecordError(span, err)
		logger.L(ctx).Warn("Checkout session creation failed", zap.Error(err))
		return nil, err
	}
	telemetry.SetAttributes(span,
		telemetry.SpanAttrSessionID, session.ID,
		telemetry.SpanAttrItemsCount, len(in.LineItems))

	logger.L(ctx).Info("Checkout session created",
		zap.String("session_id", session.ID),
		zap.Int("line_items", len(in.LineItems)))

	return &SessionResponse{ID: session.ID, URL: session.URL}, nil
}

// BuildLineItems prices each cart line in cents and appends the VAT fee line
func BuildLineItems(c *cart.Cart, vatFeeCents int64) []payment.LineItem {
	items := make([]payment.LineItem, 0, len(c.Items)+1)
	for _, item := range c.Items {
		if item.Product == nil {
			continue
		}
		items = append(items, payment.LineItem{
			Name:       item.Product.Name,
			UnitAmount: item.Product.PriceInCents(),
			Quantity:   int64(item.Quantity),
		})
	}
	return append(items, payment.LineItem{
		Name:       VATFeeName,
		UnitAmount: vatFeeCents,
		Quantity:   1,
	})
}

// HandleWebhook verifies a webhook delivery and fulfills confirmed payments.
// Unverifiable deliveries are rejected before anything is read from them.
func (s *CheckoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "checkout", "handle_webhook")
	defer span.End()

	event, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		telemetry.RecordError(span, err)
		logger.L(ctx).Warn("Rejected webhook delivery", zap.Error(err))
		return nil, err
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrEventID, event.ID,
		telemetry.SpanAttrEventType, event.Type)

	result := &WebhookResult{EventID: event.ID, Type: event.Type, Outcome: OutcomeIgnored}
	if !event.ConfirmsPayment() {
		logger.L(ctx).Debug("Ignoring webhook event",
			zap.String("event_id", event.ID),
			zap.String("event_type", event.Type))
		return result, nil
	}

	if s.idempotency != nil {
		fresh, err := s.idempotency.MarkProcessed(ctx, event.ID, s.cfg.EventTTL)
		if err != nil {
			return nil, err
		}
		if !fresh {
			logger.L(ctx).Info("Duplicate webhook event", zap.String("event_id", event.ID))
			result.Outcome = OutcomeDuplicate
			return result, nil
		}
	}

	if _, err := s.Fulfill(ctx, event.Session); err != nil {
		telemetry.RecordError(span, err)
		if s.idempotency != nil {
			// let the sender's retry through
			if ferr := s.idempotency.Forget(ctx, event.ID); ferr != nil {
				logger.L(ctx).Error("Failed to release webhook event", zap.String("event_id", event.ID), zap.Error(ferr))
			}
		}
		return nil, err
	}

	result.Outcome = OutcomeFulfilled
	return result, nil
}

// Fulfill turns the cart named by the session metadata into a paid order
// and deletes the cart, in one transaction. It returns nil without error
// when the session already has an order or the cart no longer exists.
func (s *CheckoutService) Fulfill(ctx context.Context, session *payment.CheckoutSession) (*order.Order, error) {
	code := session.CartCode()
	ctx, span := telemetry.StartServiceSpan(ctx, "checkout", "fulfill",
		telemetry.SpanAttrSessionID, session.ID,
		telemetry.SpanAttrCartCode, code)
	defer span.End()
	ctx = logger.WithCartCode(ctx, code)
	log := logger.L(ctx).With(zap.String("session_id", session.ID))
	if code == "" {
		log.Warn("Checkout session carries no cart code")
		return nil, nil
	}

	var created *order.Order
	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.orderRepo.ExistsByCheckoutID(txCtx, session.ID)
		if err != nil {
			return err
		}
		if exists {
			log.Info("Order already recorded for session")
			return nil
		}

		c, err := s.cartRepo.FindByCode(txCtx, code)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				log.Warn("Cart gone before fulfillment")
				return nil
			}
			return err
		}

		o, err := order.NewPaidOrder(session.ID, session.AmountTotal, session.Currency, session.CustomerEmail, session.Raw)
		if err != nil {
			return err
		}
		for _, item := range c.Items {
			if err := o.AddItem(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		if err := s.orderRepo.Create(txCtx, o); err != nil {
			if errors.Is(err, shared.ErrAlreadyExists) {
				log.Info("Order recorded concurrently for session")
				return nil
			}
			return err
		}
		if err := s.cartRepo.Delete(txCtx, c.ID); err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		log.Error("Fulfillment failed", zap.Error(err))
		return nil, err
	}

	if created != nil {
		telemetry.SetAttributes(span,
			telemetry.SpanAttrOrderID, created.ID.String(),
			telemetry.SpanAttrAmount, created.Amount)
		log.Info("Order fulfilled",
			zap.String("order_id", created.ID.String()),
			zap.Int64("amount", created.Amount),
			zap.Int("items", len(created.Items)))
	}
	return created, nil
}

// ListOrders lists the orders placed with email, newest first
func (s *CheckoutService) ListOrders(ctx context.Context, email string) ([]OrderResponse, error) {
	email, err := customer.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = s.toOrderResponse(ctx, &orders[i])
	}
	return out, nil
}

func (s *CheckoutService) toOrderResponse(ctx context.Context, o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{ID: item.ID, Quantity: item.Quantity}
		if item.Product != nil {
			p := s.presenter.Product(ctx, item.Product)
			items[i].Product = &p
		}
	}
	return OrderResponse{
		ID:               o.ID,
		StripeCheckoutID: o.StripeCheckoutID,
		Amount:           o.Amount,
		Currency:         o.Currency,
		CustomerEmail:    o.CustomerEmail,
		Status:           o.Status,
		CreatedAt:        o.CreatedAt,
		Items:            items,
	}
}
