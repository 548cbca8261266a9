package integration

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	cartapp "github.com/shopline/backend/internal/application/cart"
	catalogapp "github.com/shopline/backend/internal/application/catalog"
	checkoutapp "github.com/shopline/backend/internal/application/checkout"
	customerapp "github.com/shopline/backend/internal/application/customer"
	reviewapp "github.com/shopline/backend/internal/application/review"
	wishlistapp "github.com/shopline/backend/internal/application/wishlist"
	"github.com/shopline/backend/internal/infrastructure/cache"
	"github.com/shopline/backend/internal/infrastructure/config"
	"github.com/shopline/backend/internal/infrastructure/payment"
	"github.com/shopline/backend/internal/infrastructure/persistence"
	"github.com/shopline/backend/internal/infrastructure/storage"
	"github.com/shopline/backend/internal/interfaces/http/handler"
	"github.com/shopline/backend/internal/interfaces/http/middleware"
	"github.com/shopline/backend/internal/interfaces/http/router"
	"github.com/shopline/backend/tests/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81/webhook"
	"go.uber.org/zap"
)

const testWebhookSecret = "whsec_integration"

// TestServer wires the full API over a real database
type TestServer struct {
	DB     *TestDB
	Engine *gin.Engine
	Client *testutil.Client
}

// NewTestServer assembles the API the way cmd/server does, with public image
// URLs and an in-memory webhook idempotency store
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
	testDB := NewTestDB(t)
	db := testDB.DB
	log := zap.NewNop()

	productRepo := persistence.NewGormProductRepository(db)
	categoryRepo := persistence.NewGormCategoryRepository(db)
	ratingRepo := persistence.NewGormRatingRepository(db)
	reviewRepo := persistence.NewGormReviewRepository(db)
	userRepo := persistence.NewGormUserRepository(db)
	addressRepo := persistence.NewGormAddressRepository(db)
	wishlistRepo := persistence.NewGormWishlistRepository(db)
	cartRepo := persistence.NewGormCartRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	txManager := persistence.NewGormTxManager(db)

	images := storage.NewPublicImageStore("http://media.test")
	idempotency := cache.NewInMemoryIdempotencyStore(time.Minute)
	t.Cleanup(func() { _ = idempotency.Close() })

	gateway := payment.NewStripeCheckoutGateway(config.StripeConfig{
		SecretKey:     "sk_test_integration",
		WebhookSecret: testWebhookSecret,
		Currency:      "usd",
		Timeout:       5 * time.Second,
	}, log)

	presenter := catalogapp.NewPresenter(images, log)
	checkoutService := checkoutapp.NewCheckoutService(cartRepo, orderRepo, gateway, idempotency, txManager, presenter,
		checkoutapp.Config{Currency: "usd", VATFeeCents: 500}, log)

	handlers := router.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogapp.NewCatalogService(productRepo, categoryRepo, reviewRepo, ratingRepo, presenter, images, log)),
		Cart:     handler.NewCartHandler(cartapp.NewCartService(cartRepo, productRepo, txManager, presenter, log)),
		Review:   handler.NewReviewHandler(reviewapp.NewReviewService(reviewRepo, ratingRepo, productRepo, userRepo, txManager, log)),
		Wishlist: handler.NewWishlistHandler(wishlistapp.NewWishlistService(wishlistRepo, productRepo, userRepo, presenter, log)),
		Customer: handler.NewCustomerHandler(customerapp.NewCustomerService(userRepo, addressRepo, log)),
		Checkout: handler.NewCheckoutHandler(checkoutService),
		Webhook:  handler.NewStripeWebhookHandler(checkoutService),
		Health:   handler.NewHealthHandler(&persistence.Database{DB: db}),
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	router.RegisterHealth(engine, handlers.Health)
	router.NewRouter(engine).Register(router.ShopGroups(handlers)...).Setup()

	return &TestServer{
		DB:     testDB,
		Engine: engine,
		Client: testutil.NewClient(t, engine),
	}
}

// SignedWebhook returns a Stripe-signed event body and its signature header
func SignedWebhook(t *testing.T, eventID, eventType string, session map[string]any) ([]byte, map[string]string) {
	t.Helper()

	session["object"] = "checkout.session"
	payload, err := json.Marshal(map[string]any{
		"id":          eventID,
		"object":      "event",
		"type":        eventType,
		"api_version": "2020-08-27",
		"data":        map[string]any{"object": session},
	})
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})
	return signed.Payload, map[string]string{"Stripe-Signature": signed.Header}
}
