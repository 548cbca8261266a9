package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopline/backend/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	NewRouter(engine, WithAPIVersion("v2")).Register(group).Setup()

	req := httptest.NewRequest(http.MethodGet, "/api/v2/test/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("catalog", "/catalog")
		assert.Equal(t, "catalog", g.Name())
		assert.Equal(t, "/catalog", g.Prefix())
	})

	t.Run("methods subgroups and middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.Use(func(c *gin.Context) {
			c.Header("X-Group", "test")
			c.Next()
		})
		ok := func(c *gin.Context) { c.Status(http.StatusOK) }
		g.GET("/items", ok).POST("/items", ok).PUT("/items/:id", ok).DELETE("/items/:id", ok)
		g.Group("nested", "/nested").GET("/leaf", ok)
		g.RegisterRoutes(engine.Group("/api/v1"))

		for _, tc := range []struct{ method, path string }{
			{http.MethodGet, "/api/v1/test/items"},
			{http.MethodPost, "/api/v1/test/items"},
			{http.MethodPut, "/api/v1/test/items/1"},
			{http.MethodDelete, "/api/v1/test/items/1"},
			{http.MethodGet, "/api/v1/test/nested/leaf"},
		} {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusOK, w.Code, "%s %s", tc.method, tc.path)
			assert.Equal(t, "test", w.Header().Get("X-Group"), "%s %s", tc.method, tc.path)
		}
	})
}

func TestShopGroups(t *testing.T) {
	engine := gin.New()
	h := Handlers{
		Catalog:  handler.NewCatalogHandler(nil),
		Cart:     handler.NewCartHandler(nil),
		Review:   handler.NewReviewHandler(nil),
		Wishlist: handler.NewWishlistHandler(nil),
		Customer: handler.NewCustomerHandler(nil),
		Checkout: handler.NewCheckoutHandler(nil),
		Webhook:  handler.NewStripeWebhookHandler(nil),
		Health:   handler.NewHealthHandler(nil),
	}
	NewRouter(engine).Register(ShopGroups(h)...).Setup()
	RegisterHealth(engine, h.Health)

	registered := map[string]bool{}
	for _, r := range engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /api/v1/catalog/products",
		"GET /api/v1/catalog/products/:slug",
		"POST /api/v1/catalog/products",
		"GET /api/v1/catalog/categories",
		"GET /api/v1/catalog/categories/:slug",
		"POST /api/v1/catalog/categories",
		"GET /api/v1/catalog/search",
		"POST /api/v1/cart/items",
		"PUT /api/v1/cart/items/:id",
		"DELETE /api/v1/cart/items/:id",
		"GET /api/v1/cart/codes/:code",
		"GET /api/v1/cart/codes/:code/stat",
		"GET /api/v1/cart/codes/:code/contains",
		"POST /api/v1/reviews",
		"PUT /api/v1/reviews/:id",
		"DELETE /api/v1/reviews/:id",
		"POST /api/v1/wishlists/toggle",
		"GET /api/v1/wishlists",
		"GET /api/v1/wishlists/contains",
		"POST /api/v1/users",
		"GET /api/v1/users/exists/:email",
		"POST /api/v1/addresses",
		"GET /api/v1/addresses",
		"GET /api/v1/orders",
		"POST /api/v1/checkout/sessions",
		"POST /api/v1/webhooks/stripe",
		"GET /health",
	}
	for _, route := range want {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.Len(t, registered, len(want))
}
