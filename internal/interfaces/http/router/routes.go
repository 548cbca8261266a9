package router

import (
	"github.com/gin-gonic/gin"
	"github.com/shopline/backend/internal/interfaces/http/handler"
)

// Handlers bundles the handlers mounted by the shop API
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Cart     *handler.CartHandler
	Review   *handler.ReviewHandler
	Wishlist *handler.WishlistHandler
	Customer *handler.CustomerHandler
	Checkout *handler.CheckoutHandler
	Webhook  *handler.StripeWebhookHandler
	Health   *handler.HealthHandler
}

// ShopGroups returns the domain groups of the shop API
func ShopGroups(h Handlers) []RouteRegistrar {
	catalogRoutes := NewDomainGroup("catalog", "/catalog")
	catalogRoutes.GET("/products", h.Catalog.ListFeatured).
		GET("/products/:slug", h.Catalog.GetProduct).
		POST("/products", h.Catalog.CreateProduct).
		GET("/categories", h.Catalog.ListCategories).
		GET("/categories/:slug", h.Catalog.GetCategory).
		POST("/categories", h.Catalog.CreateCategory).
		GET("/search", h.Catalog.Search)

	cartRoutes := NewDomainGroup("cart", "/cart")
	cartRoutes.POST("/items", h.Cart.AddItem).
		PUT("/items/:id", h.Cart.UpdateQuantity).
		DELETE("/items/:id", h.Cart.DeleteItem)
	cartRoutes.Group("codes", "/codes").
		GET("/:code", h.Cart.GetCart).
		GET("/:code/stat", h.Cart.Stat).
		GET("/:code/contains", h.Cart.ContainsProduct)

	reviewRoutes := NewDomainGroup("review", "/reviews")
	reviewRoutes.POST("", h.Review.Add).
		PUT("/:id", h.Review.Update).
		DELETE("/:id", h.Review.Delete)

	wishlistRoutes := NewDomainGroup("wishlist", "/wishlists")
	wishlistRoutes.GET("", h.Wishlist.List).
		POST("/toggle", h.Wishlist.Toggle).
		GET("/contains", h.Wishlist.Contains)

	userRoutes := NewDomainGroup("user", "/users")
	userRoutes.POST("", h.Customer.CreateUser).
		GET("/exists/:email", h.Customer.Exists)

	addressRoutes := NewDomainGroup("address", "/addresses")
	addressRoutes.POST("", h.Customer.AddAddress).
		GET("", h.Customer.GetAddress)

	orderRoutes := NewDomainGroup("order", "/orders")
	orderRoutes.GET("", h.Checkout.ListOrders)

	checkoutRoutes := NewDomainGroup("checkout", "/checkout")
	checkoutRoutes.POST("/sessions", h.Checkout.CreateSession)

	// signed by the payment provider, no other authentication
	webhookRoutes := NewDomainGroup("webhook", "/webhooks")
	webhookRoutes.POST("/stripe", h.Webhook.Handle)

	return []RouteRegistrar{
		catalogRoutes,
		cartRoutes,
		reviewRoutes,
		wishlistRoutes,
		userRoutes,
		addressRoutes,
		orderRoutes,
		checkoutRoutes,
		webhookRoutes,
	}
}

// RegisterHealth mounts the health probe at the engine root
func RegisterHealth(engine *gin.Engine, h *handler.HealthHandler) {
	engine.GET("/health", h.Health)
}
