package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/shopline/backend/internal/application/catalog"
)

// CatalogService is the catalog use-case surface the handler needs
type CatalogService interface {
	ListFeatured(ctx context.Context, limit int) ([]catalogapp.ProductResponse, error)
	GetProduct(ctx context.Context, slug string) (*catalogapp.ProductDetailResponse, error)
	ListCategories(ctx context.Context) ([]catalogapp.CategoryResponse, error)
	GetCategory(ctx context.Context, slug string) (*catalogapp.CategoryDetailResponse, error)
	Search(ctx context.Context, query string) ([]catalogapp.ProductResponse, error)
	CreateCategory(ctx context.Context, req catalogapp.CreateCategoryRequest) (*catalogapp.CategoryResponse, error)
	CreateProduct(ctx context.Context, req catalogapp.CreateProductRequest) (*catalogapp.ProductResponse, error)
}

// CatalogHandler handles product and category endpoints
type CatalogHandler struct {
	BaseHandler
	catalogService CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListFeatured handles GET /catalog/products?limit=. A missing or
// non-positive limit lists every featured product.
func (h *CatalogHandler) ListFeatured(c *gin.Context) {
	limit := 0
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
		limit = n
	}

	products, err := h.catalogService.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// GetProduct handles GET /catalog/products/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// ListCategories handles GET /catalog/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// GetCategory handles GET /catalog/categories/:slug
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.catalogService.GetCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// Search handles GET /catalog/search?query=
func (h *CatalogHandler) Search(c *gin.Context) {
	products, err := h.catalogService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// CreateCategory handles POST /catalog/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req catalogapp.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// CreateProduct handles POST /catalog/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}
