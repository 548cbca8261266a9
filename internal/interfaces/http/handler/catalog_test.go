package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	catalogapp "github.com/shopline/backend/internal/application/catalog"
	"github.com/shopline/backend/internal/domain/shared"
	"github.com/shopline/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalogRouter(svc *MockCatalogService) http.Handler {
	h := NewCatalogHandler(svc)
	r := newEngine()
	r.GET("/catalog/products", h.ListFeatured)
	r.GET("/catalog/products/:slug", h.GetProduct)
	r.POST("/catalog/products", h.CreateProduct)
	r.GET("/catalog/categories", h.ListCategories)
	r.GET("/catalog/categories/:slug", h.GetCategory)
	r.POST("/catalog/categories", h.CreateCategory)
	r.GET("/catalog/search", h.Search)
	return r
}

func TestCatalogHandler_ListFeaturedLimit(t *testing.T) {
	tests := []struct {
		query string
		limit int
	}{
		{"", 0},
		{"?limit=5", 5},
		{"?limit=abc", 0},
		{"?limit=-3", 0},
		{"?limit=0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			svc := new(MockCatalogService)
			svc.On("ListFeatured", mock.Anything, tt.limit).Return([]catalogapp.ProductResponse{{Name: "Lamp"}}, nil)

			w := do(catalogRouter(svc), http.MethodGet, "/catalog/products"+tt.query, "")
			assert.Equal(t, http.StatusOK, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	svc := new(MockCatalogService)
	detail := &catalogapp.ProductDetailResponse{
		ProductResponse: catalogapp.ProductResponse{ID: uuid.New(), Name: "Lamp", Slug: "lamp", Price: decimal.RequireFromString("19.99")},
		ExcellentReview: 2,
	}
	svc.On("GetProduct", mock.Anything, "lamp").Return(detail, nil)
	svc.On("GetProduct", mock.Anything, "nope").Return(nil, shared.NotFound("Product not found"))

	w := do(catalogRouter(svc), http.MethodGet, "/catalog/products/lamp", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &got))
	assert.Equal(t, "lamp", got["slug"])
	assert.Equal(t, "19.99", got["price"])
	assert.EqualValues(t, 2, got["excellent_review"])

	w = do(catalogRouter(svc), http.MethodGet, "/catalog/products/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", decode(t, w).Error.Message)
}

func TestCatalogHandler_Search(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("Search", mock.Anything, "").Return(nil, shared.InvalidInput("No query provided"))
	svc.On("Search", mock.Anything, "lamp").Return([]catalogapp.ProductResponse{}, nil)

	w := do(catalogRouter(svc), http.MethodGet, "/catalog/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No query provided", decode(t, w).Error.Message)

	w = do(catalogRouter(svc), http.MethodGet, "/catalog/search?query=lamp", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCatalogHandler_Categories(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("ListCategories", mock.Anything).Return([]catalogapp.CategoryResponse{{Name: "Home", Slug: "home"}}, nil)
	svc.On("GetCategory", mock.Anything, "home").Return(&catalogapp.CategoryDetailResponse{
		CategoryResponse: catalogapp.CategoryResponse{Name: "Home", Slug: "home"},
		Products:         []catalogapp.ProductResponse{},
	}, nil)

	w := do(catalogRouter(svc), http.MethodGet, "/catalog/categories", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(catalogRouter(svc), http.MethodGet, "/catalog/categories/home", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"00000000-0000-0000-0000-000000000000","name":"Home","slug":"home","image":"","products":[]}`, string(decode(t, w).Data))
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req catalogapp.CreateProductRequest) bool {
			return req.Name == "Lamp" && req.Price.Equal(decimal.RequireFromString("19.99"))
		})).Return(&catalogapp.ProductResponse{Name: "Lamp", Slug: "lamp"}, nil)

		w := do(catalogRouter(svc), http.MethodPost, "/catalog/products", `{"name":"Lamp","price":"19.99"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		svc := new(MockCatalogService)
		w := do(catalogRouter(svc), http.MethodPost, "/catalog/products", `{"price":"1.00"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, decode(t, w).Error.Code)
		svc.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("unknown category", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("CreateProduct", mock.Anything, mock.Anything).Return(nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found"))

		w := do(catalogRouter(svc), http.MethodPost, "/catalog/products", `{"name":"Lamp","price":"1.00","category_id":"`+uuid.NewString()+`"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ERR_INVALID_CATEGORY", decode(t, w).Error.Code)
	})
}

func TestCatalogHandler_CreateCategory(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("CreateCategory", mock.Anything, catalogapp.CreateCategoryRequest{Name: "Home & Garden"}).
		Return(&catalogapp.CategoryResponse{Name: "Home & Garden", Slug: "home-garden"}, nil)

	w := do(catalogRouter(svc), http.MethodPost, "/catalog/categories", `{"name":"Home & Garden"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"slug":"home-garden"`)
}
