package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cartapp "github.com/shopline/backend/internal/application/cart"
	catalogapp "github.com/shopline/backend/internal/application/catalog"
	checkoutapp "github.com/shopline/backend/internal/application/checkout"
	customerapp "github.com/shopline/backend/internal/application/customer"
	reviewapp "github.com/shopline/backend/internal/application/review"
	wishlistapp "github.com/shopline/backend/internal/application/wishlist"
	"github.com/shopline/backend/internal/interfaces/http/dto"
	"github.com/shopline/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// newEngine returns an engine with the request ID middleware installed
func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	return r
}

func newRequest(method, path, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func serveRequest(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	return serveRequest(r, newRequest(method, path, body))
}

// envelope decodes a response body; Data is left raw for the caller
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *dto.ErrorInfo  `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListFeatured(ctx context.Context, limit int) ([]catalogapp.ProductResponse, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]catalogapp.ProductResponse), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, slug string) (*catalogapp.ProductDetailResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ProductDetailResponse), args.Error(1)
}

func (m *MockCatalogService) ListCategories(ctx context.Context) ([]catalogapp.CategoryResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalogapp.CategoryResponse), args.Error(1)
}

func (m *MockCatalogService) GetCategory(ctx context.Context, slug string) (*catalogapp.CategoryDetailResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.CategoryDetailResponse), args.Error(1)
}

func (m *MockCatalogService) Search(ctx context.Context, query string) ([]catalogapp.ProductResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalogapp.ProductResponse), args.Error(1)
}

func (m *MockCatalogService) CreateCategory(ctx context.Context, req catalogapp.CreateCategoryRequest) (*catalogapp.CategoryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.CategoryResponse), args.Error(1)
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, req catalogapp.CreateProductRequest) (*catalogapp.ProductResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ProductResponse), args.Error(1)
}

// MockCartService is a mock implementation of CartService
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddItem(ctx context.Context, req cartapp.AddItemRequest) (*cartapp.CartResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartapp.CartResponse), args.Error(1)
}

func (m *MockCartService) UpdateQuantity(ctx context.Context, itemID uuid.UUID, req cartapp.UpdateQuantityRequest) (*cartapp.CartItemResponse, error) {
	args := m.Called(ctx, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartapp.CartItemResponse), args.Error(1)
}

func (m *MockCartService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *MockCartService) GetCart(ctx context.Context, code string) (*cartapp.CartResponse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartapp.CartResponse), args.Error(1)
}

func (m *MockCartService) Stat(ctx context.Context, code string) (*cartapp.CartStatResponse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartapp.CartStatResponse), args.Error(1)
}

func (m *MockCartService) ContainsProduct(ctx context.Context, code string, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, code, productID)
	return args.Bool(0), args.Error(1)
}

// MockReviewService is a mock implementation of ReviewService
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Add(ctx context.Context, req reviewapp.AddReviewRequest) (*reviewapp.ReviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reviewapp.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) Update(ctx context.Context, id uuid.UUID, req reviewapp.UpdateReviewRequest) (*reviewapp.ReviewResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reviewapp.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockWishlistService is a mock implementation of WishlistService
type MockWishlistService struct {
	mock.Mock
}

func (m *MockWishlistService) Toggle(ctx context.Context, req wishlistapp.ToggleRequest) (*wishlistapp.ToggleResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wishlistapp.ToggleResponse), args.Error(1)
}

func (m *MockWishlistService) List(ctx context.Context, email string) ([]wishlistapp.EntryResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]wishlistapp.EntryResponse), args.Error(1)
}

func (m *MockWishlistService) Contains(ctx context.Context, email string, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, email, productID)
	return args.Bool(0), args.Error(1)
}

// MockCustomerService is a mock implementation of CustomerService
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateUser(ctx context.Context, req customerapp.CreateUserRequest) (*customerapp.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerapp.UserResponse), args.Error(1)
}

func (m *MockCustomerService) UserExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerService) AddAddress(ctx context.Context, req customerapp.AddAddressRequest) (*customerapp.AddressResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerapp.AddressResponse), args.Error(1)
}

func (m *MockCustomerService) GetAddress(ctx context.Context, email string) (*customerapp.AddressResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerapp.AddressResponse), args.Error(1)
}

// MockCheckoutService is a mock implementation of CheckoutService
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) CreateSession(ctx context.Context, req checkoutapp.CreateSessionRequest) (*checkoutapp.SessionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkoutapp.SessionResponse), args.Error(1)
}

func (m *MockCheckoutService) HandleWebhook(ctx context.Context, payload []byte, signature string) (*checkoutapp.WebhookResult, error) {
	args := m.Called(ctx, payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkoutapp.WebhookResult), args.Error(1)
}

func (m *MockCheckoutService) ListOrders(ctx context.Context, email string) ([]checkoutapp.OrderResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]checkoutapp.OrderResponse), args.Error(1)
}
