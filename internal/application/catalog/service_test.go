package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopline/backend/internal/domain/customer"
	"github.com/shopline/backend/internal/domain/review"
	"github.com/shopline/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindFeatured(ctx context.Context, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, exclude *uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID, exclude)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, query string) ([]catalog.Product, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]review.Review, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]review.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) Save(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockRatingRepository is a mock implementation of RatingRepository
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) FindByProduct(ctx context.Context, productID uuid.UUID) (*catalog.ProductRating, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductRating), args.Error(1)
}

func (m *MockRatingRepository) LockProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockRatingRepository) Recompute(ctx context.Context, productID uuid.UUID) (*catalog.ProductRating, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductRating), args.Error(1)
}

// MockImageStore is a mock implementation of ImageStore
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) URL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type fixture struct {
	svc        *CatalogService
	products   *MockProductRepository
	categories *MockCategoryRepository
	reviews    *MockReviewRepository
	ratings    *MockRatingRepository
	images     *MockImageStore
}

func newFixture() *fixture {
	f := &fixture{
		products:   new(MockProductRepository),
		categories: new(MockCategoryRepository),
		reviews:    new(MockReviewRepository),
		ratings:    new(MockRatingRepository),
		images:     new(MockImageStore),
	}
	logger := zap.NewNop()
	f.svc = NewCatalogService(f.products, f.categories, f.reviews, f.ratings,
		NewPresenter(f.images, logger), f.images, logger)
	return f
}

func newTestProduct(t *testing.T, name, price string, categoryID *uuid.UUID) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, "", decimal.RequireFromString(price), categoryID)
	require.NoError(t, err)
	p.AssignSlug(catalog.Slugify(name))
	return p
}

func TestCatalogService_ListFeatured(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := newTestProduct(t, "Desk Lamp", "19.99", nil)
	p.SetImage("img/lamp.jpg")
	f.products.On("FindFeatured", ctx, 2).Return([]catalog.Product{*p}, nil)
	f.images.On("URL", ctx, "img/lamp.jpg").Return("https://cdn.example.com/img/lamp.jpg", nil)

	got, err := f.svc.ListFeatured(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "desk-lamp", got[0].Slug)
	assert.Equal(t, "https://cdn.example.com/img/lamp.jpg", got[0].Image)
	assert.True(t, got[0].Price.Equal(decimal.RequireFromString("19.99")))
}

func TestCatalogService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles detail view", func(t *testing.T) {
		f := newFixture()
		catID := uuid.New()
		p := newTestProduct(t, "Desk Lamp", "19.99", &catID)
		other := newTestProduct(t, "Floor Lamp", "49.00", &catID)
		user, err := customer.NewUser("ada@example.com", "ada", "", "", "")
		require.NoError(t, err)
		reviews := []review.Review{
			{ProductID: p.ID, UserID: user.ID, User: user, Rating: 5},
			{ProductID: p.ID, Rating: 5},
			{ProductID: p.ID, Rating: 1},
		}
		rating := &catalog.ProductRating{ID: uuid.New(), ProductID: p.ID, AverageRating: 11.0 / 3.0, TotalReviews: 3}

		f.products.On("FindBySlug", ctx, "desk-lamp").Return(p, nil)
		f.reviews.On("FindByProduct", ctx, p.ID).Return(reviews, nil)
		f.ratings.On("FindByProduct", ctx, p.ID).Return(rating, nil)
		f.products.On("FindByCategory", ctx, catID, &p.ID).Return([]catalog.Product{*other}, nil)

		got, err := f.svc.GetProduct(ctx, "desk-lamp")
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.Len(t, got.Reviews, 3)
		require.NotNil(t, got.Reviews[0].User)
		assert.Equal(t, "ada@example.com", got.Reviews[0].User.Email)
		require.NotNil(t, got.Rating)
		assert.Equal(t, 3, got.Rating.TotalReviews)
		require.Len(t, got.SimilarProducts, 1)
		assert.Equal(t, other.ID, got.SimilarProducts[0].ID)
		assert.Equal(t, 1, got.PoorReview)
		assert.Equal(t, 0, got.FairReview)
		assert.Equal(t, 2, got.ExcellentReview)
	})

	t.Run("unreviewed product without category", func(t *testing.T) {
		f := newFixture()
		p := newTestProduct(t, "Desk Lamp", "19.99", nil)
		f.products.On("FindBySlug", ctx, "desk-lamp").Return(p, nil)
		f.reviews.On("FindByProduct", ctx, p.ID).Return([]review.Review{}, nil)
		f.ratings.On("FindByProduct", ctx, p.ID).Return(nil, shared.ErrNotFound)

		got, err := f.svc.GetProduct(ctx, "desk-lamp")
		require.NoError(t, err)
		assert.Nil(t, got.Rating)
		assert.NotNil(t, got.SimilarProducts)
		assert.Empty(t, got.SimilarProducts)
		f.products.AssertNotCalled(t, "FindByCategory", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown slug", func(t *testing.T) {
		f := newFixture()
		f.products.On("FindBySlug", ctx, "nope").Return(nil, shared.ErrNotFound)

		_, err := f.svc.GetProduct(ctx, "nope")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCatalogService_Categories(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	cat, err := catalog.NewCategory("Lighting", "")
	require.NoError(t, err)
	cat.AssignSlug("lighting")
	p := newTestProduct(t, "Desk Lamp", "19.99", &cat.ID)

	f.categories.On("FindAll", ctx).Return([]catalog.Category{*cat}, nil)
	f.categories.On("FindBySlug", ctx, "lighting").Return(cat, nil)
	f.categories.On("FindBySlug", ctx, "missing").Return(nil, shared.ErrNotFound)
	f.products.On("FindByCategory", ctx, cat.ID, (*uuid.UUID)(nil)).Return([]catalog.Product{*p}, nil)

	list, err := f.svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "lighting", list[0].Slug)

	detail, err := f.svc.GetCategory(ctx, "lighting")
	require.NoError(t, err)
	assert.Equal(t, "Lighting", detail.Name)
	require.Len(t, detail.Products, 1)
	assert.Equal(t, p.ID, detail.Products[0].ID)

	_, err = f.svc.GetCategory(ctx, "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCatalogService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("empty query", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.Search(ctx, "   ")
		require.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.Equal(t, "No query provided", err.Error())
	})

	t.Run("trims and searches", func(t *testing.T) {
		f := newFixture()
		p := newTestProduct(t, "Desk Lamp", "19.99", nil)
		f.products.On("Search", ctx, "lamp").Return([]catalog.Product{*p}, nil)

		got, err := f.svc.Search(ctx, " lamp ")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestCatalogService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("derives a free slug", func(t *testing.T) {
		f := newFixture()
		f.products.On("ExistsBySlug", ctx, "desk-lamp").Return(true, nil)
		f.products.On("ExistsBySlug", ctx, "desk-lamp-1").Return(false, nil)
		f.products.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		got, err := f.svc.CreateProduct(ctx, CreateProductRequest{
			Name:     "Desk Lamp",
			Price:    decimal.RequireFromString("19.999"),
			Featured: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "desk-lamp-1", got.Slug)
		assert.True(t, got.Featured)
		assert.Equal(t, "20", got.Price.String())
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newFixture()
		catID := uuid.New()
		f.categories.On("FindByID", ctx, catID).Return(nil, shared.ErrNotFound)

		_, err := f.svc.CreateProduct(ctx, CreateProductRequest{Name: "Lamp", Price: decimal.NewFromInt(1), CategoryID: &catID})
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_CATEGORY", de.Code)
	})

	t.Run("image must exist in storage", func(t *testing.T) {
		f := newFixture()
		f.images.On("Exists", ctx, "img/missing.jpg").Return(false, nil)

		_, err := f.svc.CreateProduct(ctx, CreateProductRequest{Name: "Lamp", Price: decimal.NewFromInt(1), Image: "img/missing.jpg"})
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_IMAGE", de.Code)
		f.products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("negative price", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.CreateProduct(ctx, CreateProductRequest{Name: "Lamp", Price: decimal.NewFromInt(-1)})
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_PRICE", de.Code)
	})
}

func TestCatalogService_CreateCategory(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.categories.On("ExistsBySlug", ctx, "home-garden").Return(false, nil)
	f.categories.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

	got, err := f.svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Home & Garden"})
	require.NoError(t, err)
	assert.Equal(t, "home-garden", got.Slug)

	f2 := newFixture()
	boom := errors.New("db down")
	f2.categories.On("ExistsBySlug", ctx, "toys").Return(false, boom)
	_, err = f2.svc.CreateCategory(ctx, CreateCategoryRequest{Name: "Toys"})
	assert.ErrorIs(t, err, boom)
}

func TestPresenter_ImageURLFailureIsSoft(t *testing.T) {
	ctx := context.Background()
	images := new(MockImageStore)
	images.On("URL", ctx, "img/a.jpg").Return("", errors.New("presign failed"))
	p := NewPresenter(images, zap.NewNop())

	assert.Equal(t, "", p.ImageURL(ctx, "img/a.jpg"))
	assert.Equal(t, "", p.ImageURL(ctx, ""))
	assert.Equal(t, "raw", NewPresenter(nil, zap.NewNop()).ImageURL(ctx, "raw"))
}
