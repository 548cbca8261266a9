package catalog

import (
	"context"
	"errors"
	"strings"

	reviewapp "github.com/shopline/backend/internal/application/review"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopline/backend/internal/domain/review"
	"github.com/shopline/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CatalogService handles product and category browsing and the admin
// write path for both
type CatalogService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	reviewRepo   review.ReviewRepository
	ratingRepo   catalog.RatingRepository
	images       ImageStore
	presenter    *Presenter
	logger       *zap.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	reviewRepo review.ReviewRepository,
	ratingRepo catalog.RatingRepository,
	presenter *Presenter,
	images ImageStore,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
		ratingRepo:   ratingRepo,
		images:       images,
		presenter:    presenter,
		logger:       logger,
	}
}

// ListFeatured lists featured products; limit <= 0 lists all of them
func (s *CatalogService) ListFeatured(ctx context.Context, limit int) ([]ProductResponse, error) {
	products, err := s.productRepo.FindFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.presenter.Products(ctx, products), nil
}

// GetProduct returns the product detail view for slug
func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*ProductDetailResponse, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("Product not found")
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.FindByProduct(ctx, product.ID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	similar := []catalog.Product{}
	if product.CategoryID != nil {
		similar, err = s.productRepo.FindByCategory(ctx, *product.CategoryID, &product.ID)
		if err != nil {
			return nil, err
		}
	}

	stars := review.CountStars(reviews)
	return &ProductDetailResponse{
		ProductResponse: s.presenter.Product(ctx, product),
		Reviews:         reviewapp.ToReviewResponses(reviews),
		Rating:          reviewapp.ToRatingResponse(rating),
		SimilarProducts: s.presenter.Products(ctx, similar),
		PoorReview:      stars.Poor,
		FairReview:      stars.Fair,
		GoodReview:      stars.Good,
		VeryGoodReview:  stars.VeryGood,
		ExcellentReview: stars.Excellent,
	}, nil
}

// ListCategories lists all categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.presenter.Categories(ctx, categories), nil
}

// GetCategory returns a category with its products
func (s *CatalogService) GetCategory(ctx context.Context, slug string) (*CategoryDetailResponse, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("Category not found")
		}
		return nil, err
	}

	products, err := s.productRepo.FindByCategory(ctx, category.ID, nil)
	if err != nil {
		return nil, err
	}

	return &CategoryDetailResponse{
		CategoryResponse: s.presenter.Category(ctx, category),
		Products:         s.presenter.Products(ctx, products),
	}, nil
}

// Search matches query against product names, descriptions and category names
func (s *CatalogService) Search(ctx context.Context, query string) ([]ProductResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, shared.InvalidInput("No query provided")
	}

	products, err := s.productRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.presenter.Products(ctx, products), nil
}

// CreateCategory creates a category with a slug derived from its name
func (s *CatalogService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Name, req.Image)
	if err != nil {
		return nil, err
	}
	if err := s.checkImage(ctx, category.Image); err != nil {
		return nil, err
	}

	slug, err := catalog.UniqueSlug(ctx, category.Name, s.categoryRepo.ExistsBySlug)
	if err != nil {
		return nil, err
	}
	category.AssignSlug(slug)

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.AlreadyExists("A category with this slug already exists")
		}
		s.logger.Error("Failed to create category", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("slug", category.Slug))

	resp := s.presenter.Category(ctx, category)
	return &resp, nil
}

// CreateProduct creates a product with a slug derived from its name
func (s *CatalogService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	var category *catalog.Category
	if req.CategoryID != nil {
		var err error
		category, err = s.categoryRepo.FindByID(ctx, *req.CategoryID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
	}

	product, err := catalog.NewProduct(req.Name, req.Description, req.Price, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.checkImage(ctx, req.Image); err != nil {
		return nil, err
	}
	product.SetImage(req.Image)
	product.SetFeatured(req.Featured)

	slug, err := catalog.UniqueSlug(ctx, product.Name, s.productRepo.ExistsBySlug)
	if err != nil {
		return nil, err
	}
	product.AssignSlug(slug)

	if err := s.productRepo.Save(ctx, product); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.AlreadyExists("A product with this slug already exists")
		}
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("slug", product.Slug))

	product.Category = category
	resp := s.presenter.Product(ctx, product)
	return &resp, nil
}

func (s *CatalogService) checkImage(ctx context.Context, key string) error {
	if key == "" || s.images == nil {
		return nil
	}
	ok, err := s.images.Exists(ctx, key)
	if err != nil {
		s.logger.Warn("Failed to check image", zap.String("key", key), zap.Error(err))
		return err
	}
	if !ok {
		return shared.NewDomainError("INVALID_IMAGE", "Image not found in storage")
	}
	return nil
}
