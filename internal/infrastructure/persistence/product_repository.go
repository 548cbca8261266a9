package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopline/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := dbFromContext(ctx, r.db).Preload("Category").First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindBySlug finds a product by slug with its category loaded
func (r *GormProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	var model models.ProductModel
	if err := dbFromContext(ctx, r.db).
		Preload("Category").
		Where("slug = ?", slug).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindFeatured lists featured products, newest first
func (r *GormProductRepository) FindFeatured(ctx context.Context, limit int) ([]catalog.Product, error) {
	query := dbFromContext(ctx, r.db).
		Preload("Category").
		Where("featured = ?", true).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []models.ProductModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainProducts(rows), nil
}

// FindByCategory lists the products of a category, optionally excluding one
func (r *GormProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, exclude *uuid.UUID) ([]catalog.Product, error) {
	query := dbFromContext(ctx, r.db).Where("category_id = ?", categoryID)
	if exclude != nil {
		query = query.Where("id <> ?", *exclude)
	}

	var rows []models.ProductModel
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainProducts(rows), nil
}

// likeEscaper escapes LIKE wildcards with '!', which needs no quoting in
// any supported dialect
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Search matches query case-insensitively against product name, description
// and category name. A product appears once even if several fields match.
func (r *GormProductRepository) Search(ctx context.Context, query string) ([]catalog.Product, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"

	var rows []models.ProductModel
	if err := dbFromContext(ctx, r.db).
		Select("products.*").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("LOWER(products.name) LIKE ? ESCAPE '!'", pattern).
		Or("LOWER(products.description) LIKE ? ESCAPE '!'", pattern).
		Or("LOWER(categories.name) LIKE ? ESCAPE '!'", pattern).
		Preload("Category").
		Order("products.name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainProducts(rows), nil
}

// ExistsBySlug reports whether a product uses slug
func (r *GormProductRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := dbFromContext(ctx, r.db).Model(&models.ProductModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a product without touching its category
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	var model models.ProductModel
	model.FromDomain(product)
	return translateError(dbFromContext(ctx, r.db).Omit(clause.Associations).Save(&model).Error)
}

func toDomainProducts(rows []models.ProductModel) []catalog.Product {
	products := make([]catalog.Product, len(rows))
	for i := range rows {
		products[i] = *rows[i].ToDomain()
	}
	return products
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
