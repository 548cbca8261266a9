package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/review"
	"github.com/shopline/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReviewRepository implements review.ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByID finds a review by its ID with its user loaded
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	var model models.ReviewModel
	if err := dbFromContext(ctx, r.db).Preload("User").First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByProduct lists a product's reviews newest first
func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]review.Review, error) {
	var rows []models.ReviewModel
	if err := dbFromContext(ctx, r.db).
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	reviews := make([]review.Review, len(rows))
	for i := range rows {
		reviews[i] = *rows[i].ToDomain()
	}
	return reviews, nil
}

// Create inserts a review
func (r *GormReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	var model models.ReviewModel
	model.FromDomain(rv)
	return translateError(dbFromContext(ctx, r.db).Omit(clause.Associations).Create(&model).Error)
}

// Save updates rating and text of a review
func (r *GormReviewRepository) Save(ctx context.Context, rv *review.Review) error {
	result := dbFromContext(ctx, r.db).Model(&models.ReviewModel{}).
		Where("id = ?", rv.ID).
		Updates(map[string]any{
			"rating":     rv.Rating,
			"review":     rv.Text,
			"updated_at": rv.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes a review
func (r *GormReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.ReviewModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}

var _ review.ReviewRepository = (*GormReviewRepository)(nil)
