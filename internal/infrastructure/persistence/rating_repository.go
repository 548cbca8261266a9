package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopline/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRatingRepository implements catalog.RatingRepository using GORM
type GormRatingRepository struct {
	db *gorm.DB
}

// NewGormRatingRepository creates a new GormRatingRepository
func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// FindByProduct finds the rating row of a product
func (r *GormRatingRepository) FindByProduct(ctx context.Context, productID uuid.UUID) (*catalog.ProductRating, error) {
	var model models.ProductRatingModel
	if err := dbFromContext(ctx, r.db).Where("product_id = ?", productID).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// LockProduct takes SELECT ... FOR UPDATE on the product row. Dialects
// without row locks (sqlite) drop the clause and rely on their single writer.
func (r *GormRatingRepository) LockProduct(ctx context.Context, productID uuid.UUID) error {
	var model models.ProductModel
	return translateError(dbFromContext(ctx, r.db).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Select("id").
		Where("id = ?", productID).
		Take(&model).Error)
}

// Recompute aggregates the reviews of productID and upserts the rating row
func (r *GormRatingRepository) Recompute(ctx context.Context, productID uuid.UUID) (*catalog.ProductRating, error) {
	db := dbFromContext(ctx, r.db)

	var agg struct {
		Average sql.NullFloat64
		Total   int
	}
	if err := db.Model(&models.ReviewModel{}).
		Select("AVG(rating) AS average, COUNT(*) AS total").
		Where("product_id = ?", productID).
		Scan(&agg).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	now := time.Now().UTC()
	model := models.ProductRatingModel{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProductID:     productID,
		AverageRating: agg.Average.Float64,
		TotalReviews:  agg.Total,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"average_rating", "total_reviews", "updated_at"}),
	}).Create(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to upsert product rating: %w", err)
	}

	return r.FindByProduct(ctx, productID)
}

var _ catalog.RatingRepository = (*GormRatingRepository)(nil)
