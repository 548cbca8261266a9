package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/wishlist"
	"github.com/shopline/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormWishlistRepository implements wishlist.Repository using GORM
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewGormWishlistRepository creates a new GormWishlistRepository
func NewGormWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// Create inserts a wishlist entry
func (r *GormWishlistRepository) Create(ctx context.Context, entry *wishlist.Entry) error {
	var model models.WishlistModel
	model.FromDomain(entry)
	return translateError(dbFromContext(ctx, r.db).Omit(clause.Associations).Create(&model).Error)
}

// Delete removes the (user, product) entry
func (r *GormWishlistRepository) Delete(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	result := dbFromContext(ctx, r.db).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindByUser lists a user's entries newest first
func (r *GormWishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]wishlist.Entry, error) {
	var rows []models.WishlistModel
	if err := dbFromContext(ctx, r.db).
		Preload("Product").
		Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]wishlist.Entry, len(rows))
	for i := range rows {
		entries[i] = *rows[i].ToDomain()
	}
	return entries, nil
}

// Exists reports whether the user saved productID
func (r *GormWishlistRepository) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	if err := dbFromContext(ctx, r.db).Model(&models.WishlistModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ wishlist.Repository = (*GormWishlistRepository)(nil)
