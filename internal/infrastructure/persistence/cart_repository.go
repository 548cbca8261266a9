package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/cart"
	"github.com/shopline/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements cart.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetOrCreate inserts an empty cart for code unless one exists, then loads it
func (r *GormCartRepository) GetOrCreate(ctx context.Context, code string) (*cart.Cart, error) {
	c, err := cart.NewCart(code)
	if err != nil {
		return nil, err
	}

	var model models.CartModel
	model.FromDomain(c)
	if err := dbFromContext(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "cart_code"}}, DoNothing: true}).
		Omit(clause.Associations).
		Create(&model).Error; err != nil {
		return nil, translateError(err)
	}

	return r.FindByCode(ctx, c.Code)
}

// FindByCode finds a cart by code with its items and their products loaded
func (r *GormCartRepository) FindByCode(ctx context.Context, code string) (*cart.Cart, error) {
	var model models.CartModel
	if err := dbFromContext(ctx, r.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Product").
		Where("cart_code = ?", code).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// Delete removes a cart and its items
func (r *GormCartRepository) Delete(ctx context.Context, cartID uuid.UUID) error {
	db := dbFromContext(ctx, r.db)
	if err := db.Where("cart_id = ?", cartID).Delete(&models.CartItemModel{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", cartID).Delete(&models.CartModel{}).Error
}

// UpsertItem adds productID to the cart or resets the existing line to 1
func (r *GormCartRepository) UpsertItem(ctx context.Context, cartID, productID uuid.UUID) (*cart.CartItem, error) {
	db := dbFromContext(ctx, r.db)

	var model models.CartItemModel
	model.FromDomain(cart.NewCartItem(cartID, productID))
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   1,
			"updated_at": time.Now().UTC(),
		}),
	}).Omit(clause.Associations).Create(&model).Error; err != nil {
		return nil, translateError(err)
	}

	var stored models.CartItemModel
	if err := db.Preload("Product").
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&stored).Error; err != nil {
		return nil, translateError(err)
	}
	return stored.ToDomain(), nil
}

// FindItemByID finds a cart line with its product loaded
func (r *GormCartRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*cart.CartItem, error) {
	var model models.CartItemModel
	if err := dbFromContext(ctx, r.db).Preload("Product").First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// SaveItem persists the quantity of a cart line
func (r *GormCartRepository) SaveItem(ctx context.Context, item *cart.CartItem) error {
	result := dbFromContext(ctx, r.db).Model(&models.CartItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"quantity":   item.Quantity,
			"updated_at": item.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteItem removes a cart line
func (r *GormCartRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.CartItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}

// ContainsProduct reports whether the cart for code holds productID
func (r *GormCartRepository) ContainsProduct(ctx context.Context, code string, productID uuid.UUID) (bool, error) {
	var count int64
	if err := dbFromContext(ctx, r.db).Model(&models.CartItemModel{}).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("carts.cart_code = ? AND cart_items.product_id = ?", code, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ cart.CartRepository = (*GormCartRepository)(nil)
