package persistence

import (
	"context"

	"github.com/shopline/backend/internal/domain/order"
	"github.com/shopline/backend/internal/domain/shared"
	"github.com/shopline/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements order.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// ExistsByCheckoutID reports whether an order exists for the session
func (r *GormOrderRepository) ExistsByCheckoutID(ctx context.Context, checkoutID string) (bool, error) {
	var count int64
	if err := dbFromContext(ctx, r.db).Model(&models.OrderModel{}).
		Where("stripe_checkout_id = ?", checkoutID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts an order together with its items. The order row is
// written with ON CONFLICT (stripe_checkout_id) DO NOTHING, so a session
// that already has an order yields shared.ErrAlreadyExists without a
// database error and the surrounding transaction stays usable.
func (r *GormOrderRepository) Create(ctx context.Context, o *order.Order) error {
	var model models.OrderModel
	model.FromDomain(o)
	db := dbFromContext(ctx, r.db)

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "stripe_checkout_id"}},
		DoNothing: true,
	}).Omit(clause.Associations).Create(&model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrAlreadyExists
	}

	if len(model.Items) == 0 {
		return nil
	}
	return translateError(db.Omit(clause.Associations).Create(&model.Items).Error)
}

// FindByEmail lists a customer's orders newest first
func (r *GormOrderRepository) FindByEmail(ctx context.Context, email string) ([]order.Order, error) {
	var rows []models.OrderModel
	if err := dbFromContext(ctx, r.db).
		Preload("Items.Product").
		Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	orders := make([]order.Order, len(rows))
	for i := range rows {
		orders[i] = *rows[i].ToDomain()
	}
	return orders, nil
}

var _ order.OrderRepository = (*GormOrderRepository)(nil)
