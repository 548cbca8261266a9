package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/customer"
	"github.com/shopline/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements customer.UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*customer.User, error) {
	var model models.UserModel
	if err := dbFromContext(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// ExistsByEmail reports whether a user with email exists
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := dbFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a user
func (r *GormUserRepository) Create(ctx context.Context, user *customer.User) error {
	var model models.UserModel
	model.FromDomain(user)
	return translateError(dbFromContext(ctx, r.db).Create(&model).Error)
}

var _ customer.UserRepository = (*GormUserRepository)(nil)

// GormAddressRepository implements customer.AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Upsert inserts the address or overwrites the user's existing one
func (r *GormAddressRepository) Upsert(ctx context.Context, address *customer.Address) (*customer.Address, error) {
	var model models.AddressModel
	model.FromDomain(address)
	model.UpdatedAt = time.Now().UTC()

	if err := dbFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"street", "city", "state", "phone", "updated_at"}),
	}).Omit(clause.Associations).Create(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return r.FindByUser(ctx, address.UserID)
}

// FindByUser finds the address of a user
func (r *GormAddressRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*customer.Address, error) {
	var model models.AddressModel
	if err := dbFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

var _ customer.AddressRepository = (*GormAddressRepository)(nil)
