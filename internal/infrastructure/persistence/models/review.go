package models

import (
	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/review"
	"github.com/shopline/backend/internal/domain/wishlist"
)

// ReviewModel is the persistence model for Review.
type ReviewModel struct {
	BaseModel
	ProductID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product,priority:2;index"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	UserID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_product,priority:1"`
	User      *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Rating    int           `gorm:"not null"`
	Text      string        `gorm:"column:review;type:text"`
}

// TableName returns the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts the persistence model to a domain Review.
func (m *ReviewModel) ToDomain() *review.Review {
	r := &review.Review{
		BaseEntity: m.BaseModel.ToDomain(),
		ProductID:  m.ProductID,
		UserID:     m.UserID,
		Rating:     m.Rating,
		Text:       m.Text,
	}
	if m.User != nil {
		r.User = m.User.ToDomain()
	}
	return r
}

// FromDomain populates the persistence model from a domain Review.
func (m *ReviewModel) FromDomain(r *review.Review) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.ProductID = r.ProductID
	m.UserID = r.UserID
	m.Rating = r.Rating
	m.Text = r.Text
}

// WishlistModel is the persistence model for a wishlist entry.
type WishlistModel struct {
	BaseModel
	UserID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_wishlists_user_product,priority:1"`
	User      *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ProductID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_wishlists_user_product,priority:2"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (WishlistModel) TableName() string {
	return "wishlists"
}

// ToDomain converts the persistence model to a domain wishlist entry.
func (m *WishlistModel) ToDomain() *wishlist.Entry {
	e := &wishlist.Entry{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		ProductID:  m.ProductID,
	}
	if m.Product != nil {
		e.Product = m.Product.ToDomain()
	}
	return e
}

// FromDomain populates the persistence model from a domain wishlist entry.
func (m *WishlistModel) FromDomain(e *wishlist.Entry) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.UserID = e.UserID
	m.ProductID = e.ProductID
}
