package models

import (
	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CategoryModel is the persistence model for the Category domain entity.
type CategoryModel struct {
	BaseModel
	Name  string `gorm:"type:varchar(100);not null"`
	Slug  string `gorm:"type:varchar(120);not null;uniqueIndex"`
	Image string `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category entity.
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Slug:       m.Slug,
		Image:      m.Image,
	}
}

// FromDomain populates the persistence model from a domain Category entity.
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Slug = c.Slug
	m.Image = c.Image
}

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name        string          `gorm:"type:varchar(100);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Slug        string          `gorm:"type:varchar(120);not null;uniqueIndex"`
	Image       string          `gorm:"type:varchar(255)"`
	Featured    bool            `gorm:"not null;default:false;index"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Category    *CategoryModel  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	p := &catalog.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Slug:        m.Slug,
		Image:       m.Image,
		Featured:    m.Featured,
		CategoryID:  m.CategoryID,
	}
	if m.Category != nil {
		p.Category = m.Category.ToDomain()
	}
	return p
}

// FromDomain populates the persistence model from a domain Product entity.
// The category association is not copied.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Description = p.Description
	m.Price = p.Price
	m.Slug = p.Slug
	m.Image = p.Image
	m.Featured = p.Featured
	m.CategoryID = p.CategoryID
}

// ProductRatingModel is the persistence model for ProductRating.
type ProductRatingModel struct {
	BaseModel
	ProductID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	AverageRating float64   `gorm:"not null;default:0"`
	TotalReviews  int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductRatingModel) TableName() string {
	return "product_ratings"
}

// ToDomain converts the persistence model to a domain ProductRating.
func (m *ProductRatingModel) ToDomain() *catalog.ProductRating {
	return &catalog.ProductRating{
		ID:            m.ID,
		ProductID:     m.ProductID,
		AverageRating: m.AverageRating,
		TotalReviews:  m.TotalReviews,
	}
}
