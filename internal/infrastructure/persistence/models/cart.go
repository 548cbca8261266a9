package models

import (
	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/cart"
)

// CartModel is the persistence model for the Cart aggregate root.
type CartModel struct {
	BaseModel
	Code  string          `gorm:"column:cart_code;type:varchar(11);not null;uniqueIndex"`
	Items []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CartModel) TableName() string {
	return "carts"
}

// ToDomain converts the persistence model to a domain Cart.
func (m *CartModel) ToDomain() *cart.Cart {
	c := &cart.Cart{
		BaseEntity: m.BaseModel.ToDomain(),
		Code:       m.Code,
		Items:      make([]cart.CartItem, 0, len(m.Items)),
	}
	for i := range m.Items {
		c.Items = append(c.Items, *m.Items[i].ToDomain())
	}
	return c
}

// FromDomain populates the persistence model from a domain Cart. Items are
// persisted separately.
func (m *CartModel) FromDomain(c *cart.Cart) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Code = c.Code
}

// CartItemModel is the persistence model for CartItem.
type CartItemModel struct {
	BaseModel
	CartID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product,priority:1"`
	ProductID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product,priority:2"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int           `gorm:"not null;default:1"`
}

// TableName returns the table name for GORM
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ToDomain converts the persistence model to a domain CartItem.
func (m *CartItemModel) ToDomain() *cart.CartItem {
	item := &cart.CartItem{
		BaseEntity: m.BaseModel.ToDomain(),
		CartID:     m.CartID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
	}
	if m.Product != nil {
		item.Product = m.Product.ToDomain()
	}
	return item
}

// FromDomain populates the persistence model from a domain CartItem.
func (m *CartItemModel) FromDomain(i *cart.CartItem) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.CartID = i.CartID
	m.ProductID = i.ProductID
	m.Quantity = i.Quantity
}
