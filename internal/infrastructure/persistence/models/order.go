package models

import (
	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/order"
	"gorm.io/datatypes"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	BaseModel
	StripeCheckoutID string           `gorm:"type:varchar(255);not null;uniqueIndex"`
	Amount           int64            `gorm:"not null"`
	Currency         string           `gorm:"type:varchar(10);not null"`
	CustomerEmail    string           `gorm:"type:varchar(254);index"`
	Status           order.Status     `gorm:"type:varchar(20);not null;default:'Pending'"`
	SessionSnapshot  datatypes.JSON   `gorm:"column:session_snapshot"`
	Items            []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order.
func (m *OrderModel) ToDomain() *order.Order {
	o := &order.Order{
		BaseEntity:       m.BaseModel.ToDomain(),
		StripeCheckoutID: m.StripeCheckoutID,
		Amount:           m.Amount,
		Currency:         m.Currency,
		CustomerEmail:    m.CustomerEmail,
		Status:           m.Status,
		SessionSnapshot:  []byte(m.SessionSnapshot),
		Items:            make([]order.OrderItem, 0, len(m.Items)),
	}
	for i := range m.Items {
		o.Items = append(o.Items, m.Items[i].ToDomain())
	}
	return o
}

// FromDomain populates the persistence model and its items from a domain Order.
func (m *OrderModel) FromDomain(o *order.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.StripeCheckoutID = o.StripeCheckoutID
	m.Amount = o.Amount
	m.Currency = o.Currency
	m.CustomerEmail = o.CustomerEmail
	m.Status = o.Status
	if len(o.SessionSnapshot) > 0 {
		m.SessionSnapshot = datatypes.JSON(o.SessionSnapshot)
	}
	m.Items = make([]OrderItemModel, 0, len(o.Items))
	for _, item := range o.Items {
		m.Items = append(m.Items, OrderItemModel{
			ID:        item.ID,
			OrderID:   o.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
}

// OrderItemModel is the persistence model for OrderItem.
type OrderItemModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID     `gorm:"type:uuid;not null"`
	Product   *ProductModel `gorm:"foreignKey:ProductID"`
	Quantity  int           `gorm:"not null;default:1"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem.
func (m *OrderItemModel) ToDomain() order.OrderItem {
	item := order.OrderItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
	}
	if m.Product != nil {
		item.Product = m.Product.ToDomain()
	}
	return item
}
