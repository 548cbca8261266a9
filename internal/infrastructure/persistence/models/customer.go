package models

import (
	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/customer"
)

// UserModel is the persistence model for the User entity.
type UserModel struct {
	BaseModel
	Email             string `gorm:"type:varchar(254);not null;uniqueIndex"`
	Username          string `gorm:"type:varchar(150);not null"`
	FirstName         string `gorm:"type:varchar(150)"`
	LastName          string `gorm:"type:varchar(150)"`
	ProfilePictureURL string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User.
func (m *UserModel) ToDomain() *customer.User {
	return &customer.User{
		BaseEntity:        m.BaseModel.ToDomain(),
		Email:             m.Email,
		Username:          m.Username,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		ProfilePictureURL: m.ProfilePictureURL,
	}
}

// FromDomain populates the persistence model from a domain User.
func (m *UserModel) FromDomain(u *customer.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Email = u.Email
	m.Username = u.Username
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.ProfilePictureURL = u.ProfilePictureURL
}

// AddressModel is the persistence model for Address. One row per user.
type AddressModel struct {
	BaseModel
	UserID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	User   *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Street string     `gorm:"type:varchar(255)"`
	City   string     `gorm:"type:varchar(100)"`
	State  string     `gorm:"type:varchar(50)"`
	Phone  string     `gorm:"type:varchar(13)"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "customer_addresses"
}

// ToDomain converts the persistence model to a domain Address.
func (m *AddressModel) ToDomain() *customer.Address {
	return &customer.Address{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Street:     m.Street,
		City:       m.City,
		State:      m.State,
		Phone:      m.Phone,
	}
}

// FromDomain populates the persistence model from a domain Address.
func (m *AddressModel) FromDomain(a *customer.Address) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.UserID = a.UserID
	m.Street = a.Street
	m.City = a.City
	m.State = a.State
	m.Phone = a.Phone
}
