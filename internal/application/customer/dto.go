package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/customer"
)

// CreateUserRequest represents a request to register a storefront user
type CreateUserRequest struct {
	Username          string `json:"username" binding:"required,min=1,max=150"`
	Email             string `json:"email" binding:"required,email,max=254"`
	FirstName         string `json:"first_name" binding:"max=150"`
	LastName          string `json:"last_name" binding:"max=150"`
	ProfilePictureURL string `json:"profile_picture_url" binding:"omitempty,url,max=500"`
}

// AddAddressRequest represents a request to set a user's address.
// Email is checked by the service so that a missing email yields the
// storefront's own message.
type AddAddressRequest struct {
	Email  string `json:"email"`
	Street string `json:"street" binding:"max=255"`
	City   string `json:"city" binding:"max=100"`
	State  string `json:"state" binding:"max=50"`
	Phone  string `json:"phone" binding:"max=13"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Username          string    `json:"username"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	ProfilePictureURL string    `json:"profile_picture_url"`
}

// ExistsResponse answers the existing-user check
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// AddressResponse represents an address in API responses
type AddressResponse struct {
	ID        uuid.UUID     `json:"id"`
	User      *UserResponse `json:"customer,omitempty"`
	Street    string        `json:"street"`
	City      string        `json:"city"`
	State     string        `json:"state"`
	Phone     string        `json:"phone"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *customer.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		Username:          u.Username,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		ProfilePictureURL: u.ProfilePictureURL,
	}
}

// ToAddressResponse converts a domain Address to AddressResponse
func ToAddressResponse(a *customer.Address, u *customer.User) AddressResponse {
	resp := AddressResponse{
		ID:        a.ID,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		Phone:     a.Phone,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if u != nil {
		user := ToUserResponse(u)
		resp.User = &user
	}
	return resp
}
