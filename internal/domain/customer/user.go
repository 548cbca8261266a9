package customer

import (
	"net/mail"
	"strings"

	"github.com/shopline/backend/internal/domain/shared"
)

// User is a storefront customer identified by email
type User struct {
	shared.BaseEntity
	Email             string
	Username          string
	FirstName         string
	LastName          string
	ProfilePictureURL string
}

// NewUser creates a new user
func NewUser(email, username, firstName, lastName, pictureURL string) (*User, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username is required")
	}

	return &User{
		BaseEntity:        shared.NewBaseEntity(),
		Email:             email,
		Username:          username,
		FirstName:         strings.TrimSpace(firstName),
		LastName:          strings.TrimSpace(lastName),
		ProfilePictureURL: strings.TrimSpace(pictureURL),
	}, nil
}

// NormalizeEmail validates an email address and returns its bare
// addr-spec, dropping any display name ("Bob <bob@x.io>" -> "bob@x.io")
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email is not valid")
	}
	return addr.Address, nil
}
