package customer

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopline/backend/internal/domain/shared"
)

// Field limits
const (
	MaxStateLength = 50
	MaxPhoneLength = 13
)

// Address is the single shipping address of a user
type Address struct {
	shared.BaseEntity
	UserID uuid.UUID
	Street string
	City   string
	State  string
	Phone  string
}

// NewAddress creates an address for userID
func NewAddress(userID uuid.UUID, street, city, state, phone string) (*Address, error) {
	a := &Address{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Street:     strings.TrimSpace(street),
		City:       strings.TrimSpace(city),
		State:      strings.TrimSpace(state),
		Phone:      strings.TrimSpace(phone),
	}
	if utf8.RuneCountInString(a.State) > MaxStateLength {
		return nil, shared.NewDomainError("INVALID_STATE_NAME", "State cannot exceed 50 characters")
	}
	if utf8.RuneCountInString(a.Phone) > MaxPhoneLength {
		return nil, shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 13 characters")
	}
	return a, nil
}
