package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so that errors built with
// a custom message still match the sentinel values below.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound         = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists    = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput     = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState     = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrPaymentGateway   = NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment gateway request failed")
	ErrInvalidSignature = NewDomainError("INVALID_SIGNATURE", "Webhook signature verification failed")
)

// NotFound builds a NOT_FOUND error with a specific message
func NotFound(message string) *DomainError {
	return NewDomainError(ErrNotFound.Code, message)
}

// AlreadyExists builds an ALREADY_EXISTS error with a specific message
func AlreadyExists(message string) *DomainError {
	return NewDomainError(ErrAlreadyExists.Code, message)
}

// InvalidInput builds an INVALID_INPUT error with a specific message
func InvalidInput(message string) *DomainError {
	return NewDomainError(ErrInvalidInput.Code, message)
}
