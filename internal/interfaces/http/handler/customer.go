package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	customerapp "github.com/shopline/backend/internal/application/customer"
	"github.com/shopline/backend/internal/interfaces/http/dto"
	"github.com/shopline/backend/internal/interfaces/http/middleware"
)

// CustomerService is the user and address use-case surface the handler needs
type CustomerService interface {
	CreateUser(ctx context.Context, req customerapp.CreateUserRequest) (*customerapp.UserResponse, error)
	UserExists(ctx context.Context, email string) (bool, error)
	AddAddress(ctx context.Context, req customerapp.AddAddressRequest) (*customerapp.AddressResponse, error)
	GetAddress(ctx context.Context, email string) (*customerapp.AddressResponse, error)
}

// CustomerHandler handles user and address endpoints
type CustomerHandler struct {
	BaseHandler
	customerService CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateUser handles POST /users
func (h *CustomerHandler) CreateUser(c *gin.Context) {
	var req customerapp.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.customerService.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Exists handles GET /users/exists/:email. An unknown email answers 404
// with {exists: false} in the data so storefronts can branch on either.
func (h *CustomerHandler) Exists(c *gin.Context) {
	exists, err := h.customerService.UserExists(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := customerapp.ExistsResponse{Exists: exists}
	if !exists {
		c.JSON(http.StatusNotFound, dto.NewSuccessResponse(resp))
		return
	}
	h.Success(c, resp)
}

// AddAddress handles POST /addresses
func (h *CustomerHandler) AddAddress(c *gin.Context) {
	var req customerapp.AddAddressRequest
	if !h.BindJSON(c, &req) {
		return
	}

	address, err := h.customerService.AddAddress(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, address)
}

// GetAddress handles GET /addresses?email=. A user without an address gets
// a 200 carrying the error, which storefronts treat as an empty form.
func (h *CustomerHandler) GetAddress(c *gin.Context) {
	address, err := h.customerService.GetAddress(c.Request.Context(), c.Query("email"))
	if errors.Is(err, customerapp.ErrAddressNotFound) {
		c.JSON(http.StatusOK, dto.NewErrorResponseWithRequestID(
			dto.NormalizeErrorCode(customerapp.ErrAddressNotFound.Code),
			customerapp.ErrAddressNotFound.Message,
			middleware.GetRequestID(c),
		))
		return
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, address)
}
