package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	customerapp "github.com/shopline/backend/internal/application/customer"
	"github.com/shopline/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func customerRouter(svc *MockCustomerService) http.Handler {
	h := NewCustomerHandler(svc)
	r := newEngine()
	r.POST("/users", h.CreateUser)
	r.GET("/users/exists/:email", h.Exists)
	r.POST("/addresses", h.AddAddress)
	r.GET("/addresses", h.GetAddress)
	return r
}

func TestCustomerHandler_CreateUser(t *testing.T) {
	svc := new(MockCustomerService)
	svc.On("CreateUser", mock.Anything, customerapp.CreateUserRequest{Username: "ada", Email: "ada@example.com"}).
		Return(&customerapp.UserResponse{ID: uuid.New(), Username: "ada", Email: "ada@example.com"}, nil).Once()
	svc.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, shared.AlreadyExists("A user with this email already exists"))

	w := do(customerRouter(svc), http.MethodPost, "/users", `{"username":"ada","email":"ada@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(customerRouter(svc), http.MethodPost, "/users", `{"username":"ada","email":"ada@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(customerRouter(svc), http.MethodPost, "/users", `{"username":"ada","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_Exists(t *testing.T) {
	svc := new(MockCustomerService)
	svc.On("UserExists", mock.Anything, "ada@example.com").Return(true, nil)
	svc.On("UserExists", mock.Anything, "ghost@example.com").Return(false, nil)

	w := do(customerRouter(svc), http.MethodGet, "/users/exists/ada@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"exists":true}`, string(decode(t, w).Data))

	w = do(customerRouter(svc), http.MethodGet, "/users/exists/ghost@example.com", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"exists":false}`, string(decode(t, w).Data))
}

func TestCustomerHandler_Addresses(t *testing.T) {
	svc := new(MockCustomerService)
	svc.On("AddAddress", mock.Anything, customerapp.AddAddressRequest{City: "Lima"}).
		Return(nil, shared.InvalidInput("Email is required"))
	svc.On("GetAddress", mock.Anything, "ada@example.com").Return(&customerapp.AddressResponse{City: "Lima"}, nil)
	svc.On("GetAddress", mock.Anything, "new@example.com").Return(nil, customerapp.ErrAddressNotFound)

	w := do(customerRouter(svc), http.MethodPost, "/addresses", `{"city":"Lima"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email is required", decode(t, w).Error.Message)

	w = do(customerRouter(svc), http.MethodGet, "/addresses?email=ada@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"city":"Lima"`)

	w = do(customerRouter(svc), http.MethodGet, "/addresses?email=new@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Address not found", env.Error.Message)
}
