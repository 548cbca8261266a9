package customer

import (
	"context"
	"errors"

	"github.com/shopline/backend/internal/domain/customer"
	"github.com/shopline/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ErrAddressNotFound is reported when a user has not saved an address yet.
// It carries its own code so handlers can tell it apart from an unknown user.
var ErrAddressNotFound = shared.NewDomainError("ADDRESS_NOT_FOUND", "Address not found")

// CustomerService handles users and their addresses
type CustomerService struct {
	userRepo    customer.UserRepository
	addressRepo customer.AddressRepository
	logger      *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	userRepo customer.UserRepository,
	addressRepo customer.AddressRepository,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		userRepo:    userRepo,
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// CreateUser registers a new user
func (s *CustomerService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	user, err := customer.NewUser(req.Email, req.Username, req.FirstName, req.LastName, req.ProfilePictureURL)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Error("Failed to check email existence", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, shared.AlreadyExists("A user with this email already exists")
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.AlreadyExists("A user with this email already exists")
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, err
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := ToUserResponse(user)
	return &resp, nil
}

// UserExists reports whether a user is registered under email
func (s *CustomerService) UserExists(ctx context.Context, email string) (bool, error) {
	email, err := customer.NormalizeEmail(email)
	if err != nil {
		return false, err
	}
	return s.userRepo.ExistsByEmail(ctx, email)
}

// FindUser looks a user up by email
func (s *CustomerService) FindUser(ctx context.Context, email string) (*customer.User, error) {
	email, err := customer.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// AddAddress creates or replaces the address of the user owning req.Email
func (s *CustomerService) AddAddress(ctx context.Context, req AddAddressRequest) (*AddressResponse, error) {
	user, err := s.FindUser(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	address, err := customer.NewAddress(user.ID, req.Street, req.City, req.State, req.Phone)
	if err != nil {
		return nil, err
	}

	saved, err := s.addressRepo.Upsert(ctx, address)
	if err != nil {
		s.logger.Error("Failed to save address",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
		return nil, err
	}

	resp := ToAddressResponse(saved, user)
	return &resp, nil
}

// GetAddress returns the address of the user owning email. A user without
// an address yields ErrAddressNotFound.
func (s *CustomerService) GetAddress(ctx context.Context, email string) (*AddressResponse, error) {
	user, err := s.FindUser(ctx, email)
	if err != nil {
		return nil, err
	}

	address, err := s.addressRepo.FindByUser(ctx, user.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}

	resp := ToAddressResponse(address, user)
	return &resp, nil
}
