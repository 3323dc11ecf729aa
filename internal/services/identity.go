package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/example/callerid/internal/models"
	"github.com/example/callerid/internal/repository"
	"github.com/example/callerid/internal/utils"
)

const (
	msgNameMobileRequired = "Name & Mobile No required"
	msgInvalidMobile      = "Mobile number must be exactly 10 digits"
	msgInvalidEmail       = "Email must look like local@domain"
	msgSignupFields       = "Name, mobile, email and address are required"
	msgUserExists         = "User already exists with given mobile or email"
)

// LoginInput is the payload of the login-or-register flow. Email and
// Address are optional.
type LoginInput struct {
	Name    string
	Mobile  string
	Email   string
	Address string
}

// SignupInput is the payload of explicit registration. Every field is
// required.
type SignupInput struct {
	Name    string
	Mobile  string
	Email   string
	Address string
}

// IdentityService resolves phone-number identities against the user store.
type IdentityService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewIdentityService constructs an IdentityService.
func NewIdentityService(users repository.UserRepository, logger *slog.Logger) *IdentityService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentityService{users: users, logger: logger}
}

// ResolveOrCreate returns the user registered under the mobile number,
// creating it from the input when absent. An existing user is returned as
// stored: differing name, email or address on later calls are ignored.
func (s *IdentityService) ResolveOrCreate(ctx context.Context, in LoginInput) (*models.User, error) {
	in.Name, in.Mobile = utils.Clean(in.Name), utils.Clean(in.Mobile)
	in.Email, in.Address = utils.Clean(in.Email), utils.Clean(in.Address)

	if in.Name == "" || in.Mobile == "" {
		return nil, validationError(msgNameMobileRequired)
	}
	if !utils.IsValidMobile(in.Mobile) {
		return nil, validationError(msgInvalidMobile)
	}
	if in.Email != "" && !utils.IsValidEmail(in.Email) {
		return nil, validationError(msgInvalidEmail)
	}

	existing, err := s.users.FindByMobile(ctx, in.Mobile)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, storeError(err)
	}

	user := &models.User{
		Name:    in.Name,
		Mobile:  in.Mobile,
		Address: in.Address,
	}
	if in.Email != "" {
		user.Email = &in.Email
	}

	if err := s.create(ctx, user, "login"); err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterNewUser creates a user through the explicit signup flow. It
// rejects the request when the mobile number or the email is already taken.
func (s *IdentityService) RegisterNewUser(ctx context.Context, in SignupInput) (*models.User, error) {
	in.Name, in.Mobile = utils.Clean(in.Name), utils.Clean(in.Mobile)
	in.Email, in.Address = utils.Clean(in.Email), utils.Clean(in.Address)

	if in.Name == "" || in.Mobile == "" || in.Email == "" || in.Address == "" {
		return nil, validationError(msgSignupFields)
	}
	if !utils.IsValidMobile(in.Mobile) {
		return nil, validationError(msgInvalidMobile)
	}
	if !utils.IsValidEmail(in.Email) {
		return nil, validationError(msgInvalidEmail)
	}

	_, err := s.users.FindByMobileOrEmail(ctx, in.Mobile, in.Email)
	if err == nil {
		return nil, conflictError(msgUserExists, nil)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, storeError(err)
	}

	user := &models.User{
		Name:    in.Name,
		Mobile:  in.Mobile,
		Email:   &in.Email,
		Address: in.Address,
	}
	if err := s.create(ctx, user, "signup"); err != nil {
		return nil, err
	}
	return user, nil
}

// Profile loads the user a verified credential belongs to.
func (s *IdentityService) Profile(ctx context.Context, caller *Claims) (*models.User, error) {
	if caller == nil {
		return nil, unauthorizedError("Unauthorized")
	}

	user, err := s.users.FindByID(ctx, caller.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, unauthorizedError("Unauthorized")
	}
	if err != nil {
		return nil, storeError(err)
	}
	return user, nil
}

func (s *IdentityService) create(ctx context.Context, user *models.User, flow string) error {
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return conflictError(msgUserExists, err)
		}
		return storeError(err)
	}

	s.logger.Info("user created",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("flow", flow),
	)
	return nil
}
