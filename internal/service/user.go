package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/shopfront/shopfront/internal/metrics"
	"github.com/shopfront/shopfront/internal/model"
	"github.com/shopfront/shopfront/internal/repository"
)

// Input limits.
const (
	maxUsernameLength = 64
	maxEmailLength    = 254
	maxPasswordLength = 1024
)

// UserService handles registration and credential checks.
type UserService struct {
	users   UserStore
	hasher  PasswordHasher
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, hasher PasswordHasher, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		users:   users,
		hasher:  hasher,
		metrics: recorder,
	}
}

// RegisterInput defines input for registering a user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user with an empty cart.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (model.PublicUser, error) {
	if err := validateRegistration(input); err != nil {
		return model.PublicUser{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return model.PublicUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			return model.PublicUser{}, ErrDuplicateUsername
		case errors.Is(err, repository.ErrEmailExists):
			return model.PublicUser{}, ErrDuplicateEmail
		}
		return model.PublicUser{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user.Public(), nil
}

// Login verifies credentials. identifier is an email when it contains "@",
// otherwise a username. Unknown users and wrong passwords are indistinguishable.
func (s *UserService) Login(ctx context.Context, identifier, password string) (model.PublicUser, error) {
	var (
		user *model.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.users.GetUserByEmail(ctx, identifier)
	} else {
		user, err = s.users.GetUserByUsername(ctx, identifier)
	}

	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.hasher.VerifyDummy(password)
			s.metrics.IncLogin("failed")
			return model.PublicUser{}, ErrInvalidCredentials
		}
		return model.PublicUser{}, fmt.Errorf("failed to look up user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return model.PublicUser{}, fmt.Errorf("failed to verify password for user %d: %w", user.ID, err)
	}
	if !ok {
		s.metrics.IncLogin("failed")
		return model.PublicUser{}, ErrInvalidCredentials
	}

	s.metrics.IncLogin("success")

	return user.Public(), nil
}

// List returns the public view of every user in registration order.
func (s *UserService) List(ctx context.Context) ([]model.PublicUser, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]model.PublicUser, len(users))
	for i := range users {
		views[i] = users[i].Public()
	}
	return views, nil
}

// validateRegistration checks input lengths and formats. Usernames may not
// contain "@": Login resolves any identifier containing one by email, so such
// a username could never sign in by name.
func validateRegistration(input RegisterInput) error {
	if strings.TrimSpace(input.Username) == "" || len(input.Username) > maxUsernameLength {
		return ErrInvalidUsername
	}
	if strings.Contains(input.Username, "@") {
		return ErrInvalidUsername
	}

	if len(input.Email) > maxEmailLength {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(input.Email)
	if err != nil || addr.Address != input.Email {
		return ErrInvalidEmail
	}

	if input.Password == "" || len(input.Password) > maxPasswordLength {
		return ErrInvalidPassword
	}

	return nil
}
