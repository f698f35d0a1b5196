package repository

import (
	"context"
	"errors"

	"github.com/shopfront/shopfront/internal/model"
)

// Common errors for user repository operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)

// CreateUser stores a new user and gives it an empty cart.
// The ID and CreatedAt fields are assigned here; ID values are never reused.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return ErrUsernameExists
		}
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrEmailExists
		}
	}

	user.ID = r.nextUserID
	user.CreatedAt = r.now().UTC()
	r.nextUserID++

	stored := *user
	r.users = append(r.users, &stored)
	r.carts[stored.ID] = []model.CartLineItem{}

	return nil
}

// GetUserByID retrieves a user by their ID.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	return r.findUser(ctx, func(u *model.User) bool { return u.ID == id })
}

// GetUserByUsername retrieves a user by exact username.
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findUser(ctx, func(u *model.User) bool { return u.Username == username })
}

// GetUserByEmail retrieves a user by their email address.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findUser(ctx, func(u *model.User) bool { return u.Email == email })
}

// ListUsers returns all users in registration order.
func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, len(r.users))
	for i, u := range r.users {
		users[i] = *u
	}
	return users, nil
}

func (r *Repository) findUser(ctx context.Context, match func(*model.User) bool) (*model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// userExists reports whether id belongs to a registered user. Caller holds r.mu.
func (r *Repository) userExists(id int64) bool {
	for _, u := range r.users {
		if u.ID == id {
			return true
		}
	}
	return false
}
