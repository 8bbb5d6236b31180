package repository

import (
	"context"

	"technomaster/internal/kv"
	"technomaster/internal/model"
)

// UserRepository defines operations for user data
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type userRepository struct {
	users table[model.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store kv.Store) UserRepository {
	return &userRepository{users: table[model.User]{store: store, key: UsersKey}}
}

// List returns all users in registration order
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	users, _, err := r.users.load(ctx)
	return users, err
}

// Create appends a user. Uniqueness is checked by the caller.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	users, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.users.persist(ctx, append(users, *user))
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil // User not found
}
