package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"technomaster/internal/kv"
	"technomaster/internal/model"
)

// ErrNoSession is returned when no user is logged in
var ErrNoSession = errors.New("no active session")

// SessionRepository tracks the single current user. The stored record is a full
// copy of the user and is independent of the user table.
type SessionRepository interface {
	SetCurrent(ctx context.Context, user *model.User) error
	Current(ctx context.Context) (*model.User, error)
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	store kv.Store
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(store kv.Store) SessionRepository {
	return &sessionRepository{store: store}
}

// SetCurrent overwrites any previous session with a copy of user
func (r *sessionRepository) SetCurrent(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.store.Set(ctx, CurrentUserKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Current returns the logged-in user or ErrNoSession
func (r *sessionRepository) Current(ctx context.Context) (*model.User, error) {
	raw, ok, err := r.store.Get(ctx, CurrentUserKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok || raw == "" || raw == "null" {
		return nil, ErrNoSession
	}
	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptTable, CurrentUserKey, err)
	}
	return &user, nil
}

// Clear removes the session record
func (r *sessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, CurrentUserKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
