package users

import (
	"context"
	"errors"
)

var (
	// ErrUsernameTaken indicates the username uniqueness check failed.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrMissingCredentials indicates an empty username or password.
	ErrMissingCredentials = errors.New("username and password are required")
)

// Repository port (interface untuk persistence)
type Repository interface {
	// Save inserts the user; returns ErrUsernameTaken when the
	// username already exists. Username is the only uniqueness
	// check the store performs.
	Save(ctx context.Context, u *User) error
	Get(ctx context.Context, id UserID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}
