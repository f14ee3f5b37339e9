package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/aryanpyx/finsight/internal/domain/users"
)

// Service implements the signup use-case. Nothing enforces
// authentication on the data endpoints; accounts exist for the UI only.
type Service struct {
	Users domain.Repository
}

// Signup creates a user with a bcrypt password hash. Username is the
// only uniqueness check.
func (s *Service) Signup(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		ID:       domain.UserID(uuid.New().String()),
		Username: username,
		Password: string(hash),
	}
	if err := s.Users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
