package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/aryanpyx/finsight/internal/domain/users"
	"github.com/aryanpyx/finsight/internal/infra/db/memory"
)

func TestSignup(t *testing.T) {
	svc := &Service{Users: memory.NewUserRepository(memory.NewStore())}

	u, err := svc.Signup(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "s3cret", u.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret")))
}

func TestSignupMissingCredentials(t *testing.T) {
	svc := &Service{Users: memory.NewUserRepository(memory.NewStore())}

	_, err := svc.Signup(context.Background(), "", "s3cret")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, err = svc.Signup(context.Background(), "alice", "")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc := &Service{Users: memory.NewUserRepository(memory.NewStore())}

	_, err := svc.Signup(context.Background(), "alice", "one")
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), "alice", "two")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}
