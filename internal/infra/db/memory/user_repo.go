package memory

import (
	"context"

	domain "github.com/aryanpyx/finsight/internal/domain/users"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Save(ctx context.Context, u *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.userOrder {
		if s.users[id].Username == u.Username {
			return domain.ErrUsernameTaken
		}
	}
	if _, ok := s.users[u.ID]; !ok {
		s.userOrder = append(s.userOrder, u.ID)
	}
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (r *UserRepository) Get(ctx context.Context, id domain.UserID) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if s.users[id].Username == username {
			cp := *s.users[id]
			return &cp, nil
		}
	}
	return nil, nil
}
