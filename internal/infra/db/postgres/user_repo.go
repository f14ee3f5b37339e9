package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	domain "github.com/aryanpyx/finsight/internal/domain/users"
)

type UserRepository struct{ db *sql.DB }

func NewUserRepository(db *sql.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Save(ctx context.Context, u *domain.User) error {
	const q = `INSERT INTO users (id, username, password) VALUES ($1,$2,$3);`
	_, err := r.db.ExecContext(ctx, q, u.ID, u.Username, u.Password)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation on username
		return domain.ErrUsernameTaken
	}
	return err
}

func (r *UserRepository) Get(ctx context.Context, id domain.UserID) (*domain.User, error) {
	const q = `SELECT id, username, password FROM users WHERE id=$1 LIMIT 1;`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `SELECT id, username, password FROM users WHERE username=$1 LIMIT 1;`
	return scanUser(r.db.QueryRowContext(ctx, q, username))
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
