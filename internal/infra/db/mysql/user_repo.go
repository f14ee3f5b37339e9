package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	domain "github.com/aryanpyx/finsight/internal/domain/users"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(ctx context.Context, u *domain.User) error {
	const q = `INSERT INTO users (id, username, password) VALUES (?,?,?);`
	_, err := r.db.ExecContext(ctx, q, u.ID, u.Username, u.Password)
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 { // duplicate key on username
		return domain.ErrUsernameTaken
	}
	return err
}

func (r *UserRepository) Get(ctx context.Context, id domain.UserID) (*domain.User, error) {
	const q = `SELECT id, username, password FROM users WHERE id=? LIMIT 1;`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `SELECT id, username, password FROM users WHERE username=? LIMIT 1;`
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
