package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/estatoai/estato/internal/domain/user"
)

// UserRepository implements user.Repository for SQLite.
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query, args, err := sq.Insert("users").
		Columns("id", "email", "role", "created_at").
		Values(u.ID, u.Email, u.Role, u.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("building user insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Get returns a single user by ID.
func (r *UserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	query, args, err := sq.Select("id", "email", "role", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building user select: %w", err)
	}

	var u user.User
	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&u.ID, &u.Email, &u.Role, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if createdAt.Valid {
		u.CreatedAt = createdAt.Time
	}
	return &u, nil
}

// List returns all users.
func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query, _, err := sq.Select("id", "email", "role", "created_at").
		From("users").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building user list: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		var createdAt sql.NullTime
		if err := rows.Scan(&u.ID, &u.Email, &u.Role, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if createdAt.Valid {
			u.CreatedAt = createdAt.Time
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}
