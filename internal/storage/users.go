package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ahorraplan/finance-backend/internal/models"
)

// CreateUser inserts a new user and returns its creation timestamp.
// A duplicate normalized email maps to ErrEmailTaken via the unique
// constraint, so concurrent registrations cannot both succeed.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (time.Time, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return time.Time{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var createdAt time.Time
	query := `INSERT INTO users (uid, name, email, password_hash)
			  VALUES ($1, $2, $3, $4)
			  RETURNING created_at;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.UID, user.Name, user.Email, user.PasswordHash).Scan(&createdAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return time.Time{}, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return createdAt, nil
}

// GetUserByEmail returns the user with the given normalized email,
// or ErrUserNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, email, password_hash, created_at
			  FROM users
			  WHERE email = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&u.UID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
