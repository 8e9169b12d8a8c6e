package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ahorraplan/finance-backend/internal/models"
)

// UpsertOnboardingAnswers inserts or replaces the onboarding record of one
// user in a single statement. created_at is written only on insert,
// updated_at on every call. The foreign key to users makes the existence
// check and the write atomic: an unknown user maps to ErrUserNotFound.
func (s *Storage) UpsertOnboardingAnswers(ctx context.Context, answers models.OnboardingAnswers) error {
	const op = "storage.UpsertOnboardingAnswers"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO onboarding_answers (user_uid, meta, ritmo, prioridad,
			      acompanamiento, moneda_base, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, now(), now())
			  ON CONFLICT (user_uid) DO UPDATE
			  SET meta = EXCLUDED.meta,
			      ritmo = EXCLUDED.ritmo,
			      prioridad = EXCLUDED.prioridad,
			      acompanamiento = EXCLUDED.acompanamiento,
			      moneda_base = EXCLUDED.moneda_base,
			      updated_at = now()`
	_, err := s.DB.ExecContext(ctx, query,
		answers.UserUID, answers.Meta, answers.Ritmo, answers.Prioridad,
		answers.Acompanamiento, answers.MonedaBase)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetOnboardingAnswers returns the stored record for a user, or (nil, nil)
// when the user has not completed onboarding. Absence is not an error.
func (s *Storage) GetOnboardingAnswers(ctx context.Context, userUID string) (*models.OnboardingAnswers, error) {
	const op = "storage.GetOnboardingAnswers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT user_uid, meta, ritmo, prioridad, acompanamiento, moneda_base,
			      created_at, updated_at
			  FROM onboarding_answers
			  WHERE user_uid = $1`
	a := &models.OnboardingAnswers{}
	row := s.DB.QueryRowContext(ctx, query, userUID)
	if err := row.Scan(&a.UserUID, &a.Meta, &a.Ritmo, &a.Prioridad, &a.Acompanamiento,
		&a.MonedaBase, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}
