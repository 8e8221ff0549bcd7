package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/models"
)

// ProfileRepository stores user profiles: verification tier and spend limits.
type ProfileRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewProfileRepository creates a profile repository.
func NewProfileRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileRepository {
	return &ProfileRepository{db: db, txGetter: txGetter}
}

func (r *ProfileRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save upserts a profile row, keeping existing verification state on
// conflict. NULL identity fields never overwrite stored values, so a
// bare bootstrap call cannot erase a previously saved name or country.
func (r *ProfileRepository) Save(ctx context.Context, userID uuid.UUID, fullName, country *string) error {
	query := `
		INSERT INTO user_profiles (user_id, full_name, country, verification_status, daily_limit, monthly_limit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET
			full_name = COALESCE(EXCLUDED.full_name, user_profiles.full_name),
			country = COALESCE(EXCLUDED.country, user_profiles.country),
			updated_at = NOW()
	`
	args := []any{userID, fullName, country, models.VerificationPending,
		models.UnverifiedLimits.Daily, models.UnverifiedLimits.Monthly}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Get fetches a profile row. Returns ErrProfileNotFound when absent.
func (r *ProfileRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserProfileDB, error) {
	const query = `
		SELECT user_id, full_name, country, verification_status, daily_limit, monthly_limit, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	var profile models.UserProfileDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &profile, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateVerification sets the verification tier and the limits derived from
// it in one statement, so tier and limits never drift apart.
func (r *ProfileRepository) UpdateVerification(ctx context.Context, userID uuid.UUID, status string, daily, monthly decimal.Decimal) error {
	query := `
		UPDATE user_profiles
		SET verification_status = $2, daily_limit = $3, monthly_limit = $4, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, status, daily, monthly}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
