package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/models"
)

// ExchangeRateRepository stores exchange rates in Postgres, one row per
// pair direction.
type ExchangeRateRepository struct {
	db *sqlx.DB
}

// NewExchangeRateRepository creates an exchange rate repository.
func NewExchangeRateRepository(db *sqlx.DB) *ExchangeRateRepository {
	return &ExchangeRateRepository{db: db}
}

// Upsert writes the rate for one pair direction, overwriting any previous rate.
func (r *ExchangeRateRepository) Upsert(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) error {
	query := `
		INSERT INTO exchange_rates (from_currency, to_currency, rate, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (from_currency, to_currency)
		DO UPDATE SET rate = EXCLUDED.rate, updated_at = NOW()
	`

	_, err := r.db.ExecContext(ctx, query, fromCurrency, toCurrency, rate)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{fromCurrency, toCurrency, rate},
		"error", err,
	)

	return err
}

// Get fetches the rate for one pair direction. Returns ErrRateNotFound when absent.
func (r *ExchangeRateRepository) Get(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	const query = `
		SELECT rate
		FROM exchange_rates
		WHERE from_currency = $1 AND to_currency = $2
	`

	var rate decimal.Decimal
	err := r.db.GetContext(ctx, &rate, query, fromCurrency, toCurrency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{fromCurrency, toCurrency},
		"result", rate,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, ErrRateNotFound
		}
		return decimal.Zero, err
	}
	return rate, nil
}

// List returns all stored rates keyed by "FROM_TO".
func (r *ExchangeRateRepository) List(ctx context.Context) (map[string]decimal.Decimal, error) {
	const query = `
		SELECT from_currency, to_currency, rate, updated_at
		FROM exchange_rates
	`

	var rows []models.ExchangeRateDB
	err := r.db.SelectContext(ctx, &rows, query)

	rates := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		rates[row.FromCurrency+"_"+row.ToCurrency] = row.Rate
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(rates),
		"error", err,
	)

	return rates, err
}
