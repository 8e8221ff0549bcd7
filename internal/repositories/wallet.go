package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/models"
)

const pgUniqueViolation = "23505"

// WalletRepository is the durable wallet store. All writes resolve the
// executor from a context-carried transaction when one is present, so a
// multi-wallet commit is all-or-nothing.
type WalletRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewWalletRepository creates a wallet repository. txGetter may be nil when
// the repository is only used outside transactions.
func NewWalletRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletRepository {
	return &WalletRepository{db: db, txGetter: txGetter}
}

func (r *WalletRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a new wallet with zero balance. Returns
// ErrWalletAlreadyExists when the (user, currency) pair is taken.
func (r *WalletRepository) Create(ctx context.Context, userID uuid.UUID, currency string, depositAddress *string) (*models.WalletDB, error) {
	query := `
		INSERT INTO wallets (wallet_id, user_id, currency, balance, deposit_address, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, NOW(), NOW())
		RETURNING wallet_id, user_id, currency, balance, deposit_address, created_at, updated_at
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, uuid.New(), userID, currency, depositAddress)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency},
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrWalletAlreadyExists
		}
		return nil, err
	}
	return &wallet, nil
}

// GetByUserAndCurrency fetches a wallet row. Returns ErrWalletNotFound when absent.
func (r *WalletRepository) GetByUserAndCurrency(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, currency, balance, deposit_address, created_at, updated_at
		FROM wallets
		WHERE user_id = $1 AND currency = $2
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, userID, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// Ensure returns the wallet for (user, currency), creating it with zero
// balance when absent. Safe against concurrent creation of the same pair.
// An existing row is read without taking a lock; row locking is the
// caller's job via Lock, in ascending wallet_id order.
func (r *WalletRepository) Ensure(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error) {
	query := `
		INSERT INTO wallets (wallet_id, user_id, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, 0, NOW(), NOW())
		ON CONFLICT (user_id, currency) DO NOTHING
		RETURNING wallet_id, user_id, currency, balance, deposit_address, created_at, updated_at
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, uuid.New(), userID, currency)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency},
		"error", err,
	)

	if err == nil {
		return &wallet, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// DO NOTHING returned no row: the wallet already exists.
	return r.GetByUserAndCurrency(ctx, userID, currency)
}

// Lock takes a row lock on one wallet and returns its current state.
// Only meaningful inside a transaction; callers locking several wallets
// must do so in ascending wallet_id order to avoid deadlock.
func (r *WalletRepository) Lock(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, currency, balance, deposit_address, created_at, updated_at
		FROM wallets
		WHERE wallet_id = $1
		FOR UPDATE
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &wallet, query, walletID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// ApplyDelta adds a signed amount to a wallet balance in a single
// conditional update. The update only matches while the resulting balance
// stays non-negative, so a stale read can never drive the balance below
// zero. Returns the new balance, or ErrInsufficientFunds.
func (r *WalletRepository) ApplyDelta(ctx context.Context, walletID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE wallets
		SET balance = balance + $2, updated_at = NOW()
		WHERE wallet_id = $1 AND balance + $2 >= 0
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, walletID, delta)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, delta},
		"result", balance,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, ErrInsufficientFunds
		}
		return decimal.Zero, err
	}
	return balance, nil
}

// ListBalances retrieves all wallets for a user as a map[currency]balance.
func (r *WalletRepository) ListBalances(ctx context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error) {
	const query = `
		SELECT currency, balance
		FROM wallets
		WHERE user_id = $1
	`

	var wallets []struct {
		Currency string          `db:"currency"`
		Balance  decimal.Decimal `db:"balance"`
	}

	err := sqlx.SelectContext(ctx, r.executor(ctx), &wallets, query, userID)

	balances := make(map[string]decimal.Decimal, len(wallets))
	for _, w := range wallets {
		balances[w.Currency] = w.Balance
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", balances,
		"error", err,
	)

	return balances, err
}
