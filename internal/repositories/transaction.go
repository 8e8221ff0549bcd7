package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/models"
)

// TransactionRepository is the append-only transaction trail. Records are
// written through the same context-carried transaction as the balance
// delta they belong to, and are never updated or deleted afterwards
// except for the asynchronous send-status flip in metadata.
type TransactionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewTransactionRepository creates a transaction repository.
func NewTransactionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionRepository {
	return &TransactionRepository{db: db, txGetter: txGetter}
}

func (r *TransactionRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends one immutable record and returns it.
func (r *TransactionRepository) Save(ctx context.Context, walletID uuid.UUID, txType string, amount decimal.Decimal, counterparty *string, metadata models.Metadata) (*models.TransactionDB, error) {
	query := `
		INSERT INTO transactions (transaction_id, wallet_id, type, amount, counterparty, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING transaction_id, wallet_id, type, amount, counterparty, metadata, created_at
	`

	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &txn, query, uuid.New(), walletID, txType, amount, counterparty, metadata)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, txType, amount, counterparty},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// UpdateSendStatus flips the metadata status of a pending external send,
// matched by its tx_hash. Used when the crypto-send collaborator confirms.
func (r *TransactionRepository) UpdateSendStatus(ctx context.Context, txHash, status string) error {
	query := `
		UPDATE transactions
		SET metadata = jsonb_set(metadata, '{status}', to_jsonb($2::text))
		WHERE metadata->>'tx_hash' = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, txHash, status)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txHash, status},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ListPendingSends returns the tx hashes of external sends still awaiting
// on-chain confirmation, oldest first.
func (r *TransactionRepository) ListPendingSends(ctx context.Context, limit int) ([]string, error) {
	const query = `
		SELECT metadata->>'tx_hash'
		FROM transactions
		WHERE type = 'WITHDRAW'
		  AND metadata->>'status' = 'pending'
		  AND metadata->>'tx_hash' IS NOT NULL
		ORDER BY created_at ASC
		LIMIT $1
	`

	var hashes []string
	err := sqlx.SelectContext(ctx, r.executor(ctx), &hashes, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(hashes),
		"error", err,
	)

	return hashes, err
}

// SumDebitsSince returns the magnitude of a user's WITHDRAW and TRANSFER
// debits in one currency since the given time, across all their wallets
// of that currency.
func (r *TransactionRepository) SumDebitsSince(ctx context.Context, userID uuid.UUID, currency string, since time.Time) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(-t.amount), 0)
		FROM transactions t
		JOIN wallets w ON w.wallet_id = t.wallet_id
		WHERE w.user_id = $1
		  AND w.currency = $2
		  AND t.created_at >= $3
		  AND t.type IN ('WITHDRAW', 'TRANSFER')
		  AND t.amount < 0
	`

	var total decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &total, query, userID, currency, since)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, since},
		"result", total,
		"error", err,
	)

	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// CountTransactionsSince counts all of a user's ledger records since the
// given time, across every wallet. Feeds the velocity heuristic.
func (r *TransactionRepository) CountTransactionsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM transactions t
		JOIN wallets w ON w.wallet_id = t.wallet_id
		WHERE w.user_id = $1 AND t.created_at >= $2
	`

	var count int
	err := sqlx.GetContext(ctx, r.executor(ctx), &count, query, userID, since)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, since},
		"result", count,
		"error", err,
	)

	return count, err
}

// ListByUser returns a user's most recent transactions across all wallets.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransactionDB, error) {
	const query = `
		SELECT t.transaction_id, t.wallet_id, t.type, t.amount, t.counterparty, t.metadata, t.created_at
		FROM transactions t
		JOIN wallets w ON w.wallet_id = t.wallet_id
		WHERE w.user_id = $1
		ORDER BY t.created_at DESC
		LIMIT $2
	`

	var txns []models.TransactionDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &txns, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}
