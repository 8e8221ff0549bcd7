package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/crosspayhq/wallet-core/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction from the context. Returns nil if not present.
func TxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// Postgres error codes treated as transient commit conflicts.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	return false
}

// TxManager runs a function inside a database transaction carried through
// the context, retrying a bounded number of times when the commit hits a
// serialization or deadlock conflict.
type TxManager struct {
	db         *sqlx.DB
	maxRetries int
	backoff    time.Duration
}

// NewTxManager creates a transaction manager with the given retry policy.
// maxRetries counts attempts after the first; backoff is the base delay
// between attempts, doubled each retry.
func NewTxManager(db *sqlx.DB, maxRetries int, backoff time.Duration) *TxManager {
	return &TxManager{db: db, maxRetries: maxRetries, backoff: backoff}
}

// Do executes fn inside a transaction. On a transient conflict the
// transaction is rolled back and fn re-run from scratch; after the retry
// budget is spent the caller gets ErrRetryableConflict. Any other error
// from fn rolls back and propagates unchanged.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		if attempt > 0 {
			delay := m.backoff << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}

		logger.Log.Warnw("transient commit conflict, retrying",
			"attempt", attempt+1, "max_retries", m.maxRetries, "error", err)
		lastErr = err
	}

	return fmt.Errorf("%w: %v", ErrRetryableConflict, lastErr)
}

func (m *TxManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(setTxToContext(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("rollback failed", "error", rbErr)
		}
		return err
	}

	return tx.Commit()
}
