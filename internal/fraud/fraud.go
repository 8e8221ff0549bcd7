package fraud

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/models"
)

// ErrSuspiciousActivity is returned when a user's transaction velocity
// exceeds the allowed rate. The operation is rejected, not just flagged.
var ErrSuspiciousActivity = errors.New("suspicious activity detected")

// velocityThreshold is the maximum number of transactions allowed in the
// trailing hour before new operations are blocked.
const velocityThreshold = 10

// largeAmountThreshold flags fiat operations above this amount for review.
var largeAmountThreshold = decimal.NewFromInt(1_000_000)

// TransactionCounter counts a user's ledger transactions since a point in time.
type TransactionCounter interface {
	CountTransactionsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

// Flagger receives non-blocking large-amount review flags.
type Flagger interface {
	FlagLargeAmount(currency string)
}

// Checker runs rule-based fraud heuristics before an operation commits.
type Checker struct {
	counter TransactionCounter
	flagger Flagger
}

// NewChecker creates a fraud checker backed by the given transaction counter.
// The flagger is optional.
func NewChecker(counter TransactionCounter, flagger Flagger) *Checker {
	return &Checker{counter: counter, flagger: flagger}
}

// CheckVelocity rejects the operation when the user made more than the
// threshold number of transactions in the trailing hour.
func (c *Checker) CheckVelocity(ctx context.Context, userID uuid.UUID) error {
	since := time.Now().UTC().Add(-time.Hour)
	count, err := c.counter.CountTransactionsSince(ctx, userID, since)
	if err != nil {
		return err
	}

	if count > velocityThreshold {
		logger.Log.Warnw("transaction velocity exceeded",
			"user_id", userID, "count", count, "threshold", velocityThreshold)
		return ErrSuspiciousActivity
	}
	return nil
}

// FlagLargeAmount marks an unusually large fiat operation for downstream
// review. It never blocks the operation.
func (c *Checker) FlagLargeAmount(userID uuid.UUID, amount decimal.Decimal, currency string) {
	if !models.IsFiatCurrency(currency) {
		return
	}
	if amount.GreaterThan(largeAmountThreshold) {
		logger.Log.Warnw("large transaction flagged for review",
			"user_id", userID, "amount", amount, "currency", currency)
		if c.flagger != nil {
			c.flagger.FlagLargeAmount(currency)
		}
	}
}
