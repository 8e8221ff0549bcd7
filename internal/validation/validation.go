package validation

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/models"
)

var (
	// ErrInvalidAmount is returned when an amount fails to parse, is not positive,
	// or falls outside the per-currency band.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidAddress is returned when a crypto address does not match the
	// currency's format pattern.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrLimitExceeded is returned when a debit would push the user's rolling
	// daily or monthly debit total over the profile limit.
	ErrLimitExceeded = errors.New("spend limit exceeded")
)

// amountBand is the allowed [min, max] range for a single operation in one currency.
type amountBand struct {
	min decimal.Decimal
	max decimal.Decimal
}

var amountBands = map[string]amountBand{
	models.NGN:  {min: decimal.NewFromInt(1), max: decimal.NewFromInt(10_000_000)},
	models.KES:  {min: decimal.NewFromInt(1), max: decimal.NewFromInt(1_000_000)},
	models.BTC:  {min: decimal.RequireFromString("0.00001"), max: decimal.NewFromInt(100)},
	models.ETH:  {min: decimal.RequireFromString("0.001"), max: decimal.NewFromInt(1000)},
	models.USDT: {min: decimal.NewFromInt(1), max: decimal.NewFromInt(100_000)},
}

var addressPatterns = map[string]*regexp.Regexp{
	models.BTC:  regexp.MustCompile(`^[13][a-km-zA-HJ-NP-Z1-9]{25,34}$|^bc1[a-z0-9]{39,59}$`),
	models.ETH:  regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`),
	models.USDT: regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`), // USDT on Ethereum
}

// DebitSummer reports the magnitude of a user's WITHDRAW and TRANSFER debits
// in one currency since a point in time.
type DebitSummer interface {
	SumDebitsSince(ctx context.Context, userID uuid.UUID, currency string, since time.Time) (decimal.Decimal, error)
}

// ProfileReader fetches the user profile holding the spend limits.
type ProfileReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserProfileDB, error)
}

// Engine enforces amount bounds, address formats, and rolling spend limits.
type Engine struct {
	debits   DebitSummer
	profiles ProfileReader
}

// NewEngine creates a validation engine backed by the given ledger readers.
func NewEngine(debits DebitSummer, profiles ProfileReader) *Engine {
	return &Engine{debits: debits, profiles: profiles}
}

// ValidateAmount parses a raw amount into an exact decimal and checks it
// against the per-currency band. The currency must be supported.
func (e *Engine) ValidateAmount(raw string, currency string) (decimal.Decimal, error) {
	if !models.IsSupportedCurrency(currency) {
		return decimal.Zero, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return e.CheckAmount(amount, currency)
}

// CheckAmount validates an already-parsed amount against the per-currency band.
func (e *Engine) CheckAmount(amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	if !models.IsSupportedCurrency(currency) {
		return decimal.Zero, ErrInvalidAmount
	}
	if amount.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}

	band, ok := amountBands[currency]
	if !ok {
		return decimal.Zero, ErrInvalidAmount
	}
	if amount.LessThan(band.min) || amount.GreaterThan(band.max) {
		logger.Log.Warnw("amount outside currency band",
			"amount", amount, "currency", currency, "min", band.min, "max", band.max)
		return decimal.Zero, ErrInvalidAmount
	}

	return amount, nil
}

// ValidateAddress checks a destination address against the currency's format
// pattern. Currencies without a pattern accept any non-empty address.
func (e *Engine) ValidateAddress(address, currency string) (string, error) {
	if address == "" {
		return "", ErrInvalidAddress
	}
	if pattern, ok := addressPatterns[currency]; ok {
		if !pattern.MatchString(address) {
			return "", ErrInvalidAddress
		}
	}
	return address, nil
}

// CheckDailyLimit rejects a debit when the user's debits for the current
// calendar day (UTC) in that currency, plus the new amount, exceed the
// profile daily limit.
func (e *Engine) CheckDailyLimit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string) error {
	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return e.checkLimit(ctx, userID, amount, currency, startOfDay, "daily")
}

// CheckMonthlyLimit rejects a debit when the user's debits for the current
// calendar month (UTC) in that currency, plus the new amount, exceed the
// profile monthly limit.
func (e *Engine) CheckMonthlyLimit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string) error {
	now := time.Now().UTC()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return e.checkLimit(ctx, userID, amount, currency, startOfMonth, "monthly")
}

func (e *Engine) checkLimit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string, since time.Time, window string) error {
	profile, err := e.profiles.Get(ctx, userID)
	if err != nil {
		return err
	}

	limit := profile.DailyLimit
	if window == "monthly" {
		limit = profile.MonthlyLimit
	}

	spent, err := e.debits.SumDebitsSince(ctx, userID, currency, since)
	if err != nil {
		return err
	}

	if spent.Add(amount).GreaterThan(limit) {
		logger.Log.Warnw("spend limit exceeded",
			"user_id", userID, "currency", currency, "window", window,
			"spent", spent, "amount", amount, "limit", limit)
		return ErrLimitExceeded
	}
	return nil
}
