package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateDB represents an exchange rate row, keyed by (from_currency, to_currency).
// Both directions of a pair are maintained as separate rows.
type ExchangeRateDB struct {
	FromCurrency string          `json:"from_currency" db:"from_currency"`
	ToCurrency   string          `json:"to_currency" db:"to_currency"`
	Rate         decimal.Decimal `json:"rate" db:"rate"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}
