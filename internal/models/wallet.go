package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletDB represents a wallet row in the database
type WalletDB struct {
	WalletID       uuid.UUID       `json:"wallet_id" db:"wallet_id"`             // Unique wallet identifier
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`                 // Identifier of the wallet's owner
	Currency       string          `json:"currency" db:"currency"`               // Currency code (e.g., NGN, KES, BTC)
	Balance        decimal.Decimal `json:"balance" db:"balance"`                 // Current balance, never negative
	DepositAddress *string         `json:"deposit_address" db:"deposit_address"` // External deposit address, crypto wallets only
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`           // Timestamp when the wallet was created
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`           // Timestamp of the last wallet update
}
