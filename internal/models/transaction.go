package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TxTypeDeposit  = "DEPOSIT"
	TxTypeWithdraw = "WITHDRAW"
	TxTypeTransfer = "TRANSFER"
	TxTypeConvert  = "CONVERT"
)

// Metadata keys written and read back by the ledger engine.
// These must round-trip through the metadata column exactly.
const (
	MetaTxHash          = "tx_hash"
	MetaRate            = "rate"
	MetaToCurrency      = "to_currency"
	MetaFromCurrency    = "from_currency"
	MetaConvertedAmount = "converted_amount"
	MetaSourceAmount    = "source_amount"
	MetaStatus          = "status"
)

// TransactionDB represents an immutable ledger record belonging to one wallet.
// The sum of a wallet's transaction amounts equals its current balance.
type TransactionDB struct {
	TransactionID uuid.UUID       `json:"transaction_id" db:"transaction_id"` // Unique transaction identifier
	WalletID      uuid.UUID       `json:"wallet_id" db:"wallet_id"`           // Wallet the record belongs to
	Type          string          `json:"type" db:"type"`                     // DEPOSIT, WITHDRAW, TRANSFER or CONVERT
	Amount        decimal.Decimal `json:"amount" db:"amount"`                 // Signed amount, negative = debit
	Counterparty  *string         `json:"counterparty" db:"counterparty"`     // Free-form counterparty label
	Metadata      Metadata        `json:"metadata" db:"metadata"`             // Free-form key/value metadata
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // Timestamp when the record was written
}

// Metadata is a free-form key/value map stored as JSONB.
type Metadata map[string]any

// Value implements driver.Valuer for JSONB storage.
func (m Metadata) Value() (any, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB retrieval.
func (m *Metadata) Scan(src any) error {
	if src == nil {
		*m = Metadata{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("metadata: unsupported scan type %T", src)
	}
}

// TransactionEvent is the message published to Kafka after each committed operation.
type TransactionEvent struct {
	TransactionID string `json:"transaction_id"` // Ledger transaction identifier
	Timestamp     int64  `json:"timestamp"`      // Unix timestamp (in seconds) of the commit
	Amount        string `json:"amount"`         // Signed decimal amount as a string
	Currency      string `json:"currency"`       // Wallet currency
	UserID        string `json:"user_id"`        // Identifier of the user who initiated the operation
	Operation     string `json:"operation"`      // deposit, withdraw, transfer or convert
}
