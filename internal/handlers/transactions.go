package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/middlewares"
	"github.com/crosspayhq/wallet-core/internal/models"
)

// TransactionReader defines the interface that the service must implement.
type TransactionReader interface {
	GetTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransactionDB, error)
}

// TransactionItem represents one ledger record
// swagger:model TransactionItem
type TransactionItem struct {
	// Transaction identifier
	TransactionID string `json:"transaction_id"`

	// Wallet the record belongs to
	WalletID string `json:"wallet_id"`

	// DEPOSIT, WITHDRAW, TRANSFER or CONVERT
	Type string `json:"type"`

	// Signed amount, negative = debit
	Amount string `json:"amount"`

	// Counterparty label, when present
	Counterparty *string `json:"counterparty,omitempty"`

	// Operation metadata
	Metadata models.Metadata `json:"metadata,omitempty"`

	// Creation timestamp, RFC 3339
	CreatedAt string `json:"created_at"`
}

// TransactionsResponse represents the transaction history response
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	// Most recent ledger records, newest first
	Transactions []TransactionItem `json:"transactions"`
}

// NewTransactionsHandler returns an HTTP handler for reading transaction history.
// @Summary Get transaction history
// @Description Return the user's most recent ledger records across all wallets, newest first.
// @Tags wallet
// @Produce json
// @Param limit query int false "Maximum records to return" default(50)
// @Success 200 {object} handlers.TransactionsResponse "Transaction history"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /transactions [get]
// @Security BearerAuth
func NewTransactionsHandler(svc TransactionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		txns, err := svc.GetTransactions(ctx, claims.UserID, limit)
		if err != nil {
			logger.Log.Errorw("failed to get transactions", "userID", claims.UserID, "error", err)
			writeServiceError(w, err)
			return
		}

		items := make([]TransactionItem, 0, len(txns))
		for _, txn := range txns {
			items = append(items, TransactionItem{
				TransactionID: txn.TransactionID.String(),
				WalletID:      txn.WalletID.String(),
				Type:          txn.Type,
				Amount:        txn.Amount.String(),
				Counterparty:  txn.Counterparty,
				Metadata:      txn.Metadata,
				CreatedAt:     txn.CreatedAt.Format(time.RFC3339),
			})
		}

		writeJSON(w, http.StatusOK, TransactionsResponse{Transactions: items})
	}
}
