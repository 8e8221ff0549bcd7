package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/middlewares"
)

// DepositWriter defines the interface that the service must implement.
type DepositWriter interface {
	Deposit(ctx context.Context, userID uuid.UUID, currency string, amount decimal.Decimal, txHash string) (decimal.Decimal, error)
}

// DepositRequest represents the JSON body for depositing funds
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to deposit, as a decimal string
	// required: true
	// default: "100.00"
	Amount string `json:"amount"`

	// Currency
	// required: true
	// default: NGN
	Currency string `json:"currency"`

	// External transaction hash for custodial crypto deposits
	TxHash string `json:"tx_hash,omitempty"`
}

// DepositResponse represents a successful deposit response
// swagger:model DepositResponse
type DepositResponse struct {
	// Success message
	// default: Deposit successful
	Message string `json:"message"`

	// Currency of the credited wallet
	Currency string `json:"currency"`

	// New balance of the credited wallet
	NewBalance string `json:"new_balance"`
}

// NewDepositHandler returns an HTTP handler for depositing funds into a wallet.
// @Summary Deposit funds
// @Description Credit a wallet. Validates the amount against per-currency bounds and records a DEPOSIT ledger entry.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 200 {object} handlers.DepositResponse "Deposit successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or currency"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/deposit [post]
// @Security BearerAuth
func NewDepositHandler(svc DepositWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode deposit request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			logger.Log.Warnw("invalid deposit amount", "amount", req.Amount)
			writeError(w, http.StatusBadRequest, "Invalid amount")
			return
		}

		newBalance, err := svc.Deposit(ctx, claims.UserID, req.Currency, amount, req.TxHash)
		if err != nil {
			logger.Log.Errorw("failed to deposit funds",
				"userID", claims.UserID, "amount", req.Amount, "currency", req.Currency, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, DepositResponse{
			Message:    "Deposit successful",
			Currency:   req.Currency,
			NewBalance: newBalance.String(),
		})
	}
}
