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

// WithdrawWriter defines the interface that the service must implement.
type WithdrawWriter interface {
	Withdraw(ctx context.Context, userID uuid.UUID, currency string, amount decimal.Decimal, toAddress string) (string, decimal.Decimal, error)
}

// WithdrawRequest represents the JSON body for withdrawing funds
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to withdraw, as a decimal string
	// required: true
	// default: "0.5"
	Amount string `json:"amount"`

	// Currency
	// required: true
	// default: BTC
	Currency string `json:"currency"`

	// Destination address
	// required: true
	Address string `json:"address"`
}

// WithdrawResponse represents a successful withdrawal response
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Success message
	// default: Withdrawal submitted
	Message string `json:"message"`

	// External transaction hash of the send
	TxHash string `json:"tx_hash"`

	// New balance of the debited wallet
	NewBalance string `json:"new_balance"`
}

// NewWithdrawHandler returns an HTTP handler for withdrawing funds to an
// external address.
// @Summary Withdraw funds
// @Description Debit a wallet and dispatch an external send. Enforces amount bounds, address format, tier limits and fraud heuristics.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} handlers.WithdrawResponse "Withdrawal submitted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, address or insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Limit exceeded or operation blocked"
// @Failure 502 {object} handlers.ErrorResponse "External send failure"
// @Router /wallet/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(svc WithdrawWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode withdraw request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			logger.Log.Warnw("invalid withdraw amount", "amount", req.Amount)
			writeError(w, http.StatusBadRequest, "Invalid amount")
			return
		}

		txHash, newBalance, err := svc.Withdraw(ctx, claims.UserID, req.Currency, amount, req.Address)
		if err != nil {
			logger.Log.Errorw("failed to withdraw funds",
				"userID", claims.UserID, "amount", req.Amount, "currency", req.Currency, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, WithdrawResponse{
			Message:    "Withdrawal submitted",
			TxHash:     txHash,
			NewBalance: newBalance.String(),
		})
	}
}
