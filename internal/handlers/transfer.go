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

// Transferrer defines the interface that the service must implement.
type Transferrer interface {
	Transfer(ctx context.Context, senderID, recipientID uuid.UUID, currency string, amount decimal.Decimal) (decimal.Decimal, error)
}

// TransferRequest represents the JSON body for transferring funds to another user
// swagger:model TransferRequest
type TransferRequest struct {
	// Recipient user identifier
	// required: true
	RecipientID string `json:"recipient_id"`

	// Amount to transfer, as a decimal string
	// required: true
	// default: "50.00"
	Amount string `json:"amount"`

	// Currency
	// required: true
	// default: KES
	Currency string `json:"currency"`
}

// TransferResponse represents a successful transfer response
// swagger:model TransferResponse
type TransferResponse struct {
	// Success message
	// default: Transfer successful
	Message string `json:"message"`

	// New balance of the sender's wallet
	NewBalance string `json:"new_balance"`
}

// NewTransferHandler returns an HTTP handler for transferring funds between users.
// @Summary Transfer funds
// @Description Move value to another user's wallet in the same currency. The recipient wallet is created on demand.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferResponse "Transfer successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount, recipient or insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Limit exceeded or operation blocked"
// @Router /wallet/transfer [post]
// @Security BearerAuth
func NewTransferHandler(svc Transferrer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode transfer request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		recipientID, err := uuid.Parse(req.RecipientID)
		if err != nil {
			logger.Log.Warnw("invalid transfer recipient", "recipient_id", req.RecipientID)
			writeError(w, http.StatusBadRequest, "Invalid recipient")
			return
		}

		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			logger.Log.Warnw("invalid transfer amount", "amount", req.Amount)
			writeError(w, http.StatusBadRequest, "Invalid amount")
			return
		}

		newBalance, err := svc.Transfer(ctx, claims.UserID, recipientID, req.Currency, amount)
		if err != nil {
			logger.Log.Errorw("failed to transfer funds",
				"userID", claims.UserID, "recipientID", recipientID, "amount", req.Amount, "currency", req.Currency, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TransferResponse{
			Message:    "Transfer successful",
			NewBalance: newBalance.String(),
		})
	}
}
