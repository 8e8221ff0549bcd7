package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/middlewares"
)

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	GetBalances(ctx context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error)
}

// BalanceResponse represents the user's balances per currency
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Balances keyed by currency code
	Balances map[string]string `json:"balances"`
}

// NewBalanceHandler returns an HTTP handler for reading wallet balances.
// @Summary Get balances
// @Description Return the user's balance in every wallet they hold.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Balances"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /balance [get]
// @Security BearerAuth
func NewBalanceHandler(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		balances, err := svc.GetBalances(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get balances", "userID", claims.UserID, "error", err)
			writeServiceError(w, err)
			return
		}

		out := make(map[string]string, len(balances))
		for currency, balance := range balances {
			out[currency] = balance.String()
		}

		writeJSON(w, http.StatusOK, BalanceResponse{Balances: out})
	}
}
