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

// Converter defines the interface that the service must implement.
type Converter interface {
	Convert(ctx context.Context, userID uuid.UUID, fromCurrency, toCurrency string, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error)
}

// ConvertRequest represents the JSON body for converting between currencies
// swagger:model ConvertRequest
type ConvertRequest struct {
	// Amount in the source currency, as a decimal string
	// required: true
	// default: "100.00"
	Amount string `json:"amount"`

	// Source currency
	// required: true
	// default: NGN
	FromCurrency string `json:"from_currency"`

	// Target currency
	// required: true
	// default: BTC
	ToCurrency string `json:"to_currency"`
}

// ConvertResponse represents a successful conversion response
// swagger:model ConvertResponse
type ConvertResponse struct {
	// Success message
	// default: Conversion successful
	Message string `json:"message"`

	// Amount credited to the target wallet
	ConvertedAmount string `json:"converted_amount"`

	// Exchange rate used
	Rate string `json:"rate"`
}

// NewConvertHandler returns an HTTP handler for converting between the
// user's own wallets.
// @Summary Convert currency
// @Description Move value from one of the user's wallets to another at the current exchange rate. Both sides commit atomically.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.ConvertRequest true "Convert Request"
// @Success 200 {object} handlers.ConvertResponse "Conversion successful"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or currency pair"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 503 {object} handlers.ErrorResponse "Exchange rate unavailable"
// @Router /wallet/convert [post]
// @Security BearerAuth
func NewConvertHandler(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req ConvertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode convert request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		amount, err := decimal.NewFromString(req.Amount)
		if err != nil {
			logger.Log.Warnw("invalid convert amount", "amount", req.Amount)
			writeError(w, http.StatusBadRequest, "Invalid amount")
			return
		}

		converted, rate, err := svc.Convert(ctx, claims.UserID, req.FromCurrency, req.ToCurrency, amount)
		if err != nil {
			logger.Log.Errorw("failed to convert funds",
				"userID", claims.UserID, "from", req.FromCurrency, "to", req.ToCurrency, "amount", req.Amount, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ConvertResponse{
			Message:         "Conversion successful",
			ConvertedAmount: converted.String(),
			Rate:            rate.String(),
		})
	}
}
