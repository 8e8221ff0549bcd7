package handlers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/middlewares"
)

// RateLister defines the interface that the service must implement.
type RateLister interface {
	ListRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// RateRefresher triggers an immediate rate refresh cycle.
type RateRefresher interface {
	RefreshRates(ctx context.Context) bool
}

// RatesResponse represents all known exchange rates
// swagger:model RatesResponse
type RatesResponse struct {
	// Rates keyed by "FROM_TO" pair
	Rates map[string]string `json:"rates"`
}

// RefreshResponse represents the outcome of a manual refresh
// swagger:model RefreshResponse
type RefreshResponse struct {
	// Whether the refresh cycle fully succeeded
	Refreshed bool `json:"refreshed"`
}

// NewRatesHandler returns an HTTP handler for listing exchange rates.
// @Summary List exchange rates
// @Description Return all stored exchange rates keyed by currency pair.
// @Tags rates
// @Produce json
// @Success 200 {object} handlers.RatesResponse "Exchange rates"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /exchange/rates [get]
// @Security BearerAuth
func NewRatesHandler(svc RateLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rates, err := svc.ListRates(ctx)
		if err != nil {
			logger.Log.Errorw("failed to list rates", "error", err)
			writeServiceError(w, err)
			return
		}

		out := make(map[string]string, len(rates))
		for pair, rate := range rates {
			out[pair] = rate.String()
		}

		writeJSON(w, http.StatusOK, RatesResponse{Rates: out})
	}
}

// NewRefreshRatesHandler returns an admin-only HTTP handler that forces a
// rate refresh cycle outside the background cadence.
// @Summary Refresh exchange rates
// @Description Pull current prices from the external source and upsert both directions per pair. Admin only.
// @Tags rates
// @Produce json
// @Success 200 {object} handlers.RefreshResponse "Refresh outcome"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /admin/rates/refresh [post]
// @Security BearerAuth
func NewRefreshRatesHandler(svc RateRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !claims.IsAdmin {
			writeError(w, http.StatusForbidden, "Forbidden")
			return
		}

		ok := svc.RefreshRates(ctx)
		logger.Log.Infow("manual rate refresh", "adminID", claims.UserID, "ok", ok)

		writeJSON(w, http.StatusOK, RefreshResponse{Refreshed: ok})
	}
}
