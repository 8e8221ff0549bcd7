package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/crosspayhq/wallet-core/internal/fraud"
	"github.com/crosspayhq/wallet-core/internal/repositories"
	"github.com/crosspayhq/wallet-core/internal/services"
	"github.com/crosspayhq/wallet-core/internal/validation"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid request
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps a service error to an HTTP status and message.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validation.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "Invalid amount")
	case errors.Is(err, validation.ErrInvalidAddress):
		writeError(w, http.StatusBadRequest, "Invalid address")
	case errors.Is(err, services.ErrUnsupportedCurrency):
		writeError(w, http.StatusBadRequest, "Unsupported currency")
	case errors.Is(err, services.ErrSameCurrency):
		writeError(w, http.StatusBadRequest, "Source and target currency must differ")
	case errors.Is(err, services.ErrSelfTransfer):
		writeError(w, http.StatusBadRequest, "Cannot transfer to yourself")
	case errors.Is(err, validation.ErrLimitExceeded):
		writeError(w, http.StatusForbidden, "Spending limit exceeded")
	case errors.Is(err, fraud.ErrSuspiciousActivity):
		writeError(w, http.StatusForbidden, "Operation blocked")
	case errors.Is(err, repositories.ErrInsufficientFunds):
		writeError(w, http.StatusBadRequest, "Insufficient funds")
	case errors.Is(err, repositories.ErrWalletNotFound):
		writeError(w, http.StatusNotFound, "Wallet not found")
	case errors.Is(err, repositories.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, "Profile not found")
	case errors.Is(err, repositories.ErrDocumentNotFound):
		writeError(w, http.StatusNotFound, "Document not found")
	case errors.Is(err, repositories.ErrWalletAlreadyExists):
		writeError(w, http.StatusConflict, "Wallet already exists")
	case errors.Is(err, repositories.ErrRetryableConflict):
		writeError(w, http.StatusConflict, "Operation conflicted, please retry")
	case errors.Is(err, services.ErrRateUnavailable):
		writeError(w, http.StatusServiceUnavailable, "Exchange rate unavailable")
	case errors.Is(err, services.ErrExternalService):
		writeError(w, http.StatusBadGateway, "External service failure")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
