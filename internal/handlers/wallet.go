package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/middlewares"
	"github.com/crosspayhq/wallet-core/internal/models"
)

// WalletCreator defines the interface that the service must implement.
type WalletCreator interface {
	CreateCryptoWallet(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error)
}

// CreateWalletRequest represents the JSON body for creating a crypto wallet
// swagger:model CreateWalletRequest
type CreateWalletRequest struct {
	// Crypto currency code
	// required: true
	// default: BTC
	Currency string `json:"currency"`
}

// CreateWalletResponse represents a created wallet
// swagger:model CreateWalletResponse
type CreateWalletResponse struct {
	// Wallet identifier
	WalletID string `json:"wallet_id"`

	// Currency of the wallet
	Currency string `json:"currency"`

	// Custodial deposit address
	DepositAddress string `json:"deposit_address"`
}

// NewCreateWalletHandler returns an HTTP handler for creating an on-demand
// crypto wallet with a custodial deposit address.
// @Summary Create crypto wallet
// @Description Create a wallet for a crypto currency, at most one per currency per user. Fiat wallets exist from signup.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.CreateWalletRequest true "Create Wallet Request"
// @Success 201 {object} handlers.CreateWalletResponse "Wallet created"
// @Failure 400 {object} handlers.ErrorResponse "Unsupported currency"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Wallet already exists"
// @Router /wallet/crypto [post]
// @Security BearerAuth
func NewCreateWalletHandler(svc WalletCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req CreateWalletRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create wallet request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		wallet, err := svc.CreateCryptoWallet(ctx, claims.UserID, req.Currency)
		if err != nil {
			logger.Log.Errorw("failed to create wallet", "userID", claims.UserID, "currency", req.Currency, "error", err)
			writeServiceError(w, err)
			return
		}

		resp := CreateWalletResponse{
			WalletID: wallet.WalletID.String(),
			Currency: wallet.Currency,
		}
		if wallet.DepositAddress != nil {
			resp.DepositAddress = *wallet.DepositAddress
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}
