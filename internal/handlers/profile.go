package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/middlewares"
	"github.com/crosspayhq/wallet-core/internal/models"
)

// ProfileReader defines the interface that the service must implement.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfileDB, error)
	EnsureDefaultWallets(ctx context.Context, userID uuid.UUID) error
}

// ProfileResponse represents the user's profile and spend limits
// swagger:model ProfileResponse
type ProfileResponse struct {
	// User identifier
	UserID string `json:"user_id"`

	// PENDING, APPROVED or REJECTED
	VerificationStatus string `json:"verification_status"`

	// Daily debit limit in base units
	DailyLimit string `json:"daily_limit"`

	// Monthly debit limit in base units
	MonthlyLimit string `json:"monthly_limit"`
}

// NewProfileHandler returns an HTTP handler for reading the user's profile.
// Fiat wallets and a default profile are created on first access.
// @Summary Get profile
// @Description Return the user's verification tier and spend limits, creating the default fiat wallets on first access.
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /profile [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.ClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := svc.EnsureDefaultWallets(ctx, claims.UserID); err != nil {
			logger.Log.Errorw("failed to ensure default wallets", "userID", claims.UserID, "error", err)
			writeServiceError(w, err)
			return
		}

		profile, err := svc.GetProfile(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get profile", "userID", claims.UserID, "error", err)
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{
			UserID:             profile.UserID.String(),
			VerificationStatus: profile.VerificationStatus,
			DailyLimit:         profile.DailyLimit.String(),
			MonthlyLimit:       profile.MonthlyLimit.String(),
		})
	}
}
