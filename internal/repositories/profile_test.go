package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosspayhq/wallet-core/internal/models"
)

func TestProfileRepository_SaveAndGet(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewProfileRepository(db, TxFromContext)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("save defaults to unverified tier", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, userID, nil, nil))

		profile, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, models.VerificationPending, profile.VerificationStatus)
		assert.True(t, profile.DailyLimit.Equal(models.UnverifiedLimits.Daily))
		assert.True(t, profile.MonthlyLimit.Equal(models.UnverifiedLimits.Monthly))
		assert.Nil(t, profile.FullName)
		assert.False(t, profile.IsVerified())
	})

	t.Run("upsert updates identity fields only", func(t *testing.T) {
		require.NoError(t, repo.UpdateVerification(ctx, userID, models.VerificationApproved,
			models.VerifiedLimits.Daily, models.VerifiedLimits.Monthly))

		name := "Ada Obi"
		country := "NG"
		require.NoError(t, repo.Save(ctx, userID, &name, &country))

		profile, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, profile.FullName)
		assert.Equal(t, "Ada Obi", *profile.FullName)
		// Re-saving the profile must not reset an approved tier.
		assert.Equal(t, models.VerificationApproved, profile.VerificationStatus)
		assert.True(t, profile.DailyLimit.Equal(models.VerifiedLimits.Daily))
	})

	t.Run("nil fields keep stored values", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, userID, nil, nil))

		profile, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, profile.FullName)
		assert.Equal(t, "Ada Obi", *profile.FullName)
		require.NotNil(t, profile.Country)
		assert.Equal(t, "NG", *profile.Country)
	})

	t.Run("country alone updates", func(t *testing.T) {
		country := "KE"
		require.NoError(t, repo.Save(ctx, userID, nil, &country))

		profile, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, profile.FullName)
		assert.Equal(t, "Ada Obi", *profile.FullName)
		require.NotNil(t, profile.Country)
		assert.Equal(t, "KE", *profile.Country)
	})
}

func TestProfileRepository_UpdateVerification(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewProfileRepository(db, TxFromContext)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Save(ctx, userID, nil, nil))

	t.Run("approve raises limits", func(t *testing.T) {
		err := repo.UpdateVerification(ctx, userID, models.VerificationApproved,
			models.VerifiedLimits.Daily, models.VerifiedLimits.Monthly)
		require.NoError(t, err)

		profile, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		assert.True(t, profile.IsVerified())
		assert.True(t, profile.DailyLimit.Equal(models.VerifiedLimits.Daily))
		assert.True(t, profile.MonthlyLimit.Equal(models.VerifiedLimits.Monthly))
	})

	t.Run("reject drops back to default limits", func(t *testing.T) {
		err := repo.UpdateVerification(ctx, userID, models.VerificationRejected,
			models.UnverifiedLimits.Daily, models.UnverifiedLimits.Monthly)
		require.NoError(t, err)

		profile, err := repo.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, models.VerificationRejected, profile.VerificationStatus)
		assert.True(t, profile.DailyLimit.Equal(models.UnverifiedLimits.Daily))
	})

	t.Run("missing profile", func(t *testing.T) {
		err := repo.UpdateVerification(ctx, uuid.New(), models.VerificationApproved,
			models.VerifiedLimits.Daily, models.VerifiedLimits.Monthly)
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}
