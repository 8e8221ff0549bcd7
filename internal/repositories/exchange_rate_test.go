package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeRateRepository(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewExchangeRateRepository(db)
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.Get(ctx, "BTC", "NGN")
		assert.ErrorIs(t, err, ErrRateNotFound)
	})

	t.Run("upsert and get", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, "BTC", "NGN", decimal.RequireFromString("98000000.12")))

		rate, err := repo.Get(ctx, "BTC", "NGN")
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.RequireFromString("98000000.12")))
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, "BTC", "NGN", decimal.NewFromInt(99000000)))

		rate, err := repo.Get(ctx, "BTC", "NGN")
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.NewFromInt(99000000)))
	})

	t.Run("directions are independent", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, "NGN", "BTC", decimal.RequireFromString("0.0000000101")))

		forward, err := repo.Get(ctx, "BTC", "NGN")
		require.NoError(t, err)
		reverse, err := repo.Get(ctx, "NGN", "BTC")
		require.NoError(t, err)
		assert.False(t, forward.Equal(reverse))
	})

	t.Run("list keyed by pair", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, "USDT", "KES", decimal.RequireFromString("129.5")))

		rates, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, rates, 3)
		assert.True(t, rates["BTC_NGN"].Equal(decimal.NewFromInt(99000000)))
		assert.True(t, rates["USDT_KES"].Equal(decimal.RequireFromString("129.5")))
	})
}
