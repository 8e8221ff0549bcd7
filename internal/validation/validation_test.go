package validation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosspayhq/wallet-core/internal/models"
)

type stubDebits struct {
	spent decimal.Decimal
	err   error
	since time.Time
}

func (s *stubDebits) SumDebitsSince(_ context.Context, _ uuid.UUID, _ string, since time.Time) (decimal.Decimal, error) {
	s.since = since
	return s.spent, s.err
}

type stubProfiles struct {
	profile *models.UserProfileDB
	err     error
}

func (s *stubProfiles) Get(context.Context, uuid.UUID) (*models.UserProfileDB, error) {
	return s.profile, s.err
}

func TestValidateAmount(t *testing.T) {
	e := NewEngine(nil, nil)

	tests := []struct {
		name     string
		raw      string
		currency string
		wantErr  bool
	}{
		{name: "ngn_in_band", raw: "100", currency: models.NGN},
		{name: "ngn_at_min", raw: "1", currency: models.NGN},
		{name: "ngn_at_max", raw: "10000000", currency: models.NGN},
		{name: "ngn_above_max", raw: "10000001", currency: models.NGN, wantErr: true},
		{name: "kes_above_max", raw: "1000001", currency: models.KES, wantErr: true},
		{name: "btc_at_min", raw: "0.00001", currency: models.BTC},
		{name: "btc_below_min", raw: "0.000001", currency: models.BTC, wantErr: true},
		{name: "eth_in_band", raw: "1.5", currency: models.ETH},
		{name: "usdt_at_max", raw: "100000", currency: models.USDT},
		{name: "zero", raw: "0", currency: models.NGN, wantErr: true},
		{name: "negative", raw: "-5", currency: models.NGN, wantErr: true},
		{name: "not_a_number", raw: "abc", currency: models.NGN, wantErr: true},
		{name: "unsupported_currency", raw: "100", currency: "DOGE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := e.ValidateAmount(tt.raw, tt.currency)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, amount.Equal(decimal.RequireFromString(tt.raw)))
		})
	}
}

func TestValidateAddress(t *testing.T) {
	e := NewEngine(nil, nil)

	tests := []struct {
		name     string
		address  string
		currency string
		wantErr  bool
	}{
		{name: "btc_legacy", address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", currency: models.BTC},
		{name: "btc_bech32", address: "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", currency: models.BTC},
		{name: "btc_bad_prefix", address: "2A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", currency: models.BTC, wantErr: true},
		{name: "eth_valid", address: "0x52908400098527886E0F7030069857D2E4169EE7", currency: models.ETH},
		{name: "eth_too_short", address: "0x529084", currency: models.ETH, wantErr: true},
		{name: "usdt_uses_eth_format", address: "0x52908400098527886E0F7030069857D2E4169EE7", currency: models.USDT},
		{name: "fiat_accepts_any_label", address: "account-1234", currency: models.NGN},
		{name: "empty", address: "", currency: models.BTC, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ValidateAddress(tt.address, tt.currency)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.address, got)
		})
	}
}

func TestCheckDailyLimit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	profile := &models.UserProfileDB{
		UserID:       userID,
		DailyLimit:   decimal.NewFromInt(100),
		MonthlyLimit: decimal.NewFromInt(1000),
	}

	t.Run("under_limit", func(t *testing.T) {
		debits := &stubDebits{spent: decimal.NewFromInt(40)}
		e := NewEngine(debits, &stubProfiles{profile: profile})

		require.NoError(t, e.CheckDailyLimit(ctx, userID, decimal.NewFromInt(60), models.NGN))
	})

	t.Run("exactly_at_limit_allowed", func(t *testing.T) {
		debits := &stubDebits{spent: decimal.NewFromInt(50)}
		e := NewEngine(debits, &stubProfiles{profile: profile})

		require.NoError(t, e.CheckDailyLimit(ctx, userID, decimal.NewFromInt(50), models.NGN))
	})

	t.Run("over_limit", func(t *testing.T) {
		debits := &stubDebits{spent: decimal.NewFromInt(50)}
		e := NewEngine(debits, &stubProfiles{profile: profile})

		err := e.CheckDailyLimit(ctx, userID, decimal.RequireFromString("50.01"), models.NGN)
		assert.ErrorIs(t, err, ErrLimitExceeded)
	})

	t.Run("window_starts_at_utc_midnight", func(t *testing.T) {
		debits := &stubDebits{spent: decimal.Zero}
		e := NewEngine(debits, &stubProfiles{profile: profile})

		require.NoError(t, e.CheckDailyLimit(ctx, userID, decimal.NewFromInt(1), models.NGN))

		now := time.Now().UTC()
		want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, debits.since)
	})
}

func TestCheckMonthlyLimit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	profile := &models.UserProfileDB{
		UserID:       userID,
		DailyLimit:   decimal.NewFromInt(100),
		MonthlyLimit: decimal.NewFromInt(1000),
	}

	t.Run("uses_monthly_limit_and_window", func(t *testing.T) {
		debits := &stubDebits{spent: decimal.NewFromInt(950)}
		e := NewEngine(debits, &stubProfiles{profile: profile})

		err := e.CheckMonthlyLimit(ctx, userID, decimal.NewFromInt(51), models.NGN)
		assert.ErrorIs(t, err, ErrLimitExceeded)

		now := time.Now().UTC()
		want := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, debits.since)
	})

	t.Run("daily_passes_monthly_blocks", func(t *testing.T) {
		// 90 spent this month, 0 today: a 60 debit clears the daily limit of
		// 100 but would be blocked monthly at limit 100.
		tight := &models.UserProfileDB{
			UserID:       userID,
			DailyLimit:   decimal.NewFromInt(100),
			MonthlyLimit: decimal.NewFromInt(100),
		}
		debits := &stubDebits{spent: decimal.NewFromInt(90)}
		e := NewEngine(debits, &stubProfiles{profile: tight})

		err := e.CheckMonthlyLimit(ctx, userID, decimal.NewFromInt(60), models.NGN)
		assert.ErrorIs(t, err, ErrLimitExceeded)
	})
}
