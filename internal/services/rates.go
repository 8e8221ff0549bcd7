package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/repositories"
)

// PriceFetcher pulls current prices from the external source.
// The result maps currency code -> quote currency code -> price.
type PriceFetcher interface {
	FetchPrices(ctx context.Context) (map[string]map[string]decimal.Decimal, error)
}

// RateStore persists exchange rates, one row per pair direction.
type RateStore interface {
	Upsert(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) error
	Get(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
	List(ctx context.Context) (map[string]decimal.Decimal, error)
}

// RateCache caches exchange rates with a TTL.
type RateCache interface {
	Get(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
	Set(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) error
}

// RefreshMetrics counts failed refresh cycles.
type RefreshMetrics interface {
	RecordRateRefreshFailure()
}

// RateService supplies exchange rates to the ledger engine. Reads prefer
// the cache, then the store; refresh cycles run independently and a failed
// cycle never invalidates previously stored rates.
type RateService struct {
	fetcher PriceFetcher
	store   RateStore
	cache   RateCache
	metrics RefreshMetrics
}

// NewRateService creates a rate service. cache and metrics may be nil.
func NewRateService(fetcher PriceFetcher, store RateStore, cache RateCache, metrics RefreshMetrics) *RateService {
	return &RateService{fetcher: fetcher, store: store, cache: cache, metrics: metrics}
}

// GetRate returns the stored rate for one pair direction.
// Returns ErrRateUnavailable when no rate exists anywhere.
func (s *RateService) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	if s.cache != nil {
		rate, err := s.cache.Get(ctx, fromCurrency, toCurrency)
		if err == nil {
			return rate, nil
		}
	}

	rate, err := s.store.Get(ctx, fromCurrency, toCurrency)
	if err != nil {
		if errors.Is(err, repositories.ErrRateNotFound) {
			return decimal.Zero, ErrRateUnavailable
		}
		return decimal.Zero, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, fromCurrency, toCurrency, rate); err != nil {
			logger.Log.Errorw("failed to cache exchange rate",
				"from", fromCurrency, "to", toCurrency, "rate", rate, "error", err)
		}
	}

	return rate, nil
}

// ListRates returns all stored rates keyed by "FROM_TO".
func (s *RateService) ListRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	return s.store.List(ctx)
}

// RefreshRates pulls a batch of current prices and upserts both directions
// per pair. Fetch and upsert failures are absorbed: previously stored rates
// stay valid and the outcome is reported as a boolean.
func (s *RateService) RefreshRates(ctx context.Context) bool {
	prices, err := s.fetcher.FetchPrices(ctx)
	if err != nil {
		logger.Log.Errorw("rate refresh failed, keeping last good rates", "error", err)
		if s.metrics != nil {
			s.metrics.RecordRateRefreshFailure()
		}
		return false
	}

	one := decimal.NewFromInt(1)
	ok := true

	for symbol, quotes := range prices {
		for quote, price := range quotes {
			if err := s.store.Upsert(ctx, symbol, quote, price); err != nil {
				logger.Log.Errorw("failed to upsert rate", "from", symbol, "to", quote, "error", err)
				ok = false
				continue
			}
			if price.Sign() > 0 {
				if err := s.store.Upsert(ctx, quote, symbol, one.Div(price)); err != nil {
					logger.Log.Errorw("failed to upsert reverse rate", "from", quote, "to", symbol, "error", err)
					ok = false
				}
			}
		}
	}

	if !ok && s.metrics != nil {
		s.metrics.RecordRateRefreshFailure()
	}
	return ok
}

// RunRefreshLoop refreshes rates on the given cadence until ctx is done.
// Runs one refresh immediately so rates are available at startup.
func (s *RateService) RunRefreshLoop(ctx context.Context, interval time.Duration) {
	s.RefreshRates(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RefreshRates(ctx)
		}
	}
}
