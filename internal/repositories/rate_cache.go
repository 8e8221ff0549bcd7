package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
)

// RateCacheRepository provides cached exchange rates using Redis
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewRateCacheRepository creates a new cache repository with the given TTL
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached exchange rate between two currencies.
// Returns ErrRateNotFound on a cache miss.
func (r *RateCacheRepository) Get(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	key := fmt.Sprintf("exchange_rate:%s:%s", fromCurrency, toCurrency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, ErrRateNotFound
		}
		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(val)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return decimal.Zero, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", rate,
		"error", nil,
	)

	return rate, nil
}

// Set caches an exchange rate in Redis with expiration
func (r *RateCacheRepository) Set(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal) error {
	key := fmt.Sprintf("exchange_rate:%s:%s", fromCurrency, toCurrency)
	err := r.client.Set(ctx, key, rate.String(), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rate", rate,
		"result", "ok",
		"error", err,
	)

	return err
}
