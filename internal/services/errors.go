package services

import "errors"

var (
	// ErrRateUnavailable is returned when no exchange rate exists for a pair
	// in the cache or the store.
	ErrRateUnavailable = errors.New("exchange rate not available")
	// ErrExternalService is returned when an external collaborator call
	// (rate source, crypto send) fails.
	ErrExternalService = errors.New("external service failure")
	// ErrUnsupportedCurrency is returned when an operation names a currency
	// outside the supported set, or a fiat currency where crypto is required.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrSameCurrency is returned when a conversion names the same source and
	// target currency.
	ErrSameCurrency = errors.New("source and target currency must differ")
	// ErrSelfTransfer is returned when a transfer names the sender as recipient.
	ErrSelfTransfer = errors.New("cannot transfer to yourself")
)
