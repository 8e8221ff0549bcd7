package repositories

import "errors"

// Storage-boundary errors. Driver errors are translated to these at the
// repository layer so callers never match on pgx or sql internals.
var (
	// ErrWalletNotFound is returned when no wallet exists for a (user, currency) pair.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrWalletAlreadyExists is returned when creating a wallet for an existing (user, currency) pair.
	ErrWalletAlreadyExists = errors.New("wallet already exists")
	// ErrInsufficientFunds is returned when a delta would take a wallet balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrRetryableConflict is returned after bounded retries of a commit that kept
	// hitting serialization or deadlock conflicts.
	ErrRetryableConflict = errors.New("retryable conflict, try again")
	// ErrRateNotFound is returned when no exchange rate row exists for a currency pair.
	ErrRateNotFound = errors.New("exchange rate not found")
	// ErrProfileNotFound is returned when a user has no profile row.
	ErrProfileNotFound = errors.New("user profile not found")
	// ErrDocumentNotFound is returned when a KYC document does not exist.
	ErrDocumentNotFound = errors.New("kyc document not found")
)
