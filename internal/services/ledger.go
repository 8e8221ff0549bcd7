package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/facades"
	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/models"
	"github.com/crosspayhq/wallet-core/internal/repositories"
)

// WalletStore is the wallet side of the ledger store.
type WalletStore interface {
	GetByUserAndCurrency(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error)
	Ensure(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error)
	Lock(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error)
	ApplyDelta(ctx context.Context, walletID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
	ListBalances(ctx context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error)
}

// TransactionStore is the append-only transaction trail of the ledger store.
type TransactionStore interface {
	Save(ctx context.Context, walletID uuid.UUID, txType string, amount decimal.Decimal, counterparty *string, metadata models.Metadata) (*models.TransactionDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransactionDB, error)
}

// Validator enforces amount bounds, address formats and spend limits.
type Validator interface {
	CheckAmount(amount decimal.Decimal, currency string) (decimal.Decimal, error)
	ValidateAddress(address, currency string) (string, error)
	CheckDailyLimit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string) error
	CheckMonthlyLimit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, currency string) error
}

// FraudChecker runs rule-based heuristics before an operation commits.
type FraudChecker interface {
	CheckVelocity(ctx context.Context, userID uuid.UUID) error
	FlagLargeAmount(userID uuid.UUID, amount decimal.Decimal, currency string)
}

// RateResolver supplies the exchange rate for one pair direction.
type RateResolver interface {
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
}

// CryptoSender dispatches an external on-chain send.
type CryptoSender interface {
	SendCrypto(ctx context.Context, currency string, amount decimal.Decimal, toAddress, reference string) (*facades.SendResult, error)
}

// TxRunner executes a function inside an atomic ledger transaction with
// bounded conflict retries.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MetricsRecorder receives operation metrics. Optional.
type MetricsRecorder interface {
	RecordOperation(operation, outcome string, duration time.Duration)
	SetWalletBalance(currency string, balance float64)
}

// LedgerService is the transactional core. Every operation runs as a short
// state machine (validate, resolve rate when converting, commit or reject);
// any failure before commit leaves no trace, and a multi-wallet commit is
// all-or-nothing.
type LedgerService struct {
	wallets     WalletStore
	txns        TransactionStore
	validator   Validator
	fraud       FraudChecker
	rates       RateResolver
	sender      CryptoSender
	txRunner    TxRunner
	kafkaWriter KafkaWriter
	metrics     MetricsRecorder
}

// NewLedgerService creates the ledger engine. kafkaWriter and metrics may be nil.
func NewLedgerService(
	wallets WalletStore,
	txns TransactionStore,
	validator Validator,
	fraud FraudChecker,
	rates RateResolver,
	sender CryptoSender,
	txRunner TxRunner,
	kafkaWriter KafkaWriter,
	metrics MetricsRecorder,
) *LedgerService {
	return &LedgerService{
		wallets:     wallets,
		txns:        txns,
		validator:   validator,
		fraud:       fraud,
		rates:       rates,
		sender:      sender,
		txRunner:    txRunner,
		kafkaWriter: kafkaWriter,
		metrics:     metrics,
	}
}

// publishTransaction publishes a committed operation to Kafka. Publishing is
// post-commit and best-effort; the ledger is the source of truth.
func (s *LedgerService) publishTransaction(ctx context.Context, txn *models.TransactionDB, userID uuid.UUID, currency, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransactionEvent{
		TransactionID: txn.TransactionID.String(),
		Timestamp:     time.Now().Unix(),
		Amount:        txn.Amount.String(),
		Currency:      currency,
		UserID:        userID.String(),
		Operation:     operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction event", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction event", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("transaction event published", "transaction_id", txn.TransactionID, "operation", operation)
	}
}

func (s *LedgerService) record(operation, outcome string, started time.Time) {
	if s.metrics != nil {
		s.metrics.RecordOperation(operation, outcome, time.Since(started))
	}
}

func (s *LedgerService) observeBalance(currency string, balance decimal.Decimal) {
	if s.metrics != nil {
		f, _ := balance.Float64()
		s.metrics.SetWalletBalance(currency, f)
	}
}

// Deposit credits a wallet. Credits are unrestricted: no limit or fraud
// checks apply. txHash, when present, is the external deposit reference.
func (s *LedgerService) Deposit(ctx context.Context, userID uuid.UUID, currency string, amount decimal.Decimal, txHash string) (decimal.Decimal, error) {
	started := time.Now()

	amount, err := s.validator.CheckAmount(amount, currency)
	if err != nil {
		s.record("deposit", "rejected", started)
		return decimal.Zero, err
	}

	var (
		newBalance decimal.Decimal
		committed  *models.TransactionDB
	)

	err = s.txRunner.Do(ctx, func(ctx context.Context) error {
		wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currency)
		if err != nil {
			return err
		}

		newBalance, err = s.wallets.ApplyDelta(ctx, wallet.WalletID, amount)
		if err != nil {
			return err
		}

		metadata := models.Metadata{}
		var counterparty *string
		if txHash != "" {
			metadata[models.MetaTxHash] = txHash
			metadata[models.MetaStatus] = "confirmed"
			label := "Luna Business Wallet"
			counterparty = &label
		}

		committed, err = s.txns.Save(ctx, wallet.WalletID, models.TxTypeDeposit, amount, counterparty, metadata)
		return err
	})
	if err != nil {
		s.record("deposit", "failed", started)
		return decimal.Zero, err
	}

	s.record("deposit", "committed", started)
	s.observeBalance(currency, newBalance)
	s.publishTransaction(ctx, committed, userID, currency, "deposit")

	return newBalance, nil
}

// Withdraw debits a wallet and dispatches an external send. The send is
// invoked before any balance mutation; its failure aborts the withdrawal
// with no trace. Confirmation of the send is asynchronous and tracked via
// transaction metadata, outside the atomic commit.
func (s *LedgerService) Withdraw(ctx context.Context, userID uuid.UUID, currency string, amount decimal.Decimal, toAddress string) (string, decimal.Decimal, error) {
	started := time.Now()

	amount, err := s.validator.CheckAmount(amount, currency)
	if err != nil {
		s.record("withdraw", "rejected", started)
		return "", decimal.Zero, err
	}
	if _, err := s.validator.ValidateAddress(toAddress, currency); err != nil {
		s.record("withdraw", "rejected", started)
		return "", decimal.Zero, err
	}
	if err := s.validator.CheckDailyLimit(ctx, userID, amount, currency); err != nil {
		s.record("withdraw", "rejected", started)
		return "", decimal.Zero, err
	}
	if err := s.validator.CheckMonthlyLimit(ctx, userID, amount, currency); err != nil {
		s.record("withdraw", "rejected", started)
		return "", decimal.Zero, err
	}
	if err := s.fraud.CheckVelocity(ctx, userID); err != nil {
		s.record("withdraw", "rejected", started)
		return "", decimal.Zero, err
	}
	s.fraud.FlagLargeAmount(userID, amount, currency)

	wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currency)
	if err != nil {
		s.record("withdraw", "rejected", started)
		return "", decimal.Zero, err
	}
	if wallet.Balance.LessThan(amount) {
		s.record("withdraw", "rejected", started)
		return "", decimal.Zero, repositories.ErrInsufficientFunds
	}

	send, err := s.sender.SendCrypto(ctx, currency, amount, toAddress, userID.String())
	if err != nil {
		logger.Log.Errorw("crypto send failed, aborting withdrawal",
			"user_id", userID, "currency", currency, "amount", amount, "error", err)
		s.record("withdraw", "failed", started)
		return "", decimal.Zero, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	var (
		newBalance decimal.Decimal
		committed  *models.TransactionDB
	)

	err = s.txRunner.Do(ctx, func(ctx context.Context) error {
		locked, err := s.wallets.Lock(ctx, wallet.WalletID)
		if err != nil {
			return err
		}

		newBalance, err = s.wallets.ApplyDelta(ctx, locked.WalletID, amount.Neg())
		if err != nil {
			return err
		}

		committed, err = s.txns.Save(ctx, locked.WalletID, models.TxTypeWithdraw, amount.Neg(), &toAddress, models.Metadata{
			models.MetaTxHash: send.TxHash,
			models.MetaStatus: send.Status,
		})
		return err
	})
	if err != nil {
		s.record("withdraw", "failed", started)
		return "", decimal.Zero, err
	}

	s.record("withdraw", "committed", started)
	s.observeBalance(currency, newBalance)
	s.publishTransaction(ctx, committed, userID, currency, "withdraw")

	return send.TxHash, newBalance, nil
}

// Convert moves value between two of the user's wallets at the current
// rate. The rate is looked up for the inverse pair (target, source) and the
// source amount divided by it; both wallet deltas and both transaction
// records commit atomically or not at all.
func (s *LedgerService) Convert(ctx context.Context, userID uuid.UUID, fromCurrency, toCurrency string, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	started := time.Now()

	if fromCurrency == toCurrency {
		s.record("convert", "rejected", started)
		return decimal.Zero, decimal.Zero, ErrSameCurrency
	}
	if !models.IsSupportedCurrency(toCurrency) {
		s.record("convert", "rejected", started)
		return decimal.Zero, decimal.Zero, ErrUnsupportedCurrency
	}

	amount, err := s.validator.CheckAmount(amount, fromCurrency)
	if err != nil {
		s.record("convert", "rejected", started)
		return decimal.Zero, decimal.Zero, err
	}

	// Rate is stored as source-per-target, so the inverse pair is looked
	// up and the source amount divided by it.
	rate, err := s.rates.GetRate(ctx, toCurrency, fromCurrency)
	if err != nil {
		s.record("convert", "rejected", started)
		return decimal.Zero, decimal.Zero, err
	}
	if rate.Sign() <= 0 {
		s.record("convert", "rejected", started)
		return decimal.Zero, decimal.Zero, ErrRateUnavailable
	}
	converted := amount.Div(rate)

	err = s.txRunner.Do(ctx, func(ctx context.Context) error {
		source, err := s.wallets.GetByUserAndCurrency(ctx, userID, fromCurrency)
		if err != nil {
			return err
		}
		target, err := s.wallets.Ensure(ctx, userID, toCurrency)
		if err != nil {
			return err
		}

		if err := s.lockPair(ctx, source.WalletID, target.WalletID); err != nil {
			return err
		}

		if _, err := s.wallets.ApplyDelta(ctx, source.WalletID, amount.Neg()); err != nil {
			return err
		}
		if _, err := s.wallets.ApplyDelta(ctx, target.WalletID, converted); err != nil {
			return err
		}

		sourceLabel := "Convert to " + toCurrency
		if _, err := s.txns.Save(ctx, source.WalletID, models.TxTypeConvert, amount.Neg(), &sourceLabel, models.Metadata{
			models.MetaToCurrency:      toCurrency,
			models.MetaRate:            rate.String(),
			models.MetaConvertedAmount: converted.String(),
		}); err != nil {
			return err
		}

		targetLabel := "Convert from " + fromCurrency
		_, err = s.txns.Save(ctx, target.WalletID, models.TxTypeConvert, converted, &targetLabel, models.Metadata{
			models.MetaFromCurrency: fromCurrency,
			models.MetaRate:         rate.String(),
			models.MetaSourceAmount: amount.String(),
		})
		return err
	})
	if err != nil {
		s.record("convert", "failed", started)
		return decimal.Zero, decimal.Zero, err
	}

	s.record("convert", "committed", started)
	logger.Log.Infow("conversion committed",
		"user_id", userID, "from", fromCurrency, "to", toCurrency,
		"amount", amount, "converted", converted, "rate", rate)

	return converted, rate, nil
}

// Transfer moves value between two users' wallets in the same currency.
// Both deltas and both records commit atomically.
func (s *LedgerService) Transfer(ctx context.Context, senderID, recipientID uuid.UUID, currency string, amount decimal.Decimal) (decimal.Decimal, error) {
	started := time.Now()

	if senderID == recipientID {
		s.record("transfer", "rejected", started)
		return decimal.Zero, ErrSelfTransfer
	}

	amount, err := s.validator.CheckAmount(amount, currency)
	if err != nil {
		s.record("transfer", "rejected", started)
		return decimal.Zero, err
	}
	if err := s.validator.CheckDailyLimit(ctx, senderID, amount, currency); err != nil {
		s.record("transfer", "rejected", started)
		return decimal.Zero, err
	}
	if err := s.validator.CheckMonthlyLimit(ctx, senderID, amount, currency); err != nil {
		s.record("transfer", "rejected", started)
		return decimal.Zero, err
	}
	if err := s.fraud.CheckVelocity(ctx, senderID); err != nil {
		s.record("transfer", "rejected", started)
		return decimal.Zero, err
	}
	s.fraud.FlagLargeAmount(senderID, amount, currency)

	var newBalance decimal.Decimal

	err = s.txRunner.Do(ctx, func(ctx context.Context) error {
		source, err := s.wallets.GetByUserAndCurrency(ctx, senderID, currency)
		if err != nil {
			return err
		}
		target, err := s.wallets.Ensure(ctx, recipientID, currency)
		if err != nil {
			return err
		}

		if err := s.lockPair(ctx, source.WalletID, target.WalletID); err != nil {
			return err
		}

		newBalance, err = s.wallets.ApplyDelta(ctx, source.WalletID, amount.Neg())
		if err != nil {
			return err
		}
		if _, err := s.wallets.ApplyDelta(ctx, target.WalletID, amount); err != nil {
			return err
		}

		outLabel := "Transfer to " + recipientID.String()
		if _, err := s.txns.Save(ctx, source.WalletID, models.TxTypeTransfer, amount.Neg(), &outLabel, models.Metadata{}); err != nil {
			return err
		}

		inLabel := "Transfer from " + senderID.String()
		_, err = s.txns.Save(ctx, target.WalletID, models.TxTypeTransfer, amount, &inLabel, models.Metadata{})
		return err
	})
	if err != nil {
		s.record("transfer", "failed", started)
		return decimal.Zero, err
	}

	s.record("transfer", "committed", started)
	s.observeBalance(currency, newBalance)

	return newBalance, nil
}

// lockPair takes row locks on two wallets in ascending wallet_id order, so
// two operations touching the same pair in opposite directions cannot
// deadlock.
func (s *LedgerService) lockPair(ctx context.Context, a, b uuid.UUID) error {
	first, second := a, b
	if bytes.Compare(second[:], first[:]) < 0 {
		first, second = second, first
	}
	if _, err := s.wallets.Lock(ctx, first); err != nil {
		return err
	}
	_, err := s.wallets.Lock(ctx, second)
	return err
}

// GetBalances returns the user's balances in all currencies.
func (s *LedgerService) GetBalances(ctx context.Context, userID uuid.UUID) (map[string]decimal.Decimal, error) {
	return s.wallets.ListBalances(ctx, userID)
}

// GetTransactions returns the user's most recent ledger records.
func (s *LedgerService) GetTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.TransactionDB, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.txns.ListByUser(ctx, userID, limit)
}
