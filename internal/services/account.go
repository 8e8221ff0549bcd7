package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
	"github.com/crosspayhq/wallet-core/internal/models"
	"github.com/crosspayhq/wallet-core/internal/repositories"
)

// autoApproveMinConfidence is the OCR confidence score above which a KYC
// document is approved without manual review.
const autoApproveMinConfidence = 70

// WalletCreator creates wallets for a user.
type WalletCreator interface {
	Create(ctx context.Context, userID uuid.UUID, currency string, depositAddress *string) (*models.WalletDB, error)
	Ensure(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error)
	GetByUserAndCurrency(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error)
}

// ProfileStore persists user profiles and their verification tiers.
type ProfileStore interface {
	Save(ctx context.Context, userID uuid.UUID, fullName, country *string) error
	Get(ctx context.Context, userID uuid.UUID) (*models.UserProfileDB, error)
	UpdateVerification(ctx context.Context, userID uuid.UUID, status string, daily, monthly decimal.Decimal) error
}

// KYCStore persists KYC documents.
type KYCStore interface {
	Save(ctx context.Context, doc *models.KYCDocumentDB) (*models.KYCDocumentDB, error)
	Get(ctx context.Context, documentID uuid.UUID) (*models.KYCDocumentDB, error)
	SetReview(ctx context.Context, documentID uuid.UUID, status string, reviewedBy uuid.UUID) error
	ListPending(ctx context.Context, limit int) ([]models.KYCDocumentDB, error)
}

// DepositAddressProvider vends custodial deposit addresses for crypto wallets.
type DepositAddressProvider interface {
	GetDepositAddress(ctx context.Context, currency string) (string, error)
}

// AccountService manages wallets, profiles and KYC verification.
type AccountService struct {
	wallets   WalletCreator
	profiles  ProfileStore
	documents KYCStore
	addresses DepositAddressProvider
	txRunner  TxRunner
}

// NewAccountService creates the account service.
func NewAccountService(
	wallets WalletCreator,
	profiles ProfileStore,
	documents KYCStore,
	addresses DepositAddressProvider,
	txRunner TxRunner,
) *AccountService {
	return &AccountService{
		wallets:   wallets,
		profiles:  profiles,
		documents: documents,
		addresses: addresses,
		txRunner:  txRunner,
	}
}

// EnsureDefaultWallets creates the fiat wallets and a default profile for a
// user. The wallets are written with a conflict-free upsert, so the call is
// idempotent and safe on every login: a repeat never errors and never
// aborts the surrounding transaction.
func (s *AccountService) EnsureDefaultWallets(ctx context.Context, userID uuid.UUID) error {
	return s.txRunner.Do(ctx, func(ctx context.Context) error {
		for currency := range models.FiatCurrencies {
			if _, err := s.wallets.Ensure(ctx, userID, currency); err != nil {
				return err
			}
		}
		return s.profiles.Save(ctx, userID, nil, nil)
	})
}

// CreateCryptoWallet creates an on-demand crypto wallet, fetching a
// custodial deposit address for it. Fiat currencies are rejected; their
// wallets exist from signup.
func (s *AccountService) CreateCryptoWallet(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error) {
	if !models.IsCryptoCurrency(currency) {
		return nil, ErrUnsupportedCurrency
	}

	if _, err := s.wallets.GetByUserAndCurrency(ctx, userID, currency); err == nil {
		return nil, repositories.ErrWalletAlreadyExists
	} else if !errors.Is(err, repositories.ErrWalletNotFound) {
		return nil, err
	}

	address, err := s.addresses.GetDepositAddress(ctx, currency)
	if err != nil {
		logger.Log.Errorw("failed to fetch deposit address", "user_id", userID, "currency", currency, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrExternalService, err)
	}

	wallet, err := s.wallets.Create(ctx, userID, currency, &address)
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("crypto wallet created", "user_id", userID, "currency", currency, "wallet_id", wallet.WalletID)
	return wallet, nil
}

// SubmitKYC stores a submitted document and auto-approves it when the OCR
// confidence clears the threshold; otherwise it stays pending for manual
// review. Approval upgrades the profile tier in the same transaction.
func (s *AccountService) SubmitKYC(ctx context.Context, userID uuid.UUID, docType string, country *string, extracted models.Metadata, confidence float64) (*models.KYCDocumentDB, error) {
	doc := &models.KYCDocumentDB{
		UserID:          userID,
		DocType:         docType,
		Country:         country,
		ExtractedData:   extracted,
		ConfidenceScore: confidence,
		Status:          models.KYCPending,
	}
	if confidence >= autoApproveMinConfidence {
		doc.Status = models.KYCApproved
	}

	var saved *models.KYCDocumentDB
	err := s.txRunner.Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.documents.Save(ctx, doc)
		if err != nil {
			return err
		}
		if saved.Status != models.KYCApproved {
			return nil
		}
		// The approved document's country becomes the profile country.
		if err := s.profiles.Save(ctx, userID, nil, saved.Country); err != nil {
			return err
		}
		limits := models.LimitsForStatus(models.VerificationApproved)
		return s.profiles.UpdateVerification(ctx, userID, models.VerificationApproved, limits.Daily, limits.Monthly)
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("kyc document submitted",
		"user_id", userID, "document_id", saved.DocumentID,
		"confidence", confidence, "status", saved.Status)
	return saved, nil
}

// ReviewKYC applies a manual review verdict: the document status and the
// profile tier change together or not at all.
func (s *AccountService) ReviewKYC(ctx context.Context, documentID, reviewerID uuid.UUID, approve bool) (*models.KYCDocumentDB, error) {
	status := models.KYCRejected
	verification := models.VerificationRejected
	if approve {
		status = models.KYCApproved
		verification = models.VerificationApproved
	}

	var doc *models.KYCDocumentDB
	err := s.txRunner.Do(ctx, func(ctx context.Context) error {
		var err error
		doc, err = s.documents.Get(ctx, documentID)
		if err != nil {
			return err
		}
		if err := s.documents.SetReview(ctx, documentID, status, reviewerID); err != nil {
			return err
		}
		if approve {
			// The approved document's country becomes the profile country.
			if err := s.profiles.Save(ctx, doc.UserID, nil, doc.Country); err != nil {
				return err
			}
		}
		limits := models.LimitsForStatus(verification)
		return s.profiles.UpdateVerification(ctx, doc.UserID, verification, limits.Daily, limits.Monthly)
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("kyc document reviewed",
		"document_id", documentID, "reviewer_id", reviewerID, "status", status)

	doc.Status = status
	doc.ReviewedBy = &reviewerID
	return doc, nil
}

// ListPendingKYC returns documents awaiting manual review.
func (s *AccountService) ListPendingKYC(ctx context.Context, limit int) ([]models.KYCDocumentDB, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.documents.ListPending(ctx, limit)
}

// GetProfile returns the user's profile with verification tier and limits.
func (s *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfileDB, error) {
	return s.profiles.Get(ctx, userID)
}
