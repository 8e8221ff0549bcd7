package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosspayhq/wallet-core/internal/models"
	"github.com/crosspayhq/wallet-core/internal/repositories"
)

func TestAccountService_EnsureDefaultWallets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates_fiat_wallets_and_profile", func(t *testing.T) {
		wallets := NewMockWalletCreator(ctrl)
		profiles := NewMockProfileStore(ctrl)
		txRunner := NewMockTxRunner(ctrl)
		passthroughTx(txRunner)

		for currency := range models.FiatCurrencies {
			wallets.EXPECT().
				Ensure(ctx, userID, currency).
				Return(&models.WalletDB{WalletID: uuid.New(), UserID: userID, Currency: currency}, nil)
		}
		profiles.EXPECT().Save(ctx, userID, gomock.Nil(), gomock.Nil()).Return(nil)

		svc := NewAccountService(wallets, profiles, nil, nil, txRunner)

		require.NoError(t, svc.EnsureDefaultWallets(ctx, userID))
	})

	t.Run("repeat_call_succeeds", func(t *testing.T) {
		wallets := NewMockWalletCreator(ctrl)
		profiles := NewMockProfileStore(ctrl)
		txRunner := NewMockTxRunner(ctrl)
		passthroughTx(txRunner)

		// Both calls hit the same upsert path; existing wallets come back
		// as-is and nothing errors.
		for currency := range models.FiatCurrencies {
			wallets.EXPECT().
				Ensure(ctx, userID, currency).
				Return(&models.WalletDB{WalletID: uuid.New(), UserID: userID, Currency: currency}, nil).
				Times(2)
		}
		profiles.EXPECT().Save(ctx, userID, gomock.Nil(), gomock.Nil()).Return(nil).Times(2)

		svc := NewAccountService(wallets, profiles, nil, nil, txRunner)

		require.NoError(t, svc.EnsureDefaultWallets(ctx, userID))
		require.NoError(t, svc.EnsureDefaultWallets(ctx, userID))
	})

	t.Run("ensure_failure_propagates", func(t *testing.T) {
		wallets := NewMockWalletCreator(ctrl)
		txRunner := NewMockTxRunner(ctrl)
		passthroughTx(txRunner)

		wallets.EXPECT().
			Ensure(ctx, userID, gomock.Any()).
			Return(nil, errors.New("connection reset"))

		svc := NewAccountService(wallets, nil, nil, nil, txRunner)

		assert.Error(t, svc.EnsureDefaultWallets(ctx, userID))
	})
}

func TestAccountService_CreateCryptoWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("fiat_currency_rejected", func(t *testing.T) {
		svc := NewAccountService(nil, nil, nil, nil, nil)

		_, err := svc.CreateCryptoWallet(ctx, userID, models.NGN)
		assert.ErrorIs(t, err, ErrUnsupportedCurrency)
	})

	t.Run("duplicate_rejected", func(t *testing.T) {
		wallets := NewMockWalletCreator(ctrl)

		wallets.EXPECT().
			GetByUserAndCurrency(ctx, userID, models.BTC).
			Return(&models.WalletDB{WalletID: uuid.New()}, nil)

		svc := NewAccountService(wallets, nil, nil, nil, nil)

		_, err := svc.CreateCryptoWallet(ctx, userID, models.BTC)
		assert.ErrorIs(t, err, repositories.ErrWalletAlreadyExists)
	})

	t.Run("success_with_deposit_address", func(t *testing.T) {
		wallets := NewMockWalletCreator(ctrl)
		addresses := NewMockDepositAddressProvider(ctrl)

		address := "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"

		wallets.EXPECT().
			GetByUserAndCurrency(ctx, userID, models.BTC).
			Return(nil, repositories.ErrWalletNotFound)
		addresses.EXPECT().
			GetDepositAddress(ctx, models.BTC).
			Return(address, nil)
		wallets.EXPECT().
			Create(ctx, userID, models.BTC, &address).
			Return(&models.WalletDB{WalletID: uuid.New(), Currency: models.BTC, DepositAddress: &address}, nil)

		svc := NewAccountService(wallets, nil, nil, addresses, nil)

		wallet, err := svc.CreateCryptoWallet(ctx, userID, models.BTC)
		require.NoError(t, err)
		require.NotNil(t, wallet.DepositAddress)
		assert.Equal(t, address, *wallet.DepositAddress)
	})

	t.Run("address_provider_failure", func(t *testing.T) {
		wallets := NewMockWalletCreator(ctrl)
		addresses := NewMockDepositAddressProvider(ctrl)

		wallets.EXPECT().
			GetByUserAndCurrency(ctx, userID, models.ETH).
			Return(nil, repositories.ErrWalletNotFound)
		addresses.EXPECT().
			GetDepositAddress(ctx, models.ETH).
			Return("", errors.New("custodian unavailable"))

		svc := NewAccountService(wallets, nil, nil, addresses, nil)

		_, err := svc.CreateCryptoWallet(ctx, userID, models.ETH)
		assert.ErrorIs(t, err, ErrExternalService)
	})
}

func TestAccountService_SubmitKYC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	t.Run("auto_approves_high_confidence", func(t *testing.T) {
		documents := NewMockKYCStore(ctrl)
		profiles := NewMockProfileStore(ctrl)
		txRunner := NewMockTxRunner(ctrl)
		passthroughTx(txRunner)

		country := "NG"

		documents.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, doc *models.KYCDocumentDB) (*models.KYCDocumentDB, error) {
				assert.Equal(t, models.KYCApproved, doc.Status)
				saved := *doc
				saved.DocumentID = uuid.New()
				return &saved, nil
			})
		profiles.EXPECT().Save(ctx, userID, gomock.Nil(), &country).Return(nil)
		profiles.EXPECT().
			UpdateVerification(ctx, userID, models.VerificationApproved,
				decEq("10000"), decEq("50000")).
			Return(nil)

		svc := NewAccountService(nil, profiles, documents, nil, txRunner)

		doc, err := svc.SubmitKYC(ctx, userID, "passport", &country, models.Metadata{"name": "A"}, 92.5)
		require.NoError(t, err)
		assert.Equal(t, models.KYCApproved, doc.Status)
	})

	t.Run("low_confidence_stays_pending", func(t *testing.T) {
		documents := NewMockKYCStore(ctrl)
		profiles := NewMockProfileStore(ctrl)
		txRunner := NewMockTxRunner(ctrl)
		passthroughTx(txRunner)

		documents.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, doc *models.KYCDocumentDB) (*models.KYCDocumentDB, error) {
				assert.Equal(t, models.KYCPending, doc.Status)
				saved := *doc
				saved.DocumentID = uuid.New()
				return &saved, nil
			})
		// UpdateVerification must not run for a pending document.

		svc := NewAccountService(nil, profiles, documents, nil, txRunner)

		doc, err := svc.SubmitKYC(ctx, userID, "passport", nil, nil, 42.0)
		require.NoError(t, err)
		assert.Equal(t, models.KYCPending, doc.Status)
	})
}

func TestAccountService_ReviewKYC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	reviewerID := uuid.New()
	documentID := uuid.New()

	t.Run("approve_upgrades_tier", func(t *testing.T) {
		documents := NewMockKYCStore(ctrl)
		profiles := NewMockProfileStore(ctrl)
		txRunner := NewMockTxRunner(ctrl)
		passthroughTx(txRunner)

		country := "KE"

		documents.EXPECT().
			Get(ctx, documentID).
			Return(&models.KYCDocumentDB{DocumentID: documentID, UserID: userID, Country: &country, Status: models.KYCPending}, nil)
		documents.EXPECT().
			SetReview(ctx, documentID, models.KYCApproved, reviewerID).
			Return(nil)
		profiles.EXPECT().Save(ctx, userID, gomock.Nil(), &country).Return(nil)
		profiles.EXPECT().
			UpdateVerification(ctx, userID, models.VerificationApproved,
				decEq("10000"), decEq("50000")).
			Return(nil)

		svc := NewAccountService(nil, profiles, documents, nil, txRunner)

		doc, err := svc.ReviewKYC(ctx, documentID, reviewerID, true)
		require.NoError(t, err)
		assert.Equal(t, models.KYCApproved, doc.Status)
		require.NotNil(t, doc.ReviewedBy)
		assert.Equal(t, reviewerID, *doc.ReviewedBy)
	})

	t.Run("reject_keeps_default_limits", func(t *testing.T) {
		documents := NewMockKYCStore(ctrl)
		profiles := NewMockProfileStore(ctrl)
		txRunner := NewMockTxRunner(ctrl)
		passthroughTx(txRunner)

		documents.EXPECT().
			Get(ctx, documentID).
			Return(&models.KYCDocumentDB{DocumentID: documentID, UserID: userID, Status: models.KYCPending}, nil)
		documents.EXPECT().
			SetReview(ctx, documentID, models.KYCRejected, reviewerID).
			Return(nil)
		profiles.EXPECT().
			UpdateVerification(ctx, userID, models.VerificationRejected,
				decEq("100"), decEq("1000")).
			Return(nil)

		svc := NewAccountService(nil, profiles, documents, nil, txRunner)

		doc, err := svc.ReviewKYC(ctx, documentID, reviewerID, false)
		require.NoError(t, err)
		assert.Equal(t, models.KYCRejected, doc.Status)
	})

	t.Run("missing_document", func(t *testing.T) {
		documents := NewMockKYCStore(ctrl)
		txRunner := NewMockTxRunner(ctrl)
		passthroughTx(txRunner)

		documents.EXPECT().
			Get(ctx, documentID).
			Return(nil, repositories.ErrDocumentNotFound)

		svc := NewAccountService(nil, nil, documents, nil, txRunner)

		_, err := svc.ReviewKYC(ctx, documentID, reviewerID, true)
		assert.ErrorIs(t, err, repositories.ErrDocumentNotFound)
	})
}
