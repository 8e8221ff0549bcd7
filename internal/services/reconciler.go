package services

import (
	"context"
	"time"

	"github.com/crosspayhq/wallet-core/internal/facades"
	"github.com/crosspayhq/wallet-core/internal/logger"
)

// PendingSendLister lists external sends still awaiting confirmation.
type PendingSendLister interface {
	ListPendingSends(ctx context.Context, limit int) ([]string, error)
}

// SendStatusUpdater flips the recorded status of an external send.
type SendStatusUpdater interface {
	UpdateSendStatus(ctx context.Context, txHash, status string) error
}

// SendStatusFetcher checks the confirmation state of an initiated send.
type SendStatusFetcher interface {
	GetTransactionStatus(ctx context.Context, txHash string) (*facades.SendStatus, error)
}

const reconcileBatchSize = 100

// ReconcilerService tracks pending external sends to their terminal state.
// The debit is already committed when a send enters the ledger, so the
// reconciler only flips the recorded status; it never moves money.
type ReconcilerService struct {
	txns    PendingSendLister
	updater SendStatusUpdater
	fetcher SendStatusFetcher
}

// NewReconcilerService creates the send status reconciler.
func NewReconcilerService(txns PendingSendLister, updater SendStatusUpdater, fetcher SendStatusFetcher) *ReconcilerService {
	return &ReconcilerService{txns: txns, updater: updater, fetcher: fetcher}
}

// ReconcilePendingSends polls the custody service for every pending send and
// records the ones that reached a terminal state. Returns how many were
// updated. Individual failures are logged and skipped; the next cycle
// retries them.
func (s *ReconcilerService) ReconcilePendingSends(ctx context.Context) (int, error) {
	hashes, err := s.txns.ListPendingSends(ctx, reconcileBatchSize)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, hash := range hashes {
		status, err := s.fetcher.GetTransactionStatus(ctx, hash)
		if err != nil {
			logger.Log.Warnw("send status check failed", "tx_hash", hash, "error", err)
			continue
		}
		if status.Status == "pending" {
			continue
		}

		if err := s.updater.UpdateSendStatus(ctx, hash, status.Status); err != nil {
			logger.Log.Errorw("failed to record send status", "tx_hash", hash, "status", status.Status, "error", err)
			continue
		}

		logger.Log.Infow("external send reconciled",
			"tx_hash", hash, "status", status.Status, "confirmations", status.Confirmations)
		updated++
	}

	return updated, nil
}

// RunReconcileLoop reconciles pending sends on the given cadence until ctx
// is done.
func (s *ReconcilerService) RunReconcileLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.ReconcilePendingSends(ctx); err != nil {
				logger.Log.Errorw("send reconcile cycle failed", "error", err)
			}
		}
	}
}
