package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosspayhq/wallet-core/internal/facades"
)

func TestReconcilerService_ReconcilePendingSends(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		setupMocks  func(txns *MockPendingSendLister, updater *MockSendStatusUpdater, fetcher *MockSendStatusFetcher)
		wantUpdated int
		wantErr     bool
	}{
		{
			name: "confirmed send recorded",
			setupMocks: func(txns *MockPendingSendLister, updater *MockSendStatusUpdater, fetcher *MockSendStatusFetcher) {
				txns.EXPECT().ListPendingSends(ctx, 100).Return([]string{"0xaaa"}, nil)
				fetcher.EXPECT().GetTransactionStatus(ctx, "0xaaa").
					Return(&facades.SendStatus{TxHash: "0xaaa", Status: "confirmed", Confirmations: 6}, nil)
				updater.EXPECT().UpdateSendStatus(ctx, "0xaaa", "confirmed").Return(nil)
			},
			wantUpdated: 1,
		},
		{
			name: "still pending left alone",
			setupMocks: func(txns *MockPendingSendLister, updater *MockSendStatusUpdater, fetcher *MockSendStatusFetcher) {
				txns.EXPECT().ListPendingSends(ctx, 100).Return([]string{"0xaaa"}, nil)
				fetcher.EXPECT().GetTransactionStatus(ctx, "0xaaa").
					Return(&facades.SendStatus{TxHash: "0xaaa", Status: "pending"}, nil)
			},
			wantUpdated: 0,
		},
		{
			name: "status check failure skips to next send",
			setupMocks: func(txns *MockPendingSendLister, updater *MockSendStatusUpdater, fetcher *MockSendStatusFetcher) {
				txns.EXPECT().ListPendingSends(ctx, 100).Return([]string{"0xaaa", "0xbbb"}, nil)
				fetcher.EXPECT().GetTransactionStatus(ctx, "0xaaa").Return(nil, errors.New("luna down"))
				fetcher.EXPECT().GetTransactionStatus(ctx, "0xbbb").
					Return(&facades.SendStatus{TxHash: "0xbbb", Status: "failed"}, nil)
				updater.EXPECT().UpdateSendStatus(ctx, "0xbbb", "failed").Return(nil)
			},
			wantUpdated: 1,
		},
		{
			name: "update failure retried next cycle",
			setupMocks: func(txns *MockPendingSendLister, updater *MockSendStatusUpdater, fetcher *MockSendStatusFetcher) {
				txns.EXPECT().ListPendingSends(ctx, 100).Return([]string{"0xaaa"}, nil)
				fetcher.EXPECT().GetTransactionStatus(ctx, "0xaaa").
					Return(&facades.SendStatus{TxHash: "0xaaa", Status: "confirmed"}, nil)
				updater.EXPECT().UpdateSendStatus(ctx, "0xaaa", "confirmed").Return(errors.New("db down"))
			},
			wantUpdated: 0,
		},
		{
			name: "list failure aborts the cycle",
			setupMocks: func(txns *MockPendingSendLister, updater *MockSendStatusUpdater, fetcher *MockSendStatusFetcher) {
				txns.EXPECT().ListPendingSends(ctx, 100).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "nothing pending",
			setupMocks: func(txns *MockPendingSendLister, updater *MockSendStatusUpdater, fetcher *MockSendStatusFetcher) {
				txns.EXPECT().ListPendingSends(ctx, 100).Return(nil, nil)
			},
			wantUpdated: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			txns := NewMockPendingSendLister(ctrl)
			updater := NewMockSendStatusUpdater(ctrl)
			fetcher := NewMockSendStatusFetcher(ctrl)
			tt.setupMocks(txns, updater, fetcher)

			svc := NewReconcilerService(txns, updater, fetcher)

			updated, err := svc.ReconcilePendingSends(ctx)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUpdated, updated)
		})
	}
}
