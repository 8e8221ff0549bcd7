package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/crosspayhq/wallet-core/internal/fraud"
	"github.com/crosspayhq/wallet-core/internal/models"
	"github.com/crosspayhq/wallet-core/internal/services"
	"github.com/crosspayhq/wallet-core/internal/validation"
)

func TestWithdrawHandler(t *testing.T) {
	userID := uuid.New()
	address := "0x52908400098527886E0F7030069857D2E4169EE7"

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(svc *MockWithdrawWriter)
		expectedStatusCode int
		expectedTxHash     string
	}{
		{
			name: "successful withdrawal",
			requestBody: WithdrawRequest{
				Amount:   "2",
				Currency: models.ETH,
				Address:  address,
			},
			setupMocks: func(svc *MockWithdrawWriter) {
				svc.EXPECT().
					Withdraw(gomock.Any(), userID, models.ETH, gomock.Any(), address).
					Return("0xdead", decimal.NewFromInt(3), nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedTxHash:     "0xdead",
		},
		{
			name: "limit exceeded",
			requestBody: WithdrawRequest{
				Amount:   "5000",
				Currency: models.USDT,
				Address:  address,
			},
			setupMocks: func(svc *MockWithdrawWriter) {
				svc.EXPECT().
					Withdraw(gomock.Any(), userID, models.USDT, gomock.Any(), address).
					Return("", decimal.Zero, validation.ErrLimitExceeded)
			},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name: "blocked by velocity check",
			requestBody: WithdrawRequest{
				Amount:   "1",
				Currency: models.ETH,
				Address:  address,
			},
			setupMocks: func(svc *MockWithdrawWriter) {
				svc.EXPECT().
					Withdraw(gomock.Any(), userID, models.ETH, gomock.Any(), address).
					Return("", decimal.Zero, fraud.ErrSuspiciousActivity)
			},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name: "external send failure",
			requestBody: WithdrawRequest{
				Amount:   "1",
				Currency: models.ETH,
				Address:  address,
			},
			setupMocks: func(svc *MockWithdrawWriter) {
				svc.EXPECT().
					Withdraw(gomock.Any(), userID, models.ETH, gomock.Any(), address).
					Return("", decimal.Zero, services.ErrExternalService)
			},
			expectedStatusCode: http.StatusBadGateway,
		},
		{
			name: "invalid address",
			requestBody: WithdrawRequest{
				Amount:   "1",
				Currency: models.BTC,
				Address:  "nonsense",
			},
			setupMocks: func(svc *MockWithdrawWriter) {
				svc.EXPECT().
					Withdraw(gomock.Any(), userID, models.BTC, gomock.Any(), "nonsense").
					Return("", decimal.Zero, validation.ErrInvalidAddress)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockWithdrawWriter(ctrl)
			tt.setupMocks(svc)

			req := newAuthedRequest(t, http.MethodPost, "/wallet/withdraw", tt.requestBody, userClaims(userID))
			rec := httptest.NewRecorder()

			NewWithdrawHandler(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			if tt.expectedTxHash != "" {
				var resp WithdrawResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedTxHash, resp.TxHash)
			}
		})
	}
}
