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

	"github.com/crosspayhq/wallet-core/internal/models"
	"github.com/crosspayhq/wallet-core/internal/services"
)

func TestConvertHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("successful conversion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockConverter(ctrl)
		svc.EXPECT().
			Convert(gomock.Any(), userID, models.NGN, models.KES, gomock.Any()).
			Return(decimal.NewFromInt(50), decimal.NewFromInt(2), nil)

		req := newAuthedRequest(t, http.MethodPost, "/wallet/convert", ConvertRequest{
			Amount:       "100",
			FromCurrency: models.NGN,
			ToCurrency:   models.KES,
		}, userClaims(userID))
		rec := httptest.NewRecorder()

		NewConvertHandler(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp ConvertResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "50", resp.ConvertedAmount)
		assert.Equal(t, "2", resp.Rate)
	})

	t.Run("rate unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockConverter(ctrl)
		svc.EXPECT().
			Convert(gomock.Any(), userID, models.NGN, models.BTC, gomock.Any()).
			Return(decimal.Zero, decimal.Zero, services.ErrRateUnavailable)

		req := newAuthedRequest(t, http.MethodPost, "/wallet/convert", ConvertRequest{
			Amount:       "100",
			FromCurrency: models.NGN,
			ToCurrency:   models.BTC,
		}, userClaims(userID))
		rec := httptest.NewRecorder()

		NewConvertHandler(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("same currency", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockConverter(ctrl)
		svc.EXPECT().
			Convert(gomock.Any(), userID, models.NGN, models.NGN, gomock.Any()).
			Return(decimal.Zero, decimal.Zero, services.ErrSameCurrency)

		req := newAuthedRequest(t, http.MethodPost, "/wallet/convert", ConvertRequest{
			Amount:       "100",
			FromCurrency: models.NGN,
			ToCurrency:   models.NGN,
		}, userClaims(userID))
		rec := httptest.NewRecorder()

		NewConvertHandler(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTransferHandler(t *testing.T) {
	userID := uuid.New()
	recipientID := uuid.New()

	t.Run("successful transfer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockTransferrer(ctrl)
		svc.EXPECT().
			Transfer(gomock.Any(), userID, recipientID, models.KES, gomock.Any()).
			Return(decimal.NewFromInt(75), nil)

		req := newAuthedRequest(t, http.MethodPost, "/wallet/transfer", TransferRequest{
			RecipientID: recipientID.String(),
			Amount:      "25",
			Currency:    models.KES,
		}, userClaims(userID))
		rec := httptest.NewRecorder()

		NewTransferHandler(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp TransferResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "75", resp.NewBalance)
	})

	t.Run("invalid recipient id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockTransferrer(ctrl)

		req := newAuthedRequest(t, http.MethodPost, "/wallet/transfer", TransferRequest{
			RecipientID: "not-a-uuid",
			Amount:      "25",
			Currency:    models.KES,
		}, userClaims(userID))
		rec := httptest.NewRecorder()

		NewTransferHandler(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("self transfer rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewMockTransferrer(ctrl)
		svc.EXPECT().
			Transfer(gomock.Any(), userID, userID, models.KES, gomock.Any()).
			Return(decimal.Zero, services.ErrSelfTransfer)

		req := newAuthedRequest(t, http.MethodPost, "/wallet/transfer", TransferRequest{
			RecipientID: userID.String(),
			Amount:      "25",
			Currency:    models.KES,
		}, userClaims(userID))
		rec := httptest.NewRecorder()

		NewTransferHandler(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
