package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLunaFacade_SendCrypto(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/sends", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "BTC", body["currency"])
			assert.Equal(t, "0.5", body["amount"])

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(SendResult{TxHash: "abc123", Status: "pending"})
		}))
		defer srv.Close()

		f := NewLunaFacade(srv.URL, "test-key", 5*time.Second)

		result, err := f.SendCrypto(ctx, "BTC", decimal.RequireFromString("0.5"), "bc1qaddr", "ref-1")
		require.NoError(t, err)
		assert.Equal(t, "abc123", result.TxHash)
		assert.Equal(t, "pending", result.Status)
	})

	t.Run("missing_status_defaults_to_pending", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"tx_hash": "abc123"})
		}))
		defer srv.Close()

		f := NewLunaFacade(srv.URL, "test-key", 5*time.Second)

		result, err := f.SendCrypto(ctx, "ETH", decimal.NewFromInt(1), "0xaddr", "ref-2")
		require.NoError(t, err)
		assert.Equal(t, "pending", result.Status)
	})

	t.Run("non_ok_status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		f := NewLunaFacade(srv.URL, "test-key", 5*time.Second)

		_, err := f.SendCrypto(ctx, "ETH", decimal.NewFromInt(1), "0xaddr", "ref-3")
		assert.Error(t, err)
	})
}

func TestLunaFacade_GetTransactionStatus(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sends/abc123", r.URL.Path)
		json.NewEncoder(w).Encode(SendStatus{TxHash: "abc123", Status: "confirmed", Confirmations: 6})
	}))
	defer srv.Close()

	f := NewLunaFacade(srv.URL, "test-key", 5*time.Second)

	status, err := f.GetTransactionStatus(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", status.Status)
	assert.Equal(t, 6, status.Confirmations)
}

func TestLunaFacade_GetDepositAddress(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/addresses/BTC", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"address":  "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
			"currency": "BTC",
		})
	}))
	defer srv.Close()

	f := NewLunaFacade(srv.URL, "test-key", 5*time.Second)

	address, err := f.GetDepositAddress(ctx, "BTC")
	require.NoError(t, err)
	assert.Equal(t, "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", address)
}
