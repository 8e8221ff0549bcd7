package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
)

// SendResult is the crypto-send collaborator's handle for an initiated send.
// The send is confirmed asynchronously; Status starts as "pending".
type SendResult struct {
	TxHash string `json:"tx_hash"`
	Status string `json:"status"`
}

// SendStatus is the collaborator's view of a previously initiated send.
type SendStatus struct {
	TxHash        string `json:"tx_hash"`
	Status        string `json:"status"`
	Confirmations int    `json:"confirmations"`
}

// LunaFacade is the HTTP client for the external crypto custody service
// that executes on-chain sends and hosts the business deposit addresses.
type LunaFacade struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewLunaFacade creates a crypto-send client. timeout bounds each request.
func NewLunaFacade(baseURL, apiKey string, timeout time.Duration) *LunaFacade {
	return &LunaFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// SendCrypto asks the custody service to send amount to an external address.
// The returned handle is recorded in transaction metadata; confirmation is
// tracked asynchronously via GetTransactionStatus.
func (f *LunaFacade) SendCrypto(ctx context.Context, currency string, amount decimal.Decimal, toAddress, reference string) (*SendResult, error) {
	body, err := json.Marshal(map[string]string{
		"currency":   currency,
		"amount":     amount.String(),
		"to_address": toAddress,
		"reference":  reference,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/sends", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("crypto send request failed",
			"currency", currency, "amount", amount, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		logger.Log.Errorw("crypto send returned non-OK status",
			"currency", currency, "status", resp.StatusCode)
		return nil, fmt.Errorf("crypto send status %d", resp.StatusCode)
	}

	var result SendResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.Status == "" {
		result.Status = "pending"
	}

	logger.Log.Infow("crypto send initiated",
		"currency", currency, "amount", amount, "tx_hash", result.TxHash, "status", result.Status)

	return &result, nil
}

// GetTransactionStatus checks the confirmation state of an initiated send.
func (f *LunaFacade) GetTransactionStatus(ctx context.Context, txHash string) (*SendStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/sends/"+txHash, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("send status request status %d", resp.StatusCode)
	}

	var status SendStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetDepositAddress returns the business deposit address for a currency.
func (f *LunaFacade) GetDepositAddress(ctx context.Context, currency string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/addresses/"+currency, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deposit address request status %d", resp.StatusCode)
	}

	var payload struct {
		Address  string `json:"address"`
		Currency string `json:"currency"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	return payload.Address, nil
}
