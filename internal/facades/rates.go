package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crosspayhq/wallet-core/internal/logger"
)

// assetIDs maps the price source's asset identifiers to currency codes.
var assetIDs = map[string]string{
	"bitcoin":  "BTC",
	"ethereum": "ETH",
	"tether":   "USDT",
}

// quoteCurrencies are the fiat/stable quote currencies requested per asset.
var quoteCurrencies = []string{"ngn", "kes", "usd"}

// PriceSourceFacade polls an external HTTP price API returning a mapping of
// asset id -> quote currency -> price.
type PriceSourceFacade struct {
	baseURL string
	client  *http.Client
}

// NewPriceSourceFacade creates a price source client. timeout bounds each request.
func NewPriceSourceFacade(baseURL string, timeout time.Duration) *PriceSourceFacade {
	return &PriceSourceFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchPrices pulls current prices for all supported crypto assets.
// The result maps currency code -> quote currency code -> price.
func (f *PriceSourceFacade) FetchPrices(ctx context.Context) (map[string]map[string]decimal.Decimal, error) {
	ids := make([]string, 0, len(assetIDs))
	for id := range assetIDs {
		ids = append(ids, id)
	}

	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", strings.Join(quoteCurrencies, ","))

	reqURL := fmt.Sprintf("%s/simple/price?%s", f.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("price source request failed", "url", reqURL, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("price source returned non-OK status", "url", reqURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("price source status %d", resp.StatusCode)
	}

	var payload map[string]map[string]json.Number
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Log.Errorw("failed to decode price source response", "error", err)
		return nil, err
	}

	prices := make(map[string]map[string]decimal.Decimal)
	for assetID, quotes := range payload {
		symbol, ok := assetIDs[assetID]
		if !ok {
			continue
		}
		prices[symbol] = make(map[string]decimal.Decimal, len(quotes))
		for quote, raw := range quotes {
			price, err := decimal.NewFromString(raw.String())
			if err != nil {
				logger.Log.Warnw("skipping unparsable price",
					"asset", assetID, "quote", quote, "value", raw.String())
				continue
			}
			prices[symbol][strings.ToUpper(quote)] = price
		}
	}

	return prices, nil
}
