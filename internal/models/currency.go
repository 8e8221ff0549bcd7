package models

// Supported currency codes
const (
	NGN  = "NGN"
	KES  = "KES"
	BTC  = "BTC"
	ETH  = "ETH"
	USDT = "USDT"
)

// FiatCurrencies is the set of supported fiat currencies.
// Wallets for every fiat currency are created at registration.
var FiatCurrencies = map[string]struct{}{
	NGN: {},
	KES: {},
}

// CryptoCurrencies is the set of supported crypto currencies.
// Crypto wallets are created on demand, at most one per currency per user.
var CryptoCurrencies = map[string]struct{}{
	BTC:  {},
	ETH:  {},
	USDT: {},
}

// IsSupportedCurrency reports whether code is a known fiat or crypto currency.
func IsSupportedCurrency(code string) bool {
	if _, ok := FiatCurrencies[code]; ok {
		return true
	}
	_, ok := CryptoCurrencies[code]
	return ok
}

// IsCryptoCurrency reports whether code is a supported crypto currency.
func IsCryptoCurrency(code string) bool {
	_, ok := CryptoCurrencies[code]
	return ok
}

// IsFiatCurrency reports whether code is a supported fiat currency.
func IsFiatCurrency(code string) bool {
	_, ok := FiatCurrencies[code]
	return ok
}
