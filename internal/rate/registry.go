package rate

import (
	"maps"
	"slices"

	"fxalerts/internal/domain"
)

type SymbolClass int

const (
	ClassUnknown SymbolClass = iota
	ClassFiat
	ClassCrypto
)

func (c SymbolClass) String() string {
	switch c {
	case ClassFiat:
		return "fiat"
	case ClassCrypto:
		return "crypto"
	default:
		return "unknown"
	}
}

var (
	defaultFiat = []string{"USD", "EUR", "GBP", "JPY", "CHF", "CNY", "AUD", "CAD", "RUB", "UAH", "KZT"}

	defaultCoinIDs = map[string]string{
		"BTC":  "bitcoin",
		"ETH":  "ethereum",
		"BNB":  "binancecoin",
		"XRP":  "ripple",
		"SOL":  "solana",
		"TON":  "the-open-network",
		"DOGE": "dogecoin",
		"TRX":  "tron",
		"USDT": "tether",
	}
)

// Registry classifies symbols and maps crypto symbols to CoinGecko identifiers.
// It is read-only after construction.
type Registry struct {
	fiat    map[string]struct{}
	coinIDs map[string]string
}

func (r *Registry) Classify(symbol string) SymbolClass {
	s := domain.NormalizeSymbol(symbol)
	if _, ok := r.coinIDs[s]; ok {
		return ClassCrypto
	}
	if _, ok := r.fiat[s]; ok {
		return ClassFiat
	}
	return ClassUnknown
}

func (r *Registry) CoinID(symbol string) (string, bool) {
	id, ok := r.coinIDs[domain.NormalizeSymbol(symbol)]
	return id, ok
}

func (r *Registry) FiatSymbols() []string {
	return slices.Sorted(maps.Keys(r.fiat))
}

func (r *Registry) CryptoSymbols() []string {
	return slices.Sorted(maps.Keys(r.coinIDs))
}

// NewRegistry normalizes the given symbols. Empty inputs fall back to the built-in lists.
func NewRegistry(fiat []string, coinIDs map[string]string) *Registry {
	if len(fiat) == 0 {
		fiat = defaultFiat
	}
	if len(coinIDs) == 0 {
		coinIDs = defaultCoinIDs
	}

	r := &Registry{
		fiat:    make(map[string]struct{}, len(fiat)),
		coinIDs: make(map[string]string, len(coinIDs)),
	}
	for _, s := range fiat {
		r.fiat[domain.NormalizeSymbol(s)] = struct{}{}
	}
	for s, id := range coinIDs {
		r.coinIDs[domain.NormalizeSymbol(s)] = id
	}
	return r
}

func DefaultRegistry() *Registry {
	return NewRegistry(nil, nil)
}
