package rate

import (
	"errors"
	"fmt"
	"regexp"

	"fxalerts/internal/domain"
)

var (
	ErrBaseRequired  = errors.New("base currency is required")
	ErrQuoteRequired = errors.New("quote currency is required")
	ErrSymbolInvalid = errors.New("symbol must be 2-6 latin letters")
	ErrBaseInvalid   = fmt.Errorf("base: %w", ErrSymbolInvalid)
	ErrQuoteInvalid  = fmt.Errorf("quote: %w", ErrSymbolInvalid)
)

var symbolPattern = regexp.MustCompile(`^[A-Z]{2,6}$`)

// Symbols is the public view of the registry.
type Symbols struct {
	Fiat   []string `json:"fiat"`
	Crypto []string `json:"crypto"`
}

// SymbolValidator checks symbol syntax only: symbols outside the registry are
// still valid and get attempted as fiat.
type SymbolValidator struct {
	registry *Registry
}

func (v *SymbolValidator) ValidatePair(base, quote string) (domain.Pair, error) {
	pair := domain.NewPair(base, quote)

	if pair.Base == "" {
		return domain.Pair{}, ErrBaseRequired
	}
	if pair.Quote == "" {
		return domain.Pair{}, ErrQuoteRequired
	}
	if !symbolPattern.MatchString(pair.Base) {
		return domain.Pair{}, ErrBaseInvalid
	}
	if !symbolPattern.MatchString(pair.Quote) {
		return domain.Pair{}, ErrQuoteInvalid
	}
	return pair, nil
}

// SupportedSymbols returns fresh slices on every call.
func (v *SymbolValidator) SupportedSymbols() Symbols {
	return Symbols{
		Fiat:   v.registry.FiatSymbols(),
		Crypto: v.registry.CryptoSymbols(),
	}
}

func NewValidator(registry *Registry) *SymbolValidator {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &SymbolValidator{registry: registry}
}
