package rate

import (
	"context"
	"errors"
	"fmt"
	"math"

	"fxalerts/internal/domain"
)

var ErrAmountInvalid = errors.New("amount must be a positive number")

// RateResolver is satisfied by *Resolver.
type RateResolver interface {
	Resolve(ctx context.Context, base string, quote string) (float64, bool)
}

type Conversion struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
	Rate   float64 `json:"rate"`
	Result float64 `json:"result"`
}

type Quote struct {
	Base  string  `json:"base"`
	Quote string  `json:"quote"`
	Value float64 `json:"value"`
}

type Service struct {
	resolver  RateResolver
	validator *SymbolValidator
}

// Convert multiplies amount by the freshly resolved rate.
func (s *Service) Convert(ctx context.Context, amount float64, from string, to string) (Conversion, error) {
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return Conversion{}, ErrAmountInvalid
	}

	q, err := s.GetRate(ctx, from, to)
	if err != nil {
		return Conversion{}, err
	}

	return Conversion{
		From:   q.Base,
		To:     q.Quote,
		Amount: amount,
		Rate:   q.Value,
		Result: amount * q.Value,
	}, nil
}

func (s *Service) GetRate(ctx context.Context, base string, quote string) (Quote, error) {
	pair, err := s.validator.ValidatePair(base, quote)
	if err != nil {
		return Quote{}, err
	}

	v, ok := s.resolver.Resolve(ctx, pair.Base, pair.Quote)
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s", domain.ErrRateUnavailable, pair)
	}
	return Quote{Base: pair.Base, Quote: pair.Quote, Value: v}, nil
}

func (s *Service) SupportedSymbols() Symbols {
	return s.validator.SupportedSymbols()
}

func NewService(resolver RateResolver, validator *SymbolValidator) *Service {
	return &Service{resolver: resolver, validator: validator}
}
