package rate

import (
	"errors"
	"testing"

	"fxalerts/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestSymbolValidator_ValidatePair_Errors(t *testing.T) {
	validator := NewValidator(nil)

	cases := []struct {
		base, quote string
		want        error
		syntax      bool
	}{
		{"", "EUR", ErrBaseRequired, false},
		{"  ", "EUR", ErrBaseRequired, false},
		{"USD", "", ErrQuoteRequired, false},
		{"U", "EUR", ErrBaseInvalid, true},
		{"USD1", "EUR", ErrBaseInvalid, true},
		{"USD", "TOOLONGX", ErrQuoteInvalid, true},
		{"USD", "E-R", ErrQuoteInvalid, true},
	}
	for _, tc := range cases {
		_, err := validator.ValidatePair(tc.base, tc.quote)
		require.ErrorIs(t, err, tc.want, "%q/%q", tc.base, tc.quote)
		require.Equal(t, tc.syntax, errors.Is(err, ErrSymbolInvalid))
	}
}

func TestSymbolValidator_ValidatePair_Success(t *testing.T) {
	validator := NewValidator(nil)

	pair, err := validator.ValidatePair(" usd", "Btc ")
	require.NoError(t, err)
	require.Equal(t, domain.Pair{Base: "USD", Quote: "BTC"}, pair)

	// same symbol is a valid request that resolves to 1
	_, err = validator.ValidatePair("EUR", "eur")
	require.NoError(t, err)

	// outside the registry but well formed
	_, err = validator.ValidatePair("PLN", "SEK")
	require.NoError(t, err)
}

func TestSymbolValidator_SupportedSymbols(t *testing.T) {
	validator := NewValidator(NewRegistry([]string{"usd", "EUR"}, map[string]string{"btc": "bitcoin"}))

	got := validator.SupportedSymbols()

	require.Equal(t, []string{"EUR", "USD"}, got.Fiat)
	require.Equal(t, []string{"BTC"}, got.Crypto)

	// ensure caller modifications do not affect validator internal state
	got.Fiat[0] = "XXX"
	require.Equal(t, []string{"EUR", "USD"}, validator.SupportedSymbols().Fiat)
}
