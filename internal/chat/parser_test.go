package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeAmount(t *testing.T) {
	cases := map[string]string{
		"100":       "100",
		"1,5":       "1.5",
		"1,000.5":   "1000.5",
		"1,000,000": "1000000",
		"10_000":    "10000",
		"2.25":      "2.25",
	}
	for in, want := range cases {
		require.Equal(t, want, normalizeAmount(in), in)
	}
}

func TestParseConvert(t *testing.T) {
	cases := []struct {
		name string
		text string
		want ConvertQuery
		ok   bool
	}{
		{name: "plain", text: "100 USD to EUR", want: ConvertQuery{Amount: 100, Base: "USD", Quote: "EUR"}, ok: true},
		{name: "lowercase no spaces", text: "1,5btc->usd", want: ConvertQuery{Amount: 1.5, Base: "BTC", Quote: "USD"}, ok: true},
		{name: "cyrillic keyword", text: "  250 eur в rub ", want: ConvertQuery{Amount: 250, Base: "EUR", Quote: "RUB"}, ok: true},
		{name: "thousands", text: "1,000.5 usd TO jpy", want: ConvertQuery{Amount: 1000.5, Base: "USD", Quote: "JPY"}, ok: true},
		{name: "bad number", text: "1.2.3 usd to eur", ok: false},
		{name: "symbol too long", text: "10 ABCDEFG to USD", ok: false},
		{name: "no amount", text: "usd to eur", ok: false},
		{name: "garbage", text: "hello", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseConvert(tc.text)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParseAlert(t *testing.T) {
	cases := []struct {
		name string
		text string
		want AlertQuery
		ok   bool
	}{
		{
			name: "english",
			text: "notify when BTC > 50000 to USD",
			want: AlertQuery{Base: "BTC", Quote: "USD", Operator: ">", Threshold: 50000},
			ok:   true,
		},
		{
			name: "alert if with comma",
			text: "alert, if eth <= 2,5 -> eur",
			want: AlertQuery{Base: "ETH", Quote: "EUR", Operator: "<=", Threshold: 2.5},
			ok:   true,
		},
		{
			name: "russian",
			text: "уведоми если usd >= 95 в rub",
			want: AlertQuery{Base: "USD", Quote: "RUB", Operator: ">=", Threshold: 95},
			ok:   true,
		},
		{
			name: "equality",
			text: "Notify when EUR == 1 to USD",
			want: AlertQuery{Base: "EUR", Quote: "USD", Operator: "==", Threshold: 1},
			ok:   true,
		},
		{name: "unsupported operator", text: "notify when BTC != 1 to USD", ok: false},
		{name: "missing quote", text: "notify when BTC > 1", ok: false},
		{name: "conversion is not an alert", text: "100 USD to EUR", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseAlert(tc.text)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.want, got)
			}
		})
	}
}
