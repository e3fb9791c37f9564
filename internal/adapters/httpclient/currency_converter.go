package httpclient

import (
	"context"
	"fmt"
	"strings"

	"fxalerts/internal/domain"

	"github.com/go-resty/resty/v2"
)

const CurrencyConverterName = "currency_converter"

// CurrencyConverterClient converts exactly one unit, so the converted amount is the rate.
type CurrencyConverterClient struct {
	http    *resty.Client
	baseURL string
	apiKey  string
}

type convertResponse struct {
	Result *struct {
		ConvertedAmount *float64 `json:"converted_amount"`
	} `json:"result"`
}

func (c *CurrencyConverterClient) Name() string { return CurrencyConverterName }

func (c *CurrencyConverterClient) GetRate(ctx context.Context, base string, quote string) (float64, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "json",
			"from":   strings.ToUpper(base),
			"to":     strings.ToUpper(quote),
			"amount": "1",
		})
	if c.apiKey != "" {
		req.SetHeader("X-RapidAPI-Key", c.apiKey)
	}

	resp, err := req.Get(c.baseURL + "/currency/convert")
	if err != nil {
		return 0, fmt.Errorf("failed to execute request for pair %s/%s: %w", base, quote, err)
	}

	var body convertResponse
	if err = decodeBody(resp, CurrencyConverterName, &body); err != nil {
		return 0, err
	}
	if body.Result == nil || body.Result.ConvertedAmount == nil {
		return 0, fmt.Errorf("%w: no converted amount for %s/%s", domain.ErrRateNotFound, base, quote)
	}
	return *body.Result.ConvertedAmount, nil
}

func NewCurrencyConverterClient(httpClient *resty.Client, baseURL string, apiKey string) *CurrencyConverterClient {
	return &CurrencyConverterClient{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/"), apiKey: apiKey}
}
