package httpclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

const ExchangeRateV6Name = "exchangerate_api_v6"

// ExchangeRateClient is the keyed v6 API of exchangerate-api.com.
type ExchangeRateClient struct {
	http    *resty.Client
	baseURL string
	apiKey  string
}

type apiResponse struct {
	Result          string             `json:"result"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

func (c *ExchangeRateClient) Name() string { return ExchangeRateV6Name }

func (c *ExchangeRateClient) GetRate(ctx context.Context, base string, quote string) (float64, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"key": c.apiKey, "base": strings.ToUpper(base)}).
		Get(c.baseURL + "/v6/{key}/latest/{base}")
	if err != nil {
		return 0, fmt.Errorf("failed to execute request for currency %q: %w", base, err)
	}

	var body apiResponse
	if err = decodeBody(resp, ExchangeRateV6Name, &body); err != nil {
		return 0, fmt.Errorf("failed to get rates for currency %q: %w", base, err)
	}
	if body.Result != "success" {
		return 0, fmt.Errorf("api returned non-success result for currency %q: %s", base, body.Result)
	}
	return pickRate(body.ConversionRates, quote)
}

func NewExchangeRateClient(httpClient *resty.Client, baseURL string, apiKey string) *ExchangeRateClient {
	return &ExchangeRateClient{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/"), apiKey: apiKey}
}
