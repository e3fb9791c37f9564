package httpclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

const ExchangeRateAPIName = "exchangerate_api"

// ExchangeRateAPIClient talks to the keyless v4 endpoint of exchangerate-api.com.
type ExchangeRateAPIClient struct {
	http    *resty.Client
	baseURL string
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (c *ExchangeRateAPIClient) Name() string { return ExchangeRateAPIName }

func (c *ExchangeRateAPIClient) GetRate(ctx context.Context, base string, quote string) (float64, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("base", strings.ToUpper(base)).
		Get(c.baseURL + "/v4/latest/{base}")
	if err != nil {
		return 0, fmt.Errorf("failed to execute request for currency %q: %w", base, err)
	}

	var body ratesResponse
	if err = decodeBody(resp, ExchangeRateAPIName, &body); err != nil {
		return 0, err
	}
	return pickRate(body.Rates, quote)
}

func NewExchangeRateAPIClient(httpClient *resty.Client, baseURL string) *ExchangeRateAPIClient {
	return &ExchangeRateAPIClient{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}
