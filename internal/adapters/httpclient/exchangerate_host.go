package httpclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

const ExchangeRateHostName = "exchangerate_host"

type ExchangeRateHostClient struct {
	http      *resty.Client
	baseURL   string
	accessKey string
}

func (c *ExchangeRateHostClient) Name() string { return ExchangeRateHostName }

func (c *ExchangeRateHostClient) GetRate(ctx context.Context, base string, quote string) (float64, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("base", strings.ToUpper(base))
	if c.accessKey != "" {
		req.SetQueryParam("access_key", c.accessKey)
	}

	resp, err := req.Get(c.baseURL + "/latest")
	if err != nil {
		return 0, fmt.Errorf("failed to execute request for currency %q: %w", base, err)
	}

	var body ratesResponse
	if err = decodeBody(resp, ExchangeRateHostName, &body); err != nil {
		return 0, err
	}
	return pickRate(body.Rates, quote)
}

func NewExchangeRateHostClient(httpClient *resty.Client, baseURL string, accessKey string) *ExchangeRateHostClient {
	return &ExchangeRateHostClient{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/"), accessKey: accessKey}
}
