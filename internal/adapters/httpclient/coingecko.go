package httpclient

import (
	"context"
	"fmt"
	"strings"

	"fxalerts/internal/domain"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// CoinGeckoClient queries the public simple/price endpoint.
// The free tier is rate limited upstream, so requests pass through a local limiter first.
type CoinGeckoClient struct {
	http    *resty.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
}

// simplePriceResponse maps coin id -> vs currency -> price.
type simplePriceResponse map[string]map[string]float64

func (c *CoinGeckoClient) GetPrice(ctx context.Context, coinID string, vsCurrency string) (float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("coingecko: rate limiter wait failed: %w", err)
	}

	vs := strings.ToLower(vsCurrency)
	req := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"ids": coinID, "vs_currencies": vs})
	if c.apiKey != "" {
		req.SetHeader("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := req.Get(c.baseURL + "/api/v3/simple/price")
	if err != nil {
		return 0, fmt.Errorf("failed to execute request for coin %q: %w", coinID, err)
	}

	var body simplePriceResponse
	if err = decodeBody(resp, "coingecko", &body); err != nil {
		return 0, err
	}
	price, ok := body[coinID][vs]
	if !ok {
		return 0, fmt.Errorf("%w: %s in %s", domain.ErrRateNotFound, coinID, vs)
	}
	return price, nil
}

// NewCoinGeckoClient builds the client; a non-positive limit disables throttling.
func NewCoinGeckoClient(httpClient *resty.Client, baseURL string, apiKey string, limit float64, burst int) *CoinGeckoClient {
	lim := rate.Inf
	if limit > 0 {
		lim = rate.Limit(limit)
	}
	if burst <= 0 {
		burst = 1
	}
	return &CoinGeckoClient{
		http:    httpClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		limiter: rate.NewLimiter(lim, burst),
	}
}
