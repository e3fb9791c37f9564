package app

import (
	"fmt"

	"fxalerts/internal/adapters"
	"fxalerts/internal/adapters/httpclient"
	"fxalerts/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// buildFiatProviders turns providers.order into the resolver's fallback chain.
// exchangerate_api_v6 is skipped when it has no key.
func buildFiatProviders(cfg config.Providers, client *resty.Client) ([]adapters.FiatProvider, error) {
	chain := make([]adapters.FiatProvider, 0, len(cfg.Order))
	seen := make(map[string]struct{}, len(cfg.Order))

	for _, name := range cfg.Order {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		var p adapters.FiatProvider
		switch name {
		case httpclient.ExchangeRateAPIName:
			p = httpclient.NewExchangeRateAPIClient(client, cfg.ExchangeRateAPI.URL)
		case httpclient.ExchangeRateV6Name:
			if cfg.ExchangeRateV6.APIKey == "" {
				logrus.Warnf("Provider %s has no api key, skipping", name)
				continue
			}
			p = httpclient.NewExchangeRateClient(client, cfg.ExchangeRateV6.URL, cfg.ExchangeRateV6.APIKey)
		case httpclient.ExchangeRateHostName:
			p = httpclient.NewExchangeRateHostClient(client, cfg.ExchangeRateHost.URL, cfg.ExchangeRateHost.APIKey)
		case httpclient.CurrencyConverterName:
			p = httpclient.NewCurrencyConverterClient(client, cfg.CurrencyConverter.URL, cfg.CurrencyConverter.APIKey)
		default:
			return nil, fmt.Errorf("unknown rate provider %q", name)
		}
		chain = append(chain, p)
	}

	if len(chain) == 0 {
		return nil, fmt.Errorf("no fiat rate provider configured")
	}
	return chain, nil
}
