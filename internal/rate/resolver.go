package rate

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"fxalerts/internal/adapters"
	"fxalerts/internal/domain"
	"fxalerts/internal/metrics"

	"github.com/sirupsen/logrus"
)

const (
	pivotCurrency      = "USD"
	defaultCallTimeout = 10 * time.Second
	cryptoProviderName = "coingecko"
)

// Resolver answers "how much quote is one base" using an ordered fiat chain and a
// USD pivot for crypto symbols. It keeps no mutable state and is safe for concurrent use.
type Resolver struct {
	registry    *Registry
	fiat        []adapters.FiatProvider
	crypto      adapters.CryptoPriceProvider
	callTimeout time.Duration
	metrics     *metrics.Metrics
}

// Resolve returns the rate and true, or false when every strategy is exhausted.
func (r *Resolver) Resolve(ctx context.Context, base string, quote string) (float64, bool) {
	pair := domain.NewPair(base, quote)
	if pair.Base == pair.Quote {
		r.observe("identity")
		return 1.0, true
	}

	if r.crypto != nil && (r.registry.Classify(pair.Base) == ClassCrypto || r.registry.Classify(pair.Quote) == ClassCrypto) {
		if v, ok := r.cryptoRate(ctx, pair); ok {
			r.observe("crypto")
			return v, true
		}
	}

	if v, ok := r.fiatRate(ctx, pair); ok {
		r.observe("fiat")
		return v, true
	}

	if pair.Base != pivotCurrency && pair.Quote != pivotCurrency {
		if v, ok := r.crossRate(ctx, pair); ok {
			r.observe("cross")
			return v, true
		}
	}

	r.observe("none")
	logrus.WithFields(logrus.Fields{"base": pair.Base, "quote": pair.Quote}).Warn("Rate unavailable from every provider")
	return 0, false
}

// cryptoRate applies the pivot strategy. Both-crypto pairs go through USD;
// a single crypto side is priced directly against the other symbol.
func (r *Resolver) cryptoRate(ctx context.Context, pair domain.Pair) (float64, bool) {
	baseID, baseIsCoin := r.registry.CoinID(pair.Base)
	quoteID, quoteIsCoin := r.registry.CoinID(pair.Quote)

	switch {
	case baseIsCoin && quoteIsCoin:
		baseUSD, ok := r.coinPrice(ctx, baseID, pivotCurrency)
		if !ok {
			return 0, false
		}
		quoteUSD, ok := r.coinPrice(ctx, quoteID, pivotCurrency)
		if !ok {
			return 0, false
		}
		return baseUSD / quoteUSD, true
	case baseIsCoin:
		return r.coinPrice(ctx, baseID, pair.Quote)
	case quoteIsCoin:
		v, ok := r.coinPrice(ctx, quoteID, pair.Base)
		if !ok {
			return 0, false
		}
		return 1 / v, true
	}
	return 0, false
}

// fiatRate walks the provider chain; the first usable value wins.
func (r *Resolver) fiatRate(ctx context.Context, pair domain.Pair) (float64, bool) {
	for _, p := range r.fiat {
		if ctx.Err() != nil {
			return 0, false
		}
		if v, ok := r.providerRate(ctx, p, pair); ok {
			return v, true
		}
	}
	return 0, false
}

// crossRate divides base->USD by quote->USD, both taken from the fiat chain only.
func (r *Resolver) crossRate(ctx context.Context, pair domain.Pair) (float64, bool) {
	baseUSD, ok := r.fiatRate(ctx, domain.Pair{Base: pair.Base, Quote: pivotCurrency})
	if !ok {
		return 0, false
	}
	quoteUSD, ok := r.fiatRate(ctx, domain.Pair{Base: pair.Quote, Quote: pivotCurrency})
	if !ok {
		return 0, false
	}
	return baseUSD / quoteUSD, true
}

func (r *Resolver) providerRate(ctx context.Context, p adapters.FiatProvider, pair domain.Pair) (float64, bool) {
	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	started := time.Now()
	v, err := p.GetRate(callCtx, pair.Base, pair.Quote)
	r.metrics.ProviderRequestDuration.WithLabelValues(p.Name()).Observe(time.Since(started).Seconds())

	return r.accept(p.Name(), pair, v, err)
}

func (r *Resolver) coinPrice(ctx context.Context, coinID string, vsCurrency string) (float64, bool) {
	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	started := time.Now()
	v, err := r.crypto.GetPrice(callCtx, coinID, strings.ToLower(vsCurrency))
	r.metrics.ProviderRequestDuration.WithLabelValues(cryptoProviderName).Observe(time.Since(started).Seconds())

	return r.accept(cryptoProviderName, domain.Pair{Base: coinID, Quote: vsCurrency}, v, err)
}

// accept turns a provider answer into "usable or not" and records why.
func (r *Resolver) accept(provider string, pair domain.Pair, v float64, err error) (float64, bool) {
	log := logrus.WithFields(logrus.Fields{"provider": provider, "base": pair.Base, "quote": pair.Quote})

	switch {
	case errors.Is(err, domain.ErrRateNotFound):
		r.metrics.ProviderRequestsTotal.WithLabelValues(provider, "not_found").Inc()
		log.WithError(err).Debug("Provider has no rate for pair")
		return 0, false
	case err != nil:
		r.metrics.ProviderRequestsTotal.WithLabelValues(provider, "error").Inc()
		log.WithError(err).Warn("Provider call failed, trying next")
		return 0, false
	case !usable(v):
		r.metrics.ProviderRequestsTotal.WithLabelValues(provider, "invalid").Inc()
		log.Warnf("Provider returned unusable value %v", v)
		return 0, false
	}

	r.metrics.ProviderRequestsTotal.WithLabelValues(provider, "success").Inc()
	return v, true
}

func (r *Resolver) observe(strategy string) {
	r.metrics.ResolutionsTotal.WithLabelValues(strategy).Inc()
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// NewResolver wires the strategies. crypto may be nil, which disables the pivot path.
func NewResolver(registry *Registry, fiat []adapters.FiatProvider, crypto adapters.CryptoPriceProvider, callTimeout time.Duration, m *metrics.Metrics) *Resolver {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	if m == nil {
		m = metrics.NewNop()
	}
	return &Resolver{
		registry:    registry,
		fiat:        fiat,
		crypto:      crypto,
		callTimeout: callTimeout,
		metrics:     m,
	}
}
