package adapters

import (
	"context"

	"fxalerts/internal/domain"
)

// FiatProvider is one upstream source in the fiat chain.
// A pair missing from the payload is reported as domain.ErrRateNotFound.
type FiatProvider interface {
	Name() string
	GetRate(ctx context.Context, base string, quote string) (float64, error)
}

// CryptoPriceProvider prices a coin identifier in a vs-currency code.
type CryptoPriceProvider interface {
	GetPrice(ctx context.Context, coinID string, vsCurrency string) (float64, error)
}

type SubscriptionRepository interface {
	All(ctx context.Context) ([]domain.Subscription, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Subscription, error)
	Add(ctx context.Context, sub domain.Subscription) (domain.Subscription, error)
	Remove(ctx context.Context, userID int64, base string, quote string) (int64, error)
}

type Notifier interface {
	Send(ctx context.Context, userID int64, text string) error
}
