package alert

import (
	"context"
	"errors"
	"fmt"
	"math"

	"fxalerts/internal/adapters"
	"fxalerts/internal/domain"
	"fxalerts/internal/rate"
)

var (
	ErrUserInvalid      = errors.New("user id must be positive")
	ErrSameCodes        = errors.New("base and quote must be different")
	ErrThresholdInvalid = errors.New("threshold must be a positive number")
)

// Service manages subscriptions on behalf of the front-ends. The scheduler
// never goes through it; it only reads snapshots from the repository.
type Service struct {
	repo      adapters.SubscriptionRepository
	validator *rate.SymbolValidator
}

func (s *Service) Subscribe(ctx context.Context, userID int64, base string, quote string, op string, threshold float64) (domain.Subscription, error) {
	if userID <= 0 {
		return domain.Subscription{}, ErrUserInvalid
	}
	pair, err := s.validator.ValidatePair(base, quote)
	if err != nil {
		return domain.Subscription{}, err
	}
	if pair.Base == pair.Quote {
		return domain.Subscription{}, ErrSameCodes
	}
	operator, err := domain.ParseOperator(op)
	if err != nil {
		return domain.Subscription{}, err
	}
	if threshold <= 0 || math.IsInf(threshold, 0) || math.IsNaN(threshold) {
		return domain.Subscription{}, ErrThresholdInvalid
	}

	sub, err := s.repo.Add(ctx, domain.Subscription{
		UserID:    userID,
		Base:      pair.Base,
		Quote:     pair.Quote,
		Operator:  operator,
		Threshold: threshold,
	})
	if err != nil {
		return domain.Subscription{}, fmt.Errorf("failed to add subscription: %w", err)
	}
	return sub, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	if userID <= 0 {
		return nil, ErrUserInvalid
	}
	subs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

// Unsubscribe removes every subscription of the user on the pair.
func (s *Service) Unsubscribe(ctx context.Context, userID int64, base string, quote string) (int64, error) {
	if userID <= 0 {
		return 0, ErrUserInvalid
	}
	pair, err := s.validator.ValidatePair(base, quote)
	if err != nil {
		return 0, err
	}

	removed, err := s.repo.Remove(ctx, userID, pair.Base, pair.Quote)
	if err != nil {
		return 0, fmt.Errorf("failed to remove subscription: %w", err)
	}
	if removed == 0 {
		return 0, domain.ErrSubscriptionNotFound
	}
	return removed, nil
}

func NewService(repo adapters.SubscriptionRepository, validator *rate.SymbolValidator) *Service {
	return &Service{repo: repo, validator: validator}
}
