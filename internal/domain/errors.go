package domain

import "errors"

var (
	ErrRateNotFound         = errors.New("rate not found")
	ErrRateUnavailable      = errors.New("rate unavailable")
	ErrInvalidOperator      = errors.New("invalid operator")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
