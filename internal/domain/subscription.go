package domain

import "fmt"

type Operator string

const (
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
	OpEqual        Operator = "=="
)

var operators = map[Operator]struct{}{
	OpGreater:      {},
	OpGreaterEqual: {},
	OpLess:         {},
	OpLessEqual:    {},
	OpEqual:        {},
}

func ParseOperator(s string) (Operator, error) {
	op := Operator(s)
	if _, ok := operators[op]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidOperator, s)
	}
	return op, nil
}

// Subscription is a standing alert owned by the subscription store.
type Subscription struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"user_id"`
	Base      string   `json:"base"`
	Quote     string   `json:"quote"`
	Operator  Operator `json:"operator"`
	Threshold float64  `json:"threshold"`
}

func (s Subscription) Pair() Pair {
	return NewPair(s.Base, s.Quote)
}
