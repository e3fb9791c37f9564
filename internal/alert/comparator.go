package alert

import (
	"math"

	"fxalerts/internal/domain"
)

const equalTolerance = 1e-12

// Compare reports whether value satisfies "value op threshold".
// Unknown operators never match.
func Compare(value float64, op domain.Operator, threshold float64) bool {
	switch op {
	case domain.OpGreater:
		return value > threshold
	case domain.OpGreaterEqual:
		return value >= threshold
	case domain.OpLess:
		return value < threshold
	case domain.OpLessEqual:
		return value <= threshold
	case domain.OpEqual:
		return math.Abs(value-threshold) < equalTolerance
	default:
		return false
	}
}
